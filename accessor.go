package protos

import (
	"reflect"
)

// accessor generates the getter/setter member backing the attribute name.
// With no arguments the accessor reads the cell. With an argument it writes
// the cell, unless the argument is falsy, in which case the cell is left
// unchanged. Either way the call evaluates to the cell's value after the
// optional write. Arguments past the first are ignored.
func accessor(name string) Fn {
	return func(self *Object, args ...interface{}) interface{} {
		if len(args) > 0 && truthy(args[0]) {
			self.cells[name] = args[0]
		}
		return self.cells[name]
	}
}

// truthy reports whether v is accepted by an attribute setter. Nil, false,
// numeric zero, the empty string, empty arrays, slices, and maps, and nil
// pointers, interfaces, functions, and channels are all refused.
func truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	r := reflect.ValueOf(v)
	switch r.Kind() {
	case reflect.Bool:
		return r.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return r.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return r.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return r.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return r.Complex() != 0
	case reflect.String, reflect.Array, reflect.Slice, reflect.Map:
		return r.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return !r.IsNil()
	}
	return true
}

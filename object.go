package protos

import (
	"fmt"

	"github.com/zephyrtronium/contains"
)

// An Object is a node in a prototype tree. It owns a table of callable members
// (methods and generated accessors), the value cells backing its attributes,
// and an optional link to the object it was extended from.
//
// Always obtain objects through New or Extend. Objects created directly have
// no member table and respond to nothing.
//
// Objects are not synchronized; see the package documentation.
type Object struct {
	// slots is the set of names to which this object responds directly.
	// Accessors and methods share this one table.
	slots map[string]Fn
	// cells holds the current values of this object's attributes. Its key set
	// is fixed at construction; only values change.
	cells map[string]interface{}
	// attrs is the list of attribute names declared by the construction call
	// that produced this object, in declaration order.
	attrs []string
	// proto is the object this one was extended from, or nil for roots.
	proto *Object
}

// A Slot associates a name with an attribute value or, when the value has type
// Fn, a method.
type Slot struct {
	Name  string
	Value interface{}
}

// Slots is an ordered name-to-value mapping used to construct objects. When a
// name appears more than once, the last value wins, but the first occurrence
// fixes the name's position.
type Slots []Slot

// dedup collapses repeated names, keeping the last value at the position of
// the first occurrence.
func (s Slots) dedup() Slots {
	r := make(Slots, 0, len(s))
	at := make(map[string]int, len(s))
	for _, sl := range s {
		if i, ok := at[sl.Name]; ok {
			r[i].Value = sl.Value
			continue
		}
		at[sl.Name] = len(r)
		r = append(r, sl)
	}
	return r
}

// New constructs a root object from attrs. Values of type Fn become methods,
// stored unchanged; every other value becomes an attribute backed by a
// generated accessor of the same name. New returns an InvalidArgumentError if
// any name is empty. Empty attrs is fine and yields an object which responds
// to nothing.
func New(attrs Slots) (*Object, error) {
	return build(nil, attrs)
}

// Extend constructs a new object with o as its prototype. The caller's attrs
// take precedence; every attribute of o not named in attrs is copied in at its
// current value, read through its accessor, so later mutation of o's
// attributes does not reach the new object. Methods are never copied this way;
// names bound only as methods on o resolve through the live prototype chain at
// call time instead.
func (o *Object) Extend(attrs Slots) (*Object, error) {
	attrs = attrs.dedup()
	merged := make(Slots, len(attrs), len(attrs)+len(o.attrs))
	copy(merged, attrs)
	have := make(map[string]bool, len(attrs))
	for _, sl := range attrs {
		have[sl.Name] = true
	}
	for _, name := range o.attrs {
		if have[name] {
			continue
		}
		v, err := o.Call(name)
		if err != nil {
			return nil, err
		}
		merged = append(merged, Slot{Name: name, Value: v})
	}
	return build(o, merged)
}

// build runs the construction algorithm shared by New and Extend.
func build(proto *Object, attrs Slots) (*Object, error) {
	attrs = attrs.dedup()
	o := &Object{
		slots: make(map[string]Fn, len(attrs)),
		cells: make(map[string]interface{}),
		proto: proto,
	}
	for _, sl := range attrs {
		if sl.Name == "" {
			return nil, &InvalidArgumentError{Reason: "empty slot name"}
		}
		if fn, ok := callable(sl.Value); ok {
			o.slots[sl.Name] = fn
			continue
		}
		o.cells[sl.Name] = sl.Value
		o.slots[sl.Name] = accessor(sl.Name)
		o.attrs = append(o.attrs, sl.Name)
	}
	return o, nil
}

// callable reports whether v is usable as a method. Only Fn values count; any
// other value, including other function types, is attribute data.
func callable(v interface{}) (Fn, bool) {
	switch fn := v.(type) {
	case Fn:
		return fn, fn != nil
	case func(*Object, ...interface{}) interface{}:
		return fn, fn != nil
	}
	return nil, false
}

// Attributes returns the attribute names declared by the construction call
// that produced o, in declaration order. The list is independent of any value
// mutation since then.
func (o *Object) Attributes() []string {
	r := make([]string, len(o.attrs))
	copy(r, o.attrs)
	return r
}

// Proto returns the object o was extended from, or nil if o is a root.
func (o *Object) Proto() *Object {
	return o.proto
}

// Ancestors returns o's prototype chain, nearest first.
func (o *Object) Ancestors() []*Object {
	var r []*Object
	set := contains.Set{}
	set.Add(o.UniqueID())
	for p := o.proto; p != nil; p = p.proto {
		if !set.Add(p.UniqueID()) {
			break
		}
		r = append(r, p)
	}
	return r
}

// IsKindOf reports whether o is kind or has kind among its ancestors.
func (o *Object) IsKindOf(kind *Object) bool {
	if o == nil || kind == nil {
		return false
	}
	set := contains.Set{}
	for p := o; p != nil; p = p.proto {
		if !set.Add(p.UniqueID()) {
			return false
		}
		if p == kind {
			return true
		}
	}
	return false
}

// String returns a short identity string for the object.
func (o *Object) String() string {
	return fmt.Sprintf("Object_%#x", o.UniqueID())
}

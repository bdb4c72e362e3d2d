// +build nounsafe

package protos

import "reflect"

// UniqueID returns the object's address.
func (o *Object) UniqueID() uintptr {
	return reflect.ValueOf(o).Pointer()
}

package protos

import (
	"sort"
)

// Resolve finds the callable bound to name on o, checking o's own members
// first and then each prototype in turn. The second result is the object which
// actually had the member; it is nil if and only if the name is not bound
// anywhere on the chain. Resolving is the basis of every call, and a
// successful resolve is exactly the capability test "does this object respond
// to name".
func (o *Object) Resolve(name string) (Fn, *Object) {
	for p := o; p != nil; p = p.proto {
		if fn, ok := p.slots[name]; ok {
			return fn, p
		}
	}
	return nil, nil
}

// LocalSlot checks only o's own members for name.
func (o *Object) LocalSlot(name string) (Fn, bool) {
	fn, ok := o.slots[name]
	return fn, ok
}

// HasSlot reports whether o responds to name, either directly or through its
// prototype chain. It has no side effects.
func (o *Object) HasSlot(name string) bool {
	_, proto := o.Resolve(name)
	return proto != nil
}

// AncestorWithSlot returns the nearest ancestor of o which has name as its own
// member, not checking o itself. It returns nil if no ancestor does.
func (o *Object) AncestorWithSlot(name string) *Object {
	if o.proto == nil {
		return nil
	}
	_, proto := o.proto.Resolve(name)
	return proto
}

// SlotNames returns the names of o's own members, both attributes and methods,
// in sorted order.
func (o *Object) SlotNames() []string {
	names := make([]string, 0, len(o.slots))
	for name := range o.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

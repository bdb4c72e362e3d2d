/*
Package protos implements a minimal prototype-based object model.

There are no classes. An Object carries its attributes and methods directly,
and new objects are derived from existing ones by extension: cloning with
overrides, where the clone keeps a live link to the object it came from, its
prototype.

An object is constructed from an ordered list of named slots. Plain values
become attributes, each backed by a generated accessor with getter/setter
semantics. Values of type Fn become methods, invoked with the object itself as
their first argument:

	person := protos.Must(protos.New(protos.Slots{
		{Name: "first_name", Value: "Generic"},
		{Name: "say_hi", Value: protos.Fn(func(self *protos.Object, args ...interface{}) interface{} {
			name, _ := self.Call("first_name")
			return "Hi, I'm " + name.(string)
		})},
	}))

Extension produces a new object whose prototype is the receiver:

	homer := protos.Must(person.Extend(protos.Slots{{Name: "first_name", Value: "Homer"}}))
	homer.Call("say_hi") // "Hi, I'm Homer", nil

Attributes and methods are treated asymmetrically, and this asymmetry is the
heart of the model. Extending an object snapshots the current values of its
attributes into the new object, so mutating an attribute on the prototype
afterward does not affect the child. Methods are never copied; a name not found
on an object is resolved by walking the prototype chain at call time, so a
method added to a prototype with AddMethod becomes visible immediately on every
descendant that does not shadow it, including descendants created before the
call.

Accessors have a deliberate quirk inherited from the model this package
reproduces: assigning a falsy value (nil, false, numeric zero, the empty
string, an empty slice, map, or array, or a nil pointer or interface) through
an accessor is a no-op. The accessor returns the attribute's value after the
optional write, so a refused write returns the old value. An attribute can
therefore never be cleared through its accessor once constructed with a truthy
value.

Objects are not synchronized. If one object is mutated from multiple
goroutines, whether through AddMethod or an accessor, the callers must
synchronize externally.
*/
package protos

package protos

// An Fn is a callable member of an object. The object the call was addressed
// to is passed as self, even when the member was found on an ancestor.
type Fn func(self *Object, args ...interface{}) interface{}

// AddMethod binds fn to name on o, replacing any member already under that
// name, including an attribute's accessor. It returns an InvalidArgumentError
// if name is empty or fn is nil.
//
// The new method is visible immediately to every object whose prototype chain
// passes through o and which does not bind name itself, whether that object
// was extended before or after this call. Resolution walks the live chain;
// there is no table to rebuild.
func (o *Object) AddMethod(name string, fn Fn) error {
	if name == "" {
		return &InvalidArgumentError{Reason: "empty method name"}
	}
	if fn == nil {
		return &InvalidArgumentError{Reason: "nil method " + name}
	}
	o.slots[name] = fn
	return nil
}

// Call resolves name on o and invokes the result with o as self. It returns a
// NotFoundError if the name is not bound anywhere on o's prototype chain.
//
// Calling an attribute's name with no arguments reads the attribute; calling
// it with one argument writes it, subject to the setter's truthiness rule
// described in the package documentation.
func (o *Object) Call(name string, args ...interface{}) (interface{}, error) {
	fn, proto := o.Resolve(name)
	if proto == nil {
		return nil, &NotFoundError{Name: name}
	}
	return fn(o, args...), nil
}

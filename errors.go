package protos

import (
	"errors"
	"fmt"
)

// A NotFoundError reports that a name is not bound anywhere on an object's
// prototype chain.
type NotFoundError struct {
	// Name is the member name that failed to resolve.
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("slot %q not found", e.Name)
}

// An InvalidArgumentError reports a malformed argument to a construction call
// or AddMethod.
type InvalidArgumentError struct {
	// Reason describes what was wrong with the argument.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// Must panics if err is non-nil and otherwise returns o. It makes chained
// construction of literal trees pleasant in tests and examples.
func Must(o *Object, err error) *Object {
	if err != nil {
		panic(err)
	}
	return o
}

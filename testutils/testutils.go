// Package testutils provides helpers for testing prototype trees.
package testutils

import (
	"testing"

	"github.com/zephyrtronium/protos"
)

// Family returns the canonical three-generation fixture tree. person declares
// first_name and a say_hi method, homer extends person with its own
// first_name, and bart extends homer with its own first_name and an
// add_numbers method.
func Family(t testing.TB) (person, homer, bart *protos.Object) {
	t.Helper()
	person, err := protos.New(protos.Slots{
		{Name: "first_name", Value: "Generic"},
		{Name: "say_hi", Value: protos.Fn(SayHi)},
	})
	if err != nil {
		t.Fatalf("could not construct person: %v", err)
	}
	homer, err = person.Extend(protos.Slots{
		{Name: "first_name", Value: "Homer"},
	})
	if err != nil {
		t.Fatalf("could not construct homer: %v", err)
	}
	bart, err = homer.Extend(protos.Slots{
		{Name: "first_name", Value: "Bart"},
		{Name: "add_numbers", Value: protos.Fn(AddNumbers)},
	})
	if err != nil {
		t.Fatalf("could not construct bart: %v", err)
	}
	return person, homer, bart
}

// SayHi greets by the receiver's first_name attribute.
func SayHi(self *protos.Object, args ...interface{}) interface{} {
	name, err := self.Call("first_name")
	if err != nil {
		return err
	}
	return "Hi, I'm " + name.(string)
}

// AddNumbers sums its two int arguments.
func AddNumbers(self *protos.Object, args ...interface{}) interface{} {
	return args[0].(int) + args[1].(int)
}

// CheckAttrs checks that obj declares exactly the attribute names in want, in
// order.
func CheckAttrs(t *testing.T, obj *protos.Object, want []string) {
	t.Helper()
	have := obj.Attributes()
	if len(have) != len(want) {
		t.Fatalf("wrong attributes: have %q, want %q", have, want)
	}
	for i, name := range want {
		if have[i] != name {
			t.Errorf("wrong attribute at %d: have %q, want %q", i, have[i], name)
		}
	}
}

// CheckSlots checks that obj has exactly the own members in slots, attributes
// and methods alike.
func CheckSlots(t *testing.T, obj *protos.Object, slots []string) {
	t.Helper()
	checked := make(map[string]bool, len(slots))
	for _, name := range slots {
		checked[name] = true
		if _, ok := obj.LocalSlot(name); !ok {
			t.Errorf("no slot %q", name)
		}
	}
	for _, name := range obj.SlotNames() {
		if !checked[name] {
			t.Errorf("unexpected slot %q", name)
		}
	}
}

package protos_test

import (
	"testing"

	"github.com/zephyrtronium/protos"
	"github.com/zephyrtronium/protos/testutils"
)

// TestNew tests that construction splits plain values from callables, applies
// mapping semantics to duplicate names, and rejects empty names.
func TestNew(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		o, err := protos.New(nil)
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		if p := o.Proto(); p != nil {
			t.Errorf("root has a proto: %v", p)
		}
		testutils.CheckAttrs(t, o, nil)
		testutils.CheckSlots(t, o, nil)
	})
	t.Run("Split", func(t *testing.T) {
		o, err := protos.New(protos.Slots{
			{Name: "a", Value: 1},
			{Name: "m", Value: protos.Fn(func(self *protos.Object, args ...interface{}) interface{} { return nil })},
			{Name: "b", Value: "x"},
		})
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		testutils.CheckAttrs(t, o, []string{"a", "b"})
		testutils.CheckSlots(t, o, []string{"a", "b", "m"})
	})
	t.Run("BareFunc", func(t *testing.T) {
		// A function with Fn's shape is a method even without the named type.
		o, err := protos.New(protos.Slots{
			{Name: "m", Value: func(self *protos.Object, args ...interface{}) interface{} { return 7 }},
		})
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		testutils.CheckAttrs(t, o, nil)
		if v, err := o.Call("m"); err != nil || v != 7 {
			t.Errorf("wrong call result: have %v, %v; want 7, nil", v, err)
		}
	})
	t.Run("OtherFunc", func(t *testing.T) {
		// Functions of any other shape are attribute data.
		o, err := protos.New(protos.Slots{
			{Name: "f", Value: func() {}},
		})
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		testutils.CheckAttrs(t, o, []string{"f"})
	})
	t.Run("LastWins", func(t *testing.T) {
		o, err := protos.New(protos.Slots{
			{Name: "a", Value: 1},
			{Name: "b", Value: 2},
			{Name: "a", Value: 3},
		})
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		testutils.CheckAttrs(t, o, []string{"a", "b"})
		if v, _ := o.Call("a"); v != 3 {
			t.Errorf("wrong value for a: have %v, want 3", v)
		}
	})
	t.Run("EmptyName", func(t *testing.T) {
		_, err := protos.New(protos.Slots{{Name: "", Value: 1}})
		if !protos.IsInvalidArgument(err) {
			t.Errorf("wrong error for empty name: %v", err)
		}
	})
	t.Run("NilValue", func(t *testing.T) {
		o, err := protos.New(protos.Slots{{Name: "a", Value: nil}})
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		testutils.CheckAttrs(t, o, []string{"a"})
		if v, err := o.Call("a"); err != nil || v != nil {
			t.Errorf("wrong value for a: have %v, %v; want nil, nil", v, err)
		}
	})
}

// TestExtend tests attribute snapshotting, override shadowing, and the
// prototype link.
func TestExtend(t *testing.T) {
	t.Run("Snapshot", func(t *testing.T) {
		p := protos.Must(protos.New(protos.Slots{{Name: "a", Value: 1}}))
		c := protos.Must(p.Extend(nil))
		if _, err := p.Call("a", 2); err != nil {
			t.Fatalf("could not set a on p: %v", err)
		}
		if v, _ := p.Call("a"); v != 2 {
			t.Errorf("wrong value on p: have %v, want 2", v)
		}
		if v, _ := c.Call("a"); v != 1 {
			t.Errorf("child saw prototype mutation: have %v, want 1", v)
		}
	})
	t.Run("Shadow", func(t *testing.T) {
		p := protos.Must(protos.New(protos.Slots{{Name: "a", Value: 1}}))
		c := protos.Must(p.Extend(protos.Slots{{Name: "a", Value: 2}}))
		if v, _ := c.Call("a"); v != 2 {
			t.Errorf("wrong value on child: have %v, want 2", v)
		}
		if v, _ := p.Call("a"); v != 1 {
			t.Errorf("override leaked to prototype: have %v, want 1", v)
		}
		testutils.CheckAttrs(t, c, []string{"a"})
	})
	t.Run("Order", func(t *testing.T) {
		p := protos.Must(protos.New(protos.Slots{
			{Name: "a", Value: 1},
			{Name: "b", Value: 2},
		}))
		c := protos.Must(p.Extend(protos.Slots{
			{Name: "z", Value: 3},
			{Name: "b", Value: 4},
		}))
		// Caller names in their order, then inherited names in the
		// prototype's order.
		testutils.CheckAttrs(t, c, []string{"z", "b", "a"})
	})
	t.Run("MethodsNotCopied", func(t *testing.T) {
		person, homer, _ := testutils.Family(t)
		if _, ok := homer.LocalSlot("say_hi"); ok {
			t.Error("say_hi was copied onto the child")
		}
		if _, proto := homer.Resolve("say_hi"); proto != person {
			t.Errorf("say_hi resolved on wrong object: have %v, want %v", proto, person)
		}
	})
	t.Run("Proto", func(t *testing.T) {
		p := protos.Must(protos.New(nil))
		c := protos.Must(p.Extend(nil))
		if c.Proto() != p {
			t.Errorf("wrong proto: have %v, want %v", c.Proto(), p)
		}
	})
	t.Run("FalsySnapshot", func(t *testing.T) {
		// Construction stores falsy values directly; only the setter refuses
		// them. The snapshot taken by Extend goes through construction, so a
		// falsy attribute survives into the child.
		p := protos.Must(protos.New(protos.Slots{{Name: "a", Value: 0}}))
		c := protos.Must(p.Extend(nil))
		if v, _ := c.Call("a"); v != 0 {
			t.Errorf("wrong value on child: have %v, want 0", v)
		}
	})
	t.Run("EmptyName", func(t *testing.T) {
		p := protos.Must(protos.New(nil))
		_, err := p.Extend(protos.Slots{{Name: "", Value: 1}})
		if !protos.IsInvalidArgument(err) {
			t.Errorf("wrong error for empty name: %v", err)
		}
	})
}

// TestProtoChain tests that following Proto terminates in exactly as many
// steps as the extension depth used to build the object.
func TestProtoChain(t *testing.T) {
	const depth = 10
	o := protos.Must(protos.New(nil))
	for i := 0; i < depth; i++ {
		o = protos.Must(o.Extend(nil))
	}
	steps := 0
	for p := o.Proto(); p != nil; p = p.Proto() {
		steps++
		if steps > depth {
			t.Fatal("prototype chain does not terminate")
		}
	}
	if steps != depth {
		t.Errorf("wrong chain length: have %d, want %d", steps, depth)
	}
}

// TestAncestors tests lineage enumeration and membership.
func TestAncestors(t *testing.T) {
	person, homer, bart := testutils.Family(t)
	anc := bart.Ancestors()
	if len(anc) != 2 || anc[0] != homer || anc[1] != person {
		t.Errorf("wrong ancestors: have %v, want [%v %v]", anc, homer, person)
	}
	if len(person.Ancestors()) != 0 {
		t.Errorf("root has ancestors: %v", person.Ancestors())
	}
	cases := map[string]struct {
		o, kind *protos.Object
		want    bool
	}{
		"Self":     {bart, bart, true},
		"Proto":    {bart, homer, true},
		"Ancestor": {bart, person, true},
		"Down":     {person, bart, false},
		"Sibling":  {homer, bart, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if have := c.o.IsKindOf(c.kind); have != c.want {
				t.Errorf("wrong kind relation: have %v, want %v", have, c.want)
			}
		})
	}
}

package box

import (
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	x := MustOf(valueView, 42)
	y := MustOf(valueView, 42)
	z := MustOf(valueView, 43)

	if !Equal(&x, &y) {
		t.Fatal("42 != 42")
	}
	if Equal(&x, &z) {
		t.Fatal("42 == 43")
	}
	if !x.Equals(&y) || y.Equals(&z) {
		t.Fatal("method form disagrees with Equal")
	}
	if !Equal(&x, &x) {
		t.Fatal("wrapper not equal to itself")
	}
}

func TestEqualEmptiness(t *testing.T) {
	x := MustOf(valueView, 42)
	y := MustOf(valueView, 42)

	x.Reset()
	if Equal(&x, &y) {
		t.Fatal("empty == full")
	}
	if Equal(&y, &x) {
		t.Fatal("full == empty")
	}

	y.Reset()
	if !Equal(&x, &y) {
		t.Fatal("empty wrappers compare unequal")
	}

	// Emptiness is an identity, shared across views.
	e := New(eqOnlyView)
	if !Equal(&x, &e) {
		t.Fatal("empty wrappers of different views compare unequal")
	}
}

func TestEqualDifferentTypes(t *testing.T) {
	a := MustOf(valueView, 1)
	b := MustOf(valueView, "1")
	if Equal(&a, &b) {
		t.Fatal("int == string")
	}
}

func TestEqualUsesEqualMethod(t *testing.T) {
	a := MustOf(valueView, version{Major: 1, Minor: 2, Label: "rc1"})
	b := MustOf(valueView, version{Major: 1, Minor: 2, Label: "rc2"})
	c := MustOf(valueView, version{Major: 1, Minor: 3, Label: "rc1"})

	if !Equal(&a, &b) {
		t.Fatal("labels participate in equality despite Equal method")
	}
	if Equal(&a, &c) {
		t.Fatal("minor version ignored by Equal method")
	}
}

func TestEqualRequiresCapability(t *testing.T) {
	a := MustOf(shapeView, circle{R: 1})
	b := MustOf(shapeView, circle{R: 1})

	r := mustPanicTest(t, func() { Equal(&a, &b) })
	msg, ok := r.(string)
	if !ok || !strings.Contains(msg, "equatable") || !strings.Contains(msg, "shape") {
		t.Fatalf("panic = %v", r)
	}

	mustPanicTest(t, func() { Equal(nil, &b) })

	var detached Any
	mustPanicTest(t, func() { Equal(&detached, &b) })
}

func TestEqualAcrossWrapperKinds(t *testing.T) {
	a := MustOf(namedView, circle{R: 2})
	target := circle{R: 2}
	p, err := PtrTo(namedView, &target)
	if err != nil {
		t.Fatalf("PtrTo failed: %v", err)
	}

	if !Equal(&a, p) {
		t.Fatal("owning and pointer wrappers with equal payloads compare unequal")
	}
	if !Equal(p.Const(), a.ConstAddr()) {
		t.Fatal("const pointers do not participate in value equality")
	}

	target.R = 5
	if Equal(&a, p) {
		t.Fatal("pointer wrapper compares against a stale payload")
	}
}

package box

import (
	"strings"
	"testing"

	"github.com/wippyai/erasure/errors"
	"github.com/wippyai/erasure/typeid"
)

func TestPtrTo(t *testing.T) {
	target := circle{R: 1}
	p, err := PtrTo(namedView, &target)
	if err != nil {
		t.Fatalf("PtrTo failed: %v", err)
	}
	if p.Empty() {
		t.Fatal("bound pointer is empty")
	}
	if p.Type() != typeid.Of[circle]() {
		t.Fatalf("type = %s", p.Type().Name())
	}

	// Mutations through the pointer wrapper land on the target itself.
	if _, err := p.Call("scale-by", 3.0); err != nil {
		t.Fatalf("scale-by failed: %v", err)
	}
	if target.R != 3 {
		t.Fatalf("target.R = %v, want 3", target.R)
	}

	// And target mutations are visible through the wrapper.
	target.R = 10
	got, err := p.Call("area")
	if err != nil {
		t.Fatalf("area failed: %v", err)
	}
	c, _ := Cast[circle](p)
	if got.(float64) != c.Area() || c != &target {
		t.Fatal("pointer wrapper does not alias the target")
	}
}

func TestPtrToValidation(t *testing.T) {
	t.Run("nil interface", func(t *testing.T) {
		_, err := PtrTo(nil, &circle{})
		wantErrIs(t, err, errors.PhaseAlias, errors.KindNilInput)
	})

	t.Run("nil target", func(t *testing.T) {
		_, err := PtrTo(shapeView, nil)
		wantErrIs(t, err, errors.PhaseAlias, errors.KindNilInput)
	})

	t.Run("non-pointer target", func(t *testing.T) {
		_, err := PtrTo(shapeView, circle{})
		wantErrIs(t, err, errors.PhaseAlias, errors.KindTypeMismatch)
	})

	t.Run("nil typed pointer", func(t *testing.T) {
		_, err := PtrTo(shapeView, (*circle)(nil))
		wantErrIs(t, err, errors.PhaseAlias, errors.KindNilInput)
	})

	t.Run("unregistered type", func(t *testing.T) {
		type orphan struct{}
		_, err := PtrTo(shapeView, &orphan{})
		wantErrIs(t, err, errors.PhaseAlias, errors.KindNotRegistered)
	})
}

func TestAddrAliasesOwner(t *testing.T) {
	a := MustOf(shapeView, circle{R: 2})
	p := a.Addr()

	if p.Interface() != shapeView {
		t.Fatal("pointer view differs from owner view")
	}
	if _, err := p.Call("scale-by", 2.0); err != nil {
		t.Fatalf("scale-by failed: %v", err)
	}

	got, _ := a.Call("area")
	mine, _ := p.Call("area")
	if got.(float64) != mine.(float64) {
		t.Fatal("owner and alias observe different payloads")
	}

	// Pointer copies alias the same record.
	q := p
	MustCast[circle](q).R = 7
	c, _ := Cast[circle](&a)
	if c.R != 7 {
		t.Fatal("pointer copy does not alias the owner payload")
	}

	// Repeated Addr calls produce identity-equal pointers.
	if !p.Equal(a.Addr()) {
		t.Fatal("pointers into the same owner are not identity-equal")
	}
}

func TestAddrOfEmptyWrapper(t *testing.T) {
	a := New(shapeView)
	p := a.Addr()
	if !p.Empty() {
		t.Fatal("pointer into empty wrapper is not empty")
	}
	if p.Type() != typeid.None || p.Data() != nil {
		t.Fatal("empty pointer exposes payload state")
	}

	r := mustPanicTest(t, func() { p.Call("area") })
	if msg, ok := r.(string); !ok || !strings.Contains(msg, "empty") {
		t.Fatalf("panic = %v", r)
	}
}

func TestConstPtr(t *testing.T) {
	a := MustOf(shapeView, circle{R: 2})
	p := a.ConstAddr()

	t.Run("read-only op", func(t *testing.T) {
		got, err := p.Call("area")
		if err != nil {
			t.Fatalf("area failed: %v", err)
		}
		if got.(float64) <= 0 {
			t.Fatalf("area = %v", got)
		}
	})

	t.Run("mutating op panics", func(t *testing.T) {
		r := mustPanicTest(t, func() { p.Call("scale-by", 2.0) })
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "mutating") || !strings.Contains(msg, "scale-by") {
			t.Fatalf("panic = %v", r)
		}
	})

	t.Run("unknown op is an error", func(t *testing.T) {
		_, err := p.Call("perimeter")
		wantErrIs(t, err, errors.PhaseCall, errors.KindUnknownOp)
	})

	t.Run("same record as mutable pointer", func(t *testing.T) {
		mp, _ := Cast[circle](a.Addr())
		cp, _ := Cast[circle](p)
		if mp != cp {
			t.Fatal("const and mutable pointers reach different records")
		}
	})

	t.Run("from mutable pointer", func(t *testing.T) {
		cp := a.Addr().Const()
		if cp.Empty() || cp.Type() != typeid.Of[circle]() {
			t.Fatal("const conversion lost the record")
		}
	})
}

func TestConstPtrTo(t *testing.T) {
	target := checked{N: 4}
	p, err := ConstPtrTo(checkedView, &target)
	if err != nil {
		t.Fatalf("ConstPtrTo failed: %v", err)
	}
	if _, err := p.Call("validate"); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	mustPanicTest(t, func() { p.Call("halve") })
}

func TestPtrRebind(t *testing.T) {
	target := circle{R: 1}
	p, err := PtrTo(namedView, &target)
	if err != nil {
		t.Fatalf("PtrTo failed: %v", err)
	}

	t.Run("toward base", func(t *testing.T) {
		base, err := p.Rebind(shapeView)
		if err != nil {
			t.Fatalf("Rebind failed: %v", err)
		}
		if base.Interface() != shapeView {
			t.Fatal("rebound pointer has wrong view")
		}
		_, err = base.Call("label")
		wantErrIs(t, err, errors.PhaseCall, errors.KindUnknownOp)
		if _, err := base.Call("area"); err != nil {
			t.Fatalf("area through base view failed: %v", err)
		}
	})

	t.Run("unrelated view", func(t *testing.T) {
		_, err := p.Rebind(valueView)
		wantErrIs(t, err, errors.PhaseAlias, errors.KindTypeMismatch)
	})

	t.Run("nil view", func(t *testing.T) {
		_, err := p.Rebind(nil)
		wantErrIs(t, err, errors.PhaseAlias, errors.KindNilInput)
	})

	t.Run("const rebind", func(t *testing.T) {
		base, err := p.Const().Rebind(shapeView)
		if err != nil {
			t.Fatalf("Rebind failed: %v", err)
		}
		mustPanicTest(t, func() { base.Call("scale-by", 2.0) })
	})
}

func TestPtrEqualIsTargetIdentity(t *testing.T) {
	x := circle{R: 1}
	y := circle{R: 1}

	px1, _ := PtrTo(namedView, &x)
	px2, _ := PtrTo(namedView, &x)
	py, _ := PtrTo(namedView, &y)

	if !px1.Equal(px2) {
		t.Fatal("pointers to the same target compare unequal")
	}
	if px1.Equal(py) {
		t.Fatal("pointers to equal but distinct targets compare equal")
	}

	var e1, e2 Ptr
	if !e1.Equal(e2) {
		t.Fatal("empty pointers compare unequal")
	}

	// Payload equality is a separate relation from target identity.
	if !px1.Equals(py) {
		t.Fatal("equal payloads behind distinct targets compare unequal by value")
	}
}

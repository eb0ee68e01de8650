package box

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/wippyai/erasure/errors"
	"github.com/wippyai/erasure/iface"
)

// Shared fixtures for the package tests. Views are built once; concrete
// types register in init so every test file sees the same bindings.

var (
	shapeView = iface.New("shape",
		iface.Extends(iface.Copyable),
		iface.Op("area"),
		iface.MutOp("scale-by"))

	namedView = iface.New("named-shape",
		iface.Extends(shapeView, iface.Equatable),
		iface.Op("label"))

	wideView = iface.New("wide-shape",
		iface.Extends(shapeView),
		iface.Words(32))

	valueView  = iface.New("value", iface.Extends(iface.Semiregular))
	eqOnlyView = iface.New("eq-value", iface.Extends(iface.Equatable))
	moveOnly   = iface.New("move-value", iface.Extends(iface.Movable))
	frozenView = iface.New("frozen-value")
	copyView   = iface.New("copy-value", iface.Extends(iface.Copyable))

	trackedView = iface.New("tracked-value", iface.Extends(iface.Copyable))

	checkedView = iface.New("checked-value",
		iface.Op("validate"),
		iface.MutOp("halve"))
)

type circle struct{ R float64 }

func (c *circle) Area() float64     { return math.Pi * c.R * c.R }
func (c *circle) ScaleBy(f float64) { c.R *= f }
func (c *circle) Label() string     { return "circle" }

type rect struct{ W, H float64 }

func (r *rect) Area() float64     { return r.W * r.H }
func (r *rect) ScaleBy(f float64) { r.W *= f; r.H *= f }

// blob is larger than the default three-word capacity in every word size.
type blob struct{ Vals [16]float64 }

func (b *blob) Area() float64 {
	var sum float64
	for _, v := range b.Vals {
		sum += v
	}
	return sum
}

func (b *blob) ScaleBy(f float64) {
	for i := range b.Vals {
		b.Vals[i] *= f
	}
}

type unit struct{}

func (unit) Area() float64   { return 0 }
func (*unit) ScaleBy(float64) {}

// stone registers with WithPin in init; it has no operations.
type stone struct{ V int }

// tracked counts Drop calls through a shared counter.
type tracked struct {
	drops *int
	id    int
}

func (t *tracked) Drop() { *t.drops++ }

// version equates on Major/Minor only, through its Equal method.
type version struct {
	Major, Minor int
	Label        string
}

func (v version) Equal(other version) bool {
	return v.Major == other.Major && v.Minor == other.Minor
}

// cloneable deep-copies its slice through its Clone method.
type cloneable struct{ Data []int }

func (c cloneable) Clone() cloneable {
	out := cloneable{Data: make([]int, len(c.Data))}
	copy(out.Data, c.Data)
	return out
}

// shallow has no Clone method, so copies share the backing array.
type shallow struct{ Data []int }

type checked struct{ N int }

func (c *checked) Validate() error {
	if c.N < 0 {
		return stderrors.New("negative")
	}
	return nil
}

func (c *checked) Halve() (int, error) {
	if c.N%2 != 0 {
		return 0, stderrors.New("odd")
	}
	c.N /= 2
	return c.N, nil
}

type webThing struct{ Header string }

func (w *webThing) ParseHTTPHeader() string { return w.Header }

var parseView = iface.New("parse-thing", iface.Op("parse-http-header"))

func init() {
	MustRegister[circle](namedView)
	MustRegister[rect](shapeView)
	MustRegister[blob](wideView)
	MustRegister[unit](shapeView)
	MustRegister[int](valueView)
	MustRegister[string](valueView)
	MustRegister[int](eqOnlyView)
	MustRegister[int](moveOnly)
	MustRegister[stone](frozenView, WithPin())
	MustRegister[stone](moveOnly, WithPin())
	MustRegister[tracked](trackedView)
	MustRegister[version](valueView)
	MustRegister[cloneable](copyView)
	MustRegister[shallow](copyView)
	MustRegister[checked](checkedView)
	MustRegister[webThing](parseView)
}

func mustPanicTest(t *testing.T, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
	return nil
}

func wantErrIs(t *testing.T, err error, phase errors.Phase, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected [%s] %s error, got nil", phase, kind)
	}
	if !stderrors.Is(err, &errors.Error{Phase: phase, Kind: kind}) {
		t.Fatalf("expected [%s] %s, got: %v", phase, kind, err)
	}
}

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/erasure/box"
	"github.com/wippyai/erasure/iface"
)

// The demo binary carries a small model domain: shapes for dispatch and
// storage, values for equality.
var (
	shape = iface.New("shape",
		iface.Extends(iface.Copyable),
		iface.Op("area"),
		iface.MutOp("scale-by"))

	wideShape = iface.New("wide-shape",
		iface.Extends(shape),
		iface.Words(32))

	value = iface.New("value", iface.Extends(iface.Semiregular))
)

type circle struct{ R float64 }

func (c *circle) Area() float64     { return math.Pi * c.R * c.R }
func (c *circle) ScaleBy(f float64) { c.R *= f }

type rect struct{ W, H float64 }

func (r *rect) Area() float64     { return r.W * r.H }
func (r *rect) ScaleBy(f float64) { r.W *= f; r.H *= f }

type grid struct{ Cells [16]float64 }

func (g *grid) Area() float64 {
	var sum float64
	for _, c := range g.Cells {
		sum += c
	}
	return sum
}

func (g *grid) ScaleBy(f float64) {
	for i := range g.Cells {
		g.Cells[i] *= f
	}
}

// sensor reports a reading whose address other machinery watches, so it
// registers pinned.
type sensor struct{ Reading float64 }

func (s *sensor) Area() float64     { return s.Reading }
func (s *sensor) ScaleBy(f float64) { s.Reading *= f }

type release struct {
	Major, Minor int
	Notes        string
}

func (r release) Equal(other release) bool {
	return r.Major == other.Major && r.Minor == other.Minor
}

func init() {
	box.MustRegister[circle](shape)
	box.MustRegister[rect](shape)
	box.MustRegister[grid](wideShape)
	box.MustRegister[sensor](shape, box.WithPin())
	box.MustRegister[int](value)
	box.MustRegister[string](value)
	box.MustRegister[release](value)
}

func main() {
	var (
		demo        = flag.String("demo", "", "Scripted walkthrough (basic, alias, equality, storage)")
		list        = flag.Bool("list", false, "List demo interfaces and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		box.SetLogger(logger)
	}

	if *list {
		listInterfaces()
		return
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *demo == "" {
		fmt.Fprintln(os.Stderr, "Usage: demo -demo <basic|alias|equality|storage>")
		fmt.Fprintln(os.Stderr, "       demo -list")
		fmt.Fprintln(os.Stderr, "       demo -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*demo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listInterfaces() {
	for _, in := range []*iface.Interface{shape, wideShape, value} {
		var bases []string
		for _, b := range in.Bases() {
			bases = append(bases, b.Name())
		}
		fmt.Printf("%s", in.Name())
		if len(bases) > 0 {
			fmt.Printf(" extends %s", strings.Join(bases, ", "))
		}
		fmt.Printf(" (capacity %d words)\n", in.WordCap())

		for _, op := range in.Operations() {
			marker := " "
			if op.Mutating {
				marker = "*"
			}
			fmt.Printf("  %s %s (from %s)\n", marker, op.Name, op.Owner.Name())
		}
	}
}

func run(demo string) error {
	switch demo {
	case "basic":
		return demoBasic()
	case "alias":
		return demoAlias()
	case "equality":
		return demoEquality()
	case "storage":
		return demoStorage()
	default:
		return fmt.Errorf("unknown demo %q", demo)
	}
}

func demoBasic() error {
	fmt.Println("One wrapper, any registered shape:")

	a, err := box.Of(shape, circle{R: 2})
	if err != nil {
		return fmt.Errorf("construct: %w", err)
	}
	area, err := a.Call("area")
	if err != nil {
		return fmt.Errorf("call area: %w", err)
	}
	fmt.Printf("  circle{R: 2}.area = %.2f\n", area)

	if err := a.Set(rect{W: 3, H: 4}); err != nil {
		return fmt.Errorf("set rect: %w", err)
	}
	area, _ = a.Call("area")
	fmt.Printf("  rect{3, 4}.area = %.2f (payload type %s)\n", area, a.Type().Name())

	if _, err := a.Call("scale-by", 2.0); err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	area, _ = a.Call("area")
	fmt.Printf("  after scale-by(2): area = %.2f\n", area)

	// Move leaves the source empty; the payload survives in the target.
	b, err := box.Take(shape, &a)
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}
	fmt.Printf("  after move: source empty = %v, target type = %s\n",
		a.Empty(), b.Type().Name())

	if r, ok := box.Cast[rect](&b); ok {
		fmt.Printf("  concrete payload: %+v\n", *r)
	}
	return nil
}

func demoAlias() error {
	fmt.Println("Pointer wrappers alias storage they do not own:")

	target := circle{R: 1}
	p, err := box.PtrTo(shape, &target)
	if err != nil {
		return fmt.Errorf("bind pointer: %w", err)
	}

	if _, err := p.Call("scale-by", 5.0); err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	fmt.Printf("  after scale-by(5) through wrapper: target.R = %v\n", target.R)

	target.R = 2
	area, err := p.Call("area")
	if err != nil {
		return fmt.Errorf("call area: %w", err)
	}
	fmt.Printf("  after direct write target.R = 2: wrapper area = %.2f\n", area)

	// Read-only wrappers reject mutation outright.
	cp := p.Const()
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("  const wrapper rejected scale-by: %v\n", r)
			}
		}()
		cp.Call("scale-by", 2.0)
	}()

	area, _ = cp.Call("area")
	fmt.Printf("  const wrapper still reads: area = %.2f\n", area)
	return nil
}

func demoEquality() error {
	fmt.Println("Payload equality without knowing the payload type:")

	x := box.MustOf(value, 42)
	y := box.MustOf(value, 42)
	z := box.MustOf(value, 43)
	fmt.Printf("  42 == 42: %v\n", box.Equal(&x, &y))
	fmt.Printf("  42 == 43: %v\n", box.Equal(&x, &z))

	s := box.MustOf(value, "42")
	fmt.Printf("  int 42 == string \"42\": %v (different identities)\n", box.Equal(&x, &s))

	x.Reset()
	fmt.Printf("  empty == 42: %v\n", box.Equal(&x, &y))
	y.Reset()
	fmt.Printf("  empty == empty: %v\n", box.Equal(&x, &y))

	v1 := box.MustOf(value, release{Major: 1, Minor: 2, Notes: "first"})
	v2 := box.MustOf(value, release{Major: 1, Minor: 2, Notes: "respin"})
	fmt.Printf("  release 1.2 == release 1.2 (notes differ): %v\n", box.Equal(&v1, &v2))
	return nil
}

func demoStorage() error {
	fmt.Println("Storage mode follows the view's capacity and the payload:")

	report := func(label string, a *box.Any) {
		where := "heap"
		if a.InSitu() {
			where = "in place"
		}
		fmt.Printf("  %-32s %s\n", label, where)
	}

	a := box.MustOf(shape, circle{R: 1})
	report("circle under shape", &a)

	b := box.MustOf(shape, grid{})
	report("grid under shape", &b)

	c := box.MustOf(wideShape, grid{})
	report("grid under wide-shape", &c)

	d := box.MustOf(shape, sensor{Reading: 3})
	report("pinned sensor under shape", &d)

	// Moving toward a narrower view re-decides the mode.
	e := box.New(shape)
	if err := e.MoveFrom(&c); err != nil {
		return fmt.Errorf("move: %w", err)
	}
	report("grid moved wide-shape -> shape", &e)
	return nil
}

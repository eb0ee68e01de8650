package iface

import "fmt"

// defaultWords is the in-place capacity a wrapper grants its payload when
// no interface along the chain overrides it.
const defaultWords = 3

// Operation is a named dispatch slot declared by an interface. Mutating
// operations require mutable access to the payload and are rejected
// through const views.
type Operation struct {
	Name     string
	Owner    *Interface
	Mutating bool
}

// Interface describes a composable set of operations. Build one with New;
// the value is immutable afterwards.
type Interface struct {
	name    string
	bases   []*Interface
	decl    []Operation
	words   int
	chain   []*Interface
	ops     []Operation
	wordCap int
}

// Option configures an Interface under construction.
type Option func(*Interface)

// Extends declares base interfaces. Bases compose recursively; a base the
// chain already satisfies is not added twice.
func Extends(bases ...*Interface) Option {
	return func(in *Interface) {
		for _, b := range bases {
			if b == nil {
				panic("iface: nil base interface")
			}
			for _, prev := range in.bases {
				if prev == b {
					panic(fmt.Sprintf("iface: duplicate base %q", b.name))
				}
			}
			in.bases = append(in.bases, b)
		}
	}
}

// Op declares a read-only operation. Read-only operations are callable
// through both mutable and const views.
func Op(name string) Option {
	return func(in *Interface) {
		in.decl = append(in.decl, Operation{Name: name})
	}
}

// MutOp declares a mutating operation, callable only through owning
// wrappers and mutable pointer wrappers.
func MutOp(name string) Option {
	return func(in *Interface) {
		in.decl = append(in.decl, Operation{Name: name, Mutating: true})
	}
}

// Words overrides the in-place capacity of wrappers viewed through this
// interface, in pointer-sized words. The effective capacity of a wrapper
// is the maximum override along its full chain.
func Words(n int) Option {
	return func(in *Interface) {
		if n < 1 {
			panic(fmt.Sprintf("iface: word capacity %d out of range", n))
		}
		in.words = n
	}
}

// New builds an interface descriptor. It panics on declaration defects:
// empty or duplicate operation names along the chain, nil or duplicate
// bases, empty interface name. Cycles cannot be expressed: an interface
// can only extend descriptors that already exist.
func New(name string, opts ...Option) *Interface {
	if name == "" {
		panic("iface: empty interface name")
	}
	in := &Interface{name: name}
	for _, opt := range opts {
		opt(in)
	}
	for i := range in.decl {
		if in.decl[i].Name == "" {
			panic(fmt.Sprintf("iface: empty operation name on %q", name))
		}
		in.decl[i].Owner = in
	}
	in.link()
	return in
}

// Name returns the diagnostic name.
func (in *Interface) Name() string { return in.name }

// String implements fmt.Stringer.
func (in *Interface) String() string { return in.name }

// Bases returns the direct bases, declaration order.
func (in *Interface) Bases() []*Interface {
	out := make([]*Interface, len(in.bases))
	copy(out, in.bases)
	return out
}

// Declared returns the operations declared directly on this interface.
func (in *Interface) Declared() []Operation {
	out := make([]Operation, len(in.decl))
	copy(out, in.decl)
	return out
}

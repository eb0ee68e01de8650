package iface

import "fmt"

// link flattens the extension graph. Called once from New, before the
// descriptor escapes, so the result is immutable and lock-free to read.
func (in *Interface) link() {
	in.chain = appendMissing(nil, in)

	in.wordCap = defaultWords
	for _, c := range in.chain {
		if c.words > in.wordCap {
			in.wordCap = c.words
		}
		for _, op := range c.decl {
			for _, prev := range in.ops {
				if prev.Name == op.Name {
					panic(fmt.Sprintf("iface: operation %q declared by both %q and %q in chain of %q",
						op.Name, prev.Owner.name, c.name, in.name))
				}
			}
			in.ops = append(in.ops, op)
		}
	}
}

// appendMissing folds one interface into a chain under construction:
// bases first, recursively, then the interface itself, skipping anything
// the chain already satisfies.
func appendMissing(chain []*Interface, in *Interface) []*Interface {
	for _, have := range chain {
		if have == in {
			return chain
		}
	}
	for _, b := range in.bases {
		chain = appendMissing(chain, b)
	}
	return append(chain, in)
}

// Chain returns the linearized extension chain: every interface this one
// satisfies, bases before dependents, each exactly once, self last.
func (in *Interface) Chain() []*Interface {
	out := make([]*Interface, len(in.chain))
	copy(out, in.chain)
	return out
}

// Satisfies reports whether in provides every capability of base. The
// relation is reflexive and identity-based: it holds exactly when base is
// in the chain.
func (in *Interface) Satisfies(base *Interface) bool {
	if base == nil {
		return false
	}
	for _, c := range in.chain {
		if c == base {
			return true
		}
	}
	return false
}

// Operations returns every operation along the chain, chain order. Names
// are unique across the chain; New enforces that at declaration time.
func (in *Interface) Operations() []Operation {
	out := make([]Operation, len(in.ops))
	copy(out, in.ops)
	return out
}

// Lookup finds an operation by name anywhere along the chain.
func (in *Interface) Lookup(name string) (Operation, bool) {
	for _, op := range in.ops {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// WordCap returns the in-place capacity of wrappers viewed through this
// interface, in pointer-sized words.
func (in *Interface) WordCap() int {
	return in.wordCap
}

// Package box implements value-semantic type erasure: owning and pointer
// wrappers that hold any registered concrete type behind a composable
// interface view, with capability-gated copy, move, swap and equality.
//
// # Registration
//
// A concrete type opts in per interface. Operations resolve to exported
// methods by kebab-case name, or to explicit functions:
//
//	var Shape = iface.New("shape",
//	    iface.Extends(iface.Copyable),
//	    iface.Op("area"),
//	    iface.MutOp("scale"),
//	)
//
//	type Circle struct{ R float64 }
//
//	func (c *Circle) Area() float64   { return math.Pi * c.R * c.R }
//	func (c *Circle) Scale(f float64) { c.R *= f }
//
//	box.MustRegister[Circle](Shape)
//
// Registration compiles an immutable dispatch table for the pair; wrappers
// share it. The table carries every operation along the interface chain
// plus the equality and copy implementations the chain's capabilities
// need.
//
// # Wrappers
//
//	a := box.MustOf(Shape, Circle{R: 2})
//	area, _ := a.Call("area")
//	c, ok := box.Cast[Circle](&a)
//
// Any owns its payload exclusively: emplacement copies the value into a
// fresh box, reset and overwrite release it exactly once (payloads may
// implement erasure.Dropper to observe that), and moves transfer
// ownership. Ptr and ConstPtr alias payloads owned elsewhere and never
// release anything.
//
// # Storage model
//
// A wrapper stores its payload record either in place or behind one heap
// promotion. In place requires the payload to fit the view's word
// capacity (iface.Words, chain maximum, three words by default) and to be
// safe to keep inside the wrapper; WithPin forces pinned payloads of
// movable views to the heap so aliases observe transfers. Swap exchanges
// record state wholesale and never allocates. Moving between views of
// different capacity re-decides the mode: a record that no longer fits is
// promoted, never truncated.
//
// # Views and widening
//
// A wrapper's view bounds what it can do: operations outside the view's
// chain are invisible even when the registered binding carries them, and
// capability bundles (Movable, Copyable, Equatable) gate move, copy and
// equality. Converting along the extension relation goes from derived to
// base: Take and CopyOf accept sources whose view satisfies the
// destination view, and Rebind narrows pointer wrappers the same way.
//
// # Failure model
//
// Data-dependent conditions return errors: unregistered types, unknown
// operation names, argument mismatches, incompatible assignment views.
// Usage defects panic: dispatching through an empty wrapper, mutating
// through a const pointer, asking for a capability the view does not
// carry, lying to StaticCast. Checked casts report mismatch by
// (nil, false); MustCast panics with a *errors.Error.
//
// # Thread safety
//
// Registration and view resolution are safe for concurrent use. Wrapper
// values are not: a wrapper belongs to one goroutine, or access must be
// synchronized externally. Compiled tables are immutable and shared
// freely.
package box

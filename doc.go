// Package erasure provides runtime interface polymorphism over plain Go
// values: any registered concrete type can be held, copied, moved, and
// dispatched through interface descriptors assembled at runtime.
//
// Unlike Go interfaces, the interfaces here are first-class values built
// with iface.New, compose through extension with duplicate-base folding,
// and separate three concerns that Go interfaces fuse: which operations a
// payload answers (the binding), which of them a holder may reach (the
// view), and how the payload is stored (in place or on the heap).
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	erasure/             Root package with the Dropper payload hook
//	├── iface/           Interface descriptors, extension, capability bundles
//	├── typeid/          Concrete type identity tokens
//	├── box/             Wrappers: Any, Ptr, ConstPtr, registration, dispatch
//	├── errors/          Structured error types for debugging
//	└── cmd/demo/        Interactive wrapper inspector
//
// # Quick Start
//
// Declare an interface, register a type, and dispatch:
//
//	var Shape = iface.New("shape",
//	    iface.Extends(iface.Copyable),
//	    iface.Op("area"),
//	    iface.MutOp("scale-by"),
//	)
//
//	type Circle struct{ R float64 }
//
//	func (c *Circle) Area() float64     { return math.Pi * c.R * c.R }
//	func (c *Circle) ScaleBy(f float64) { c.R *= f }
//
//	func init() { box.MustRegister[Circle](Shape) }
//
//	a := box.MustOf(Shape, Circle{R: 2})
//	area, err := a.Call("area")
//
// # Capabilities
//
// Four built-in interfaces gate the value operations: iface.Movable
// (transfer and swap), iface.Copyable (clone and copy assignment),
// iface.Equatable (payload equality), and iface.Semiregular bundling all
// three. An interface acquires a capability by extending it; wrappers
// whose view lacks the capability treat the operation as a usage defect.
//
// # Thread Safety
//
// Interface descriptors and compiled bindings are immutable and safe for
// concurrent use; registration may run concurrently with lookups.
// Individual wrappers are NOT thread-safe and should be used by a single
// goroutine, or access must be synchronized.
//
// # Storage Model
//
// Each wrapper records whether its payload bookkeeping lives inside the
// wrapper or behind one heap indirection, decided per view from the
// interface's word capacity and the payload's pinning. Assigning across
// views with different capacities re-decides the mode; heap records
// transfer by pointer, so aliases survive moves.
package erasure

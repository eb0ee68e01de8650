// Package iface defines runtime interface descriptors and the composition
// algebra that combines them.
//
// An Interface names a set of operations a payload can be asked to perform.
// Interfaces compose through Extends: a derived interface carries every
// capability of its bases plus its own declarations. Descriptors are plain
// values built once, usually in var blocks:
//
//	var Shape = iface.New("shape",
//	    iface.Extends(iface.Copyable),
//	    iface.Op("area"),
//	    iface.MutOp("scale"),
//	)
//
// # Linearization
//
// Chain flattens the extension graph into a deterministic order: bases
// before the interfaces that require them, each interface exactly once.
// Extending an interface the chain already satisfies adds nothing, so
// diamond-shaped graphs stay flat:
//
//	A := iface.New("a", iface.Extends(iface.Copyable))
//	B := iface.New("b", iface.Extends(iface.Copyable))
//	C := iface.New("c", iface.Extends(A, B))
//	// C.Chain() = [movable, copyable, a, b, c]
//
// Satisfaction is reflexive and follows the chain: C satisfies A, B,
// Copyable, Movable and C itself.
//
// # Capability bundles
//
// Four built-in markers gate wrapper behavior in package box:
//
//   - Movable: payloads may be transferred between wrappers (move, swap).
//   - Copyable: extends Movable; payloads may be cloned.
//   - Equatable: same-type payloads compare for equality.
//   - Semiregular: Copyable plus Equatable.
//
// Builtins declare no operations of their own; the engine derives their
// behavior per concrete type at registration.
//
// # Identity
//
// Interface identity is the descriptor pointer. Two descriptors built with
// the same name are unrelated; names exist for diagnostics only.
//
// Descriptors are immutable after New and safe for concurrent use.
package iface

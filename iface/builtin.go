package iface

// Built-in capability bundles. They declare no operations; the engine
// derives their behavior per concrete type when a binding is compiled.
var (
	// Movable marks payloads that may be transferred out of a wrapper.
	// Move assignment, swap and take require it.
	Movable = New("movable")

	// Copyable marks payloads that may be cloned. Copy construction,
	// copy assignment and detaching copies from reference wrappers
	// require it. Copyable payloads are necessarily movable.
	Copyable = New("copyable", Extends(Movable))

	// Equatable marks payloads comparable for equality with payloads of
	// the same concrete type.
	Equatable = New("equatable")

	// Semiregular bundles Copyable and Equatable.
	Semiregular = New("semiregular", Extends(Copyable, Equatable))
)

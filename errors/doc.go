// Package errors provides structured error types for the erasure library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the Go payload type, the
// interface and operation involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCall, errors.KindTypeMismatch).
//		Iface("shape").
//		Op("scale").
//		GoType("string").
//		Detail("argument 1: have string, want float64").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotRegistered(errors.PhaseEmplace, "main.Circle", "shape")
//	err := errors.UnknownOp("shape", "perimeter")
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so callers can test for a category:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseCast, Kind: errors.KindTypeMismatch}) {
//		// checked cast failed
//	}
package errors

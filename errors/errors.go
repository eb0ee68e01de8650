package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseBind    Phase = "bind"    // binding compilation and registration
	PhaseEmplace Phase = "emplace" // constructing or setting a payload
	PhaseAssign  Phase = "assign"  // copy and move assignment
	PhaseCall    Phase = "call"    // operation dispatch
	PhaseCast    Phase = "cast"    // payload recovery
	PhaseAlias   Phase = "alias"   // pointer wrapper binding
)

// Kind categorizes the error
type Kind string

const (
	KindNotRegistered Kind = "not_registered"
	KindTypeMismatch  Kind = "type_mismatch"
	KindUnknownOp     Kind = "unknown_op"
	KindBadSignature  Kind = "bad_signature"
	KindArity         Kind = "arity"
	KindNotEquatable  Kind = "not_equatable"
	KindDetached      Kind = "detached"
	KindNilInput      Kind = "nil_input"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Iface  string
	Op     string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Iface != "" || e.Op != "" {
		b.WriteString(" at ")
		b.WriteString(e.Iface)
		if e.Iface != "" && e.Op != "" {
			b.WriteByte('.')
		}
		b.WriteString(e.Op)
	}

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// GoType sets the Go payload type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Iface sets the interface name
func (b *Builder) Iface(name string) *Builder {
	b.err.Iface = name
	return b
}

// Op sets the operation name
func (b *Builder) Op(name string) *Builder {
	b.err.Op = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotRegistered reports a concrete type with no binding satisfying an interface
func NotRegistered(phase Phase, goType, iface string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotRegistered,
		GoType: goType,
		Iface:  iface,
		Detail: fmt.Sprintf("no binding of %s satisfies %q", goType, iface),
	}
}

// UnknownOp reports an operation name absent from the view's chain
func UnknownOp(iface, op string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindUnknownOp,
		Iface:  iface,
		Op:     op,
		Detail: fmt.Sprintf("operation %q not declared by %q or its bases", op, iface),
	}
}

// BadCast reports a checked cast to the wrong concrete type
func BadCast(have, want string) *Error {
	return &Error{
		Phase:  PhaseCast,
		Kind:   KindTypeMismatch,
		GoType: have,
		Detail: fmt.Sprintf("payload is %s, not %s", have, want),
	}
}

// ArgMismatch reports an argument of the wrong type at a dispatch boundary
func ArgMismatch(iface, op string, index int, have, want string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindTypeMismatch,
		Iface:  iface,
		Op:     op,
		GoType: have,
		Detail: fmt.Sprintf("argument %d: have %s, want %s", index, have, want),
	}
}

// Arity reports a call with the wrong number of arguments
func Arity(iface, op string, have, want int) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindArity,
		Iface:  iface,
		Op:     op,
		Detail: fmt.Sprintf("have %d arguments, want %d", have, want),
		Value:  have,
	}
}

// BadSignature reports an implementation whose shape cannot be bound
func BadSignature(goType, op, detail string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindBadSignature,
		GoType: goType,
		Op:     op,
		Detail: detail,
	}
}

// MissingOp reports a chain operation with no implementation on the type
func MissingOp(goType, iface, op, method string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindBadSignature,
		GoType: goType,
		Iface:  iface,
		Op:     op,
		Detail: fmt.Sprintf("no method %s and no explicit implementation", method),
	}
}

// NotEquatable reports a type that cannot satisfy the equality capability
func NotEquatable(goType, iface string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindNotEquatable,
		GoType: goType,
		Iface:  iface,
		Detail: "type is not comparable and defines neither Equal method nor explicit equality",
	}
}

// Detached reports an operation on a wrapper with no interface bound
func Detached(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDetached,
		Detail: "wrapper has no interface bound",
	}
}

// NilInput reports a nil argument where a value is required
func NilInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

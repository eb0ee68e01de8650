// Package typeid provides opaque, comparable identity tokens for Go types.
//
// Wrappers report the identity of their payload as an ID. Checked casts
// compare IDs before touching the payload. The zero ID is None, the
// identity of "no payload".
package typeid

import "reflect"

// ID identifies a concrete Go type. IDs are comparable with ==; the zero
// value is None.
type ID struct {
	rt reflect.Type
}

// None is the identity of the absent payload. Empty wrappers report it.
var None ID

// Of returns the identity of the static type T.
func Of[T any]() ID {
	return ID{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// For returns the identity of v's dynamic type. For(nil) returns None.
func For(v any) ID {
	if v == nil {
		return None
	}
	return ID{rt: reflect.TypeOf(v)}
}

// FromReflect wraps an existing reflect.Type. A nil argument yields None.
func FromReflect(rt reflect.Type) ID {
	return ID{rt: rt}
}

// IsNone reports whether id is the absent-payload identity.
func (id ID) IsNone() bool {
	return id.rt == nil
}

// Reflect returns the underlying reflect.Type, or nil for None.
func (id ID) Reflect() reflect.Type {
	return id.rt
}

// Size returns the payload size in bytes, 0 for None.
func (id ID) Size() uintptr {
	if id.rt == nil {
		return 0
	}
	return id.rt.Size()
}

// Name returns a human-readable name for the type, e.g. "int",
// "geometry.Circle" or "[]string". None renders as "<none>".
func (id ID) Name() string {
	if id.rt == nil {
		return "<none>"
	}
	return id.rt.String()
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return id.Name()
}

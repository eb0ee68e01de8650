package box

import (
	"github.com/wippyai/erasure/errors"
	"github.com/wippyai/erasure/typeid"
)

// Cast recovers the payload of an erased view as *T after a type-identity
// check. It returns (nil, false) on a mismatch or an empty source. The
// returned pointer is the payload box itself: stable across calls, and
// mutations through it are visible to the wrapper and all its aliases.
func Cast[T any](src View) (*T, bool) {
	if src == nil {
		return nil, false
	}
	inst := src.viewRecord()
	if inst == nil {
		return nil, false
	}
	if inst.typeID() != typeid.Of[T]() {
		return nil, false
	}
	return inst.data.(*T), true
}

// MustCast is Cast that panics with a *errors.Error (PhaseCast,
// KindTypeMismatch) on mismatch or empty source.
func MustCast[T any](src View) *T {
	p, ok := Cast[T](src)
	if !ok {
		have := typeid.None
		if src != nil {
			if inst := src.viewRecord(); inst != nil {
				have = inst.typeID()
			}
		}
		panic(errors.BadCast(have.Name(), typeid.Of[T]().Name()))
	}
	return p
}

// StaticCast recovers the payload without the identity check. The caller
// asserts the type is already known; a wrong assertion panics with Go's
// own conversion failure. Empty sources return nil.
func StaticCast[T any](src View) *T {
	if src == nil {
		return nil
	}
	inst := src.viewRecord()
	if inst == nil {
		return nil
	}
	return inst.data.(*T)
}

package box

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/erasure/errors"
	"github.com/wippyai/erasure/iface"
	"github.com/wippyai/erasure/typeid"
)

// Any is a value-semantic owning wrapper: it holds one payload of any
// registered concrete type and exposes it through an interface view.
//
// The zero Any is a detached empty wrapper: observable and resettable,
// usable as an assignment destination (it adopts the source's view), but
// unable to emplace concrete values until it has a view.
//
// Any values are not safe for concurrent mutation. Copy them with Clone
// or CopyFrom; plain struct assignment aliases the payload and is not
// supported.
type Any struct {
	view  *iface.Interface
	proxy valueProxy
}

// New returns an empty wrapper viewed through in. It panics on a nil
// interface; wrapper declarations are static program structure.
func New(in *iface.Interface) Any {
	if in == nil {
		panic("box: New with nil interface")
	}
	return Any{view: in}
}

// Of constructs a wrapper owning a copy of v. The payload type is exactly
// reflect.TypeOf(v) and must be registered for an interface satisfying in.
func Of(in *iface.Interface, v any) (Any, error) {
	if in == nil {
		return Any{}, errors.NilInput(errors.PhaseEmplace, "nil interface")
	}
	if v == nil {
		return Any{}, errors.NilInput(errors.PhaseEmplace, "nil value")
	}
	a := Any{view: in}
	if err := a.emplace(v); err != nil {
		return Any{}, err
	}
	return a, nil
}

// MustOf is Of that panics on error.
func MustOf(in *iface.Interface, v any) Any {
	a, err := Of(in, v)
	if err != nil {
		panic(err)
	}
	return a
}

// Take move-constructs a wrapper viewed through in from src, leaving src
// empty. src's view must satisfy in; in must satisfy Movable.
func Take(in *iface.Interface, src *Any) (Any, error) {
	if in == nil {
		return Any{}, errors.NilInput(errors.PhaseAssign, "nil interface")
	}
	a := New(in)
	if err := a.MoveFrom(src); err != nil {
		return Any{}, err
	}
	return a, nil
}

// CopyOf copy-constructs a wrapper viewed through in from any erased
// source. A pointer-wrapper source yields a copy detached from the
// referent. in must satisfy Copyable.
func CopyOf(in *iface.Interface, src View) (Any, error) {
	if in == nil {
		return Any{}, errors.NilInput(errors.PhaseAssign, "nil interface")
	}
	a := New(in)
	if err := a.CopyFrom(src); err != nil {
		return Any{}, err
	}
	return a, nil
}

// emplace replaces the payload with a copy of v. The new box is built
// before the old payload drops, so v may be derived from the current
// payload.
func (a *Any) emplace(v any) error {
	rt := reflect.TypeOf(v)
	tab := lookupView(rt, a.view)
	if tab == nil {
		return errors.NotRegistered(errors.PhaseEmplace, rt.String(), a.view.Name())
	}

	box := reflect.New(rt)
	box.Elem().Set(reflect.ValueOf(v))
	inst := instance{tab: tab, data: box.Interface()}
	inPlace := a.fits(tab)

	a.proxy.clear()
	a.proxy.place(inst, inPlace)

	Logger().Debug("payload emplaced",
		zapType(tab),
		zap.Stringer("iface", a.view),
		zap.Bool("in_situ", inPlace))
	return nil
}

// fits decides the storage mode: in place when the payload fits the
// view's word capacity and is safe to keep inside the wrapper. Pinned
// payloads of movable views go to the heap so aliases survive transfers.
func (a *Any) fits(t *table) bool {
	if t.size > uintptr(a.view.WordCap())*wordSize {
		return false
	}
	return !t.pinned || !a.view.Satisfies(iface.Movable)
}

// Set replaces the payload with a copy of a concrete value, dropping the
// old payload. The wrapper keeps its view.
func (a *Any) Set(v any) error {
	if a.view == nil {
		return errors.Detached(errors.PhaseEmplace)
	}
	if v == nil {
		return errors.NilInput(errors.PhaseEmplace, "nil value")
	}
	return a.emplace(v)
}

// MoveFrom transfers src's payload into a, dropping a's old payload and
// leaving src empty. The effective view (a's, or src's when a is
// detached) must satisfy Movable; src's view must satisfy it. Heap
// records transfer by pointer; embedded records re-embed when they fit
// and are promoted to the heap otherwise.
func (a *Any) MoveFrom(src *Any) error {
	if src == nil {
		return errors.NilInput(errors.PhaseAssign, "nil source")
	}
	if src == a {
		return nil
	}
	if src.view == nil {
		a.proxy.clear()
		return nil
	}

	view := a.view
	if view == nil {
		view = src.view
	}
	requireCapability(view, iface.Movable, "move assignment")
	if !src.view.Satisfies(view) {
		return assignMismatch(src.view, view)
	}

	heap, embed := src.proxy.release()
	a.proxy.clear()
	a.view = view
	switch {
	case heap != nil:
		a.proxy.heap = heap
	case embed.tab != nil:
		a.proxy.place(embed, a.fits(embed.tab))
	}
	return nil
}

// CopyFrom replaces a's payload with a clone of src's, dropping the old
// payload. src may be an owning wrapper or a pointer wrapper; a pointer
// source yields a copy detached from its target. The effective view
// must satisfy Copyable; src's view must satisfy it.
func (a *Any) CopyFrom(src View) error {
	if src == nil {
		return errors.NilInput(errors.PhaseAssign, "nil source")
	}
	if other, ok := src.(*Any); ok && other == a {
		return nil
	}

	srcView := src.Interface()
	if srcView == nil {
		a.proxy.clear()
		return nil
	}

	view := a.view
	if view == nil {
		view = srcView
	}
	requireCapability(view, iface.Copyable, "copy assignment")
	if !srcView.Satisfies(view) {
		return assignMismatch(srcView, view)
	}

	inst := src.viewRecord()
	if inst == nil {
		a.proxy.clear()
		a.view = view
		return nil
	}

	// Clone before clearing: src may alias a's own payload.
	box := inst.tab.clone(inst.data)
	next := instance{tab: inst.tab, data: box}

	a.proxy.clear()
	a.view = view
	a.proxy.place(next, a.fits(inst.tab))
	return nil
}

// Clone returns a wrapper owning a copy of the payload. The view must
// satisfy Copyable. Clone of an empty wrapper is empty.
func (a *Any) Clone() Any {
	if a.view == nil {
		return Any{}
	}
	requireCapability(a.view, iface.Copyable, "clone")

	out := Any{view: a.view}
	inst := a.proxy.cur()
	if inst == nil {
		return out
	}
	box := inst.tab.clone(inst.data)
	out.proxy.place(instance{tab: inst.tab, data: box}, out.fits(inst.tab))
	return out
}

// Swap exchanges payloads with another wrapper of the same view. It never
// allocates and never fails: record state exchanges wholesale regardless
// of storage mode. The view must satisfy Movable.
func (a *Any) Swap(other *Any) {
	if other == nil {
		panic("box: swap with nil wrapper")
	}
	if a == other {
		return
	}
	if a.view != other.view {
		panic(fmt.Sprintf("box: swap between different views %q and %q",
			viewName(a.view), viewName(other.view)))
	}
	if a.view == nil {
		return
	}
	requireCapability(a.view, iface.Movable, "swap")
	a.proxy, other.proxy = other.proxy, a.proxy
}

// Reset drops the payload and empties the wrapper. The view is kept.
func (a *Any) Reset() {
	a.proxy.clear()
}

// Empty reports whether no payload is bound.
func (a *Any) Empty() bool {
	return a.proxy.cur() == nil
}

// Type returns the payload identity, typeid.None when empty.
func (a *Any) Type() typeid.ID {
	if inst := a.proxy.cur(); inst != nil {
		return inst.typeID()
	}
	return typeid.None
}

// Data returns the payload box (a *T), nil when empty.
func (a *Any) Data() any {
	if inst := a.proxy.cur(); inst != nil {
		return inst.data
	}
	return nil
}

// Interface returns the view descriptor, nil for a detached wrapper.
func (a *Any) Interface() *iface.Interface {
	return a.view
}

// InSitu reports whether the record lives inside the wrapper. Empty
// wrappers are trivially in place.
func (a *Any) InSitu() bool {
	return a.proxy.inSitu()
}

// Call dispatches an operation declared along the view's chain. Calling
// through an empty wrapper is a usage defect and panics.
func (a *Any) Call(op string, args ...any) (any, error) {
	inst := a.proxy.cur()
	if inst == nil {
		panic(fmt.Sprintf("box: operation %q called on empty %q wrapper",
			op, viewName(a.view)))
	}
	return inst.tab.call(a.view, inst, op, args)
}

// Addr returns a mutable pointer wrapper aliasing this wrapper's live
// record. The pointer is invalidated by Reset, Set, assignment into a,
// and Swap; an empty wrapper yields an empty pointer.
func (a *Any) Addr() Ptr {
	return Ptr{view: a.view, ref: refProxy{alias: a.proxy.cur()}}
}

// ConstAddr returns a read-only pointer wrapper aliasing this wrapper's
// live record.
func (a *Any) ConstAddr() ConstPtr {
	return ConstPtr{view: a.view, ref: refProxy{alias: a.proxy.cur()}}
}

// Equals reports payload equality with another erased view. Both views
// must satisfy Equatable.
func (a *Any) Equals(other View) bool {
	return Equal(a, other)
}

func (a *Any) viewRecord() *instance {
	return a.proxy.cur()
}

func assignMismatch(src, dst *iface.Interface) *errors.Error {
	return errors.New(errors.PhaseAssign, errors.KindTypeMismatch).
		Iface(dst.Name()).
		Detail("source view %q does not satisfy %q", src.Name(), dst.Name()).
		Build()
}

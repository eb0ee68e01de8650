package box

import (
	"fmt"
	"reflect"

	"github.com/wippyai/erasure/errors"
	"github.com/wippyai/erasure/iface"
	"github.com/wippyai/erasure/typeid"
)

// Ptr is a non-owning mutable pointer wrapper. It aliases either another
// wrapper's live record (via Addr) or a caller-owned object (via PtrTo).
// Ptr has plain value semantics: assignment copies the binding, the zero
// value is an empty pointer, and dropping a Ptr never touches the target.
//
// Equal on Ptr is target identity, like comparing raw pointers. Payload
// equality goes through Equals or the package-level Equal.
type Ptr struct {
	view *iface.Interface
	ref  refProxy
}

// ConstPtr is the read-only counterpart of Ptr: mutating operations are
// rejected and there is no way back to a mutable wrapper.
type ConstPtr struct {
	view *iface.Interface
	ref  refProxy
}

// PtrTo binds a pointer wrapper directly to a caller-owned object. The
// target must be a non-nil *T where T has a registered binding satisfying
// in. The wrapper aliases the object; the caller keeps ownership.
func PtrTo(in *iface.Interface, target any) (Ptr, error) {
	inst, err := bindTarget(in, target)
	if err != nil {
		return Ptr{}, err
	}
	return Ptr{view: in, ref: refProxy{embed: inst}}, nil
}

// ConstPtrTo is PtrTo for read-only access.
func ConstPtrTo(in *iface.Interface, target any) (ConstPtr, error) {
	inst, err := bindTarget(in, target)
	if err != nil {
		return ConstPtr{}, err
	}
	return ConstPtr{view: in, ref: refProxy{embed: inst}}, nil
}

func bindTarget(in *iface.Interface, target any) (instance, error) {
	if in == nil {
		return instance{}, errors.NilInput(errors.PhaseAlias, "nil interface")
	}
	if target == nil {
		return instance{}, errors.NilInput(errors.PhaseAlias, "nil target")
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer {
		return instance{}, errors.New(errors.PhaseAlias, errors.KindTypeMismatch).
			GoType(rv.Type().String()).
			Detail("target must be a pointer to the registered type").
			Build()
	}
	if rv.IsNil() {
		return instance{}, errors.NilInput(errors.PhaseAlias, "nil target pointer")
	}
	rt := rv.Type().Elem()
	tab := lookupView(rt, in)
	if tab == nil {
		return instance{}, errors.NotRegistered(errors.PhaseAlias, rt.String(), in.Name())
	}
	return instance{tab: tab, data: target, ref: true}, nil
}

// Empty reports whether the pointer is bound to nothing.
func (p Ptr) Empty() bool { return p.ref.cur() == nil }

// Type returns the target identity, typeid.None when empty.
func (p Ptr) Type() typeid.ID {
	if inst := p.ref.cur(); inst != nil {
		return inst.typeID()
	}
	return typeid.None
}

// Data returns the target box (a *T), nil when empty.
func (p Ptr) Data() any {
	if inst := p.ref.cur(); inst != nil {
		return inst.data
	}
	return nil
}

// Interface returns the view descriptor.
func (p Ptr) Interface() *iface.Interface { return p.view }

// Call dispatches an operation on the target. Mutations are visible to
// the owner. Calling through an empty pointer panics.
func (p Ptr) Call(op string, args ...any) (any, error) {
	inst := p.ref.cur()
	if inst == nil {
		panic(fmt.Sprintf("box: operation %q called through empty %q pointer",
			op, viewName(p.view)))
	}
	return inst.tab.call(p.view, inst, op, args)
}

// Rebind converts the pointer to a base view along the extension
// relation. The target is unchanged; an empty pointer rebinds to an empty
// pointer of the new view.
func (p Ptr) Rebind(base *iface.Interface) (Ptr, error) {
	view, err := rebindView(p.view, base)
	if err != nil {
		return Ptr{}, err
	}
	return Ptr{view: view, ref: p.ref}, nil
}

// Const returns a read-only pointer to the same target. There is no
// operation in the other direction.
func (p Ptr) Const() ConstPtr {
	return ConstPtr{view: p.view, ref: p.ref}
}

// Equal reports target identity: both pointers bound to the same payload
// record, or both empty.
func (p Ptr) Equal(other Ptr) bool {
	return p.Data() == other.Data()
}

// Equals reports payload equality through the Equatable capability.
func (p Ptr) Equals(other View) bool {
	return Equal(p, other)
}

func (p Ptr) viewRecord() *instance { return p.ref.cur() }

// Empty reports whether the pointer is bound to nothing.
func (p ConstPtr) Empty() bool { return p.ref.cur() == nil }

// Type returns the target identity, typeid.None when empty.
func (p ConstPtr) Type() typeid.ID {
	if inst := p.ref.cur(); inst != nil {
		return inst.typeID()
	}
	return typeid.None
}

// Data returns the target box for identity comparison. Mutating through
// it violates the read-only contract; the API itself never does.
func (p ConstPtr) Data() any {
	if inst := p.ref.cur(); inst != nil {
		return inst.data
	}
	return nil
}

// Interface returns the view descriptor.
func (p ConstPtr) Interface() *iface.Interface { return p.view }

// Call dispatches a read-only operation on the target. Mutating
// operations panic: const access never reaches them.
func (p ConstPtr) Call(op string, args ...any) (any, error) {
	inst := p.ref.cur()
	if inst == nil {
		panic(fmt.Sprintf("box: operation %q called through empty %q pointer",
			op, viewName(p.view)))
	}
	if vop, ok := p.view.Lookup(op); ok && vop.Mutating {
		panic(fmt.Sprintf("box: mutating operation %q called through const %q pointer",
			op, viewName(p.view)))
	}
	return inst.tab.call(p.view, inst, op, args)
}

// Rebind converts the pointer to a base view along the extension
// relation.
func (p ConstPtr) Rebind(base *iface.Interface) (ConstPtr, error) {
	view, err := rebindView(p.view, base)
	if err != nil {
		return ConstPtr{}, err
	}
	return ConstPtr{view: view, ref: p.ref}, nil
}

// Equal reports target identity.
func (p ConstPtr) Equal(other ConstPtr) bool {
	return p.Data() == other.Data()
}

// Equals reports payload equality through the Equatable capability.
func (p ConstPtr) Equals(other View) bool {
	return Equal(p, other)
}

func (p ConstPtr) viewRecord() *instance { return p.ref.cur() }

func rebindView(have, base *iface.Interface) (*iface.Interface, error) {
	if base == nil {
		return nil, errors.NilInput(errors.PhaseAlias, "nil interface")
	}
	if have == nil {
		return base, nil
	}
	if !have.Satisfies(base) {
		return nil, errors.New(errors.PhaseAlias, errors.KindTypeMismatch).
			Iface(base.Name()).
			Detail("view %q does not satisfy %q", have.Name(), base.Name()).
			Build()
	}
	return base, nil
}

package box

import (
	"fmt"

	"github.com/wippyai/erasure/iface"
	"github.com/wippyai/erasure/typeid"
)

// View is the read surface shared by owning and pointer wrappers. Casts
// and equality accept any View. The interface is sealed; the three
// implementations are *Any, Ptr and ConstPtr.
type View interface {
	// Empty reports whether no payload is bound.
	Empty() bool

	// Type returns the payload identity, typeid.None when empty.
	Type() typeid.ID

	// Data returns the payload box (a *T) for identity comparison, nil
	// when empty.
	Data() any

	// Interface returns the wrapper's view descriptor.
	Interface() *iface.Interface

	// Call dispatches an operation declared along the view's chain.
	Call(op string, args ...any) (any, error)

	viewRecord() *instance
}

func viewName(in *iface.Interface) string {
	if in == nil {
		return "<detached>"
	}
	return in.Name()
}

// requireCapability panics when the view does not satisfy a capability
// bundle. Missing capabilities are usage defects, not runtime conditions.
func requireCapability(view, capability *iface.Interface, what string) {
	if view == nil || !view.Satisfies(capability) {
		panic(fmt.Sprintf("box: %s requires a view satisfying %q, have %q",
			what, capability.Name(), viewName(view)))
	}
}

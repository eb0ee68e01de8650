package box

import (
	"fmt"

	"github.com/wippyai/erasure/iface"
)

// Equal compares two erased views for payload equality. Both views must
// satisfy Equatable; asking anything else is a usage defect and panics.
//
// Identity decides first: two empties are equal, differing payload types
// are unequal. Same-type payloads compare through the equality
// implementation derived at registration.
func Equal(a, b View) bool {
	requireEquatable(a)
	requireEquatable(b)

	ta, tb := a.Type(), b.Type()
	if ta != tb {
		return false
	}
	if ta.IsNone() {
		return true
	}

	ia, ib := a.viewRecord(), b.viewRecord()
	eq := ia.tab.equal
	if eq == nil {
		abstractGuard("equal")
	}
	return eq(ia.data, ib.data)
}

func requireEquatable(v View) {
	if v == nil {
		panic("box: equality on nil view")
	}
	in := v.Interface()
	if in == nil || !in.Satisfies(iface.Equatable) {
		panic(fmt.Sprintf("box: equality requires a view satisfying %q, have %q",
			iface.Equatable.Name(), viewName(in)))
	}
}

package box

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/erasure"
	"github.com/wippyai/erasure/typeid"
)

// wordSize is one pointer-sized word in bytes; in-place capacities are
// declared in words.
const wordSize = unsafe.Sizeof(uintptr(0))

// instance is a live payload record: the compiled dispatch table plus the
// payload box (a *T). A value record owns its box exclusively; a reference
// record aliases memory owned elsewhere and is never dropped.
type instance struct {
	tab  *table
	data any
	ref  bool
}

// typeID returns the payload identity.
func (in *instance) typeID() typeid.ID {
	return in.tab.id
}

// drop releases an owned payload. Reference records and records whose
// payload has no cleanup are left untouched.
func (in *instance) drop() {
	if in.ref {
		return
	}
	if d, ok := in.data.(erasure.Dropper); ok {
		d.Drop()
		Logger().Debug("payload dropped", zapType(in.tab))
	}
}

// abstractGuard is the dispatch floor. Live wrappers always carry a
// compiled table, so reaching it means a record was forged or corrupted
// rather than constructed.
func abstractGuard(op string) {
	panic(fmt.Sprintf("box: internal error: %s called on abstract root", op))
}

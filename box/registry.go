package box

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/erasure/errors"
	"github.com/wippyai/erasure/iface"
)

// bindConfig collects registration options before compilation.
type bindConfig struct {
	funcs  map[string]any
	equal  func(a, b any) bool
	clone  func(src any) any
	eqType reflect.Type
	clType reflect.Type
	pinned bool
}

// BindOption configures one registration.
type BindOption interface {
	apply(*bindConfig)
}

type bindOption func(*bindConfig)

func (f bindOption) apply(c *bindConfig) { f(c) }

// WithFunc supplies an explicit implementation for one operation instead
// of method lookup. The function's first parameter must be a pointer to
// the registered type.
func WithFunc(op string, fn any) BindOption {
	return bindOption(func(c *bindConfig) {
		c.funcs[op] = fn
	})
}

// WithEqual supplies the equality implementation for T, overriding Equal
// method detection and the comparable fallback.
func WithEqual[T any](fn func(a, b T) bool) BindOption {
	return bindOption(func(c *bindConfig) {
		c.eqType = reflect.TypeOf((*T)(nil)).Elem()
		c.equal = func(a, b any) bool {
			return fn(*(a.(*T)), *(b.(*T)))
		}
	})
}

// WithClone supplies the copy implementation for T, overriding Clone
// method detection and plain value copy.
func WithClone[T any](fn func(T) T) BindOption {
	return bindOption(func(c *bindConfig) {
		c.clType = reflect.TypeOf((*T)(nil)).Elem()
		c.clone = func(src any) any {
			out := fn(*(src.(*T)))
			return &out
		}
	})
}

// WithPin marks the payload address-sensitive. Pinned payloads of movable
// views always live on the heap, so aliases keep observing the record
// across transfers.
func WithPin() BindOption {
	return bindOption(func(c *bindConfig) {
		c.pinned = true
	})
}

type binding struct {
	in  *iface.Interface
	tab *table
}

var registry = struct {
	mu     sync.RWMutex
	byType map[reflect.Type][]binding
}{byType: make(map[reflect.Type][]binding)}

type lookupKey struct {
	rt   reflect.Type
	view *iface.Interface
}

// lookupCache memoizes view resolution per (concrete type, view).
var lookupCache sync.Map // lookupKey -> *table

// Register binds the concrete type T to an interface, compiling its
// dispatch table. Re-registering the same pair replaces the binding for
// wrappers created afterwards; live wrappers keep their compiled table.
func Register[T any](in *iface.Interface, opts ...BindOption) error {
	if in == nil {
		return errors.NilInput(errors.PhaseBind, "nil interface")
	}
	rt := reflect.TypeOf((*T)(nil)).Elem()

	cfg := &bindConfig{funcs: make(map[string]any)}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	if cfg.eqType != nil && cfg.eqType != rt {
		return errors.BadSignature(rt.String(), "",
			"WithEqual is for type "+cfg.eqType.String())
	}
	if cfg.clType != nil && cfg.clType != rt {
		return errors.BadSignature(rt.String(), "",
			"WithClone is for type "+cfg.clType.String())
	}

	tab, err := compile(rt, in, cfg)
	if err != nil {
		return err
	}

	registry.mu.Lock()
	bs := registry.byType[rt]
	replaced := false
	for i := range bs {
		if bs[i].in == in {
			bs[i].tab = tab
			replaced = true
			break
		}
	}
	if !replaced {
		registry.byType[rt] = append(bs, binding{in: in, tab: tab})
	}
	registry.mu.Unlock()

	invalidateLookups(rt)

	Logger().Debug("binding compiled",
		zap.String("type", rt.String()),
		zap.Stringer("iface", in),
		zap.Int("ops", len(tab.slots)),
		zap.String("equality", tab.eqSrc),
		zap.Bool("pinned", tab.pinned),
		zap.Bool("replaced", replaced))
	return nil
}

// MustRegister is Register for package init blocks; it panics on error.
func MustRegister[T any](in *iface.Interface, opts ...BindOption) {
	if err := Register[T](in, opts...); err != nil {
		panic(err)
	}
}

// lookupView resolves the dispatch table serving rt under view: the first
// registered binding whose interface satisfies the view. Returns nil when
// nothing is registered.
func lookupView(rt reflect.Type, view *iface.Interface) *table {
	key := lookupKey{rt: rt, view: view}
	if v, ok := lookupCache.Load(key); ok {
		return v.(*table)
	}

	registry.mu.RLock()
	var tab *table
	for _, b := range registry.byType[rt] {
		if b.in.Satisfies(view) {
			tab = b.tab
			break
		}
	}
	registry.mu.RUnlock()

	if tab != nil {
		lookupCache.Store(key, tab)
	}
	return tab
}

func invalidateLookups(rt reflect.Type) {
	lookupCache.Range(func(k, _ any) bool {
		if k.(lookupKey).rt == rt {
			lookupCache.Delete(k)
		}
		return true
	})
}

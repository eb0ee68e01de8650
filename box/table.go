package box

import (
	"reflect"

	"github.com/wippyai/erasure/errors"
	"github.com/wippyai/erasure/iface"
	"github.com/wippyai/erasure/typeid"
)

// table is the compiled dispatch record for one (concrete type, interface)
// binding. Immutable after compilation; shared by every wrapper holding a
// payload of that type under that interface or any of its bases.
type table struct {
	id     typeid.ID
	rt     reflect.Type
	in     *iface.Interface
	size   uintptr
	pinned bool
	slots  map[string]slot

	// equal compares two payload boxes of this type. Non-nil whenever the
	// bound interface satisfies Equatable; eqSrc names where it came from.
	equal func(a, b any) bool
	eqSrc string

	// clone copies a payload box into a fresh box.
	clone func(src any) any
}

// slot is one bound operation: fn takes the payload box (*T) first, then
// the declared arguments.
type slot struct {
	op     iface.Operation
	fn     reflect.Value
	numIn  int
	hasRet bool
	hasErr bool
}

// call dispatches op through view. The table may carry more slots than the
// view exposes; the view's chain is the visibility boundary.
func (t *table) call(view *iface.Interface, inst *instance, op string, args []any) (any, error) {
	if _, ok := view.Lookup(op); !ok {
		return nil, errors.UnknownOp(view.Name(), op)
	}

	s, ok := t.slots[op]
	if !ok {
		// The binding satisfied the view at compile time, so every view
		// operation has a slot.
		abstractGuard(op)
	}

	want := s.numIn - 1
	if len(args) != want {
		return nil, errors.Arity(view.Name(), op, len(args), want)
	}

	fnType := s.fn.Type()
	in := make([]reflect.Value, s.numIn)
	in[0] = reflect.ValueOf(inst.data)
	for i, arg := range args {
		pt := fnType.In(i + 1)
		if arg == nil {
			switch pt.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i+1] = reflect.Zero(pt)
				continue
			}
			return nil, errors.ArgMismatch(view.Name(), op, i, "untyped nil", pt.String())
		}
		rv := reflect.ValueOf(arg)
		if !rv.Type().AssignableTo(pt) {
			return nil, errors.ArgMismatch(view.Name(), op, i, rv.Type().String(), pt.String())
		}
		in[i+1] = rv
	}

	out := s.fn.Call(in)

	if s.hasErr {
		if ev := out[len(out)-1]; !ev.IsNil() {
			return nil, ev.Interface().(error)
		}
	}
	if s.hasRet {
		return out[0].Interface(), nil
	}
	return nil, nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// compile builds the dispatch table for rt bound to in. Every operation
// along in's chain must resolve to an explicit function or an exported
// method on *T; equality must be derivable when the chain is Equatable.
func compile(rt reflect.Type, in *iface.Interface, cfg *bindConfig) (*table, error) {
	ptrType := reflect.PointerTo(rt)

	// Kebab every exported method once so operation names match the same
	// way regardless of acronyms in the Go spelling.
	methods := make(map[string]reflect.Method, ptrType.NumMethod())
	for i := 0; i < ptrType.NumMethod(); i++ {
		m := ptrType.Method(i)
		methods[toKebabCase(m.Name)] = m
	}

	t := &table{
		id:     typeid.FromReflect(rt),
		rt:     rt,
		in:     in,
		size:   rt.Size(),
		pinned: cfg.pinned,
		slots:  make(map[string]slot),
		eqSrc:  "none",
	}

	used := make(map[string]bool, len(cfg.funcs))
	for _, op := range in.Operations() {
		var fn reflect.Value
		if raw, ok := cfg.funcs[op.Name]; ok {
			used[op.Name] = true
			rv := reflect.ValueOf(raw)
			if rv.Kind() != reflect.Func {
				return nil, errors.BadSignature(rt.String(), op.Name, "implementation must be a function")
			}
			if rv.Type().NumIn() == 0 || rv.Type().In(0) != ptrType {
				return nil, errors.BadSignature(rt.String(), op.Name,
					"first parameter must be "+ptrType.String())
			}
			fn = rv
		} else {
			m, ok := methods[op.Name]
			if !ok {
				return nil, errors.MissingOp(rt.String(), in.Name(), op.Name, methodNameGuess(op.Name))
			}
			fn = m.Func
		}

		s, err := compileSlot(rt, op, fn)
		if err != nil {
			return nil, err
		}
		t.slots[op.Name] = s
	}
	for name := range cfg.funcs {
		if !used[name] {
			return nil, errors.New(errors.PhaseBind, errors.KindUnknownOp).
				GoType(rt.String()).
				Iface(in.Name()).
				Op(name).
				Detail("explicit implementation for an operation outside the chain").
				Build()
		}
	}

	if in.Satisfies(iface.Equatable) {
		eq, src, err := deriveEqual(rt, ptrType, in, cfg)
		if err != nil {
			return nil, err
		}
		t.equal = eq
		t.eqSrc = src
	}
	t.clone = deriveClone(rt, ptrType, cfg)

	return t, nil
}

func compileSlot(rt reflect.Type, op iface.Operation, fn reflect.Value) (slot, error) {
	ft := fn.Type()
	if ft.IsVariadic() {
		return slot{}, errors.BadSignature(rt.String(), op.Name, "variadic implementations cannot be bound")
	}

	s := slot{op: op, fn: fn, numIn: ft.NumIn()}
	switch ft.NumOut() {
	case 0:
	case 1:
		if ft.Out(0) == errType {
			s.hasErr = true
		} else {
			s.hasRet = true
		}
	case 2:
		if ft.Out(1) != errType {
			return slot{}, errors.BadSignature(rt.String(), op.Name, "second result must be error")
		}
		s.hasRet = true
		s.hasErr = true
	default:
		return slot{}, errors.BadSignature(rt.String(), op.Name, "at most one result plus an error")
	}
	return s, nil
}

// deriveEqual finds the equality implementation for rt: an explicit
// WithEqual function, an Equal(T) bool method, or Go's == for comparable
// types, in that order. The second result names the chosen source.
func deriveEqual(rt, ptrType reflect.Type, in *iface.Interface, cfg *bindConfig) (func(a, b any) bool, string, error) {
	if cfg.equal != nil {
		return cfg.equal, "option", nil
	}

	if m, ok := ptrType.MethodByName("Equal"); ok {
		ft := m.Func.Type()
		if ft.NumIn() == 2 && ft.In(1) == rt && ft.NumOut() == 1 && ft.Out(0) == reflect.TypeOf((*bool)(nil)).Elem() {
			return func(a, b any) bool {
				out := m.Func.Call([]reflect.Value{
					reflect.ValueOf(a),
					reflect.ValueOf(b).Elem(),
				})
				return out[0].Bool()
			}, "method", nil
		}
	}

	if rt.Comparable() {
		return func(a, b any) bool {
			return reflect.ValueOf(a).Elem().Interface() == reflect.ValueOf(b).Elem().Interface()
		}, "comparable", nil
	}

	return nil, "", errors.NotEquatable(rt.String(), in.Name())
}

// deriveClone finds the copy implementation for rt: an explicit WithClone
// function, a Clone() T method, or plain value copy.
func deriveClone(rt, ptrType reflect.Type, cfg *bindConfig) func(src any) any {
	if cfg.clone != nil {
		return cfg.clone
	}

	if m, ok := ptrType.MethodByName("Clone"); ok {
		ft := m.Func.Type()
		if ft.NumIn() == 1 && ft.NumOut() == 1 && ft.Out(0) == rt {
			return func(src any) any {
				out := m.Func.Call([]reflect.Value{reflect.ValueOf(src)})
				box := reflect.New(rt)
				box.Elem().Set(out[0])
				return box.Interface()
			}
		}
	}

	return func(src any) any {
		box := reflect.New(rt)
		box.Elem().Set(reflect.ValueOf(src).Elem())
		return box.Interface()
	}
}

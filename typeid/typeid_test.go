package typeid

import (
	"reflect"
	"testing"
)

type sample struct {
	A int
	B string
}

func TestOf_Distinct(t *testing.T) {
	tests := []struct {
		name string
		a, b ID
		same bool
	}{
		{"int vs int", Of[int](), Of[int](), true},
		{"int vs int32", Of[int](), Of[int32](), false},
		{"struct vs pointer", Of[sample](), Of[*sample](), false},
		{"slice vs array", Of[[]byte](), Of[[4]byte](), false},
		{"none vs none", None, None, true},
		{"none vs int", None, Of[int](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.same {
				t.Errorf("(%v == %v) = %v, want %v", tt.a, tt.b, got, tt.same)
			}
		})
	}
}

func TestFor(t *testing.T) {
	if got := For(42); got != Of[int]() {
		t.Errorf("For(42) = %v, want %v", got, Of[int]())
	}
	if got := For(&sample{}); got != Of[*sample]() {
		t.Errorf("For(&sample{}) = %v, want %v", got, Of[*sample]())
	}
	if got := For(nil); !got.IsNone() {
		t.Errorf("For(nil) = %v, want None", got)
	}
}

func TestFromReflect(t *testing.T) {
	rt := reflect.TypeOf("")
	if got := FromReflect(rt); got != Of[string]() {
		t.Errorf("FromReflect(string) = %v, want %v", got, Of[string]())
	}
	if !FromReflect(nil).IsNone() {
		t.Error("FromReflect(nil) should be None")
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{Of[int](), "int"},
		{Of[[]string](), "[]string"},
		{Of[sample](), "typeid.sample"},
		{None, "<none>"},
	}

	for _, tt := range tests {
		if got := tt.id.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	if got := Of[int64]().Size(); got != 8 {
		t.Errorf("Size of int64 = %d, want 8", got)
	}
	if got := None.Size(); got != 0 {
		t.Errorf("Size of None = %d, want 0", got)
	}
	if got := Of[struct{}]().Size(); got != 0 {
		t.Errorf("Size of struct{} = %d, want 0", got)
	}
}

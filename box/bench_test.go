package box

import (
	"testing"
)

var benchSink float64

func BenchmarkCall(b *testing.B) {
	a := MustOf(shapeView, circle{R: 2})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		got, err := a.Call("area")
		if err != nil {
			b.Fatal(err)
		}
		benchSink = got.(float64)
	}
}

func BenchmarkCallDirect(b *testing.B) {
	c := &circle{R: 2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = c.Area()
	}
}

func BenchmarkEmplace(b *testing.B) {
	b.Run("small", func(b *testing.B) {
		a := New(shapeView)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if err := a.Set(circle{R: float64(i)}); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("large", func(b *testing.B) {
		a := New(shapeView)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if err := a.Set(blob{}); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSwap(b *testing.B) {
	x := MustOf(valueView, 1)
	y := MustOf(valueView, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(&y)
	}
}

func BenchmarkCast(b *testing.B) {
	a := MustOf(shapeView, circle{R: 2})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, ok := Cast[circle](&a)
		if !ok {
			b.Fatal("cast failed")
		}
		benchSink = c.R
	}
}

func BenchmarkEqual(b *testing.B) {
	x := MustOf(valueView, 42)
	y := MustOf(valueView, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Equal(&x, &y) {
			b.Fatal("unexpected inequality")
		}
	}
}

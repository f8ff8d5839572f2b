package safecast_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.dw1.io/safecast"
)

type celsius float32

type withPointer struct {
	N    int32
	Next *withPointer
}

func TestLayoutOf(t *testing.T) {
	tests := []struct {
		name       string
		layout     safecast.Layout
		size       uintptr
		arithmetic bool
		pointers   bool
	}{
		{name: "float32", layout: safecast.LayoutOf[float32](), size: 4, arithmetic: true},
		{name: "named", layout: safecast.LayoutOf[celsius](), size: 4, arithmetic: true},
		{name: "bool", layout: safecast.LayoutOf[bool](), size: 1, arithmetic: true},
		{name: "struct", layout: safecast.LayoutOf[pos3D](), size: 12},
		{name: "array", layout: safecast.LayoutOf[triple](), size: 12},
		{name: "string", layout: safecast.LayoutOf[string](), size: 2 * reflect.TypeFor[uintptr]().Size(), pointers: true},
		{name: "nested", layout: safecast.LayoutOf[[2]withPointer](), size: 2 * reflect.TypeFor[withPointer]().Size(), pointers: true},
		{name: "complex", layout: safecast.LayoutOf[complex64](), size: 8},
		{name: "emptyArray", layout: safecast.LayoutOf[[0]*int](), size: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.layout.Size)
			assert.Equal(t, tt.arithmetic, tt.layout.Arithmetic)
			assert.Equal(t, tt.pointers, tt.layout.Pointers)
		})
	}
}

func TestLayoutCacheKeepsTypesApart(t *testing.T) {
	type local struct{ A, B uint8 }
	first := safecast.LayoutOf[local]()

	other := func() safecast.Layout {
		type local struct{ A, B, C, D uint64 }
		return safecast.LayoutOf[local]()
	}()

	assert.Equal(t, uintptr(2), first.Size)
	assert.Equal(t, uintptr(32), other.Size)
	assert.Equal(t, first, safecast.LayoutOf[local]())
}

func TestLayoutForNil(t *testing.T) {
	l := safecast.LayoutFor(nil)
	assert.Equal(t, safecast.Layout{}, l)
	assert.Equal(t, "<nil>", l.String())
}

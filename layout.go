package safecast

import (
	"reflect"

	"go.dw1.io/fastcache"
)

// Layout describes the memory shape of a type as seen by a [CheckPolicy] and
// a [ReferencePolicy].
type Layout struct {
	Type  reflect.Type
	Size  uintptr
	Align uintptr
	Kind  reflect.Kind

	// Arithmetic reports whether the type is a boolean, integer or
	// floating-point type (including named types over them).
	Arithmetic bool

	// Pointers reports whether values of the type hold any pointer the
	// garbage collector tracks.
	Pointers bool
}

// shape is the cached, type-free part of a Layout.
type shape struct {
	Size       uintptr
	Align      uintptr
	Kind       uint
	Arithmetic bool
	Pointers   bool
}

const layoutCacheSize = 4_096

// layoutCache is keyed by type identity; distinct types never compare equal,
// even when they print the same.
var layoutCache = fastcache.New[reflect.Type, shape](layoutCacheSize)

// LayoutOf returns the layout of T.
func LayoutOf[T any]() Layout {
	return LayoutFor(reflect.TypeFor[T]())
}

// LayoutFor returns the layout of t. A nil t yields the zero Layout.
func LayoutFor(t reflect.Type) Layout {
	if t == nil {
		return Layout{}
	}

	if s, ok := layoutCache.Get(t); ok {
		return s.layout(t)
	}

	s := shape{
		Size:       t.Size(),
		Align:      uintptr(t.Align()),
		Kind:       uint(t.Kind()),
		Arithmetic: isArithmeticKind(t.Kind()),
		Pointers:   hasPointers(t),
	}
	layoutCache.Set(t, s)

	return s.layout(t)
}

// String returns the name of the described type.
func (l Layout) String() string {
	if l.Type == nil {
		return "<nil>"
	}

	return l.Type.String()
}

func (s shape) layout(t reflect.Type) Layout {
	return Layout{
		Type:       t,
		Size:       s.Size,
		Align:      s.Align,
		Kind:       reflect.Kind(s.Kind),
		Arithmetic: s.Arithmetic,
		Pointers:   s.Pointers,
	}
}

func isArithmeticKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

package safecast

import (
	"fmt"
	"reflect"
	"unsafe"

	"go.dw1.io/safecast/internal/convert"
)

// Arithmetic matches booleans, integers and floating-point numbers, including
// named types over them. These are the destinations [DefaultReference]
// delivers by value.
type Arithmetic = convert.Arithmetic

// Result is the outcome of [Cast]: either a pointer aliasing the source or a
// converted copy, depending on the active [ReferencePolicy].
type Result[D any] struct {
	mode Mode
	ref  *D
	val  D
}

// Mode reports how the result was delivered.
func (r Result[D]) Mode() Mode { return r.mode }

// Ref returns the aliasing pointer, or nil when the result was delivered by
// value.
func (r Result[D]) Ref() *D { return r.ref }

// Value returns the result as a value. For a result delivered by reference it
// reads through the alias at the time of the call.
func (r Result[D]) Value() D {
	if r.mode == ByReference && r.ref != nil {
		return *r.ref
	}

	return r.val
}

// Check evaluates the compatibility policy for D and S without
// reinterpreting anything.
func Check[D, S any](opts ...Option) error {
	o := newOptions(SameSize, opts)
	return o.enforce(LayoutOf[D](), LayoutOf[S]())
}

// Ref reinterprets *src as a D without copying. Writes through the returned
// pointer are visible through src and vice versa.
//
// The returned pointer aliases src and must not outlive it.
func Ref[D, S any](src *S, opts ...Option) (*D, error) {
	return ref[D](src, newOptions(SameSize, opts))
}

// Value reinterprets src as a D by copy. When both types are arithmetic the
// copy is a numeric conversion: a float converted to an integer (uintptr
// included) is truncated toward zero, and a value the integer cannot hold is
// an error wrapping safemath's ErrTruncation, as are NaN and infinities.
// Otherwise the bytes of src are copied into a D.
func Value[D, S any](src S, opts ...Option) (D, error) {
	return value[D](src, newOptions(SameSize, opts))
}

// Convert is [Value] restricted to arithmetic types.
func Convert[D, S Arithmetic](src S, opts ...Option) (D, error) {
	return Value[D](src, opts...)
}

// Cast reinterprets *src as a D, delivering the result by reference or by
// value as decided by the [ReferencePolicy] for D. With the default policies
// an arithmetic D is converted and any other D aliases src.
func Cast[D, S any](src *S, opts ...Option) (Result[D], error) {
	if src == nil {
		return Result[D]{}, ErrNilPointer
	}

	o := newOptions(SameSize, opts)
	switch mode := o.reference(LayoutOf[D]()); mode {
	case ByReference:
		p, err := ref[D](src, o)
		if err != nil {
			return Result[D]{}, err
		}

		return Result[D]{mode: mode, ref: p}, nil
	case ByValue:
		v, err := value[D](*src, o)
		if err != nil {
			return Result[D]{}, err
		}

		return Result[D]{mode: mode, val: v}, nil
	default:
		return Result[D]{}, fmt.Errorf("safecast: unknown mode %d", mode)
	}
}

// MustRef is like [Ref] but panics on error.
func MustRef[D, S any](src *S, opts ...Option) *D {
	p, err := Ref[D](src, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// MustValue is like [Value] but panics on error.
func MustValue[D, S any](src S, opts ...Option) D {
	v, err := Value[D](src, opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// MustCast is like [Cast] but panics on error.
func MustCast[D, S any](src *S, opts ...Option) Result[D] {
	r, err := Cast[D](src, opts...)
	if err != nil {
		panic(err)
	}

	return r
}

func ref[D, S any](src *S, o options) (*D, error) {
	if src == nil {
		return nil, ErrNilPointer
	}

	dst, from := LayoutOf[D](), LayoutOf[S]()
	if err := o.enforce(dst, from); err != nil {
		return nil, err
	}

	if err := inBounds(dst, from); err != nil {
		return nil, err
	}

	return alias[D](unsafe.Pointer(src))
}

func value[D, S any](src S, o options) (D, error) {
	var out D

	dst, from := LayoutOf[D](), LayoutOf[S]()
	if err := o.enforce(dst, from); err != nil {
		return out, err
	}

	if dst.Arithmetic && from.Arithmetic {
		converted, err := convert.ToKind(any(src), dst.Kind)
		if err != nil {
			return out, fmt.Errorf("convert %s to %s: %w", from, dst, err)
		}

		return reflect.ValueOf(converted).Convert(dst.Type).Interface().(D), nil
	}

	copy(Bytes(&out), Bytes(&src))

	return out, nil
}

// inBounds rejects aliases that would reach past the source storage, whatever
// the active policy allowed.
func inBounds(dst, src Layout) error {
	if dst.Size > src.Size {
		return &IncompatibleError{Dst: dst, Src: src, Policy: "bounds"}
	}

	return nil
}

func alias[D any](p unsafe.Pointer) (*D, error) {
	var zero D
	if align := unsafe.Alignof(zero); uintptr(p)%align != 0 {
		return nil, fmt.Errorf("%w: address %#x is not %d-byte aligned for %T",
			ErrMisaligned, uintptr(p), align, zero)
	}

	return (*D)(p), nil
}

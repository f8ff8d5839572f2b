package convert

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrUnsupported indicates a conversion to or from a non-arithmetic kind.
var ErrUnsupported = errors.New("unsupported arithmetic conversion")

var baseTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeFor[bool](),
	reflect.Int:     reflect.TypeFor[int](),
	reflect.Int8:    reflect.TypeFor[int8](),
	reflect.Int16:   reflect.TypeFor[int16](),
	reflect.Int32:   reflect.TypeFor[int32](),
	reflect.Int64:   reflect.TypeFor[int64](),
	reflect.Uint:    reflect.TypeFor[uint](),
	reflect.Uint8:   reflect.TypeFor[uint8](),
	reflect.Uint16:  reflect.TypeFor[uint16](),
	reflect.Uint32:  reflect.TypeFor[uint32](),
	reflect.Uint64:  reflect.TypeFor[uint64](),
	reflect.Uintptr: reflect.TypeFor[uintptr](),
	reflect.Float32: reflect.TypeFor[float32](),
	reflect.Float64: reflect.TypeFor[float64](),
}

// To converts v to type T.
func To[T Arithmetic](v any) (T, error) {
	var zero T

	rt := reflect.TypeFor[T]()
	converted, err := ToKind(v, rt.Kind())
	if err != nil {
		return zero, err
	}

	return reflect.ValueOf(converted).Convert(rt).Interface().(T), nil
}

// ToMust converts v to type T and panics on error.
func ToMust[T Arithmetic](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// ToKind converts v to the predeclared type of kind k. Named source types are
// first reduced to their predeclared underlying type.
func ToKind(v any, k reflect.Kind) (any, error) {
	v, err := normalize(v)
	if err != nil {
		return nil, err
	}

	switch k {
	case reflect.Int:
		return toIntOrBase[int](v)
	case reflect.Int8:
		return toIntOrBase[int8](v)
	case reflect.Int16:
		return toIntOrBase[int16](v)
	case reflect.Int32:
		return toIntOrBase[int32](v)
	case reflect.Int64:
		return toIntOrBase[int64](v)
	case reflect.Uint:
		return toIntOrBase[uint](v)
	case reflect.Uint8:
		return toIntOrBase[uint8](v)
	case reflect.Uint16:
		return toIntOrBase[uint16](v)
	case reflect.Uint32:
		return toIntOrBase[uint32](v)
	case reflect.Uint64:
		return toIntOrBase[uint64](v)
	case reflect.Uintptr:
		switch f := v.(type) {
		case float32:
			return truncate[uintptr](float64(f))
		case float64:
			return truncate[uintptr](f)
		}

		if !isIntVal(v) {
			return nil, fmt.Errorf("%w: uintptr from %T", ErrUnsupported, v)
		}

		return toInt[uintptr](v)
	case reflect.Bool:
		return toBase[bool](v)
	case reflect.Float32:
		return toBase[float32](v)
	case reflect.Float64:
		return toBase[float64](v)
	default:
		return nil, fmt.Errorf("%w: %s from %T", ErrUnsupported, k, v)
	}
}

// IsArithmetic reports whether v's dynamic type is a boolean, integer or
// floating-point type.
func IsArithmetic(v any) bool {
	if v == nil {
		return false
	}

	_, ok := baseTypes[reflect.TypeOf(v).Kind()]
	return ok
}

// normalize re-types v as its predeclared underlying type, so that
// `type Celsius float32` is handled like float32.
func normalize(v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrUnsupported)
	}

	rv := reflect.ValueOf(v)
	base, ok := baseTypes[rv.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: from %T", ErrUnsupported, v)
	}

	if rv.Type() == base {
		return v, nil
	}

	return rv.Convert(base).Interface(), nil
}

// toInt converts to the integer type I using safemath to avoid
// overflow/underflow.
func toInt[I Integer](v any) (any, error) {
	converted, err := safemath.ConvertAny[I](v)
	if err != nil {
		return nil, err
	}

	return converted, nil
}

// toBase converts to the basic type B using spf13/cast.
func toBase[B Basic](v any) (any, error) {
	converted, err := cast.ToE[B](v)
	if err != nil {
		return nil, err
	}

	return converted, nil
}

// toIntOrBase converts v to the integer type I. If v is an integer, it uses
// safemath. Floats are truncated toward zero and range-checked; booleans go
// through cast.ToE.
func toIntOrBase[I IntersectionType](v any) (any, error) {
	switch f := v.(type) {
	case float32:
		return truncate[I](float64(f))
	case float64:
		return truncate[I](f)
	}

	if isIntVal(v) {
		return toInt[I](v)
	}

	return toBase[I](v)
}

// truncate converts f to I, dropping the fractional part. The integral part
// must be representable in I; NaN and infinities never are.
func truncate[I Integer](f float64) (any, error) {
	t := math.Trunc(f)

	var zero I
	bits := int(unsafe.Sizeof(zero)) * 8

	lo, hi := 0.0, math.Ldexp(1, bits)
	if ^zero < 0 {
		lo, hi = -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}

	if math.IsNaN(t) || t < lo || t >= hi {
		return nil, fmt.Errorf("%w: %v does not fit in %T", safemath.ErrTruncation, f, zero)
	}

	return I(t), nil
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

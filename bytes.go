package safecast

import (
	"fmt"
	"reflect"
	"unsafe"

	"go.dw1.io/safecast/internal/wyhash"
)

// Bytes returns the storage of *p as a byte slice. The slice aliases *p,
// including any padding, and must not outlive it.
func Bytes[T any](p *T) []byte {
	if p == nil {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// View reinterprets the buffer b as a *D without copying. Under the default
// [SameSize] policy len(b) must equal the size of D; pass [WithCheck]([FitsIn])
// to view the leading bytes of a larger buffer.
//
// The start of b must be aligned for D, otherwise [ErrMisaligned] is
// returned.
func View[D any](b []byte, opts ...Option) (*D, error) {
	o := newOptions(SameSize, opts)

	dst, src := LayoutOf[D](), bufferLayout(len(b))
	if err := o.enforce(dst, src); err != nil {
		return nil, err
	}

	if err := inBounds(dst, src); err != nil {
		return nil, err
	}

	if dst.Size == 0 {
		return new(D), nil
	}

	return alias[D](unsafe.Pointer(unsafe.SliceData(b)))
}

// ViewSlice reinterprets b as a []D of len(b)/sizeof(D) elements sharing b's
// storage. len(b) must be a whole multiple of the element size.
func ViewSlice[D any](b []byte) ([]D, error) {
	dst := LayoutOf[D]()
	if dst.Size == 0 {
		return nil, &IncompatibleError{Dst: dst, Src: bufferLayout(len(b)), Policy: "non-zero-size"}
	}

	if len(b)%int(dst.Size) != 0 {
		return nil, fmt.Errorf("%w: %d bytes for %s elements of %d bytes",
			ErrShortBuffer, len(b), dst, dst.Size)
	}

	if len(b) == 0 {
		return nil, nil
	}

	first, err := alias[D](unsafe.Pointer(unsafe.SliceData(b)))
	if err != nil {
		return nil, err
	}

	return unsafe.Slice(first, len(b)/int(dst.Size)), nil
}

// Fingerprint returns the wyhash of the bytes of *p. Two values with the same
// fingerprint hold, with overwhelming probability, identical bytes, which
// makes it a cheap way to verify that a round trip left a value untouched.
func Fingerprint[T any](p *T) uint64 {
	return wyhash.Sum64(Bytes(p))
}

var byteSliceType = reflect.TypeFor[[]byte]()

// bufferLayout describes a byte buffer of n bytes as a reinterpretation
// source.
func bufferLayout(n int) Layout {
	return Layout{
		Type:  byteSliceType,
		Size:  uintptr(n),
		Align: 1,
		Kind:  reflect.Slice,
	}
}

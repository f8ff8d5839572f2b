package safecast

import (
	"errors"
	"fmt"
)

// ErrIncompatible indicates that the active [CheckPolicy] rejected the
// destination/source pair.
//
// It is wrapped by [*IncompatibleError], which carries both layouts.
var ErrIncompatible = errors.New("incompatible reinterpretation")

// ErrMisaligned indicates that the source address is not aligned for the
// destination type.
var ErrMisaligned = errors.New("misaligned reinterpretation")

// ErrNilPointer indicates that a nil source pointer was passed.
var ErrNilPointer = errors.New("nil source pointer")

// ErrShortBuffer indicates that a byte buffer cannot hold a whole number of
// destination values.
var ErrShortBuffer = errors.New("buffer length is not a multiple of the element size")

// IncompatibleError describes a pair of types rejected by a [CheckPolicy].
type IncompatibleError struct {
	Dst    Layout
	Src    Layout
	Policy string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("%s: %s (%d bytes) from %s (%d bytes) under %s",
		ErrIncompatible, e.Dst, e.Dst.Size, e.Src, e.Src.Size, e.Policy)
}

// Unwrap returns [ErrIncompatible].
func (e *IncompatibleError) Unwrap() error {
	return ErrIncompatible
}

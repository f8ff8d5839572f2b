package mapped

import (
	"fmt"

	"go.dw1.io/safecast"
)

// At returns the D stored at byte offset off, aliasing the mapping. The
// record must lie entirely within the file and off must be aligned for D.
//
// By default the view only requires D to fit in the bytes from off to the end
// of the file; opts may tighten that policy.
func At[D any](f *File, off int, opts ...safecast.Option) (*D, error) {
	b := f.Bytes()
	if b == nil {
		return nil, ErrNotMapped
	}

	if off < 0 || off > len(b) {
		return nil, fmt.Errorf("mapped: offset %d out of range [0, %d]", off, len(b))
	}

	if len(opts) == 0 {
		size := int(safecast.LayoutOf[D]().Size)
		if size > len(b)-off {
			return safecast.View[D](b[off:], fitsIn)
		}

		return safecast.View[D](b[off : off+size])
	}

	return safecast.View[D](b[off:], append([]safecast.Option{fitsIn}, opts...)...)
}

var fitsIn = safecast.WithCheck(safecast.FitsIn)

// Index returns the i-th record when the file is a packed array of D.
func Index[D any](f *File, i int, opts ...safecast.Option) (*D, error) {
	size := int(safecast.LayoutOf[D]().Size)
	if i < 0 {
		return nil, fmt.Errorf("mapped: negative index %d", i)
	}

	return At[D](f, i*size, opts...)
}

// Records returns the whole mapping as a []D. The file length must be a whole
// multiple of the size of D.
func Records[D any](f *File) ([]D, error) {
	b := f.Bytes()
	if b == nil {
		return nil, ErrNotMapped
	}

	return safecast.ViewSlice[D](b)
}

package mapped

import (
	"errors"
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

// ErrNotMapped indicates that the file is served by the os.File fallback, or
// has been closed, so its contents cannot be aliased.
var ErrNotMapped = errors.New("file is not memory-mapped")

// storage is the part of a backend that File forwards to unchanged. Both
// *mmapfile.MmapFile and *os.File provide it.
type storage interface {
	io.ReaderAt
	io.WriterAt
	io.Closer
	Name() string
	Sync() error
}

// File is a record file. Records can be aliased in place only while the file
// is memory-mapped; otherwise File degrades to positional I/O on an os.File.
type File struct {
	storage

	// region is nil on the os.File fallback and after Close.
	region *mmapfile.MmapFile
}

var _ storage = (*File)(nil)

func overMapping(mf *mmapfile.MmapFile) *File {
	return &File{storage: mf, region: mf}
}

func overFile(f *os.File) *File {
	return &File{storage: f}
}

// Open opens an existing record file for reading.
func Open(name string) (*File, error) {
	if mf, err := mmapfile.Open(name); err == nil {
		return overMapping(mf), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return overFile(f), nil
}

// OpenFile opens name with the given flags. A mapping is attempted first; it
// needs a positive size when the file is created or truncated and is never
// used with O_APPEND. On the fallback a created or truncated file is still
// grown to size, so both backends see the same length.
func OpenFile(name string, flag int, perm os.FileMode, size int64) (*File, error) {
	if mappable(flag, size) {
		if mf, err := mmapfile.OpenFile(name, flag, perm, size); err == nil {
			return overMapping(mf), nil
		}
	}

	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	if resets(flag) && size > 0 {
		if err := f.Truncate(size); err != nil {
			f.Close()
			return nil, err
		}
	}

	return overFile(f), nil
}

// Mapped reports whether records can currently be aliased.
func (f *File) Mapped() bool { return f.region != nil }

// Bytes returns the mapped region, or nil when [File.Mapped] is false.
func (f *File) Bytes() []byte {
	if f.region == nil {
		return nil
	}

	return f.region.Bytes()
}

// Len returns the size of the file in bytes.
func (f *File) Len() int {
	switch s := f.storage.(type) {
	case *mmapfile.MmapFile:
		return s.Len()
	case *os.File:
		info, err := s.Stat()
		if err != nil {
			return 0
		}

		return int(info.Size())
	default:
		return 0
	}
}

// Close releases the backend. Records obtained from [At], [Index] or
// [Records] must not be used afterwards, and later lookups fail with
// [ErrNotMapped].
func (f *File) Close() error {
	f.region = nil
	return f.storage.Close()
}

func resets(flag int) bool {
	return flag&(os.O_CREATE|os.O_TRUNC) != 0
}

func mappable(flag int, size int64) bool {
	switch {
	case flag&os.O_APPEND != 0:
		return false
	case resets(flag):
		return size > 0
	default:
		return true
	}
}

package mapped

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dw1.io/safecast"
)

type pos3D struct{ X, Y, Z float32 }

func openMapped(t *testing.T, size int64) *File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "records.bin")
	f, err := OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644, size)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	if !f.Mapped() {
		t.Skip("mmap backend unavailable")
	}

	return f
}

func TestIndexWritesThroughMapping(t *testing.T) {
	f := openMapped(t, 24)

	first, err := Index[pos3D](f, 0)
	require.NoError(t, err)
	second, err := Index[pos3D](f, 1)
	require.NoError(t, err)

	*first = pos3D{X: 1, Y: 2, Z: 3}
	second.Z = 9
	require.NoError(t, f.Sync())

	want := append(safecast.Bytes(&pos3D{X: 1, Y: 2, Z: 3}), safecast.Bytes(&pos3D{Z: 9})...)
	buf := make([]byte, 24)
	_, err = f.ReadAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, want, buf)

	name := f.Name()
	require.NoError(t, f.Close())

	onDisk, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, want, onDisk)
}

func TestRecordsAliasWholeFile(t *testing.T) {
	f := openMapped(t, 36)

	records, err := Records[pos3D](f)
	require.NoError(t, err)
	require.Len(t, records, 3)

	records[2].Y = 4.5

	tuple, err := At[[3]float32](f, 24)
	require.NoError(t, err)
	assert.Equal(t, float32(4.5), tuple[1])
}

func TestRecordBounds(t *testing.T) {
	f := openMapped(t, 20)

	_, err := Index[pos3D](f, 1)
	assert.ErrorIs(t, err, safecast.ErrIncompatible, "record straddling the end of file")

	_, err = At[pos3D](f, 21)
	assert.Error(t, err)

	_, err = Index[pos3D](f, -1)
	assert.Error(t, err)

	_, err = Records[pos3D](f)
	assert.ErrorIs(t, err, safecast.ErrShortBuffer)

	_, err = At[pos3D](f, 2)
	assert.ErrorIs(t, err, safecast.ErrMisaligned)
}

func TestAtHonoursStricterPolicy(t *testing.T) {
	f := openMapped(t, 24)

	_, err := At[pos3D](f, 0, safecast.WithCheck(safecast.SameSize))
	assert.ErrorIs(t, err, safecast.ErrIncompatible)

	_, err = At[pos3D](f, 12, safecast.WithCheck(safecast.SameSize))
	assert.NoError(t, err)
}

func TestFallbackIsNotMapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "append.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 12), 0o644))

	f, err := OpenFile(path, os.O_RDWR|os.O_APPEND, 0o644, 0)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.False(t, f.Mapped())
	assert.Nil(t, f.Bytes())
	assert.Equal(t, 12, f.Len())

	_, err = At[pos3D](f, 0)
	assert.ErrorIs(t, err, ErrNotMapped)

	_, err = Records[pos3D](f)
	assert.ErrorIs(t, err, ErrNotMapped)
}

func TestOpenExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.bin")
	p := pos3D{X: 7, Y: 8, Z: 9}
	require.NoError(t, os.WriteFile(path, safecast.Bytes(&p), 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, 12, f.Len())

	buf := make([]byte, 12)
	_, err = f.ReadAt(buf, 0)
	require.NoError(t, err)

	got, err := safecast.View[pos3D](buf)
	require.NoError(t, err)
	assert.Equal(t, p, *got)
}

func TestAtDoesNotAllocate(t *testing.T) {
	f := openMapped(t, 24)

	allocs := testing.AllocsPerRun(100, func() {
		if _, err := At[pos3D](f, 12); err != nil {
			t.Fatal(err)
		}
	})
	assert.Zero(t, allocs)
}

func TestLookupsFailAfterClose(t *testing.T) {
	f := openMapped(t, 12)

	_, err := At[pos3D](f, 0)
	require.NoError(t, err)

	require.NoError(t, f.Close())
	assert.False(t, f.Mapped())
	assert.Nil(t, f.Bytes())

	_, err = At[pos3D](f, 0)
	assert.ErrorIs(t, err, ErrNotMapped)

	_, err = Records[pos3D](f)
	assert.ErrorIs(t, err, ErrNotMapped)
}

func TestFallbackGrowsCreatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grown.bin")

	f, err := OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644, 24)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.False(t, f.Mapped())
	assert.Equal(t, 24, f.Len())
	assert.Equal(t, path, f.Name())
}

func TestMappable(t *testing.T) {
	cases := []struct {
		name string
		flag int
		size int64
		want bool
	}{
		{"readOnly", os.O_RDONLY, 0, true},
		{"readWrite", os.O_RDWR, 0, true},
		{"append", os.O_RDWR | os.O_APPEND, 64, false},
		{"createWithoutSize", os.O_RDWR | os.O_CREATE, 0, false},
		{"truncateWithSize", os.O_RDWR | os.O_TRUNC, 64, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mappable(tc.flag, tc.size))
		})
	}
}

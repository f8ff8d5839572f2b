package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unsafe"

	"go.dw1.io/safecast"
	"go.dw1.io/safecast/mapped"
)

type normalPos struct{ X, Y, Z float32 }

type reversePos struct{ Z, Y, X float32 }

type single struct{ F float32 }

type pos3D struct{ X, Y, Z float32 }

// String prints each coordinate with six significant digits.
func (p pos3D) String() string {
	return shortFloat(p.X) + " " + shortFloat(p.Y) + " " + shortFloat(p.Z)
}

func shortFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', 6, 32)
}

// Every pair below is reinterpreted by reference; a size mismatch fails the
// build instead of reaching safecast at runtime.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(normalPos{})-unsafe.Sizeof(reversePos{})]
	_ = [1]struct{}{}[unsafe.Sizeof(single{})-unsafe.Sizeof(float32(0))]
	_ = [1]struct{}{}[unsafe.Sizeof(pos3D{})-unsafe.Sizeof([3]float32{})]
	_ = [1]struct{}{}[unsafe.Sizeof(int32(0))-unsafe.Sizeof(float32(0))]
)

func integral(r *Recorder) error {
	s := float32(12.45)

	i, err := safecast.Value[int32](s)
	if err != nil {
		return err
	}
	r.Printf("%d", i)

	f, err := safecast.Value[float32](int32(5))
	if err != nil {
		return err
	}
	r.Printf("%g", f)

	r.Check("truncated", i == 12)
	r.Check("widened", f == 5)

	return nil
}

func structure(r *Recorder) error {
	np := normalPos{X: 1235.2345, Y: 665.198, Z: 860.83496}

	rp, err := safecast.Ref[reversePos](&np)
	if err != nil {
		return err
	}
	np.X = 2.456

	r.Check("np.x == rp.z", np.X == rp.Z)
	r.Check("np.y == rp.y", np.Y == rp.Y)
	r.Check("np.z == rp.x", np.Z == rp.X)
	r.Fingerprint(safecast.Fingerprint(rp))

	return nil
}

func scalar(r *Recorder) error {
	g := float32(5456.89)

	x, err := safecast.Ref[single](&g)
	if err != nil {
		return err
	}

	r.Check("x.f == g", x.F == g)
	r.Fingerprint(safecast.Fingerprint(x))

	return nil
}

func tuple(r *Recorder) error {
	p := pos3D{X: 346.4365, Y: 4562.46765, Z: 45}
	r.Printf("%s", p)

	t, err := safecast.Ref[[3]float32](&p)
	if err != nil {
		return err
	}

	t[0] = 5.46
	t[1] = 938.509
	t[2] = 1964.3959

	back, err := safecast.Ref[pos3D](t)
	if err != nil {
		return err
	}
	r.Printf("%s", back)
	r.Printf("%s", p)

	r.Check("mutation visible", p == pos3D{X: 5.46, Y: 938.509, Z: 1964.3959})
	r.Fingerprint(safecast.Fingerprint(&p))

	return nil
}

func mismatch(r *Recorder) error {
	p := pos3D{X: 1, Y: 2, Z: 3}

	_, err := safecast.Ref[[2]float32](&p)
	if err == nil {
		return errors.New("a 12-byte value was reinterpreted as 8 bytes")
	}

	r.Printf("%v", err)
	r.Check("rejected", errors.Is(err, safecast.ErrIncompatible))

	return nil
}

func mappedRecords(r *Recorder) (err error) {
	dir, err := os.MkdirTemp("", "safecast-demo-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	const count = 3
	size := int64(count * unsafe.Sizeof(pos3D{}))

	f, err := mapped.OpenFile(filepath.Join(dir, "records.bin"), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644, size)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !f.Mapped() {
		r.Printf("mmap unavailable on this platform; skipped")
		return nil
	}

	for i := range count {
		rec, err := mapped.Index[pos3D](f, i)
		if err != nil {
			return err
		}
		*rec = pos3D{X: float32(i), Y: float32(i * 10), Z: float32(i * 100)}
	}

	records, err := mapped.Records[[3]float32](f)
	if err != nil {
		return err
	}

	if len(records) != count {
		return fmt.Errorf("expected %d records, got %d", count, len(records))
	}

	for _, t := range records {
		r.Printf("%g %g %g", t[0], t[1], t[2])
	}

	r.Check("records", records[count-1] == [3]float32{2, 20, 200})
	r.Fingerprint(safecast.Fingerprint((*[count][3]float32)(records)))

	return f.Sync()
}

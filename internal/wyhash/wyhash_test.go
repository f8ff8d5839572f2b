package wyhash_test

import (
	"testing"

	"go.dw1.io/safecast/internal/wyhash"
)

func TestSum64Deterministic(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 7, 8, 12, 16, 17, 48, 49, 100, 257} {
		data := bytesOf(n, 0x5a)
		if a, b := wyhash.Sum64(data), wyhash.Sum64(data); a != b {
			t.Fatalf("len %d: got %d then %d", n, a, b)
		}
	}
}

func TestSum64DistinguishesLengths(t *testing.T) {
	seen := make(map[uint64]int)
	for n := 0; n <= 130; n++ {
		sum := wyhash.Sum64(bytesOf(n, 0x5a))
		if prev, ok := seen[sum]; ok {
			t.Fatalf("len %d collides with len %d", n, prev)
		}
		seen[sum] = n
	}
}

func TestSum64SeedMatters(t *testing.T) {
	data := []byte("hello wyhash")
	if wyhash.Sum64WithSeed(data, 1) == wyhash.Sum64WithSeed(data, 2) {
		t.Fatalf("expected different sums for different seeds")
	}

	if wyhash.Sum64(data) != wyhash.Sum64WithSeed(data, 0) {
		t.Fatalf("Sum64 must equal Sum64WithSeed with seed 0")
	}
}

func TestSum64SingleBitFlip(t *testing.T) {
	data := bytesOf(64, 0)
	base := wyhash.Sum64(data)

	for i := range data {
		data[i] ^= 1
		if wyhash.Sum64(data) == base {
			t.Fatalf("flipping byte %d did not change the sum", i)
		}
		data[i] ^= 1
	}
}

func bytesOf(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

package wyhash

import (
	"encoding/binary"
	"math/bits"
)

// wyhash secrets from the reference implementation.
const (
	k0 = uint64(0xa0761d6478bd642f)
	k1 = uint64(0xe7037ed1a0b428db)
	k2 = uint64(0x8ebc6af09c88c6e3)
	k3 = uint64(0x589965cc75374cc3)
	k4 = uint64(0x1d8e4e27c47d124f)
)

// Sum64 returns the wyhash-64 of data with seed 0.
func Sum64(data []byte) uint64 { return Sum64WithSeed(data, 0) }

// Sum64WithSeed returns the wyhash-64 of data with the provided seed.
func Sum64WithSeed(b []byte, seed uint64) uint64 {
	var a, c uint64

	s := len(b)
	seed ^= k0

	switch {
	case s == 0:
		return seed
	case s < 4:
		a = uint64(b[0]) | uint64(b[s>>1])<<8 | uint64(b[s-1])<<16
	case s < 8:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = uint64(binary.LittleEndian.Uint32(b[s-4:]))
	case s <= 16:
		a = binary.LittleEndian.Uint64(b)
		c = binary.LittleEndian.Uint64(b[s-8:])
	default:
		seed, a, c = long(b, seed)
	}

	return mix(k4^uint64(s), mix(a^k1, c^seed))
}

// long folds inputs above 16 bytes, three lanes at a time while more than 48
// bytes remain, then 16 bytes at a time.
func long(b []byte, seed uint64) (uint64, uint64, uint64) {
	l, i := len(b), 0

	if l > 48 {
		seed1, seed2 := seed, seed
		for ; l > 48; l -= 48 {
			seed = mix(read(b, i)^k1, read(b, i+8)^seed)
			seed1 = mix(read(b, i+16)^k2, read(b, i+24)^seed1)
			seed2 = mix(read(b, i+32)^k3, read(b, i+40)^seed2)
			i += 48
		}
		seed ^= seed1 ^ seed2
	}

	for ; l > 16; l -= 16 {
		seed = mix(read(b, i)^k1, read(b, i+8)^seed)
		i += 16
	}

	return seed, read(b, i+l-16), read(b, i+l-8)
}

func read(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off:])
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

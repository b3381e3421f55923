package rng

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// CryptoSeed draws a random 64-bit seed from crypto/rand.
func CryptoSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("rng: crypto/rand failure: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// seededSource is a deterministic PCG-backed Source. It is not safe for
// concurrent use; give each run its own.
type seededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a deterministic Source for seed.
//
// Postcondition: two sources built from the same seed produce the same
// sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: mrand.New(mrand.NewPCG(seed, seed^0xda3e39cb94b95bdb))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0. Panics with "rng: Intn called with n <= 0" otherwise.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return s.r.IntN(n)
}

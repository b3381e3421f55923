// Package rng provides the randomness abstraction used to shuffle libraries,
// plus deterministic per-run seeding so parallel simulations stay reproducible.
package rng

// Source is the randomness provider for shuffles.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Shuffle permutes the n elements reachable through swap uniformly at random
// (Fisher-Yates).
//
// Precondition: src must be non-nil; n >= 0.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// SeedFor mixes a base seed with a run index into an independent seed for that
// run (splitmix64 finalizer). Equal inputs give equal outputs.
func SeedFor(base uint64, run int) uint64 {
	x := base + uint64(run) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

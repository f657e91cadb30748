// Package random provides the randomness primitives shared by the question
// generators: an injectable integer source, an inclusive range helper and a
// Fisher–Yates shuffle.
package random

import "math/rand/v2"

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it, which is what tests inject.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default returns a goroutine-safe Source backed by the runtime generator.
func Default() Source { return globalSource{} }

// Seeded returns a deterministic Source. Not safe for concurrent use.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Int returns a uniform integer in [min, max], both inclusive.
func Int(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.IntN(max-min+1)
}

// Bool returns true with probability one half.
func Bool(src Source) bool { return src.IntN(2) == 0 }

// Shuffle returns a uniformly permuted copy of items. The input is not modified.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns one element of items chosen uniformly. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

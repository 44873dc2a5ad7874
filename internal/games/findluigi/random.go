package findluigi

import "math/rand"

// Random is the single random source shared by round generation and sprite
// motion. Every stochastic decision goes through it so a seed reproduces a
// whole session.
type Random struct {
	r *rand.Rand
}

// NewRandom creates a random source with the given seed.
func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform integer in the closed range [lo, hi].
func (r *Random) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Intn(hi-lo+1)
}

// Intn returns a uniform integer in the half-open range [0, n).
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// Shuffle permutes items in place (Fisher-Yates, walking down from the end).
func Shuffle[T any](r *Random, items []T) {
	for n := len(items) - 1; n > 0; n-- {
		k := r.Intn(n + 1)
		items[k], items[n] = items[n], items[k]
	}
}

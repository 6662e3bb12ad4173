// Package dice wraps the random source used by level generation and
// spawning so that callers can inject a seeded or scripted generator.
package dice

import "math/rand"

// RNG is the only randomness the generators need. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// New returns a deterministic source for the given seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Range draws from [lo, hi). It reports false, without consuming a draw,
// when the range is empty.
func Range(rng RNG, lo, hi int) (int, bool) {
	if hi <= lo {
		return 0, false
	}
	return lo + rng.Intn(hi-lo), true
}

// Roll sums n dice with the given number of sides (each 1..sides).
func Roll(rng RNG, n, sides int) int {
	if n <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += 1 + rng.Intn(sides)
	}
	return total
}

// Weighted picks an index from weights with probability proportional to
// each weight. Non-positive weights are never picked; -1 means nothing
// could be picked.
func Weighted(rng RNG, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return -1
}

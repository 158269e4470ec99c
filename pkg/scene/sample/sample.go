// Package sample draws random subsets from filtered word pools.
//
// Randomness is injected as a *rand.Rand so generation is reproducible under
// test; production wiring seeds it from entropy.
package sample

import (
	"math"
	"math/rand/v2"
)

// Take returns min(n, len(pool)) distinct elements drawn uniformly without
// replacement. The output order is randomized, not the pool order, and the
// input slice is never modified. n <= 0 returns nil.
func Take[T any](rng *rand.Rand, pool []T, n int) []T {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}

	shuffled := make([]T, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// One draws a single element. The second return value is false when the pool
// is empty.
func One[T any](rng *rand.Rand, pool []T) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}
	return pool[rng.IntN(len(pool))], true
}

// Split is the mixed-mode ratio rule: a request for n total items across two
// pools is split 60/40 in favor of nouns, nouns rounding up. Each pool is
// sampled independently, so an exhausted pool does not rebalance the other
// and the combined result may come up short of n.
func Split(n int) (nouns, verbs int) {
	if n <= 0 {
		return 0, 0
	}
	nouns = int(math.Ceil(0.6 * float64(n)))
	verbs = int(math.Floor(0.4 * float64(n)))
	return nouns, verbs
}

// rng.go centralizes the deterministic random-sampling primitive the
// generator needs: picking k distinct items out of n uniformly at random.
//
// Lifted from tsp/rng.go's shuffleIntsInPlace/permRange pair (Fisher-Yates
// over an index permutation), adapted into chooseDistinct below. Unlike
// tsp/rng.go, this package never constructs its own *rand.Rand — spec §9's
// open question on RNG threading is resolved in favor of always taking the
// caller's *rand.Rand (see DESIGN.md), so there is no rngFromSeed/deriveRNG
// equivalent here.
package generator

import "math/rand"

// chooseDistinct returns k distinct indices drawn uniformly at random,
// without replacement, from [0, n). Panics if k > n (a programmer error:
// every call site in this package first checks k against its own bound).
//
// Complexity: O(n) time, O(n) space (a partial Fisher-Yates shuffle).
func chooseDistinct(n, k int, rng *rand.Rand) []int {
	if k > n {
		panic("generator: chooseDistinct: k > n")
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:k]
}

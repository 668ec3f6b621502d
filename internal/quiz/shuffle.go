package quiz

import "math/rand"

// Shuffle permutes items in place using the Fisher-Yates algorithm.
// The caller supplies the RNG so shuffles stay deterministic under a seed.
func Shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample returns up to n elements drawn without replacement from items.
// The input slice is not modified.
func Sample[T any](rng *rand.Rand, items []T, n int) []T {
	if n >= len(items) {
		n = len(items)
	}
	picked := make([]T, len(items))
	copy(picked, items)
	Shuffle(rng, picked)
	return picked[:n]
}

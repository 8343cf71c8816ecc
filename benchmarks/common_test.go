// Package benchmarks provides comparative benchmarks of min-query
// against popular Go sequence and query libraries.
package benchmarks

import "math/rand"

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

// generateInts creates a slice of integers for benchmarking.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// generateShuffledInts creates a deterministically shuffled slice so sort
// benchmarks do real work.
func generateShuffledInts(n int) []int {
	data := generateInts(n)
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
	return data
}

// isEven returns true if the number is even.
func isEven(x int) bool {
	return x%2 == 0
}

// square returns the square of an integer.
func square(x int) int {
	return x * x
}

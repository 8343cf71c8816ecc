package benchmarks

import (
	"slices"
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/lguimbarda/min-query/query"
)

// =============================================================================
// Take Benchmarks
//
// Take rewards early termination: a lazy engine should touch only the
// first handful of elements regardless of input size.
// =============================================================================

const takeCount = 10

func BenchmarkTake_MinQuery_Small(b *testing.B) {
	benchmarkTakeMinQuery(b, SmallSize)
}

func BenchmarkTake_MinQuery_Medium(b *testing.B) {
	benchmarkTakeMinQuery(b, MediumSize)
}

func BenchmarkTake_MinQuery_Large(b *testing.B) {
	benchmarkTakeMinQuery(b, LargeSize)
}

func benchmarkTakeMinQuery(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = query.FromSlice(data).
			Where(func(x, _ int) bool { return isEven(x) }).
			Take(takeCount).
			ToSlice()
	}
}

func BenchmarkTake_GoLinq_Small(b *testing.B) {
	benchmarkTakeGoLinq(b, SmallSize)
}

func BenchmarkTake_GoLinq_Medium(b *testing.B) {
	benchmarkTakeGoLinq(b, MediumSize)
}

func BenchmarkTake_GoLinq_Large(b *testing.B) {
	benchmarkTakeGoLinq(b, LargeSize)
}

func benchmarkTakeGoLinq(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var result []int
		linq.From(data).WhereT(func(x int) bool {
			return isEven(x)
		}).Take(takeCount).ToSlice(&result)
	}
}

func BenchmarkTake_Lo_Small(b *testing.B) {
	benchmarkTakeLo(b, SmallSize)
}

func BenchmarkTake_Lo_Medium(b *testing.B) {
	benchmarkTakeLo(b, MediumSize)
}

func BenchmarkTake_Lo_Large(b *testing.B) {
	benchmarkTakeLo(b, LargeSize)
}

// lo is eager, so the filter runs over the whole input before the cut.
func benchmarkTakeLo(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		filtered := lo.Filter(data, func(x int, _ int) bool {
			return isEven(x)
		})
		_ = lo.Subset(filtered, 0, takeCount)
	}
}

func BenchmarkTake_RawLoop_Small(b *testing.B) {
	benchmarkTakeRawLoop(b, SmallSize)
}

func BenchmarkTake_RawLoop_Medium(b *testing.B) {
	benchmarkTakeRawLoop(b, MediumSize)
}

func BenchmarkTake_RawLoop_Large(b *testing.B) {
	benchmarkTakeRawLoop(b, LargeSize)
}

func benchmarkTakeRawLoop(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := make([]int, 0, takeCount)
		for _, x := range data {
			if !isEven(x) {
				continue
			}
			result = append(result, x)
			if len(result) == takeCount {
				break
			}
		}
		_ = result
	}
}

// =============================================================================
// Sort Benchmarks
// =============================================================================

func BenchmarkSort_MinQuery_Small(b *testing.B) {
	benchmarkSortMinQuery(b, SmallSize)
}

func BenchmarkSort_MinQuery_Medium(b *testing.B) {
	benchmarkSortMinQuery(b, MediumSize)
}

func BenchmarkSort_MinQuery_Large(b *testing.B) {
	benchmarkSortMinQuery(b, LargeSize)
}

func benchmarkSortMinQuery(b *testing.B, size int) {
	data := generateShuffledInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q := query.FromSlice(data)
		query.OrderByKey(q, func(x int) int { return x })
		_ = q.ToSlice()
	}
}

func BenchmarkSort_GoLinq_Small(b *testing.B) {
	benchmarkSortGoLinq(b, SmallSize)
}

func BenchmarkSort_GoLinq_Medium(b *testing.B) {
	benchmarkSortGoLinq(b, MediumSize)
}

func BenchmarkSort_GoLinq_Large(b *testing.B) {
	benchmarkSortGoLinq(b, LargeSize)
}

func benchmarkSortGoLinq(b *testing.B, size int) {
	data := generateShuffledInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var result []int
		linq.From(data).OrderByT(func(x int) int {
			return x
		}).ToSlice(&result)
	}
}

// Baseline: copy and slices.Sort
func BenchmarkSort_RawLoop_Small(b *testing.B) {
	benchmarkSortRawLoop(b, SmallSize)
}

func BenchmarkSort_RawLoop_Medium(b *testing.B) {
	benchmarkSortRawLoop(b, MediumSize)
}

func BenchmarkSort_RawLoop_Large(b *testing.B) {
	benchmarkSortRawLoop(b, LargeSize)
}

func benchmarkSortRawLoop(b *testing.B, size int) {
	data := generateShuffledInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := slices.Clone(data)
		slices.Sort(result)
		_ = result
	}
}

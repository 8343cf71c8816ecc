package query

import (
	"cmp"
	"encoding/json"
	"math/rand"
)

// Terminal operations drive the traversal to completion (or as far as
// needed) and reduce or materialize its output. Absence of a result is
// reported with a comma-ok false, never an error.

// Count returns the number of elements the query yields. Full traversal.
func (q *Query[T]) Count() int {
	n := 0
	for range q.Values() {
		n++
	}
	return n
}

// Any reports whether the query yields at least one element. The
// traversal stops after the first.
func (q *Query[T]) Any() bool {
	for range q.Values() {
		return true
	}
	return false
}

// All reports whether every source element is yielded, that is, whether
// no rule suppressed anything. It compares the unfiltered source length
// to Count, so it walks the source twice; do not call it on one-shot or
// infinite sources.
func (q *Query[T]) All() bool {
	sourceLen := 0
	for range q.source {
		sourceLen++
	}
	return sourceLen == q.Count()
}

// First returns the first yielded element.
func (q *Query[T]) First() (T, bool) {
	for v := range q.Values() {
		return v, true
	}
	var zero T
	return zero, false
}

// Last returns the final yielded element. Full traversal.
func (q *Query[T]) Last() (T, bool) {
	var last T
	found := false
	for v := range q.Values() {
		last = v
		found = true
	}
	return last, found
}

// Single returns the first yielded element satisfying pred.
func (q *Query[T]) Single(pred func(T) bool) (T, bool) {
	for v := range q.Values() {
		if pred == nil || pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// SingleOr returns the first yielded element satisfying pred, or def
// when none does.
func (q *Query[T]) SingleOr(pred func(T) bool, def T) T {
	if v, ok := q.Single(pred); ok {
		return v
	}
	return def
}

// Random returns one yielded element chosen uniformly at random, using
// single-pass reservoir selection: the i-th yielded element replaces the
// pick with probability 1/i.
func (q *Query[T]) Random() (T, bool) {
	var pick T
	n := 0
	for v := range q.Values() {
		n++
		if rand.Intn(n) == 0 {
			pick = v
		}
	}
	return pick, n > 0
}

// ForEach calls fn on every yielded element, in yield order.
func (q *Query[T]) ForEach(fn func(T)) {
	for v := range q.Values() {
		fn(v)
	}
}

// ToSlice materializes the full output in yield order. An empty result
// is a non-nil empty slice.
func (q *Query[T]) ToSlice() []T {
	out := []T{}
	for v := range q.Values() {
		out = append(out, v)
	}
	return out
}

// ToJSON serializes the materialized output as a JSON array. An empty
// result encodes as [], never null.
func (q *Query[T]) ToJSON() ([]byte, error) {
	return json.Marshal(q.ToSlice())
}

// Aggregate left-folds the yielded elements into an accumulator,
// starting from seed.
func Aggregate[T, A any](q *Query[T], seed A, fn func(acc A, value T) A) A {
	acc := seed
	for v := range q.Values() {
		acc = fn(acc, v)
	}
	return acc
}

// MaxBy returns the yielded element with the greatest key. The first
// element wins ties. Full traversal.
func MaxBy[T any, K cmp.Ordered](q *Query[T], key func(T) K) (T, bool) {
	return extremum(q, key, func(candidate, best K) bool { return candidate > best })
}

// MinBy returns the yielded element with the smallest key. The first
// element wins ties.
func MinBy[T any, K cmp.Ordered](q *Query[T], key func(T) K) (T, bool) {
	return extremum(q, key, func(candidate, best K) bool { return candidate < best })
}

func extremum[T any, K cmp.Ordered](q *Query[T], key func(T) K, better func(candidate, best K) bool) (T, bool) {
	var best T
	var bestKey K
	found := false
	for v := range q.Values() {
		k := key(v)
		if !found || better(k, bestKey) {
			best, bestKey = v, k
			found = true
		}
	}
	return best, found
}

// ToMap materializes the output keyed by keyFn. Later elements with a
// duplicate key overwrite earlier ones.
func ToMap[T any, K comparable](q *Query[T], keyFn func(T) K) map[K]T {
	out := make(map[K]T)
	for v := range q.Values() {
		out[keyFn(v)] = v
	}
	return out
}

// ToSet materializes the output's distinct values.
func ToSet[T comparable](q *Query[T]) map[T]struct{} {
	out := make(map[T]struct{})
	for v := range q.Values() {
		out[v] = struct{}{}
	}
	return out
}

// Column materializes one derived value per yielded element, in yield
// order.
func Column[T, K any](q *Query[T], sel func(T) K) []K {
	out := []K{}
	for v := range q.Values() {
		out = append(out, sel(v))
	}
	return out
}

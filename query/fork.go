package query

import (
	"iter"
	"slices"
)

// Create builds a new Query by handing the parent's output sequence to
// builder along with an emit callback. The builder may emit zero, one or
// many values per parent element it pulls; everything emitted is
// collected eagerly at call time and the returned Query ranges over that
// materialized sequence. Use CreateWith for a lazy derivation.
func Create[T, K any](q *Query[T], builder func(parent iter.Seq[T], emit func(K))) *Query[K] {
	var out []K
	builder(q.Values(), func(v K) { out = append(out, v) })
	child := FromSlice(out)
	child.err = q.err
	return child
}

// CreateWith returns a lazily derived Query. For each parent element
// that passes filter, builder runs with an emit callback; only the most
// recent value passed to emit during that invocation is yielded, so each
// accepted parent element contributes at most one output. If builder
// never calls emit, the element contributes nothing.
func CreateWith[T, K any](q *Query[T], filter func(T) bool, builder func(value T, emit func(K))) *Query[K] {
	child := From(func(yield func(K) bool) {
		for v := range q.Values() {
			if filter != nil && !filter(v) {
				continue
			}
			var last K
			emitted := false
			builder(v, func(k K) {
				last = k
				emitted = true
			})
			if emitted && !yield(last) {
				return
			}
		}
	})
	child.err = q.err
	return child
}

// Export returns a Query with an independent rule store, for divergent
// reuse without mutating the original. The source sequence is shared;
// like any Query, both copies re-read it on traversal.
func (q *Query[T]) Export() *Query[T] {
	return &Query[T]{source: q.source, plan: q.plan.Clone(), err: q.err}
}

// Concat returns a new Query over this query's output followed by the
// elements of other. Neither input is mutated.
func (q *Query[T]) Concat(other iter.Seq[T]) *Query[T] {
	return From(chain(q.Values(), other))
}

// Append returns a new Query over the elements of other followed by this
// query's output.
func (q *Query[T]) Append(other iter.Seq[T]) *Query[T] {
	return From(chain(other, q.Values()))
}

func chain[T any](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range a {
			if !yield(v) {
				return
			}
		}
		for v := range b {
			if !yield(v) {
				return
			}
		}
	}
}

// Reverse eagerly materializes the fully filtered, bounded and sorted
// result, reverses it, and installs it as the query's new source with a
// fresh rule store. Unlike the rule-registering methods this collapses
// laziness irreversibly: the original source is no longer consulted.
// Returns the receiver.
func (q *Query[T]) Reverse() *Query[T] {
	out := slices.Collect(q.Values())
	slices.Reverse(out)
	fresh := FromSlice(out)
	q.source = fresh.source
	q.plan = fresh.plan
	return q
}

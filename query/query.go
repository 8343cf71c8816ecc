// Package query provides a deferred-execution query builder over
// sequences. A Query accumulates filtering, bounding and ordering rules
// through chained registration calls; no source element is touched until
// the result is consumed by ranging Values, pulling a Cursor, or calling
// a terminal operation.
//
// This package is the primary user-facing API. The query/core subpackage
// contains the rule plan and traversal engine and is rarely needed
// directly.
//
// A Query is a mutable single-owner builder: registration methods mutate
// the receiver and return it. The intended lifecycle is construct,
// register rules, then iterate or materialize; iterating the same Query
// again re-runs the same rules against the same source. Do not register
// rules while an iteration is in progress.
package query

import (
	"iter"

	"github.com/lguimbarda/min-query/query/core"
)

// Query wraps a source sequence and the rules declared against it.
type Query[T any] struct {
	source iter.Seq[T]
	plan   *core.Plan[T]
	err    error
}

// From creates a Query over any sequence. The output is restartable only
// if seq itself is; sequences over slices are, channel sequences are not.
func From[T any](seq iter.Seq[T]) *Query[T] {
	return &Query[T]{source: seq, plan: core.NewPlan[T]()}
}

// FromSlice creates a Query over the elements of items, in order. The
// slice is not copied; it is read on every traversal.
func FromSlice[T any](items []T) *Query[T] {
	return From(func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	})
}

// FromChannel creates a Query over values received from ch. The source
// is one-shot: a second traversal observes only values not yet consumed.
// The caller is responsible for closing the channel.
func FromChannel[T any](ch <-chan T) *Query[T] {
	return From(func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	})
}

// Values returns the query's lazy output sequence: the single-pass
// traversal of the source under every registered rule, buffered and
// sorted only when an ordering rule is present. Each range over the
// returned sequence re-runs the traversal from the start. If a
// registration error is pending (see Err), the sequence yields nothing.
func (q *Query[T]) Values() iter.Seq[T] {
	if q.err != nil {
		return func(func(T) bool) {}
	}
	return core.Run(q.source, q.plan)
}

// Pull returns a manual cursor over the query's output. The caller must
// Close it.
func (q *Query[T]) Pull() *core.Cursor[T] {
	return core.NewCursor(q.Values())
}

// Err reports the first registration error, if any. A Query with a
// pending error yields no elements; check Err after building a query
// from dynamic input, in the manner of bufio.Scanner.
func (q *Query[T]) Err() error {
	return q.err
}

// fail records the first registration error. Later errors are dropped.
func (q *Query[T]) fail(err error) *Query[T] {
	if q.err == nil {
		q.err = err
	}
	return q
}

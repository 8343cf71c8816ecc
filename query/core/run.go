package core

import "iter"

// decision is the per-element verdict of the bound and filter checks.
type decision int

const (
	// decisionStop terminates the traversal entirely.
	decisionStop decision = iota
	// decisionSkip suppresses the current element and continues.
	decisionSkip
	// decisionTake accepts the current element for emission.
	decisionTake
)

// traversal holds the counters for one Run invocation. They are scoped
// here, not on the Plan, so re-ranging the sequence Run returns starts a
// fresh traversal with the same rules.
type traversal[T any] struct {
	plan    *Plan[T]
	skipped int
	taken   int
}

// examine applies the bound checks and the combined filter list to v,
// in this order: take-while and limit terminate the traversal; skip-while
// and offset suppress without terminating; filters suppress without
// terminating. Bounds run before filters, so take-while is a termination
// condition over the raw source, independent of filter outcome, and
// offset suppresses examined elements rather than filtered ones. Only
// accepted elements advance the taken counter.
func (t *traversal[T]) examine(v T) decision {
	p := t.plan
	if p.takeWhile != nil && !p.takeWhile(v) {
		return decisionStop
	}
	if p.limit != 0 && t.taken == p.limit {
		return decisionStop
	}
	if p.skipWhile != nil && p.skipWhile(v) {
		return decisionSkip
	}
	if p.offset != 0 && t.skipped < p.offset {
		t.skipped++
		return decisionSkip
	}
	if !p.admit(v) {
		return decisionSkip
	}
	t.taken++
	return decisionTake
}

// Run produces the lazy output sequence for plan over src. The source is
// walked exactly once per range; when an ordering pass is registered the
// surviving elements are buffered, sorted and then emitted, otherwise
// each accepted element is yielded as it is found. Panics raised by
// caller-supplied predicates or comparators propagate unrecovered.
func Run[T any](src iter.Seq[T], plan *Plan[T]) iter.Seq[T] {
	if plan.HasSort() {
		return runBuffered(src, plan)
	}
	return runStreaming(src, plan)
}

func runStreaming[T any](src iter.Seq[T], plan *Plan[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		t := traversal[T]{plan: plan}
		for v := range src {
			switch t.examine(v) {
			case decisionStop:
				return
			case decisionSkip:
				continue
			case decisionTake:
				if !yield(v) {
					return
				}
			}
		}
	}
}

func runBuffered[T any](src iter.Seq[T], plan *Plan[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		t := traversal[T]{plan: plan}
		var buf []T
	scan:
		for v := range src {
			switch t.examine(v) {
			case decisionStop:
				break scan
			case decisionSkip:
				continue
			case decisionTake:
				buf = append(buf, v)
			}
		}
		if len(buf) == 0 {
			return
		}
		plan.sort(buf)
		for _, v := range buf {
			if !yield(v) {
				return
			}
		}
	}
}

// Package core defines the rule plan and traversal engine for deferred
// query evaluation. A Plan accumulates the rules a query declares; Run
// walks a source sequence exactly once under those rules, streaming
// results out or buffering them when an ordering pass is registered.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other min-query packages.
package core

import "slices"

// Predicate decides whether an element is kept. The index is the
// predicate's position in the combined filter list (unconditional
// filters first, then enabled conditional filters), not the element's
// position in the source.
type Predicate[T any] func(value T, index int) bool

// Comparator is a three-way comparison: negative when a sorts before b,
// positive when a sorts after b, zero when the pass considers them equal.
type Comparator[T any] func(a, b T) int

// conditional pairs a filter predicate with the enablement flag captured
// when it was registered. Only enabled entries join the combined filter
// list; disabled ones do not occupy an index.
type conditional[T any] struct {
	enabled bool
	pred    Predicate[T]
}

// Plan is the rule store for one query: filter predicates, conditional
// filter predicates, ordering passes, index bounds and predicate bounds.
// It is pure data plus insertion; Run interprets it. A Plan is not safe
// for concurrent mutation and traversal.
type Plan[T any] struct {
	filters      []Predicate[T]
	conditionals []conditional[T]

	// Ordering passes. Key-derived passes always run after comparator
	// passes; within each list, registration order is preserved. Each
	// pass fully re-sorts the buffer, so the last pass to run is the
	// dominant sort key.
	comparators []Comparator[T]
	keys        []Comparator[T]

	// Index bounds. Zero means unset.
	offset int
	limit  int

	// Predicate bounds. At most one of each.
	skipWhile func(T) bool
	takeWhile func(T) bool
}

// NewPlan returns an empty rule store.
func NewPlan[T any]() *Plan[T] {
	return &Plan[T]{}
}

// AddFilter appends an unconditional filter predicate.
func (p *Plan[T]) AddFilter(pred Predicate[T]) {
	p.filters = append(p.filters, pred)
}

// AddConditional appends a filter predicate that participates only when
// enabled is true. Enabled conditionals evaluate after all unconditional
// filters, in their own registration order.
func (p *Plan[T]) AddConditional(enabled bool, pred Predicate[T]) {
	p.conditionals = append(p.conditionals, conditional[T]{enabled: enabled, pred: pred})
}

// AddComparator appends a comparator ordering pass.
func (p *Plan[T]) AddComparator(cmp Comparator[T]) {
	p.comparators = append(p.comparators, cmp)
}

// AddKeyComparator appends a key-derived ordering pass. Key passes run
// after all comparator passes regardless of interleaved registration.
func (p *Plan[T]) AddKeyComparator(cmp Comparator[T]) {
	p.keys = append(p.keys, cmp)
}

// SetOffset sets the number of examined elements to suppress before any
// are emitted. Values <= 0 unset the bound.
func (p *Plan[T]) SetOffset(n int) {
	if n < 0 {
		n = 0
	}
	p.offset = n
}

// SetLimit sets the number of accepted elements after which the
// traversal stops. Values <= 0 unset the bound.
func (p *Plan[T]) SetLimit(n int) {
	if n < 0 {
		n = 0
	}
	p.limit = n
}

// SetSkipWhile installs the predicate bound that suppresses elements for
// as long as it holds. A nil predicate unsets it.
func (p *Plan[T]) SetSkipWhile(pred func(T) bool) {
	p.skipWhile = pred
}

// SetTakeWhile installs the predicate bound that terminates the
// traversal on the first element for which it fails. A nil predicate
// unsets it.
func (p *Plan[T]) SetTakeWhile(pred func(T) bool) {
	p.takeWhile = pred
}

// HasSort reports whether any ordering pass is registered. Run buffers
// the traversal exactly when this is true.
func (p *Plan[T]) HasSort() bool {
	return len(p.comparators) > 0 || len(p.keys) > 0
}

// Clone returns a Plan with independent rule storage. Predicates and
// comparators are shared function values; the lists holding them are
// copied, so registering on the clone never mutates the original.
func (p *Plan[T]) Clone() *Plan[T] {
	return &Plan[T]{
		filters:      slices.Clone(p.filters),
		conditionals: slices.Clone(p.conditionals),
		comparators:  slices.Clone(p.comparators),
		keys:         slices.Clone(p.keys),
		offset:       p.offset,
		limit:        p.limit,
		skipWhile:    p.skipWhile,
		takeWhile:    p.takeWhile,
	}
}

// admit evaluates the combined filter list against v: unconditional
// filters in registration order, then enabled conditionals. Evaluation
// is left to right and short-circuits on the first predicate that
// returns false. Each predicate receives its own position in the
// combined list.
func (p *Plan[T]) admit(v T) bool {
	idx := 0
	for _, pred := range p.filters {
		if !pred(v, idx) {
			return false
		}
		idx++
	}
	for _, c := range p.conditionals {
		if !c.enabled {
			continue
		}
		if !c.pred(v, idx) {
			return false
		}
		idx++
	}
	return true
}

// sort applies every ordering pass to buf in place. Comparator passes
// run first, then key passes, each fully re-sorting with a stable sort.
// Elements a later pass considers equal keep the order the previous
// pass gave them, so earlier passes act as tie-breaks only.
func (p *Plan[T]) sort(buf []T) {
	for _, cmp := range p.comparators {
		slices.SortStableFunc(buf, cmp)
	}
	for _, cmp := range p.keys {
		slices.SortStableFunc(buf, cmp)
	}
}

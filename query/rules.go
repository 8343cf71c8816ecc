package query

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/lguimbarda/min-query/query/core"
	"github.com/lguimbarda/min-query/query/match"
)

// Where registers a filter predicate. The index passed to the predicate
// is its position in the combined filter list (unconditional filters
// first, then enabled conditional ones), not the element's position in
// the source. Filters combine as a short-circuiting AND in registration
// order.
func (q *Query[T]) Where(pred func(value T, index int) bool) *Query[T] {
	if pred == nil {
		return q.fail(fmt.Errorf("where: nil predicate: %w", ErrInvalidArgument))
	}
	q.plan.AddFilter(core.Predicate[T](pred))
	return q
}

// Except registers the logical negation of pred as a filter.
func (q *Query[T]) Except(pred func(value T, index int) bool) *Query[T] {
	if pred == nil {
		return q.fail(fmt.Errorf("except: nil predicate: %w", ErrInvalidArgument))
	}
	return q.Where(func(v T, i int) bool { return !pred(v, i) })
}

// NotNil filters to elements whose selector result is strictly non-nil.
// Typed nil pointers boxed in the interface count as nil.
func (q *Query[T]) NotNil(sel func(T) any) *Query[T] {
	if sel == nil {
		return q.fail(fmt.Errorf("notnil: nil selector: %w", ErrInvalidArgument))
	}
	return q.Where(func(v T, _ int) bool { return !match.IsNil(sel(v)) })
}

// IsNil filters to elements whose selector result is nil.
func (q *Query[T]) IsNil(sel func(T) any) *Query[T] {
	if sel == nil {
		return q.fail(fmt.Errorf("isnil: nil selector: %w", ErrInvalidArgument))
	}
	return q.Where(func(v T, _ int) bool { return match.IsNil(sel(v)) })
}

// Exact filters to elements deeply structurally equal to value.
func (q *Query[T]) Exact(value T) *Query[T] {
	return q.Where(func(v T, _ int) bool { return match.DeepEqual(v, value) })
}

// Exclude filters out elements deeply structurally equal to value.
func (q *Query[T]) Exclude(value T) *Query[T] {
	return q.Where(func(v T, _ int) bool { return !match.DeepEqual(v, value) })
}

// Match filters to elements that partially match the given shape: only
// the keys or fields present in partial are compared. See match.Partial
// for the exact rules.
func (q *Query[T]) Match(partial any) *Query[T] {
	return q.Where(func(v T, _ int) bool { return match.Partial(partial, v) })
}

// NotMatch filters out elements that partially match the given shape.
func (q *Query[T]) NotMatch(partial any) *Query[T] {
	return q.Where(func(v T, _ int) bool { return !match.Partial(partial, v) })
}

// WhereIf registers a filter that participates only when enabled is
// true. Enablement is captured at registration; pass the current value
// of whatever flag governs the rule. Enabled conditional filters
// evaluate after every unconditional filter, in their own registration
// order.
func (q *Query[T]) WhereIf(enabled bool, pred func(value T, index int) bool) *Query[T] {
	if pred == nil {
		return q.fail(fmt.Errorf("whereif: nil predicate: %w", ErrInvalidArgument))
	}
	q.plan.AddConditional(enabled, core.Predicate[T](pred))
	return q
}

// Skip suppresses the first n examined elements of the traversal. The
// bound applies before filters, so it counts elements looked at, not
// elements kept. Zero or negative n unsets the bound.
func (q *Query[T]) Skip(n int) *Query[T] {
	q.plan.SetOffset(n)
	return q
}

// Take stops the traversal once n elements have been accepted. Zero or
// negative n unsets the bound.
func (q *Query[T]) Take(n int) *Query[T] {
	q.plan.SetLimit(n)
	return q
}

// SkipWhile suppresses elements for as long as pred holds. Unlike Skip
// the predicate is consulted on every element, so a later element for
// which pred holds again is suppressed again. A nil pred unsets the rule.
func (q *Query[T]) SkipWhile(pred func(T) bool) *Query[T] {
	q.plan.SetSkipWhile(pred)
	return q
}

// TakeWhile terminates the traversal permanently on the first element
// for which pred fails, before filters are consulted. Elements after the
// failure are never examined, even if pred would hold for them. A nil
// pred unsets the rule.
func (q *Query[T]) TakeWhile(pred func(T) bool) *Query[T] {
	q.plan.SetTakeWhile(pred)
	return q
}

// OrderBy registers a comparator ordering pass. Each ordering pass fully
// re-sorts the result of the previous passes with a stable sort, so the
// last-registered pass is the dominant sort key and earlier passes
// survive only as tie-breaks. Key-based passes (OrderByKey,
// OrderByKeyDesc) always run after every comparator pass.
func (q *Query[T]) OrderBy(compare func(a, b T) int) *Query[T] {
	if compare == nil {
		return q.fail(fmt.Errorf("orderby: nil comparator: %w", ErrInvalidArgument))
	}
	q.plan.AddComparator(core.Comparator[T](compare))
	return q
}

// OrderByKey registers an ascending key ordering pass. See
// Query.OrderBy for how multiple passes layer.
func OrderByKey[T any, K cmp.Ordered](q *Query[T], key func(T) K) *Query[T] {
	if key == nil {
		return q.fail(fmt.Errorf("orderbykey: nil key: %w", ErrInvalidArgument))
	}
	q.plan.AddKeyComparator(func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return q
}

// OrderByKeyDesc registers a descending key ordering pass.
func OrderByKeyDesc[T any, K cmp.Ordered](q *Query[T], key func(T) K) *Query[T] {
	if key == nil {
		return q.fail(fmt.Errorf("orderbykeydesc: nil key: %w", ErrInvalidArgument))
	}
	q.plan.AddKeyComparator(func(a, b T) int { return cmp.Compare(key(b), key(a)) })
	return q
}

// In filters to elements whose key is a member of values. The values
// sequence is re-ranged on every element evaluated, so a lazily changing
// sequence is re-read per check; callers wanting a stable snapshot
// should materialize it first.
func In[T any, K comparable](q *Query[T], key func(T) K, values iter.Seq[K]) *Query[T] {
	if key == nil || values == nil {
		return q.fail(fmt.Errorf("in: nil key or values: %w", ErrInvalidArgument))
	}
	return q.Where(func(v T, _ int) bool { return contains(values, key(v)) })
}

// NotIn filters out elements whose key is a member of values. Like In,
// values is re-ranged per element evaluated.
func NotIn[T any, K comparable](q *Query[T], key func(T) K, values iter.Seq[K]) *Query[T] {
	if key == nil || values == nil {
		return q.fail(fmt.Errorf("notin: nil key or values: %w", ErrInvalidArgument))
	}
	return q.Where(func(v T, _ int) bool { return !contains(values, key(v)) })
}

func contains[K comparable](values iter.Seq[K], want K) bool {
	for k := range values {
		if k == want {
			return true
		}
	}
	return false
}

// Between filters to elements whose key lies in [lo, hi], inclusive at
// both ends.
func Between[T any, K cmp.Ordered](q *Query[T], key func(T) K, lo, hi K) *Query[T] {
	if key == nil {
		return q.fail(fmt.Errorf("between: nil key: %w", ErrInvalidArgument))
	}
	return q.Where(func(v T, _ int) bool {
		k := key(v)
		return k >= lo && k <= hi
	})
}

// BetweenExclusive filters to elements whose key lies in (lo, hi),
// strict at both ends.
func BetweenExclusive[T any, K cmp.Ordered](q *Query[T], key func(T) K, lo, hi K) *Query[T] {
	if key == nil {
		return q.fail(fmt.Errorf("betweenexclusive: nil key: %w", ErrInvalidArgument))
	}
	return q.Where(func(v T, _ int) bool {
		k := key(v)
		return k > lo && k < hi
	})
}

// Select returns a new Query typed over the transform's result. The
// parent query becomes the new query's source, so the transform is
// applied lazily at the parent's point of emission and rules registered
// on the child see only transformed elements.
func Select[T, K any](q *Query[T], fn func(T) K) *Query[K] {
	if fn == nil {
		child := From[K](func(func(K) bool) {})
		return child.fail(fmt.Errorf("select: nil transform: %w", ErrInvalidArgument))
	}
	child := From(func(yield func(K) bool) {
		for v := range q.Values() {
			if !yield(fn(v)) {
				return
			}
		}
	})
	child.err = q.err
	return child
}

package query

import "fmt"

// The methods in this file are part of the declared query surface but
// intentionally out of scope. Each fails fast with ErrNotImplemented and
// leaves the query untouched.

// Distinct would suppress duplicate elements.
func (q *Query[T]) Distinct() error {
	return fmt.Errorf("distinct: %w", ErrNotImplemented)
}

// Join would correlate this query's elements with another sequence.
func (q *Query[T]) Join(other any) error {
	return fmt.Errorf("join: %w", ErrNotImplemented)
}

// GroupBy would partition elements by a key.
func (q *Query[T]) GroupBy(key any) error {
	return fmt.Errorf("groupby: %w", ErrNotImplemented)
}

// OfType would narrow elements to a target type.
func (q *Query[T]) OfType(target any) error {
	return fmt.Errorf("oftype: %w", ErrNotImplemented)
}

// AssertMode would toggle assertion behavior during traversal.
func (q *Query[T]) AssertMode(mode string) error {
	return fmt.Errorf("assertmode: %w", ErrNotImplemented)
}

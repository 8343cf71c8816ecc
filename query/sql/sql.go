// Package sql adapts database/sql result sets into query sources,
// so rows can be filtered, ordered and materialized with the query
// package.
package sql

import (
	"context"
	"database/sql"
	"iter"

	"github.com/lguimbarda/min-query/query"
)

// Scanner converts the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Source runs one SQL statement per traversal and yields a value per
// row. Query, scan and row errors stop the traversal and are reported by
// Err, in the manner of bufio.Scanner.
type Source[T any] struct {
	db   *sql.DB
	stmt string
	args []any
	scan Scanner[T]
	err  error
}

// New creates a Source for the given statement. The statement is not
// executed until the source is traversed; each traversal re-executes it.
func New[T any](db *sql.DB, stmt string, scan Scanner[T], args ...any) *Source[T] {
	return &Source[T]{db: db, stmt: stmt, args: args, scan: scan}
}

// Values returns the row sequence. A new traversal clears any previous
// error and re-runs the statement.
func (s *Source[T]) Values(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		s.err = nil
		rows, err := s.db.QueryContext(ctx, s.stmt, s.args...)
		if err != nil {
			s.err = err
			return
		}
		defer rows.Close()
		for rows.Next() {
			v, err := s.scan(rows)
			if err != nil {
				s.err = err
				return
			}
			if !yield(v) {
				return
			}
		}
		s.err = rows.Err()
	}
}

// Err reports the first error of the most recent traversal, if any.
func (s *Source[T]) Err() error {
	return s.err
}

// Query returns a query over the source's rows.
func (s *Source[T]) Query(ctx context.Context) *query.Query[T] {
	return query.From(s.Values(ctx))
}

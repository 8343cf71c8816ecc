// Package json adapts JSON input into query sources: whole arrays,
// lazily streamed array elements, and newline-delimited documents.
package json

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/lguimbarda/min-query/query"
)

// FromArray decodes data as a JSON array of T and returns a query over
// its elements.
func FromArray[T any](data []byte) (*query.Query[T], error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode array: %w", err)
	}
	return query.FromSlice(items), nil
}

// Source streams elements of a JSON array from a reader without
// materializing the whole document. Decode errors stop the traversal and
// are reported by Err. The source is one-shot: it consumes the reader.
type Source[T any] struct {
	r   io.Reader
	err error
}

// NewSource creates a streaming array source over r.
func NewSource[T any](r io.Reader) *Source[T] {
	return &Source[T]{r: r}
}

// Values returns the element sequence. The array's opening and closing
// delimiters are consumed as tokens; each element is decoded on demand.
func (s *Source[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.err = nil
		dec := json.NewDecoder(s.r)
		if _, err := dec.Token(); err != nil {
			s.err = fmt.Errorf("read array start: %w", err)
			return
		}
		for dec.More() {
			var v T
			if err := dec.Decode(&v); err != nil {
				s.err = fmt.Errorf("decode element: %w", err)
				return
			}
			if !yield(v) {
				return
			}
		}
		if _, err := dec.Token(); err != nil {
			s.err = fmt.Errorf("read array end: %w", err)
		}
	}
}

// Err reports the first decode error of the most recent traversal.
func (s *Source[T]) Err() error {
	return s.err
}

// Query returns a query over the source's elements.
func (s *Source[T]) Query() *query.Query[T] {
	return query.From(s.Values())
}

// Lines streams one JSON document per non-empty line (NDJSON). Decode
// and read errors stop the traversal and are reported by Err. Like
// Source, it consumes the reader.
type Lines[T any] struct {
	r   io.Reader
	err error
}

// NewLines creates an NDJSON source over r.
func NewLines[T any](r io.Reader) *Lines[T] {
	return &Lines[T]{r: r}
}

// Values returns the document sequence.
func (l *Lines[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.err = nil
		sc := bufio.NewScanner(l.r)
		for sc.Scan() {
			line := bytes.TrimSpace(sc.Bytes())
			if len(line) == 0 {
				continue
			}
			var v T
			if err := json.Unmarshal(line, &v); err != nil {
				l.err = fmt.Errorf("decode line: %w", err)
				return
			}
			if !yield(v) {
				return
			}
		}
		l.err = sc.Err()
	}
}

// Err reports the first error of the most recent traversal.
func (l *Lines[T]) Err() error {
	return l.err
}

// Query returns a query over the source's documents.
func (l *Lines[T]) Query() *query.Query[T] {
	return query.From(l.Values())
}

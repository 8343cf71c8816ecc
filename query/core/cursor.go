package core

import "iter"

// Cursor is a manual pull handle over a sequence. It converts the
// push-style iter.Seq protocol into explicit Next calls, for consumers
// that interleave pulling with other work.
type Cursor[T any] struct {
	next func() (T, bool)
	stop func()
}

// NewCursor starts pulling from seq. The caller must Close the cursor
// when done, even if Next has already reported exhaustion.
func NewCursor[T any](seq iter.Seq[T]) *Cursor[T] {
	next, stop := iter.Pull(seq)
	return &Cursor[T]{next: next, stop: stop}
}

// Next returns the next value. The second return is false once the
// sequence is exhausted or the cursor is closed.
func (c *Cursor[T]) Next() (T, bool) {
	return c.next()
}

// Close releases the underlying iteration. Further Next calls return
// the zero value and false. Close is idempotent.
func (c *Cursor[T]) Close() {
	c.stop()
}

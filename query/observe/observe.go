// Package observe provides pass-through instrumentation for query
// traversals: side-effect taps, per-traversal metrics, and an
// OpenTelemetry counter adapter.
package observe

import (
	"iter"
	"time"
)

// Metrics holds statistics about one completed (or abandoned) traversal.
type Metrics struct {
	Yielded   int64
	StartTime time.Time
	EndTime   time.Time

	// ItemsPerSecond is computed over the wall time between the first
	// pull and the end of the traversal.
	ItemsPerSecond float64
}

// Tap returns a sequence that yields everything seq yields, calling fn
// on each element first.
func Tap[T any](seq iter.Seq[T], fn func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			fn(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Meter returns a sequence that collects Metrics for each traversal of
// seq. onComplete fires when the traversal ends, whether the source was
// exhausted or the consumer stopped early.
func Meter[T any](seq iter.Seq[T], onComplete func(Metrics)) iter.Seq[T] {
	return func(yield func(T) bool) {
		m := Metrics{StartTime: time.Now()}
		defer func() {
			m.EndTime = time.Now()
			if d := m.EndTime.Sub(m.StartTime).Seconds(); d > 0 && m.Yielded > 0 {
				m.ItemsPerSecond = float64(m.Yielded) / d
			}
			if onComplete != nil {
				onComplete(m)
			}
		}()
		for v := range seq {
			m.Yielded++
			if !yield(v) {
				return
			}
		}
	}
}

package observe

import (
	"context"
	"iter"

	"go.opentelemetry.io/otel/metric"
)

// CountWith returns a sequence that records one count on the counter per
// yielded element. The context is used only for the metric recording.
func CountWith[T any](ctx context.Context, counter metric.Int64Counter, seq iter.Seq[T]) iter.Seq[T] {
	return Tap(seq, func(T) {
		counter.Add(ctx, 1)
	})
}

// RecordDuration returns a sequence that records the wall time of each
// traversal, in milliseconds, on the histogram.
func RecordDuration[T any](ctx context.Context, hist metric.Int64Histogram, seq iter.Seq[T]) iter.Seq[T] {
	return Meter(seq, func(m Metrics) {
		hist.Record(ctx, m.EndTime.Sub(m.StartTime).Milliseconds())
	})
}

package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Meter bridges a stream to OpenTelemetry: a counter of elements
// observed and, when a measure function is configured, a histogram of
// per-element measures. Feed Meter.Observe to Stream.Inspect.
type Meter[T any] struct {
	ctx      context.Context
	elements metric.Int64Counter
	measures metric.Int64Histogram
	measure  func(T) int64
}

// MeterOption configures a Meter.
type MeterOption[T any] func(*Meter[T])

// WithContext sets the context measurements are recorded against.
// The default is context.Background().
func WithContext[T any](ctx context.Context) MeterOption[T] {
	return func(m *Meter[T]) {
		m.ctx = ctx
	}
}

// WithMeasure configures a per-element measure recorded into the
// "<name>.measure" histogram.
func WithMeasure[T any](measure func(T) int64) MeterOption[T] {
	return func(m *Meter[T]) {
		m.measure = measure
	}
}

// NewMeter creates stream instruments on the given meter: a counter
// named "<name>.elements" counting observations and, if a measure is
// configured, a histogram named "<name>.measure".
func NewMeter[T any](meter metric.Meter, name string, opts ...MeterOption[T]) (*Meter[T], error) {
	m := &Meter[T]{ctx: context.Background()}
	for _, opt := range opts {
		opt(m)
	}

	var err error
	m.elements, err = meter.Int64Counter(name+".elements",
		metric.WithDescription("count of elements observed by the stream"))
	if err != nil {
		return nil, err
	}

	if m.measure != nil {
		m.measures, err = meter.Int64Histogram(name+".measure",
			metric.WithDescription("per-element measures recorded by the stream"))
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one element against the configured instruments.
func (m *Meter[T]) Observe(v T) {
	m.elements.Add(m.ctx, 1)
	if m.measure != nil {
		m.measures.Record(m.ctx, m.measure(v))
	}
}

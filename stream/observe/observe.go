// Package observe provides observers for stream pipelines: counters,
// recorders, logging, and OpenTelemetry instruments. An observer is a
// plain func(T) fed to Stream.Inspect; the pipeline stays pull-based
// and single-threaded, observers only record what flows by.
package observe

import (
	"sync"
	"sync/atomic"
)

// Counter counts observations. The pipeline itself is single-threaded,
// but a Counter may be read from a monitoring goroutine while the walk
// runs.
type Counter struct {
	count atomic.Int64
}

// Add increments the counter by delta.
func (c *Counter) Add(delta int64) { c.count.Add(delta) }

// Count returns the number of observations so far.
func (c *Counter) Count() int64 { return c.count.Load() }

// Tally returns an observer that increments the counter once per
// observation. Note that Inspect observers fire per read of an element,
// which can exceed one per element when adapters re-read a position.
func Tally[T any](c *Counter) func(T) {
	return func(T) { c.Add(1) }
}

// Recorder records every observed element in order. Useful in tests and
// for auditing small pipelines; it grows without bound. The zero
// Recorder is ready to use.
type Recorder[T any] struct {
	mu     sync.Mutex
	values []T
}

// NewRecorder creates an empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Observe appends the element to the record.
func (r *Recorder[T]) Observe(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

// Values returns a snapshot of the recorded elements.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Len returns the number of recorded elements.
func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Logf is the pluggable logging contract: any printf-style function,
// such as log.Printf or testing.T.Logf.
type Logf func(format string, args ...any)

// Log returns an observer that logs each element with the given format.
// The format should contain one verb for the element.
func Log[T any](logf Logf, format string) func(T) {
	return func(v T) {
		logf(format, v)
	}
}

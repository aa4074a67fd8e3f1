package stream

import (
	"iter"

	"github.com/lguimbarda/min-stream/stream/core"
)

// From creates a stream over the elements of a slice, in order. The
// slice is not copied; the caller must not mutate it while the stream
// is in use.
func From[T any](items []T) Stream[T] {
	return Stream[T]{ext: core.Slice(items)}
}

// Of creates a stream over the given elements.
func Of[T any](items ...T) Stream[T] {
	return From(items)
}

// Empty creates a stream that yields no elements.
func Empty[T any]() Stream[T] {
	return Stream[T]{ext: core.Empty[T]()}
}

// FromExtractor lifts an extractor into the fluent API. The stream
// drives the extractor directly; it is not cloned.
func FromExtractor[T any](ext core.Extractor[T]) Stream[T] {
	return Stream[T]{ext: ext}
}

// FromSeq creates a stream over a Go 1.23+ iterator sequence. The
// sequence is pulled lazily and is single-pass: clones of the stream
// share it.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	return Stream[T]{ext: core.Seq(seq)}
}

// KeyValue represents a key-value pair from a map.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// FromMap creates a stream of the map's key-value pairs. The pairs are
// snapshotted at construction time; iteration order is unspecified.
func FromMap[K comparable, V any](m map[K]V) Stream[KeyValue[K, V]] {
	pairs := make([]KeyValue[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, KeyValue[K, V]{Key: k, Value: v})
	}
	return From(pairs)
}

// Range creates a stream of the integers from start (inclusive) to end
// (exclusive). If start >= end, the stream is empty.
func Range(start, end int) Stream[int] {
	return Stream[int]{ext: core.Range(start, end, 1)}
}

// RangeStep creates a stream of integers from start to end with the
// given step.
// If step is positive, it yields start, start+step, ... (while < end).
// If step is negative, it yields start, start+step, ... (while > end).
// If step is zero or the direction is invalid, the stream is empty.
func RangeStep(start, end, step int) Stream[int] {
	return Stream[int]{ext: core.Range(start, end, step)}
}

// Repeat creates a stream that yields the same value n times.
// If n is negative, the value repeats indefinitely.
func Repeat[T any](value T, n int) Stream[T] {
	return Stream[T]{ext: core.Repeat(value, n)}
}

// Generate creates a stream that lazily pulls elements from fn until it
// returns false. The generator is single-pass: clones of the stream
// share it.
func Generate[T any](fn func() (T, bool)) Stream[T] {
	return Stream[T]{ext: core.Func(fn)}
}

// Iterate creates a stream yielding seed, fn(seed), fn(fn(seed)), and
// so on indefinitely. Bound it with Take or TakeWhile before draining.
func Iterate[T any](seed T, fn func(T) T) Stream[T] {
	return Stream[T]{ext: core.Iterate(seed, fn)}
}

// IterateN creates a stream yielding seed, fn(seed), fn(fn(seed)), ...
// for n elements in total. If n <= 0, the stream is empty.
func IterateN[T any](seed T, fn func(T) T, n int) Stream[T] {
	return Stream[T]{ext: core.Take(core.Iterate(seed, fn), n)}
}

// Concat creates a stream that drains each input in order. Each input's
// chain is cloned, so the originals remain usable.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	sources := make([]core.Extractor[T], len(streams))
	for i, s := range streams {
		sources[i] = s.chain().Clone()
	}
	return Stream[T]{ext: core.Concat(sources...)}
}

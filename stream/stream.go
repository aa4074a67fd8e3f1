package stream

import (
	"iter"

	"github.com/lguimbarda/min-stream/stream/core"
)

// Stream is a handle on one extractor chain. Builder methods extend a
// clone of the chain, so the receiver remains independently usable
// after building; terminal operations drive the live chain forward, so
// a second terminal on the same stream resumes wherever the first one
// stopped. Assigning a Stream value aliases the chain; use Clone to
// fork explicitly.
//
// The zero Stream is empty.
type Stream[T any] struct {
	ext core.Extractor[T]
}

func (s Stream[T]) chain() core.Extractor[T] {
	if s.ext == nil {
		return core.Empty[T]()
	}
	return s.ext
}

// Filter returns a stream yielding only the elements for which the
// predicate returns true.
func (s Stream[T]) Filter(predicate func(T) bool) Stream[T] {
	return Stream[T]{ext: core.Filter(s.chain().Clone(), predicate)}
}

// Skip returns a stream that drops the first n elements and yields the
// rest. If n <= 0, nothing is dropped.
func (s Stream[T]) Skip(n int) Stream[T] {
	return Stream[T]{ext: core.Skip(s.chain().Clone(), n)}
}

// SkipWhile returns a stream that drops elements while the predicate
// returns true and yields everything from the first failing element on.
// Dropping never resumes, even if a later element satisfies the
// predicate again.
func (s Stream[T]) SkipWhile(predicate func(T) bool) Stream[T] {
	return Stream[T]{ext: core.SkipWhile(s.chain().Clone(), predicate)}
}

// Take returns a stream yielding at most the first n elements.
// If n <= 0, the stream is empty.
func (s Stream[T]) Take(n int) Stream[T] {
	return Stream[T]{ext: core.Take(s.chain().Clone(), n)}
}

// TakeWhile returns a stream yielding elements while the predicate
// returns true. The first failing element closes the stream
// permanently; later elements are not yielded even if they would
// satisfy the predicate.
func (s Stream[T]) TakeWhile(predicate func(T) bool) Stream[T] {
	return Stream[T]{ext: core.TakeWhile(s.chain().Clone(), predicate)}
}

// Inspect returns a stream that passes every element through fn as it
// is read, unchanged. The observer runs on each read of an element, so
// it can fire more than once per element when adapters re-read a
// position.
func (s Stream[T]) Inspect(fn func(T)) Stream[T] {
	return Stream[T]{ext: core.Inspect(s.chain().Clone(), fn)}
}

// Map returns a stream with fn applied to every element. Mapping to a
// different element type is the package-level Map function.
func (s Stream[T]) Map(fn func(T) T) Stream[T] {
	return Stream[T]{ext: core.Map(s.chain().Clone(), fn)}
}

// Clone returns a stream positioned at the same element whose
// advancement does not affect the original. Streams over single-pass
// sources (Generate, FromSeq, the edge-package extractors) share the
// underlying source and cannot be forked into independent walks.
func (s Stream[T]) Clone() Stream[T] {
	return Stream[T]{ext: s.chain().Clone()}
}

// Extractor exposes the live chain. Advancing it advances the stream.
func (s Stream[T]) Extractor() core.Extractor[T] {
	return s.chain()
}

// Next advances once and returns the next element, or the zero value
// and false if the stream is exhausted.
func (s Stream[T]) Next() (T, bool) {
	return core.Next(s.chain())
}

// Nth skips n elements (stopping early on exhaustion) and returns the
// one after, comma-ok. n is zero-indexed: Nth(0) is Next.
func (s Stream[T]) Nth(n int) (T, bool) {
	return core.Nth(s.chain(), n)
}

// ForEach drains the stream, invoking fn on every element.
func (s Stream[T]) ForEach(fn func(T)) {
	core.Each(s.chain(), fn)
}

// Count drains the stream and returns the number of elements yielded.
func (s Stream[T]) Count() int {
	return core.Count(s.chain())
}

// Any reports whether some element satisfies the predicate. It stops
// consuming at the first match.
func (s Stream[T]) Any(predicate func(T) bool) bool {
	return core.Any(s.chain(), predicate)
}

// All reports whether every element satisfies the predicate. It stops
// consuming at the first failure; an empty stream reports true.
func (s Stream[T]) All(predicate func(T) bool) bool {
	return core.All(s.chain(), predicate)
}

// Collect drains the stream into a fresh slice, preserving order.
func (s Stream[T]) Collect() []T {
	return core.Collect(s.chain())
}

// AppendTo drains the stream appending each element to dst and returns
// the extended slice.
func (s Stream[T]) AppendTo(dst []T) []T {
	return core.AppendTo(s.chain(), dst)
}

// Values returns a lazy iterator over the remaining elements, for use
// with range-over-func and the iter ecosystem. Ranging consumes the
// stream.
func (s Stream[T]) Values() iter.Seq[T] {
	ext := s.chain()
	return func(yield func(T) bool) {
		for ext.Advance() {
			if !yield(ext.Get()) {
				return
			}
		}
	}
}

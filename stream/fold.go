package stream

import (
	"github.com/lguimbarda/min-stream/stream/core"
)

// Package-level operations that change the element or accumulator type.
// Go methods cannot introduce type parameters, so these live beside the
// facade rather than on it.

// Map returns a stream with fn applied to every element of s. Like the
// builder methods, it extends a clone of the chain; s remains usable.
// fn runs on each read of an element and should be free of side
// effects.
func Map[IN, OUT any](s Stream[IN], fn func(IN) OUT) Stream[OUT] {
	return Stream[OUT]{ext: core.Map(s.chain().Clone(), fn)}
}

// Scan returns a stream of the intermediate accumulated values: after
// the k-th element of s, the accumulator folded over the first k
// elements. The initial value itself is not yielded.
func Scan[T, A any](s Stream[T], initial A, fn func(acc A, item T) A) Stream[A] {
	return Stream[A]{ext: core.Scan(s.chain().Clone(), initial, fn)}
}

// Fold drains s, threading an accumulator through fn, and returns the
// final accumulator. An empty stream returns the seed unchanged.
func Fold[T, A any](s Stream[T], seed A, fn func(acc A, item T) A) A {
	return core.Fold(s.chain(), seed, fn)
}

// Reduce drains s combining elements pairwise with fn, using the first
// element as the initial accumulator. The second result is false if the
// stream was empty.
func Reduce[T any](s Stream[T], fn func(acc, item T) T) (T, bool) {
	ext := s.chain()
	acc, ok := core.Next(ext)
	if !ok {
		var zero T
		return zero, false
	}
	return core.Fold(ext, acc, fn), true
}

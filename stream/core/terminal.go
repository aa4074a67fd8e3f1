package core

// Terminal drivers over an extractor chain. Each driver consumes the
// chain it is given from its current position; none of them clone.
// Driving the same chain twice resumes where the first drive stopped.

// Next advances once and returns the yielded element, or the zero value
// and false if the chain is exhausted.
func Next[T any](e Extractor[T]) (T, bool) {
	if !e.Advance() {
		var zero T
		return zero, false
	}
	return e.Get(), true
}

// Nth advances past n elements (stopping early on exhaustion) and then
// behaves as Next. n is zero-indexed: Nth(e, 0) is Next(e).
func Nth[T any](e Extractor[T], n int) (T, bool) {
	for ; n > 0; n-- {
		if !e.Advance() {
			var zero T
			return zero, false
		}
	}
	return Next(e)
}

// Each drains the chain, invoking fn on every yielded element.
func Each[T any](e Extractor[T], fn func(T)) {
	for e.Advance() {
		fn(e.Get())
	}
}

// Count drains the chain and returns the number of successful advances.
func Count[T any](e Extractor[T]) int {
	n := 0
	for e.Advance() {
		n++
	}
	return n
}

// Any drains the chain until an element satisfies the predicate,
// reporting whether one did. It short-circuits: elements after the
// first match are not consumed.
func Any[T any](e Extractor[T], predicate func(T) bool) bool {
	for e.Advance() {
		if predicate(e.Get()) {
			return true
		}
	}
	return false
}

// All drains the chain until an element fails the predicate, reporting
// whether none did. It short-circuits on the first failure.
func All[T any](e Extractor[T], predicate func(T) bool) bool {
	for e.Advance() {
		if !predicate(e.Get()) {
			return false
		}
	}
	return true
}

// Fold drains the chain, threading an accumulator through fn, and
// returns the final accumulator. An exhausted chain returns the seed
// unchanged.
func Fold[T, A any](e Extractor[T], seed A, fn func(acc A, item T) A) A {
	acc := seed
	for e.Advance() {
		acc = fn(acc, e.Get())
	}
	return acc
}

// Collect drains the chain into a fresh slice, preserving order.
func Collect[T any](e Extractor[T]) []T {
	var out []T
	for e.Advance() {
		out = append(out, e.Get())
	}
	return out
}

// AppendTo drains the chain appending each element to dst and returns
// the extended slice.
func AppendTo[T any](e Extractor[T], dst []T) []T {
	for e.Advance() {
		dst = append(dst, e.Get())
	}
	return dst
}

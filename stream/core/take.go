package core

// Take creates an adapter that yields at most n elements, then reports
// exhaustion regardless of the source's state. The counter is the
// adapter's own; once it reaches zero the source is never advanced
// again.
// If n <= 0, the adapter is exhausted from the start and the source is
// never touched.
func Take[T any](source Extractor[T], n int) Extractor[T] {
	return &takeExtractor[T]{source: source, remaining: n}
}

type takeExtractor[T any] struct {
	source    Extractor[T]
	remaining int
}

func (e *takeExtractor[T]) Advance() bool {
	if e.remaining <= 0 {
		return false
	}
	e.remaining--
	return e.source.Advance()
}

func (e *takeExtractor[T]) Get() T {
	return e.source.Get()
}

func (e *takeExtractor[T]) Clone() Extractor[T] {
	return &takeExtractor[T]{source: e.source.Clone(), remaining: e.remaining}
}

// TakeWhile creates an adapter that yields elements while the predicate
// returns true. The taking flag is a one-directional latch: the first
// element failing the predicate, or source exhaustion, closes the
// stream permanently. A later element that would satisfy the predicate
// is never yielded; this is deliberately different from composing
// Filter with Take.
func TakeWhile[T any](source Extractor[T], predicate func(T) bool) Extractor[T] {
	return &takeWhileExtractor[T]{source: source, predicate: predicate, taking: true}
}

type takeWhileExtractor[T any] struct {
	source    Extractor[T]
	predicate func(T) bool
	taking    bool
}

func (e *takeWhileExtractor[T]) Advance() bool {
	// Short-circuit keeps exhaustion idempotent: once taking is false,
	// neither the source nor the predicate is consulted again.
	e.taking = e.taking && e.source.Advance() && e.predicate(e.source.Get())
	return e.taking
}

func (e *takeWhileExtractor[T]) Get() T {
	return e.source.Get()
}

func (e *takeWhileExtractor[T]) Clone() Extractor[T] {
	return &takeWhileExtractor[T]{
		source:    e.source.Clone(),
		predicate: e.predicate,
		taking:    e.taking,
	}
}

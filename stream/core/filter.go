package core

// Filter creates an adapter that yields only the elements for which the
// predicate returns true. Advance walks the source until an element
// passes or the source is exhausted.
func Filter[T any](source Extractor[T], predicate func(T) bool) Extractor[T] {
	return &filterExtractor[T]{source: source, predicate: predicate}
}

type filterExtractor[T any] struct {
	source    Extractor[T]
	predicate func(T) bool
}

func (e *filterExtractor[T]) Advance() bool {
	for e.source.Advance() {
		if e.predicate(e.source.Get()) {
			return true
		}
	}
	return false
}

func (e *filterExtractor[T]) Get() T {
	return e.source.Get()
}

func (e *filterExtractor[T]) Clone() Extractor[T] {
	return &filterExtractor[T]{source: e.source.Clone(), predicate: e.predicate}
}

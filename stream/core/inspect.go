package core

// Inspect creates an adapter that calls fn with the current element each
// time Get is invoked, then returns the element unchanged. Advance is
// untouched. Get may legitimately be called more than once at a single
// position (by layered adapters or repeated reads), and fn observes
// every such call; observers that need exactly-one-per-element counting
// should count Advance-driven terminals instead.
func Inspect[T any](source Extractor[T], fn func(T)) Extractor[T] {
	return &inspectExtractor[T]{source: source, fn: fn}
}

type inspectExtractor[T any] struct {
	source Extractor[T]
	fn     func(T)
}

func (e *inspectExtractor[T]) Advance() bool {
	return e.source.Advance()
}

func (e *inspectExtractor[T]) Get() T {
	value := e.source.Get()
	e.fn(value)
	return value
}

func (e *inspectExtractor[T]) Clone() Extractor[T] {
	return &inspectExtractor[T]{source: e.source.Clone(), fn: e.fn}
}

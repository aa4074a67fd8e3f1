package core

// Map creates an adapter that applies fn to each element of the source.
// The mapped value is owned by the caller of Get; no reference into the
// adapter survives an Advance. fn runs on every Get call at a position,
// so it may be invoked more than once per logical element and should be
// free of side effects.
func Map[IN, OUT any](source Extractor[IN], fn func(IN) OUT) Extractor[OUT] {
	return &mapExtractor[IN, OUT]{source: source, fn: fn}
}

type mapExtractor[IN, OUT any] struct {
	source Extractor[IN]
	fn     func(IN) OUT
}

func (e *mapExtractor[IN, OUT]) Advance() bool {
	return e.source.Advance()
}

func (e *mapExtractor[IN, OUT]) Get() OUT {
	return e.fn(e.source.Get())
}

func (e *mapExtractor[IN, OUT]) Clone() Extractor[OUT] {
	return &mapExtractor[IN, OUT]{source: e.source.Clone(), fn: e.fn}
}

// Scan creates an adapter that yields each intermediate accumulated
// value: after the source's k-th element, the accumulator folded over
// the first k elements. The initial value itself is not yielded. The
// fold runs once per Advance, so unlike Map the accumulator function
// may carry state safely.
func Scan[T, A any](source Extractor[T], initial A, fn func(acc A, item T) A) Extractor[A] {
	return &scanExtractor[T, A]{source: source, fn: fn, acc: initial}
}

type scanExtractor[T, A any] struct {
	source Extractor[T]
	fn     func(A, T) A
	acc    A
}

func (e *scanExtractor[T, A]) Advance() bool {
	if !e.source.Advance() {
		return false
	}
	e.acc = e.fn(e.acc, e.source.Get())
	return true
}

func (e *scanExtractor[T, A]) Get() A {
	return e.acc
}

func (e *scanExtractor[T, A]) Clone() Extractor[A] {
	return &scanExtractor[T, A]{source: e.source.Clone(), fn: e.fn, acc: e.acc}
}

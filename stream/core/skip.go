package core

// Skip creates an adapter that drops the first n elements of the source,
// then passes the rest through. Source exhaustion during the dropping
// phase is reported as exhaustion.
// If n <= 0, every element is passed through.
func Skip[T any](source Extractor[T], n int) Extractor[T] {
	return &skipExtractor[T]{source: source, remaining: n}
}

type skipExtractor[T any] struct {
	source    Extractor[T]
	remaining int
}

func (e *skipExtractor[T]) Advance() bool {
	for e.remaining > 0 {
		e.remaining--
		if !e.source.Advance() {
			return false
		}
	}
	return e.source.Advance()
}

func (e *skipExtractor[T]) Get() T {
	return e.source.Get()
}

func (e *skipExtractor[T]) Clone() Extractor[T] {
	return &skipExtractor[T]{source: e.source.Clone(), remaining: e.remaining}
}

// SkipWhile creates an adapter that drops elements while the predicate
// returns true, then passes everything through. The element on which the
// predicate first returns false is retained as the first yielded
// element. The switch out of the dropping phase is one-directional:
// once the predicate has failed, dropping never resumes even if a later
// element would satisfy it.
func SkipWhile[T any](source Extractor[T], predicate func(T) bool) Extractor[T] {
	return &skipWhileExtractor[T]{source: source, predicate: predicate, skipping: true}
}

type skipWhileExtractor[T any] struct {
	source    Extractor[T]
	predicate func(T) bool
	skipping  bool
}

func (e *skipWhileExtractor[T]) Advance() bool {
	if !e.skipping {
		return e.source.Advance()
	}
	// Source exhaustion during the dropping phase leaves skipping set,
	// so the false result covers both "ran out" and "kept holding".
	for e.skipping {
		if !e.source.Advance() {
			break
		}
		e.skipping = e.predicate(e.source.Get())
	}
	return !e.skipping
}

func (e *skipWhileExtractor[T]) Get() T {
	return e.source.Get()
}

func (e *skipWhileExtractor[T]) Clone() Extractor[T] {
	return &skipWhileExtractor[T]{
		source:    e.source.Clone(),
		predicate: e.predicate,
		skipping:  e.skipping,
	}
}

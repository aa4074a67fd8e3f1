package core

import "iter"

// Slice creates an extractor over the elements of a slice, in order.
// The slice is not copied; the caller must not mutate it while the
// extractor is in use. Clones are fully independent.
func Slice[T any](items []T) Extractor[T] {
	return &sliceExtractor[T]{items: items, index: -1}
}

// sliceExtractor walks a slice with a committed cursor and a lookahead
// cursor. Advance promotes the lookahead index to current and moves it
// forward until it passes the end.
type sliceExtractor[T any] struct {
	items []T
	index int // committed element, -1 before the first Advance
	next  int // lookahead, index of the next element to commit
}

func (e *sliceExtractor[T]) Advance() bool {
	if e.next >= len(e.items) {
		return false
	}
	e.index = e.next
	e.next++
	return true
}

func (e *sliceExtractor[T]) Get() T {
	if e.index < 0 {
		panic("stream: Get called before a successful Advance")
	}
	return e.items[e.index]
}

func (e *sliceExtractor[T]) Clone() Extractor[T] {
	clone := *e
	return &clone
}

// Empty creates an extractor that is exhausted from the start.
func Empty[T any]() Extractor[T] {
	return emptyExtractor[T]{}
}

type emptyExtractor[T any] struct{}

func (emptyExtractor[T]) Advance() bool { return false }

func (emptyExtractor[T]) Get() T {
	panic("stream: Get called before a successful Advance")
}

func (e emptyExtractor[T]) Clone() Extractor[T] { return e }

// Range creates an extractor over the integers from start to end with
// the given step.
// If step is positive, it yields start, start+step, ... while < end.
// If step is negative, it yields start, start+step, ... while > end.
// If step is zero or the direction is invalid, the extractor is empty.
func Range(start, end, step int) Extractor[int] {
	e := &rangeExtractor{next: start, end: end, step: step}
	if step == 0 || (step > 0 && start >= end) || (step < 0 && start <= end) {
		e.done = true
	}
	return e
}

type rangeExtractor struct {
	current int
	next    int
	end     int
	step    int
	started bool
	done    bool
}

func (e *rangeExtractor) Advance() bool {
	if e.done {
		return false
	}
	e.current = e.next
	e.next += e.step
	e.started = true
	if (e.step > 0 && e.next >= e.end) || (e.step < 0 && e.next <= e.end) {
		e.done = true
	}
	return true
}

func (e *rangeExtractor) Get() int {
	if !e.started {
		panic("stream: Get called before a successful Advance")
	}
	return e.current
}

func (e *rangeExtractor) Clone() Extractor[int] {
	clone := *e
	return &clone
}

// Repeat creates an extractor that yields the same value n times.
// If n is negative, the value repeats indefinitely.
func Repeat[T any](value T, n int) Extractor[T] {
	return &repeatExtractor[T]{value: value, remaining: n, forever: n < 0}
}

type repeatExtractor[T any] struct {
	value     T
	remaining int
	forever   bool
	started   bool
}

func (e *repeatExtractor[T]) Advance() bool {
	if !e.forever {
		if e.remaining <= 0 {
			return false
		}
		e.remaining--
	}
	e.started = true
	return true
}

func (e *repeatExtractor[T]) Get() T {
	if !e.started {
		panic("stream: Get called before a successful Advance")
	}
	return e.value
}

func (e *repeatExtractor[T]) Clone() Extractor[T] {
	clone := *e
	return &clone
}

// Iterate creates an extractor that yields seed, fn(seed), fn(fn(seed)),
// and so on indefinitely. Clones continue independently from the current
// position; fn itself is shared and must not close over mutable state if
// clones are used.
func Iterate[T any](seed T, fn func(T) T) Extractor[T] {
	return &iterateExtractor[T]{current: seed, fn: fn}
}

type iterateExtractor[T any] struct {
	current T
	fn      func(T) T
	started bool
}

func (e *iterateExtractor[T]) Advance() bool {
	if !e.started {
		e.started = true
		return true
	}
	e.current = e.fn(e.current)
	return true
}

func (e *iterateExtractor[T]) Get() T {
	if !e.started {
		panic("stream: Get called before a successful Advance")
	}
	return e.current
}

func (e *iterateExtractor[T]) Clone() Extractor[T] {
	clone := *e
	return &clone
}

// Func creates an extractor that pulls elements from fn until it returns
// false. The first false latches exhaustion and fn is never called
// again. Clones share fn and whatever state it closes over; a stream
// over a generator cannot be forked into independent walks.
func Func[T any](fn func() (T, bool)) Extractor[T] {
	return &funcExtractor[T]{fn: fn}
}

type funcExtractor[T any] struct {
	fn      func() (T, bool)
	current T
	started bool
	done    bool
}

func (e *funcExtractor[T]) Advance() bool {
	if e.done {
		return false
	}
	value, ok := e.fn()
	if !ok {
		e.done = true
		return false
	}
	e.current = value
	e.started = true
	return true
}

func (e *funcExtractor[T]) Get() T {
	if !e.started {
		panic("stream: Get called before a successful Advance")
	}
	return e.current
}

func (e *funcExtractor[T]) Clone() Extractor[T] {
	clone := *e
	return &clone
}

// Seq creates an extractor over a Go 1.23+ iterator sequence. The
// sequence is pulled lazily; exhaustion is latched and the pull is
// stopped once. Clones share the underlying pull, since a sequence is
// single-pass.
func Seq[T any](seq iter.Seq[T]) Extractor[T] {
	next, stop := iter.Pull(seq)
	return &seqExtractor[T]{next: next, stop: stop}
}

type seqExtractor[T any] struct {
	next    func() (T, bool)
	stop    func()
	current T
	started bool
	done    bool
}

func (e *seqExtractor[T]) Advance() bool {
	if e.done {
		return false
	}
	value, ok := e.next()
	if !ok {
		e.done = true
		e.stop()
		return false
	}
	e.current = value
	e.started = true
	return true
}

func (e *seqExtractor[T]) Get() T {
	if !e.started {
		panic("stream: Get called before a successful Advance")
	}
	return e.current
}

func (e *seqExtractor[T]) Clone() Extractor[T] {
	clone := *e
	return &clone
}

// Concat creates an extractor that drains each source in order and
// exhausts when the last one does.
func Concat[T any](sources ...Extractor[T]) Extractor[T] {
	return &concatExtractor[T]{sources: sources, active: -1}
}

type concatExtractor[T any] struct {
	sources []Extractor[T]
	index   int
	active  int // source that last yielded, -1 before the first Advance
}

func (e *concatExtractor[T]) Advance() bool {
	for e.index < len(e.sources) {
		if e.sources[e.index].Advance() {
			e.active = e.index
			return true
		}
		e.index++
	}
	return false
}

func (e *concatExtractor[T]) Get() T {
	if e.active < 0 {
		panic("stream: Get called before a successful Advance")
	}
	return e.sources[e.active].Get()
}

func (e *concatExtractor[T]) Clone() Extractor[T] {
	sources := make([]Extractor[T], len(e.sources))
	for i, src := range e.sources {
		sources[i] = src.Clone()
	}
	return &concatExtractor[T]{sources: sources, index: e.index, active: e.active}
}

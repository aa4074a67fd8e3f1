// Package aggregate provides terminal reducers over streams: sums,
// extremes, grouping, and counting. Every function drains the stream it
// is given from its current position.
package aggregate

import (
	"cmp"

	"github.com/lguimbarda/min-stream/stream"
)

// Numeric is a constraint for numeric types that support arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum drains the stream and returns the sum of its elements.
// An empty stream sums to zero.
func Sum[T Numeric](s stream.Stream[T]) T {
	return stream.Fold(s, T(0), func(acc, n T) T { return acc + n })
}

// Average drains the stream and returns the mean of its elements as a
// float64. An empty stream averages to 0.
func Average[T Numeric](s stream.Stream[T]) float64 {
	var sum float64
	count := 0
	s.ForEach(func(n T) {
		sum += float64(n)
		count++
	})
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Min drains the stream and returns its smallest element, comma-ok.
// The second result is false if the stream was empty.
func Min[T cmp.Ordered](s stream.Stream[T]) (T, bool) {
	return MinFunc(s, func(a, b T) bool { return a < b })
}

// Max drains the stream and returns its largest element, comma-ok.
func Max[T cmp.Ordered](s stream.Stream[T]) (T, bool) {
	return MinFunc(s, func(a, b T) bool { return b < a })
}

// MinFunc drains the stream and returns the element for which less
// reports true against every other element. The first of equal minima
// wins.
func MinFunc[T any](s stream.Stream[T], less func(a, b T) bool) (T, bool) {
	return stream.Reduce(s, func(acc, item T) T {
		if less(item, acc) {
			return item
		}
		return acc
	})
}

// MaxFunc drains the stream and returns the element for which less
// reports false against every other element. The first of equal maxima
// wins.
func MaxFunc[T any](s stream.Stream[T], less func(a, b T) bool) (T, bool) {
	return MinFunc(s, func(a, b T) bool { return less(b, a) })
}

// None reports whether no element satisfies the predicate. It stops
// consuming at the first match; an empty stream reports true.
func None[T any](s stream.Stream[T], predicate func(T) bool) bool {
	return !s.Any(predicate)
}

// First returns the next element of the stream, comma-ok. It consumes
// exactly one element.
func First[T any](s stream.Stream[T]) (T, bool) {
	return s.Next()
}

// Last drains the stream and returns its final element, comma-ok.
func Last[T any](s stream.Stream[T]) (T, bool) {
	var last T
	found := false
	s.ForEach(func(v T) {
		last = v
		found = true
	})
	return last, found
}

// GroupBy drains the stream into a map from key to the elements that
// produced that key, preserving encounter order within each group.
func GroupBy[K comparable, T any](s stream.Stream[T], key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	s.ForEach(func(v T) {
		k := key(v)
		groups[k] = append(groups[k], v)
	})
	return groups
}

// CountBy drains the stream into a map from key to the number of
// elements that produced that key.
func CountBy[K comparable, T any](s stream.Stream[T], key func(T) K) map[K]int {
	counts := make(map[K]int)
	s.ForEach(func(v T) {
		counts[key(v)]++
	})
	return counts
}

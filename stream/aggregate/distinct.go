package aggregate

import (
	"github.com/lguimbarda/min-stream/stream"
)

// Distinct yields each element the first time it appears, dropping
// later duplicates. Memory grows with the number of distinct elements
// seen.
func Distinct[T comparable](s stream.Stream[T]) stream.Stream[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy yields the first element for each distinct key, dropping
// later elements whose key was already seen.
func DistinctBy[T any, K comparable](s stream.Stream[T], key func(T) K) stream.Stream[T] {
	src := s.Clone()
	seen := make(map[K]struct{})
	return stream.Generate(func() (T, bool) {
		for {
			v, ok := src.Next()
			if !ok {
				var zero T
				return zero, false
			}
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			return v, true
		}
	})
}

// ToSet drains the stream into a set of its distinct elements.
func ToSet[T comparable](s stream.Stream[T]) map[T]struct{} {
	set := make(map[T]struct{})
	s.ForEach(func(v T) {
		set[v] = struct{}{}
	})
	return set
}

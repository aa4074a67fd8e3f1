package aggregate

import (
	"github.com/lguimbarda/min-stream/stream"
)

// Batch groups consecutive elements into slices of the given size.
// The final batch may be shorter when the source runs out mid-batch.
// If size <= 0, an empty stream is returned.
func Batch[T any](s stream.Stream[T], size int) stream.Stream[[]T] {
	if size <= 0 {
		return stream.Empty[[]T]()
	}
	src := s.Clone()
	return stream.Generate(func() ([]T, bool) {
		batch := make([]T, 0, size)
		for len(batch) < size {
			v, ok := src.Next()
			if !ok {
				break
			}
			batch = append(batch, v)
		}
		if len(batch) == 0 {
			return nil, false
		}
		return batch, true
	})
}

// Chunk is an alias for Batch.
func Chunk[T any](s stream.Stream[T], size int) stream.Stream[[]T] {
	return Batch(s, size)
}

// Window yields overlapping windows of elements. Each window holds
// size elements and successive windows start step elements apart, so
// Window(s, 3, 1) over 1..5 yields [1 2 3], [2 3 4], [3 4 5]. Only
// full windows are yielded; a trailing partial window is dropped. If
// size <= 0 or step <= 0, an empty stream is returned.
func Window[T any](s stream.Stream[T], size, step int) stream.Stream[[]T] {
	if size <= 0 || step <= 0 {
		return stream.Empty[[]T]()
	}
	src := s.Clone()
	var window []T
	return stream.Generate(func() ([]T, bool) {
		if window == nil {
			window = make([]T, 0, size)
		} else if step < size {
			window = append(window[:0], window[step:]...)
		} else {
			window = window[:0]
			for skip := step - size; skip > 0; skip-- {
				if _, ok := src.Next(); !ok {
					return nil, false
				}
			}
		}
		for len(window) < size {
			v, ok := src.Next()
			if !ok {
				return nil, false
			}
			window = append(window, v)
		}
		return append([]T(nil), window...), true
	})
}

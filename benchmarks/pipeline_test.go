package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/samber/lo"

	"github.com/lguimbarda/min-stream/stream"
	"github.com/lguimbarda/min-stream/stream/core"
)

// =============================================================================
// Pipeline Benchmarks (Map -> Filter -> Reduce)
// =============================================================================

func BenchmarkPipeline_MinStream_Small(b *testing.B) {
	benchmarkPipelineMinStream(b, SmallSize)
}

func BenchmarkPipeline_MinStream_Medium(b *testing.B) {
	benchmarkPipelineMinStream(b, MediumSize)
}

func BenchmarkPipeline_MinStream_Large(b *testing.B) {
	benchmarkPipelineMinStream(b, LargeSize)
}

func benchmarkPipelineMinStream(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		mapped := stream.Map(stream.From(data), square)
		_, _ = stream.Reduce(mapped.Filter(isEven), add)
	}
}

// The same pipeline assembled from core extractors directly, without
// the facade's per-builder chain clone.
func BenchmarkPipeline_MinStreamCore_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ext := core.Filter(core.Map(core.Slice(data), square), isEven)
		_ = core.Fold(ext, 0, func(acc, x int) int { return add(acc, x) })
	}
}

func BenchmarkPipeline_Rill_Small(b *testing.B) {
	benchmarkPipelineRill(b, SmallSize)
}

func BenchmarkPipeline_Rill_Medium(b *testing.B) {
	benchmarkPipelineRill(b, MediumSize)
}

func BenchmarkPipeline_Rill_Large(b *testing.B) {
	benchmarkPipelineRill(b, LargeSize)
}

func benchmarkPipelineRill(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := rill.FromSlice(data, nil)
		mapped := rill.Map(s, 1, func(x int) (int, error) {
			return square(x), nil
		})
		filtered := rill.Filter(mapped, 1, func(x int) (bool, error) {
			return isEven(x), nil
		})
		_, _, _ = rill.Reduce(filtered, 1, func(a, b int) (int, error) {
			return add(a, b), nil
		})
	}
}

// Rill with explicit buffering between stages.
func BenchmarkPipeline_RillBuffered_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := rill.FromSlice(data, nil)
		s = rill.Buffer(s, 64)
		mapped := rill.Map(s, 1, func(x int) (int, error) {
			return square(x), nil
		})
		mapped = rill.Buffer(mapped, 64)
		filtered := rill.Filter(mapped, 1, func(x int) (bool, error) {
			return isEven(x), nil
		})
		filtered = rill.Buffer(filtered, 64)
		_, _, _ = rill.Reduce(filtered, 1, func(a, b int) (int, error) {
			return add(a, b), nil
		})
	}
}

func BenchmarkPipeline_Lo_Small(b *testing.B) {
	benchmarkPipelineLo(b, SmallSize)
}

func BenchmarkPipeline_Lo_Medium(b *testing.B) {
	benchmarkPipelineLo(b, MediumSize)
}

func BenchmarkPipeline_Lo_Large(b *testing.B) {
	benchmarkPipelineLo(b, LargeSize)
}

func benchmarkPipelineLo(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		mapped := lo.Map(data, func(x int, _ int) int {
			return square(x)
		})
		filtered := lo.Filter(mapped, func(x int, _ int) bool {
			return isEven(x)
		})
		_ = lo.Reduce(filtered, func(acc int, x int, _ int) int {
			return add(acc, x)
		}, 0)
	}
}

func BenchmarkPipeline_GoLinq_Small(b *testing.B) {
	benchmarkPipelineGoLinq(b, SmallSize)
}

func BenchmarkPipeline_GoLinq_Medium(b *testing.B) {
	benchmarkPipelineGoLinq(b, MediumSize)
}

func BenchmarkPipeline_GoLinq_Large(b *testing.B) {
	benchmarkPipelineGoLinq(b, LargeSize)
}

func benchmarkPipelineGoLinq(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = linq.From(data).SelectT(func(x int) int {
			return square(x)
		}).WhereT(func(x int) bool {
			return isEven(x)
		}).AggregateT(func(acc, x int) int {
			return add(acc, x)
		})
	}
}

func BenchmarkPipeline_RawLoop_Small(b *testing.B) {
	benchmarkPipelineRawLoop(b, SmallSize)
}

func BenchmarkPipeline_RawLoop_Medium(b *testing.B) {
	benchmarkPipelineRawLoop(b, MediumSize)
}

func BenchmarkPipeline_RawLoop_Large(b *testing.B) {
	benchmarkPipelineRawLoop(b, LargeSize)
}

func benchmarkPipelineRawLoop(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sum := 0
		for _, x := range data {
			sq := square(x)
			if isEven(sq) {
				sum = add(sum, sq)
			}
		}
		_ = sum
	}
}

// =============================================================================
// Early Termination Benchmarks (Take 10 of a large input)
// =============================================================================

// A pull pipeline stops reading its source once Take is satisfied;
// eager libraries materialize every stage first.

func BenchmarkEarlyTermination_MinStream(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		mapped := stream.Map(stream.From(data), square)
		_ = mapped.Filter(isEven).Take(10).Collect()
	}
}

func BenchmarkEarlyTermination_Lo(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		mapped := lo.Map(data, func(x int, _ int) int {
			return square(x)
		})
		filtered := lo.Filter(mapped, func(x int, _ int) bool {
			return isEven(x)
		})
		_ = lo.Subset(filtered, 0, 10)
	}
}

func BenchmarkEarlyTermination_GoLinq(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var result []int
		linq.From(data).SelectT(func(x int) int {
			return square(x)
		}).WhereT(func(x int) bool {
			return isEven(x)
		}).Take(10).ToSlice(&result)
	}
}

func BenchmarkEarlyTermination_RawLoop(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := make([]int, 0, 10)
		for _, x := range data {
			sq := square(x)
			if isEven(sq) {
				result = append(result, sq)
				if len(result) == 10 {
					break
				}
			}
		}
		_ = result
	}
}

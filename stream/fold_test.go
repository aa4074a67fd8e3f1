package stream_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/lguimbarda/min-stream/stream"
)

func TestMapChangesElementType(t *testing.T) {
	got := stream.Map(stream.Of(1, 2, 3), strconv.Itoa).Collect()
	want := []string{"1", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMapLeavesSourceUsable(t *testing.T) {
	src := stream.Of(1, 2, 3)
	doubled := stream.Map(src, func(n int) int { return n * 2 })

	if got := doubled.Collect(); len(got) != 3 || got[0] != 2 {
		t.Fatalf("mapped = %v, want [2 4 6]", got)
	}
	if got := src.Count(); got != 3 {
		t.Errorf("source yielded %d elements after mapped drain, want 3", got)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		seed  int
		want  int
	}{
		{
			name:  "sum with zero seed",
			input: []int{1, 2, 3, 4},
			seed:  0,
			want:  10,
		},
		{
			name:  "empty returns seed",
			input: []int{},
			seed:  7,
			want:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stream.Fold(stream.From(tt.input), tt.seed, func(acc, n int) int {
				return acc + n
			})
			if got != tt.want {
				t.Errorf("Fold = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFoldBuildsDifferentType(t *testing.T) {
	got := stream.Fold(stream.Of("a", "b", "c"), &strings.Builder{}, func(b *strings.Builder, s string) *strings.Builder {
		b.WriteString(s)
		return b
	})
	if got.String() != "abc" {
		t.Errorf("Fold built %q, want %q", got.String(), "abc")
	}
}

func TestReduce(t *testing.T) {
	got, ok := stream.Reduce(stream.Of(1, 2, 3, 4), func(acc, n int) int { return acc + n })
	if !ok || got != 10 {
		t.Errorf("Reduce = (%v, %v), want (10, true)", got, ok)
	}

	if _, ok := stream.Reduce(stream.Empty[int](), func(acc, n int) int { return acc }); ok {
		t.Error("Reduce on empty stream ok = true, want false")
	}
}

func TestScan(t *testing.T) {
	got := stream.Scan(stream.Of(1, 2, 3), 0, func(acc, n int) int { return acc + n }).Collect()
	want := []int{1, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

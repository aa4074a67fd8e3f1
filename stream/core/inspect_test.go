package core

import "testing"

func TestInspect(t *testing.T) {
	var seen []int
	e := Inspect(Slice([]int{1, 2, 3}), func(n int) {
		seen = append(seen, n)
	})

	got := Collect(e)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if len(seen) != len(want) {
		t.Fatalf("observer saw %v, want %v", seen, want)
	}
	for i := range seen {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestInspectFiresPerGet(t *testing.T) {
	fires := 0
	e := Inspect(Slice([]int{7}), func(int) { fires++ })

	if !e.Advance() {
		t.Fatal("expected an element")
	}
	if fires != 0 {
		t.Fatalf("observer fired on Advance, fires = %d", fires)
	}

	// Each Get at a single position fires the observer again; layered
	// consumers reading the same element see this as repeated calls.
	e.Get()
	e.Get()
	if fires != 2 {
		t.Errorf("observer fired %d times for 2 Get calls, want 2", fires)
	}
}

func TestInspectNotFiredByCount(t *testing.T) {
	fires := 0
	e := Inspect(Slice([]int{1, 2, 3}), func(int) { fires++ })

	// Count drives Advance only and never reads elements, so the
	// observer stays silent.
	if got := Count(e); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
	if fires != 0 {
		t.Errorf("observer fired %d times under Count, want 0", fires)
	}
}

func TestInspectNotFiredWhenSkipped(t *testing.T) {
	fires := 0
	e := Skip(Inspect(Slice([]int{1, 2, 3}), func(int) { fires++ }), 2)

	got := Collect(e)
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("got %v, want [3]", got)
	}
	// Skipped elements are advanced past without a Get, so the observer
	// only sees the yielded element.
	if fires != 1 {
		t.Errorf("observer fired %d times, want 1", fires)
	}
}

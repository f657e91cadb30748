package random

import (
	"slices"
	"testing"
)

func TestShuffle_IsPermutationAndDoesNotMutate(t *testing.T) {
	src := Seeded(42)
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	orig := slices.Clone(in)

	for range 50 {
		out := Shuffle(src, in)
		if !slices.Equal(in, orig) {
			t.Fatalf("input mutated: %v", in)
		}
		if len(out) != len(in) {
			t.Fatalf("expected %d items, got %d", len(in), len(out))
		}
		sorted := slices.Clone(out)
		slices.Sort(sorted)
		if !slices.Equal(sorted, orig) {
			t.Fatalf("output is not a permutation: %v", out)
		}
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	src := Seeded(1)
	if got := Shuffle(src, []string{}); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
	if got := Shuffle(src, []string{"only"}); !slices.Equal(got, []string{"only"}) {
		t.Fatalf("expected [only], got %v", got)
	}
}

func TestShuffle_ReachesEveryPosition(t *testing.T) {
	src := Seeded(7)
	seen := map[int]bool{}
	for range 500 {
		out := Shuffle(src, []string{"a", "b", "c", "d"})
		seen[slices.Index(out, "a")] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected element to land in all 4 positions, saw %v", seen)
	}
}

func TestInt_Inclusive(t *testing.T) {
	src := Seeded(3)
	seen := map[int]bool{}
	for range 1000 {
		n := Int(src, -2, 2)
		if n < -2 || n > 2 {
			t.Fatalf("out of range: %d", n)
		}
		seen[n] = true
	}
	if len(seen) != 5 {
		t.Fatalf("expected all 5 values, saw %v", seen)
	}
	if got := Int(src, 4, 4); got != 4 {
		t.Fatalf("degenerate range: got %d", got)
	}
}

func TestDefault_ConcurrentUse(t *testing.T) {
	src := Default()
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				_ = Shuffle(src, []int{1, 2, 3})
			}
		}()
	}
	for range 8 {
		<-done
	}
}

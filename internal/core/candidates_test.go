package core

import "testing"

func TestCandidatesSetHasClear(t *testing.T) {
	var c Candidates
	c = c.Set(3).Set(7)
	if !c.Has(3) || !c.Has(7) {
		t.Fatalf("expected 3 and 7 set, got %09b", c)
	}
	if c.Has(1) || c.Has(9) {
		t.Fatalf("expected only 3 and 7 set, got %09b", c)
	}
	c = c.Clear(3)
	if c.Has(3) {
		t.Fatal("3 should be cleared")
	}
}

func TestCandidatesCountAndOnly(t *testing.T) {
	c := NewCandidates([]int{4})
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
	d, ok := c.Only()
	if !ok || d != 4 {
		t.Fatalf("Only() = (%d, %v), want (4, true)", d, ok)
	}

	c = NewCandidates([]int{4, 5})
	if _, ok := c.Only(); ok {
		t.Fatal("Only() should fail with two candidates")
	}
}

func TestAllCandidates(t *testing.T) {
	c := AllCandidates()
	if c.Count() != 9 {
		t.Fatalf("AllCandidates().Count() = %d, want 9", c.Count())
	}
	for d := 1; d <= 9; d++ {
		if !c.Has(d) {
			t.Fatalf("AllCandidates() missing digit %d", d)
		}
	}
}

func TestCandidatesSetOps(t *testing.T) {
	a := NewCandidates([]int{1, 2, 3})
	b := NewCandidates([]int{2, 3, 4})

	if got := a.Intersect(b); !got.Equals(NewCandidates([]int{2, 3})) {
		t.Fatalf("Intersect = %09b, want {2,3}", got)
	}
	if got := a.Union(b); !got.Equals(NewCandidates([]int{1, 2, 3, 4})) {
		t.Fatalf("Union = %09b, want {1,2,3,4}", got)
	}
	if got := a.Subtract(b); !got.Equals(NewCandidates([]int{1})) {
		t.Fatalf("Subtract = %09b, want {1}", got)
	}
}

func TestCandidatesToSliceOrder(t *testing.T) {
	c := NewCandidates([]int{9, 1, 5})
	got := c.ToSlice()
	want := []int{1, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("ToSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice() = %v, want %v", got, want)
		}
	}
}

func TestCandidatesIsEmpty(t *testing.T) {
	var c Candidates
	if !c.IsEmpty() {
		t.Fatal("zero value should be empty")
	}
	if c.Set(1).IsEmpty() {
		t.Fatal("should not be empty after Set")
	}
}

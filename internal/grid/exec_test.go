package grid

import (
	"sudoku-engine/internal/core"
	"testing"
)

func TestSortExecDedupes(t *testing.T) {
	g := NewEmpty()
	g.Execution.Executees = []uint16{5, 3, 5, 1, 3}
	g.SortExec()

	want := []uint16{1, 3, 5}
	got := g.Execution.Executees
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestExecuteEliminationClearsOnlyTargetCandidate(t *testing.T) {
	g := NewEmpty()
	c := g.CellAt(2, 3)
	c.Candidates = core.NewCandidates([]int{1, 2, 3})

	g.SetMode(false)
	g.AddEliminationExec(c, 1) // digit index 1 -> digit 2

	g.Execute()

	if c.Candidates.Has(2) {
		t.Fatal("digit 2 should have been eliminated")
	}
	if !c.Candidates.Has(1) || !c.Candidates.Has(3) {
		t.Fatal("other candidates should survive")
	}
}

func TestExecutePlacementClearsPeerCandidates(t *testing.T) {
	g := NewEmpty()
	for x := 0; x < core.GridSize; x++ {
		for y := 0; y < core.GridSize; y++ {
			g.CellAt(x, y).Candidates = core.AllCandidates()
		}
	}

	g.SetMode(true)
	g.AddPlacementExec(4, 4, 6) // digit index 6 -> digit 7, at (4,4)

	g.Execute()

	placed := g.CellAt(4, 4)
	if placed.Value != 7 {
		t.Fatalf("Value = %d, want 7", placed.Value)
	}
	if !placed.Candidates.IsEmpty() {
		t.Fatal("placed cell should have no candidates left")
	}

	peerRow := g.CellAt(4, 0)
	if peerRow.Candidates.Has(7) {
		t.Fatal("row peer should have digit 7 cleared")
	}
	peerCol := g.CellAt(0, 4)
	if peerCol.Candidates.Has(7) {
		t.Fatal("column peer should have digit 7 cleared")
	}
	peerBox := g.CellAt(3, 3)
	if peerBox.Candidates.Has(7) {
		t.Fatal("box peer should have digit 7 cleared")
	}

	nonPeer := g.CellAt(8, 8)
	if !nonPeer.Candidates.Has(7) {
		t.Fatal("non-peer should still carry digit 7")
	}
}

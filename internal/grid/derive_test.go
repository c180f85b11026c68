package grid

import (
	"sudoku-engine/internal/core"
	"testing"
)

func TestRebuildFilledTracksPlacedValues(t *testing.T) {
	g := NewEmpty()
	g.CellAt(0, 0).Value = 5
	g.RebuildIndices()

	bit := uint16(1) << 4 // digit 5 -> bit index 4
	if g.Filled[core.HouseRow][0]&bit == 0 {
		t.Fatal("row 0 should have digit 5 marked filled")
	}
	if g.Filled[core.HouseCol][0]&bit == 0 {
		t.Fatal("col 0 should have digit 5 marked filled")
	}
	if g.Filled[core.HouseBox][0]&bit == 0 {
		t.Fatal("box 0 should have digit 5 marked filled")
	}
}

func TestRebuildBiValues(t *testing.T) {
	g := NewEmpty()
	g.CellAt(1, 1).Candidates = core.NewCandidates([]int{2, 5})
	g.RebuildIndices()

	if len(g.BiValues) != 1 {
		t.Fatalf("BiValues count = %d, want 1", len(g.BiValues))
	}
	if g.BiValues[0] != g.CellAt(1, 1) {
		t.Fatal("BiValues should reference the (1,1) cell")
	}
	pair := g.BiValuesByCands[4][1] // hi=5-1=4, lo=2-1=1
	if len(pair) != 1 || pair[0] != g.CellAt(1, 1) {
		t.Fatal("BiValuesByCands[4][1] should hold the (1,1) cell")
	}
}

func TestRebuildStrongLinksAndSLAreMutual(t *testing.T) {
	g := NewEmpty()
	// exactly two cells in row 0 carry digit 3 as a candidate; they also
	// share box 0, so the pair is recorded once for the row and once for
	// the box.
	g.CellAt(0, 0).Candidates = core.NewCandidates([]int{3, 4})
	g.CellAt(0, 1).Candidates = core.NewCandidates([]int{3, 5})
	g.RebuildIndices()

	links := g.StrongLinks[2] // digit index for 3
	if len(links) != 2 {
		t.Fatalf("expected two strong links for digit 3 (row 0 and box 0), got %d", len(links))
	}
	a, b := g.CellAt(0, 0), g.CellAt(0, 1)
	pair := links[0]
	if !(pair.A == a && pair.B == b) && !(pair.A == b && pair.B == a) {
		t.Fatal("strong link should pair (0,0) and (0,1)")
	}

	slot := core.HouseRow*core.GridSize + 2
	if a.SL[slot] != b || b.SL[slot] != a {
		t.Fatal("SL slots should be mutual inverses")
	}
}

func TestRebuildSkipsHouseWithMoreThanTwoCandidateCells(t *testing.T) {
	g := NewEmpty()
	g.CellAt(0, 0).Candidates = core.NewCandidates([]int{3})
	g.CellAt(0, 1).Candidates = core.NewCandidates([]int{3})
	g.CellAt(0, 2).Candidates = core.NewCandidates([]int{3})
	g.RebuildIndices()

	if len(g.StrongLinks[2]) != 0 {
		t.Fatalf("three candidate cells should not form a strong link, got %d", len(g.StrongLinks[2]))
	}
}

package solve_test

import (
	"testing"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/solve"
)

// scenario 4 from spec.md's testable properties: a grid with exactly one
// single-candidate cell must produce a naked single.
func TestNakedSingleGate(t *testing.T) {
	g := grid.NewEmpty()
	g.CellAt(2, 3).Candidates = core.NewCandidates([]int{7})
	g.RebuildIndices()

	if !solve.NextStep(g) {
		t.Fatal("expected NextStep to fire")
	}
	if len(g.Instructions) < 3 {
		t.Fatalf("expected at least 3 instruction bytes, got %d", len(g.Instructions))
	}
	if g.Instructions[0] != byte(core.OpNakedSingle) {
		t.Fatalf("technique fired = %s, want %s", core.OpcodeName(g.Instructions[0]), core.OpcodeName(byte(core.OpNakedSingle)))
	}
	if g.Instructions[1] != core.EncodePos(2, 3) {
		t.Fatalf("position byte = %#x, want %#x", g.Instructions[1], core.EncodePos(2, 3))
	}
	if g.Instructions[2] != 6 { // digit 7 -> index 6
		t.Fatalf("digit index = %d, want 6", g.Instructions[2])
	}
	if !g.Execution.Mode {
		t.Fatal("naked single should place, not eliminate")
	}
	if len(g.Execution.Executees) != 1 {
		t.Fatalf("expected exactly one executee, got %d", len(g.Execution.Executees))
	}
}

func TestNextStepIdempotentWithoutExecute(t *testing.T) {
	g := grid.NewEmpty()
	g.CellAt(2, 3).Candidates = core.NewCandidates([]int{7})
	g.RebuildIndices()

	solve.NextStep(g)
	first := append([]byte(nil), g.Instructions...)

	solve.NextStep(g)
	second := g.Instructions

	if len(first) != len(second) {
		t.Fatalf("instruction lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("instructions differ at byte %d: %#x vs %#x", i, first[i], second[i])
		}
	}
}

// A hidden single -- a digit with only one legal cell left in a house --
// must fire even when that cell is not itself a naked single, and must be
// reported as opcode HiddenSingle, not a lower- or higher-priority
// technique.
func TestHiddenSingleFires(t *testing.T) {
	g := grid.NewEmpty()
	g.CellAt(0, 0).Candidates = core.NewCandidates([]int{1, 2})
	g.CellAt(0, 1).Candidates = core.NewCandidates([]int{3, 4})
	g.CellAt(0, 2).Candidates = core.NewCandidates([]int{3, 4})
	g.RebuildIndices()

	if !solve.NextStep(g) {
		t.Fatal("expected NextStep to fire")
	}
	if g.Instructions[0] != byte(core.OpHiddenSingle) {
		t.Fatalf("technique fired = %s, want %s", core.OpcodeName(g.Instructions[0]), core.OpcodeName(byte(core.OpHiddenSingle)))
	}
	if !g.Execution.Mode {
		t.Fatal("hidden single should place, not eliminate")
	}
}

func TestNextStepEmptyOnACompletedGrid(t *testing.T) {
	const solved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	var given [core.TotalCells]bool
	var values [core.TotalCells]int
	var ans [core.TotalCells]int
	for i := 0; i < core.TotalCells; i++ {
		given[i] = true
		values[i] = int(solved[i] - '0')
		ans[i] = values[i]
	}
	g := grid.FromSolved(given, values, ans)

	// every cell already carries its value; no technique has anything to
	// do since there are no empty cells left to reason about.
	if solve.NextStep(g) {
		t.Fatalf("expected no technique to fire on a completed grid, got instructions %v", g.Instructions)
	}
	if len(g.Instructions) != 0 {
		t.Fatal("expected empty instruction buffer")
	}
}

func TestExecuteClearsAndRebuilds(t *testing.T) {
	g := grid.NewEmpty()
	g.CellAt(2, 3).Candidates = core.NewCandidates([]int{7})
	g.RebuildIndices()

	solve.NextStep(g)
	g.Execute()

	c := g.CellAt(2, 3)
	if c.Value != 7 {
		t.Fatalf("Value = %d, want 7", c.Value)
	}
	if !c.Candidates.IsEmpty() {
		t.Fatal("placed cell should have no candidates")
	}
}

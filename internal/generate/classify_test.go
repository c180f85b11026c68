package generate

import (
	"testing"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

const solvedFixture = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestClassifyTrivialNakedSingleIsSimple(t *testing.T) {
	var given [core.TotalCells]bool
	var values [core.TotalCells]int
	var ans [core.TotalCells]int
	for i := 0; i < core.TotalCells; i++ {
		given[i] = true
		values[i] = int(solvedFixture[i] - '0')
		ans[i] = values[i]
	}
	given[0] = false
	values[0] = 0

	g := grid.FromSolved(given, values, ans)
	class := Classify(g)

	if class != core.DifficultySimple {
		t.Fatalf("class = %d, want DifficultySimple (%d)", class, core.DifficultySimple)
	}
	if !g.Completed() {
		t.Fatal("Classify should leave the grid completed")
	}
}

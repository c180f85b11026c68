package generate

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/solve"
)

// Classify replays NextStep/Execute on g until every cell carries a value,
// recording the hardest difficulty class any single step required. It
// mutates g destructively -- callers that still need the original puzzle
// must pass g.Clone(). DifficultyExhausted is returned the moment a step
// produces nothing, meaning the solver library could not finish the grid.
func Classify(g *grid.Grid) int {
	hardest := core.DifficultySimple
	for !g.Completed() {
		if !solve.NextStep(g) {
			return core.DifficultyExhausted
		}
		if class := core.DifficultyOf(g.Instructions[0]); class > hardest {
			hardest = class
		}
		g.Execute()
	}
	return hardest
}

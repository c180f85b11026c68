package generate

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/dlx"
)

// digHoles takes an attempt that already holds a full, given, unique
// solution and tries to remove every clue in random order, keeping the
// removal whenever the remaining givens still pin down a unique solution.
func digHoles(r *rng, a *attempt) {
	perm := identityPerm(core.TotalCells)
	r.shuffle(perm)

	for _, idx := range perm {
		if !a.given[idx] {
			continue
		}
		oldVal := a.board[idx]
		a.given[idx] = false
		a.board[idx] = 0

		matrix, err := dlx.Build(a.compress(), nil)
		if err != nil {
			a.given[idx] = true
			a.board[idx] = oldVal
			continue
		}
		result, _ := matrix.Solve()
		if result != dlx.ResultUnique {
			a.given[idx] = true
			a.board[idx] = oldVal
		}
	}
}

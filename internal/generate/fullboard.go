package generate

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/dlx"
)

// attempt holds one generation pass's working state: the board under
// construction, which cells are committed as givens, and the solution
// digits recovered from the most recent uniqueness check.
type attempt struct {
	board [core.TotalCells]int
	given [core.TotalCells]bool
	ans   [core.TotalCells]int
}

func (a *attempt) compress() string {
	buf := make([]byte, core.TotalCells)
	for i := range buf {
		if a.given[i] {
			buf[i] = byte('0' + a.board[i])
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

func valid(board *[core.TotalCells]int, x, y, digit int) bool {
	for i := 0; i < core.GridSize; i++ {
		if board[core.Index(x, i)] == digit || board[core.Index(i, y)] == digit {
			return false
		}
	}
	box := core.Box(x, y)
	for i := 0; i < core.GridSize; i++ {
		bx, by := core.Convert(box, i, core.HouseBox)
		if board[core.Index(bx, by)] == digit {
			return false
		}
	}
	return true
}

// generateFullBoard places givens one at a time in random cell and digit
// order, checking DLX uniqueness once at least 17 are down. On a unique
// solution it accepts the whole solved grid as given. An ambiguous result
// (several solutions) keeps the clue and moves on to the next cell. On an
// outright contradiction (no solution at all) it aborts the attempt,
// unless a prior ambiguity already tripped the hysteresis flag, in which
// case it accepts the best solution on record rather than starting over.
// In strict mode that leniency is disabled: a clue that leaves no solution
// is taken back and the next digit is tried, so the board is only ever
// accepted on a confirmed unique solution.
func generateFullBoard(r *rng, strict bool) (*attempt, bool) {
	a := &attempt{}
	perm := identityPerm(core.TotalCells)
	r.shuffle(perm)

	flag := false
	hintCount := 0

	for _, p := range perm {
		x, y := core.Coord(p)
		digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
		r.shuffle(digits)

		for _, target := range digits {
			if !valid(&a.board, x, y, target) {
				continue
			}
			a.board[p] = target
			a.given[p] = true
			hintCount++

			if hintCount < core.MinGivens {
				break
			}

			matrix, err := dlx.Build(a.compress(), nil)
			if err != nil {
				return nil, false
			}
			result, solution := matrix.Solve()
			switch result {
			case dlx.ResultUnique:
				recordSolution(a, solution)
				finalizeBoard(a)
				return a, true
			case dlx.ResultNone:
				if strict {
					a.board[p] = 0
					a.given[p] = false
					hintCount--
					continue
				}
				if flag {
					finalizeBoard(a)
					return a, true
				}
				return nil, false
			case dlx.ResultMultiple:
				recordSolution(a, solution)
				flag = true
			}
			break
		}
	}
	return nil, false
}

// recordSolution stashes the digits DLX found as the attempt's current best
// guess at the full solution, without touching board/given -- the hint
// placement loop above is still running.
func recordSolution(a *attempt, solution string) {
	for i := 0; i < core.TotalCells; i++ {
		a.ans[i] = int(solution[i] - '0')
	}
}

// finalizeBoard turns the attempt's recorded solution into a complete
// solved grid: every cell's board value is set to its solution digit and
// marked given, so digHoles has a full 81-clue board to carve down from.
func finalizeBoard(a *attempt) {
	for i := 0; i < core.TotalCells; i++ {
		a.board[i] = a.ans[i]
		a.given[i] = true
	}
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

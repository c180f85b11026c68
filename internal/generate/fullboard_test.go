package generate

import (
	"testing"

	"sudoku-engine/internal/core"
)

func isCompleteValidBoard(board [core.TotalCells]int) bool {
	rowSeen := [core.GridSize]uint16{}
	colSeen := [core.GridSize]uint16{}
	boxSeen := [core.GridSize]uint16{}
	for i := 0; i < core.TotalCells; i++ {
		x, y := core.Coord(i)
		v := board[i]
		if v < 1 || v > 9 {
			return false
		}
		bit := uint16(1) << uint(v-1)
		box := core.Box(x, y)
		if rowSeen[x]&bit != 0 || colSeen[y]&bit != 0 || boxSeen[box]&bit != 0 {
			return false
		}
		rowSeen[x] |= bit
		colSeen[y] |= bit
		boxSeen[box] |= bit
	}
	return true
}

func TestGenerateFullBoardProducesValidCompleteGrid(t *testing.T) {
	for _, seed := range []int64{1, 42, 1337} {
		r := newRNG(seed)
		a, ok := generateFullBoard(r, false)
		if !ok {
			t.Fatalf("seed %d: generateFullBoard reported failure", seed)
			continue
		}
		if !isCompleteValidBoard(a.ans) {
			t.Fatalf("seed %d: ans is not a complete valid Sudoku solution: %v", seed, a.ans)
		}
		// generateFullBoard must hand back a complete board: every cell
		// given, and every given cell's board value agreeing with ans.
		for i := 0; i < core.TotalCells; i++ {
			if !a.given[i] {
				t.Fatalf("seed %d: cell %d is not given on a full board", seed, i)
			}
			if a.board[i] != a.ans[i] {
				t.Fatalf("seed %d: given cell %d disagrees with ans (%d vs %d)", seed, i, a.board[i], a.ans[i])
			}
		}
	}
}

func TestGenerateFullBoardStrictModeProducesValidCompleteGrid(t *testing.T) {
	r := newRNG(99)
	a, ok := generateFullBoard(r, true)
	if !ok {
		t.Fatal("generateFullBoard(strict) reported failure")
	}
	if !isCompleteValidBoard(a.ans) {
		t.Fatalf("strict: ans is not a complete valid Sudoku solution: %v", a.ans)
	}
	for i := 0; i < core.TotalCells; i++ {
		if !a.given[i] {
			t.Fatalf("strict: cell %d is not given on a full board", i)
		}
	}
}

func TestDigHolesPreservesSolutionAndLeavesBlanks(t *testing.T) {
	r := newRNG(7)
	a, ok := generateFullBoard(r, false)
	if !ok {
		t.Fatal("generateFullBoard reported failure")
	}
	givenBefore := 0
	for i := 0; i < core.TotalCells; i++ {
		if a.given[i] {
			givenBefore++
		}
	}
	if givenBefore != core.TotalCells {
		t.Fatalf("full board should start with all %d cells given, got %d", core.TotalCells, givenBefore)
	}

	digHoles(r, a)

	blanks := 0
	for i := 0; i < core.TotalCells; i++ {
		if !a.given[i] {
			blanks++
			if a.board[i] != 0 {
				t.Fatalf("cleared cell %d still carries a board value %d", i, a.board[i])
			}
		}
	}
	if blanks == 0 {
		t.Fatal("digHoles should clear at least one clue from a full board")
	}
	if !isCompleteValidBoard(a.ans) {
		t.Fatal("digHoles should not disturb the recorded solution")
	}
}

package grid

import (
	"sudoku-engine/internal/core"
	"testing"
)

// a canonical, independently verified full Sudoku solution used as test
// fixture data across this package.
const solvedFixture = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func solvedArrays() (given [core.TotalCells]bool, values [core.TotalCells]int, ans [core.TotalCells]int) {
	for i := 0; i < core.TotalCells; i++ {
		given[i] = true
		values[i] = int(solvedFixture[i] - '0')
		ans[i] = values[i]
	}
	return given, values, ans
}

func TestFromSolvedFullyGiven(t *testing.T) {
	given, values, ans := solvedArrays()
	g := FromSolved(given, values, ans)

	if !g.Completed() {
		t.Fatal("a fully-given solved grid should be Completed")
	}
	for i := 0; i < core.TotalCells; i++ {
		x, y := core.Coord(i)
		c := g.CellAt(x, y)
		if c.Value != values[i] {
			t.Fatalf("cell %d: Value = %d, want %d", i, c.Value, values[i])
		}
		if !c.Candidates.IsEmpty() {
			t.Fatalf("cell %d: filled cell should carry no candidates", i)
		}
	}
}

func TestFromSolvedBlanksGetSingletonCandidate(t *testing.T) {
	given, values, ans := solvedArrays()
	// two non-peer cells, left blank.
	blanks := []int{0, 40}
	for _, idx := range blanks {
		given[idx] = false
		values[idx] = 0
	}
	g := FromSolved(given, values, ans)

	if g.Completed() {
		t.Fatal("grid with blanks should not be Completed")
	}
	for _, idx := range blanks {
		x, y := core.Coord(idx)
		c := g.CellAt(x, y)
		if c.Value != 0 {
			t.Fatalf("cell %d should be empty, has value %d", idx, c.Value)
		}
		digit, ok := c.Candidates.Only()
		if !ok {
			t.Fatalf("cell %d: expected a singleton candidate, got %09b", idx, c.Candidates)
		}
		if digit != ans[idx] {
			t.Fatalf("cell %d: candidate = %d, want ans %d", idx, digit, ans[idx])
		}
	}
}

func TestFromSolvedStringRoundTrip(t *testing.T) {
	given, values, ans := solvedArrays()
	given[0] = false
	values[0] = 0
	g := FromSolved(given, values, ans)

	got := g.String()
	if len(got) != 2*core.TotalCells {
		t.Fatalf("String() length = %d, want %d", len(got), 2*core.TotalCells)
	}
	// the given-half must read '0' where not given, the solution digit elsewhere.
	for i := 0; i < core.TotalCells; i++ {
		want := byte('0')
		if given[i] {
			want = byte('0' + values[i])
		}
		if got[i] != want {
			t.Fatalf("given half at %d = %c, want %c", i, got[i], want)
		}
		if got[core.TotalCells+i] != byte('0'+ans[i]) {
			t.Fatalf("answer half at %d = %c, want %c", i, got[core.TotalCells+i], byte('0'+ans[i]))
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	given, values, ans := solvedArrays()
	given[0] = false
	values[0] = 0
	g := FromSolved(given, values, ans)

	clone := g.Clone()
	clone.CellAt(1, 1).Value = 0

	if g.CellAt(1, 1).Value == 0 {
		t.Fatal("mutating the clone should not affect the original")
	}
}

package grid

import "sudoku-engine/internal/core"

// FromSolved builds a Grid directly from a chosen set of givens plus the
// full solution behind them -- the generator's construction path, rather
// than parsing a serialized pattern. Every empty cell's candidates are
// seeded by excluding digits already placed in its row, column, and box,
// exactly as a freshly dealt puzzle's candidates would read before any
// solving technique has run.
func FromSolved(given [core.TotalCells]bool, values [core.TotalCells]int, ans [core.TotalCells]int) *Grid {
	g := NewEmpty()
	for i := 0; i < core.TotalCells; i++ {
		x, y := core.Coord(i)
		c := g.CellAt(x, y)
		c.Given = given[i]
		c.Ans = ans[i]
		if given[i] {
			c.Value = values[i]
		}
	}
	for x := 0; x < core.GridSize; x++ {
		for y := 0; y < core.GridSize; y++ {
			c := g.CellAt(x, y)
			if c.IsEmpty() {
				c.Candidates = g.initialCandidates(x, y)
			}
		}
	}
	g.updateCandCouldBe()
	g.RebuildIndices()
	return g
}

// initialCandidates computes the candidate set an empty cell would carry
// before any technique has eliminated anything: every digit not already
// placed somewhere in its row, column, or box.
func (g *Grid) initialCandidates(x, y int) core.Candidates {
	cands := core.AllCandidates()
	for i := 0; i < core.GridSize; i++ {
		if v := g.CellAt(x, i).Value; v != 0 {
			cands = cands.Clear(v)
		}
		if v := g.CellAt(i, y).Value; v != 0 {
			cands = cands.Clear(v)
		}
	}
	box := core.Box(x, y)
	for i := 0; i < core.GridSize; i++ {
		bx, by := core.Convert(box, i, core.HouseBox)
		if v := g.CellAt(bx, by).Value; v != 0 {
			cands = cands.Clear(v)
		}
	}
	return cands
}

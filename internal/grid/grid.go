package grid

import "sudoku-engine/internal/core"

// CellPair is an unordered pair of cells forming a strong link for some
// digit: the digit appears as a candidate in exactly these two cells
// within some house.
type CellPair struct {
	A, B *Cell
}

// Grid is the 9x9 cell matrix plus every index derived from it. Grid owns
// all Cells and all derived structures; a solver holds a mutable reference
// to the Grid for the duration of one step and may only observe derived
// indices and append to Instructions/Execution.
type Grid struct {
	Cells [core.TotalCells]Cell

	// Filled[houseType][houseIndex] is a 9-bit bitset (bit d-1 for digit d)
	// of digits already placed in that house.
	Filled [3][core.GridSize]uint16

	// StrongLinks[digit] (digit 0-8) is the ordered sequence of cell pairs
	// strong-linked on that digit.
	StrongLinks [core.GridSize][]CellPair

	// BiValues is every cell with exactly two candidates.
	BiValues []*Cell

	// BiValuesByCands[hi][lo] (lo<hi, both 0-8) holds cells whose candidate
	// pair is exactly {lo+1, hi+1}.
	BiValuesByCands [core.GridSize][core.GridSize][]*Cell

	Graph Graph

	Instructions []byte
	Execution    Exec
}

// NewEmpty returns a Grid with every cell empty, coordinates populated, and
// CandCouldBe set to "all digits possible".
func NewEmpty() *Grid {
	g := &Grid{}
	for x := 0; x < core.GridSize; x++ {
		for y := 0; y < core.GridSize; y++ {
			c := g.CellAt(x, y)
			c.X, c.Y = x, y
			c.CandCouldBe = core.AllCandidates()
		}
	}
	return g
}

// CellAt returns a pointer to the cell at (x, y).
func (g *Grid) CellAt(x, y int) *Cell {
	return &g.Cells[core.Index(x, y)]
}

// CellIn returns the cell at position index within the given house.
func (g *Grid) CellIn(houseType, house, index int) *Cell {
	x, y := core.Convert(house, index, houseType)
	return g.CellAt(x, y)
}

// HouseCells returns the 9 cells of the given house, in index order.
func (g *Grid) HouseCells(houseType, house int) []*Cell {
	cells := make([]*Cell, core.GridSize)
	for i := 0; i < core.GridSize; i++ {
		cells[i] = g.CellIn(houseType, house, i)
	}
	return cells
}

// Completed reports whether every cell has a placed value.
func (g *Grid) Completed() bool {
	for i := range g.Cells {
		if g.Cells[i].Value == 0 {
			return false
		}
	}
	return true
}

// canPlace reports whether digit has no conflict with any placed value in
// (x, y)'s row, column, or box.
func (g *Grid) canPlace(x, y, digit int) bool {
	for i := 0; i < core.GridSize; i++ {
		if g.CellAt(x, i).Value == digit {
			return false
		}
		if g.CellAt(i, y).Value == digit {
			return false
		}
	}
	box := core.Box(x, y)
	for i := 0; i < core.GridSize; i++ {
		bx, by := core.Convert(box, i, core.HouseBox)
		if g.CellAt(bx, by).Value == digit {
			return false
		}
	}
	return true
}

// Compress renders the current given/value pattern as an 81-char string
// (non-givens as '0'), the input DLX uniqueness checking needs.
func (g *Grid) Compress() string {
	buf := make([]byte, core.TotalCells)
	for x := 0; x < core.GridSize; x++ {
		for y := 0; y < core.GridSize; y++ {
			c := g.CellAt(x, y)
			if c.Given {
				buf[core.Index(x, y)] = byte('0' + c.Value)
			} else {
				buf[core.Index(x, y)] = '0'
			}
		}
	}
	return string(buf)
}

// String renders the canonical 162-character serialization: 81 given
// values ('0' where not given) followed by 81 answer digits.
func (g *Grid) String() string {
	buf := make([]byte, 2*core.TotalCells)
	for x := 0; x < core.GridSize; x++ {
		for y := 0; y < core.GridSize; y++ {
			idx := core.Index(x, y)
			c := g.CellAt(x, y)
			if c.Given {
				buf[idx] = byte('0' + c.Value)
			} else {
				buf[idx] = '0'
			}
			buf[core.TotalCells+idx] = byte('0' + c.Ans)
		}
	}
	return string(buf)
}

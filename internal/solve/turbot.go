package solve

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

// linkShape classifies a strong-link cell pair by the single house type it
// shares, which is what distinguishes a skyscraper from a two-string kite
// from a generic turbot fish.
type linkShape int

const (
	shapeRow linkShape = iota
	shapeCol
	shapeBox
)

func classifyLink(p grid.CellPair) linkShape {
	switch {
	case p.A.X == p.B.X:
		return shapeRow
	case p.A.Y == p.B.Y:
		return shapeCol
	default:
		return shapeBox
	}
}

// FindTurbotFish looks for two strong links on the same digit sharing one
// cell (the pivot), eliminating the digit from any cell that sees both
// free ends. The opcode distinguishes the three named shapes: two
// row/col links of the same orientation is a skyscraper, one row and one
// col link is a two-string kite, anything involving a box-only link is
// the generic turbot fish.
func FindTurbotFish(g *grid.Grid) bool {
	for d := 1; d <= core.GridSize; d++ {
		links := g.StrongLinks[d-1]
		for i := 0; i < len(links); i++ {
			for j := i + 1; j < len(links); j++ {
				l1, l2 := links[i], links[j]
				pivot, end1, ok1 := sharedCell(l1, l2)
				if !ok1 {
					continue
				}
				end2 := otherEnd(l2, pivot)
				if end1 == end2 || core.Sees(end1.X, end1.Y, end2.X, end2.Y) {
					continue
				}
				var eliminations []*grid.Cell
				for i := range g.Cells {
					c := &g.Cells[i]
					if c == end1 || c == end2 || c == pivot || !c.IsEmpty() || !c.Candidates.Has(d) {
						continue
					}
					if seesAll(c, end1, end2) {
						eliminations = append(eliminations, c)
					}
				}
				if len(eliminations) == 0 {
					continue
				}
				op := turbotOpcode(classifyLink(l1), classifyLink(l2))
				g.AddInst(byte(op), core.EncodePos(end1.X, end1.Y), core.EncodePos(pivot.X, pivot.Y), core.EncodePos(end2.X, end2.Y), byte(d-1))
				g.SetMode(false)
				for _, c := range eliminations {
					g.AddEliminationExec(c, d-1)
				}
				g.Finalize()
				return true
			}
		}
	}
	return false
}

func turbotOpcode(s1, s2 linkShape) core.Opcode {
	if s1 == shapeBox || s2 == shapeBox {
		return core.OpTurbotFish
	}
	if s1 == s2 {
		return core.OpSkyscraper
	}
	return core.OpTwoStringKite
}

func sharedCell(l1, l2 grid.CellPair) (pivot, other *grid.Cell, ok bool) {
	switch {
	case l1.A == l2.A:
		return l1.A, l1.B, true
	case l1.A == l2.B:
		return l1.A, l1.B, true
	case l1.B == l2.A:
		return l1.B, l1.A, true
	case l1.B == l2.B:
		return l1.B, l1.A, true
	}
	return nil, nil, false
}

func otherEnd(p grid.CellPair, pivot *grid.Cell) *grid.Cell {
	if p.A == pivot {
		return p.B
	}
	return p.A
}

// FindEmptyRectangle looks for a box in which a digit's candidates are
// confined to one row and one column (the "empty rectangle" shape), then
// a conjugate pair on the same digit elsewhere sharing that column,
// eliminating the digit at the cell that sees both the rectangle's row
// and the conjugate pair's far end.
func FindEmptyRectangle(g *grid.Grid) bool {
	for d := 1; d <= core.GridSize; d++ {
		for box := 0; box < core.GridSize; box++ {
			if g.Filled[core.HouseBox][box]&(1<<uint(d-1)) != 0 {
				continue
			}
			var cells []*grid.Cell
			for i := 0; i < core.GridSize; i++ {
				x, y := core.Convert(box, i, core.HouseBox)
				c := g.CellAt(x, y)
				if c.IsEmpty() && c.Candidates.Has(d) {
					cells = append(cells, c)
				}
			}
			if len(cells) < 2 {
				continue
			}
			r0, c0, ok := erPivot(cells)
			if !ok {
				continue
			}
			for _, pair := range g.StrongLinks[d-1] {
				if classifyLink(pair) == shapeBox {
					continue
				}
				var inCol, far *grid.Cell
				switch {
				case pair.A.Y == c0 && pair.A.X != r0:
					inCol, far = pair.A, pair.B
				case pair.B.Y == c0 && pair.B.X != r0:
					inCol, far = pair.B, pair.A
				default:
					continue
				}
				if core.Box(inCol.X, inCol.Y) == box {
					continue
				}
				target := g.CellAt(r0, far.Y)
				if !target.IsEmpty() || !target.Candidates.Has(d) || core.Box(target.X, target.Y) == box || target == far {
					continue
				}
				g.AddInst(byte(core.OpEmptyRectangle), byte(box), core.EncodePos(inCol.X, inCol.Y), core.EncodePos(far.X, far.Y), byte(d-1))
				g.SetMode(false)
				g.AddEliminationExec(target, d-1)
				g.Finalize()
				return true
			}
		}
	}
	return false
}

// erPivot reports the (row, col) crossing that every cell in a box's
// candidate set for one digit lies on, if such a crossing exists and both
// arms are non-empty.
func erPivot(cells []*grid.Cell) (row, col int, ok bool) {
	var rowCounts, colCounts [core.GridSize]int
	for _, c := range cells {
		rowCounts[c.X]++
		colCounts[c.Y]++
	}
	var bestRow, bestCol int
	bestRowN, bestColN := 0, 0
	for r, n := range rowCounts {
		if n > bestRowN {
			bestRow, bestRowN = r, n
		}
	}
	for c, n := range colCounts {
		if n > bestColN {
			bestCol, bestColN = c, n
		}
	}
	for _, c := range cells {
		if c.X != bestRow && c.Y != bestCol {
			return 0, 0, false
		}
	}
	hasRowArm, hasColArm := false, false
	for _, c := range cells {
		if c.X == bestRow && c.Y != bestCol {
			hasRowArm = true
		}
		if c.Y == bestCol && c.X != bestRow {
			hasColArm = true
		}
	}
	if !hasRowArm || !hasColArm {
		return 0, 0, false
	}
	return bestRow, bestCol, true
}

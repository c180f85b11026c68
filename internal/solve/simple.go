package solve

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

// FindNakedSingle looks for a cell with exactly one live candidate and
// places it.
func FindNakedSingle(g *grid.Grid) bool {
	for x := 0; x < core.GridSize; x++ {
		for y := 0; y < core.GridSize; y++ {
			c := g.CellAt(x, y)
			if !c.IsEmpty() {
				continue
			}
			target, ok := c.Candidates.Only()
			if !ok {
				continue
			}
			g.AddInst(byte(core.OpNakedSingle), core.EncodePos(x, y), byte(target-1))
			g.SetMode(true)
			g.AddPlacementExec(x, y, target-1)
			g.Finalize()
			return true
		}
	}
	return false
}

// FindHiddenSingle looks for a house in which some digit has exactly one
// remaining candidate cell.
func FindHiddenSingle(g *grid.Grid) bool {
	for d := 0; d < core.GridSize; d++ {
		digit := d + 1
		for houseType := 0; houseType < 3; houseType++ {
			for house := 0; house < core.GridSize; house++ {
				if g.Filled[houseType][house]&(1<<uint(d)) != 0 {
					continue
				}
				var only *grid.Cell
				count := 0
				for i := 0; i < core.GridSize; i++ {
					c := g.CellIn(houseType, house, i)
					if c.IsEmpty() && c.Candidates.Has(digit) {
						count++
						only = c
					}
				}
				if count != 1 {
					continue
				}
				g.AddInst(byte(core.OpHiddenSingle), core.EncodePos(only.X, only.Y), byte(d))
				g.SetMode(true)
				g.AddPlacementExec(only.X, only.Y, d)
				g.Finalize()
				return true
			}
		}
	}
	return false
}

// lineBoxIntersection splits a box/line pair (lineType 0=row, 1=col) into
// the three cells shared with the box and the cells unique to the box and
// to the line, mirroring the reference engine's boxIntersection.
func lineBoxIntersection(g *grid.Grid, box, lineType, line int) (intersection, boxRemaining, lineRemaining []*grid.Cell) {
	if lineType == core.HouseCol {
		if line/3 != box%3 {
			return nil, nil, nil
		}
	} else {
		if line/3 != box/3 {
			return nil, nil, nil
		}
	}
	boxSub := box % 3
	if lineType == core.HouseCol {
		boxSub = box / 3
	}
	for seg := 0; seg < 3; seg++ {
		for i := 0; i < 3; i++ {
			x, y := core.Convert(line, i+seg*3, lineType)
			if seg == boxSub {
				intersection = append(intersection, g.CellAt(x, y))
			} else {
				lineRemaining = append(lineRemaining, g.CellAt(x, y))
			}
		}
	}
	for i := 0; i < core.GridSize; i++ {
		x, y := core.Convert(box, i, core.HouseBox)
		comp := x
		if lineType == core.HouseCol {
			comp = y
		}
		if comp == line {
			continue
		}
		boxRemaining = append(boxRemaining, g.CellAt(x, y))
	}
	return intersection, boxRemaining, lineRemaining
}

func targetIn(digit int, cells []*grid.Cell) bool {
	for _, c := range cells {
		if c.IsEmpty() && c.Candidates.Has(digit) {
			return true
		}
	}
	return false
}

// FindLockedCandidates looks for pointing pairs/triples (a digit confined
// to one box-line intersection within a box, eliminated from the rest of
// the line) and claiming pairs/triples (the mirror, line to box).
func FindLockedCandidates(g *grid.Grid) bool {
	for _, lineType := range []int{core.HouseRow, core.HouseCol} {
		for box := 0; box < core.GridSize; box++ {
			for line := 0; line < core.GridSize; line++ {
				intersection, boxRemaining, lineRemaining := lineBoxIntersection(g, box, lineType, line)
				if intersection == nil {
					continue
				}
				for d := 1; d <= core.GridSize; d++ {
					if !targetIn(d, intersection) {
						continue
					}
					if !targetIn(d, boxRemaining) && targetIn(d, lineRemaining) {
						emitLockedCandidates(g, core.OpLockedPointing, intersection, lineRemaining, d)
						return true
					}
					if !targetIn(d, lineRemaining) && targetIn(d, boxRemaining) {
						emitLockedCandidates(g, core.OpLockedClaiming, intersection, boxRemaining, d)
						return true
					}
				}
			}
		}
	}
	return false
}

func emitLockedCandidates(g *grid.Grid, op core.Opcode, intersection, eliminateFrom []*grid.Cell, digit int) {
	g.AddInst(byte(op))
	for _, c := range intersection {
		g.AddInst(core.EncodePos(c.X, c.Y), byte(digit-1))
	}
	g.SetMode(false)
	for _, c := range eliminateFrom {
		if c.IsEmpty() && c.Candidates.Has(digit) {
			g.AddEliminationExec(c, digit-1)
		}
	}
	g.Finalize()
}

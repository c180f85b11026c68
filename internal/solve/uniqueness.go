package solve

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

// rectangle is the 4 candidate cells of a potential unique/avoidable
// rectangle pattern: (r1,c1) (r1,c2) (r2,c1) (r2,c2).
type rectangle struct {
	cells [4]*grid.Cell
}

// findRectangles yields every row-pair/col-pair crossing that spans
// exactly two boxes, the structural precondition for every deadly-pattern
// technique below.
func findRectangles(g *grid.Grid, f func(rectangle) bool) bool {
	for r1 := 0; r1 < core.GridSize; r1++ {
		for r2 := r1 + 1; r2 < core.GridSize; r2++ {
			for c1 := 0; c1 < core.GridSize; c1++ {
				for c2 := c1 + 1; c2 < core.GridSize; c2++ {
					b11, b12 := core.Box(r1, c1), core.Box(r1, c2)
					b21, b22 := core.Box(r2, c1), core.Box(r2, c2)
					boxes := map[int]bool{b11: true, b12: true, b21: true, b22: true}
					if len(boxes) != 2 {
						continue
					}
					rect := rectangle{[4]*grid.Cell{g.CellAt(r1, c1), g.CellAt(r1, c2), g.CellAt(r2, c1), g.CellAt(r2, c2)}}
					if f(rect) {
						return true
					}
				}
			}
		}
	}
	return false
}

func allEmpty(rect rectangle) bool {
	for _, c := range rect.cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// floorPair finds the two digits every cell of the rectangle carries as a
// subset of its candidates, the UR "floor".
func floorPair(rect rectangle) (core.Candidates, bool) {
	common := rect.cells[0].Candidates
	for _, c := range rect.cells[1:] {
		common = common.Intersect(c.Candidates)
	}
	if common.Count() < 2 {
		return 0, false
	}
	digits := common.ToSlice()
	for a := 0; a < len(digits); a++ {
		for b := a + 1; b < len(digits); b++ {
			pair := core.NewCandidates([]int{digits[a], digits[b]})
			allHavePair := true
			for _, c := range rect.cells {
				if c.Candidates.Intersect(pair) != pair {
					allHavePair = false
					break
				}
			}
			if allHavePair {
				return pair, true
			}
		}
	}
	return 0, false
}

func emitUR(g *grid.Grid, op core.Opcode, rect rectangle, eliminations map[*grid.Cell]core.Candidates) bool {
	if len(eliminations) == 0 {
		return false
	}
	g.AddInst(byte(op))
	for _, c := range rect.cells {
		g.AddInst(core.EncodePos(c.X, c.Y))
	}
	g.SetMode(false)
	for c, digits := range eliminations {
		for _, d := range digits.ToSlice() {
			g.AddEliminationExec(c, d-1)
		}
	}
	g.Finalize()
	return true
}

// UniquenessType1 looks for a rectangle where three cells are exactly the
// floor pair and the fourth carries extra candidates; the floor pair must
// be eliminated from the fourth cell, or the puzzle would have a second
// solution swapping the floor digits between the two bivalue diagonals.
func UniquenessType1(g *grid.Grid) bool {
	return findRectangles(g, func(rect rectangle) bool {
		if !allEmpty(rect) {
			return false
		}
		pair, ok := floorPair(rect)
		if !ok {
			return false
		}
		var roof *grid.Cell
		bivalueCount := 0
		for _, c := range rect.cells {
			if c.Candidates.Equals(pair) {
				bivalueCount++
			} else {
				roof = c
			}
		}
		if bivalueCount != 3 || roof == nil || roof.Candidates.Intersect(pair) != pair {
			return false
		}
		return emitUR(g, core.OpUR1, rect, map[*grid.Cell]core.Candidates{roof: pair})
	})
}

// diagonalPartner returns the rectangle cell sharing neither row nor
// column with c.
func diagonalPartner(rect rectangle, c *grid.Cell) *grid.Cell {
	for _, o := range rect.cells {
		if o.X != c.X && o.Y != c.Y {
			return o
		}
	}
	return nil
}

// UniquenessType2 looks for a rectangle with two bivalue floor cells and
// two roof cells sharing one extra digit z, eliminating z from every cell
// that sees both roof cells.
func UniquenessType2(g *grid.Grid) bool {
	return findRectangles(g, func(rect rectangle) bool {
		if !allEmpty(rect) {
			return false
		}
		pair, ok := floorPair(rect)
		if !ok {
			return false
		}
		var bivalues, roofs []*grid.Cell
		for _, c := range rect.cells {
			if c.Candidates.Equals(pair) {
				bivalues = append(bivalues, c)
			} else {
				roofs = append(roofs, c)
			}
		}
		if len(bivalues) != 2 || len(roofs) != 2 {
			return false
		}
		extra0 := roofs[0].Candidates.Subtract(pair)
		extra1 := roofs[1].Candidates.Subtract(pair)
		if !extra0.Equals(extra1) || extra0.Count() != 1 {
			return false
		}
		z, _ := extra0.Only()
		var eliminations []*grid.Cell
		for i := range g.Cells {
			c := &g.Cells[i]
			if c == roofs[0] || c == roofs[1] || !c.IsEmpty() || !c.Candidates.Has(z) {
				continue
			}
			if seesAll(c, roofs[0], roofs[1]) {
				eliminations = append(eliminations, c)
			}
		}
		if len(eliminations) == 0 {
			return false
		}
		m := map[*grid.Cell]core.Candidates{}
		for _, c := range eliminations {
			m[c] = core.NewCandidates([]int{z})
		}
		return emitUR(g, core.OpUR2, rect, m)
	})
}

// UniquenessType3 looks for a rectangle with two bivalue floor cells and
// two roof cells whose combined extra candidates, together with another
// cell sharing a house with both roofs, form a naked subset that confines
// the extra digits and lets them be stripped from the rest of that house.
func UniquenessType3(g *grid.Grid) bool {
	return findRectangles(g, func(rect rectangle) bool {
		if !allEmpty(rect) {
			return false
		}
		pair, ok := floorPair(rect)
		if !ok {
			return false
		}
		var bivalues, roofs []*grid.Cell
		for _, c := range rect.cells {
			if c.Candidates.Equals(pair) {
				bivalues = append(bivalues, c)
			} else {
				roofs = append(roofs, c)
			}
		}
		if len(bivalues) != 2 || len(roofs) != 2 {
			return false
		}
		extra := roofs[0].Candidates.Union(roofs[1].Candidates).Subtract(pair)
		if extra.Count() < 1 || extra.Count() > 3 {
			return false
		}
		for houseType := 0; houseType < 3; houseType++ {
			if !sameHouse(houseType, roofs[0], roofs[1]) {
				continue
			}
			house := houseIndex(houseType, roofs[0])
			for i := 0; i < core.GridSize; i++ {
				other := g.CellIn(houseType, house, i)
				if other == roofs[0] || other == roofs[1] || !other.IsEmpty() {
					continue
				}
				union := extra.Union(other.Candidates)
				if union.Count() != extra.Count()+1 && union.Count() != extra.Count() {
					continue
				}
				if union.Count() != other.Candidates.Count() {
					continue
				}
				var eliminations []*grid.Cell
				for j := 0; j < core.GridSize; j++ {
					t := g.CellIn(houseType, house, j)
					if t == roofs[0] || t == roofs[1] || t == other || !t.IsEmpty() {
						continue
					}
					if t.Candidates.Intersect(union) != 0 {
						eliminations = append(eliminations, t)
					}
				}
				if len(eliminations) == 0 {
					continue
				}
				m := map[*grid.Cell]core.Candidates{}
				for _, t := range eliminations {
					m[t] = t.Candidates.Intersect(union)
				}
				return emitUR(g, core.OpUR3, rect, m)
			}
		}
		return false
	})
}

func sameHouse(houseType int, a, b *grid.Cell) bool {
	switch houseType {
	case core.HouseRow:
		return a.X == b.X
	case core.HouseCol:
		return a.Y == b.Y
	default:
		return core.Box(a.X, a.Y) == core.Box(b.X, b.Y)
	}
}

func houseIndex(houseType int, c *grid.Cell) int {
	switch houseType {
	case core.HouseRow:
		return c.X
	case core.HouseCol:
		return c.Y
	default:
		return core.Box(c.X, c.Y)
	}
}

// UniquenessType4 looks for a rectangle where the two floor (bivalue
// wings having the pair as their full candidate set) cells on one shared
// side are strong-linked on one of the two floor digits, so the other
// digit can never be the resolution there and is eliminated from both.
func UniquenessType4(g *grid.Grid) bool {
	return findRectangles(g, func(rect rectangle) bool {
		if !allEmpty(rect) {
			return false
		}
		pair, ok := floorPair(rect)
		if !ok {
			return false
		}
		digits := pair.ToSlice()
		for _, houseType := range []int{core.HouseRow, core.HouseCol} {
			for i := 0; i < 4; i++ {
				for j := i + 1; j < 4; j++ {
					a, b := rect.cells[i], rect.cells[j]
					if !sameHouse(houseType, a, b) || a == b {
						continue
					}
					for _, d := range digits {
						if !strongLinked(g, houseType, a, b, d) {
							continue
						}
						other := digits[0]
						if other == d {
							other = digits[1]
						}
						m := map[*grid.Cell]core.Candidates{}
						if a.Candidates.Has(other) {
							m[a] = core.NewCandidates([]int{other})
						}
						if b.Candidates.Has(other) {
							m[b] = core.NewCandidates([]int{other})
						}
						if emitUR(g, core.OpUR4, rect, m) {
							return true
						}
					}
				}
			}
		}
		return false
	})
}

func strongLinked(g *grid.Grid, houseType int, a, b *grid.Cell, digit int) bool {
	for _, p := range g.StrongLinks[digit-1] {
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return true
		}
	}
	return false
}

// UniquenessType5 is the box-sharing analogue of Type 2: the two roof
// cells share a box instead of a row or column.
func UniquenessType5(g *grid.Grid) bool {
	return findRectangles(g, func(rect rectangle) bool {
		if !allEmpty(rect) {
			return false
		}
		pair, ok := floorPair(rect)
		if !ok {
			return false
		}
		var bivalues, roofs []*grid.Cell
		for _, c := range rect.cells {
			if c.Candidates.Equals(pair) {
				bivalues = append(bivalues, c)
			} else {
				roofs = append(roofs, c)
			}
		}
		if len(bivalues) != 2 || len(roofs) != 2 {
			return false
		}
		if core.Box(roofs[0].X, roofs[0].Y) != core.Box(roofs[1].X, roofs[1].Y) {
			return false
		}
		extra0 := roofs[0].Candidates.Subtract(pair)
		extra1 := roofs[1].Candidates.Subtract(pair)
		if !extra0.Equals(extra1) || extra0.Count() != 1 {
			return false
		}
		z, _ := extra0.Only()
		var eliminations []*grid.Cell
		for i := range g.Cells {
			c := &g.Cells[i]
			if c == roofs[0] || c == roofs[1] || !c.IsEmpty() || !c.Candidates.Has(z) {
				continue
			}
			if seesAll(c, roofs[0], roofs[1]) {
				eliminations = append(eliminations, c)
			}
		}
		m := map[*grid.Cell]core.Candidates{}
		for _, c := range eliminations {
			m[c] = core.NewCandidates([]int{z})
		}
		return emitUR(g, core.OpUR5, rect, m)
	})
}

// FindHiddenRectangle looks for a rectangle whose floor pair is strong
// linked on each digit along a different pair of sides, which forces the
// diagonal cell's extra candidates away from the shared digit.
func FindHiddenRectangle(g *grid.Grid) bool {
	return findRectangles(g, func(rect rectangle) bool {
		if !allEmpty(rect) {
			return false
		}
		pair, ok := floorPair(rect)
		if !ok {
			return false
		}
		digits := pair.ToSlice()
		x, y := digits[0], digits[1]
		for _, pivot := range rect.cells {
			rowPartner := rowMate(rect, pivot)
			colPartner := colMate(rect, pivot)
			diag := diagonalPartner(rect, pivot)
			if rowPartner == nil || colPartner == nil || diag == nil {
				continue
			}
			if !strongLinked(g, core.HouseRow, pivot, rowPartner, x) && !strongLinked(g, core.HouseRow, pivot, rowPartner, y) {
				continue
			}
			if !strongLinked(g, core.HouseCol, pivot, colPartner, x) && !strongLinked(g, core.HouseCol, pivot, colPartner, y) {
				continue
			}
			if !diag.Candidates.Has(x) {
				continue
			}
			m := map[*grid.Cell]core.Candidates{diag: core.NewCandidates([]int{x})}
			if emitUR(g, core.OpHiddenRectangle, rect, m) {
				return true
			}
		}
		return false
	})
}

func rowMate(rect rectangle, c *grid.Cell) *grid.Cell {
	for _, o := range rect.cells {
		if o != c && o.X == c.X {
			return o
		}
	}
	return nil
}

func colMate(rect rectangle, c *grid.Cell) *grid.Cell {
	for _, o := range rect.cells {
		if o != c && o.Y == c.Y {
			return o
		}
	}
	return nil
}

// AvoidableRectangle1 is Type 1 played against the solved grid: three
// corners are already-placed givens/solved cells agreeing on the floor
// pair across rows and columns, and the fourth is a bivalue cell that
// would create a swappable alternate solution if it kept both digits.
func AvoidableRectangle1(g *grid.Grid) bool {
	return findRectangles(g, func(rect rectangle) bool {
		var filled []*grid.Cell
		var empty *grid.Cell
		for _, c := range rect.cells {
			if c.IsEmpty() {
				if empty != nil {
					return false
				}
				empty = c
			} else {
				filled = append(filled, c)
			}
		}
		if empty == nil || len(filled) != 3 {
			return false
		}
		values := map[int]bool{}
		for _, c := range filled {
			values[c.Value] = true
		}
		if len(values) != 2 {
			return false
		}
		var pairDigits []int
		for v := range values {
			pairDigits = append(pairDigits, v)
		}
		pair := core.NewCandidates(pairDigits)
		if empty.Candidates.Intersect(pair) != pair {
			return false
		}
		return emitUR(g, core.OpAvoidableRect1, rect, map[*grid.Cell]core.Candidates{empty: pair})
	})
}

// AvoidableRectangle2 is the Type 2 analogue: two corners solved, one
// shared digit each; the remaining two cells are bivalue/roof cells that
// share one extra digit eliminated from anything seeing both.
func AvoidableRectangle2(g *grid.Grid) bool {
	return findRectangles(g, func(rect rectangle) bool {
		var filled, empties []*grid.Cell
		for _, c := range rect.cells {
			if c.IsEmpty() {
				empties = append(empties, c)
			} else {
				filled = append(filled, c)
			}
		}
		if len(filled) != 2 || len(empties) != 2 {
			return false
		}
		if filled[0].Value == filled[1].Value || diagonalPartner(rect, filled[0]) != filled[1] {
			return false
		}
		pair := core.NewCandidates([]int{filled[0].Value, filled[1].Value})
		extra0 := empties[0].Candidates.Subtract(pair)
		extra1 := empties[1].Candidates.Subtract(pair)
		if !extra0.Equals(extra1) || extra0.Count() != 1 {
			return false
		}
		z, _ := extra0.Only()
		var eliminations []*grid.Cell
		for i := range g.Cells {
			c := &g.Cells[i]
			if c == empties[0] || c == empties[1] || !c.IsEmpty() || !c.Candidates.Has(z) {
				continue
			}
			if seesAll(c, empties[0], empties[1]) {
				eliminations = append(eliminations, c)
			}
		}
		m := map[*grid.Cell]core.Candidates{}
		for _, c := range eliminations {
			m[c] = core.NewCandidates([]int{z})
		}
		return emitUR(g, core.OpAvoidableRect2, rect, m)
	})
}

// BivalueUniversalGravePlusOne handles the BUG+1 pattern: every empty
// cell is bivalue except one, which carries exactly one extra candidate;
// that candidate must be the cell's value, or the grid degenerates into
// the BUG deadly pattern (every digit appearing an even number of times
// in every row, column, and box).
func BivalueUniversalGravePlusOne(g *grid.Grid) bool {
	var extra *grid.Cell
	for i := range g.Cells {
		c := &g.Cells[i]
		if !c.IsEmpty() {
			continue
		}
		switch c.Candidates.Count() {
		case 2:
			continue
		case 3:
			if extra != nil {
				return false
			}
			extra = c
		default:
			return false
		}
	}
	if extra == nil {
		return false
	}
	digits := extra.Candidates.ToSlice()
	for _, d := range digits {
		if houseOddCount(g, core.HouseRow, extra.X, d)%2 == 1 &&
			houseOddCount(g, core.HouseCol, extra.Y, d)%2 == 1 &&
			houseOddCount(g, core.HouseBox, core.Box(extra.X, extra.Y), d)%2 == 1 {
			g.AddInst(byte(core.OpBUGPlusOne), core.EncodePos(extra.X, extra.Y), byte(d-1))
			g.SetMode(true)
			g.AddPlacementExec(extra.X, extra.Y, d-1)
			g.Finalize()
			return true
		}
	}
	return false
}

func houseOddCount(g *grid.Grid, houseType, house, digit int) int {
	count := 0
	for i := 0; i < core.GridSize; i++ {
		c := g.CellIn(houseType, house, i)
		if c.IsEmpty() && c.Candidates.Has(digit) {
			count++
		}
	}
	return count
}

package solve

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

func seesAll(c *grid.Cell, others ...*grid.Cell) bool {
	for _, o := range others {
		if c == o || !core.Sees(c.X, c.Y, o.X, o.Y) {
			return false
		}
	}
	return true
}

// FindXYWing looks for a bi-value pivot {x,y} with two bi-value pincers
// {x,z} and {y,z}, each seeing the pivot, eliminating z from every cell
// that sees both pincers.
func FindXYWing(g *grid.Grid) bool {
	for _, pivot := range g.BiValues {
		pd := pivot.Candidates.ToSlice()
		x, y := pd[0], pd[1]
		for _, p1 := range g.BiValues {
			if p1 == pivot || !core.Sees(pivot.X, pivot.Y, p1.X, p1.Y) {
				continue
			}
			if !p1.Candidates.Has(x) || p1.Candidates.Has(y) {
				continue
			}
			z := otherDigit(p1.Candidates, x)
			for _, p2 := range g.BiValues {
				if p2 == pivot || p2 == p1 || !core.Sees(pivot.X, pivot.Y, p2.X, p2.Y) {
					continue
				}
				if !p2.Candidates.Has(y) || p2.Candidates.Has(x) || !p2.Candidates.Has(z) {
					continue
				}
				var eliminations []*grid.Cell
				for i := range g.Cells {
					c := &g.Cells[i]
					if c.IsEmpty() && c.Candidates.Has(z) && seesAll(c, p1, p2) {
						eliminations = append(eliminations, c)
					}
				}
				if len(eliminations) == 0 {
					continue
				}
				g.AddInst(byte(core.OpXYWing), core.EncodePos(pivot.X, pivot.Y), core.EncodePos(p1.X, p1.Y), core.EncodePos(p2.X, p2.Y))
				g.SetMode(false)
				for _, c := range eliminations {
					g.AddEliminationExec(c, z-1)
				}
				g.Finalize()
				return true
			}
		}
	}
	return false
}

func otherDigit(cands core.Candidates, not int) int {
	for _, d := range cands.ToSlice() {
		if d != not {
			return d
		}
	}
	return 0
}

// FindXYZWing looks for a tri-value pivot {x,y,z} with bi-value pincers
// {x,z} and {y,z}, each seeing the pivot, eliminating z from every cell
// that sees the pivot and both pincers.
func FindXYZWing(g *grid.Grid) bool {
	for i := range g.Cells {
		pivot := &g.Cells[i]
		if !pivot.IsEmpty() || pivot.Candidates.Count() != 3 {
			continue
		}
		digits := pivot.Candidates.ToSlice()
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				if a == b {
					continue
				}
				x, z := digits[a], digits[b]
				for _, p1 := range g.BiValues {
					if !core.Sees(pivot.X, pivot.Y, p1.X, p1.Y) {
						continue
					}
					if !p1.Candidates.Equals(core.NewCandidates([]int{x, z})) {
						continue
					}
					y := digits[3-a-b]
					for _, p2 := range g.BiValues {
						if p2 == p1 || !core.Sees(pivot.X, pivot.Y, p2.X, p2.Y) {
							continue
						}
						if !p2.Candidates.Equals(core.NewCandidates([]int{y, z})) {
							continue
						}
						var eliminations []*grid.Cell
						for j := range g.Cells {
							c := &g.Cells[j]
							if c == pivot || !c.IsEmpty() || !c.Candidates.Has(z) {
								continue
							}
							if seesAll(c, pivot, p1, p2) {
								eliminations = append(eliminations, c)
							}
						}
						if len(eliminations) == 0 {
							continue
						}
						g.AddInst(byte(core.OpXYZWing), core.EncodePos(pivot.X, pivot.Y), core.EncodePos(p1.X, p1.Y), core.EncodePos(p2.X, p2.Y))
						g.SetMode(false)
						for _, c := range eliminations {
							g.AddEliminationExec(c, z-1)
						}
						g.Finalize()
						return true
					}
				}
			}
		}
	}
	return false
}

// FindWWing looks for two bi-value cells sharing the same candidate pair
// {x,y}, joined by a strong link on x between a cell each sees, and
// eliminates y from every cell that sees both bi-value cells.
func FindWWing(g *grid.Grid) bool {
	for ai, a := range g.BiValues {
		for _, b := range g.BiValues[ai+1:] {
			if !a.Candidates.Equals(b.Candidates) || core.Sees(a.X, a.Y, b.X, b.Y) {
				continue
			}
			digits := a.Candidates.ToSlice()
			for _, x := range digits {
				y := otherDigit(a.Candidates, x)
				for _, pair := range g.StrongLinks[x-1] {
					if (core.Sees(a.X, a.Y, pair.A.X, pair.A.Y) && core.Sees(b.X, b.Y, pair.B.X, pair.B.Y) && pair.A != a && pair.B != b) ||
						(core.Sees(a.X, a.Y, pair.B.X, pair.B.Y) && core.Sees(b.X, b.Y, pair.A.X, pair.A.Y) && pair.B != a && pair.A != b) {
						var eliminations []*grid.Cell
						for i := range g.Cells {
							c := &g.Cells[i]
							if c == a || c == b || !c.IsEmpty() || !c.Candidates.Has(y) {
								continue
							}
							if seesAll(c, a, b) {
								eliminations = append(eliminations, c)
							}
						}
						if len(eliminations) == 0 {
							continue
						}
						g.AddInst(byte(core.OpWWing), core.EncodePos(a.X, a.Y), core.EncodePos(b.X, b.Y), core.EncodePos(pair.A.X, pair.A.Y), core.EncodePos(pair.B.X, pair.B.Y))
						g.SetMode(false)
						for _, c := range eliminations {
							g.AddEliminationExec(c, y-1)
						}
						g.Finalize()
						return true
					}
				}
			}
		}
	}
	return false
}

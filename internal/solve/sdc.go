package solve

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

// FindSDC looks for the minimal Sue de Coq pattern: a 2-cell box/line
// intersection whose candidates union to exactly three digits {x, y, z},
// paired with a bi-value cell elsewhere in the box holding two of those
// digits and a bi-value cell elsewhere in the line holding the other two.
// The digit shared by both satellite cells is then confined to the
// intersection plus its two satellites, and each non-shared digit is
// confined to its own house.
func FindSDC(g *grid.Grid) bool {
	for _, lineType := range []int{core.HouseRow, core.HouseCol} {
		for box := 0; box < core.GridSize; box++ {
			for line := 0; line < core.GridSize; line++ {
				intersection, boxRemaining, lineRemaining := lineBoxIntersection(g, box, lineType, line)
				if intersection == nil {
					continue
				}
				var live []*grid.Cell
				for _, c := range intersection {
					if c.IsEmpty() {
						live = append(live, c)
					}
				}
				if len(live) != 2 {
					continue
				}
				union := live[0].Candidates.Union(live[1].Candidates)
				if union.Count() != 3 {
					continue
				}
				digits := union.ToSlice()
				for a := 0; a < 3; a++ {
					for b := 0; b < 3; b++ {
						if a == b {
							continue
						}
						shared := digits[3-a-b]
						boxPair := core.NewCandidates([]int{digits[a], shared})
						linePair := core.NewCandidates([]int{digits[b], shared})
						boxSat := findBiValueIn(boxRemaining, boxPair)
						lineSat := findBiValueIn(lineRemaining, linePair)
						if boxSat == nil || lineSat == nil {
							continue
						}
						if trySDCElimination(g, intersection, boxRemaining, lineRemaining, live, boxSat, lineSat, digits[a], digits[b], shared) {
							return true
						}
					}
				}
			}
		}
	}
	return false
}

func findBiValueIn(cells []*grid.Cell, pair core.Candidates) *grid.Cell {
	for _, c := range cells {
		if c.IsEmpty() && c.Candidates.Equals(pair) {
			return c
		}
	}
	return nil
}

func trySDCElimination(g *grid.Grid, intersection, boxRemaining, lineRemaining, live []*grid.Cell, boxSat, lineSat *grid.Cell, boxOnly, lineOnly, shared int) bool {
	var eliminations []*grid.Cell
	for _, c := range boxRemaining {
		if c == boxSat || !c.IsEmpty() {
			continue
		}
		if c.Candidates.Has(boxOnly) {
			eliminations = append(eliminations, c)
		}
		if c.Candidates.Has(shared) {
			eliminations = append(eliminations, c)
		}
	}
	for _, c := range lineRemaining {
		if c == lineSat || !c.IsEmpty() {
			continue
		}
		if c.Candidates.Has(lineOnly) {
			eliminations = append(eliminations, c)
		}
		if c.Candidates.Has(shared) {
			eliminations = append(eliminations, c)
		}
	}
	if len(eliminations) == 0 {
		return false
	}
	g.AddInst(byte(core.OpSueDeCoq))
	for _, c := range live {
		g.AddInst(core.EncodePos(c.X, c.Y))
	}
	g.AddInst(core.EncodePos(boxSat.X, boxSat.Y), core.EncodePos(lineSat.X, lineSat.Y))
	g.SetMode(false)
	inBox := map[*grid.Cell]bool{}
	for _, c := range boxRemaining {
		inBox[c] = true
	}
	seen := map[*grid.Cell]bool{}
	for _, c := range eliminations {
		if seen[c] {
			continue
		}
		seen[c] = true
		if inBox[c] && c.Candidates.Has(boxOnly) {
			g.AddEliminationExec(c, boxOnly-1)
		}
		if !inBox[c] && c.Candidates.Has(lineOnly) {
			g.AddEliminationExec(c, lineOnly-1)
		}
		if c.Candidates.Has(shared) {
			g.AddEliminationExec(c, shared-1)
		}
	}
	g.Finalize()
	return true
}

package grid

import "sudoku-engine/internal/core"

// RebuildIndices recomputes every derived structure from the current
// Cells/Candidates state, in the order the original engine's nextStep
// establishes them: Filled, then BiValues/BiValuesByCands, then
// StrongLinks, then the candidate Graph. Every technique's eliminations
// and placements must be followed by a call to this before the next
// technique runs.
func (g *Grid) RebuildIndices() {
	g.rebuildFilled()
	g.rebuildBiValues()
	g.rebuildStrongLinks()
	g.Graph = buildGraph(g)
}

func (g *Grid) rebuildFilled() {
	g.Filled = [3][core.GridSize]uint16{}
	for x := 0; x < core.GridSize; x++ {
		for y := 0; y < core.GridSize; y++ {
			c := g.CellAt(x, y)
			if c.IsEmpty() {
				continue
			}
			bit := uint16(1) << uint(c.Value-1)
			g.Filled[core.HouseRow][x] |= bit
			g.Filled[core.HouseCol][y] |= bit
			g.Filled[core.HouseBox][core.Box(x, y)] |= bit
		}
	}
}

func (g *Grid) rebuildBiValues() {
	g.BiValues = g.BiValues[:0]
	for i := 0; i < core.GridSize; i++ {
		for j := 0; j < core.GridSize; j++ {
			g.BiValuesByCands[i][j] = g.BiValuesByCands[i][j][:0]
		}
	}
	for i := range g.Cells {
		c := &g.Cells[i]
		if !c.IsEmpty() || c.Candidates.Count() != 2 {
			continue
		}
		g.BiValues = append(g.BiValues, c)
		digits := c.Candidates.ToSlice()
		lo, hi := digits[0]-1, digits[1]-1
		g.BiValuesByCands[hi][lo] = append(g.BiValuesByCands[hi][lo], c)
	}
}

// rebuildStrongLinks finds, for every digit and every house, whether the
// digit's candidate cells within that house number exactly two, and if so
// records the pair as a strong link. It also populates each cell's SL
// lookup table for the (houseType, digit) pairs it participates in.
func (g *Grid) rebuildStrongLinks() {
	for d := 0; d < core.GridSize; d++ {
		g.StrongLinks[d] = g.StrongLinks[d][:0]
	}
	for i := range g.Cells {
		g.Cells[i].SL = [27]*Cell{}
	}

	for houseType := 0; houseType < 3; houseType++ {
		for house := 0; house < core.GridSize; house++ {
			cells := g.HouseCells(houseType, house)
			for d := 0; d < core.GridSize; d++ {
				if g.Filled[houseType][house]&(1<<uint(d)) != 0 {
					continue
				}
				var candidates []*Cell
				for _, c := range cells {
					if c.IsEmpty() && c.Candidates.Has(d+1) {
						candidates = append(candidates, c)
					}
				}
				if len(candidates) != 2 {
					continue
				}
				a, b := candidates[0], candidates[1]
				g.StrongLinks[d] = append(g.StrongLinks[d], CellPair{A: a, B: b})
				a.SL[houseType*core.GridSize+d] = b
				b.SL[houseType*core.GridSize+d] = a
			}
		}
	}
}

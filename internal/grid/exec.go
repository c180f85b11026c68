package grid

import "sudoku-engine/internal/core"

// Execute applies the scratch Execution buffer a technique just populated:
// in placement mode every executee sets a cell's value and clears that
// digit from every peer's candidates; in elimination mode every executee
// clears one candidate from one cell. It then rebuilds every derived
// index, leaving the Grid ready for the next NextStep call.
func (g *Grid) Execute() {
	if g.Execution.Mode {
		g.executePlacements()
	} else {
		g.executeEliminations()
	}
	g.RebuildIndices()
}

func decodeExec(word uint16) (x, y, target int) {
	return int(word >> 12), int((word >> 8) & 0xf), int(word & 0xf)
}

func (g *Grid) executePlacements() {
	for _, exec := range g.Execution.Executees {
		x, y, target := decodeExec(exec)
		c := g.CellAt(x, y)
		c.Value = target + 1
		c.Candidates = 0

		box := core.Box(x, y)
		for i := 0; i < core.GridSize; i++ {
			g.CellAt(x, i).Candidates = g.CellAt(x, i).Candidates.Clear(target + 1)
			g.CellAt(i, y).Candidates = g.CellAt(i, y).Candidates.Clear(target + 1)
			bx, by := core.Convert(box, i, core.HouseBox)
			g.CellAt(bx, by).Candidates = g.CellAt(bx, by).Candidates.Clear(target + 1)
		}
	}
}

func (g *Grid) executeEliminations() {
	for _, exec := range g.Execution.Executees {
		x, y, target := decodeExec(exec)
		c := g.CellAt(x, y)
		c.Candidates = c.Candidates.Clear(target + 1)
	}
}

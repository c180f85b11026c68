package solve

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

// FindSimpleColoring builds the strong-link graph for each digit, 2-colors
// every connected component, and looks for two contradictions: two
// same-colored cells of one component that see each other (that color of
// the component is false), or an uncolored cell that sees cells of both
// colors of one component (that cell's candidate is false either way).
func FindSimpleColoring(g *grid.Grid) bool {
	for d := 1; d <= core.GridSize; d++ {
		links := g.StrongLinks[d-1]
		if len(links) == 0 {
			continue
		}
		adjacency := map[*grid.Cell][]*grid.Cell{}
		for _, p := range links {
			adjacency[p.A] = append(adjacency[p.A], p.B)
			adjacency[p.B] = append(adjacency[p.B], p.A)
		}

		color := map[*grid.Cell]int{}
		comp := map[*grid.Cell]int{}
		var order []*grid.Cell
		for i := range g.Cells {
			cell := &g.Cells[i]
			if _, linked := adjacency[cell]; !linked {
				continue
			}
			if _, seen := color[cell]; seen {
				continue
			}
			queue := []*grid.Cell{cell}
			color[cell] = 0
			comp[cell] = i
			order = append(order, cell)
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, n := range adjacency[cur] {
					if _, seen := color[n]; !seen {
						color[n] = 1 - color[cur]
						comp[n] = comp[cur]
						order = append(order, n)
						queue = append(queue, n)
					}
				}
			}
		}

		// Rule: two same-colored cells see each other -> that color is false.
		for _, a := range order {
			for _, b := range order {
				if a == b || comp[a] != comp[b] || color[a] != color[b] || !core.Sees(a.X, a.Y, b.X, b.Y) {
					continue
				}
				badColor := color[a]
				var eliminations []*grid.Cell
				for _, c := range order {
					if comp[c] == comp[a] && color[c] == badColor {
						eliminations = append(eliminations, c)
					}
				}
				if len(eliminations) == 0 {
					continue
				}
				g.AddInst(byte(core.OpSimpleColoring), core.EncodePos(a.X, a.Y), core.EncodePos(b.X, b.Y), byte(d-1))
				g.SetMode(false)
				for _, c := range eliminations {
					g.AddEliminationExec(c, d-1)
				}
				g.Finalize()
				return true
			}
		}

		// Rule: an outside cell seeing both colors cannot hold the digit.
		for i := range g.Cells {
			c := &g.Cells[i]
			if !c.IsEmpty() || !c.Candidates.Has(d) {
				continue
			}
			if _, colored := color[c]; colored {
				continue
			}
			seenColors := map[int]int{}
			seesBoth := false
			for _, other := range order {
				if !core.Sees(c.X, c.Y, other.X, other.Y) {
					continue
				}
				seenColors[comp[other]] |= 1 << uint(color[other])
				if seenColors[comp[other]] == 3 {
					seesBoth = true
				}
			}
			if seesBoth {
				g.AddInst(byte(core.OpSimpleColoring), core.EncodePos(c.X, c.Y), byte(d-1))
				g.SetMode(false)
				g.AddEliminationExec(c, d-1)
				g.Finalize()
				return true
			}
		}
	}
	return false
}

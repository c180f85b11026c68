package solve

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

// bfsEvenTrueNodes walks the candidate implication graph from start
// (always a True node), and returns every other True node reachable at
// even depth -- i.e. every cell/digit pair that start being true forces
// to also be true, however long the alternating strong/weak chain needs
// to be. sameDigitOnly restricts traversal to edges whose target shares
// start's digit, the distinction between an X-chain (single digit) and
// an XY-chain (hops through bi-value cells across digits).
func bfsEvenTrueNodes(start *grid.Node, sameDigitOnly bool) []*grid.Node {
	type frame struct {
		node  *grid.Node
		depth int
	}
	visited := map[*grid.Node]bool{start: true}
	queue := []frame{{start, 0}}
	var results []*grid.Node

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, n := range f.node.Edges {
			if visited[n] {
				continue
			}
			if sameDigitOnly && n.Digit != start.Digit {
				continue
			}
			visited[n] = true
			depth := f.depth + 1
			if n.True && depth%2 == 0 {
				results = append(results, n)
			}
			if depth < 12 {
				queue = append(queue, frame{n, depth})
			}
		}
	}
	return results
}

func chainChoiceFromCandidates(g *grid.Grid, sameDigitOnly bool, op core.Opcode) bool {
	for i := range g.Cells {
		s := &g.Cells[i]
		if !s.IsEmpty() {
			continue
		}
		for _, digit := range s.Candidates.ToSlice() {
			start := g.Graph.NodeFor(s, digit-1, true)
			if start == nil {
				continue
			}
			for _, end := range bfsEvenTrueNodes(start, sameDigitOnly) {
				e := end.Cell
				if e == s {
					continue
				}
				digit2 := digit
				if !sameDigitOnly {
					digit2 = end.Digit + 1
				}
				if digit2 != digit {
					continue
				}
				if core.Sees(s.X, s.Y, e.X, e.Y) {
					continue
				}
				var eliminations []*grid.Cell
				for j := range g.Cells {
					t := &g.Cells[j]
					if t == s || t == e || !t.IsEmpty() || !t.Candidates.Has(digit) {
						continue
					}
					if seesAll(t, s, e) {
						eliminations = append(eliminations, t)
					}
				}
				if len(eliminations) == 0 {
					continue
				}
				g.AddInst(byte(op), core.EncodePos(s.X, s.Y), core.EncodePos(e.X, e.Y), byte(digit-1))
				g.SetMode(false)
				for _, c := range eliminations {
					g.AddEliminationExec(c, digit-1)
				}
				g.Finalize()
				return true
			}
		}
	}
	return false
}

// FindXChain looks for an alternating strong/weak link chain on a single
// digit whose two ends both hold the digit true under the same
// assumption, eliminating the digit from any other cell that sees both
// ends.
func FindXChain(g *grid.Grid) bool {
	return chainChoiceFromCandidates(g, true, core.OpXChain)
}

// FindXYChain is FindXChain generalized to hop across digits through
// bi-value cells, ending back on the same digit it started with.
func FindXYChain(g *grid.Grid) bool {
	return chainChoiceFromCandidates(g, false, core.OpXYChain)
}

// FindAIC looks for an alternating inference chain that loops from a
// cell's "false" assertion back to that same cell's "true" assertion --
// since both can't hold, the cell must take that digit.
func FindAIC(g *grid.Grid) bool {
	for i := range g.Cells {
		s := &g.Cells[i]
		if !s.IsEmpty() {
			continue
		}
		for _, digit := range s.Candidates.ToSlice() {
			start := g.Graph.NodeFor(s, digit-1, false)
			if start == nil {
				continue
			}
			visited := map[*grid.Node]bool{start: true}
			queue := []*grid.Node{start}
			depth := map[*grid.Node]int{start: 0}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				if depth[cur] > 12 {
					continue
				}
				for _, n := range cur.Edges {
					if n == start {
						continue
					}
					if n.Cell == s && n.Digit == digit-1 && n.True {
						g.AddInst(byte(core.OpAICType1), core.EncodePos(s.X, s.Y), byte(digit-1))
						g.SetMode(true)
						g.AddPlacementExec(s.X, s.Y, digit-1)
						g.Finalize()
						return true
					}
					if !visited[n] {
						visited[n] = true
						depth[n] = depth[cur] + 1
						queue = append(queue, n)
					}
				}
			}
		}
	}
	return false
}

// FindNiceLoop looks for an alternating chain that loops back to its own
// starting node (same cell, same digit, same polarity) through at least
// two other cells. Any weak link crossed inside such a loop eliminates
// candidates the two linked cells do not share with the loop itself; here
// we apply the narrower, always-sound case: a candidate shared by both
// loop endpoints' host cell and visible to every other occurrence of the
// digit in the loop is eliminated.
func FindNiceLoop(g *grid.Grid) bool {
	for i := range g.Cells {
		s := &g.Cells[i]
		if !s.IsEmpty() {
			continue
		}
		for _, digit := range s.Candidates.ToSlice() {
			start := g.Graph.NodeFor(s, digit-1, true)
			if start == nil {
				continue
			}
			visited := map[*grid.Node]bool{start: true}
			queue := []*grid.Node{start}
			depth := map[*grid.Node]int{start: 0}
			parent := map[*grid.Node]*grid.Node{}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				if depth[cur] > 12 {
					continue
				}
				for _, n := range cur.Edges {
					if n == start && depth[cur] >= 3 {
						path := reconstructPath(parent, cur, start)
						if eliminated := applyNiceLoop(g, path, digit); eliminated {
							return true
						}
						continue
					}
					if !visited[n] {
						visited[n] = true
						depth[n] = depth[cur] + 1
						parent[n] = cur
						queue = append(queue, n)
					}
				}
			}
		}
	}
	return false
}

func reconstructPath(parent map[*grid.Node]*grid.Node, end, start *grid.Node) []*grid.Node {
	path := []*grid.Node{end}
	for cur := end; cur != start; {
		p, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	return path
}

// applyNiceLoop eliminates digit from every cell, outside the loop, that
// sees every True-node cell on the loop -- the loop establishes that one
// of those cells always holds the digit.
func applyNiceLoop(g *grid.Grid, path []*grid.Node, digit int) bool {
	var trueCells []*grid.Cell
	onLoop := map[*grid.Cell]bool{}
	for _, n := range path {
		onLoop[n.Cell] = true
		if n.True {
			trueCells = append(trueCells, n.Cell)
		}
	}
	if len(trueCells) < 2 {
		return false
	}
	var eliminations []*grid.Cell
	for i := range g.Cells {
		c := &g.Cells[i]
		if onLoop[c] || !c.IsEmpty() || !c.Candidates.Has(digit) {
			continue
		}
		if seesAll(c, trueCells...) {
			eliminations = append(eliminations, c)
		}
	}
	if len(eliminations) == 0 {
		return false
	}
	g.AddInst(byte(core.OpNiceLoop))
	for _, n := range path {
		g.AddInst(core.EncodePos(n.Cell.X, n.Cell.Y))
	}
	g.AddInst(byte(digit - 1))
	g.SetMode(false)
	for _, c := range eliminations {
		g.AddEliminationExec(c, digit-1)
	}
	g.Finalize()
	return true
}

// FindSingleDigitForcing 2-colors each strong-link component for a digit
// and fans each color out one weak-link hop (including same-cell hops
// into other digits); a (cell, digit) pair forced false under both colors
// of the same component is eliminated regardless of which color turns out
// true.
func FindSingleDigitForcing(g *grid.Grid) bool {
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
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, n := range adjacency[cur] {
					if _, seen := color[n]; !seen {
						color[n] = 1 - color[cur]
						comp[n] = comp[cur]
						queue = append(queue, n)
					}
				}
			}
		}
		if len(color) == 0 {
			continue
		}

		forced := map[int]*[2]map[*grid.Node]bool{}
		for cell, c := range color {
			trueNode := g.Graph.NodeFor(cell, d-1, true)
			if trueNode == nil {
				continue
			}
			if forced[comp[cell]] == nil {
				forced[comp[cell]] = &[2]map[*grid.Node]bool{{}, {}}
			}
			for _, n := range trueNode.Edges {
				forced[comp[cell]][c][n] = true
			}
		}

		for _, f := range forced {
			for n := range f[0] {
				if !f[1][n] {
					continue
				}
				if n.True || !n.Cell.IsEmpty() || !n.Cell.Candidates.Has(n.Digit+1) {
					continue
				}
				g.AddInst(byte(core.OpSingleDigitForce), core.EncodePos(n.Cell.X, n.Cell.Y), byte(d-1))
				g.SetMode(false)
				g.AddEliminationExec(n.Cell, n.Digit)
				g.Finalize()
				return true
			}
		}
	}
	return false
}

package grid

import "sudoku-engine/internal/core"

// Node is one vertex of the candidate implication graph: "(cell, digit) is
// false" or "(cell, digit) is true". Edges point from a premise to what it
// implies.
type Node struct {
	Cell  *Cell
	Digit int // 0-8, for value Digit+1
	True  bool

	// Edges are the nodes this node's truth implies: a strong-link edge
	// runs False->True, a weak-link edge runs True->False.
	Edges []*Node
}

// Graph is the full candidate implication graph for the current candidate
// state: two nodes per live (cell, digit) pair, one asserting it false and
// one asserting it true, linked by every strong and weak link the chain
// and loop searches walk.
type Graph struct {
	// False[cellIndex][digit] and True[cellIndex][digit] are the two nodes
	// for that (cell, digit) pair, or nil if the digit is not a live
	// candidate in that cell.
	False [core.TotalCells][core.GridSize]*Node
	True  [core.TotalCells][core.GridSize]*Node
}

// NodeFor returns the node for (cell, digit, true), building lookups
// through the Graph's dense arrays.
func (gr *Graph) NodeFor(c *Cell, digit int, wantTrue bool) *Node {
	if wantTrue {
		return gr.True[c.Index()][digit]
	}
	return gr.False[c.Index()][digit]
}

// buildGraph constructs the candidate implication graph from scratch,
// following the original engine's updateGraph: a False and a True node for
// every live candidate, strong links wired False->True, weak links wired
// True->False.
func buildGraph(g *Grid) Graph {
	var gr Graph

	for i := range g.Cells {
		c := &g.Cells[i]
		if !c.IsEmpty() {
			continue
		}
		for d := 0; d < core.GridSize; d++ {
			if !c.Candidates.Has(d + 1) {
				continue
			}
			gr.False[i][d] = &Node{Cell: c, Digit: d, True: false}
			gr.True[i][d] = &Node{Cell: c, Digit: d, True: true}
		}
	}

	// Strong links from bi-locals: StrongLinks[d] pairs mean "in some house,
	// d can only go in one of these two cells" -- false in one implies true
	// in the other, both directions.
	for d := 0; d < core.GridSize; d++ {
		for _, pair := range g.StrongLinks[d] {
			a := gr.False[pair.A.Index()][d]
			b := gr.True[pair.B.Index()][d]
			if a != nil && b != nil {
				a.Edges = append(a.Edges, b)
			}
			a2 := gr.False[pair.B.Index()][d]
			b2 := gr.True[pair.A.Index()][d]
			if a2 != nil && b2 != nil {
				a2.Edges = append(a2.Edges, b2)
			}
		}
	}

	// Strong links from bi-values: a cell with exactly two candidates {p,q}
	// has false(p)->true(q) and false(q)->true(p).
	for _, c := range g.BiValues {
		digits := c.Candidates.ToSlice()
		if len(digits) != 2 {
			continue
		}
		p, q := digits[0]-1, digits[1]-1
		i := c.Index()
		if fp, tq := gr.False[i][p], gr.True[i][q]; fp != nil && tq != nil {
			fp.Edges = append(fp.Edges, tq)
		}
		if fq, tp := gr.False[i][q], gr.True[i][p]; fq != nil && tp != nil {
			fq.Edges = append(fq.Edges, tp)
		}
	}

	// Weak links, same cell: true(d) implies false(other) for every other
	// live candidate in the same cell.
	for i := range g.Cells {
		c := &g.Cells[i]
		if !c.IsEmpty() {
			continue
		}
		for d := 0; d < core.GridSize; d++ {
			td := gr.True[i][d]
			if td == nil {
				continue
			}
			for o := 0; o < core.GridSize; o++ {
				if o == d {
					continue
				}
				if fo := gr.False[i][o]; fo != nil {
					td.Edges = append(td.Edges, fo)
				}
			}
		}
	}

	// Weak links, same digit across cells that see each other: true(d) in
	// one cell implies false(d) in every other cell it sees.
	for i := range g.Cells {
		a := &g.Cells[i]
		if !a.IsEmpty() {
			continue
		}
		for d := 0; d < core.GridSize; d++ {
			ta := gr.True[i][d]
			if ta == nil {
				continue
			}
			for j := range g.Cells {
				if j == i {
					continue
				}
				b := &g.Cells[j]
				if !b.IsEmpty() || !core.Sees(a.X, a.Y, b.X, b.Y) {
					continue
				}
				if fb := gr.False[j][d]; fb != nil {
					ta.Edges = append(ta.Edges, fb)
				}
			}
		}
	}

	return gr
}

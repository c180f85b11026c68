package solve

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

var nakedSubsetOps = map[int]core.Opcode{2: core.OpNakedPair, 3: core.OpNakedTriple, 4: core.OpNakedQuad}
var hiddenSubsetOps = map[int]core.Opcode{2: core.OpHiddenPair, 3: core.OpHiddenTriple, 4: core.OpHiddenQuad}

// combinations calls f with every size-k subset (as a slice of indices
// into 0..n-1), stopping early if f returns true.
func combinations(n, k int, f func(idx []int) bool) bool {
	idx := make([]int, k)
	var rec func(start, depth int) bool
	rec = func(start, depth int) bool {
		if depth == k {
			return f(idx)
		}
		for i := start; i < n; i++ {
			idx[depth] = i
			if rec(i+1, depth+1) {
				return true
			}
		}
		return false
	}
	return rec(0, 0)
}

// FindNakedSubset looks for k empty cells in a house whose candidates,
// unioned, total exactly k digits, and eliminates those digits from every
// other cell in the house.
func FindNakedSubset(g *grid.Grid, k int) bool {
	op := nakedSubsetOps[k]
	for houseType := 0; houseType < 3; houseType++ {
		for house := 0; house < core.GridSize; house++ {
			var empties []*grid.Cell
			for i := 0; i < core.GridSize; i++ {
				c := g.CellIn(houseType, house, i)
				if c.IsEmpty() {
					empties = append(empties, c)
				}
			}
			if len(empties) <= k {
				continue
			}
			found := combinations(len(empties), k, func(idx []int) bool {
				var union core.Candidates
				cells := make([]*grid.Cell, k)
				for i, j := range idx {
					cells[i] = empties[j]
					union = union.Union(empties[j].Candidates)
				}
				if union.Count() != k {
					return false
				}
				var eliminations []*grid.Cell
				for _, c := range empties {
					skip := false
					for _, s := range cells {
						if s == c {
							skip = true
							break
						}
					}
					if !skip && c.Candidates.Intersect(union) != 0 {
						eliminations = append(eliminations, c)
					}
				}
				if len(eliminations) == 0 {
					return false
				}
				g.AddInst(byte(op))
				for _, c := range cells {
					g.AddInst(core.EncodePos(c.X, c.Y))
				}
				g.SetMode(false)
				for _, c := range eliminations {
					for _, digit := range union.ToSlice() {
						if c.Candidates.Has(digit) {
							g.AddEliminationExec(c, digit-1)
						}
					}
				}
				g.Finalize()
				return true
			})
			if found {
				return true
			}
		}
	}
	return false
}

// FindHiddenSubset looks for k digits in a house whose live candidate
// cells, across all k digits, total exactly k cells, and strips every
// other candidate from those cells.
func FindHiddenSubset(g *grid.Grid, k int) bool {
	op := hiddenSubsetOps[k]
	for houseType := 0; houseType < 3; houseType++ {
		for house := 0; house < core.GridSize; house++ {
			var liveDigits []int
			for d := 1; d <= core.GridSize; d++ {
				if g.Filled[houseType][house]&(1<<uint(d-1)) == 0 {
					liveDigits = append(liveDigits, d)
				}
			}
			if len(liveDigits) <= k {
				continue
			}
			cellsFor := func(digit int) []*grid.Cell {
				var out []*grid.Cell
				for i := 0; i < core.GridSize; i++ {
					c := g.CellIn(houseType, house, i)
					if c.IsEmpty() && c.Candidates.Has(digit) {
						out = append(out, c)
					}
				}
				return out
			}
			found := combinations(len(liveDigits), k, func(idx []int) bool {
				digits := make([]int, k)
				var cellSet []*grid.Cell
				for i, j := range idx {
					digits[i] = liveDigits[j]
					for _, c := range cellsFor(liveDigits[j]) {
						alreadySeen := false
						for _, s := range cellSet {
							if s == c {
								alreadySeen = true
								break
							}
						}
						if !alreadySeen {
							cellSet = append(cellSet, c)
						}
					}
				}
				if len(cellSet) != k {
					return false
				}
				var digitMask core.Candidates
				for _, d := range digits {
					digitMask = digitMask.Set(d)
				}
				var eliminations []*grid.Cell
				for _, c := range cellSet {
					if c.Candidates.Subtract(digitMask) != 0 {
						eliminations = append(eliminations, c)
					}
				}
				if len(eliminations) == 0 {
					return false
				}
				g.AddInst(byte(op))
				for _, c := range cellSet {
					g.AddInst(core.EncodePos(c.X, c.Y))
				}
				g.SetMode(false)
				for _, c := range eliminations {
					for _, digit := range c.Candidates.Subtract(digitMask).ToSlice() {
						g.AddEliminationExec(c, digit-1)
					}
				}
				g.Finalize()
				return true
			})
			if found {
				return true
			}
		}
	}
	return false
}

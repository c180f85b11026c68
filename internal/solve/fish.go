package solve

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

var fishOps = map[int]core.Opcode{2: core.OpFishX, 3: core.OpFishSwordfish, 4: core.OpFishJellyfish}
var finnedFishOps = map[int]core.Opcode{2: core.OpFinnedX, 3: core.OpFinnedSwordfish, 4: core.OpFinnedJellyfish}

// candidatePositions returns the coverType coordinates (0-8) within base
// house baseHouse where digit is still a live candidate.
func candidatePositions(g *grid.Grid, baseType, baseHouse, digit int) []int {
	var out []int
	for i := 0; i < core.GridSize; i++ {
		x, y := core.Convert(baseHouse, i, baseType)
		c := g.CellAt(x, y)
		if c.IsEmpty() && c.Candidates.Has(digit) {
			coverIdx := y
			if baseType == core.HouseCol {
				coverIdx = x
			}
			out = append(out, coverIdx)
		}
	}
	return out
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// FindFish looks for a basic fish of size k (X-wing for 2, swordfish for
// 3, jellyfish for 4): k base houses whose candidate positions for one
// digit fall within exactly k cover houses, eliminating the digit from
// every other cell of those cover houses.
func FindFish(g *grid.Grid, k int) bool {
	op := fishOps[k]
	for digit := 1; digit <= core.GridSize; digit++ {
		for _, baseType := range []int{core.HouseRow, core.HouseCol} {
			coverType := core.HouseCol
			if baseType == core.HouseCol {
				coverType = core.HouseRow
			}
			var bases []int
			for h := 0; h < core.GridSize; h++ {
				if g.Filled[baseType][h]&(1<<uint(digit-1)) != 0 {
					continue
				}
				n := len(candidatePositions(g, baseType, h, digit))
				if n >= 1 && n <= k {
					bases = append(bases, h)
				}
			}
			if len(bases) < k {
				continue
			}
			found := combinations(len(bases), k, func(idx []int) bool {
				chosen := make([]int, k)
				var coverUnion []int
				for i, j := range idx {
					chosen[i] = bases[j]
					for _, p := range candidatePositions(g, baseType, bases[j], digit) {
						if !containsInt(coverUnion, p) {
							coverUnion = append(coverUnion, p)
						}
					}
				}
				if len(coverUnion) != k {
					return false
				}
				var eliminations []*grid.Cell
				for _, cover := range coverUnion {
					for i := 0; i < core.GridSize; i++ {
						x, y := core.Convert(cover, i, coverType)
						if containsInt(chosen, i) {
							continue
						}
						c := g.CellAt(x, y)
						if c.IsEmpty() && c.Candidates.Has(digit) {
							eliminations = append(eliminations, c)
						}
					}
				}
				if len(eliminations) == 0 {
					return false
				}
				g.AddInst(byte(op))
				for _, h := range chosen {
					g.AddInst(byte(h))
				}
				for _, cvr := range coverUnion {
					g.AddInst(byte(cvr))
				}
				g.AddInst(byte(digit - 1))
				g.SetMode(false)
				for _, c := range eliminations {
					g.AddEliminationExec(c, digit-1)
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

// FindFinnedFish looks for a fish of size k whose k base houses all carry
// the digit in the same k cover positions, plus one or two extra ("fin")
// positions that only some of the bases carry; eliminations are restricted
// to cover cells that see every fin cell -- the classic finned-fish
// relaxation of FindFish.
func FindFinnedFish(g *grid.Grid, k int) bool {
	op := finnedFishOps[k]
	for digit := 1; digit <= core.GridSize; digit++ {
		for _, baseType := range []int{core.HouseRow, core.HouseCol} {
			coverType := core.HouseCol
			if baseType == core.HouseCol {
				coverType = core.HouseRow
			}
			var bases []int
			for h := 0; h < core.GridSize; h++ {
				if g.Filled[baseType][h]&(1<<uint(digit-1)) != 0 {
					continue
				}
				n := len(candidatePositions(g, baseType, h, digit))
				if n >= 1 && n <= k+2 {
					bases = append(bases, h)
				}
			}
			if len(bases) < k {
				continue
			}
			found := combinations(len(bases), k, func(idx []int) bool {
				chosen := make([]int, k)
				positions := map[int][]int{}
				var coverUnion []int
				for i, j := range idx {
					chosen[i] = bases[j]
					ps := candidatePositions(g, baseType, bases[j], digit)
					positions[bases[j]] = ps
					for _, p := range ps {
						if !containsInt(coverUnion, p) {
							coverUnion = append(coverUnion, p)
						}
					}
				}
				if len(coverUnion) <= k || len(coverUnion) > k+2 {
					return false
				}
				// core cover set: positions common to every base; fins are
				// the positions appearing in only some of the base houses.
				var coreCover, fins []int
				for _, p := range coverUnion {
					inAll := true
					for _, h := range chosen {
						if !containsInt(positions[h], p) {
							inAll = false
							break
						}
					}
					if inAll {
						coreCover = append(coreCover, p)
					} else {
						fins = append(fins, p)
					}
				}
				if len(coreCover) != k || len(fins) == 0 {
					return false
				}
				var finCells []*grid.Cell
				for _, h := range chosen {
					for _, p := range positions[h] {
						if containsInt(fins, p) {
							x, y := core.Convert(h, p, baseType)
							finCells = append(finCells, g.CellAt(x, y))
						}
					}
				}
				var eliminations []*grid.Cell
				for _, cover := range coreCover {
					for i := 0; i < core.GridSize; i++ {
						x, y := core.Convert(cover, i, coverType)
						if containsInt(chosen, i) {
							continue
						}
						c := g.CellAt(x, y)
						if !c.IsEmpty() || !c.Candidates.Has(digit) {
							continue
						}
						seesAllFins := true
						for _, fc := range finCells {
							if !core.Sees(c.X, c.Y, fc.X, fc.Y) {
								seesAllFins = false
								break
							}
						}
						if seesAllFins {
							eliminations = append(eliminations, c)
						}
					}
				}
				if len(eliminations) == 0 {
					return false
				}
				g.AddInst(byte(op))
				for _, h := range chosen {
					g.AddInst(byte(h))
				}
				for _, cvr := range coreCover {
					g.AddInst(byte(cvr))
				}
				g.AddInst(byte(digit - 1))
				g.SetMode(false)
				for _, c := range eliminations {
					g.AddEliminationExec(c, digit-1)
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

// Package solve implements the fixed-order battery of human-style
// deduction techniques and the NextStep orchestrator that runs them.
package solve

import "sudoku-engine/internal/grid"

// Technique inspects g and, if it finds an application of itself, writes
// the instruction/executee buffers and returns true. It must not mutate
// g.Cells -- only the scratch buffers grid.Grid.Instructions/Execution.
type Technique func(g *grid.Grid) bool

// order is the fixed sequence NextStep tries, weakest-first. Mirrors the
// reference engine's solver list: each technique is tried to exhaustion
// before the next is ever reached, so puzzle difficulty is defined by
// which technique in this list a step required.
var order = []Technique{
	FindNakedSingle,
	FindHiddenSingle,
	FindLockedCandidates,
	func(g *grid.Grid) bool { return FindNakedSubset(g, 2) },
	func(g *grid.Grid) bool { return FindNakedSubset(g, 3) },
	func(g *grid.Grid) bool { return FindNakedSubset(g, 4) },
	func(g *grid.Grid) bool { return FindHiddenSubset(g, 2) },
	func(g *grid.Grid) bool { return FindHiddenSubset(g, 3) },
	func(g *grid.Grid) bool { return FindHiddenSubset(g, 4) },
	func(g *grid.Grid) bool { return FindFish(g, 2) },
	func(g *grid.Grid) bool { return FindFish(g, 3) },
	func(g *grid.Grid) bool { return FindFish(g, 4) },
	FindWWing,
	FindXYWing,
	FindXYZWing,
	FindTurbotFish,
	FindEmptyRectangle,
	FindSimpleColoring,
	FindXChain,
	FindXYChain,
	func(g *grid.Grid) bool { return FindFinnedFish(g, 2) },
	func(g *grid.Grid) bool { return FindFinnedFish(g, 3) },
	func(g *grid.Grid) bool { return FindFinnedFish(g, 4) },
	FindSDC,
	UniquenessType1,
	UniquenessType2,
	UniquenessType3,
	UniquenessType4,
	UniquenessType5,
	FindHiddenRectangle,
	AvoidableRectangle1,
	AvoidableRectangle2,
	BivalueUniversalGravePlusOne,
	FindSingleDigitForcing,
	FindAIC,
	FindNiceLoop,
}

// NextStep clears the scratch buffers and tries every technique in order,
// stopping at the first one that records an instruction. It reports
// whether any technique fired; if none did, the puzzle cannot be advanced
// by this engine (the caller should fall back to the exact-cover solver
// or report the puzzle as exhausted).
func NextStep(g *grid.Grid) bool {
	g.InitStep()
	for _, t := range order {
		if t(g) {
			return true
		}
	}
	return false
}

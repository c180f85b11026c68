// Package generate builds full solved boards, carves them down to a
// puzzle while preserving uniqueness, and classifies the result by
// replaying the deduction pipeline to completion.
package generate

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/grid"
)

// Options configures one Generate call.
type Options struct {
	// Strict disables generateFullBoard's two-strikes-then-accept-partial
	// hysteresis: a clue that leaves no solution is taken back and another
	// digit tried, and a board is accepted only on a unique solution.
	// The hysteresis is kept as the default for fidelity to the reference
	// engine; Strict is the cleaner opt-in spec.md's Design Notes invite.
	Strict bool
}

// Generate builds a puzzle of the requested difficulty class
// (core.DifficultySimple..core.DifficultyExtreme), retrying up to
// core.MaxGenerationAttempts times: a full board via generateFullBoard, a
// clue-removal pass via digHoles, then classification on a throwaway
// clone so the returned Grid keeps its original blanks.
func Generate(seed int64, difficulty int, opts Options) (*grid.Grid, error) {
	r := newRNG(seed)

	for i := 0; i < core.MaxGenerationAttempts; i++ {
		full, ok := generateFullBoard(r, opts.Strict)
		if !ok {
			continue
		}
		digHoles(r, full)

		g := grid.FromSolved(full.given, toValues(full), full.ans)

		class := Classify(g.Clone())
		if class == core.DifficultyExhausted {
			continue
		}
		if class == difficulty {
			return g, nil
		}
	}
	return nil, ErrGenerationFailed
}

func toValues(a *attempt) [core.TotalCells]int {
	var out [core.TotalCells]int
	for i := 0; i < core.TotalCells; i++ {
		if a.given[i] {
			out[i] = a.board[i]
		}
	}
	return out
}

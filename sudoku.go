// Package sudoku is the public facade over the reasoning engine: a host
// binding parses or generates a puzzle into an Engine, then drives it one
// deduction step at a time. Wire encoding to a UI, logging, and CLI are
// left to that host; this package is the computational core alone.
package sudoku

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/generate"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/solve"
)

// Difficulty classes, carried in the high two bits of every instruction
// opcode and returned by CheckDifficulty.
const (
	DifficultySimple    = core.DifficultySimple
	DifficultyMedium    = core.DifficultyMedium
	DifficultyHard      = core.DifficultyHard
	DifficultyExtreme   = core.DifficultyExtreme
	DifficultyExhausted = core.DifficultyExhausted
)

// Error taxonomy, re-exported from internal/grid so callers never need to
// import an internal package to use errors.Is/errors.As against them.
var (
	ErrInvalidPattern    = grid.ErrInvalidPattern
	ErrContradictory     = grid.ErrContradictory
	ErrNoSolution        = grid.ErrNoSolution
	ErrMultipleSolutions = grid.ErrMultipleSolutions
)

// MultipleSolutionsError carries the first solution the uniqueness
// checker found, for callers that want to recover it instead of re-solving.
type MultipleSolutionsError = grid.MultipleSolutionsError

// GenerateOptions configures Generate's full-board construction pass,
// re-exported from internal/generate so callers never need to import an
// internal package to set it.
type GenerateOptions = generate.Options

// Engine wraps one Grid and exposes the operations a trainer/solver UI
// needs: stepping the deduction pipeline, applying a step, serializing the
// current state, and classifying difficulty.
type Engine struct {
	g *grid.Grid
}

// New parses a 972-character pattern string into a ready-to-solve Engine.
func New(pattern string) (*Engine, error) {
	g, err := grid.FromPattern(pattern)
	if err != nil {
		return nil, err
	}
	return &Engine{g: g}, nil
}

// Generate builds a puzzle of the requested difficulty class, seeded by
// seed for reproducibility. opts.Strict disables the hysteresis that lets
// the full-board construction pass accept a near-complete board on
// persistent ambiguity; the zero value keeps that leniency on. The zero
// Engine is never returned without an error.
func Generate(seed int64, difficulty int, opts GenerateOptions) (*Engine, error) {
	g, err := generate.Generate(seed, difficulty, opts)
	if err != nil {
		return nil, err
	}
	return &Engine{g: g}, nil
}

// NextStep clears the scratch buffers and runs every technique in the
// fixed order until one fires, returning its instruction bytes. A nil
// result means no technique could make progress; the caller should not
// call Execute.
func (e *Engine) NextStep() []byte {
	if !solve.NextStep(e.g) {
		return nil
	}
	out := make([]byte, len(e.g.Instructions))
	copy(out, e.g.Instructions)
	return out
}

// Execute applies the most recent NextStep's placements or eliminations
// and rebuilds every derived index.
func (e *Engine) Execute() {
	e.g.Execute()
}

// String renders the canonical 162-character serialization: 81 given
// values ('0' where not given) followed by 81 answer digits.
func (e *Engine) String() string {
	return e.g.String()
}

// Completed reports whether every cell currently carries a value.
func (e *Engine) Completed() bool {
	return e.g.Completed()
}

// CheckDifficulty replays NextStep/Execute to completion on a private
// clone of the current state and returns the hardest difficulty class any
// step required, or DifficultyExhausted if the library could not finish
// the puzzle. It never mutates the Engine's own state.
func (e *Engine) CheckDifficulty() int {
	return generate.Classify(e.g.Clone())
}

// Stats replays the deduction pipeline to completion on a private clone of
// the current state, as CheckDifficulty does, and returns how many times
// each technique fired along the way, keyed by its human-readable name. It
// never mutates the Engine's own state.
func (e *Engine) Stats() map[string]int {
	g := e.g.Clone()
	counts := make(map[string]int)
	for !g.Completed() {
		if !solve.NextStep(g) {
			break
		}
		counts[core.OpcodeName(g.Instructions[0])]++
		g.Execute()
	}
	return counts
}

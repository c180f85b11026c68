// Package grid holds the 9x9 cell matrix, its derived index structures, and
// the instruction/executee scratch buffers that solving techniques write
// into.
package grid

import "sudoku-engine/internal/core"

// Cell is one square of the board.
type Cell struct {
	X, Y int

	// Given reports whether this cell was part of the original clue set.
	Given bool

	// Value is the placed digit, or 0 if the cell is empty.
	Value int

	// Candidates is the live candidate set for an empty cell; always empty
	// once Value is set.
	Candidates core.Candidates

	// CandCouldBe records which digits are not excluded by the givens
	// alone -- used by the uniqueness techniques to reason about the shape
	// of the original puzzle regardless of eliminations made so far.
	CandCouldBe core.Candidates

	// Ans is the final solution digit for this cell, established at
	// construction time by the DLX uniqueness check.
	Ans int

	// SL holds, for each (houseType, digit) pair, the unique strong-link
	// partner cell for that digit within the containing house (row, col,
	// or box), or nil if there is no such unique partner. Indexed by
	// houseType*9 + digit (digit 0-8 for values 1-9).
	//
	// SL is a non-owning reference into the same Grid's cell array; it is
	// rebuilt wholesale after every executed step and must never be read
	// across a rebuild.
	SL [27]*Cell
}

// Index returns the cell's flattened row-major index (0-80).
func (c *Cell) Index() int { return core.Index(c.X, c.Y) }

// IsEmpty reports whether the cell has no placed value.
func (c *Cell) IsEmpty() bool { return c.Value == 0 }

// Package core holds the geometry, encoding, and opcode primitives shared
// by the grid, solver, and generator packages.
package core

// Grid constants
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	MinGivens  = 17
)

// House types, matching the houseType convention used throughout the engine:
// 0 = row, 1 = column, 2 = box.
const (
	HouseRow = 0
	HouseCol = 1
	HouseBox = 2
)

// Difficulty classes, carried in the high two bits of an instruction's opcode.
const (
	DifficultySimple  = 0
	DifficultyMedium  = 1
	DifficultyHard    = 2
	DifficultyExtreme = 3
	// DifficultyExhausted is returned by CheckDifficulty when the solver
	// library cannot make progress; it is not an opcode difficulty class.
	DifficultyExhausted = 4
)

// MaxGenerationAttempts bounds Grid(difficulty) retries.
const MaxGenerationAttempts = 100000

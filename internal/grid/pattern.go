package grid

import (
	"fmt"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/dlx"
)

// patternCellWidth is the per-cell width of the serialized pattern format:
// 1 given flag, 1 value digit, 9 candidate flags, 1 answer digit.
const patternCellWidth = 12

// PatternLength is the total length of a well-formed pattern string.
const PatternLength = core.TotalCells * patternCellWidth

// FromPattern parses a PatternLength-character serialization into a fresh
// Grid, running the same validation sequence as the reference engine:
// structural parse, uniqueness check against the given cells, then the
// three consistency checks (values match the solution, candidates aren't
// missing the solution digit, no house's candidate union reintroduces a
// digit already placed elsewhere in that house).
func FromPattern(pattern string) (*Grid, error) {
	if len(pattern) != PatternLength {
		return nil, fmt.Errorf("%w: want %d characters, got %d", ErrInvalidPattern, PatternLength, len(pattern))
	}

	g := NewEmpty()
	for i := 0; i < core.TotalCells; i++ {
		x, y := core.Coord(i)
		c := g.CellAt(x, y)
		cellStr := pattern[i*patternCellWidth : (i+1)*patternCellWidth]

		switch cellStr[0] {
		case '0', '1':
			c.Given = cellStr[0] == '1'
		default:
			return nil, fmt.Errorf("%w: invalid given flag at cell %d", ErrInvalidPattern, i)
		}

		if cellStr[1] < '0' || cellStr[1] > '9' {
			return nil, fmt.Errorf("%w: invalid value at cell %d", ErrInvalidPattern, i)
		}
		c.Value = int(cellStr[1] - '0')

		if c.Value == 0 {
			var cands core.Candidates
			for d := 0; d < core.GridSize; d++ {
				switch cellStr[2+d] {
				case '0':
				case '1':
					cands = cands.Set(d + 1)
				default:
					return nil, fmt.Errorf("%w: invalid candidate at cell %d", ErrInvalidPattern, i)
				}
			}
			c.Candidates = cands
		} else {
			for d := 0; d < core.GridSize; d++ {
				if cellStr[2+d] != '0' {
					return nil, fmt.Errorf("%w: filled cell %d carries candidates", ErrInvalidPattern, i)
				}
			}
		}

		if cellStr[11] < '0' || cellStr[11] > '9' {
			return nil, fmt.Errorf("%w: invalid answer at cell %d", ErrInvalidPattern, i)
		}
		c.Ans = int(cellStr[11] - '0')
	}

	if err := g.establishUniqueness(false); err != nil {
		return nil, err
	}
	if !g.checkWrongValues() {
		return nil, fmt.Errorf("%w: a placed value disagrees with the solution", ErrContradictory)
	}
	if !g.checkWrongCandidates() {
		return nil, fmt.Errorf("%w: a house's candidates reintroduce an already-placed digit", ErrContradictory)
	}
	if !g.checkMissingCandidates() {
		return nil, fmt.Errorf("%w: an empty cell is missing its solution digit as a candidate", ErrContradictory)
	}

	g.updateCandCouldBe()
	g.RebuildIndices()
	return g, nil
}

// establishUniqueness runs the exact-cover solver over the given-only
// pattern and records the solution into every cell's Ans. A
// multiple-solution grid always yields a *MultipleSolutionsError; if
// keepFirst is true, the first solution found is also recorded into Ans
// before that error is returned.
func (g *Grid) establishUniqueness(keepFirst bool) error {
	compressed := g.Compress()
	matrix, err := dlx.Build(compressed, nil)
	if err != nil {
		return err
	}
	result, solution := matrix.Solve()

	switch result {
	case dlx.ResultNone:
		return ErrNoSolution
	case dlx.ResultMultiple:
		if keepFirst {
			g.applySolution(solution)
		}
		return &MultipleSolutionsError{First: solution}
	}

	for i := 0; i < core.TotalCells; i++ {
		x, y := core.Coord(i)
		c := g.CellAt(x, y)
		digit := int(solution[i] - '0')
		if c.Ans == 0 {
			c.Ans = digit
		} else if c.Ans != digit {
			return fmt.Errorf("%w: supplied answer disagrees with the unique solution", ErrContradictory)
		}
	}
	return nil
}

func (g *Grid) applySolution(solution string) {
	for i := 0; i < core.TotalCells; i++ {
		x, y := core.Coord(i)
		g.CellAt(x, y).Ans = int(solution[i] - '0')
	}
}

func (g *Grid) checkWrongValues() bool {
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.Value != 0 && c.Value != c.Ans {
			return false
		}
	}
	return true
}

func (g *Grid) checkMissingCandidates() bool {
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.IsEmpty() && !c.Candidates.Has(c.Ans) {
			return false
		}
	}
	return true
}

// checkWrongCandidates verifies that, in every house, no candidate union
// of the house's empty cells contains a digit some other cell in that same
// house has already placed. The reference engine's equivalent check reads
// the comparison cell's value through the house's index instead of through
// the converted (x, y) coordinate, so on non-row houses it compares against
// the wrong cell entirely; this walks the same house consistently.
func (g *Grid) checkWrongCandidates() bool {
	for houseType := 0; houseType < 3; houseType++ {
		for house := 0; house < core.GridSize; house++ {
			var union core.Candidates
			cells := g.HouseCells(houseType, house)
			for _, c := range cells {
				if c.IsEmpty() {
					union = union.Union(c.Candidates)
				}
			}
			for _, c := range cells {
				if !c.IsEmpty() && union.Has(c.Value) {
					return false
				}
			}
		}
	}
	return true
}

// updateCandCouldBe clears CandCouldBe for every digit a given cell's
// value rules out across its row, column, and box, and for the given cell
// itself across all digits.
func (g *Grid) updateCandCouldBe() {
	for x := 0; x < core.GridSize; x++ {
		for y := 0; y < core.GridSize; y++ {
			c := g.CellAt(x, y)
			if !c.Given {
				continue
			}
			c.CandCouldBe = 0
			val := c.Value

			for row := 0; row < core.GridSize; row++ {
				g.CellAt(row, y).CandCouldBe = g.CellAt(row, y).CandCouldBe.Clear(val)
			}
			for col := 0; col < core.GridSize; col++ {
				g.CellAt(x, col).CandCouldBe = g.CellAt(x, col).CandCouldBe.Clear(val)
			}
			box := core.Box(x, y)
			for idx := 0; idx < core.GridSize; idx++ {
				bx, by := core.Convert(box, idx, core.HouseBox)
				g.CellAt(bx, by).CandCouldBe = g.CellAt(bx, by).CandCouldBe.Clear(val)
			}
		}
	}
}

package dlx

import "testing"

// The three literal scenarios spec.md's testable-properties section
// specifies for the uniqueness checker.

func TestSolveMultipleSolutions(t *testing.T) {
	grid := "010000000300900020005000007020040003038020150400050060200000900009008002000000030"
	m, err := Build(grid, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	result, solution := m.Solve()
	if result != ResultMultiple {
		t.Fatalf("result = %v, want ResultMultiple", result)
	}
	if len(solution) != 81 {
		t.Fatalf("attached solution length = %d, want 81", len(solution))
	}
}

func TestSolveMultipleSolutionsSparse(t *testing.T) {
	grid := "000002000000080000050000000000300800000900400000000000000806000000000070000000008"
	m, err := Build(grid, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	result, solution := m.Solve()
	if result != ResultMultiple {
		t.Fatalf("result = %v, want ResultMultiple", result)
	}
	if len(solution) != 81 {
		t.Fatalf("attached solution length = %d, want 81", len(solution))
	}
}

func TestSolveNoSolution(t *testing.T) {
	grid := "010000000300960020005000017020040003038020150400050060200000900049078002000000030"
	m, err := Build(grid, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	result, _ := m.Solve()
	if result != ResultNone {
		t.Fatalf("result = %v, want ResultNone", result)
	}
}

func TestSolveUniqueSolution(t *testing.T) {
	// a well-known unique-solution puzzle
	grid := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	m, err := Build(grid, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	result, solution := m.Solve()
	if result != ResultUnique {
		t.Fatalf("result = %v, want ResultUnique", result)
	}
	for i, c := range grid {
		if c != '0' && solution[i] != byte(c) {
			t.Fatalf("solution disagrees with given at %d: got %c, want %c", i, solution[i], c)
		}
	}
	for _, c := range solution {
		if c < '1' || c > '9' {
			t.Fatalf("solution contains non-digit %c", c)
		}
	}
}

func TestBuildRejectsWrongLength(t *testing.T) {
	if _, err := Build("123", nil); err == nil {
		t.Fatal("expected error for short grid")
	}
}

func TestBuildRejectsInvalidChar(t *testing.T) {
	bad := make([]byte, 81)
	for i := range bad {
		bad[i] = '0'
	}
	bad[0] = 'x'
	if _, err := Build(string(bad), nil); err == nil {
		t.Fatal("expected error for invalid character")
	}
}

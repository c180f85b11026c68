package core

// Candidates is a bitmask of possible digits 1-9 for a Sudoku cell.
// Bit k (1<<k) corresponds to digit k; bit 0 is unused.
type Candidates uint16

// NewCandidates builds a Candidates bitmask from a slice of digits.
func NewCandidates(digits []int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

// AllCandidates returns a Candidates with every digit 1-9 set.
func AllCandidates() Candidates {
	var c Candidates
	for d := 1; d <= GridSize; d++ {
		c = c.Set(d)
	}
	return c
}

// Has reports whether digit is a member of c.
func (c Candidates) Has(digit int) bool {
	if digit < 1 || digit > GridSize {
		return false
	}
	return c&(1<<uint(digit)) != 0
}

// Set returns c with digit added.
func (c Candidates) Set(digit int) Candidates {
	if digit < 1 || digit > GridSize {
		return c
	}
	return c | (1 << uint(digit))
}

// Clear returns c with digit removed.
func (c Candidates) Clear(digit int) Candidates {
	if digit < 1 || digit > GridSize {
		return c
	}
	return c &^ (1 << uint(digit))
}

// Count returns the number of set digits.
func (c Candidates) Count() int {
	n := 0
	for d := 1; d <= GridSize; d++ {
		if c.Has(d) {
			n++
		}
	}
	return n
}

// Only returns the sole candidate digit, if c has exactly one.
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for d := 1; d <= GridSize; d++ {
		if c.Has(d) {
			return d, true
		}
	}
	return 0, false
}

// ToSlice returns the candidate digits in ascending order.
func (c Candidates) ToSlice() []int {
	var out []int
	for d := 1; d <= GridSize; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsEmpty reports whether c has no candidates.
func (c Candidates) IsEmpty() bool { return c == 0 }

// Intersect returns the digits present in both c and other.
func (c Candidates) Intersect(other Candidates) Candidates { return c & other }

// Union returns the digits present in either c or other.
func (c Candidates) Union(other Candidates) Candidates { return c | other }

// Subtract returns the digits in c that are not in other.
func (c Candidates) Subtract(other Candidates) Candidates { return c &^ other }

// Equals reports whether c and other hold the same digits.
func (c Candidates) Equals(other Candidates) bool { return c == other }

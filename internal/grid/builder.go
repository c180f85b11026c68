package grid

import "sort"

// Exec is the scratch execution the current step is building: a mode flag
// (true = place a value, false = eliminate a candidate) plus the ordered,
// deduplicated set of 16-bit executee words.
type Exec struct {
	Mode      bool
	Executees []uint16
}

// InitStep clears the scratch instruction and execution buffers. Every
// technique must call this at entry (directly, or by relying on the
// orchestrator having just called it) before writing anything.
func (g *Grid) InitStep() {
	g.Instructions = g.Instructions[:0]
	g.Execution = Exec{}
}

// AddInst appends one or more raw bytes to the instruction stream.
func (g *Grid) AddInst(bytes ...byte) {
	g.Instructions = append(g.Instructions, bytes...)
}

// SetMode records whether this step places a value (true) or eliminates
// candidates (false).
func (g *Grid) SetMode(place bool) {
	g.Execution.Mode = place
}

// AddExec appends a raw 16-bit executee word.
func (g *Grid) AddExec(word uint16) {
	g.Execution.Executees = append(g.Execution.Executees, word)
}

// AddEliminationExec appends an elimination executee for (cell, digit):
// high byte the packed position, low byte the digit index (0-8).
func (g *Grid) AddEliminationExec(c *Cell, digitIndex int) {
	pos := uint16(c.X<<4 | c.Y)
	g.AddExec(pos<<8 | uint16(digitIndex))
}

// AddPlacementExec appends a placement executee for (x, y, digit): x in the
// top nibble of the high byte, y in the low nibble, digit index in the low
// byte.
func (g *Grid) AddPlacementExec(x, y, digitIndex int) {
	g.AddExec(uint16(x)<<12 | uint16(y)<<8 | uint16(digitIndex))
}

// EmptyExec reports whether no executees have been recorded yet.
func (g *Grid) EmptyExec() bool {
	return len(g.Execution.Executees) == 0
}

// SortExec sorts and deduplicates the executees, as required for bit-exact
// determinism across repeated NextStep calls.
func (g *Grid) SortExec() {
	ex := g.Execution.Executees
	sort.Slice(ex, func(i, j int) bool { return ex[i] < ex[j] })
	out := ex[:0]
	var last uint16
	for i, v := range ex {
		if i == 0 || v != last {
			out = append(out, v)
			last = v
		}
	}
	g.Execution.Executees = out
}

// AddExecToInst appends the (already sorted) executees to the instruction
// stream verbatim as 2 bytes each.
func (g *Grid) AddExecToInst() {
	for _, e := range g.Execution.Executees {
		g.Instructions = append(g.Instructions, byte(e>>8), byte(e))
	}
}

// Finalize sorts+dedupes the executees and appends them to the instruction
// stream. It is the last call a technique makes before returning.
func (g *Grid) Finalize() {
	g.SortExec()
	g.AddExecToInst()
}

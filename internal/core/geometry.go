package core

// Convert maps a (house, index) pair within a houseType to an (x, y) cell
// coordinate. houseType is one of HouseRow, HouseCol, HouseBox.
//
//   - row:    (house, index)
//   - column: (index, house)
//   - box:    top-left at (house/3*3, house%3*3), offset (index/3, index%3)
func Convert(house, index, houseType int) (x, y int) {
	switch houseType {
	case HouseRow:
		return house, index
	case HouseCol:
		return index, house
	case HouseBox:
		tlx, tly := (house/BoxSize)*BoxSize, (house%BoxSize)*BoxSize
		return tlx + index/BoxSize, tly + index%BoxSize
	}
	return -1, -1
}

// Box returns the box index (0-8) containing cell (x, y).
func Box(x, y int) int {
	return (x/BoxSize)*BoxSize + y/BoxSize
}

// Sees reports whether two distinct cells share a row, column, or box.
func Sees(x1, y1, x2, y2 int) bool {
	if x1 == x2 && y1 == y2 {
		return false
	}
	if x1 == x2 || y1 == y2 {
		return true
	}
	return x1/BoxSize == x2/BoxSize && y1/BoxSize == y2/BoxSize
}

// EncodePos packs a cell coordinate into a single byte: high nibble x, low
// nibble y.
func EncodePos(x, y int) byte {
	return byte(x<<4 | y)
}

// EncodeLine packs a whole row or column into a single byte using 0xF as a
// wildcard nibble: rows/box-rows get (n<<4)|0xF, columns get 0xF0|n.
func EncodeLine(lineType, n int) byte {
	if lineType == HouseCol {
		return byte(0xF0 | n)
	}
	return byte(n<<4 | 0xF)
}

// EncodeExe packs a (cell, digit) elimination executee into 16 bits: high
// byte the packed position, low byte the digit.
func EncodeExe(x, y, digit int) uint16 {
	return uint16(EncodePos(x, y))<<8 | uint16(digit)
}

// EncodePlacement packs a (x, y, digit) placement executee: x in the top
// nibble of the high byte, y in the low nibble, digit in the low byte.
func EncodePlacement(x, y, digit int) uint16 {
	return uint16(x)<<12 | uint16(y)<<8 | uint16(digit)
}

// Index flattens a row-major (x, y) coordinate into 0..80.
func Index(x, y int) int { return x*GridSize + y }

// Coord splits a flattened 0..80 index back into (x, y).
func Coord(idx int) (x, y int) { return idx / GridSize, idx % GridSize }

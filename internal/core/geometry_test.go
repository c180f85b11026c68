package core

import "testing"

func TestConvertRoundTrips(t *testing.T) {
	for houseType := 0; houseType < 3; houseType++ {
		for house := 0; house < GridSize; house++ {
			seen := map[[2]int]bool{}
			for index := 0; index < GridSize; index++ {
				x, y := Convert(house, index, houseType)
				if x < 0 || x >= GridSize || y < 0 || y >= GridSize {
					t.Fatalf("houseType=%d house=%d index=%d out of range: (%d,%d)", houseType, house, index, x, y)
				}
				if seen[[2]int{x, y}] {
					t.Fatalf("houseType=%d house=%d produced duplicate cell (%d,%d)", houseType, house, x, y)
				}
				seen[[2]int{x, y}] = true
			}
		}
	}
}

func TestConvertRow(t *testing.T) {
	x, y := Convert(3, 5, HouseRow)
	if x != 3 || y != 5 {
		t.Fatalf("row convert: got (%d,%d), want (3,5)", x, y)
	}
}

func TestConvertCol(t *testing.T) {
	x, y := Convert(3, 5, HouseCol)
	if x != 5 || y != 3 {
		t.Fatalf("col convert: got (%d,%d), want (5,3)", x, y)
	}
}

func TestConvertBox(t *testing.T) {
	// box 4 is the center box, top-left (3,3)
	x, y := Convert(4, 0, HouseBox)
	if x != 3 || y != 3 {
		t.Fatalf("box 4 index 0: got (%d,%d), want (3,3)", x, y)
	}
	x, y = Convert(4, 8, HouseBox)
	if x != 5 || y != 5 {
		t.Fatalf("box 4 index 8: got (%d,%d), want (5,5)", x, y)
	}
}

func TestBox(t *testing.T) {
	cases := []struct{ x, y, want int }{
		{0, 0, 0}, {8, 8, 8}, {3, 3, 4}, {4, 0, 3}, {0, 4, 1},
	}
	for _, c := range cases {
		if got := Box(c.x, c.y); got != c.want {
			t.Errorf("Box(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestSees(t *testing.T) {
	if Sees(0, 0, 0, 0) {
		t.Error("a cell does not see itself")
	}
	if !Sees(0, 0, 0, 8) {
		t.Error("same column should see")
	}
	if !Sees(0, 0, 8, 0) {
		t.Error("same row should see")
	}
	if !Sees(0, 0, 1, 1) {
		t.Error("same box should see")
	}
	if Sees(0, 0, 3, 3) {
		t.Error("different row/col/box should not see")
	}
}

func TestEncodePos(t *testing.T) {
	if got := EncodePos(5, 3); got != 0x53 {
		t.Errorf("EncodePos(5,3) = %#x, want 0x53", got)
	}
}

func TestEncodeLine(t *testing.T) {
	if got := EncodeLine(HouseRow, 4); got != 0x4F {
		t.Errorf("EncodeLine(row,4) = %#x, want 0x4F", got)
	}
	if got := EncodeLine(HouseCol, 4); got != 0xF4 {
		t.Errorf("EncodeLine(col,4) = %#x, want 0xF4", got)
	}
}

func TestIndexCoordRoundTrip(t *testing.T) {
	for i := 0; i < TotalCells; i++ {
		x, y := Coord(i)
		if got := Index(x, y); got != i {
			t.Fatalf("Index(Coord(%d)) = %d, want %d", i, got, i)
		}
	}
}

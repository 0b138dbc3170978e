package world

import "testing"

// makeGrid builds a grid from lines and fails the test on error.
func makeGrid(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := NewGrid(lines)
	if err != nil {
		t.Fatalf("NewGrid(%v) error: %v", lines, err)
	}
	return g
}

func TestNewGrid_ParsesMaterials(t *testing.T) {
	g := makeGrid(t,
		"#####",
		"#A.B#",
		"#C.E#",
		"#D.G#",
		"#####",
	)
	if g.Rows() != 5 || g.Cols() != 5 {
		t.Fatalf("size = %dx%d, want 5x5", g.Rows(), g.Cols())
	}
	tests := []struct {
		row, col int
		want     Material
	}{
		{1, 1, MaterialBrick},
		{1, 3, MaterialMoss},
		{2, 1, MaterialStone},
		{3, 1, MaterialTile},
		{2, 3, MaterialCross},
		{0, 0, MaterialBoundary},
	}
	for _, tt := range tests {
		cell, ok := g.GetCell(tt.row, tt.col)
		if !ok || !cell.IsWall() || cell.Material != tt.want {
			t.Errorf("GetCell(%d, %d) = %+v, want wall %v", tt.row, tt.col, cell, tt.want)
		}
	}
	if row, col, ok := g.GatePosition(); !ok || row != 3 || col != 3 {
		t.Errorf("GatePosition() = %d, %d, %v, want 3, 3, true", row, col, ok)
	}
}

func TestNewGrid_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty", nil},
		{"ragged", []string{"###", "#.", "###"}},
		{"open perimeter", []string{"###", "#..", "###"}},
		{"unknown glyph", []string{"###", "#?#", "###"}},
		{"two gates", []string{"####", "#GG#", "####"}},
		{"gate on perimeter", []string{"#G#", "#.#", "###"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.lines); err == nil {
				t.Errorf("NewGrid(%v) error = nil, want error", tt.lines)
			}
		})
	}
}

func TestGrid_GateLatch(t *testing.T) {
	g := makeGrid(t,
		"####",
		"#.G#",
		"####",
	)
	if g.IsOpen(1, 2) {
		t.Error("IsOpen(gate) before OpenGate = true, want false")
	}
	if g.BlocksSight(1, 2) {
		t.Error("BlocksSight(gate) = true, want false")
	}
	if !g.OpenGate() {
		t.Fatal("OpenGate() = false on first call, want true")
	}
	if g.OpenGate() {
		t.Error("OpenGate() = true on second call, want false")
	}
	if !g.IsOpen(1, 2) || !g.GateOpen() {
		t.Error("gate not passable after OpenGate")
	}
}

func TestGrid_IsOpenAt(t *testing.T) {
	g := makeGrid(t,
		"###",
		"#.#",
		"###",
	)
	tests := []struct {
		x, y float64
		want bool
	}{
		{1.5, 1.5, true},
		{1.0, 1.0, true},
		{0.99, 1.5, false},
		{-0.5, 1.5, false},
		{1.5, 2.0, false},
	}
	for _, tt := range tests {
		if got := g.IsOpenAt(tt.x, tt.y); got != tt.want {
			t.Errorf("IsOpenAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGrid_OutOfBoundsIsBoundaryWall(t *testing.T) {
	g := makeGrid(t, "###", "#.#", "###")
	cell, ok := g.GetCell(-1, 5)
	if ok || !cell.IsWall() || cell.Material != MaterialBoundary {
		t.Errorf("GetCell(-1, 5) = %+v, %v, want boundary wall, false", cell, ok)
	}
	if !g.BlocksSight(7, 7) {
		t.Error("BlocksSight(out of bounds) = false, want true")
	}
}

func TestDirection_OppositeAndUnit(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		x, y := d.Unit()
		if l := x*x + y*y; l < 0.999 || l > 1.001 {
			t.Errorf("%v.Unit() length^2 = %v, want 1", d, l)
		}
	}
	if dc, dr := North.Delta(); dc != 0 || dr != -1 {
		t.Errorf("North.Delta() = %d, %d, want 0, -1", dc, dr)
	}
}

func TestHasLineOfSight(t *testing.T) {
	g := makeGrid(t,
		"#######",
		"#.....#",
		"#..A..#",
		"#.....#",
		"#######",
	)
	if !HasLineOfSight(g, 1, 1, 1, 5) {
		t.Error("HasLineOfSight along open row = false, want true")
	}
	if HasLineOfSight(g, 2, 1, 2, 5) {
		t.Error("HasLineOfSight through wall = true, want false")
	}
	if !HasLineOfSight(g, 2, 1, 2, 3) {
		t.Error("HasLineOfSight to the wall itself = false, want true")
	}

	cells := VisibleCells(g, 2, 1, FOVRadius)
	for _, rc := range cells {
		if rc[0] == 2 && rc[1] == 5 {
			t.Error("VisibleCells includes a cell hidden behind the wall")
		}
	}
}

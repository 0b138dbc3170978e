package pathing

import (
	"testing"

	"torchmaze/pkg/engine/world"
)

func makeGrid(t *testing.T, lines ...string) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(lines)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	return g
}

// sweep is the level-by-level relaxation the queue flood must reproduce.
func sweep(g *world.Grid, row, col int) [][]int {
	out := make([][]int, g.Rows())
	for r := range out {
		out[r] = make([]int, g.Cols())
	}
	if !g.IsOpen(row, col) {
		return out
	}
	out[row][col] = g.LongestDimension()
	for level := g.LongestDimension(); level > 1; level-- {
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				if out[r][c] != level {
					continue
				}
				for _, d := range world.CardinalDirections() {
					dc, dr := d.Delta()
					nr, nc := r+dr, c+dc
					if g.IsOpen(nr, nc) && out[nr][nc] == Unvisited {
						out[nr][nc] = level - 1
					}
				}
			}
		}
	}
	return out
}

func assertMatchesSweep(t *testing.T, g *world.Grid, row, col int) {
	t.Helper()
	f := Rebuild(g, row, col)
	want := sweep(g, row, col)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if got := f.At(r, c); got != want[r][c] {
				t.Errorf("Rebuild(%d, %d).At(%d, %d) = %d, want %d", row, col, r, c, got, want[r][c])
			}
		}
	}
}

func TestRebuild_SeedAndNeighbours(t *testing.T) {
	g := makeGrid(t,
		"#######",
		"#.....#",
		"#..A..#",
		"#.....#",
		"#######",
	)
	f := Rebuild(g, 1, 3)
	seed := g.LongestDimension()
	if got := f.At(1, 3); got != seed {
		t.Fatalf("At(player) = %d, want %d", got, seed)
	}
	for _, rc := range [][2]int{{1, 2}, {1, 4}} {
		if got := f.At(rc[0], rc[1]); got != seed-1 {
			t.Errorf("At(%d, %d) = %d, want %d", rc[0], rc[1], got, seed-1)
		}
	}
	if got := f.At(2, 3); got != Unvisited {
		t.Errorf("At(wall) = %d, want %d", got, Unvisited)
	}
	// around the pillar: (3,3) is four steps away
	if got := f.At(3, 3); got != seed-4 {
		t.Errorf("At(3, 3) = %d, want %d", got, seed-4)
	}
	assertMatchesSweep(t, g, 1, 3)
}

func TestRebuild_StopsAtLevelOne(t *testing.T) {
	g := makeGrid(t,
		"#######",
		"#.....#",
		"#####.#",
		"#.....#",
		"#.#####",
		"#.....#",
		"#######",
	)
	f := Rebuild(g, 1, 1)
	if got := f.At(5, 5); got != Unvisited {
		t.Errorf("At(far end) = %d, want %d once the levels run out", got, Unvisited)
	}
	if got := f.At(3, 5); got != 1 {
		t.Errorf("At(3, 5) = %d, want 1", got)
	}
	assertMatchesSweep(t, g, 1, 1)
	assertMatchesSweep(t, g, 3, 3)
}

func TestRebuild_UnreachableStaysUnvisited(t *testing.T) {
	g := makeGrid(t,
		"######",
		"#..#.#",
		"#..#.#",
		"######",
	)
	f := Rebuild(g, 1, 1)
	for _, rc := range [][2]int{{1, 4}, {2, 4}} {
		if got := f.At(rc[0], rc[1]); got != Unvisited {
			t.Errorf("At(%d, %d) = %d, want %d", rc[0], rc[1], got, Unvisited)
		}
	}
	assertMatchesSweep(t, g, 1, 1)
}

func TestRebuild_PlayerInWall(t *testing.T) {
	g := makeGrid(t, "####", "#..#", "####")
	f := Rebuild(g, 0, 0)
	rows, cols := f.Size()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if f.At(r, c) != Unvisited {
				t.Fatalf("At(%d, %d) = %d, want all %d", r, c, f.At(r, c), Unvisited)
			}
		}
	}
}

func TestRebuild_ClosedGateBlocks(t *testing.T) {
	g := makeGrid(t,
		"#####",
		"#.G.#",
		"#####",
	)
	if got := Rebuild(g, 1, 1).At(1, 3); got != Unvisited {
		t.Errorf("At(behind closed gate) = %d, want %d", got, Unvisited)
	}
	g.OpenGate()
	if got := Rebuild(g, 1, 1).At(1, 3); got != g.LongestDimension()-2 {
		t.Errorf("At(behind open gate) = %d, want %d", got, g.LongestDimension()-2)
	}
}

func TestField_AtOutOfRange(t *testing.T) {
	g := makeGrid(t, "###", "#.#", "###")
	f := RebuildAt(g, 1.5, 1.5)
	if f.At(-1, 0) != Unvisited || f.At(0, 9) != Unvisited {
		t.Error("At(out of range) != Unvisited")
	}
	if f.AtPosition(1.2, 1.9) != g.LongestDimension() {
		t.Errorf("AtPosition(player cell) = %d, want %d", f.AtPosition(1.2, 1.9), g.LongestDimension())
	}
}

package world

import (
	"math"

	"github.com/pkg/errors"
)

// Grid represents the maze with encapsulated cell storage.
// Coordinates are (row, col); world positions use x for columns and y for rows.
type Grid struct {
	cells []Cell
	rows  int
	cols  int

	gateRow  int
	gateCol  int
	hasGate  bool
	gateOpen bool
}

// NewGrid parses a map given as one string per row.
// '.' and ' ' are floor, 'G' is the gate, '#' and 'A'..'E' are walls.
// The grid must be rectangular, hold at most one gate and be enclosed by walls.
func NewGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, errors.New("grid has no rows")
	}

	g := &Grid{rows: len(lines)}
	for row, line := range lines {
		runes := []rune(line)
		if row == 0 {
			g.cols = len(runes)
			if g.cols == 0 {
				return nil, errors.New("grid has no columns")
			}
			g.cells = make([]Cell, g.rows*g.cols)
		}
		if len(runes) != g.cols {
			return nil, errors.Errorf("row %d has %d columns, want %d", row, len(runes), g.cols)
		}

		for col, r := range runes {
			cell, err := parseCell(r)
			if err != nil {
				return nil, errors.Wrapf(err, "cell %d:%d", row, col)
			}
			if cell.IsGate() {
				if g.hasGate {
					return nil, errors.Errorf("second gate at %d:%d", row, col)
				}
				g.hasGate = true
				g.gateRow, g.gateCol = row, col
			}
			g.cells[row*g.cols+col] = cell
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseCell(r rune) (Cell, error) {
	switch r {
	case '.', ' ':
		return Cell{Kind: CellEmpty}, nil
	case 'G':
		return Cell{Kind: CellGate}, nil
	}
	if m, ok := MaterialFromRune(r); ok {
		return Cell{Kind: CellWall, Material: m}, nil
	}
	return Cell{}, errors.Errorf("unknown map glyph %q", r)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// LongestDimension returns max(rows, cols)
func (g *Grid) LongestDimension() int {
	if g.rows > g.cols {
		return g.rows
	}
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && (row == 0 || row == g.rows-1 || col == 0 || col == g.cols-1)
}

// GetCell returns the cell at the given position. Out of bounds positions
// report a boundary wall and false.
func (g *Grid) GetCell(row, col int) (Cell, bool) {
	if !g.IsValidPosition(row, col) {
		return Cell{Kind: CellWall, Material: MaterialBoundary}, false
	}
	return g.cells[row*g.cols+col], true
}

// IsOpen reports whether an entity may occupy the cell: floor, or the gate once opened.
func (g *Grid) IsOpen(row, col int) bool {
	cell, ok := g.GetCell(row, col)
	if !ok {
		return false
	}
	switch cell.Kind {
	case CellEmpty:
		return true
	case CellGate:
		return g.gateOpen
	default:
		return false
	}
}

// BlocksSight reports whether a ray stops at the cell. The gate is drawn as
// a sprite, so only walls and out of bounds positions block.
func (g *Grid) BlocksSight(row, col int) bool {
	cell, ok := g.GetCell(row, col)
	return !ok || cell.IsWall()
}

// CellAt converts a world position to the cell containing it.
func CellAt(x, y float64) (row, col int) {
	return int(math.Floor(y)), int(math.Floor(x))
}

// IsOpenAt is IsOpen for a world position
func (g *Grid) IsOpenAt(x, y float64) bool {
	row, col := CellAt(x, y)
	return g.IsOpen(row, col)
}

// GatePosition returns the gate cell if the map has one
func (g *Grid) GatePosition() (row, col int, ok bool) {
	return g.gateRow, g.gateCol, g.hasGate
}

// GateOpen returns true once OpenGate has been called
func (g *Grid) GateOpen() bool {
	return g.gateOpen
}

// OpenGate makes the gate cell passable. It returns false if the gate was
// already open or the map has no gate.
func (g *Grid) OpenGate() bool {
	if !g.hasGate || g.gateOpen {
		return false
	}
	g.gateOpen = true
	return true
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// Validate checks that the grid is enclosed by walls
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return errors.New("grid has invalid dimensions")
	}

	var err error
	g.ForEachCell(func(row, col int, cell Cell) {
		if err == nil && g.IsOnPerimeter(row, col) && !cell.IsWall() {
			err = errors.Errorf("perimeter cell %d:%d is not a wall", row, col)
		}
	})
	return err
}

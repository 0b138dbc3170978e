// Package pathing builds the flood-filled potential field enemies climb to
// reach the player.
package pathing

import (
	"github.com/zyedidia/generic/queue"

	"torchmaze/pkg/engine/world"
)

// Unvisited is the value of cells the flood never reached.
const Unvisited = 0

// Field holds one potential per grid cell. Higher is closer to the player.
type Field struct {
	rows, cols int
	values     []int
}

type cell struct {
	row, col int
}

// Rebuild floods the open region around the player's cell. The player's
// cell holds the grid's longest dimension and every 4-connected step away
// is one less, stopping at 1. A player standing in a closed cell yields an
// all-zero field.
func Rebuild(g *world.Grid, playerRow, playerCol int) *Field {
	f := &Field{
		rows:   g.Rows(),
		cols:   g.Cols(),
		values: make([]int, g.Rows()*g.Cols()),
	}
	if !g.IsOpen(playerRow, playerCol) {
		return f
	}

	seed := g.LongestDimension()
	f.set(playerRow, playerCol, seed)

	q := queue.New[cell]()
	q.Enqueue(cell{playerRow, playerCol})
	for !q.Empty() {
		cur := q.Dequeue()
		level := f.At(cur.row, cur.col)
		if level <= 1 {
			continue
		}
		for _, d := range world.CardinalDirections() {
			dc, dr := d.Delta()
			r, c := cur.row+dr, cur.col+dc
			if !g.IsOpen(r, c) || f.At(r, c) != Unvisited {
				continue
			}
			f.set(r, c, level-1)
			q.Enqueue(cell{r, c})
		}
	}
	return f
}

// RebuildAt is Rebuild for a world position
func RebuildAt(g *world.Grid, x, y float64) *Field {
	row, col := world.CellAt(x, y)
	return Rebuild(g, row, col)
}

// At returns the potential of a cell; Unvisited outside the grid.
func (f *Field) At(row, col int) int {
	if f == nil || row < 0 || col < 0 || row >= f.rows || col >= f.cols {
		return Unvisited
	}
	return f.values[row*f.cols+col]
}

// AtPosition returns the potential of the cell containing (x, y)
func (f *Field) AtPosition(x, y float64) int {
	row, col := world.CellAt(x, y)
	return f.At(row, col)
}

// Size returns the field dimensions
func (f *Field) Size() (rows, cols int) {
	return f.rows, f.cols
}

func (f *Field) set(row, col, v int) {
	f.values[row*f.cols+col] = v
}

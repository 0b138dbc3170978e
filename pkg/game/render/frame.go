// Package render assembles one frame per tick: it casts a ray per column,
// shades walls, floor and ceiling, composites depth-tested sprites and draws
// the overlays. Output is display independent; backends encode it.
package render

import (
	"math"
	"strings"

	"torchmaze/pkg/engine/style"
	"torchmaze/pkg/game/state"
)

// Cell is one styled character of the frame
type Cell struct {
	Glyph rune
	Style style.Style
}

var blank = Cell{Glyph: ' ', Style: style.New(style.Default, style.NearBlack)}

// Frame is the styled scene plus a plain status line.
type Frame struct {
	Cols, Rows int // scene size; the status line is extra
	Cells      []Cell
	Status     string
	Result     state.Status
}

// NewFrame returns a blank frame
func NewFrame(cols, rows int) *Frame {
	f := &Frame{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	for i := range f.Cells {
		f.Cells[i] = blank
	}
	return f
}

// InBounds reports whether (col, row) is inside the scene
func (f *Frame) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < f.Cols && row < f.Rows
}

// At returns the cell at (col, row); blank outside the scene.
func (f *Frame) At(col, row int) Cell {
	if !f.InBounds(col, row) {
		return blank
	}
	return f.Cells[row*f.Cols+col]
}

// Set writes a cell. Out of bounds writes are dropped.
func (f *Frame) Set(col, row int, c Cell) {
	if !f.InBounds(col, row) {
		return
	}
	f.Cells[row*f.Cols+col] = c
}

// Row returns the cells of one scene row
func (f *Frame) Row(row int) []Cell {
	if row < 0 || row >= f.Rows {
		return nil
	}
	return f.Cells[row*f.Cols : (row+1)*f.Cols]
}

// WriteText writes s from (col, row) in one style, clipped to the scene.
func (f *Frame) WriteText(col, row int, s string, st style.Style) {
	for _, r := range s {
		f.Set(col, row, Cell{Glyph: r, Style: st})
		col++
	}
}

// String is the glyphs of every row followed by the status line. Styles
// are dropped.
func (f *Frame) String() string {
	var b strings.Builder
	for row := 0; row < f.Rows; row++ {
		for _, c := range f.Row(row) {
			b.WriteRune(c.Glyph)
		}
		b.WriteByte('\n')
	}
	b.WriteString(f.Status)
	return b.String()
}

// DepthBuffer holds the nearest distance drawn at each scene cell.
type DepthBuffer struct {
	cols, rows int
	depth      []float64
}

// NewDepthBuffer returns an empty buffer: every cell at +Inf.
func NewDepthBuffer(cols, rows int) *DepthBuffer {
	d := &DepthBuffer{cols: cols, rows: rows, depth: make([]float64, cols*rows)}
	for i := range d.depth {
		d.depth[i] = math.Inf(1)
	}
	return d
}

// At returns the depth at (col, row); +Inf outside the buffer.
func (d *DepthBuffer) At(col, row int) float64 {
	if col < 0 || row < 0 || col >= d.cols || row >= d.rows {
		return math.Inf(1)
	}
	return d.depth[row*d.cols+col]
}

// Set records a depth. Out of bounds writes are dropped.
func (d *DepthBuffer) Set(col, row int, v float64) {
	if col < 0 || row < 0 || col >= d.cols || row >= d.rows {
		return
	}
	d.depth[row*d.cols+col] = v
}

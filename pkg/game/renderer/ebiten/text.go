package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"torchmaze/pkg/game/render"
)

// drawFrame draws every scene cell and the status line below it
func (e *EbitenRenderer) drawFrame(screen *ebiten.Image, f *render.Frame) {
	for row := 0; row < f.Rows; row++ {
		for col, c := range f.Row(row) {
			if c.Glyph == ' ' {
				continue
			}
			e.drawColoredChar(screen, string(c.Glyph), col, row, cellColor(c.Style))
		}
	}
	e.drawColoredText(screen, f.Status, 0, f.Rows, color.RGBA{200, 210, 245, 255})
}

// drawColoredChar draws a character centred in the cell at (col, row)
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, col, row int, clr color.Color) {
	face := e.getMonoFontFace()
	w, h := text.Measure(char, face, 0)

	x := float64(col*e.cellWidth) + (float64(e.cellWidth)-w)/2
	y := float64(row*e.cellHeight) + (float64(e.cellHeight)-h)/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, char, face, op)
}

// drawColoredText draws a left-aligned line starting at cell (col, row)
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, col, row int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(col*e.cellWidth), float64(row*e.cellHeight))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, e.getMonoFontFace(), op)
}

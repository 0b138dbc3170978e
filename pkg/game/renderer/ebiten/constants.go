package ebiten

import (
	"image/color"

	"torchmaze/pkg/engine/style"
)

var colorBackground = color.RGBA{8, 8, 12, 255}

// Window and glyph sizing
const (
	defaultCols  = 100
	defaultRows  = 36
	baseFontSize = 14.0
	windowTitle  = "torchmaze"

	// fallbackCellWidth and fallbackCellHeight are used until the font is measured
	fallbackCellWidth  = 8
	fallbackCellHeight = 16
)

// cellColor turns a frame style into an RGBA, dimmed by its tier
func cellColor(st style.Style) color.RGBA {
	r, g, b := st.Color.RGB()
	k := st.Tier.Scale()
	return color.RGBA{
		R: uint8(float64(r) * k),
		G: uint8(float64(g) * k),
		B: uint8(float64(b) * k),
		A: 255,
	}
}

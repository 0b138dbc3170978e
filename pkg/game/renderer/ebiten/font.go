package ebiten

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFont parses the embedded Go Mono face and measures one cell
func (e *EbitenRenderer) loadFont() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return errors.Wrap(err, "load mono font")
	}
	e.monoFontSource = src
	e.invalidateFontCache()

	w, _ := text.Measure("M", e.getMonoFontFace(), 0)
	e.cellWidth = int(math.Ceil(w))
	e.cellHeight = int(math.Ceil(e.getMonoFontFace().Size * 1.25))
	if e.cellWidth <= 0 {
		e.cellWidth = fallbackCellWidth
	}
	if e.cellHeight <= 0 {
		e.cellHeight = fallbackCellHeight
	}
	return nil
}

// getMonoFontFace returns a cached monospace font face for frame glyphs
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   baseFontSize,
		}
	}
	return e.cachedMonoFace
}

// invalidateFontCache clears cached font faces
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
}

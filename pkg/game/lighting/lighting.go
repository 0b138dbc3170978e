// Package lighting models the player's torch. A precomputed radial falloff
// field is combined with battery, flicker and surface terms to produce a
// brightness per screen cell, which is then quantised to a style tier.
package lighting

import (
	"math"

	"torchmaze/pkg/engine/style"
)

// Params are the tunable constants of the torch model.
type Params struct {
	FlashlightMax float64 // peak intensity at the beam centre
	BeamWidth     float64 // Gaussian sigma as a fraction of the half-extent
	ParityDim     float64 // multiplier on odd (col+row) cells
	CellAspect    float64 // terminal cells are this many times taller than wide

	HorizontalFactor float64 // walls hit across a horizontal grid line
	FloorFactor      float64
	CeilingFactor    float64

	MaxBrightness   float64
	NearBlackBelow  float64
	DimBelow        float64
	NormalBelow     float64
	VisibilityFloor float64 // sprites at or below this are not drawn
}

// DefaultParams returns the stock torch
func DefaultParams() Params {
	return Params{
		FlashlightMax: 2.0,
		BeamWidth:     0.6,
		ParityDim:     0.9,
		CellAspect:    2.0,

		HorizontalFactor: 0.7,
		FloorFactor:      0.6,
		CeilingFactor:    0.45,

		MaxBrightness:   2.0,
		NearBlackBelow:  0.12,
		DimBelow:        0.35,
		NormalBelow:     0.8,
		VisibilityFloor: 0.12,
	}
}

// Surface is what a screen cell shows
type Surface int

const (
	SurfaceWall Surface = iota
	SurfaceSprite
	SurfaceFloor
	SurfaceCeiling
)

// Sample describes the surface at one screen cell.
type Sample struct {
	Surface      Surface
	Distance     float64 // used by sprites
	Vertical     bool    // used by walls
	WallHeight   int     // projected height of the wall column
	ScreenHeight int
}

// Light is the torch state for one frame.
type Light struct {
	Enabled bool
	Battery float64 // 0..1
	Flicker float64 // 0..1 multiplier
}

// Scale is the frame-wide light multiplier; zero when the torch is off.
func (l Light) Scale() float64 {
	if !l.Enabled {
		return 0
	}
	return l.Battery * l.Flicker
}

// Field is the per-cell falloff of the beam for one viewport size.
type Field struct {
	cols, rows int
	values     []float64
}

// NewField computes the falloff for a cols x rows viewport.
func NewField(cols, rows int, p Params) *Field {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	f := &Field{cols: cols, rows: rows, values: make([]float64, cols*rows)}

	aspect := p.CellAspect
	if aspect <= 0 {
		aspect = 1
	}
	cx := float64(cols-1) / 2
	cy := float64(rows-1) / 2
	extent := math.Max(cx/aspect, cy)
	if extent <= 0 {
		extent = 1
	}
	sigma := p.BeamWidth
	if sigma <= 0 {
		sigma = 1
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			dx := (float64(col) - cx) / aspect / extent
			dy := (float64(row) - cy) / extent
			v := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			if (col+row)%2 == 1 {
				v *= p.ParityDim
			}
			f.values[row*cols+col] = v
		}
	}
	return f
}

// Size returns the viewport the field was built for
func (f *Field) Size() (cols, rows int) {
	return f.cols, f.rows
}

// At returns the falloff at a cell; zero outside the field.
func (f *Field) At(col, row int) float64 {
	if col < 0 || row < 0 || col >= f.cols || row >= f.rows {
		return 0
	}
	return f.values[row*f.cols+col]
}

// Model evaluates brightness and caches the falloff field per size.
type Model struct {
	Params Params
	field  *Field
}

// NewModel returns a model with the given params and no field yet.
func NewModel(p Params) *Model {
	return &Model{Params: p}
}

// Resize rebuilds the falloff field when the viewport size changed.
func (m *Model) Resize(cols, rows int) *Field {
	if m.field != nil {
		if c, r := m.field.Size(); c == cols && r == rows {
			return m.field
		}
	}
	m.field = NewField(cols, rows, m.Params)
	return m.field
}

// Field returns the current falloff field (nil before the first Resize).
func (m *Model) Field() *Field {
	return m.field
}

// Brightness returns the clamped intensity at (col, row).
func (m *Model) Brightness(col, row int, light Light, s Sample) float64 {
	if m.field == nil {
		return 0
	}
	p := m.Params
	b := light.Scale() * p.FlashlightMax * m.field.At(col, row)

	switch s.Surface {
	case SurfaceWall:
		if !s.Vertical {
			b *= p.HorizontalFactor
		}
		if s.ScreenHeight > 0 {
			b *= float64(s.WallHeight) / float64(s.ScreenHeight)
		} else {
			b = 0
		}
	case SurfaceSprite:
		d := s.Distance
		if d < 0.1 {
			d = 0.1
		}
		b /= d
	case SurfaceFloor:
		b *= p.FloorFactor
	case SurfaceCeiling:
		b *= p.CeilingFactor
	}
	return clamp(b, 0, p.MaxBrightness)
}

// Tier quantises a brightness
func (p Params) Tier(b float64) style.Tier {
	switch {
	case b < p.NearBlackBelow:
		return style.NearBlack
	case b < p.DimBelow:
		return style.Dim
	case b < p.NormalBelow:
		return style.Normal
	default:
		return style.Bold
	}
}

// Visible reports whether a sprite cell of brightness b is drawn.
func (p Params) Visible(b float64) bool {
	return b > p.VisibilityFloor
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

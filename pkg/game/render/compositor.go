package render

import (
	"torchmaze/pkg/engine/style"
	"torchmaze/pkg/game/atlas"
	"torchmaze/pkg/game/lighting"
)

// Compositor draws billboard sprites into a frame, depth tested against
// whatever is already there.
type Compositor struct {
	Frame *Frame
	Depth *DepthBuffer
	Atlas *atlas.Atlas
	Model *lighting.Model
	Light lighting.Light
}

// CompositeSprite draws the sprite of kind centred on (x, y). The footprint
// is size rows by 2*size columns to make up for tall terminal cells. A
// sprite texel lands only where nothing nearer was drawn, where it is not
// transparent and where the torch lights it above the visibility floor.
func (c *Compositor) CompositeSprite(x, y, size int, kind atlas.SpriteKind, distance float64) {
	if size <= 0 {
		return
	}
	sprite := c.Atlas.Sprite(kind)
	width := 2 * size
	left := x - size
	top := y - size/2

	for i := 0; i < size; i++ {
		row := top + i
		for j := 0; j < width; j++ {
			col := left + j
			if !c.Frame.InBounds(col, row) {
				continue
			}
			if c.Depth.At(col, row) < distance {
				continue
			}
			texel := sprite.At(j*atlas.Size/width, i*atlas.Size/size)
			if texel.Alpha == 0 {
				continue
			}
			b := c.Model.Brightness(col, row, c.Light, lighting.Sample{
				Surface:  lighting.SurfaceSprite,
				Distance: distance,
			})
			if !c.Model.Params.Visible(b) {
				continue
			}
			c.Frame.Set(col, row, Cell{
				Glyph: texel.Glyph,
				Style: style.New(texel.Color, c.Model.Params.Tier(b)),
			})
			c.Depth.Set(col, row, distance)
		}
	}
}

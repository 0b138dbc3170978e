package render

import (
	"math"

	"torchmaze/pkg/engine/raycast"
	"torchmaze/pkg/engine/style"
	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/atlas"
	"torchmaze/pkg/game/entities"
	"torchmaze/pkg/game/gameplay"
	"torchmaze/pkg/game/lighting"
	"torchmaze/pkg/game/state"
)

// Projection constants
const (
	// FOV is the horizontal field of view in radians
	FOV = math.Pi / 4
	// WallScale is the fraction of the scene a wall one unit away fills
	WallScale = 0.8
	// HorizonJump is how many rows the horizon drops per unit of jump height
	HorizonJump = 2
	// HorizonPitch is the fraction of the scene the horizon moves per radian of pitch
	HorizonPitch = 0.3
	// MinDistance stops walls and sprites blowing up at point blank
	MinDistance = 0.1
)

// View renders sessions. It keeps the lighting field between frames.
type View struct {
	Atlas         *atlas.Atlas
	Lighting      *lighting.Model
	Tuning        gameplay.Tuning
	Personalities map[entities.Kind]entities.Personality
}

// NewView returns a view drawing with a and the given lighting params.
func NewView(a *atlas.Atlas, p lighting.Params, t gameplay.Tuning) *View {
	return &View{
		Atlas:         a,
		Lighting:      lighting.NewModel(p),
		Tuning:        t,
		Personalities: entities.Personalities,
	}
}

// frameContext carries the per-frame values every pass needs
type frameContext struct {
	g       *state.Game
	frame   *Frame
	depth   *DepthBuffer
	light   lighting.Light
	horizon int
}

// Render draws g into a viewport of cols x rows. The last row holds the
// status line, so the scene is one row shorter.
func (v *View) Render(g *state.Game, cols, rows int) *Frame {
	fc := v.begin(g, cols, rows)
	for col := 0; col < fc.frame.Cols; col++ {
		v.drawColumn(fc, col)
	}

	comp := &Compositor{
		Frame: fc.frame,
		Depth: fc.depth,
		Atlas: v.Atlas,
		Model: v.Lighting,
		Light: fc.light,
	}
	v.drawSprites(fc, comp)

	v.drawMinimap(fc)
	v.drawTint(fc)
	v.drawBanner(fc)
	v.drawMessage(fc)
	fc.frame.Status = v.statusLine(g)
	fc.frame.Result = g.Status
	return fc.frame
}

// begin sizes the lighting field and allocates the frame and depth buffer.
func (v *View) begin(g *state.Game, cols, rows int) *frameContext {
	if cols < 1 {
		cols = 1
	}
	h := rows - 1
	if h < 1 {
		h = 1
	}
	v.Lighting.Resize(cols, h)

	p := g.Player
	return &frameContext{
		g:       g,
		frame:   NewFrame(cols, h),
		depth:   NewDepthBuffer(cols, h),
		light:   gameplay.Light(g),
		horizon: h/2 + int(p.Z*HorizonJump+p.Pitch*float64(h)*HorizonPitch),
	}
}

// drawColumn casts one ray and fills the column with ceiling, wall and floor.
func (v *View) drawColumn(fc *frameContext, col int) {
	p := fc.g.Player
	f := fc.frame
	h := f.Rows

	angle := raycast.ColumnAngle(p.Heading, FOV, col, f.Cols)
	hit := raycast.Cast(fc.g.Grid, p.X, p.Y, angle)
	cosRel := math.Cos(angle - p.Heading)
	perp := math.Max(hit.Distance*cosRel, MinDistance)

	height := int(float64(h) * WallScale / perp)
	if height > h {
		height = h
	}
	wallStart := fc.horizon - height/2
	wallEnd := fc.horizon + height/2

	wallTex := v.Atlas.Texture(hit.Material)
	rayX, rayY := raycast.Direction(angle)

	for row := 0; row < h; row++ {
		switch {
		case row < wallStart:
			v.drawSurface(fc, col, row, world.MaterialCeiling, lighting.SurfaceCeiling, rayX, rayY, cosRel, fc.horizon-row)
		case row > wallEnd:
			v.drawSurface(fc, col, row, world.MaterialFloor, lighting.SurfaceFloor, rayX, rayY, cosRel, row-fc.horizon)
		default:
			wallPos := float64(row-wallStart) / float64(max(1, wallEnd-wallStart))
			texel := wallTex.At(hit.TexX, int(wallPos*(atlas.Size-1))%atlas.Size)
			b := v.Lighting.Brightness(col, row, fc.light, lighting.Sample{
				Surface:      lighting.SurfaceWall,
				Vertical:     hit.Vertical,
				WallHeight:   height,
				ScreenHeight: h,
			})
			f.Set(col, row, Cell{Glyph: texel.Glyph, Style: style.New(texel.Color, v.Lighting.Params.Tier(b))})
			fc.depth.Set(col, row, perp)
		}
	}
}

// drawSurface shades a floor or ceiling cell by projecting it back onto
// the ground plane. These cells leave the depth buffer empty.
func (v *View) drawSurface(fc *frameContext, col, row int, m world.Material, s lighting.Surface, rayX, rayY, cosRel float64, fromHorizon int) {
	if fromHorizon <= 0 {
		return
	}
	p := fc.g.Player
	rowDist := float64(fc.frame.Rows) * WallScale / 2 / float64(fromHorizon)
	along := rowDist / math.Max(cosRel, MinDistance)
	wx := p.X + rayX*along
	wy := p.Y + rayY*along

	tex := v.Atlas.Texture(m)
	texel := tex.At(int(frac(wx)*atlas.Size), int(frac(wy)*atlas.Size))
	b := v.Lighting.Brightness(col, row, fc.light, lighting.Sample{Surface: s})
	fc.frame.Set(col, row, Cell{Glyph: texel.Glyph, Style: style.New(texel.Color, v.Lighting.Params.Tier(b))})
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}

package render

import (
	"math"

	"torchmaze/pkg/game/atlas"
	"torchmaze/pkg/game/entities"
)

// Sprite sizes relative to a wall one unit away
const (
	enemyScale  = 0.7
	pickupScale = 0.35
	gateScale   = 1.0
)

// Projection is where a world point lands on screen.
type Projection struct {
	Col      int
	Depth    float64 // distance along the view direction
	Visible  bool    // false when the point is behind the camera
	WallRows int     // rows a unit-high wall fills at this depth
}

// Project maps a world point into a scene cols x rows for a camera at
// (px, py) looking along heading.
func Project(px, py, heading, x, y float64, cols, rows int) Projection {
	dx, dy := x-px, y-py
	sin, cos := math.Sincos(heading)
	forward := dx*sin + dy*cos
	side := dx*cos - dy*sin
	if forward < MinDistance {
		return Projection{}
	}
	rel := math.Atan2(side, forward)
	return Projection{
		Col:      int((rel/FOV + 0.5) * float64(cols)),
		Depth:    forward,
		Visible:  true,
		WallRows: int(float64(rows) * WallScale / forward),
	}
}

// drawSprites composites enemies, then pickups, then the gate.
func (v *View) drawSprites(fc *frameContext, comp *Compositor) {
	g := fc.g
	for _, e := range g.Enemies {
		if !e.Enabled {
			continue
		}
		p := entities.PersonalityOf(v.Personalities, e.Kind)
		v.drawBillboard(fc, comp, e.X, e.Y, enemyScale, false, p.Sprite)
	}
	for _, pk := range g.Pickups {
		if pk.Active {
			v.drawBillboard(fc, comp, pk.X, pk.Y, pickupScale, true, atlas.SpritePickup)
		}
	}
	if _, _, ok := g.Grid.GatePosition(); ok {
		v.drawBillboard(fc, comp, g.Gate.X, g.Gate.Y, gateScale, false, g.Gate.Sprite())
	}
}

// drawBillboard projects a sprite and hands it to the compositor. Grounded
// sprites sit on the floor instead of floating at eye level.
func (v *View) drawBillboard(fc *frameContext, comp *Compositor, x, y, scale float64, grounded bool, kind atlas.SpriteKind) {
	p := fc.g.Player
	f := fc.frame
	proj := Project(p.X, p.Y, p.Heading, x, y, f.Cols, f.Rows)
	if !proj.Visible {
		return
	}
	size := int(float64(proj.WallRows) * scale)
	if size < 1 {
		size = 1
	}
	if size > 2*f.Rows {
		size = 2 * f.Rows
	}
	row := fc.horizon
	if grounded {
		row = fc.horizon + proj.WallRows/2 - size/2
	}
	comp.CompositeSprite(proj.Col, row, size, kind, proj.Depth)
}

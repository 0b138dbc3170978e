package gameplay

import (
	"math"

	"torchmaze/pkg/engine/raycast"
	"torchmaze/pkg/game/state"
)

// step moves the player along the heading; dir is 1 forward, -1 back.
// Moves into closed cells are dropped.
func (e *Engine) step(g *state.Game, dir float64) {
	dx, dy := raycast.Direction(g.Player.Heading)
	nx := g.Player.X + dx*e.Tuning.MoveSpeed*dir
	ny := g.Player.Y + dy*e.Tuning.MoveSpeed*dir
	if g.Grid.IsOpenAt(nx, ny) {
		g.Player.X, g.Player.Y = nx, ny
	}
}

// updatePhysics integrates the jump arc
func (e *Engine) updatePhysics(g *state.Game) {
	p := &g.Player
	if p.Z <= 0 && p.ZVelocity <= 0 {
		p.Z, p.ZVelocity = 0, 0
		return
	}
	p.Z += p.ZVelocity
	p.ZVelocity -= e.Tuning.Gravity
	if p.Z < 0 {
		p.Z = 0
		p.ZVelocity = 0
	}
}

// HeadingDegrees is the heading for display
func HeadingDegrees(p state.Player) float64 {
	return p.Heading * 180 / math.Pi
}

// PitchDegrees is the pitch for display
func PitchDegrees(p state.Player) float64 {
	return p.Pitch * 180 / math.Pi
}

package gameplay

import (
	"math"

	engineinput "torchmaze/pkg/engine/input"
	"torchmaze/pkg/game/state"
)

// ProcessIntent applies one input intent. It returns true when the player
// asked to quit. Once the session has ended only quit is honoured.
func (e *Engine) ProcessIntent(g *state.Game, intent engineinput.Intent) bool {
	if intent.Action == engineinput.ActionQuit {
		return true
	}
	if g.Status.Terminal() {
		return false
	}

	t := e.Tuning
	p := &g.Player
	switch intent.Action {
	case engineinput.ActionForward:
		e.step(g, 1)
	case engineinput.ActionBack:
		e.step(g, -1)
	case engineinput.ActionTurnLeft:
		p.Heading -= t.RotateSpeed
	case engineinput.ActionTurnRight:
		p.Heading += t.RotateSpeed
	case engineinput.ActionJump:
		if p.Z <= 0 {
			p.ZVelocity = t.JumpVelocity
		}
	case engineinput.ActionLookUp:
		p.Pitch = math.Min(t.PitchLimit, p.Pitch+t.PitchStep)
	case engineinput.ActionLookDown:
		p.Pitch = math.Max(-t.PitchLimit, p.Pitch-t.PitchStep)
	case engineinput.ActionToggleLight:
		g.Torch.Enabled = !g.Torch.Enabled
		if g.Torch.Enabled {
			logMessage(g, "TORCH_ON")
		} else {
			logMessage(g, "TORCH_OFF")
		}
	}
	return false
}

// ApplyMouse turns a relative mouse motion into heading and pitch changes.
func (e *Engine) ApplyMouse(g *state.Game, dx, dy float64) {
	if g.Status.Terminal() || (dx == 0 && dy == 0) {
		return
	}
	t := e.Tuning
	g.Player.Heading += dx * t.MouseSensitivity
	g.Player.Pitch = clamp(g.Player.Pitch-dy*t.MouseSensitivity, -t.PitchLimit, t.PitchLimit)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

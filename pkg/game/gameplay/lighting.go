package gameplay

import (
	"math"

	"torchmaze/pkg/game/lighting"
	"torchmaze/pkg/game/state"
)

// updateTorch drains or recharges the battery and rolls this tick's flicker.
func (e *Engine) updateTorch(g *state.Game) {
	t := e.Tuning
	torch := &g.Torch
	before := torch.Battery

	if torch.Enabled {
		torch.Battery = math.Max(0, torch.Battery-t.BatteryDrain)
	} else {
		torch.Battery = math.Min(1, torch.Battery+t.BatteryRecharge)
	}

	amplitude := t.FlickerBase + t.FlickerGrowth*(1-torch.Battery)
	torch.Flicker = clamp(1-amplitude*g.Rand.Float64(), 0, 1)

	if before >= t.BatteryLow && torch.Battery < t.BatteryLow {
		logMessage(g, "BATTERY_LOW")
		e.log.WithField("battery", torch.Battery).Info("battery low")
	}
}

// Light converts the torch state for the lighting model
func Light(g *state.Game) lighting.Light {
	return lighting.Light{
		Enabled: g.Torch.Enabled,
		Battery: g.Torch.Battery,
		Flicker: g.Torch.Flicker,
	}
}

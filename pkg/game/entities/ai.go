package entities

import (
	"math"
	"math/rand"

	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/pathing"
)

// AIConfig holds the movement constants shared by all enemies
type AIConfig struct {
	ProbeDistance float64
	Friction      float64
	Personalities map[Kind]Personality
}

// DefaultAIConfig returns the stock settings
func DefaultAIConfig() AIConfig {
	return AIConfig{
		ProbeDistance: 1.0,
		Friction:      0.9,
		Personalities: Personalities,
	}
}

// Steer picks the compass direction with the highest pathing value one
// probe away. Only open cells are considered and the value must exceed
// the unvisited sentinel. Ties go to the earliest direction in
// world.AllDirections order.
func Steer(e Enemy, field *pathing.Field, g *world.Grid, cfg AIConfig, p Personality, rng *rand.Rand) (world.Direction, bool) {
	best := world.North
	bestValue := float64(pathing.Unvisited)
	found := false

	for _, d := range world.AllDirections() {
		ux, uy := d.Unit()
		px := e.X + ux*cfg.ProbeDistance
		py := e.Y + uy*cfg.ProbeDistance
		if !g.IsOpenAt(px, py) {
			continue
		}
		raw := field.AtPosition(px, py)
		if raw <= pathing.Unvisited {
			continue
		}

		value := float64(raw)
		if p.ErraticBonus > 0 && rng.Float64() < p.ErraticChance {
			value += rng.Float64() * p.ErraticBonus
		}
		if value > bestValue {
			best, bestValue, found = d, value, true
		}
	}
	return best, found
}

// UpdateEnemy advances one enemy by a tick.
func UpdateEnemy(e Enemy, field *pathing.Field, g *world.Grid, cfg AIConfig, rng *rand.Rand) Enemy {
	if !e.Enabled {
		return e
	}
	p := PersonalityOf(cfg.Personalities, e.Kind)

	if d, ok := Steer(e, field, g, cfg, p, rng); ok {
		ux, uy := d.Unit()
		e.VX += ux * p.Impulse
		e.VY += uy * p.Impulse
	}

	if rng.Float64() < p.WanderChance {
		a := rng.Float64() * 2 * math.Pi
		e.VX += math.Cos(a) * p.WanderImpulse
		e.VY += math.Sin(a) * p.WanderImpulse
	}

	nx, ny := e.X+e.VX, e.Y+e.VY
	if g.IsOpenAt(nx, ny) {
		e.X, e.Y = nx, ny
	} else {
		e.VX, e.VY = -e.VX, -e.VY
	}

	e.VX *= cfg.Friction
	e.VY *= cfg.Friction
	return e
}

// Distance is the Euclidean distance between two points
func Distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

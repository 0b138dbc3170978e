package gameplay

import (
	"github.com/sirupsen/logrus"

	"torchmaze/pkg/game/entities"
	"torchmaze/pkg/game/state"
)

// updateEnemies moves every enabled enemy up the pathing field
func (e *Engine) updateEnemies(g *state.Game) {
	for i := range g.Enemies {
		g.Enemies[i] = entities.UpdateEnemy(g.Enemies[i], g.Field, g.Grid, e.AI, g.Rand)
	}
}

// checkContacts applies enemy damage. Damage is not reapplied while the
// tint from the previous hit is still showing.
func (e *Engine) checkContacts(g *state.Game) {
	if g.DamageTint > 0 {
		return
	}
	p := &g.Player
	for _, en := range g.Enemies {
		if !en.Enabled {
			continue
		}
		if entities.Distance(p.X, p.Y, en.X, en.Y) >= e.Tuning.ContactRadius {
			continue
		}

		p.Health -= e.Tuning.ContactDamage
		if p.Health < 0 {
			p.Health = 0
		}
		g.DamageTint = e.Tuning.DamageTintTicks
		g.Emit(state.CueDamage)
		logMessage(g, "DAMAGE", e.Tuning.ContactDamage)
		e.log.WithFields(logrus.Fields{
			"enemy":  en.Kind.String(),
			"health": p.Health,
		}).Info("player damaged")
		return
	}
}

// collectPickups heals the player for each active pickup in reach.
func (e *Engine) collectPickups(g *state.Game) {
	p := &g.Player
	for i := range g.Pickups {
		pk := &g.Pickups[i]
		if !pk.Active || entities.Distance(p.X, p.Y, pk.X, pk.Y) >= e.Tuning.PickupRadius {
			continue
		}
		pk.Active = false
		p.Health += e.Tuning.PickupHeal
		if p.Health > state.MaxHealth {
			p.Health = state.MaxHealth
		}
		g.Emit(state.CuePickup)
		logMessage(g, "PICKUP", e.Tuning.PickupHeal)
		e.log.WithFields(logrus.Fields{
			"pickup": i,
			"health": p.Health,
		}).Info("pickup collected")
	}
}

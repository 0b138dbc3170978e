package gameplay

import (
	"github.com/sirupsen/logrus"

	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/entities"
	"torchmaze/pkg/game/pathing"
	"torchmaze/pkg/game/state"
)

// Tick advances the simulation by one fixed step. Ended sessions are frozen.
func (e *Engine) Tick(g *state.Game) {
	if g.Status.Terminal() {
		return
	}

	now := e.Now()
	if g.Started.IsZero() {
		g.Started = now
	}
	g.Tick++
	g.Elapsed = now.Sub(g.Started).Seconds()
	if g.DamageTint > 0 {
		g.DamageTint--
	}
	if g.Field == nil {
		e.rebuildField(g)
	}

	e.updatePhysics(g)
	e.updateTorch(g)
	e.updateEnemies(g)
	e.checkContacts(g)
	e.collectPickups(g)
	e.updateGate(g)
	e.reveal(g)
	e.rebuildField(g)
	e.checkTransitions(g)
}

// updateGate fires the one-shot gate latch once enough time has passed.
func (e *Engine) updateGate(g *state.Game) {
	if g.Elapsed < e.Tuning.GateOpenAfter {
		return
	}
	if !g.Grid.OpenGate() {
		return
	}
	g.Gate.Open = true
	g.Emit(state.CueGateOpen)
	logMessage(g, "GATE_OPENED")
	e.log.WithField("elapsed", g.Elapsed).Info("gate opened")
}

// reveal marks cells in the player's line of sight as explored
func (e *Engine) reveal(g *state.Game) {
	row, col := g.PlayerCell()
	for _, rc := range world.VisibleCells(g.Grid, row, col, world.FOVRadius) {
		g.Explore(rc[0], rc[1])
	}
}

func (e *Engine) rebuildField(g *state.Game) {
	g.Field = pathing.RebuildAt(g.Grid, g.Player.X, g.Player.Y)
}

// checkTransitions moves the state machine out of Playing.
func (e *Engine) checkTransitions(g *state.Game) {
	switch {
	case g.Player.Health <= 0:
		g.Player.Health = 0
		e.setStatus(g, state.StatusGameOver)
		g.Emit(state.CueLost)
	case g.Gate.Open && entities.Distance(g.Player.X, g.Player.Y, g.Gate.X, g.Gate.Y) < e.Tuning.WinRadius:
		e.setStatus(g, state.StatusWon)
		g.Emit(state.CueWon)
	}
}

func (e *Engine) setStatus(g *state.Game, s state.Status) {
	e.log.WithFields(logrus.Fields{
		"from":    g.Status.String(),
		"to":      s.String(),
		"elapsed": g.Elapsed,
	}).Info("status changed")
	g.Status = s
}

// Package loop drives one session: each tick polls the display, applies
// input, advances the simulation, renders and presents the frame and plays
// the tick's sound cues.
package loop

import (
	"github.com/sirupsen/logrus"

	"torchmaze/pkg/engine/logging"
	"torchmaze/pkg/game/gameplay"
	"torchmaze/pkg/game/render"
	"torchmaze/pkg/game/renderer"
	"torchmaze/pkg/game/state"
)

// CuePlayer turns the cues of one tick into sound
type CuePlayer interface {
	Play(cues []state.Cue)
}

// Runner owns the per-tick order of work
type Runner struct {
	Display renderer.Display
	Engine  *gameplay.Engine
	View    *render.View
	Game    *state.Game
	Audio   CuePlayer // may be nil

	log      *logrus.Entry
	ticks    int
	last     *render.Frame
	lastSeen state.Status
}

// New returns a runner for g
func New(d renderer.Display, e *gameplay.Engine, v *render.View, g *state.Game, audio CuePlayer) *Runner {
	return &Runner{
		Display:  d,
		Engine:   e,
		View:     v,
		Game:     g,
		Audio:    audio,
		log:      logging.Component("loop"),
		lastSeen: g.Status,
	}
}

// Step runs one tick. It returns true once the player has asked to quit;
// an ended session keeps presenting its final frame until then.
func (r *Runner) Step() bool {
	quit := false
	for _, intent := range r.Display.PollIntents() {
		if r.Engine.ProcessIntent(r.Game, intent) {
			quit = true
		}
	}
	if quit {
		r.log.WithFields(logrus.Fields{"ticks": r.ticks, "status": r.Game.Status}).Info("quit requested")
		return true
	}

	dx, dy := r.Display.MouseDelta()
	r.Engine.ApplyMouse(r.Game, dx, dy)
	r.Engine.Tick(r.Game)
	r.ticks++

	cols, rows := r.Display.ViewportSize()
	r.last = r.View.Render(r.Game, cols, rows)
	r.Display.Present(r.last)

	cues := r.Game.DrainCues()
	if r.Audio != nil {
		r.Audio.Play(cues)
	}

	if r.Game.Status != r.lastSeen {
		r.log.WithFields(logrus.Fields{"from": r.lastSeen, "to": r.Game.Status, "tick": r.Game.Tick}).Debug("session status")
		r.lastSeen = r.Game.Status
	}
	return false
}

// Run hands Step to the display's own clock
func (r *Runner) Run() error {
	return r.Display.Run(r.Step)
}

// Ticks returns how many simulation steps have run
func (r *Runner) Ticks() int {
	return r.ticks
}

// LastFrame returns the most recently presented frame, or nil before the
// first tick.
func (r *Runner) LastFrame() *render.Frame {
	return r.last
}

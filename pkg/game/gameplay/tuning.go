// Package gameplay runs the per-tick simulation: intents, physics, enemy
// AI, contacts and the session state machine.
package gameplay

import (
	"time"

	"github.com/sirupsen/logrus"

	"torchmaze/pkg/engine/logging"
	"torchmaze/pkg/game/entities"
	"torchmaze/pkg/game/state"
	"torchmaze/pkg/game/text"
)

// Tuning holds every gameplay constant
type Tuning struct {
	MoveSpeed        float64
	RotateSpeed      float64
	PitchStep        float64
	PitchLimit       float64
	JumpVelocity     float64
	Gravity          float64
	MouseSensitivity float64

	ContactRadius   float64
	ContactDamage   int
	DamageTintTicks int

	PickupRadius float64
	PickupHeal   int

	GateOpenAfter float64 // seconds of elapsed time
	WinRadius     float64

	BatteryDrain    float64 // per tick while the torch is on
	BatteryRecharge float64 // per tick while it is off
	BatteryLow      float64 // warn when the battery drops below this
	FlickerBase     float64 // flicker amplitude at full battery
	FlickerGrowth   float64 // extra amplitude at empty battery

	MessageTicks int // how long the latest message stays on screen
}

// DefaultTuning returns the stock constants
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:        0.04,
		RotateSpeed:      0.06,
		PitchStep:        0.2,
		PitchLimit:       1.2,
		JumpVelocity:     1.5,
		Gravity:          0.3,
		MouseSensitivity: 0.003,

		ContactRadius:   0.5,
		ContactDamage:   10,
		DamageTintTicks: 8,

		PickupRadius: 0.5,
		PickupHeal:   25,

		GateOpenAfter: 120,
		WinRadius:     0.7,

		BatteryDrain:    0.0003,
		BatteryRecharge: 0.0002,
		BatteryLow:      0.2,
		FlickerBase:     0.02,
		FlickerGrowth:   0.3,

		MessageTicks: 100,
	}
}

// Engine applies the rules to a session
type Engine struct {
	Tuning Tuning
	AI     entities.AIConfig
	Now    func() time.Time // wall clock the gate timer reads

	log *logrus.Entry
}

// New returns an engine with the given constants
func New(t Tuning, ai entities.AIConfig) *Engine {
	return &Engine{
		Tuning: t,
		AI:     ai,
		Now:    time.Now,
		log:    logging.Component("gameplay"),
	}
}

// logMessage adds a localised line to the session log
func logMessage(g *state.Game, key string, args ...any) {
	g.AddMessage(text.Getf(key, args...))
}

// GateRemaining is the time left before the gate opens
func (t Tuning) GateRemaining(g *state.Game) float64 {
	if g.Gate.Open {
		return 0
	}
	return max(0, t.GateOpenAfter-g.Elapsed)
}

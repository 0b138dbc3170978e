package entities

import "torchmaze/pkg/game/atlas"

// Kind selects an enemy's personality and sprite
type Kind int

const (
	KindRed    Kind = iota // Relentless chaser
	KindPink               // Quick to pick up the scent
	KindCyan               // Slow, drifts more
	KindOrange             // Erratic, randomly favours directions
)

// Personality holds the tuning for one enemy kind
type Personality struct {
	Name          string
	Impulse       float64 // velocity added towards the best direction each tick
	ErraticBonus  float64 // max bonus added to a favoured direction's score
	ErraticChance float64 // probability each direction is favoured this tick
	WanderChance  float64 // probability of a random impulse each tick
	WanderImpulse float64 // magnitude of that impulse
	Sprite        atlas.SpriteKind
}

// Personalities maps enemy kinds to their tuning
var Personalities = map[Kind]Personality{
	KindRed: {
		Name:          "Red",
		Impulse:       0.004,
		WanderChance:  0.02,
		WanderImpulse: 0.01,
		Sprite:        atlas.SpriteGhostRed,
	},
	KindPink: {
		Name:          "Pink",
		Impulse:       0.005,
		WanderChance:  0.02,
		WanderImpulse: 0.01,
		Sprite:        atlas.SpriteGhostPink,
	},
	KindCyan: {
		Name:          "Cyan",
		Impulse:       0.003,
		WanderChance:  0.04,
		WanderImpulse: 0.012,
		Sprite:        atlas.SpriteGhostCyan,
	},
	KindOrange: {
		Name:          "Orange",
		Impulse:       0.004,
		ErraticBonus:  3,
		ErraticChance: 0.3,
		WanderChance:  0.03,
		WanderImpulse: 0.01,
		Sprite:        atlas.SpriteGhostOrange,
	},
}

// PersonalityOf returns the tuning for a kind, falling back to KindRed.
func PersonalityOf(table map[Kind]Personality, k Kind) Personality {
	if p, ok := table[k]; ok {
		return p
	}
	return Personalities[KindRed]
}

func (k Kind) String() string {
	return PersonalityOf(Personalities, k).Name
}

// Enemy is a ghost roaming the maze
type Enemy struct {
	X, Y    float64
	VX, VY  float64
	Kind    Kind
	Enabled bool // disabled enemies are skipped by AI, collision and rendering
}

// NewEnemy returns an enabled enemy at rest
func NewEnemy(x, y float64, k Kind) Enemy {
	return Enemy{X: x, Y: y, Kind: k, Enabled: true}
}

// Pickup restores health once
type Pickup struct {
	X, Y   float64
	Active bool
}

// NewPickup returns an active pickup
func NewPickup(x, y float64) Pickup {
	return Pickup{X: x, Y: y, Active: true}
}

// Gate is the exit. It opens once and, when open, reaching it wins.
type Gate struct {
	X, Y float64
	Open bool
}

// Sprite returns the bitmap kind for the gate's current state
func (g Gate) Sprite() atlas.SpriteKind {
	if g.Open {
		return atlas.SpriteGateOpen
	}
	return atlas.SpriteGateClosed
}

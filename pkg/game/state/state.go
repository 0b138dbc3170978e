package state

import (
	"math/rand"
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"

	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/entities"
	"torchmaze/pkg/game/pathing"
)

// Status is the session state machine
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusGameOver:
		return "game over"
	case StatusWon:
		return "won"
	default:
		return "playing"
	}
}

// Terminal reports whether the session has ended
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// MaxHealth is the top of the health range
const MaxHealth = 100

// Player is the camera and the body it rides on
type Player struct {
	X, Y      float64
	Z         float64 // jump height
	ZVelocity float64
	Heading   float64 // radians, not normalised
	Pitch     float64 // radians, clamped by gameplay
	Health    int
}

// Torch is the battery-powered light the player carries
type Torch struct {
	Enabled bool
	Battery float64 // 0..1
	Flicker float64 // 0..1 multiplier applied to the beam
}

// Cue is a one-tick event the audio layer turns into a sound
type Cue int

const (
	CueDamage Cue = iota
	CuePickup
	CueGateOpen
	CueWon
	CueLost
)

// Message is a log line stamped with the tick it was added on
type Message struct {
	Text string
	Tick int
}

// CellPos is a (row, col) grid coordinate
type CellPos struct {
	Row, Col int
}

// Game holds everything one session mutates.
type Game struct {
	Grid    *world.Grid
	Player  Player
	Enemies []entities.Enemy
	Pickups []entities.Pickup
	Gate    entities.Gate
	Torch   Torch

	// Field is the pathing field from the latest tick
	Field *pathing.Field

	Status     Status
	Started    time.Time // wall clock at the first tick
	Elapsed    float64   // wall-clock seconds since Started
	Tick       int
	DamageTint int // ticks of red tint remaining

	Messages []Message
	Explored mapset.Set[CellPos]

	Rand *rand.Rand

	cues mapset.Set[Cue]
}

// NewGame creates a session on grid with the player at (x, y).
func NewGame(grid *world.Grid, x, y float64, rng *rand.Rand) *Game {
	return &Game{
		Grid: grid,
		Player: Player{
			X:      x,
			Y:      y,
			Health: MaxHealth,
		},
		Torch:    Torch{Enabled: true, Battery: 1, Flicker: 1},
		Messages: make([]Message, 0),
		Explored: mapset.New[CellPos](),
		Rand:     rng,
		cues:     mapset.New[Cue](),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, Message{Text: msg, Tick: g.Tick})

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// LatestMessage returns the newest message if it is younger than maxAge ticks
func (g *Game) LatestMessage(maxAge int) (string, bool) {
	if len(g.Messages) == 0 {
		return "", false
	}
	m := g.Messages[len(g.Messages)-1]
	if g.Tick-m.Tick > maxAge {
		return "", false
	}
	return m.Text, true
}

// Emit queues a cue for the end of the tick
func (g *Game) Emit(c Cue) {
	g.cues.Put(c)
}

// DrainCues returns the queued cues in a stable order and clears them.
func (g *Game) DrainCues() []Cue {
	out := make([]Cue, 0, g.cues.Size())
	g.cues.Each(func(c Cue) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	g.cues = mapset.New[Cue]()
	return out
}

// Explore marks a cell as seen for the minimap
func (g *Game) Explore(row, col int) {
	g.Explored.Put(CellPos{Row: row, Col: col})
}

// IsExplored reports whether the minimap may show a cell
func (g *Game) IsExplored(row, col int) bool {
	return g.Explored.Has(CellPos{Row: row, Col: col})
}

// PlayerCell returns the cell the player stands in
func (g *Game) PlayerCell() (row, col int) {
	return world.CellAt(g.Player.X, g.Player.Y)
}

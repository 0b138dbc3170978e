// Package setup builds the starting session: the fixed maze, spawn lists
// and the initial player state.
package setup

import (
	"math/rand"

	"github.com/pkg/errors"

	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/entities"
	"torchmaze/pkg/game/state"
)

// EnemySpawn places one enemy at session start
type EnemySpawn struct {
	X, Y float64
	Kind entities.Kind
}

// Point is a world position
type Point struct {
	X, Y float64
}

// Layout is everything a session is built from
type Layout struct {
	Map     []string
	Start   Point
	Heading float64
	Enemies []EnemySpawn
	Pickups []Point
}

// DefaultLayout is the maze the game ships with.
var DefaultLayout = Layout{
	Map: []string{
		"################",
		"#..AAA.....D...#",
		"#..AAA.....D...#",
		"#..........D...#",
		"#.CCCC.BB......#",
		"#.CCCC.BB..EEE.#",
		"#..........EEE.#",
		"#..EEE.........#",
		"#..EEE..DDDD...#",
		"#.......D......#",
		"#.BB....D..AA..#",
		"#.BB.......AA..#",
		"#......CC......#",
		"#......CC....G.#",
		"#..............#",
		"################",
	},
	Start: Point{X: 1.5, Y: 1.5},
	Enemies: []EnemySpawn{
		{X: 13.5, Y: 3.5, Kind: entities.KindRed},
		{X: 7.5, Y: 9.5, Kind: entities.KindPink},
		{X: 2.5, Y: 13.5, Kind: entities.KindCyan},
		{X: 12.5, Y: 7.5, Kind: entities.KindOrange},
	},
	Pickups: []Point{
		{X: 6.5, Y: 3.5},
		{X: 14.5, Y: 9.5},
		{X: 4.5, Y: 12.5},
	},
}

// NewSession parses the layout and returns a ready session.
func NewSession(layout Layout, rng *rand.Rand) (*state.Game, error) {
	grid, err := world.NewGrid(layout.Map)
	if err != nil {
		return nil, errors.Wrap(err, "parse map")
	}
	if err := layout.Validate(grid); err != nil {
		return nil, err
	}

	g := state.NewGame(grid, layout.Start.X, layout.Start.Y, rng)
	g.Player.Heading = layout.Heading

	for _, s := range layout.Enemies {
		g.Enemies = append(g.Enemies, entities.NewEnemy(s.X, s.Y, s.Kind))
	}
	for _, p := range layout.Pickups {
		g.Pickups = append(g.Pickups, entities.NewPickup(p.X, p.Y))
	}
	if row, col, ok := grid.GatePosition(); ok {
		g.Gate = entities.Gate{X: float64(col) + 0.5, Y: float64(row) + 0.5}
	}
	return g, nil
}

// Validate checks that every spawn stands on an open cell and that the
// gate can be reached from the start once it opens.
func (l Layout) Validate(grid *world.Grid) error {
	if !grid.IsOpenAt(l.Start.X, l.Start.Y) {
		return errors.Errorf("start (%.1f, %.1f) is not on an open cell", l.Start.X, l.Start.Y)
	}
	for i, s := range l.Enemies {
		if !grid.IsOpenAt(s.X, s.Y) {
			return errors.Errorf("enemy %d at (%.1f, %.1f) is not on an open cell", i, s.X, s.Y)
		}
	}
	for i, p := range l.Pickups {
		if !grid.IsOpenAt(p.X, p.Y) {
			return errors.Errorf("pickup %d at (%.1f, %.1f) is not on an open cell", i, p.X, p.Y)
		}
	}

	gateRow, gateCol, ok := grid.GatePosition()
	if !ok {
		return errors.New("map has no gate")
	}
	startRow, startCol := world.CellAt(l.Start.X, l.Start.Y)
	reachable := reachableCells(grid, startRow, startCol)
	for _, d := range world.CardinalDirections() {
		dc, dr := d.Delta()
		if reachable.Has(state.CellPos{Row: gateRow + dr, Col: gateCol + dc}) {
			return nil
		}
	}
	return errors.Errorf("gate %d:%d is unreachable from the start", gateRow, gateCol)
}

package setup

import (
	"math/rand"
	"testing"

	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/state"
)

func TestNewSession_DefaultLayout(t *testing.T) {
	g, err := NewSession(DefaultLayout, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSession(DefaultLayout) error: %v", err)
	}
	if g.Grid.Rows() != 16 || g.Grid.Cols() != 16 {
		t.Errorf("grid = %dx%d, want 16x16", g.Grid.Rows(), g.Grid.Cols())
	}
	if len(g.Enemies) != len(DefaultLayout.Enemies) || len(g.Pickups) != len(DefaultLayout.Pickups) {
		t.Errorf("spawned %d enemies and %d pickups", len(g.Enemies), len(g.Pickups))
	}
	for i, e := range g.Enemies {
		if !e.Enabled {
			t.Errorf("enemy %d spawned disabled", i)
		}
	}
	if g.Gate.X != 13.5 || g.Gate.Y != 13.5 || g.Gate.Open {
		t.Errorf("Gate = %+v, want closed at (13.5, 13.5)", g.Gate)
	}
	if g.Player.X != 1.5 || g.Player.Y != 1.5 {
		t.Errorf("Player at (%v, %v), want (1.5, 1.5)", g.Player.X, g.Player.Y)
	}
}

func TestLayout_Validate(t *testing.T) {
	base := Layout{
		Map: []string{
			"######",
			"#..#.#",
			"#..G.#",
			"######",
		},
		Start: Point{X: 1.5, Y: 1.5},
	}

	tests := []struct {
		name    string
		mutate  func(l *Layout)
		wantErr bool
	}{
		{"valid", func(l *Layout) {}, false},
		{"start in wall", func(l *Layout) { l.Start = Point{X: 0.5, Y: 0.5} }, true},
		{"enemy in wall", func(l *Layout) { l.Enemies = []EnemySpawn{{X: 3.5, Y: 1.5}} }, true},
		{"pickup in wall", func(l *Layout) { l.Pickups = []Point{{X: 5.5, Y: 1.5}} }, true},
		{"no gate", func(l *Layout) {
			l.Map = []string{"####", "#..#", "####"}
		}, true},
		{"gate walled off", func(l *Layout) {
			l.Map = []string{
				"######",
				"#.#..#",
				"#.#G.#",
				"######",
			}
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := base
			tt.mutate(&l)
			_, err := NewSession(l, rand.New(rand.NewSource(1)))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSession() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReachableCells(t *testing.T) {
	g, err := world.NewGrid([]string{
		"#####",
		"#.#.#",
		"#####",
	})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	r := reachableCells(g, 1, 1)
	if !r.Has(state.CellPos{Row: 1, Col: 1}) || r.Has(state.CellPos{Row: 1, Col: 3}) || r.Size() != 1 {
		t.Errorf("reachableCells size = %d, want only the start", r.Size())
	}
}

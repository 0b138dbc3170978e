package entities

import (
	"math"
	"math/rand"
	"testing"

	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/pathing"
)

func makeGrid(t *testing.T, lines ...string) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(lines)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	return g
}

// calmConfig returns a config whose enemies never wander.
func calmConfig() AIConfig {
	cfg := DefaultAIConfig()
	p := Personalities[KindRed]
	p.WanderChance = 0
	cfg.Personalities = map[Kind]Personality{KindRed: p}
	return cfg
}

func pillarRoom(t *testing.T) *world.Grid {
	return makeGrid(t,
		"#######",
		"#.....#",
		"#..A..#",
		"#.....#",
		"#######",
	)
}

func TestSteer_TieGoesToFirstDirection(t *testing.T) {
	g := pillarRoom(t)
	field := pathing.Rebuild(g, 2, 4)
	e := NewEnemy(2.5, 2.5, KindRed)
	cfg := calmConfig()

	d, ok := Steer(e, field, g, cfg, cfg.Personalities[KindRed], rand.New(rand.NewSource(1)))
	if !ok || d != world.NorthEast {
		t.Errorf("Steer() = %v, %v, want NorthEast, true", d, ok)
	}
}

func TestSteer_ErraticKindVaries(t *testing.T) {
	g := pillarRoom(t)
	field := pathing.Rebuild(g, 2, 4)
	e := NewEnemy(2.5, 2.5, KindOrange)
	p := Personalities[KindOrange]
	p.ErraticChance = 1

	varied := false
	for seed := int64(0); seed < 50; seed++ {
		d, ok := Steer(e, field, g, DefaultAIConfig(), p, rand.New(rand.NewSource(seed)))
		if !ok {
			t.Fatalf("Steer(seed %d) found no direction", seed)
		}
		if d != world.NorthEast {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("erratic Steer always picked the deterministic winner")
	}
}

func TestUpdateEnemy_IsolatedOnlyWanders(t *testing.T) {
	g := makeGrid(t,
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
	)
	field := pathing.Rebuild(g, 1, 1)
	rng := rand.New(rand.NewSource(3))

	calm := NewEnemy(4.5, 1.5, KindRed)
	cfg := calmConfig()
	for i := 0; i < 200; i++ {
		calm = UpdateEnemy(calm, field, g, cfg, rng)
	}
	if calm.X != 4.5 || calm.Y != 1.5 {
		t.Errorf("isolated calm enemy moved to (%v, %v)", calm.X, calm.Y)
	}

	wander := cfg
	p := wander.Personalities[KindRed]
	p.WanderChance = 1
	wander.Personalities = map[Kind]Personality{KindRed: p}

	e := NewEnemy(4.5, 1.5, KindRed)
	moved := false
	for i := 0; i < 200; i++ {
		e = UpdateEnemy(e, field, g, wander, rng)
		if e.X < 4 {
			t.Fatalf("isolated enemy left its pocket: (%v, %v)", e.X, e.Y)
		}
		if e.X != 4.5 || e.Y != 1.5 {
			moved = true
		}
	}
	if !moved {
		t.Error("wandering enemy never moved")
	}
}

func TestUpdateEnemy_ClimbsTowardsPlayer(t *testing.T) {
	g := makeGrid(t,
		"############",
		"#..........#",
		"############",
	)
	field := pathing.Rebuild(g, 1, 10)
	e := NewEnemy(1.5, 1.5, KindRed)
	cfg := calmConfig()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		e = UpdateEnemy(e, field, g, cfg, rng)
	}
	if e.X <= 3 {
		t.Errorf("enemy X after 300 ticks = %v, want progress towards the player", e.X)
	}
	if !g.IsOpenAt(e.X, e.Y) {
		t.Errorf("enemy ended in a closed cell (%v, %v)", e.X, e.Y)
	}
}

func TestUpdateEnemy_ReflectsOffWalls(t *testing.T) {
	g := makeGrid(t, "####", "#..#", "####")
	cfg := calmConfig()
	e := NewEnemy(1.1, 1.5, KindRed)
	e.VX = -0.2

	got := UpdateEnemy(e, nil, g, cfg, rand.New(rand.NewSource(1)))
	if got.X != 1.1 {
		t.Errorf("X = %v, want position update skipped", got.X)
	}
	if want := 0.2 * cfg.Friction; math.Abs(got.VX-want) > 1e-9 {
		t.Errorf("VX = %v, want %v", got.VX, want)
	}
}

func TestUpdateEnemy_Disabled(t *testing.T) {
	g := makeGrid(t, "####", "#..#", "####")
	e := Enemy{X: 1.5, Y: 1.5, VX: 0.1, Kind: KindRed}
	if got := UpdateEnemy(e, nil, g, DefaultAIConfig(), rand.New(rand.NewSource(1))); got != e {
		t.Errorf("UpdateEnemy(disabled) = %+v, want unchanged %+v", got, e)
	}
}

func TestPersonalityOf_Fallback(t *testing.T) {
	if got := PersonalityOf(Personalities, Kind(42)); got.Name != "Red" {
		t.Errorf("PersonalityOf(42).Name = %q, want Red", got.Name)
	}
	if got := KindOrange.String(); got != "Orange" {
		t.Errorf("KindOrange.String() = %q, want Orange", got)
	}
}

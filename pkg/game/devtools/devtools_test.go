package devtools

import (
	"bytes"
	"math/rand"
	"os"
	"strings"
	"testing"

	"torchmaze/pkg/engine/style"
	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/entities"
	"torchmaze/pkg/game/render"
	"torchmaze/pkg/game/state"
)

func makeGame(t *testing.T) *state.Game {
	t.Helper()
	grid, err := world.NewGrid([]string{
		"#####",
		"#..G#",
		"#.A.#",
		"#####",
	})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	g := state.NewGame(grid, 1.5, 1.5, rand.New(rand.NewSource(1)))
	g.Pickups = []entities.Pickup{entities.NewPickup(2.5, 1.5)}
	g.Enemies = []entities.Enemy{entities.NewEnemy(3.5, 2.5, entities.KindCyan)}
	g.Gate = entities.Gate{X: 3.5, Y: 1.5}
	return g
}

func TestDumpState(t *testing.T) {
	g := makeGame(t)
	g.Explore(1, 1)
	g.Explore(1, 2)

	var b bytes.Buffer
	if err := DumpState(&b, g); err != nil {
		t.Fatalf("DumpState error: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"status: playing",
		"player_cell: 1,1",
		"#@+G#",  // full layout
		"?@+??",  // explored only
		"#.A.#",
		"kind: Cyan row: 2 col: 3",
		"row: 1 col: 3 open: false",
		"Quit: ctrl_c, escape, x",
		"Toggle Light: f",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DumpState output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpState_NoGrid(t *testing.T) {
	if err := DumpState(&bytes.Buffer{}, &state.Game{}); err == nil {
		t.Errorf("DumpState(no grid) error = nil, want an error")
	}
}

func TestWriteFrameHTML(t *testing.T) {
	f := render.NewFrame(3, 1)
	f.WriteText(0, 0, "<a>", style.New(style.BrightRed, style.Bold))
	f.Status = "HP & more"

	var b bytes.Buffer
	if err := WriteFrameHTML(&b, f); err != nil {
		t.Fatalf("WriteFrameHTML error: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		`<span style="color:#ff5555;font-weight:bold">&lt;a&gt;</span>`,
		"HP &amp; more",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteFrameHTML output missing %q:\n%s", want, out)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	g := makeGame(t)

	paths, err := Save(dir, g, render.NewFrame(4, 2))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Save wrote %v, want a map and a screenshot", paths)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Stat(%s) error: %v", p, err)
		}
	}

	paths, err = Save(dir, g, nil)
	if err != nil || len(paths) != 1 {
		t.Errorf("Save(nil frame) = %v, %v, want only the map", paths, err)
	}
}

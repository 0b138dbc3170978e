package state

import (
	"fmt"
	"math/rand"
	"testing"

	"torchmaze/pkg/engine/world"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g, err := world.NewGrid([]string{"####", "#..#", "####"})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	return NewGame(g, 1.5, 1.5, rand.New(rand.NewSource(1)))
}

func TestNewGame_Defaults(t *testing.T) {
	g := newGame(t)
	if g.Player.Health != MaxHealth {
		t.Errorf("Health = %d, want %d", g.Player.Health, MaxHealth)
	}
	if !g.Torch.Enabled || g.Torch.Battery != 1 {
		t.Errorf("Torch = %+v, want enabled and full", g.Torch)
	}
	if g.Status != StatusPlaying || g.Status.Terminal() {
		t.Errorf("Status = %v, want playing", g.Status)
	}
	if row, col := g.PlayerCell(); row != 1 || col != 1 {
		t.Errorf("PlayerCell() = %d, %d, want 1, 1", row, col)
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := newGame(t)
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(g.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if g.Messages[0].Text != "m3" || g.Messages[4].Text != "m7" {
		t.Errorf("Messages = %v, want m3..m7", g.Messages)
	}
}

func TestLatestMessage_Expires(t *testing.T) {
	g := newGame(t)
	if _, ok := g.LatestMessage(10); ok {
		t.Error("LatestMessage on empty log returned ok")
	}
	g.AddMessage("hello")
	g.Tick += 10
	if msg, ok := g.LatestMessage(10); !ok || msg != "hello" {
		t.Errorf("LatestMessage(10) = %q, %v, want hello, true", msg, ok)
	}
	g.Tick++
	if _, ok := g.LatestMessage(10); ok {
		t.Error("LatestMessage returned an expired message")
	}
}

func TestDrainCues(t *testing.T) {
	g := newGame(t)
	g.Emit(CueWon)
	g.Emit(CueDamage)
	g.Emit(CueDamage)
	cues := g.DrainCues()
	if len(cues) != 2 || cues[0] != CueDamage || cues[1] != CueWon {
		t.Errorf("DrainCues() = %v, want [damage won]", cues)
	}
	if again := g.DrainCues(); len(again) != 0 {
		t.Errorf("second DrainCues() = %v, want empty", again)
	}
}

func TestExplore(t *testing.T) {
	g := newGame(t)
	if g.IsExplored(1, 2) {
		t.Error("IsExplored before Explore = true")
	}
	g.Explore(1, 2)
	if !g.IsExplored(1, 2) {
		t.Error("IsExplored after Explore = false")
	}
}

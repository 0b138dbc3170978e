package renderer

import (
	"testing"
	"time"
)

func TestRunFixedTick_StopsWhenStepReturnsTrue(t *testing.T) {
	calls := 0
	err := RunFixedTick(func() bool {
		calls++
		return calls == 3
	}, time.Millisecond)
	if err != nil {
		t.Fatalf("RunFixedTick error: %v", err)
	}
	if calls != 3 {
		t.Errorf("step called %d times, want 3", calls)
	}
}

func TestRunFixedTick_ZeroDelay(t *testing.T) {
	calls := 0
	if err := RunFixedTick(func() bool { calls++; return true }, 0); err != nil {
		t.Fatalf("RunFixedTick error: %v", err)
	}
	if calls != 1 {
		t.Errorf("step called %d times, want 1", calls)
	}
}

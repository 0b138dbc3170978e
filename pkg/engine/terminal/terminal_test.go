package terminal

import (
	"os"
	"testing"
)

func TestSizeOf_FallsBackForNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe error: %v", err)
	}
	defer r.Close()
	defer w.Close()

	width, height := SizeOf(int(r.Fd()))
	if width != DefaultWidth || height != DefaultHeight {
		t.Errorf("SizeOf(pipe) = %dx%d, want %dx%d", width, height, DefaultWidth, DefaultHeight)
	}
}

func TestEnterRaw_RejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe error: %v", err)
	}
	defer r.Close()
	defer w.Close()

	restore, err := EnterRaw(int(r.Fd()))
	if err == nil {
		t.Errorf("EnterRaw(pipe) error = nil, want an error")
	}
	if restore != nil {
		t.Errorf("EnterRaw(pipe) returned a restore func on error")
	}
}

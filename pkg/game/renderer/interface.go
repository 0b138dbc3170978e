package renderer

import (
	"torchmaze/pkg/engine/input"
	"torchmaze/pkg/game/render"
)

// Display defines the interface for game output backends.
// Implementations include the ANSI text block writer, tcell and Ebiten.
type Display interface {
	// Init takes over the terminal or opens the window
	Init() error

	// Close restores whatever Init changed
	Close()

	// ViewportSize returns the usable size in character cells, status line
	// included
	ViewportSize() (cols, rows int)

	// PollIntents returns every intent received since the last call. It
	// never blocks.
	PollIntents() []input.Intent

	// MouseDelta returns the pointer movement since the last call
	MouseDelta() (dx, dy float64)

	// Present shows a finished frame
	Present(f *render.Frame)

	// Run calls step once per simulation tick until it returns true or
	// the backend is closed by the user
	Run(step func() bool) error
}

package terminal

import (
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Control sequences used by the text backends
const (
	CursorHome      = "\x1b[H"
	ClearScreen     = "\x1b[2J"
	HideCursor      = "\x1b[?25l"
	ShowCursor      = "\x1b[?25h"
	AltScreenOn     = "\x1b[?1049h"
	AltScreenOff    = "\x1b[?1049l"
	MouseTrackOn    = "\x1b[?1003h\x1b[?1006h"
	MouseTrackOff   = "\x1b[?1006l\x1b[?1003l"
	ResetAttributes = "\x1b[0m"
)

// SizeOf returns the width and height of the terminal on fd.
// Falls back to defaults if the size cannot be determined.
func SizeOf(fd int) (width, height int) {
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// EnterRaw switches fd to raw mode. The returned function restores the
// previous mode.
func EnterRaw(fd int) (restore func() error, err error) {
	if !term.IsTerminal(fd) {
		return nil, errors.Errorf("fd %d is not a terminal", fd)
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "enter raw mode")
	}
	return func() error {
		return term.Restore(fd, old)
	}, nil
}

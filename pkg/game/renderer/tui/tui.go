// Package tui is the ANSI text block backend. Each frame is written as one
// block: cursor home, the styled scene rows, then the plain status line.
package tui

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"

	"torchmaze/pkg/engine/input"
	"torchmaze/pkg/engine/logging"
	"torchmaze/pkg/engine/style"
	"torchmaze/pkg/engine/terminal"
	"torchmaze/pkg/game/render"
	"torchmaze/pkg/game/renderer"
)

// eventBuffer is how many decoded events the reader may queue between ticks
const eventBuffer = 256

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in    *os.File
	out   io.Writer
	mouse bool
	delay time.Duration

	restore func() error
	events  chan input.Event
	log     *logrus.Entry

	mu         sync.Mutex
	dx, dy     float64
	lastX      int
	lastY      int
	havePoint  bool
	lastCols   int
	lastRows   int
	styleCache map[style.Style]color.Style
}

// New creates a TUI renderer on stdin/stdout. mouse enables pointer
// tracking; delay is the simulation tick.
func New(mouse bool, delay time.Duration) *TUIRenderer {
	return newRenderer(os.Stdin, os.Stdout, mouse, delay)
}

func newRenderer(in *os.File, out io.Writer, mouse bool, delay time.Duration) *TUIRenderer {
	return &TUIRenderer{
		in:         in,
		out:        out,
		mouse:      mouse,
		delay:      delay,
		events:     make(chan input.Event, eventBuffer),
		log:        logging.Component("tui"),
		styleCache: make(map[style.Style]color.Style),
	}
}

// Init switches the terminal to raw mode and the alternate screen, then
// starts the stdin reader.
func (t *TUIRenderer) Init() error {
	restore, err := terminal.EnterRaw(int(t.in.Fd()))
	if err != nil {
		return err
	}
	t.restore = restore

	seq := terminal.AltScreenOn + terminal.HideCursor + terminal.ClearScreen
	if t.mouse {
		seq += terminal.MouseTrackOn
	}
	io.WriteString(t.out, seq)

	go t.readLoop()
	t.log.WithFields(logrus.Fields{"mouse": t.mouse, "tick": t.delay}).Info("terminal ready")
	return nil
}

// Close leaves the alternate screen and restores the terminal mode
func (t *TUIRenderer) Close() {
	seq := terminal.ResetAttributes + terminal.ShowCursor + terminal.AltScreenOff
	if t.mouse {
		seq = terminal.MouseTrackOff + seq
	}
	io.WriteString(t.out, seq)

	if t.restore != nil {
		if err := t.restore(); err != nil {
			t.log.WithError(err).Warn("restore terminal")
		}
		t.restore = nil
	}
}

// readLoop decodes stdin until it fails. Events that do not fit in the
// buffer are dropped.
func (t *TUIRenderer) readLoop() {
	buf := make([]byte, 256)
	var pending []byte
	for {
		n, err := t.in.Read(buf)
		if err != nil {
			t.log.WithError(err).Debug("stdin reader stopped")
			return
		}
		events, rest := input.Decode(append(pending, buf[:n]...))
		pending = rest
		for _, ev := range events {
			select {
			case t.events <- ev:
			default:
			}
		}
	}
}

// ViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) ViewportSize() (cols, rows int) {
	if f, ok := t.out.(*os.File); ok {
		return terminal.SizeOf(int(f.Fd()))
	}
	return terminal.DefaultWidth, terminal.DefaultHeight
}

// PollIntents drains the reader's queue. Mouse reports are folded into the
// delta returned by the next MouseDelta.
func (t *TUIRenderer) PollIntents() []input.Intent {
	var intents []input.Intent
	for {
		select {
		case ev := <-t.events:
			if ev.Mouse {
				t.trackPointer(ev.X, ev.Y)
				continue
			}
			if intent := input.IntentFor(input.DeviceTerminal, ev.Code); intent.Action != input.ActionNone {
				intents = append(intents, intent)
			}
		default:
			return intents
		}
	}
}

func (t *TUIRenderer) trackPointer(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.havePoint {
		t.dx += float64(x - t.lastX)
		t.dy += float64(y - t.lastY)
	}
	t.lastX, t.lastY = x, y
	t.havePoint = true
}

// MouseDelta returns the pointer movement, in cells, since the last call
func (t *TUIRenderer) MouseDelta() (dx, dy float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	dx, dy = t.dx, t.dy
	t.dx, t.dy = 0, 0
	return dx, dy
}

// Present writes f as one block. The screen is cleared first when the
// frame size changed.
func (t *TUIRenderer) Present(f *render.Frame) {
	var b strings.Builder
	if f.Cols != t.lastCols || f.Rows != t.lastRows {
		b.WriteString(terminal.ClearScreen)
		t.lastCols, t.lastRows = f.Cols, f.Rows
	}
	b.WriteString(terminal.CursorHome)
	b.WriteString(t.Encode(f))
	io.WriteString(t.out, b.String())
}

// Run drives step on a fixed ticker
func (t *TUIRenderer) Run(step func() bool) error {
	return renderer.RunFixedTick(step, t.delay)
}

// Encode renders f as styled rows joined by CRLF, followed by the status
// line padded or clipped to the frame width.
func (t *TUIRenderer) Encode(f *render.Frame) string {
	var b strings.Builder
	run := make([]rune, 0, f.Cols)
	for row := 0; row < f.Rows; row++ {
		cells := f.Row(row)
		for i := 0; i < len(cells); {
			st := cells[i].Style
			run = run[:0]
			for i < len(cells) && cells[i].Style == st {
				run = append(run, cells[i].Glyph)
				i++
			}
			b.WriteString(t.colorStyle(st).Sprint(string(run)))
		}
		b.WriteString("\r\n")
	}
	b.WriteString(fitWidth(f.Status, f.Cols))
	return b.String()
}

// colorStyle resolves a frame style to an ANSI style
func (t *TUIRenderer) colorStyle(st style.Style) color.Style {
	if cs, ok := t.styleCache[st]; ok {
		return cs
	}
	cs := ColorStyle(st)
	t.styleCache[st] = cs
	return cs
}

var fgColors = map[style.Color]color.Color{
	style.Default:       color.FgDefault,
	style.Red:           color.FgRed,
	style.BrightRed:     color.FgLightRed,
	style.Green:         color.FgGreen,
	style.BrightGreen:   color.FgLightGreen,
	style.Yellow:        color.FgYellow,
	style.BrightYellow:  color.FgLightYellow,
	style.Blue:          color.FgBlue,
	style.BrightBlue:    color.FgLightBlue,
	style.Magenta:       color.FgMagenta,
	style.BrightMagenta: color.FgLightMagenta,
	style.Cyan:          color.FgCyan,
	style.BrightCyan:    color.FgLightCyan,
	style.White:         color.FgWhite,
	style.BrightWhite:   color.FgLightWhite,
	style.Gray:          color.FgGray,
}

// ColorStyle maps a tier and color onto foreground color plus intensity.
// Near-black cells lose their hue.
func ColorStyle(st style.Style) color.Style {
	fg, ok := fgColors[st.Color]
	if !ok {
		fg = color.FgDefault
	}
	switch st.Tier {
	case style.NearBlack:
		return color.Style{color.FgGray, color.OpFuzzy}
	case style.Dim:
		return color.Style{fg, color.OpFuzzy}
	case style.Bold:
		return color.Style{fg, color.OpBold}
	default:
		return color.Style{fg}
	}
}

func fitWidth(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}

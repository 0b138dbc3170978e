// Package tcell is the cell-buffer terminal backend built on tcell. It
// decodes keys and mouse motion itself, so it works where raw escape
// parsing does not.
package tcell

import (
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"torchmaze/pkg/engine/input"
	"torchmaze/pkg/engine/logging"
	"torchmaze/pkg/engine/style"
	"torchmaze/pkg/game/render"
	"torchmaze/pkg/game/renderer"
)

const eventBuffer = 100

// Screen is a renderer.Display over a tcell screen
type Screen struct {
	screen tcell.Screen
	mouse  bool
	delay  time.Duration
	events chan tcell.Event
	log    *logrus.Entry

	mu        sync.Mutex
	dx, dy    float64
	lastX     int
	lastY     int
	havePoint bool

	styles map[style.Style]tcell.Style
}

// New returns a backend that opens the real terminal on Init
func New(mouse bool, delay time.Duration) *Screen {
	return newScreen(nil, mouse, delay)
}

func newScreen(s tcell.Screen, mouse bool, delay time.Duration) *Screen {
	return &Screen{
		screen: s,
		mouse:  mouse,
		delay:  delay,
		events: make(chan tcell.Event, eventBuffer),
		log:    logging.Component("tcell"),
		styles: make(map[style.Style]tcell.Style),
	}
}

// Init opens the screen and starts the event reader
func (s *Screen) Init() error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "create tcell screen")
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, "init tcell screen")
	}
	s.screen.HideCursor()
	if s.mouse {
		s.screen.EnableMouse(tcell.MouseMotionEvents)
	}
	s.screen.Clear()

	screen := s.screen
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case s.events <- ev:
			default:
			}
		}
	}()

	w, h := s.screen.Size()
	s.log.WithFields(logrus.Fields{"cols": w, "rows": h, "mouse": s.mouse}).Info("tcell screen ready")
	return nil
}

// Close finalises the screen; the event reader exits with it
func (s *Screen) Close() {
	if s.screen != nil {
		s.screen.Fini()
	}
}

// ViewportSize returns the screen size in cells
func (s *Screen) ViewportSize() (cols, rows int) {
	return s.screen.Size()
}

// PollIntents drains queued events without blocking
func (s *Screen) PollIntents() []input.Intent {
	var intents []input.Intent
	for {
		select {
		case ev := <-s.events:
			if intent, ok := s.handle(ev); ok {
				intents = append(intents, intent)
			}
		default:
			return intents
		}
	}
}

// handle turns one tcell event into an intent. Mouse and resize events
// update backend state and produce none.
func (s *Screen) handle(ev tcell.Event) (input.Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		code, ok := keyCode(ev)
		if !ok {
			return input.Intent{}, false
		}
		intent := input.IntentFor(input.DeviceKeyboard, code)
		return intent, intent.Action != input.ActionNone
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.trackPointer(x, y)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return input.Intent{}, false
}

// keyCode maps a tcell key to the binding alphabet
func keyCode(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up", true
	case tcell.KeyDown:
		return "arrow_down", true
	case tcell.KeyLeft:
		return "arrow_left", true
	case tcell.KeyRight:
		return "arrow_right", true
	case tcell.KeyEscape:
		return "escape", true
	case tcell.KeyCtrlC:
		return "ctrl_c", true
	case tcell.KeyEnter:
		return "enter", true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "space", true
		}
		return string(unicode.ToLower(r)), true
	}
	return "", false
}

func (s *Screen) trackPointer(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.havePoint {
		s.dx += float64(x - s.lastX)
		s.dy += float64(y - s.lastY)
	}
	s.lastX, s.lastY = x, y
	s.havePoint = true
}

// MouseDelta returns pointer movement in cells since the last call
func (s *Screen) MouseDelta() (dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dx, dy = s.dx, s.dy
	s.dx, s.dy = 0, 0
	return dx, dy
}

// Present copies the frame into the back buffer and shows it
func (s *Screen) Present(f *render.Frame) {
	for row := 0; row < f.Rows; row++ {
		for col, c := range f.Row(row) {
			s.screen.SetContent(col, row, c.Glyph, nil, s.cellStyle(c.Style))
		}
	}
	status := []rune(f.Status)
	for col := 0; col < f.Cols; col++ {
		r := ' '
		if col < len(status) {
			r = status[col]
		}
		s.screen.SetContent(col, f.Rows, r, nil, tcell.StyleDefault)
	}
	s.screen.Show()
}

// Run drives step on a fixed ticker
func (s *Screen) Run(step func() bool) error {
	return renderer.RunFixedTick(step, s.delay)
}

func (s *Screen) cellStyle(st style.Style) tcell.Style {
	if ts, ok := s.styles[st]; ok {
		return ts
	}
	ts := CellStyle(st)
	s.styles[st] = ts
	return ts
}

var palette = map[style.Color]tcell.Color{
	style.Default:       tcell.ColorReset,
	style.Red:           tcell.ColorMaroon,
	style.BrightRed:     tcell.ColorRed,
	style.Green:         tcell.ColorGreen,
	style.BrightGreen:   tcell.ColorLime,
	style.Yellow:        tcell.ColorOlive,
	style.BrightYellow:  tcell.ColorYellow,
	style.Blue:          tcell.ColorNavy,
	style.BrightBlue:    tcell.ColorBlue,
	style.Magenta:       tcell.ColorPurple,
	style.BrightMagenta: tcell.ColorFuchsia,
	style.Cyan:          tcell.ColorTeal,
	style.BrightCyan:    tcell.ColorAqua,
	style.White:         tcell.ColorSilver,
	style.BrightWhite:   tcell.ColorWhite,
	style.Gray:          tcell.ColorGray,
}

// CellStyle resolves a frame style to a tcell style
func CellStyle(st style.Style) tcell.Style {
	fg, ok := palette[st.Color]
	if !ok {
		fg = tcell.ColorReset
	}
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch st.Tier {
	case style.NearBlack:
		return base.Foreground(tcell.ColorGray).Dim(true)
	case style.Dim:
		return base.Foreground(fg).Dim(true)
	case style.Bold:
		return base.Foreground(fg).Bold(true)
	default:
		return base.Foreground(fg)
	}
}

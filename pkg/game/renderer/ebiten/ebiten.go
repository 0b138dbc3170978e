// Package ebiten draws frames into a desktop window with Ebiten. The
// simulation step runs inside Update at a fixed TPS matching the tick.
package ebiten

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	engineinput "torchmaze/pkg/engine/input"
	"torchmaze/pkg/engine/logging"
	"torchmaze/pkg/game/render"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Size of one character cell in pixels, measured from the font
	cellWidth  int
	cellHeight int

	monoFontSource *text.GoTextFaceSource
	cachedMonoFace *text.GoTextFace

	mouse bool
	tps   int
	step  func() bool
	log   *logrus.Entry

	// Latest frame handed to Present
	frame      *render.Frame
	frameMutex sync.RWMutex

	// Input gathered by Update for the next PollIntents
	intents   []engineinput.Intent
	dx, dy    float64
	lastX     int
	lastY     int
	havePoint bool
}

// New creates a new Ebiten renderer ticking every tick
func New(mouse bool, tick time.Duration) *EbitenRenderer {
	tps := ebiten.DefaultTPS
	if tick > 0 {
		tps = int(time.Second / tick)
	}
	return &EbitenRenderer{
		cellWidth:  fallbackCellWidth,
		cellHeight: fallbackCellHeight,
		mouse:      mouse,
		tps:        tps,
		log:        logging.Component("ebiten"),
	}
}

// Init loads the font and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFont(); err != nil {
		return err
	}
	e.windowWidth = defaultCols * e.cellWidth
	e.windowHeight = defaultRows * e.cellHeight

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.tps)
	if e.mouse {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	e.log.WithFields(logrus.Fields{
		"width":  e.windowWidth,
		"height": e.windowHeight,
		"tps":    e.tps,
	}).Info("window configured")
	return nil
}

// Close is a no-op; the window closes when Run returns
func (e *EbitenRenderer) Close() {}

// ViewportSize returns how many cells fit in the window
func (e *EbitenRenderer) ViewportSize() (cols, rows int) {
	if e.windowWidth <= 0 || e.windowHeight <= 0 {
		return defaultCols, defaultRows
	}
	return e.windowWidth / e.cellWidth, e.windowHeight / e.cellHeight
}

// PollIntents returns the intents gathered by the current Update
func (e *EbitenRenderer) PollIntents() []engineinput.Intent {
	out := e.intents
	e.intents = nil
	return out
}

// MouseDelta returns pointer movement in cells since the last call
func (e *EbitenRenderer) MouseDelta() (dx, dy float64) {
	dx, dy = e.dx, e.dy
	e.dx, e.dy = 0, 0
	return dx, dy
}

// Present keeps f for the next Draw
func (e *EbitenRenderer) Present(f *render.Frame) {
	e.frameMutex.Lock()
	e.frame = f
	e.frameMutex.Unlock()
}

// Run starts the Ebiten game loop and returns when step asks to stop or
// the window is closed
func (e *EbitenRenderer) Run(step func() bool) error {
	e.step = step
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run ebiten")
	}
	return nil
}

// Update handles input and advances the simulation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	e.pollKeys()
	e.pollMouse()
	if e.step != nil && e.step() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest frame to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.frameMutex.RLock()
	f := e.frame
	e.frameMutex.RUnlock()

	if f == nil || e.monoFontSource == nil {
		return
	}
	e.drawFrame(screen, f)
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

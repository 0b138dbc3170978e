package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "torchmaze/pkg/engine/input"
)

type keyBinding struct {
	key  ebiten.Key
	code string
}

// heldKeys fire every tick while down
var heldKeys = []keyBinding{
	{ebiten.KeyW, "w"},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyE, "e"},
}

// pressedKeys fire once per press
var pressedKeys = []keyBinding{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyF, "f"},
	{ebiten.KeyX, "x"},
	{ebiten.KeyEscape, "escape"},
}

// pollKeys runs the keyboard state through the input layers
func (e *EbitenRenderer) pollKeys() {
	for _, b := range heldKeys {
		if ebiten.IsKeyPressed(b.key) {
			e.queue(b.code)
		}
	}
	for _, b := range pressedKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			e.queue(b.code)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		e.queue("ctrl_c")
	}
}

func (e *EbitenRenderer) queue(code string) {
	intent := engineinput.IntentFor(engineinput.DeviceKeyboard, code)
	if intent.Action != engineinput.ActionNone {
		e.intents = append(e.intents, intent)
	}
}

// pollMouse accumulates cursor movement, converted from pixels to cells
func (e *EbitenRenderer) pollMouse() {
	if !e.mouse {
		return
	}
	x, y := ebiten.CursorPosition()
	if e.havePoint {
		e.dx += float64(x-e.lastX) / float64(e.cellWidth)
		e.dy += float64(y-e.lastY) / float64(e.cellHeight)
	}
	e.lastX, e.lastY = x, y
	e.havePoint = true
}

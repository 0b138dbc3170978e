package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionForward
	ActionBack
	ActionTurnLeft
	ActionTurnRight
	ActionJump

	// View
	ActionLookUp
	ActionLookDown
	ActionToggleLight

	// Meta
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "w", "arrow_up", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after deduplication.
// Terminals deliver key repeats as fresh bytes and every repeat is a
// separate movement step, so nothing is suppressed here.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement
	"w":           ActionForward,
	"arrow_up":    ActionForward,
	"s":           ActionBack,
	"arrow_down":  ActionBack,
	"a":           ActionTurnLeft,
	"arrow_left":  ActionTurnLeft,
	"d":           ActionTurnRight,
	"arrow_right": ActionTurnRight,
	"space":       ActionJump,

	// View
	"q": ActionLookUp,
	"e": ActionLookDown,
	"f": ActionToggleLight,

	// Quit
	"x":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent. Unknown codes map to
// ActionNone.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a raw code through every layer.
func IntentFor(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionJump:
		return "Jump"
	case ActionLookUp:
		return "Look Up"
	case ActionLookDown:
		return "Look Down"
	case ActionToggleLight:
		return "Toggle Light"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help line doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// Package input turns device events into game intents. Terminal byte
// streams are decoded here; the layered mapping to intents lives in tiered.go.
package input

import (
	"strconv"
	"strings"
)

// Event is one decoded terminal event: a key code, or a mouse report.
type Event struct {
	Code  string
	Mouse bool
	X, Y  int // 1-based cell position of a mouse report
}

const (
	esc   = 0x1b
	ctrlC = 3
	del   = 127
)

// Decode splits a chunk of raw terminal input into events. An escape
// sequence cut off at the end of buf is returned in rest so the caller can
// prepend it to the next read. A lone ESC at the very end of a chunk is the
// escape key.
func Decode(buf []byte) (events []Event, rest []byte) {
	i := 0
	for i < len(buf) {
		b := buf[i]
		if b != esc {
			if code, ok := byteCode(b); ok {
				events = append(events, Event{Code: code})
			}
			i++
			continue
		}

		if i+1 >= len(buf) {
			events = append(events, Event{Code: "escape"})
			i++
			continue
		}

		switch buf[i+1] {
		case '[':
			ev, n, complete := decodeCSI(buf[i+2:])
			if !complete {
				return events, append([]byte(nil), buf[i:]...)
			}
			if ev != nil {
				events = append(events, *ev)
			}
			i += 2 + n
		case 'O':
			if i+2 >= len(buf) {
				return events, append([]byte(nil), buf[i:]...)
			}
			if code, ok := arrowCode(buf[i+2]); ok {
				events = append(events, Event{Code: code})
			}
			i += 3
		default:
			// ESC followed by an ordinary key: report the escape, then
			// let the next iteration decode the key.
			events = append(events, Event{Code: "escape"})
			i++
		}
	}
	return events, nil
}

// decodeCSI parses the body of an ESC [ sequence. It returns the event (nil
// for sequences we ignore), the bytes consumed and whether the sequence was
// complete.
func decodeCSI(body []byte) (*Event, int, bool) {
	for n, b := range body {
		if b < 0x40 || b > 0x7e {
			continue
		}
		params := string(body[:n])
		switch {
		case strings.HasPrefix(params, "<") && (b == 'M' || b == 'm'):
			return decodeSGRMouse(params[1:]), n + 1, true
		case params == "":
			if code, ok := arrowCode(b); ok {
				return &Event{Code: code}, n + 1, true
			}
		}
		return nil, n + 1, true
	}
	return nil, 0, false
}

// decodeSGRMouse parses "button;x;y" from an SGR (1006) mouse report.
func decodeSGRMouse(params string) *Event {
	parts := strings.Split(params, ";")
	if len(parts) != 3 {
		return nil
	}
	x, errX := strconv.Atoi(parts[1])
	y, errY := strconv.Atoi(parts[2])
	if errX != nil || errY != nil {
		return nil
	}
	return &Event{Mouse: true, X: x, Y: y}
}

func arrowCode(b byte) (string, bool) {
	switch b {
	case 'A':
		return "arrow_up", true
	case 'B':
		return "arrow_down", true
	case 'C':
		return "arrow_right", true
	case 'D':
		return "arrow_left", true
	}
	return "", false
}

func byteCode(b byte) (string, bool) {
	switch {
	case b == ctrlC:
		return "ctrl_c", true
	case b == ' ':
		return "space", true
	case b == '\r' || b == '\n':
		return "enter", true
	case b == del:
		return "backspace", true
	case b > ' ' && b < del:
		return strings.ToLower(string(rune(b))), true
	}
	return "", false
}

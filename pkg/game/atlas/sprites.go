package atlas

import (
	"math"

	"torchmaze/pkg/engine/style"
)

// SpriteKind selects a sprite bitmap
type SpriteKind int

const (
	SpriteGhostRed SpriteKind = iota
	SpriteGhostPink
	SpriteGhostCyan
	SpriteGhostOrange
	SpritePickup
	SpriteGateClosed
	SpriteGateOpen
)

// SpriteKinds lists every kind the atlas generates
func SpriteKinds() []SpriteKind {
	return []SpriteKind{
		SpriteGhostRed, SpriteGhostPink, SpriteGhostCyan, SpriteGhostOrange,
		SpritePickup, SpriteGateClosed, SpriteGateOpen,
	}
}

func (k SpriteKind) String() string {
	switch k {
	case SpriteGhostRed:
		return "ghost-red"
	case SpriteGhostPink:
		return "ghost-pink"
	case SpriteGhostCyan:
		return "ghost-cyan"
	case SpriteGhostOrange:
		return "ghost-orange"
	case SpritePickup:
		return "pickup"
	case SpriteGateClosed:
		return "gate-closed"
	case SpriteGateOpen:
		return "gate-open"
	default:
		return "unknown"
	}
}

var ghostColors = map[SpriteKind]style.Color{
	SpriteGhostRed:    style.BrightRed,
	SpriteGhostPink:   style.BrightMagenta,
	SpriteGhostCyan:   style.BrightCyan,
	SpriteGhostOrange: style.Yellow,
}

func buildSprite(k SpriteKind) *Sprite {
	switch k {
	case SpritePickup:
		return pickupSprite()
	case SpriteGateClosed:
		return gateSprite(true)
	case SpriteGateOpen:
		return gateSprite(false)
	}
	if c, ok := ghostColors[k]; ok {
		return ghostSprite(c)
	}
	return fallbackSprite()
}

// ghostSprite draws a dome-headed body with a ragged hem and two eyes.
func ghostSprite(body style.Color) *Sprite {
	s := &Sprite{}
	const (
		cx     = 15.5
		radius = 12.0
		headY  = 14.0
		hemY   = 28
	)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			fx, fy := float64(x), float64(y)
			var inside bool
			switch {
			case fy < headY:
				inside = math.Hypot(fx-cx, fy-headY) <= radius
			case y < hemY:
				inside = math.Abs(fx-cx) <= radius
			default:
				inside = math.Abs(fx-cx) <= radius && (x/4)%2 == 0
			}
			if !inside {
				continue
			}
			s[y][x] = SpriteTexel{Glyph: '@', Color: body, Alpha: 255}
		}
	}

	for _, eye := range [][2]float64{{10, 12}, {21, 12}} {
		for y := 8; y < 17; y++ {
			for x := 6; x < 26; x++ {
				d := math.Hypot(float64(x)-eye[0], float64(y)-eye[1])
				switch {
				case d <= 1.2:
					s[y][x] = SpriteTexel{Glyph: 'O', Color: style.Blue, Alpha: 255}
				case d <= 3:
					s[y][x] = SpriteTexel{Glyph: 'o', Color: style.BrightWhite, Alpha: 255}
				}
			}
		}
	}
	return s
}

// pickupSprite is a medkit: a white box with a red cross.
func pickupSprite() *Sprite {
	s := &Sprite{}
	for y := 6; y < 26; y++ {
		for x := 6; x < 26; x++ {
			edge := y == 6 || y == 25 || x == 6 || x == 25
			cross := (x >= 13 && x <= 18 && y >= 9 && y <= 22) || (y >= 13 && y <= 18 && x >= 9 && x <= 22)
			switch {
			case edge:
				s[y][x] = SpriteTexel{Glyph: '#', Color: style.White, Alpha: 255}
			case cross:
				s[y][x] = SpriteTexel{Glyph: '+', Color: style.BrightRed, Alpha: 255}
			default:
				s[y][x] = SpriteTexel{Glyph: '.', Color: style.BrightWhite, Alpha: 255}
			}
		}
	}
	return s
}

// gateSprite is a frame, barred while closed.
func gateSprite(closed bool) *Sprite {
	s := &Sprite{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			frame := x < 3 || x >= Size-3 || y < 3
			switch {
			case frame:
				s[y][x] = SpriteTexel{Glyph: '#', Color: style.BrightCyan, Alpha: 255}
			case closed && x%4 == 1:
				s[y][x] = SpriteTexel{Glyph: '|', Color: style.Cyan, Alpha: 255}
			case closed && (y == 15 || y == Size-1):
				s[y][x] = SpriteTexel{Glyph: '=', Color: style.Cyan, Alpha: 255}
			}
		}
	}
	return s
}

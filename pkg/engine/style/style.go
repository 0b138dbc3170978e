// Package style holds the display-independent cell styling used by frames.
// Backends resolve a Style to their own encoding at output time.
package style

// Color is a base terminal color
type Color int

const (
	Default Color = iota
	Red
	BrightRed
	Green
	BrightGreen
	Yellow
	BrightYellow
	Blue
	BrightBlue
	Magenta
	BrightMagenta
	Cyan
	BrightCyan
	White
	BrightWhite
	Gray
)

// Tier is a quantised brightness level
type Tier int

const (
	NearBlack Tier = iota
	Dim
	Normal
	Bold
)

// Style is a (tier, color) pair
type Style struct {
	Color Color
	Tier  Tier
}

// Plain is the unstyled default used for text overlays
var Plain = Style{Color: Default, Tier: Normal}

// New returns a Style
func New(c Color, t Tier) Style {
	return Style{Color: c, Tier: t}
}

// WithTier returns a copy of s at tier t
func (s Style) WithTier(t Tier) Style {
	s.Tier = t
	return s
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case BrightRed:
		return "bright-red"
	case Green:
		return "green"
	case BrightGreen:
		return "bright-green"
	case Yellow:
		return "yellow"
	case BrightYellow:
		return "bright-yellow"
	case Blue:
		return "blue"
	case BrightBlue:
		return "bright-blue"
	case Magenta:
		return "magenta"
	case BrightMagenta:
		return "bright-magenta"
	case Cyan:
		return "cyan"
	case BrightCyan:
		return "bright-cyan"
	case White:
		return "white"
	case BrightWhite:
		return "bright-white"
	case Gray:
		return "gray"
	default:
		return "default"
	}
}

func (t Tier) String() string {
	switch t {
	case NearBlack:
		return "near-black"
	case Dim:
		return "dim"
	case Bold:
		return "bold"
	default:
		return "normal"
	}
}

// RGB returns an approximate 8-bit RGB value for window backends.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case Red:
		return 0xaa, 0x00, 0x00
	case BrightRed:
		return 0xff, 0x55, 0x55
	case Green:
		return 0x00, 0xaa, 0x00
	case BrightGreen:
		return 0x55, 0xff, 0x55
	case Yellow:
		return 0xaa, 0x55, 0x00
	case BrightYellow:
		return 0xff, 0xff, 0x55
	case Blue:
		return 0x00, 0x00, 0xaa
	case BrightBlue:
		return 0x55, 0x55, 0xff
	case Magenta:
		return 0xaa, 0x00, 0xaa
	case BrightMagenta:
		return 0xff, 0x55, 0xff
	case Cyan:
		return 0x00, 0xaa, 0xaa
	case BrightCyan:
		return 0x55, 0xff, 0xff
	case White:
		return 0xaa, 0xaa, 0xaa
	case BrightWhite:
		return 0xff, 0xff, 0xff
	case Gray:
		return 0x55, 0x55, 0x55
	default:
		return 0xc0, 0xc0, 0xc0
	}
}

// Scale returns the intensity multiplier a window backend applies for a tier.
func (t Tier) Scale() float64 {
	switch t {
	case NearBlack:
		return 0.2
	case Dim:
		return 0.5
	case Bold:
		return 1.0
	default:
		return 0.8
	}
}

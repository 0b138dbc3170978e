package render

import (
	"unicode/utf8"

	"torchmaze/pkg/engine/style"
	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/gameplay"
	"torchmaze/pkg/game/state"
	"torchmaze/pkg/game/text"
)

// Minimap glyphs
const (
	MinimapPlayer = '@'
	MinimapWall   = '#'
	MinimapFloor  = '.'
	MinimapGate   = 'G'
	MinimapPickup = '+'
)

var (
	minimapWall   = style.New(style.White, style.Dim)
	minimapFloor  = style.New(style.Gray, style.Dim)
	minimapGate   = style.New(style.BrightCyan, style.Bold)
	minimapPickup = style.New(style.BrightRed, style.Normal)
	minimapPlayer = style.New(style.BrightYellow, style.Bold)

	messageStyle = style.New(style.BrightWhite, style.Normal)
	wonStyle     = style.New(style.BrightGreen, style.Bold)
	lostStyle    = style.New(style.BrightRed, style.Bold)
)

// drawMinimap draws the explored part of the grid in the top-left corner.
// It is skipped when the scene is too small to hold it.
func (v *View) drawMinimap(fc *frameContext) {
	g := fc.g
	f := fc.frame
	if g.Grid.Cols() > f.Cols/2 || g.Grid.Rows() > f.Rows-1 {
		return
	}

	g.Grid.ForEachCell(func(row, col int, cell world.Cell) {
		c := blank
		if g.IsExplored(row, col) {
			switch {
			case cell.IsWall():
				c = Cell{Glyph: MinimapWall, Style: minimapWall}
			case cell.IsGate():
				c = Cell{Glyph: MinimapGate, Style: minimapGate}
			default:
				c = Cell{Glyph: MinimapFloor, Style: minimapFloor}
			}
		}
		f.Set(col, row, c)
	})

	for _, pk := range g.Pickups {
		row, col := world.CellAt(pk.X, pk.Y)
		if pk.Active && g.IsExplored(row, col) {
			f.Set(col, row, Cell{Glyph: MinimapPickup, Style: minimapPickup})
		}
	}

	row, col := g.PlayerCell()
	f.Set(col, row, Cell{Glyph: MinimapPlayer, Style: minimapPlayer})
}

// drawTint washes the whole scene red while damage is showing.
func (v *View) drawTint(fc *frameContext) {
	if fc.g.DamageTint <= 0 {
		return
	}
	for i, c := range fc.frame.Cells {
		c.Style.Color = style.Red
		if c.Style.Tier == style.NearBlack {
			c.Style.Tier = style.Dim
		}
		fc.frame.Cells[i] = c
	}
}

// drawBanner writes the end-of-session banner in the middle of the scene.
func (v *View) drawBanner(fc *frameContext) {
	var (
		title string
		st    style.Style
	)
	switch fc.g.Status {
	case state.StatusWon:
		title, st = text.Get("WON_BANNER"), wonStyle
	case state.StatusGameOver:
		title, st = text.Get("LOST_BANNER"), lostStyle
	default:
		return
	}

	f := fc.frame
	lines := []string{"", title, text.Get("BANNER_HINT"), ""}
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	width += 4

	top := f.Rows/2 - len(lines)/2
	left := f.Cols/2 - width/2
	for i, l := range lines {
		row := top + i
		for col := left; col < left+width; col++ {
			f.Set(col, row, Cell{Glyph: ' ', Style: st})
		}
		f.WriteText(left+(width-utf8.RuneCountInString(l))/2, row, l, st)
	}
}

// drawMessage shows the newest log line on the bottom scene row.
func (v *View) drawMessage(fc *frameContext) {
	msg, ok := fc.g.LatestMessage(v.Tuning.MessageTicks)
	if !ok {
		return
	}
	row := fc.frame.Rows - 1
	for col := 0; col < fc.frame.Cols; col++ {
		fc.frame.Set(col, row, Cell{Glyph: ' ', Style: messageStyle})
	}
	fc.frame.WriteText(0, row, msg, messageStyle)
}

// statusLine is the plain text shown under the scene.
func (v *View) statusLine(g *state.Game) string {
	gate := text.Get("GATE_OPEN_STATUS")
	if !g.Gate.Open {
		gate = text.Getf("GATE_CLOSED_STATUS", v.Tuning.GateRemaining(g))
	}
	p := g.Player
	return text.Getf("STATUS",
		p.X, p.Y, p.Z,
		gameplay.HeadingDegrees(p), gameplay.PitchDegrees(p),
		p.Health, g.Elapsed, gate, g.Torch.Battery*100,
	) + " | " + text.Get("HELP")
}

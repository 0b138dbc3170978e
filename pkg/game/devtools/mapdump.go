// Package devtools writes debug snapshots of a session: a plain text state
// dump and an HTML copy of the last rendered frame.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"

	"torchmaze/pkg/engine/input"
	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/render"
	"torchmaze/pkg/game/state"
)

// cellSymbol returns the symbol for a grid cell. With exploredOnly set,
// cells the player has not seen print as '?'.
func cellSymbol(g *state.Game, row, col int, cell world.Cell, exploredOnly bool) rune {
	if exploredOnly && !g.IsExplored(row, col) {
		return '?'
	}
	switch {
	case cell.IsWall():
		return cell.Material.Rune()
	case cell.IsGate():
		if g.Gate.Open {
			return 'g'
		}
		return 'G'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid with the player and active pickups overlaid
func writeMapGrid(w io.Writer, g *state.Game, exploredOnly bool) {
	pickups := make(map[state.CellPos]bool)
	for _, pk := range g.Pickups {
		if pk.Active {
			row, col := world.CellAt(pk.X, pk.Y)
			pickups[state.CellPos{Row: row, Col: col}] = true
		}
	}
	playerRow, playerCol := g.PlayerCell()

	for row := 0; row < g.Grid.Rows(); row++ {
		line := make([]rune, 0, g.Grid.Cols())
		for col := 0; col < g.Grid.Cols(); col++ {
			cell, _ := g.Grid.GetCell(row, col)
			sym := cellSymbol(g, row, col, cell, exploredOnly)
			switch {
			case row == playerRow && col == playerCol:
				sym = '@'
			case sym == '.' && pickups[state.CellPos{Row: row, Col: col}]:
				sym = '+'
			}
			line = append(line, sym)
		}
		fmt.Fprintln(w, string(line))
	}
}

// DumpState writes a sectioned, key: value dump of g: metadata, legend,
// explored map, full map and every agent.
func DumpState(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return errors.New("no grid")
	}
	p := g.Player
	playerRow, playerCol := g.PlayerCell()

	fmt.Fprintln(w, "=== STATE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "status: %s\n", g.Status)
	fmt.Fprintf(w, "tick: %d\n", g.Tick)
	fmt.Fprintf(w, "elapsed: %.2f\n", g.Elapsed)
	fmt.Fprintf(w, "grid_rows: %d\n", g.Grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", g.Grid.Cols())
	fmt.Fprintf(w, "coordinate_system: x=col, y=row (cell centres at +0.5)\n")
	fmt.Fprintf(w, "player_pos: %.3f,%.3f,%.3f\n", p.X, p.Y, p.Z)
	fmt.Fprintf(w, "player_cell: %d,%d\n", playerRow, playerCol)
	fmt.Fprintf(w, "player_heading: %.4f\n", p.Heading)
	fmt.Fprintf(w, "player_pitch: %.4f\n", p.Pitch)
	fmt.Fprintf(w, "player_health: %d\n", p.Health)
	fmt.Fprintf(w, "torch_enabled: %v\n", g.Torch.Enabled)
	fmt.Fprintf(w, "torch_battery: %.3f\n", g.Torch.Battery)
	fmt.Fprintf(w, "torch_flicker: %.3f\n", g.Torch.Flicker)
	fmt.Fprintf(w, "damage_tint: %d\n", g.DamageTint)
	fmt.Fprintf(w, "explored_cells: %d\n", g.Explored.Size())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". = floor  # A B C D E = wall material  G = closed gate  g = open gate  + = pickup  @ = player  ? = unexplored")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (explored cells only) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Agents ---")
	fmt.Fprintln(w, "Enemies:")
	for i, e := range g.Enemies {
		row, col := world.CellAt(e.X, e.Y)
		fmt.Fprintf(w, "  index: %d kind: %s row: %d col: %d pos: %.3f,%.3f vel: %.4f,%.4f enabled: %v distance: %d\n",
			i, e.Kind, row, col, e.X, e.Y, e.VX, e.VY, e.Enabled, g.Field.At(row, col))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Pickups:")
	for i, pk := range g.Pickups {
		row, col := world.CellAt(pk.X, pk.Y)
		fmt.Fprintf(w, "  index: %d row: %d col: %d active: %v\n", i, row, col, pk.Active)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Gate:")
	if row, col, ok := g.Grid.GatePosition(); ok {
		fmt.Fprintf(w, "  row: %d col: %d open: %v\n", row, col, g.Gate.Open)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Messages ---")
	for _, m := range g.Messages {
		fmt.Fprintf(w, "  tick: %d text: %q\n", m.Tick, m.Text)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Bindings ---")
	byAction := input.GetBindingsByAction()
	acts := make([]input.Action, 0, len(byAction))
	for act := range byAction {
		acts = append(acts, act)
	}
	slices.Sort(acts)
	for _, act := range acts {
		fmt.Fprintf(w, "  %s: %s\n", input.ActionName(act), strings.Join(byAction[act], ", "))
	}
	return nil
}

// Save writes map-<stamp>.txt and, when f is not nil, screenshot-<stamp>.html
// into dir. It returns the paths written.
func Save(dir string, g *state.Game, f *render.Frame) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create dump dir")
	}
	stamp := time.Now().Format("20060102-150405")

	var written []string
	mapPath := filepath.Join(dir, "map-"+stamp+".txt")
	if err := writeFile(mapPath, func(w io.Writer) error { return DumpState(w, g) }); err != nil {
		return written, err
	}
	written = append(written, mapPath)

	if f != nil {
		shotPath := filepath.Join(dir, "screenshot-"+stamp+".html")
		if err := writeFile(shotPath, func(w io.Writer) error { return WriteFrameHTML(w, f) }); err != nil {
			return written, err
		}
		written = append(written, shotPath)
	}
	return written, nil
}

func writeFile(path string, fill func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := fill(out); err != nil {
		out.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(out.Close(), "close %s", path)
}

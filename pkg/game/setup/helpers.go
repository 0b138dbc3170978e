package setup

import (
	"github.com/zyedidia/generic/mapset"

	"torchmaze/pkg/engine/world"
	"torchmaze/pkg/game/state"
)

// reachableCells returns every open cell reachable from (row, col) by
// 4-connected moves. The gate counts as closed.
func reachableCells(grid *world.Grid, row, col int) mapset.Set[state.CellPos] {
	reachable := mapset.New[state.CellPos]()
	queue := []state.CellPos{{Row: row, Col: col}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !grid.IsOpen(current.Row, current.Col) || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, d := range world.CardinalDirections() {
			dc, dr := d.Delta()
			n := state.CellPos{Row: current.Row + dr, Col: current.Col + dc}
			if !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return reachable
}

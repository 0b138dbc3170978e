package world

// FOVRadius is the default reveal radius (Chebyshev distance) around the player.
const FOVRadius = 4

// VisibleCells returns the cells within radius of (row, col) that have an
// unobstructed Bresenham line of sight from it. Walls are included (they are
// what you see) but block anything behind them.
func VisibleCells(g *Grid, row, col, radius int) [][2]int {
	if g == nil || !g.IsValidPosition(row, col) {
		return nil
	}

	visible := [][2]int{{row, col}}
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if !g.IsValidPosition(r, c) {
				continue
			}
			if HasLineOfSight(g, row, col, r, c) {
				visible = append(visible, [2]int{r, c})
			}
		}
	}
	return visible
}

// HasLineOfSight returns true if there's a clear path from (r0,c0) to (r1,c1).
// The target itself may be a wall; every cell strictly between must not block sight.
func HasLineOfSight(g *Grid, r0, c0, r1, c1 int) bool {
	dr := r1 - r0
	dc := c1 - c0
	if dr == 0 && dc == 0 {
		return true
	}

	absDr, stepR := abs(dr), sign(dr)
	absDc, stepC := abs(dc), sign(dc)

	r, c := r0, c0
	if absDr >= absDc {
		err := 2*absDc - absDr
		for r != r1 {
			r += stepR
			if err > 0 {
				c += stepC
				err -= 2 * absDr
			}
			err += 2 * absDc
			if r == r1 && c == c1 {
				return true
			}
			if g.BlocksSight(r, c) {
				return false
			}
		}
	} else {
		err := 2*absDr - absDc
		for c != c1 {
			c += stepC
			if err > 0 {
				r += stepR
				err -= 2 * absDc
			}
			err += 2 * absDr
			if r == r1 && c == c1 {
				return true
			}
			if g.BlocksSight(r, c) {
				return false
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

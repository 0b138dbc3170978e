// Package raycast marches rays through a world.Grid to find the first wall
// along a heading.
package raycast

import (
	"math"

	"torchmaze/pkg/engine/world"
)

const (
	// StepSize is the marching increment in grid units. Sub-cell texture
	// alignment depends on this resolution.
	StepSize = 0.01
	// MaxRange is the furthest distance a ray travels before reporting a
	// synthetic boundary hit.
	MaxRange = 12.0
	// TextureSize is the side of the square textures hits are mapped onto.
	TextureSize = 32
)

// maxSteps bounds the march
var maxSteps = int(math.Ceil(MaxRange / StepSize))

// Hit describes where a ray stopped.
type Hit struct {
	Distance float64 // Euclidean distance travelled along the ray
	Material world.Material
	Row, Col int     // cell that stopped the ray, -1 for boundary hits
	U        float64 // sub-cell coordinate along the hit face, [0, 1)
	TexX     int     // U scaled to texture columns
	Vertical bool    // crossed a vertical grid line (x changed), drawn brighter
	Boundary bool    // synthetic hit: out of range or out of the grid
}

// Direction returns the unit direction vector for a heading. Heading 0
// looks down +y; positive headings turn towards +x.
func Direction(angle float64) (dx, dy float64) {
	return math.Sin(angle), math.Cos(angle)
}

// Cast marches from (x, y) along angle until it enters a cell that blocks sight.
func Cast(g *world.Grid, x, y, angle float64) Hit {
	dx, dy := Direction(angle)
	dx *= StepSize
	dy *= StepSize

	px, py := x, y
	for i := 1; i <= maxSteps; i++ {
		cx := x + dx*float64(i)
		cy := y + dy*float64(i)
		row, col := world.CellAt(cx, cy)

		if !g.IsValidPosition(row, col) {
			return boundaryHit()
		}
		if g.BlocksSight(row, col) {
			cell, _ := g.GetCell(row, col)
			vertical, u := faceCoordinate(px, py, cx, cy)
			return Hit{
				Distance: float64(i) * StepSize,
				Material: cell.Material,
				Row:      row,
				Col:      col,
				U:        u,
				TexX:     texel(u),
				Vertical: vertical,
			}
		}
		px, py = cx, cy
	}
	return boundaryHit()
}

// ColumnAngle returns the ray angle for a screen column. Columns sweep the
// field of view left to right.
func ColumnAngle(heading, fov float64, col, width int) float64 {
	if width <= 0 {
		return heading
	}
	return heading - fov/2 + (float64(col)/float64(width))*fov
}

func boundaryHit() Hit {
	return Hit{
		Distance: MaxRange,
		Material: world.MaterialBoundary,
		Row:      -1,
		Col:      -1,
		Boundary: true,
	}
}

// faceCoordinate decides which grid line the last step crossed. A change of
// cell column means a vertical line; a change of row a horizontal one. When
// both change in the same step the axis that moved more wins.
func faceCoordinate(px, py, cx, cy float64) (vertical bool, u float64) {
	colChanged := math.Floor(px) != math.Floor(cx)
	rowChanged := math.Floor(py) != math.Floor(cy)

	switch {
	case colChanged && !rowChanged:
		vertical = true
	case rowChanged && !colChanged:
		vertical = false
	default:
		vertical = math.Abs(cx-px) > math.Abs(cy-py)
	}

	if vertical {
		return true, frac(cy)
	}
	return false, frac(cx)
}

func frac(v float64) float64 {
	return v - math.Floor(v)
}

func texel(u float64) int {
	t := int(u * TextureSize)
	if t >= TextureSize {
		t = TextureSize - 1
	}
	if t < 0 {
		t = 0
	}
	return t
}

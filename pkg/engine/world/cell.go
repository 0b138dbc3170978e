// Package world provides the tile grid the maze is built on.
// Cells are tagged as empty floor, walls of a given material, or the gate.
package world

// Material identifies the surface of a wall cell. It selects the texture
// the ray caster reports for a hit.
type Material int

// Material constants
const (
	MaterialBoundary Material = iota // '#', default wall and synthetic boundary hits
	MaterialBrick                    // 'A', red brick
	MaterialMoss                     // 'B', green large brick
	MaterialStone                    // 'C', yellow stone
	MaterialTile                     // 'D', blue tile pattern
	MaterialCross                    // 'E', magenta cross pattern
	MaterialFloor                    // floor surface, never a wall
	MaterialCeiling                  // ceiling surface, never a wall
)

// WallMaterials lists the materials that can appear as wall tags in a map.
func WallMaterials() []Material {
	return []Material{MaterialBoundary, MaterialBrick, MaterialMoss, MaterialStone, MaterialTile, MaterialCross}
}

// String returns the string representation of a material
func (m Material) String() string {
	switch m {
	case MaterialBoundary:
		return "Boundary"
	case MaterialBrick:
		return "Brick"
	case MaterialMoss:
		return "Moss"
	case MaterialStone:
		return "Stone"
	case MaterialTile:
		return "Tile"
	case MaterialCross:
		return "Cross"
	case MaterialFloor:
		return "Floor"
	case MaterialCeiling:
		return "Ceiling"
	default:
		return "Unknown"
	}
}

// MaterialFromRune maps a map glyph to its wall material.
func MaterialFromRune(r rune) (Material, bool) {
	switch r {
	case '#':
		return MaterialBoundary, true
	case 'A':
		return MaterialBrick, true
	case 'B':
		return MaterialMoss, true
	case 'C':
		return MaterialStone, true
	case 'D':
		return MaterialTile, true
	case 'E':
		return MaterialCross, true
	default:
		return MaterialBoundary, false
	}
}

// Rune returns the map glyph for a wall material
func (m Material) Rune() rune {
	switch m {
	case MaterialBrick:
		return 'A'
	case MaterialMoss:
		return 'B'
	case MaterialStone:
		return 'C'
	case MaterialTile:
		return 'D'
	case MaterialCross:
		return 'E'
	default:
		return '#'
	}
}

// CellKind is the occupancy tag of a cell
type CellKind int

// Cell kinds
const (
	CellEmpty CellKind = iota
	CellWall
	CellGate
)

// Cell is a single tile of the grid.
type Cell struct {
	Kind     CellKind
	Material Material // only meaningful when Kind == CellWall
}

// IsWall returns true if the cell is a wall of any material
func (c Cell) IsWall() bool {
	return c.Kind == CellWall
}

// IsGate returns true if the cell holds the gate
func (c Cell) IsGate() bool {
	return c.Kind == CellGate
}

// Package atlas procedurally generates the wall textures and entity sprites.
// Everything is built once from a seeded generator and never mutated.
package atlas

import (
	"math/rand"

	"torchmaze/pkg/engine/style"
	"torchmaze/pkg/engine/world"
)

// Size is the side length of every texture and sprite bitmap.
const Size = 32

// gradient orders glyphs from empty to dense
const gradient = " .-,=+*#%@"

// Texel is one cell of a surface texture
type Texel struct {
	Glyph rune
	Color style.Color
}

// Texture is a square surface bitmap indexed [y][x]
type Texture [Size][Size]Texel

// At returns the texel at (x, y), wrapping coordinates into range.
func (t *Texture) At(x, y int) Texel {
	return t[wrap(y)][wrap(x)]
}

// SpriteTexel is one cell of a sprite. Alpha 0 is transparent.
type SpriteTexel struct {
	Glyph rune
	Color style.Color
	Alpha uint8
}

// Sprite is a square entity bitmap indexed [y][x]
type Sprite [Size][Size]SpriteTexel

// At returns the texel at (x, y). Out of range coordinates are transparent.
func (s *Sprite) At(x, y int) SpriteTexel {
	if x < 0 || y < 0 || x >= Size || y >= Size {
		return SpriteTexel{}
	}
	return s[y][x]
}

// Atlas holds every generated bitmap.
type Atlas struct {
	textures map[world.Material]*Texture
	sprites  map[SpriteKind]*Sprite

	fallbackTexture *Texture
	fallbackSprite  *Sprite
}

// Generate builds the full atlas. The same seed always yields the same atlas.
func Generate(rng *rand.Rand) *Atlas {
	a := &Atlas{
		textures: make(map[world.Material]*Texture),
		sprites:  make(map[SpriteKind]*Sprite),
	}

	surfaces := append(world.WallMaterials(), world.MaterialFloor, world.MaterialCeiling)
	for _, m := range surfaces {
		a.textures[m] = materialTexture(m, rng)
	}
	for _, k := range SpriteKinds() {
		a.sprites[k] = buildSprite(k)
	}

	a.fallbackTexture = fallbackTexture()
	a.fallbackSprite = fallbackSprite()
	return a
}

// Texture returns the texture for a material, or a plain fallback when the
// material has none.
func (a *Atlas) Texture(m world.Material) *Texture {
	if t, ok := a.textures[m]; ok {
		return t
	}
	return a.fallbackTexture
}

// Sprite returns the bitmap for a sprite kind, or a fallback block.
func (a *Atlas) Sprite(k SpriteKind) *Sprite {
	if s, ok := a.sprites[k]; ok {
		return s
	}
	return a.fallbackSprite
}

func materialTexture(m world.Material, rng *rand.Rand) *Texture {
	t := &Texture{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			var (
				level int
				line  bool
				c     style.Color
			)
			switch m {
			case world.MaterialBrick:
				line = y%6 == 0 || (x+4*(y/6))%16 == 0
				level = pick(line, 4, 12)
				c = pickColor(line, style.Red, style.BrightRed)
			case world.MaterialMoss:
				line = y%31 == 0 || (x+4*(y/31))%16 == 0
				level = pick(line, 4, 8)
				c = pickColor(line, style.Green, style.BrightGreen)
			case world.MaterialStone:
				line = y%8 == 0 || x%8 == 0
				level = pick(line, 4, 8)
				c = pickColor(line, style.Yellow, style.BrightYellow)
			case world.MaterialTile:
				line = y%4 == 0 || x%4 == 0
				level = pick(line, 4, 10)
				c = pickColor(line, style.Blue, style.BrightBlue)
			case world.MaterialCross:
				line = y%16 == 8 || x%16 == 8
				level = pick(line, 4, 9)
				c = pickColor(line, style.Magenta, style.BrightMagenta)
			case world.MaterialFloor:
				line = (x+y)%5 == 0
				level = pick(line, 3, 1)
				c = pickColor(line, style.Yellow, style.Gray)
			case world.MaterialCeiling:
				line = (x+y)%3 == 0
				level = pick(line, 7, 2)
				c = style.Blue
			default:
				line = y%2 == 0 && x%2 == 0
				level = pick(line, 4, 7)
				c = style.White
			}
			level += rng.Intn(2)
			t[y][x] = Texel{Glyph: glyph(level), Color: c}
		}
	}
	return t
}

func fallbackTexture() *Texture {
	t := &Texture{}
	for y := range t {
		for x := range t[y] {
			t[y][x] = Texel{Glyph: '#', Color: style.White}
		}
	}
	return t
}

func fallbackSprite() *Sprite {
	s := &Sprite{}
	for y := 8; y < Size-8; y++ {
		for x := 8; x < Size-8; x++ {
			s[y][x] = SpriteTexel{Glyph: '?', Color: style.BrightWhite, Alpha: 255}
		}
	}
	return s
}

// glyph clamps a density level onto the gradient
func glyph(level int) rune {
	if level < 0 {
		level = 0
	}
	if level > len(gradient)-1 {
		level = len(gradient) - 1
	}
	return rune(gradient[level])
}

func pick(line bool, onLine, off int) int {
	if line {
		return onLine
	}
	return off
}

func pickColor(line bool, onLine, off style.Color) style.Color {
	if line {
		return onLine
	}
	return off
}

func wrap(v int) int {
	v %= Size
	if v < 0 {
		v += Size
	}
	return v
}

package engine

import (
	"math"

	"github.com/vovakirdan/tui-raider/internal/core"
)

// Glyph ramps stand in for textures: near hits pick dense glyphs at the
// front of a ramp, far hits sparse ones at the back. One ramp per wall
// class, with separate ramps for the two wall face orientations.
var (
	rampWallNS = []rune{'│', '║', '┃', '┋', '┇', '╎', '╏', '┆'}
	rampWallEW = []rune{'─', '═', '━', '┅', '┉', '╌', '╍', '┄'}
	rampPillar = []rune{'╬', '╪', '╫', '╋', '╂', '┼', '╉', '╊'}
	rampCorner = []rune{'╔', '╗', '╚', '╝', '┌', '┐', '└', '┘'}
)

// Animation frames per enemy class, cycled by the game loop.
var spriteFrames = [3][3]rune{
	{'&', '@', '&'}, // normal
	{'%', '$', '%'}, // fast
	{'M', 'W', 'M'}, // strong
}

var spriteColors = [3]core.Color{
	core.ColorRed,
	core.ColorMagenta,
	core.ColorBrightMagenta,
}

// Span is the vertical screen extent of a wall hit: rows above Ceiling
// are sky, rows below Floor are floor.
type Span struct {
	Ceiling int
	Floor   int
}

// ProjectSpan converts a corrected distance into a vertical span. Lower
// walls project at half height, everything else full height. The span is
// clamped to the view.
func ProjectSpan(kind HitKind, correctedDistance float64, viewHeight int) Span {
	half := float64(viewHeight) / 2
	extent := float64(viewHeight) / correctedDistance
	if kind == HitLowerWall {
		extent *= 0.5
	}

	ceiling := int(half - extent)
	floor := int(half + extent)

	if ceiling < 0 {
		ceiling = 0
	}
	if floor > viewHeight-1 {
		floor = viewHeight - 1
	}
	return Span{Ceiling: ceiling, Floor: floor}
}

// CastColumn renders one vertical screen slice for the given ray angle:
// marches the ray, projects the hit to a span, then fills every row with
// sky, wall texture, sprite or floor. The returned slice has exactly
// viewHeight cells. No state is retained between columns; the sprite
// depth test is per-column, per-row.
func CastColumn(w *World, tun Tunables, rayAngle float64, viewHeight, animFrame int) []core.Cell {
	hit := March(w.Grid, tun, w.Player.X, w.Player.Y, rayAngle)
	corrected := hit.Distance * Fisheye(rayAngle, w.Player.Angle)
	span := ProjectSpan(hit.Kind, corrected, viewHeight)

	wall := wallCell(hit, corrected, tun)

	sprite, spriteDist, haveSprite := nearestSprite(w, tun, rayAngle, corrected)
	var spriteTop, spriteBottom int
	if haveSprite {
		spriteHeight := float64(viewHeight) / spriteDist
		spriteTop = int(float64(viewHeight)/2 - spriteHeight/2)
		spriteBottom = int(float64(viewHeight)/2 + spriteHeight/2)
	}

	rad := core.Radians(rayAngle)
	dirX := math.Cos(rad)
	dirY := math.Sin(rad)

	cells := make([]core.Cell, viewHeight)
	for y := 0; y < viewHeight; y++ {
		switch {
		case y < span.Ceiling:
			cells[y] = skyCell(y, span.Ceiling)
		case y <= span.Floor:
			if haveSprite && y >= spriteTop && y <= spriteBottom {
				cells[y] = core.Cell{
					Rune:  spriteFrames[sprite][animFrame%3],
					Color: spriteColors[sprite],
				}
			} else {
				cells[y] = wall
			}
		default:
			cells[y] = floorCell(w.Player, tun, dirX, dirY, y, span.Floor, viewHeight)
		}
	}
	return cells
}

// wallCell selects the texture glyph and color for a hit at the given
// corrected distance. Boundary hits snap to the densest glyph of the
// ramp so wall seams stay crisp.
func wallCell(hit RayHit, corrected float64, tun Tunables) core.Cell {
	switch hit.Kind {
	case HitPillar:
		return core.Cell{Rune: rampGlyph(rampPillar, corrected, hit.Boundary, tun), Color: core.ColorOrange}
	case HitCorner:
		return core.Cell{Rune: rampGlyph(rampCorner, corrected, hit.Boundary, tun), Color: core.ColorBrightYellow}
	case HitLowerWall:
		return core.Cell{Rune: lowerWallGlyph(corrected, tun), Color: core.ColorGray}
	default:
		if hit.Orientation == OrientHorizontal {
			return core.Cell{Rune: rampGlyph(rampWallEW, corrected, hit.Boundary, tun), Color: core.ColorRed}
		}
		return core.Cell{Rune: rampGlyph(rampWallNS, corrected, hit.Boundary, tun), Color: core.ColorBrightWhite}
	}
}

func rampGlyph(ramp []rune, corrected float64, boundary bool, tun Tunables) rune {
	if boundary {
		return ramp[0]
	}
	idx := int(corrected / tun.Depth * float64(len(ramp)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(ramp)-1 {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}

// lowerWallGlyph shades half-walls in three distance bands.
func lowerWallGlyph(corrected float64, tun Tunables) rune {
	switch {
	case corrected < tun.Depth/4:
		return '█'
	case corrected < tun.Depth/2:
		return '▓'
	default:
		return '▒'
	}
}

// skyCell fades the sky from dotted near the top to empty near the
// horizon.
func skyCell(y, ceiling int) core.Cell {
	if ceiling > 0 {
		shade := 1 - float64(y)/float64(ceiling)
		if shade > 0.8 {
			return core.Cell{Rune: '·', Color: core.ColorBlue}
		}
	}
	return core.Cell{Rune: ' ', Color: core.ColorBlue}
}

// floorCell shades the floor by distance below the wall base and overlays
// decorative grid lines where a coordinate derived from the player
// position and ray direction lands on a grid boundary. Purely cosmetic;
// collision never consults this.
func floorCell(p Player, tun Tunables, dirX, dirY float64, y, floor, viewHeight int) core.Cell {
	drop := y - floor
	denom := viewHeight - floor
	if denom < 1 {
		denom = 1
	}
	brightness := 1 - float64(drop)/float64(denom)

	size := tun.FloorGridSize
	gridX := mod(int(p.X*float64(size)+dirX*float64(drop)*2), size)
	gridY := mod(int(p.Y*float64(size)+dirY*float64(drop)*2), size)

	var r rune
	switch {
	case (gridX == 0 || gridY == 0) && brightness > 0.3:
		r = '+'
	case brightness < 0.25:
		r = '#'
	case brightness < 0.5:
		r = 'x'
	case brightness < 0.75:
		r = '-'
	default:
		r = '.'
	}
	return core.Cell{Rune: r, Color: core.ColorGreen}
}

// mod is a floor modulus: the result is always in [0, n).
func mod(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// nearestSprite finds the closest living enemy visible along rayAngle
// and in front of the wall hit. The angular tolerance is wider than the
// per-column ray spacing so sprites render without gaps.
func nearestSprite(w *World, tun Tunables, rayAngle, correctedDistance float64) (EnemyClass, float64, bool) {
	best := math.Inf(1)
	var class EnemyClass
	found := false

	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		dist := w.Player.distanceTo(e.X, e.Y)
		diff := core.AngleDiffDeg(w.Player.bearingTo(e.X, e.Y), rayAngle)
		if math.Abs(diff) < tun.SpriteTolerance && dist < correctedDistance && dist < best {
			best = dist
			class = e.Class
			found = true
		}
	}
	return class, best, found
}

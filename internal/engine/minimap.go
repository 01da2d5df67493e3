package engine

import "github.com/vovakirdan/tui-raider/internal/core"

// MinimapCell maps one cell of a size×size window centered on the player
// to the glyph shown on the radar. (relX, relY) address the window, not
// the grid. Pure coordinate lookup, no ray marching. Living enemies
// overlay terrain; the player's own cell shows a facing indicator.
func MinimapCell(w *World, relX, relY, size int) core.Cell {
	mapX := int(w.Player.X - float64(size)/2 + float64(relX))
	mapY := int(w.Player.Y - float64(size)/2 + float64(relY))

	kind, err := w.Grid.Classify(mapX, mapY)
	if err != nil {
		return core.Blank()
	}

	cell := terrainCell(kind)
	if mapX == int(w.Player.X) && mapY == int(w.Player.Y) {
		cell = core.Cell{Rune: directionGlyph(w.Player.Angle), Color: core.ColorBrightYellow}
	}

	for _, e := range w.Enemies {
		if e.Alive && int(e.X) == mapX && int(e.Y) == mapY {
			cell = enemyMarker(e.Class)
		}
	}
	return cell
}

func terrainCell(kind TileKind) core.Cell {
	switch kind {
	case TileWall:
		return core.Cell{Rune: '■', Color: core.ColorWhite}
	case TileLowerWall:
		return core.Cell{Rune: '□', Color: core.ColorGray}
	case TilePillar:
		return core.Cell{Rune: '◘', Color: core.ColorOrange}
	case TileCorner:
		return core.Cell{Rune: '◙', Color: core.ColorBrightYellow}
	default:
		return core.Cell{Rune: '·', Color: core.ColorCyan}
	}
}

// directionGlyph picks the facing indicator by angle quadrant.
func directionGlyph(angle float64) rune {
	switch {
	case angle >= 45 && angle < 135:
		return '▶'
	case angle >= 135 && angle < 225:
		return '▼'
	case angle >= 225 && angle < 315:
		return '◀'
	default:
		return '▲'
	}
}

func enemyMarker(class EnemyClass) core.Cell {
	switch class {
	case ClassFast:
		return core.Cell{Rune: '◇', Color: core.ColorBrightMagenta}
	case ClassStrong:
		return core.Cell{Rune: '◆', Color: core.ColorBrightMagenta}
	default:
		return core.Cell{Rune: '○', Color: core.ColorBrightRed}
	}
}

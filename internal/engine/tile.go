package engine

import (
	"errors"
	"fmt"
)

// TileKind classifies a single map cell.
type TileKind int

const (
	TileOpen      TileKind = iota // walkable floor
	TileWall                      // full-height wall
	TileLowerWall                 // half-height wall, blocks movement but not sight over it
	TilePillar                    // full-height column
	TileCorner                    // decorative corner piece, walkable
)

// ErrOutOfBounds is returned by grid queries outside the map rectangle.
// The ray marcher recovers from it locally by treating the location as
// solid wall; it never reaches callers of the per-frame API.
var ErrOutOfBounds = errors.New("engine: coordinate out of bounds")

// Passable reports whether actors may occupy a cell of this kind.
// Corner decorations are scenery, not obstacles.
func Passable(k TileKind) bool {
	return k == TileOpen || k == TileCorner
}

// Grid is the static tile map. It is immutable after construction; all
// per-frame queries are read-only, so it can be shared freely.
type Grid struct {
	width  int
	height int
	cells  []TileKind // row-major, index = y*width + x
}

// ParseGrid builds a grid from a rune layout. Rows must be non-empty and
// of equal length; unknown runes are a construction error. This is the
// fail-fast boundary: per-frame code assumes a well-formed grid.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("engine: empty map layout")
	}

	width := len(rows[0])
	g := &Grid{
		width:  width,
		height: len(rows),
		cells:  make([]TileKind, width*len(rows)),
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("engine: ragged map: row %d has %d cells, expected %d", y, len(row), width)
		}
		for x, r := range []byte(row) {
			kind, err := tileFromRune(rune(r))
			if err != nil {
				return nil, fmt.Errorf("engine: row %d col %d: %w", y, x, err)
			}
			g.cells[y*width+x] = kind
		}
	}

	return g, nil
}

func tileFromRune(r rune) (TileKind, error) {
	switch r {
	case '.', ' ', 'D': // doorways behave as open floor
		return TileOpen, nil
	case '#':
		return TileWall, nil
	case 'L':
		return TileLowerWall, nil
	case 'P':
		return TilePillar, nil
	case 'C':
		return TileCorner, nil
	default:
		return TileOpen, fmt.Errorf("unknown tile %q", r)
	}
}

// Width returns the map width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the map height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Classify returns the tile kind at integer cell coordinates, or
// ErrOutOfBounds outside [0,width) x [0,height).
func (g *Grid) Classify(x, y int) (TileKind, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return TileOpen, ErrOutOfBounds
	}
	return g.cells[y*g.width+x], nil
}

// wallNeighbors counts orthogonally adjacent full walls, used to flag
// wall junctions. Out-of-bounds neighbors do not count.
func (g *Grid) wallNeighbors(x, y int) int {
	count := 0
	for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		if k, err := g.Classify(x+d[0], y+d[1]); err == nil && k == TileWall {
			count++
		}
	}
	return count
}

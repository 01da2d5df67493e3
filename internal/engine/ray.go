// Package engine implements the raycasting core of the raider game:
// grid model, ray marching, column projection, hit-scan combat, movement
// and minimap lookups. It contains pure logic only (no Bubble Tea, no
// terminal access), so every function here is deterministic and testable.
package engine

import (
	"math"

	"github.com/vovakirdan/tui-raider/internal/core"
)

// HitKind classifies what a marched ray ended on.
type HitKind int

const (
	HitNone      HitKind = iota // ray exceeded the depth limit
	HitWall                     // full-height wall face
	HitLowerWall                // half-height wall
	HitPillar                   // pillar column
	HitCorner                   // corner decoration or a wall junction
)

// Orientation distinguishes which face of a wall the ray struck.
type Orientation int

const (
	OrientVertical   Orientation = iota // north-south face (west/east side)
	OrientHorizontal                    // east-west face (north/south side)
)

// RayHit is the result of marching a single ray. It is ephemeral: one
// value per column per frame, never retained.
type RayHit struct {
	Distance    float64
	Kind        HitKind
	Orientation Orientation
	Boundary    bool // struck within EdgeTolerance of a cell border
}

// March advances a ray from (ox, oy) along angleDeg in fixed StepSize
// increments until it leaves the depth limit or enters a non-passable
// cell. Out-of-bounds counts as a wall at maximum depth. The function is
// pure: identical inputs always produce identical hits.
//
// The fixed-step scan deliberately trades exactness for simplicity: the
// step is far smaller than a tile, so no cell can be skipped, and cell
// membership by truncation keeps boundary oscillation deterministic.
func March(g *Grid, tun Tunables, ox, oy, angleDeg float64) RayHit {
	rad := core.Radians(angleDeg)
	dirX := math.Cos(rad)
	dirY := math.Sin(rad)

	dist := 0.0
	for dist < tun.Depth {
		dist += tun.StepSize
		rayX := ox + dirX*dist
		rayY := oy + dirY*dist

		mapX := int(rayX)
		mapY := int(rayY)

		kind, err := g.Classify(mapX, mapY)
		if err != nil {
			// Past the map edge: treat as an opaque wall at the depth
			// limit, matching the sky-box illusion at map borders.
			return RayHit{Distance: tun.Depth, Kind: HitWall}
		}

		switch kind {
		case TileOpen:
			continue

		case TilePillar:
			return RayHit{Distance: dist, Kind: HitPillar, Boundary: true}

		case TileCorner:
			return RayHit{Distance: dist, Kind: HitCorner, Boundary: true}

		case TileWall, TileLowerWall:
			fracX := rayX - float64(mapX)
			fracY := rayY - float64(mapY)

			hit := RayHit{Distance: dist}

			switch {
			case fracX < tun.EdgeTolerance || fracX > 1-tun.EdgeTolerance:
				hit.Orientation = OrientVertical
			case fracY < tun.EdgeTolerance || fracY > 1-tun.EdgeTolerance:
				hit.Orientation = OrientHorizontal
			}
			hit.Boundary = fracX < tun.EdgeTolerance || fracX > 1-tun.EdgeTolerance ||
				fracY < tun.EdgeTolerance || fracY > 1-tun.EdgeTolerance

			if kind == TileLowerWall {
				hit.Kind = HitLowerWall
				return hit
			}

			// Junctions (three or more adjacent walls) render with the
			// corner ramp; geometry is unchanged.
			if g.wallNeighbors(mapX, mapY) >= 3 {
				hit.Kind = HitCorner
			} else {
				hit.Kind = HitWall
			}
			return hit
		}
	}

	return RayHit{Distance: tun.Depth, Kind: HitNone}
}

// Fisheye returns the distance correction factor for a ray at rayAngle
// seen from a view centered on viewAngle. FOV construction keeps the
// offset within ±FOV/2, so the cosine stays positive.
func Fisheye(rayAngle, viewAngle float64) float64 {
	return math.Cos(core.Radians(rayAngle - viewAngle))
}

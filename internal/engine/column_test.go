package engine

import (
	"testing"

	"github.com/vovakirdan/tui-raider/internal/core"
)

func TestProjectSpan(t *testing.T) {
	const viewHeight = 24

	near := ProjectSpan(HitWall, 2, viewHeight)
	far := ProjectSpan(HitWall, 8, viewHeight)
	if near.Ceiling >= far.Ceiling || near.Floor <= far.Floor {
		t.Errorf("near span %+v should enclose far span %+v", near, far)
	}

	// Lower walls project at half height at the same distance.
	full := ProjectSpan(HitWall, 4, viewHeight)
	lower := ProjectSpan(HitLowerWall, 4, viewHeight)
	if lower.Floor-lower.Ceiling >= full.Floor-full.Ceiling {
		t.Errorf("lower wall span %+v not narrower than full span %+v", lower, full)
	}

	// Point blank clamps to the view instead of overflowing.
	blank := ProjectSpan(HitWall, 0.1, viewHeight)
	if blank.Ceiling != 0 || blank.Floor != viewHeight-1 {
		t.Errorf("point blank span = %+v, want full view", blank)
	}
}

func TestCastColumnHeight(t *testing.T) {
	w, err := NewWorld(&Levels[0], DefaultTunables())
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	for _, h := range []int{10, 22, 48} {
		col := CastColumn(w, DefaultTunables(), w.Player.Angle, h, 0)
		if len(col) != h {
			t.Errorf("column height = %d, want %d", len(col), h)
		}
	}
}

func TestCastColumnLayering(t *testing.T) {
	// Straight down a corridor the column stacks sky, wall, floor in
	// order, with no blank rows.
	w := &World{
		Player: Player{X: 1.5, Y: 1.5, Angle: 0},
	}
	g, err := ParseGrid([]string{
		"##########",
		"#........#",
		"##########",
	})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	w.Grid = g

	tun := DefaultTunables()
	const viewHeight = 24
	col := CastColumn(w, tun, 0, viewHeight, 0)

	hit := March(g, tun, w.Player.X, w.Player.Y, 0)
	span := ProjectSpan(hit.Kind, hit.Distance*Fisheye(0, 0), viewHeight)

	for y, cell := range col {
		if cell.Rune == 0 {
			t.Fatalf("row %d is empty", y)
		}
		switch {
		case y < span.Ceiling:
			if cell.Color == core.ColorBrightWhite {
				t.Errorf("row %d above the span rendered as wall", y)
			}
		case y <= span.Floor:
			if cell.Color != core.ColorBrightWhite {
				t.Errorf("row %d inside the span = %+v, want wall", y, cell)
			}
		default:
			if cell.Color != core.ColorGreen {
				t.Errorf("row %d below the span = %+v, want floor", y, cell)
			}
		}
	}
}

func TestCastColumnSpriteOccludedByWall(t *testing.T) {
	// Enemy behind the wall never shows up in the column.
	g, err := ParseGrid([]string{
		"########",
		"#..#...#",
		"########",
	})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	w := &World{
		Grid:    g,
		Player:  Player{X: 1.5, Y: 1.5, Angle: 0},
		Enemies: []Enemy{{X: 5.5, Y: 1.5, Alive: true, Class: ClassNormal}},
	}
	tun := DefaultTunables()

	col := CastColumn(w, tun, 0, 24, 0)
	for y, cell := range col {
		if cell.Rune == '&' || cell.Rune == '@' {
			t.Errorf("row %d shows an occluded sprite: %+v", y, cell)
		}
	}
}

func TestCastColumnSpriteVisible(t *testing.T) {
	g, err := ParseGrid([]string{
		"##########",
		"#........#",
		"##########",
	})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	w := &World{
		Grid:    g,
		Player:  Player{X: 1.5, Y: 1.5, Angle: 0},
		Enemies: []Enemy{{X: 5.5, Y: 1.5, Alive: true, Class: ClassNormal}},
	}
	tun := DefaultTunables()

	found := false
	for _, cell := range CastColumn(w, tun, 0, 24, 0) {
		if cell.Rune == '&' {
			found = true
		}
	}
	if !found {
		t.Error("enemy dead ahead in an open corridor did not render")
	}

	// Animation frame 1 swaps the glyph.
	found = false
	for _, cell := range CastColumn(w, tun, 0, 24, 1) {
		if cell.Rune == '@' {
			found = true
		}
	}
	if !found {
		t.Error("animation frame 1 did not swap the sprite glyph")
	}
}

func TestCastColumnDeadEnemyInvisible(t *testing.T) {
	g, err := ParseGrid([]string{
		"##########",
		"#........#",
		"##########",
	})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	w := &World{
		Grid:    g,
		Player:  Player{X: 1.5, Y: 1.5, Angle: 0},
		Enemies: []Enemy{{X: 5.5, Y: 1.5, Alive: false, Class: ClassNormal}},
	}

	for _, cell := range CastColumn(w, DefaultTunables(), 0, 24, 0) {
		if cell.Rune == '&' || cell.Rune == '@' {
			t.Fatal("dead enemy rendered")
		}
	}
}

func TestMinimapCells(t *testing.T) {
	g, err := ParseGrid([]string{
		"#####",
		"#.LP#",
		"#.C.#",
		"#...#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	w := &World{
		Grid:    g,
		Player:  Player{X: 2.5, Y: 2.5, Angle: 0},
		Enemies: []Enemy{{X: 3.5, Y: 3.5, Alive: true, Class: ClassFast}},
	}
	const size = 5

	// With the player at the window center, (relX, relY) maps onto the
	// grid directly.
	cases := []struct {
		name       string
		relX, relY int
		want       rune
	}{
		{"wall", 0, 0, '■'},
		{"lower wall", 2, 1, '□'},
		{"pillar", 3, 1, '◘'},
		{"player marker", 2, 2, '▲'},
		{"open floor", 1, 3, '·'},
		{"fast enemy", 3, 3, '◇'},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MinimapCell(w, c.relX, c.relY, size)
			if got.Rune != c.want {
				t.Errorf("cell (%d,%d) = %q, want %q", c.relX, c.relY, got.Rune, c.want)
			}
		})
	}

	// Off the edge of the map the radar shows blank space.
	if got := MinimapCell(w, -10, -10, size); got.Rune != ' ' {
		t.Errorf("out of bounds cell = %q, want blank", got.Rune)
	}
}

func TestMinimapDirectionGlyphs(t *testing.T) {
	g, err := ParseGrid([]string{"###", "#.#", "###"})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	w := &World{Grid: g, Player: Player{X: 1.5, Y: 1.5}}

	cases := []struct {
		angle float64
		want  rune
	}{
		{0, '▲'},
		{90, '▶'},
		{180, '▼'},
		{270, '◀'},
		{359, '▲'},
	}
	for _, c := range cases {
		w.Player.Angle = c.angle
		got := MinimapCell(w, 1, 1, 3)
		if got.Rune != c.want {
			t.Errorf("angle %v: glyph %q, want %q", c.angle, got.Rune, c.want)
		}
	}
}

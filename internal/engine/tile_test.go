package engine

import (
	"errors"
	"testing"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{
		"#####",
		"#.LP#",
		"#C.D#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if g.Width() != 5 || g.Height() != 4 {
		t.Errorf("size = %dx%d, want 5x4", g.Width(), g.Height())
	}

	checks := []struct {
		x, y int
		want TileKind
	}{
		{0, 0, TileWall},
		{1, 1, TileOpen},
		{2, 1, TileLowerWall},
		{3, 1, TilePillar},
		{1, 2, TileCorner},
		{3, 2, TileOpen}, // doors read as open floor
	}
	for _, c := range checks {
		kind, err := g.Classify(c.x, c.y)
		if err != nil {
			t.Errorf("Classify(%d,%d) failed: %v", c.x, c.y, err)
			continue
		}
		if kind != c.want {
			t.Errorf("Classify(%d,%d) = %v, want %v", c.x, c.y, kind, c.want)
		}
	}
}

func TestParseGridRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"###", "##"}},
		{"unknown rune", []string{"#?#"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseGrid(c.rows); err == nil {
				t.Errorf("ParseGrid accepted %q", c.rows)
			}
		})
	}
}

func TestClassifyOutOfBounds(t *testing.T) {
	g, err := ParseGrid([]string{"###", "#.#", "###"})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		_, err := g.Classify(pt[0], pt[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Classify(%d,%d) err = %v, want ErrOutOfBounds", pt[0], pt[1], err)
		}
	}
}

func TestPassable(t *testing.T) {
	if !Passable(TileOpen) || !Passable(TileCorner) {
		t.Error("open and corner cells should be passable")
	}
	if Passable(TileWall) || Passable(TileLowerWall) || Passable(TilePillar) {
		t.Error("walls, lower walls and pillars should block")
	}
}

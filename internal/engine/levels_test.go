package engine

import "testing"

func TestBuiltinLevelsAreValid(t *testing.T) {
	if LevelCount() == 0 {
		t.Fatal("no built-in levels")
	}

	for i := range Levels {
		lvl := &Levels[i]
		t.Run(lvl.ID, func(t *testing.T) {
			w, err := NewWorld(lvl, DefaultTunables())
			if err != nil {
				t.Fatalf("NewWorld failed: %v", err)
			}

			kind, err := w.Grid.Classify(int(w.Player.X), int(w.Player.Y))
			if err != nil || !Passable(kind) {
				t.Errorf("player starts on %v (%v)", kind, err)
			}

			if len(w.Enemies) != len(lvl.Spawns) {
				t.Fatalf("enemy count %d != spawn count %d", len(w.Enemies), len(lvl.Spawns))
			}
			for j, e := range w.Enemies {
				if !e.Alive {
					t.Errorf("enemy %d spawned dead", j)
				}
			}
			if w.AliveCount() != len(lvl.Spawns) {
				t.Errorf("AliveCount = %d, want %d", w.AliveCount(), len(lvl.Spawns))
			}
		})
	}
}

func TestLevelLookup(t *testing.T) {
	if GetLevel(-1) != nil || GetLevel(LevelCount()) != nil {
		t.Error("out of range index should return nil")
	}
	if GetLevel(0) != &Levels[0] {
		t.Error("GetLevel(0) should return the first level")
	}

	if LevelByID("citadel") == nil {
		t.Error("citadel missing")
	}
	if LevelByID("no-such-map") != nil {
		t.Error("unknown id should return nil")
	}

	names := LevelNames()
	if len(names) != LevelCount() {
		t.Errorf("LevelNames returned %d names, want %d", len(names), LevelCount())
	}
	for i, n := range names {
		if n == "" {
			t.Errorf("level %d has an empty name", i)
		}
	}
}

package engine

// Spawn places one enemy at world start.
type Spawn struct {
	X, Y  float64
	Class EnemyClass
}

// Level is a built-in map definition: layout runes plus actor placement.
// Layouts are validated by ParseGrid at world construction.
type Level struct {
	ID          string
	Name        string
	Layout      []string
	PlayerX     float64
	PlayerY     float64
	PlayerAngle float64
	Spawns      []Spawn
}

// Levels holds every built-in map, in menu order.
var Levels = []Level{
	{
		ID:   "citadel",
		Name: "The Citadel",
		Layout: []string{
			"########################################",
			"#......................................#",
			"#...###LLL#............................#",
			"#...#C...#............................P#",
			"#...#....D.........................#####",
			"#...######...........................###",
			"#....P...P............................##",
			"#....####...........................####",
			"#....#..#.............................##",
			"#....#C.#....###......................##",
			"#....####....#C#......................##",
			"#............###.....................###",
			"#...P................................P##",
			"#...#...#...#...#.....................##",
			"#......................................#",
			"########################################",
		},
		PlayerX:     2.0,
		PlayerY:     2.0,
		PlayerAngle: 0,
		Spawns: []Spawn{
			{X: 5, Y: 3, Class: ClassNormal},
			{X: 10, Y: 5, Class: ClassNormal},
			{X: 8, Y: 8, Class: ClassFast},
			{X: 15, Y: 7, Class: ClassNormal},
			{X: 12, Y: 10, Class: ClassStrong},
			{X: 18, Y: 8, Class: ClassFast},
			{X: 20, Y: 12, Class: ClassNormal},
		},
	},
	{
		ID:   "warrens",
		Name: "The Warrens",
		Layout: []string{
			"################################",
			"#..............................#",
			"#..####....P........####.......#",
			"#..#C.#.............#..#..L....#",
			"#..#..D.....P.......D..#..L....#",
			"#..####.............####..L....#",
			"#.........P....................#",
			"#....LLL........####...........#",
			"#....................C.........#",
			"#...P.......P...........####...#",
			"#..............................#",
			"################################",
		},
		PlayerX:     1.5,
		PlayerY:     1.5,
		PlayerAngle: 0,
		Spawns: []Spawn{
			{X: 9, Y: 3, Class: ClassNormal},
			{X: 14, Y: 4, Class: ClassFast},
			{X: 21, Y: 6, Class: ClassNormal},
			{X: 9, Y: 8, Class: ClassStrong},
			{X: 24, Y: 8, Class: ClassFast},
			{X: 16, Y: 10, Class: ClassNormal},
			{X: 26, Y: 6, Class: ClassStrong},
			{X: 5, Y: 10, Class: ClassNormal},
		},
	},
}

// LevelCount returns the number of built-in maps.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index, or nil when out of range.
func GetLevel(i int) *Level {
	if i < 0 || i >= len(Levels) {
		return nil
	}
	return &Levels[i]
}

// LevelByID looks a level up by its identifier.
func LevelByID(id string) *Level {
	for i := range Levels {
		if Levels[i].ID == id {
			return &Levels[i]
		}
	}
	return nil
}

// LevelNames returns the display names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i := range Levels {
		names[i] = Levels[i].Name
	}
	return names
}

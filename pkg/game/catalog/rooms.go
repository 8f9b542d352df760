package catalog

import (
	"dungeoncrawl/pkg/engine/world"
)

// blueprints is the built-in room catalog. '#' is wall, '.' is floor and '1'
// is a gate inside the room. Points are relative to the top-left corner.
var blueprints = []Blueprint{
	{
		Size:  Mini,
		Spawn: world.Coord{X: 2, Y: 2},
		Item:  &world.Coord{X: 2, Y: 2},
		Gold:  []world.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 1, Y: 3}, {X: 3, Y: 1}},
		Pattern: []string{
			"#####",
			"#...#",
			"#...#",
			"#...#",
			"#####",
		},
	},
	{
		Size:  Mini,
		Spawn: world.Coord{X: 2, Y: 2},
		Item:  &world.Coord{X: 2, Y: 2},
		Gold:  []world.Coord{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}},
		Pattern: []string{
			"#####",
			"#...#",
			"#...#",
			"#...#",
			"#####",
		},
	},
	{
		Size:    Mini,
		Spawn:   world.Coord{X: 4, Y: 2},
		Item:    &world.Coord{X: 4, Y: 2},
		Gold:    []world.Coord{{X: 2, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 1}, {X: 4, Y: 3}, {X: 5, Y: 1}, {X: 5, Y: 3}, {X: 6, Y: 2}, {X: 7, Y: 1}, {X: 7, Y: 3}},
		Enemies: []world.Coord{{X: 3, Y: 2}, {X: 6, Y: 2}},
		Pattern: []string{
			"##########",
			"#........#",
			"#........#",
			"#........#",
			"##########",
		},
	},
	{
		Size:    Mini,
		Spawn:   world.Coord{X: 2, Y: 4},
		Item:    &world.Coord{X: 2, Y: 4},
		Gold:    []world.Coord{{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 4}, {X: 3, Y: 4}, {X: 1, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 6}, {X: 1, Y: 7}, {X: 3, Y: 7}},
		Enemies: []world.Coord{{X: 2, Y: 3}, {X: 2, Y: 6}},
		Pattern: []string{
			"#####",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#####",
		},
	},
	{
		Size:    Small,
		Spawn:   world.Coord{X: 3, Y: 3},
		Item:    &world.Coord{X: 3, Y: 3},
		Enemies: []world.Coord{{X: 2, Y: 2}, {X: 5, Y: 2}, {X: 2, Y: 5}, {X: 5, Y: 5}},
		Pattern: []string{
			"########",
			"#......#",
			"#......#",
			"#......#",
			"#......#",
			"#......#",
			"#......#",
			"########",
		},
	},
	{
		Size:    Small,
		Spawn:   world.Coord{X: 7, Y: 3},
		Item:    &world.Coord{X: 7, Y: 3},
		Enemies: []world.Coord{{X: 3, Y: 2}, {X: 6, Y: 2}, {X: 10, Y: 2}, {X: 12, Y: 2}, {X: 3, Y: 5}, {X: 6, Y: 5}, {X: 10, Y: 5}, {X: 12, Y: 5}},
		Pattern: []string{
			"################",
			"#..............#",
			"#..............#",
			"#..............#",
			"#..............#",
			"#..............#",
			"#..............#",
			"################",
		},
	},
	{
		Size:    Small,
		Spawn:   world.Coord{X: 2, Y: 5},
		Enemies: []world.Coord{{X: 2, Y: 2}, {X: 5, Y: 2}, {X: 10, Y: 5}, {X: 13, Y: 5}},
		Pattern: []string{
			"################",
			"#..........#...#",
			"#..........#...#",
			"#......##..#...#",
			"#...#..##......#",
			"#...#..........#",
			"#...#..........#",
			"################",
		},
	},
	{
		Size:    Small,
		Spawn:   world.Coord{X: 3, Y: 6},
		Item:    &world.Coord{X: 12, Y: 2},
		Enemies: []world.Coord{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 9, Y: 6}, {X: 13, Y: 6}},
		Pattern: []string{
			"################",
			"#........#.....#",
			"#........#.....#",
			"#........#.....#",
			"###1###..###1###",
			"#.....#........#",
			"#.....#........#",
			"#.....#........#",
			"################",
		},
	},
	{
		Size:    Small,
		Spawn:   world.Coord{X: 2, Y: 2},
		Enemies: []world.Coord{{X: 2, Y: 2}, {X: 5, Y: 2}, {X: 2, Y: 5}, {X: 5, Y: 5}},
		Pattern: []string{
			"########",
			"#......#",
			"#......#",
			"#..##..#",
			"#..##..#",
			"#......#",
			"#......#",
			"########",
		},
	},
	{
		Size:    Small,
		Spawn:   world.Coord{X: 2, Y: 2},
		Enemies: []world.Coord{{X: 2, Y: 2}, {X: 7, Y: 2}, {X: 2, Y: 7}, {X: 7, Y: 7}},
		Pattern: []string{
			"##########",
			"#........#",
			"#........#",
			"#..####..#",
			"#..####..#",
			"#..####..#",
			"#..####..#",
			"#........#",
			"#........#",
			"##########",
		},
	},
	{
		Size:    Mid,
		Spawn:   world.Coord{X: 3, Y: 3},
		Item:    &world.Coord{X: 5, Y: 5},
		Enemies: []world.Coord{{X: 2, Y: 2}, {X: 9, Y: 2}, {X: 2, Y: 9}, {X: 9, Y: 9}, {X: 4, Y: 4}, {X: 7, Y: 4}, {X: 4, Y: 7}, {X: 7, Y: 7}},
		Pattern: []string{
			"############",
			"#..........#",
			"#..........#",
			"#..........#",
			"#..........#",
			"#..........#",
			"#..........#",
			"#..........#",
			"#..........#",
			"#..........#",
			"#..........#",
			"############",
		},
	},
	{
		Size:    Mid,
		Spawn:   world.Coord{X: 7, Y: 7},
		Item:    &world.Coord{X: 7, Y: 7},
		Enemies: []world.Coord{{X: 6, Y: 6}, {X: 9, Y: 6}, {X: 6, Y: 9}, {X: 9, Y: 9}},
		Pattern: []string{
			"############",
			"#..........#",
			"#..........#",
			"#..........#",
			"#...###11###",
			"#...#......#",
			"#...#......#",
			"#...#......#",
			"#...#......#",
			"#...#......#",
			"#...#......#",
			"############",
		},
	},
	{
		Size:    Mid,
		Spawn:   world.Coord{X: 5, Y: 5},
		Item:    &world.Coord{X: 5, Y: 5},
		Enemies: []world.Coord{{X: 2, Y: 2}, {X: 9, Y: 2}, {X: 2, Y: 9}, {X: 9, Y: 9}, {X: 4, Y: 4}, {X: 7, Y: 4}, {X: 4, Y: 7}, {X: 7, Y: 7}},
		Pattern: []string{
			"############",
			"#..........#",
			"#..........#",
			"#..######..#",
			"#..#....#..#",
			"#..1....1..#",
			"#..1....1..#",
			"#..#....#..#",
			"#..##..##..#",
			"#...#..#...#",
			"#...#..#...#",
			"############",
		},
	},
	{
		Size:    Mid,
		Spawn:   world.Coord{X: 2, Y: 5},
		Enemies: []world.Coord{{X: 6, Y: 6}, {X: 9, Y: 2}},
		Pattern: []string{
			"################",
			"#..........#...#",
			"#..........#...#",
			"#..........#...#",
			"#...###11###...#",
			"#...#..........#",
			"#...#..........#",
			"#...#..........#",
			"################",
		},
	},
	{
		Size:    Mid,
		Spawn:   world.Coord{X: 2, Y: 2},
		Item:    &world.Coord{X: 9, Y: 5},
		Enemies: []world.Coord{{X: 3, Y: 2}, {X: 8, Y: 2}, {X: 3, Y: 9}, {X: 8, Y: 9}, {X: 11, Y: 2}, {X: 16, Y: 2}, {X: 11, Y: 9}, {X: 16, Y: 9}},
		Pattern: []string{
			"####################",
			"#..................#",
			"#..................#",
			"#..................#",
			"#...####....####...#",
			"#...####....####...#",
			"#...####....####...#",
			"#...####....####...#",
			"#..................#",
			"#..................#",
			"#..................#",
			"####################",
		},
	},
	{
		Size:    Mid,
		Spawn:   world.Coord{X: 5, Y: 2},
		Item:    &world.Coord{X: 4, Y: 9},
		Enemies: []world.Coord{{X: 4, Y: 7}, {X: 7, Y: 7}, {X: 4, Y: 12}, {X: 7, Y: 12}},
		Pattern: []string{
			"############",
			"#..........#",
			"#..........#",
			"#..........#",
			"#..######..#",
			"#..######..#",
			"#..........#",
			"#..........#",
			"#..........#",
			"#....##....#",
			"#....##....#",
			"#..........#",
			"#..........#",
			"#..........#",
			"#..######..#",
			"#..######..#",
			"#..........#",
			"#..........#",
			"#..........#",
			"############",
		},
	},
	{
		Size:  Large,
		Spawn: world.Coord{X: 9, Y: 10},
		Pattern: []string{
			"######################",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"######################",
		},
	},
	{
		Size:  Large,
		Spawn: world.Coord{X: 9, Y: 10},
		Pattern: []string{
			"######################",
			"#....................#",
			"#....................#",
			"#....................#",
			"#...####......####...#",
			"#...####......####...#",
			"#...####......####...#",
			"#...####......####...#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#....................#",
			"#...####......####...#",
			"#...####......####...#",
			"#...####......####...#",
			"#...####......####...#",
			"#....................#",
			"#....................#",
			"#....................#",
			"######################",
		},
	},
}

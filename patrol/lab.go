package patrol

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
)

// Tile is a cell of a lab map.
type Tile int

const (
	// Ground is walkable floor ('.').
	Ground Tile = iota
	// Wall is an obstruction ('#').
	Wall
	// Guard marks the guard's starting cell (^ > v <); it is walkable.
	Guard
)

// String renders the tile as its map character. Guard renders as 'G'.
func (t Tile) String() string {
	switch t {
	case Ground:
		return "."
	case Wall:
		return "#"
	case Guard:
		return "G"
	}
	return "?"
}

// LabTerrain classifies lab tiles: walls block, ground and guard markers are open.
func LabTerrain(t Tile) Terrain {
	if t == Wall {
		return Obstacle
	}
	return Open
}

// ParseLab reads a lab map of '.', '#' and one guard arrow (^ > v <).
// It returns the grid and the guard's starting state. Any other character
// fails with a wrapped grid.ErrUnknownRune; a map without a guard fails with
// ErrNoGuard. With several arrows the first in row-major order wins.
func ParseLab(input string) (*grid.Grid[Tile], Actor, error) {
	g, err := grid.ParseStrict(input, func(r rune) (Tile, bool, error) {
		switch r {
		case '.':
			return Ground, true, nil
		case '#':
			return Wall, true, nil
		}
		if _, err := grid.ParseDirection(r); err != nil {
			return Ground, false, fmt.Errorf("patrol: lab map: %w", err)
		}
		return Guard, true, nil
	})
	if err != nil {
		return nil, Actor{}, err
	}

	loc, _, ok := g.Find(func(_ grid.Location, t Tile) bool { return t == Guard })
	if !ok {
		return nil, Actor{}, ErrNoGuard
	}
	// The tile keeps no facing; read it back from the arrow in the input.
	row := []rune(strings.Split(input, "\n")[loc.Y])
	facing, _ := grid.ParseDirection(row[loc.X])

	return g, Actor{Location: loc, Facing: facing}, nil
}

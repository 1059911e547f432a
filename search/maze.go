package search

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/grid"
)

// State is a position plus the facing it was entered with.
type State struct {
	Location grid.Location
	Facing   grid.Direction
}

// String renders the state as "(x,y)^".
func (s State) String() string {
	return s.Location.String() + s.Facing.String()
}

// TurnSuccessors builds the successor function of the turn-cost maze.
//
// From (L, f) every open orthogonal neighbour of L is a successor except the
// one behind, reached by stepping with facing d:
//
//   - d == f costs cost.Move;
//   - d is a 90° turn and costs cost.Move + cost.Turn.
//
// Cells absent from g are walls, as are cells for which open is false.
func TurnSuccessors[T any](g *grid.Grid[T], open func(T) bool, cost MazeCost) func(State) []Edge[State] {
	return func(s State) []Edge[State] {
		edges := make([]Edge[State], 0, 3)
		back := s.Facing.Opposite()
		for d, n := range g.OptionalSurroundingLocations(s.Location) {
			dir := grid.Direction(d)
			if dir == back || !n.OK || !open(n.Value) {
				continue
			}
			c := cost.Move
			if dir != s.Facing {
				c += cost.Turn
			}
			edges = append(edges, Edge[State]{To: State{Location: n.Location, Facing: dir}, Cost: c})
		}
		return edges
	}
}

// ShortestTurnPath finds the cheapest route from start, initially facing
// facing, to goal. The facing on arrival is unconstrained.
//
// Pricing comes from WithMazeCost (DefaultMazeCost otherwise). Errors are
// those of Dijkstra; an unreachable goal is ErrNoPath.
func ShortestTurnPath[T any](
	g *grid.Grid[T],
	start grid.Location,
	facing grid.Direction,
	goal grid.Location,
	open func(T) bool,
	opts ...Option,
) (Result[State], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result[State]{}, err
	}
	cfg.Logger.WithFields(logrus.Fields{
		"start": start.String(),
		"goal":  goal.String(),
		"move":  cfg.Maze.Move,
		"turn":  cfg.Maze.Turn,
	}).Debug("search: turn-cost maze")

	return Dijkstra(
		State{Location: start, Facing: facing},
		TurnSuccessors(g, open, cfg.Maze),
		func(s State) bool { return s.Location == goal },
		opts...,
	)
}

// Locations projects a state path onto the cells it visits.
func Locations(path []State) []grid.Location {
	out := make([]grid.Location, len(path))
	for i, s := range path {
		out[i] = s.Location
	}
	return out
}

// MazeOpen reports whether a ParseMaze cell can be walked on.
func MazeOpen(r rune) bool {
	return r != '#'
}

// ParseMaze reads a maze of '#' walls and '.' floor with one 'S' start and
// one 'E' end marker. Both markers are stored as '.'.
//
// Any other rune wraps grid.ErrUnknownRune; a missing marker is
// ErrMissingMarker.
func ParseMaze(input string) (g *grid.Grid[rune], start, end grid.Location, err error) {
	g, err = grid.ParseStrict(input, func(r rune) (rune, bool, error) {
		switch r {
		case '#', '.', 'S', 'E':
			return r, true, nil
		}
		return 0, false, fmt.Errorf("%w %q", grid.ErrUnknownRune, r)
	})
	if err != nil {
		return nil, start, end, fmt.Errorf("search: maze: %w", err)
	}

	var ok bool
	if start, ok = takeMarker(g, 'S'); !ok {
		return nil, start, end, fmt.Errorf("%w: start 'S'", ErrMissingMarker)
	}
	if end, ok = takeMarker(g, 'E'); !ok {
		return nil, start, end, fmt.Errorf("%w: end 'E'", ErrMissingMarker)
	}
	return g, start, end, nil
}

// takeMarker replaces the first occurrence of marker with '.'.
func takeMarker(g *grid.Grid[rune], marker rune) (grid.Location, bool) {
	l, _, ok := g.Find(func(_ grid.Location, v rune) bool { return v == marker })
	if ok {
		g.Set(l, '.')
	}
	return l, ok
}

// RenderPath draws the maze with the cells of path marked by their facing
// glyph, start and end included.
func RenderPath(g *grid.Grid[rune], path []State) string {
	marked := g.Clone()
	for _, s := range path {
		marked.Set(s.Location, []rune(s.Facing.String())[0])
	}
	var b strings.Builder
	_ = marked.Display(&b, nil)
	return strings.TrimPrefix(b.String(), "\n")
}

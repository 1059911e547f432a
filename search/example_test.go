// Package search_test provides runnable examples for the search package.
package search_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// ExampleShortestTurnPath prices a corridor with one corner.
func ExampleShortestTurnPath() {
	g, start, end, err := search.ParseMaze("######\n#S...#\n####.#\n####E#\n######")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := search.ShortestTurnPath(g, start, grid.Right, end, search.MazeOpen)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost, res.Last())
	// Output: 1005 (4,3)v
}

// ExampleDijkstra searches an implicit integer space.
func ExampleDijkstra() {
	// Doubling costs 1, incrementing costs 3.
	next := func(n int) []search.Edge[int] {
		return []search.Edge[int]{{To: n * 2, Cost: 1}, {To: n + 1, Cost: 3}}
	}
	res, err := search.Dijkstra(1, next, func(n int) bool { return n == 12 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost, res.Path)
	// Output: 6 [1 2 3 6 12]
}

// ExampleBFS reports an unreachable goal with ErrNoPath.
func ExampleBFS() {
	g := grid.Parse("..#.", func(r rune) (rune, bool) { return r, r == '.' })
	step := func(l grid.Location) []grid.Location {
		var out []grid.Location
		for _, n := range g.SurroundingLocations(l) {
			out = append(out, n.Location)
		}
		return out
	}
	_, err := search.BFS(grid.Location{}, step, func(l grid.Location) bool { return l.X == 3 })
	fmt.Println(errors.Is(err, search.ErrNoPath))
	// Output: true
}

// ExampleCountPaths counts monotone lattice paths across a 3x3 block.
func ExampleCountPaths() {
	corner := grid.Location{X: 2, Y: 2}
	next := func(l grid.Location) []grid.Location {
		var out []grid.Location
		if l.X < corner.X {
			out = append(out, grid.Location{X: l.X + 1, Y: l.Y})
		}
		if l.Y < corner.Y {
			out = append(out, grid.Location{X: l.X, Y: l.Y + 1})
		}
		return out
	}
	n, _ := search.CountPaths(grid.Location{}, next, func(l grid.Location) bool { return l == corner })
	fmt.Println(n)
	// Output: 6
}

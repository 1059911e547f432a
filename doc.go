// Package gridwalk is a toolkit for puzzles played out on 2D character maps:
// parse a map into a sparse grid, walk actors across it, and search it.
//
// What is in the box?
//
//	grid/      sparse Grid[T] keyed by Location, parsing, neighbours,
//	           bounding box, regions and perimeters, text and tcell rendering
//	patrol/    deterministic turn-on-obstacle stepper, loop detection,
//	           parallel loop-placement search, box-pushing warehouse robot
//	search/    generic Dijkstra, BFS, reachability and path counting over
//	           implicit state spaces, plus the turn-cost maze search
//	examples/  runnable walkthrough of all three packages
//
// Conventions shared by every package:
//
//   - Locations are non-negative (X, Y) with Y growing downwards.
//   - Neighbours are always enumerated Up, Right, Down, Left.
//   - Missing cells are reported as (zero, false), never as errors.
//   - Search exhaustion is a sentinel error (search.ErrNoPath), not a panic.
//   - Long-running operations take functional options: WithContext,
//     WithLogger (logrus) and package-specific knobs. Spans go to the global
//     OpenTelemetry provider.
//
// Quick ASCII example:
//
//	....#.....
//	....^....#      the guard walks up, meets '#', turns right
//	..........      and keeps going until it leaves the map
//
//	go get github.com/katalvlaran/gridwalk
package gridwalk

package grid

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Regions finds all contiguous groups of populated cells, where two orthogonal
// neighbours belong to the same group when same(a, b) holds for their values.
// Use SameValue for comparable cells.
//
// Seeds are taken in row-major order and each group is collected with a
// queue-based flood fill, so the result is deterministic: groups are ordered by
// their first (top-left-most) cell, and each group is sorted row-major.
//
// Time:   O(N log N) for the sorted seed scan, O(N) for the fills.
// Memory: O(N) for the seen set and output.
func (g *Grid[T]) Regions(same func(a, b T) bool) [][]Location {
	seen := mapset.New[Location]()
	var regions [][]Location

	for _, seed := range g.Locations() {
		if seen.Has(seed) {
			continue
		}
		seedValue := g.cells[seed]
		queue := []Location{seed}
		seen.Put(seed)

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, n := range g.SurroundingLocations(u) {
				if seen.Has(n.Location) || !same(seedValue, n.Value) {
					continue
				}
				seen.Put(n.Location)
				queue = append(queue, n.Location)
			}
		}
		slices.SortFunc(queue, Location.Compare)
		regions = append(regions, queue)
	}
	return regions
}

// SameValue is the equality predicate for Regions over comparable cells.
func SameValue[T comparable](a, b T) bool {
	return a == b
}

// Perimeter counts the unit edges of region that do not touch another member
// of region. Edges on the grid border count as exposed.
func Perimeter(region []Location) int {
	members := mapset.New[Location]()
	for _, l := range region {
		members.Put(l)
	}
	perimeter := 0
	for _, l := range region {
		for _, d := range Directions {
			n, ok := l.Step(d)
			if !ok {
				perimeter++
				continue
			}
			if !members.Has(n) {
				perimeter++
			}
		}
	}
	return perimeter
}

package grid

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Grid is a sparse mapping from Location to a cell value.
// The zero value is not usable; construct grids with New, FromMap or Parse.
// A Grid is not safe for concurrent mutation; use Clone to hand a private copy
// to another goroutine.
type Grid[T any] struct {
	cells map[Location]T
}

// New returns an empty grid.
func New[T any]() *Grid[T] {
	return &Grid[T]{cells: make(map[Location]T)}
}

// FromMap builds a grid from a copy of m.
// Panics with ErrNegativeLocation if any key has a negative coordinate.
func FromMap[T any](m map[Location]T) *Grid[T] {
	g := &Grid[T]{cells: make(map[Location]T, len(m))}
	for l, v := range m {
		g.Set(l, v)
	}
	return g
}

// Parse builds a grid from a newline-delimited character matrix.
// The line index is Y, the rune index within the line is X.
// classify returns (cell, true) to populate a location, or (_, false) to leave it absent.
// A trailing "\r" on each line is ignored.
func Parse[T any](input string, classify func(r rune) (T, bool)) *Grid[T] {
	g := New[T]()
	for y, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		x := 0
		for _, r := range line {
			if v, ok := classify(r); ok {
				g.cells[Location{X: x, Y: y}] = v
			}
			x++
		}
	}
	return g
}

// ParseStrict is Parse for classifiers that reject unknown characters.
// classify returns (cell, true, nil) to populate, (_, false, nil) to skip,
// or a non-nil error which aborts parsing and is returned wrapped with the location.
func ParseStrict[T any](input string, classify func(r rune) (T, bool, error)) (*Grid[T], error) {
	g := New[T]()
	for y, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		x := 0
		for _, r := range line {
			v, ok, err := classify(r)
			if err != nil {
				return nil, fmt.Errorf("grid: parse at %v: %w", Location{X: x, Y: y}, err)
			}
			if ok {
				g.cells[Location{X: x, Y: y}] = v
			}
			x++
		}
	}
	return g, nil
}

// Get returns the cell at (x, y). The bool is false when the location is absent.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	return g.GetByLocation(Location{X: x, Y: y})
}

// GetByLocation returns the cell at l. The bool is false when l is absent.
func (g *Grid[T]) GetByLocation(l Location) (T, bool) {
	v, ok := g.cells[l]
	return v, ok
}

// Has reports whether l is populated.
func (g *Grid[T]) Has(l Location) bool {
	_, ok := g.cells[l]
	return ok
}

// Len returns the number of populated cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Set stores v at l, replacing any existing cell.
// Panics with ErrNegativeLocation if l has a negative coordinate.
func (g *Grid[T]) Set(l Location, v T) {
	if l.X < 0 || l.Y < 0 {
		panic(fmt.Errorf("%w: %v", ErrNegativeLocation, l))
	}
	g.cells[l] = v
}

// Remove deletes the cell at l, leaving the location absent.
// It returns the removed cell and whether one was present.
func (g *Grid[T]) Remove(l Location) (T, bool) {
	v, ok := g.cells[l]
	if ok {
		delete(g.cells, l)
	}
	return v, ok
}

// Replace stores v at l and returns the previous cell, if any.
func (g *Grid[T]) Replace(l Location, v T) (T, bool) {
	old, ok := g.cells[l]
	g.Set(l, v)
	return old, ok
}

// Clone returns a deep copy of the location map. Cells are copied by value.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{cells: maps.Clone(g.cells)}
}

// Bounds returns the per-axis minimum and maximum of all populated locations.
// ok is false for an empty grid.
func (g *Grid[T]) Bounds() (lo, hi Location, ok bool) {
	first := true
	for l := range g.cells {
		if first {
			lo, hi, first = l, l, false
			continue
		}
		lo.X = min(lo.X, l.X)
		lo.Y = min(lo.Y, l.Y)
		hi.X = max(hi.X, l.X)
		hi.Y = max(hi.Y, l.Y)
	}
	return lo, hi, !first
}

// MaxLocation returns (max X, max Y) over all populated locations, each axis
// taken independently. The result need not be populated itself.
// Panics with ErrEmptyGrid on an empty grid.
func (g *Grid[T]) MaxLocation() Location {
	_, hi, ok := g.Bounds()
	if !ok {
		panic(ErrEmptyGrid)
	}
	return hi
}

// MinLocation returns (min X, min Y) over all populated locations.
// Panics with ErrEmptyGrid on an empty grid.
func (g *Grid[T]) MinLocation() Location {
	lo, _, ok := g.Bounds()
	if !ok {
		panic(ErrEmptyGrid)
	}
	return lo
}

// GetByDirection returns the neighbour of l towards d when it is populated.
func (g *Grid[T]) GetByDirection(l Location, d Direction) (Neighbor[T], bool) {
	n, ok := l.Step(d)
	if !ok {
		return Neighbor[T]{}, false
	}
	v, ok := g.cells[n]
	if !ok {
		return Neighbor[T]{}, false
	}
	return Neighbor[T]{Location: n, Value: v, OK: true}, true
}

// SurroundingLocations returns the populated orthogonal neighbours of l in
// Up, Right, Down, Left order. At most four entries are returned.
//
// Populated keys always lie inside [0, MaxLocation] on both axes, so presence
// is the only check needed to honour the bounding box.
func (g *Grid[T]) SurroundingLocations(l Location) []Neighbor[T] {
	out := make([]Neighbor[T], 0, 4)
	for _, d := range Directions {
		if n, ok := g.GetByDirection(l, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// OptionalSurroundingLocations returns exactly four slots indexed by Direction
// (Up, Right, Down, Left). Absent or out-of-bounds slots have OK == false.
func (g *Grid[T]) OptionalSurroundingLocations(l Location) [4]Neighbor[T] {
	var out [4]Neighbor[T]
	for _, d := range Directions {
		out[d], _ = g.GetByDirection(l, d)
	}
	return out
}

// FillRemaining populates every absent location of the bounding box
// [0, MaxLocation] with v. It is a no-op on an empty grid.
func (g *Grid[T]) FillRemaining(v T) {
	_, hi, ok := g.Bounds()
	if !ok {
		return
	}
	for y := 0; y <= hi.Y; y++ {
		for x := 0; x <= hi.X; x++ {
			l := Location{X: x, Y: y}
			if _, ok := g.cells[l]; !ok {
				g.cells[l] = v
			}
		}
	}
}

// Locations returns every populated location in row-major order.
func (g *Grid[T]) Locations() []Location {
	locs := slices.Collect(maps.Keys(g.cells))
	slices.SortFunc(locs, Location.Compare)
	return locs
}

// Each calls fn for every populated cell in row-major order.
// fn must not mutate g.
func (g *Grid[T]) Each(fn func(l Location, v T)) {
	for _, l := range g.Locations() {
		fn(l, g.cells[l])
	}
}

// Find returns the first populated cell, in row-major order, for which pred holds.
func (g *Grid[T]) Find(pred func(l Location, v T) bool) (Location, T, bool) {
	for _, l := range g.Locations() {
		if v := g.cells[l]; pred(l, v) {
			return l, v, true
		}
	}
	var zero T
	return Location{}, zero, false
}

// FindAll returns every populated location, in row-major order, for which pred holds.
func (g *Grid[T]) FindAll(pred func(l Location, v T) bool) []Location {
	var out []Location
	for _, l := range g.Locations() {
		if pred(l, g.cells[l]) {
			out = append(out, l)
		}
	}
	return out
}

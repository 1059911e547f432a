package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a bounding-box query on a grid with no cells.
	ErrEmptyGrid = errors.New("grid: grid has no populated cells")
	// ErrNegativeLocation indicates an attempt to store a cell below zero on either axis.
	ErrNegativeLocation = errors.New("grid: location coordinates must be non-negative")
	// ErrUnknownRune indicates a character the classifier does not recognise.
	ErrUnknownRune = errors.New("grid: unknown rune")
)

// Location is an immutable (X, Y) grid coordinate. Y grows downwards.
// The zero value is the top-left corner.
type Location struct {
	X, Y int
}

// String renders the location as "(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Direction is an orthogonal facing. The constants are ordered clockwise.
type Direction int

const (
	// Up decrements Y.
	Up Direction = iota
	// Right increments X.
	Right
	// Down increments Y.
	Down
	// Left decrements X.
	Left
)

// Directions lists all facings in clockwise order starting at Up.
// This is also the order of every neighbour enumeration in this package.
var Directions = [4]Direction{Up, Right, Down, Left}

// offsets holds the (dx, dy) unit vector of each Direction, indexed by Direction.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighbor pairs a location with the cell stored there.
// OK is false for slots of OptionalSurroundingLocations that are absent or out of bounds;
// in that case Location and Value are zero.
type Neighbor[T any] struct {
	Location Location
	Value    T
	OK       bool
}

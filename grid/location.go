package grid

import "fmt"

// TopLeft returns (X-1, Y-1). It fails when either result would be negative.
func (l Location) TopLeft() (Location, bool) {
	if l.X <= 0 || l.Y <= 0 {
		return Location{}, false
	}
	return Location{X: l.X - 1, Y: l.Y - 1}, true
}

// TopRight returns (X+1, Y-1). It fails when either result would be negative.
func (l Location) TopRight() (Location, bool) {
	if l.X < -1 || l.Y <= 0 {
		return Location{}, false
	}
	return Location{X: l.X + 1, Y: l.Y - 1}, true
}

// BottomLeft returns (X-1, Y+1). It fails when either result would be negative.
func (l Location) BottomLeft() (Location, bool) {
	if l.X <= 0 || l.Y < -1 {
		return Location{}, false
	}
	return Location{X: l.X - 1, Y: l.Y + 1}, true
}

// BottomRight returns (X+1, Y+1). It never fails for a non-negative l; the
// bool is kept so all four corners share one signature.
func (l Location) BottomRight() (Location, bool) {
	if l.X < -1 || l.Y < -1 {
		return Location{}, false
	}
	return Location{X: l.X + 1, Y: l.Y + 1}, true
}

// Step moves one unit towards d. It fails only when the move would take a
// coordinate below zero; it knows nothing about any grid's bounds.
func (l Location) Step(d Direction) (Location, bool) {
	dx, dy := d.Offset()
	x, y := l.X+dx, l.Y+dy
	if x < 0 || y < 0 {
		return Location{}, false
	}
	return Location{X: x, Y: y}, true
}

// Neighbors returns the orthogonal locations that do not underflow, in
// Up, Right, Down, Left order.
func (l Location) Neighbors() []Location {
	out := make([]Location, 0, 4)
	for _, d := range Directions {
		if n, ok := l.Step(d); ok {
			out = append(out, n)
		}
	}
	return out
}

// Compare orders locations row-major: by Y, then by X.
// Returns -1 if l sorts before o, +1 if after, 0 if equal.
func (l Location) Compare(o Location) int {
	switch {
	case l.Y < o.Y:
		return -1
	case l.Y > o.Y:
		return 1
	case l.X < o.X:
		return -1
	case l.X > o.X:
		return 1
	}
	return 0
}

// Less reports whether l sorts before o in row-major order.
func (l Location) Less(o Location) bool {
	return l.Compare(o) < 0
}

// Offset returns the unit vector of d. It panics for a value outside Up..Left.
func (d Direction) Offset() (dx, dy int) {
	if d < Up || d > Left {
		panic(fmt.Sprintf("grid: invalid direction %d", int(d)))
	}
	o := offsets[d]
	return o[0], o[1]
}

// TurnRight rotates d 90° clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) & 3
}

// TurnLeft rotates d 90° counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 3) & 3
}

// Opposite returns the reversed facing.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// String returns the arrow glyph of d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps an arrow glyph (^ > v <) to its Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^':
		return Up, nil
	case '>':
		return Right, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q is not a direction", ErrUnknownRune, r)
}

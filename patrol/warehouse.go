package patrol

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/gridwalk/grid"
)

// Item is a cell of a warehouse map.
type Item int

const (
	// Space is empty floor ('.'); the robot's start is also Space.
	Space Item = iota
	// Box can be pushed ('O').
	Box
	// Shelf is an immovable wall ('#').
	Shelf
)

// String renders the item as its map character.
func (i Item) String() string {
	switch i {
	case Space:
		return "."
	case Box:
		return "O"
	case Shelf:
		return "#"
	}
	return "?"
}

// Warehouse is a robot on a floor of boxes and shelves, with its queued moves.
type Warehouse struct {
	Floor *grid.Grid[Item]
	Robot grid.Location
	Moves []grid.Direction
}

// ParseWarehouse reads a map ('#', 'O', '.', one '@'), a blank line, then a
// list of arrows that may span several lines. Whitespace in the move list is
// ignored. The robot's cell is stored as Space.
func ParseWarehouse(input string) (*Warehouse, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	floorText, movesText, _ := strings.Cut(input, "\n\n")

	floor, err := grid.ParseStrict(floorText, func(r rune) (Item, bool, error) {
		switch r {
		case '.', '@':
			return Space, true, nil
		case 'O':
			return Box, true, nil
		case '#':
			return Shelf, true, nil
		}
		return Space, false, fmt.Errorf("patrol: warehouse map: %w: %q", grid.ErrUnknownRune, r)
	})
	if err != nil {
		return nil, err
	}

	robot, ok := findRune(floorText, '@')
	if !ok {
		return nil, ErrNoRobot
	}

	var moves []grid.Direction
	for _, r := range movesText {
		if unicode.IsSpace(r) {
			continue
		}
		d, err := grid.ParseDirection(r)
		if err != nil {
			return nil, fmt.Errorf("patrol: warehouse moves: %w", err)
		}
		moves = append(moves, d)
	}

	return &Warehouse{Floor: floor, Robot: robot, Moves: moves}, nil
}

// findRune returns the (column, line) of the first r in text.
func findRune(text string, r rune) (grid.Location, bool) {
	for y, line := range strings.Split(text, "\n") {
		x := 0
		for _, c := range line {
			if c == r {
				return grid.Location{X: x, Y: y}, true
			}
			x++
		}
	}
	return grid.Location{}, false
}

// Move tries to move the robot one cell towards d.
//
// A shelf or the edge of the map blocks the robot. A run of boxes directly
// ahead moves one cell along with it when the cell after the run is Space;
// otherwise nothing moves. Only the first and last cells of the run change,
// since the boxes in between are indistinguishable. Reports whether the
// robot moved.
func (w *Warehouse) Move(d grid.Direction) bool {
	ahead, ok := w.Floor.GetByDirection(w.Robot, d)
	if !ok {
		return false
	}
	switch ahead.Value {
	case Shelf:
		return false
	case Space:
		w.Robot = ahead.Location
		return true
	}

	// Walk to the end of the box run.
	last := ahead.Location
	for {
		next, ok := w.Floor.GetByDirection(last, d)
		if !ok {
			return false
		}
		switch next.Value {
		case Box:
			last = next.Location
			continue
		case Shelf:
			return false
		}
		w.Floor.Set(next.Location, Box)
		w.Floor.Set(ahead.Location, Space)
		w.Robot = ahead.Location
		return true
	}
}

// Run applies every queued move in order and returns how many moved the robot.
func (w *Warehouse) Run() int {
	moved := 0
	for _, d := range w.Moves {
		if w.Move(d) {
			moved++
		}
	}
	return moved
}

// GPS sums X + 100·Y over all boxes.
func (w *Warehouse) GPS() int {
	sum := 0
	w.Floor.Each(func(l grid.Location, it Item) {
		if it == Box {
			sum += l.X + 100*l.Y
		}
	})
	return sum
}

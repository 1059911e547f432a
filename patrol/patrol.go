package patrol

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridwalk/grid"
)

// Step advances a by one move on g:
//
//  1. The candidate location is one unit towards a.Facing. If that underflows
//     or is absent from g, the actor halts and a is unchanged.
//  2. If the candidate cell is an Obstacle, a turns 90° clockwise and stays put.
//     Only one turn happens per call; the new facing is tried on the next call.
//  3. Otherwise a moves onto the candidate cell.
func Step[T any](g *grid.Grid[T], a *Actor, classify Classify[T]) Outcome {
	next, ok := a.Location.Step(a.Facing)
	if !ok {
		return Halted
	}
	v, ok := g.GetByLocation(next)
	if !ok {
		return Halted
	}
	if classify(v) == Obstacle {
		a.Facing = a.Facing.TurnRight()
		return Turned
	}
	a.Location = next
	return Moved
}

// Walk is the record of one Patrol.
type Walk struct {
	// Visited holds every distinct location occupied, including the start.
	Visited mapset.Set[grid.Location]
	// Looped is true when the walk stopped on a repeated (Location, Facing) state
	// and false when the actor halted at the edge.
	Looped bool
	// Steps counts successful Step calls (moves and turns).
	Steps int
	// End is the actor's final state.
	End Actor
}

// Patrol runs Step from start until the actor halts or revisits a
// (Location, Facing) state. The start state counts as visited, so a walk
// that returns to it is a loop.
func Patrol[T any](g *grid.Grid[T], start Actor, classify Classify[T]) Walk {
	a := start
	states := mapset.New[Actor]()
	states.Put(a)
	visited := mapset.New[grid.Location]()
	visited.Put(a.Location)
	w := Walk{Visited: visited}

	for {
		if Step(g, &a, classify) == Halted {
			w.End = a
			return w
		}
		w.Steps++
		visited.Put(a.Location)
		if states.Has(a) {
			w.Looped = true
			w.End = a
			return w
		}
		states.Put(a)
	}
}

// Cover returns the distinct locations the actor occupies before it halts.
// On a looping map the walk stops at the first repeated state, so every
// location of the cycle is included and the call still returns.
func Cover[T any](g *grid.Grid[T], start Actor, classify Classify[T]) mapset.Set[grid.Location] {
	return Patrol(g, start, classify).Visited
}

// Loops reports whether the actor patrols forever from start.
func Loops[T any](g *grid.Grid[T], start Actor, classify Classify[T]) bool {
	return Patrol(g, start, classify).Looped
}

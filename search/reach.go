package search

import (
	"github.com/zyedidia/generic/mapset"
)

// Reachable returns every state reachable from start, start included.
//
// The walk uses an explicit work list, so deep or cyclic spaces cannot
// overflow the goroutine stack.
func Reachable[S comparable](start S, neighbors func(S) []S) mapset.Set[S] {
	seen := mapset.New[S]()
	seen.Put(start)
	stack := []S{start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range neighbors(s) {
			if seen.Has(n) {
				continue
			}
			seen.Put(n)
			stack = append(stack, n)
		}
	}
	return seen
}

// frame is one pending CountPaths state; expanded is set once its
// successors have been pushed.
type frame[S comparable] struct {
	state    S
	expanded bool
}

// CountPaths returns the number of distinct paths from start to a goal state.
//
// A path ends at the first goal state it reaches; goal states are not
// expanded further. Counts are memoised per state in a cache owned by this
// call, so shared sub-paths are counted once.
//
// The state space must be acyclic along non-goal states; a cycle yields
// ErrCycle.
func CountPaths[S comparable](start S, neighbors func(S) []S, goal func(S) bool) (int, error) {
	memo := make(map[S]int)
	onStack := mapset.New[S]()

	stack := []frame[S]{{state: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		s := top.state

		if _, done := memo[s]; done {
			stack = stack[:len(stack)-1]
			continue
		}
		if goal(s) {
			memo[s] = 1
			stack = stack[:len(stack)-1]
			continue
		}

		if !top.expanded {
			top.expanded = true
			onStack.Put(s)
			for _, n := range neighbors(s) {
				if onStack.Has(n) {
					return 0, ErrCycle
				}
				if _, done := memo[n]; !done {
					stack = append(stack, frame[S]{state: n})
				}
			}
			continue
		}

		// All successors are memoised now.
		total := 0
		for _, n := range neighbors(s) {
			total += memo[n]
		}
		memo[s] = total
		onStack.Remove(s)
		stack = stack[:len(stack)-1]
	}
	return memo[start], nil
}

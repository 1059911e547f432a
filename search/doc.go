// Package search finds paths through implicit state spaces.
//
// States are any comparable value: a grid.Location, a (Location, Facing)
// pair, or a caller's own struct. Callers describe the space with a start
// state, a successor function and a goal predicate; nothing is materialised
// up front.
//
// Algorithms:
//
//   - Dijkstra: uniform-cost best-first search with non-negative edge costs.
//     It stops as soon as a goal state is popped from the heap.
//   - BFS: unit-cost shortest path, first goal dequeued wins.
//   - Reachable: every state reachable from start (explicit work-list DFS).
//   - CountPaths: number of distinct start→goal paths in a DAG, memoised in a
//     cache owned by the call.
//   - ShortestTurnPath: Dijkstra over (Location, Facing) on a grid, where going
//     straight costs MazeCost.Move, turning costs Move+Turn and reversing is
//     not a transition at all.
//
// Options:
//
//   - WithContext: cancellation, checked once per expanded state; also parents
//     the trace span.
//   - WithMaxCost: give up on states costlier than the cap (ErrNoPath).
//   - WithMazeCost: move and turn costs for ShortestTurnPath.
//   - WithLogger: logrus logger for Debug-level summaries.
//
// Errors:
//
//   - ErrNoPath: the goal is unreachable (or beyond MaxCost). This is an
//     ordinary outcome; test it with errors.Is.
//   - ErrNegativeCost: a successor reported a negative edge cost.
//   - ErrBadMaxCost: WithMaxCost with a negative cap.
//   - ErrCycle: CountPaths met a cycle.
//   - ErrMissingMarker: ParseMaze found no 'S' or no 'E'.
//
// Only Result.Cost is deterministic across equal-cost alternatives; callers
// must not rely on which optimal Path is returned.
//
// Complexity:
//
//   - Dijkstra: O((V + E) log E) time, O(V + E) memory (lazy decrease-key).
//   - BFS, Reachable: O(V + E).
//   - CountPaths: O(V + E).
package search

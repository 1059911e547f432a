// Package patrol simulates actors that walk a grid.Grid deterministically.
//
// What:
//
//   - Step advances an Actor by one move: forward when the next cell is open,
//     a single 90° clockwise turn when it is an obstacle, or a halt when the
//     next location is absent or would underflow.
//   - Patrol repeats Step until the actor halts or a (Location, Facing) state
//     repeats. Cover and Loops are views of that walk.
//   - CountLoopPlacements tries an extra obstacle on every covered location
//     (except the start) and counts the placements that trap the actor.
//   - Warehouse moves a robot that pushes chains of boxes.
//
// Callers decide what blocks: a Classify function maps each cell to Open or
// Obstacle. ParseLab and ParseWarehouse provide ready-made cell sets for the
// classic guard and warehouse maps.
//
// Options (CountLoopPlacements):
//
//   - WithContext: cancellation and span parent.
//   - WithWorkers: fan candidates out over n goroutines; the count is the same
//     as a serial run.
//   - WithLogger: logrus logger for progress at Debug level.
//
// Errors:
//
//   - ErrNoGuard, ErrNoRobot: the map has no actor marker.
//   - ErrBadWorkers: WithWorkers(n) with n < 1.
//   - grid.ErrUnknownRune: wrapped for unknown map characters.
//
// Complexity:
//
//   - Patrol: O(S) time and memory, S = distinct (Location, Facing) states ≤ 4·N.
//   - CountLoopPlacements: O(C·(N + S)), C = covered locations, for one clone
//     and one walk per candidate.
package patrol

// Package grid models a sparse 2D map of cells keyed by integer coordinates.
//
// What:
//
//   - Location is an (X, Y) value with diagonal and directional neighbours.
//   - Direction is one of Up, Right, Down, Left with turn/opposite helpers.
//   - Grid[T] maps Location → T. A missing key is "absent", which is different
//     from a cell holding an explicit empty value.
//   - Parse builds a grid from a newline-delimited character matrix: the line
//     index is Y and the rune index within the line is X.
//   - Regions groups orthogonally connected cells of the same class.
//   - Display and Draw render the bounding box for diagnostics.
//
// Bounding box:
//
//	MaxLocation takes the maximum X and the maximum Y independently, so the
//	corner it returns may itself be absent. Callers iterate the full rectangle
//	[0, Max.X] × [0, Max.Y] and treat the holes as absent cells.
//
// Errors:
//
//   - ErrEmptyGrid: MaxLocation/MinLocation on a grid with no cells (panics).
//   - ErrNegativeLocation: Set with a negative coordinate (panics).
//   - ErrUnknownRune: wrapped by ParseStrict classifiers and ParseDirection.
//
// Complexity:
//
//   - Get, GetByLocation, Set, Remove: O(1) average.
//   - MaxLocation, MinLocation, Locations: O(N) (N = populated cells).
//   - SurroundingLocations: O(1).
//   - Regions: O(N log N) for the sorted scan, O(N) for the flood fill.
package grid

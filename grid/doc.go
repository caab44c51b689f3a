// Package grid models the rectangular board a pathfinding run explores.
//
// What:
//
//   - Grid is a fixed Rows×Cols container of Cells, created once and never resized.
//   - Each Cell carries a wall flag, start/goal identity, and an exploration State
//     (None, Frontier, Visited, Path) that renderers display.
//   - Exactly one start and one goal exist at all times; they may coincide.
//   - Neighbors enumerates walkable 4-connected cells in a fixed order
//     (down, up, right, left), which fixes tie-breaking for every search.
//
// Why:
//
//   - Search algorithms only need InBounds and Neighbors; everything else is
//     editing (walls, endpoints) and visual state owned by a session.
//
// Editing rules:
//
//   - ToggleWall/SetWall never touch the start or goal cell.
//   - SetStart/SetGoal ignore out-of-bounds coordinates, clear the previous
//     endpoint, and force the destination's wall flag off.
//   - Mark never changes the exploration state of the start or goal cell.
//
// Text format (Parse / String):
//
//	#  wall
//	S  start
//	G  goal
//	.  open cell
//
// Complexity:
//
//   - InBounds, Neighbors, Mark, ToggleWall: O(1).
//   - ClearStates, Reset, Randomize, Snapshot: O(Rows×Cols).
//
// Errors:
//
//   - ErrEmptyGrid: rows or columns < 1.
//   - ErrNonRectangular: text rows of differing lengths.
//   - ErrBadSymbol: unknown character in a text layout.
//   - ErrMissingEndpoint / ErrDuplicateEndpoint: a layout without exactly one S and one G.
//
// All methods are safe for concurrent use; a single RWMutex guards the cells.
package grid

// Package grid models a MovingAI benchmark map as an immutable, row-major
// buffer of terrain labels and answers traversability queries over it.
//
// What:
//
//   - Map wraps a width×height sequence of Cell labels plus a movement
//     Topology (Octile = 8-directional, FourConnected = 4-directional).
//   - IsTraversable answers "could an agent ever stand on this tile".
//   - IsTraversableFrom answers "is this single directed step legal",
//     combining the terrain interaction table with the diagonal
//     corner-cutting rule.
//   - Neighbors enumerates the legal step targets of a tile.
//   - Coords yields every coordinate lazily in row-major order;
//     FreeStates counts the traversable ones.
//
// Why:
//
//   - Search algorithms (A*, JPS, ...) expand tiles millions of times;
//     the step-legality rules here are the single source of truth they
//     all share, so published benchmark optimal path lengths reproduce.
//
// Terrain labels:
//
//	'.' 'G'     open ground        – always enterable
//	'S'         swamp              – enterable only from '.' or 'S'
//	'W'         water              – enterable only from 'W'
//	'@' 'O' 'T' obstacle/void/tree – never enterable
//	anything else is treated as blocking.
//
// Complexity:
//
//   - CellAt, IsOutOfBounds, IsTraversable, Adjacent: O(1).
//   - IsTraversableFrom: O(1); a diagonal step performs at most four
//     orthogonal sub-checks and never recurses further.
//   - Neighbors: O(1) (at most 8 candidates).
//   - FreeStates: O(W×H).
//
// Errors:
//
//   - ErrEmptyMap: width or height is not positive.
//   - ErrDimensionMismatch: cell count differs from width*height.
//   - ErrOutOfBounds: CellAt was asked for a coordinate outside the map.
//
// A Map never mutates after construction, so any number of goroutines may
// query it concurrently without synchronization.
package grid

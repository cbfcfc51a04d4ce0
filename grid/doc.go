// Package grid provides the addressing primitives shared by every other
// gridplan package: the Cell coordinate pair, the Indexer that maps 2D
// coordinates onto a dense row-major slot, and the generic Store that keeps
// one value per cell.
//
// What:
//
//   - Cell is an unsigned (X, Y) pair identifying a unit square of the grid.
//   - Indexer answers shape queries and converts (x, y) into a linear index
//     with x varying fastest: idx = x + y*width.
//   - Store[T] is a fixed-shape container with one T per cell, backed by a
//     single flat slice for cache friendliness.
//
// Preconditions:
//
//   - Index, At and Set require x < width and y < height. Violating this is a
//     programmer error and panics; callers validating external input must use
//     Contains first.
//   - Constructors validate their inputs and return sentinel errors
//     (ErrBadShape, ErrSizeMismatch) instead of panicking.
//
// Complexity:
//
//   - Index, Coordinate, Contains, At, Set: O(1).
//   - NewStore, NewFilledStore, StoreFrom, Values, Clone: O(W×H) time and memory.
package grid

// Package cspace builds the configuration space of a circular agent moving
// on a rectangular grid populated with circular obstacles.
//
// What:
//
//   - Every cell carries exactly one State: Free, Object or Padded.
//   - Object cells are inside an obstacle's true radius.
//   - Padded cells are within the agent's radius of an obstacle or of any grid
//     edge: the agent's center cannot stand there even though nothing
//     physically occupies the cell.
//
// Lifecycle:
//
//  1. New or FromStates creates a Space and pads the grid boundary.
//  2. AddObstacles dilates each obstacle by the agent radius (Padded), then
//     marks its true footprint (Object).
//  3. Freeze ends the build phase and hands out a read-only *View. Planners
//     only ever see a View; further AddObstacles calls return ErrFrozen.
//
// Invariants:
//
//   - Boundary: with agent radius k, every cell with x<k, x≥W−k, y<k or y≥H−k
//     is Padded, whatever the obstacle set.
//   - Precedence: once a cell is Object it is never downgraded to Padded, in
//     whatever order obstacles are processed.
//   - Marking is idempotent: rasterizing the same obstacle twice leaves the
//     grid unchanged.
//
// Complexity:
//
//   - New, FromStates:      O(W×H) time and memory.
//   - AddObstacles:         O(Σ (rᵢ+k)²).
//   - IsAccessible:         O(1).
//   - AccessibleNeighbors:  O(1), no allocation (fixed 8-cell buffer).
//   - Regions:              O(W×H×8) time, O(W×H) memory.
package cspace

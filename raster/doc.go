// Package raster enumerates the grid cells covered by obstacle shapes.
//
// What:
//
//   - Circle is an immutable disc: a center Cell plus a radius in cell units.
//   - VisitCircle calls a callback for every cell whose center lies strictly
//     inside the disc (dx² + dy² < r²), clipped to the grid.
//   - Shape is the closed set of obstacle geometries understood by the
//     configuration space. Circle is currently its only member.
//
// Algorithm (VisitCircle):
//
//  1. Clip the bounding square [cx-r, cx+r]×[cy-r, cy+r] to the grid using
//     unsigned-safe comparisons; a square that misses the grid visits nothing.
//  2. For every cell of the clipped square, test dx² + dy² < r² in 128-bit
//     arithmetic, so any radius up to math.MaxUint is exact.
//
// Each covered cell is visited once. The boundary ring (distance == r) is
// excluded, and a radius of 0 visits nothing. Dilate saturates instead of
// wrapping.
//
// Complexity: O(min(r², W×H)) time, O(1) extra memory.
package raster

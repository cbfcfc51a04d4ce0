// Package dijkstra provides uniform-cost search over a configuration space.
//
// Overview:
//
//   - Cells are expanded in increasing order of path cost g from the start,
//     using a min-heap with lazy decrease-key (stale entries are skipped when
//     popped).
//   - The search stops when the goal is popped, not when it is first seen,
//     so the route is optimal for the selected cost model.
//   - Equal costs leave the heap in push order, making results deterministic.
//
// Cost models:
//
//   - UnitCost (default): every move costs 1, the cost model used by astar.
//     Routes have the fewest moves; their cost equals astar's when astar
//     happens to find an optimal route.
//   - EuclideanCost: orthogonal moves cost 1 and diagonal moves cost √2, so
//     Cost equals the geometric length of the route.
//
// Options:
//
//   - WithCostModel(m): select the cost model.
//   - WithMaxCost(c):   do not expand cells whose cost exceeds c (c ≥ 0,
//     panics otherwise). A goal beyond c is reported as planner.ErrNoRoute.
//   - WithOnExpand(fn): observe each expanded cell.
//
// Complexity:
//
//   - Time:  O(C log C) for C reachable cells (at most 8 heap pushes per cell).
//   - Space: O(W×H) for the node table and settled flags.
//
// Thread safety:
//
//   - A Planner only reads its *cspace.View; concurrent Plan calls are safe.
package dijkstra

// Package astar finds routes across a configuration space with A* search.
//
// Algorithm:
//
//  1. Validate start and goal (see planner.Validate).
//  2. Push start with g = f = 0 and no parent.
//  3. Pop the open cell with the smallest f; ties leave in the order they were
//     pushed. Skip it if already closed, otherwise close it.
//  4. For each Free neighbor (8-connected): if it is the goal, stop and
//     reconstruct the route. Otherwise, if it is not closed, compute
//     g' = g + 1 and f' = g' + h(neighbor, goal); record and push it if it
//     was never queued or its recorded f is strictly greater than f'.
//  5. An exhausted open set returns planner.ErrNoRoute.
//
// Cost model:
//
// Every move costs 1, diagonal or not, while the default heuristic is the
// Euclidean distance. The heuristic is admissible but not consistent under
// this cost model, and a closed cell is never reopened, so in rare layouts
// the route may be longer than the shortest one. The goal is accepted on
// first discovery rather than when popped. Use the dijkstra package for a
// route that is optimal under its cost model.
//
// Complexity:
//
//   - Time:   O(C log C) for C reachable cells.
//   - Memory: O(W×H) for the node table and closed set; the open set holds
//     at most 8 entries per expanded cell.
//
// A Planner holds only the *cspace.View and its options; each Plan call owns
// its own node table and open set, so one Planner may serve many goroutines.
package astar

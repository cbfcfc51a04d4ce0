// Package bfs provides breadth-first search over a configuration space.
//
// What
//
//   - Walk explores every Free cell reachable from a start cell in
//     non-decreasing move count and returns a Tree with the visit order,
//     the depth of every reached cell, and parent links for PathTo.
//   - Planner (New + Plan) runs the same walk but stops as soon as the goal
//     is discovered; the route has the fewest possible moves.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Neighbor filtering via WithFilterNeighbor, a depth limit via
//     WithMaxDepth, and cancellation via WithContext.
//
// Determinism
//
//	Neighbors come from cspace.View.AccessibleNeighbors in row-major order
//	and are enqueued in that order, so the visit sequence is reproducible.
//
// Complexity (C = reachable Free cells)
//
//   - Time:   O(C·8)
//   - Memory: O(W×H) for the node table and depth grid, O(C) for the queue.
//
// Errors
//
//   - planner diagnostics (ErrStartBlocked, ErrNoRoute, ...) as for every planner.
//   - ErrOptionViolation if an option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached from Tree.PathTo for cells the walk never reached.
//   - Wrapped hook errors from OnVisit, and the context error on cancellation.
package bfs

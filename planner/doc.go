// Package planner defines the contract shared by the grid route planners
// (astar, dijkstra, bfs) and the pieces they have in common.
//
// What:
//
//   - Planner: Plan(start, goal) over a read-only *cspace.View.
//   - Result: the Route found plus search statistics.
//   - Validate: the pre-search checks every planner runs first.
//   - Node and Reconstruct: the per-cell search record and the walk back
//     along parent links that turns it into a start→goal Route.
//   - Frontier: a binary min-heap of cells with first-in-first-out order
//     among equal priorities, so every planner is deterministic.
//
// Failures:
//
// A failed plan is not exceptional. Plan returns an empty Result together
// with one of the diagnostic sentinels below; IsNoPlan tells them apart from
// hook or cancellation errors.
//
//   - ErrStartOutOfBounds, ErrGoalOutOfBounds
//   - ErrStartBlocked, ErrGoalBlocked
//   - ErrStartIsGoal
//   - ErrNoRoute: the frontier was exhausted without reaching the goal.
//
// Validation order is: start bounds, goal bounds, start state, goal state,
// start == goal.
package planner

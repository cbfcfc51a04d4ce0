// Package spatial indexes circular obstacles in an R-tree
// (github.com/dhconnelly/rtreego) and checks routes against them.
//
// The configuration space answers "may the agent's center stand on this
// cell" from a rasterized grid; this package answers the same question from
// the continuous obstacle model. Audit cross-checks a planned route: a cell
// closer than obstacle radius + agent radius to an obstacle center, with the
// same strict inequality the rasterizer uses, is reported as a Violation.
//
// Complexity:
//
//   - NewIndex: O(n log n) for n obstacles.
//   - Query, Nearest: O(log n + k) for k candidates.
//   - Audit: one query per route cell.
package spatial

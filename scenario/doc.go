// Package scenario generates the preset obstacle layouts used by the command
// line tool and the planning service.
//
// Layouts, for a W×H grid and agent radius k (m = min(W, H)):
//
//   - None:       no obstacles.
//   - Impossible: one circle of radius m/2 at the grid center, cutting every
//     route between opposite corners.
//   - Simple:     two circles of radius m/2−k on the bottom-left and
//     top-right corners.
//   - Complex:    seventeen circles of radius m/8−k on a staggered lattice.
//   - Maze:       twenty-four circles of radius m/10−k forming four walls
//     with alternating gaps.
//
// Radii that would go negative saturate at zero, which yields obstacles that
// cover no cell.
package scenario

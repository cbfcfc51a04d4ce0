// Package gridplan plans collision-free routes for a circular agent across a
// 2D occupancy grid with circular obstacles.
//
// 🚀 What is gridplan?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid primitives: cells, row-major indexing, typed stores
//		• Rasterization: circles stamped onto the grid, dilated by the agent
//		• Configuration space: Free / Object / Padded cells, region labelling
//		• Planners: A* (Euclidean heuristic), Dijkstra, BFS over 8-connected moves
//		• Spatial audit: R-tree over the continuous obstacles
//		• File formats: text grid and route files, GeoJSON in and out
//
// Under the hood, everything is organized under flat subpackages:
//
//	grid/      Cell, Indexer and the generic Store[T]
//	raster/    Circle shapes, Rasterize and Dilate
//	cspace/    Space (build phase), View (read-only), Regions
//	planner/   shared Planner contract, Route, diagnostics, frontier
//	astar/     A* planner
//	dijkstra/  Dijkstra planner with pluggable step costs
//	bfs/       breadth-first walks and the fewest-moves planner
//	spatial/   obstacle index, nearest obstacle and route audit
//	fileio/    config-space.txt, solution-path.txt and GeoJSON
//	scenario/  the five preset layouts
//
// Quick ASCII example, a 7×5 grid, agent radius 1, one obstacle of radius 1:
//
//	2 2 2 2 2 2 2
//	2 0 2 2 2 0 2
//	2 0 2 1 2 0 2
//	2 0 2 2 2 0 2
//	2 2 2 2 2 2 2
//
// 0 cells are Free, 1 cells hold the obstacle, 2 cells are Padded: the agent
// centre may not stand there. Two binaries sit on top: cmd/savebb8 runs one
// scenario end to end, cmd/planserver serves spaces and routes over HTTP.
//
//	go install github.com/katalvlaran/gridplan/cmd/...
package gridplan

package planner

import "github.com/katalvlaran/gridplan/grid"

// Node is the transient per-cell search record.
// The search root is the only node with HasParent == false; cells never
// touched keep the zero Node (Queued == false).
type Node struct {
	Parent    grid.Cell
	HasParent bool
	G         float64 // cost from start along the best known path
	F         float64 // G plus heuristic; equal to G for uninformed planners
	Queued    bool    // the cell has been pushed at least once
}

// Nodes is a node table covering the whole grid.
type Nodes = grid.Store[Node]

// NewNodes allocates a zeroed node table for ix.
func NewNodes(ix grid.Indexer) *Nodes { return grid.NewStore[Node](ix) }

// Reconstruct walks parent links back from goal and returns the route in
// start→goal order, both endpoints included. It returns an empty route if
// goal was never reached. A parent chain longer than the grid is a cycle,
// which can only come from a planner bug, and panics.
func Reconstruct(nodes *Nodes, goal grid.Cell) Route {
	if !nodes.Contains(goal) || !nodes.AtCell(goal).Queued {
		return nil
	}
	limit := nodes.Size()
	route := Route{goal}
	for n := nodes.AtCell(goal); n.HasParent; n = nodes.AtCell(n.Parent) {
		if len(route) > limit {
			panic("planner: cycle in parent links")
		}
		route = append(route, n.Parent)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}

// Package strategy builds a planner.Planner from a planner.Kind, wiring an
// optional expansion observer into whichever hook the planner offers.
package strategy

import (
	"fmt"

	"github.com/katalvlaran/gridplan/astar"
	"github.com/katalvlaran/gridplan/bfs"
	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/dijkstra"
	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
)

// New returns the planner for kind over v. onExpand, if non-nil, receives
// every cell the planner takes off its frontier, in order.
func New(kind planner.Kind, v *cspace.View, onExpand func(grid.Cell)) (planner.Planner, error) {
	switch kind {
	case planner.AStar:
		return astar.New(v, astar.WithOnExpand(onExpand)), nil
	case planner.Dijkstra:
		return dijkstra.New(v, dijkstra.WithOnExpand(onExpand)), nil
	case planner.BFS:
		var opts []bfs.Option
		if onExpand != nil {
			opts = append(opts, bfs.WithOnDequeue(func(c grid.Cell, _ int) { onExpand(c) }))
		}

		return bfs.New(v, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %v", planner.ErrUnknownKind, kind)
	}
}

// Parse combines planner.ParseKind and New. An empty name selects fallback.
func Parse(name string, fallback planner.Kind, v *cspace.View, onExpand func(grid.Cell)) (planner.Planner, planner.Kind, error) {
	kind := fallback
	if name != "" {
		var err error
		if kind, err = planner.ParseKind(name); err != nil {
			return nil, kind, err
		}
	}
	p, err := New(kind, v, onExpand)

	return p, kind, err
}

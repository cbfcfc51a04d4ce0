package dijkstra

import (
	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
)

// Planner runs uniform-cost search over one configuration space.
type Planner struct {
	view    *cspace.View
	options Options
}

var _ planner.Planner = (*Planner)(nil)

// New returns a Dijkstra planner over v. Panics if v is nil or an option is
// invalid.
func New(v *cspace.View, opts ...Option) *Planner {
	if v == nil {
		panic("dijkstra: nil view")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planner{view: v, options: cfg}
}

// Plan computes a least-cost route from start to goal.
//
// Validation runs first (planner.Validate). On success Result.Cost is the
// goal's cost under the configured model; on failure the route is empty and
// the error is a planner diagnostic.
func (p *Planner) Plan(start, goal grid.Cell) (planner.Result, error) {
	if err := planner.Validate(p.view, start, goal); err != nil {
		return planner.Result{}, err
	}
	ix := p.view.Indexer()
	r := &runner{
		view:    p.view,
		options: p.options,
		goal:    goal,
		nodes:   planner.NewNodes(ix),
		settled: grid.NewStore[bool](ix),
		pq:      planner.NewFrontier(64),
	}
	r.init(start)
	if !r.process() {
		return planner.Result{Expanded: r.expanded}, planner.ErrNoRoute
	}

	return planner.Result{
		Route:    planner.Reconstruct(r.nodes, goal),
		Expanded: r.expanded,
		Cost:     r.nodes.AtCell(goal).G,
	}, nil
}

// runner holds the mutable state for a single Plan call.
type runner struct {
	view     *cspace.View
	options  Options
	goal     grid.Cell
	nodes    *planner.Nodes    // best known cost and parent per cell
	settled  *grid.Store[bool] // cost is final
	pq       *planner.Frontier // ordered by g
	expanded int
}

// init records the start with cost 0 and queues it.
func (r *runner) init(start grid.Cell) {
	r.nodes.SetCell(start, planner.Node{Queued: true})
	r.pq.Push(start, 0)
}

// process pops cells in cost order until the goal is settled or nothing
// within MaxCost remains. It reports whether the goal was reached.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		u, g := r.pq.Pop()

		// skip stale heap entries
		if r.settled.AtCell(u) {
			continue
		}
		// every remaining entry costs at least g
		if g > r.options.MaxCost {
			return false
		}
		r.settled.SetCell(u, true)
		if u == r.goal {
			return true
		}
		r.expanded++
		r.options.OnExpand(u)
		r.relax(u, g)
	}

	return false
}

// relax offers every accessible neighbor of u a path through u.
func (r *runner) relax(u grid.Cell, g float64) {
	nbrs, n := r.view.AccessibleNeighbors(u)
	for _, v := range nbrs[:n] {
		if r.settled.AtCell(v) {
			continue
		}
		newCost := g + r.options.CostModel.step(u, v)
		if newCost > r.options.MaxCost {
			continue
		}
		// strict improvement only; equal costs keep the earlier parent
		if old := r.nodes.AtCell(v); old.Queued && newCost >= old.G {
			continue
		}
		r.nodes.SetCell(v, planner.Node{Parent: u, HasParent: true, G: newCost, F: newCost, Queued: true})
		r.pq.Push(v, newCost)
	}
}

package astar

import (
	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
)

// stepCost is the cost of every move, orthogonal or diagonal.
const stepCost = 1.0

// Planner runs A* over one configuration space.
type Planner struct {
	view *cspace.View
	opts Options
}

var _ planner.Planner = (*Planner)(nil)

// New returns an A* planner over v. Panics if v is nil.
func New(v *cspace.View, opts ...Option) *Planner {
	if v == nil {
		panic("astar: nil view")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Planner{view: v, opts: o}
}

// Plan searches for a route from start to goal.
// On failure it returns an empty Result and a planner diagnostic error;
// Expanded is still reported when the search ran.
func (p *Planner) Plan(start, goal grid.Cell) (planner.Result, error) {
	if err := planner.Validate(p.view, start, goal); err != nil {
		return planner.Result{}, err
	}
	s := &search{
		view:   p.view,
		opts:   p.opts,
		goal:   goal,
		nodes:  planner.NewNodes(p.view.Indexer()),
		closed: grid.NewStore[bool](p.view.Indexer()),
		open:   planner.NewFrontier(64),
	}

	return s.run(start)
}

// search holds the mutable state of one Plan call.
type search struct {
	view     *cspace.View
	opts     Options
	goal     grid.Cell
	nodes    *planner.Nodes
	closed   *grid.Store[bool]
	open     *planner.Frontier
	expanded int
}

func (s *search) run(start grid.Cell) (planner.Result, error) {
	s.nodes.SetCell(start, planner.Node{Queued: true})
	s.open.Push(start, 0)

	for s.open.Len() > 0 {
		u, _ := s.open.Pop()
		if s.closed.AtCell(u) {
			continue // stale entry
		}
		s.closed.SetCell(u, true)
		s.expanded++
		s.opts.OnExpand(u)

		if s.relax(u) {
			route := planner.Reconstruct(s.nodes, s.goal)

			return planner.Result{
				Route:    route,
				Expanded: s.expanded,
				Cost:     s.nodes.AtCell(s.goal).G,
			}, nil
		}
	}

	return planner.Result{Expanded: s.expanded}, planner.ErrNoRoute
}

// relax updates the neighbors of u and reports whether the goal was found.
func (s *search) relax(u grid.Cell) bool {
	g := s.nodes.AtCell(u).G + stepCost
	nbrs, n := s.view.AccessibleNeighbors(u)
	for _, nb := range nbrs[:n] {
		if nb == s.goal {
			s.nodes.SetCell(nb, planner.Node{Parent: u, HasParent: true, G: g, F: g, Queued: true})

			return true
		}
		if s.closed.AtCell(nb) {
			continue
		}
		f := g + s.opts.Heuristic(nb, s.goal)
		if old := s.nodes.AtCell(nb); old.Queued && old.F <= f {
			continue
		}
		s.nodes.SetCell(nb, planner.Node{Parent: u, HasParent: true, G: g, F: f, Queued: true})
		s.open.Push(nb, f)
	}

	return false
}

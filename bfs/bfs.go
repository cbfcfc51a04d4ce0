package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	view    *cspace.View
	opts    Options
	ctx     context.Context
	queue   []queueItem
	nodes   *planner.Nodes
	order   []grid.Cell
	goal    grid.Cell
	hasGoal bool
	found   bool
}

// Walk runs breadth-first search from start over every reachable Free cell.
// Returns planner.ErrStartOutOfBounds or planner.ErrStartBlocked for a bad
// start, ErrOptionViolation for bad options, any OnVisit error, or the
// context error on cancellation.
func Walk(v *cspace.View, start grid.Cell, opts ...Option) (*Tree, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	switch {
	case !v.Contains(start):
		return nil, fmt.Errorf("%w: %v", planner.ErrStartOutOfBounds, start)
	case !v.IsAccessible(start):
		return nil, fmt.Errorf("%w: %v is %v", planner.ErrStartBlocked, start, v.State(start))
	}

	w := newWalker(v, o)
	w.enqueue(start, 0, nil)
	if err = w.loop(); err != nil {
		return nil, err
	}

	return &Tree{Order: w.order, nodes: w.nodes}, nil
}

// Planner finds fewest-moves routes.
type Planner struct {
	view *cspace.View
	opts []Option
}

var _ planner.Planner = (*Planner)(nil)

// New returns a BFS planner over v. Panics if v is nil.
// Option errors surface from Plan.
func New(v *cspace.View, opts ...Option) *Planner {
	if v == nil {
		panic("bfs: nil view")
	}

	return &Planner{view: v, opts: opts}
}

// Plan returns a route from start to goal with the fewest moves.
// Result.Cost is the move count and Result.Expanded the number of visited cells.
func (p *Planner) Plan(start, goal grid.Cell) (planner.Result, error) {
	o, err := buildOptions(p.opts)
	if err != nil {
		return planner.Result{}, err
	}
	if err = planner.Validate(p.view, start, goal); err != nil {
		return planner.Result{}, err
	}

	w := newWalker(p.view, o)
	w.goal, w.hasGoal = goal, true
	w.enqueue(start, 0, nil)
	if err = w.loop(); err != nil {
		return planner.Result{Expanded: len(w.order)}, err
	}
	if !w.found {
		return planner.Result{Expanded: len(w.order)}, planner.ErrNoRoute
	}

	return planner.Result{
		Route:    planner.Reconstruct(w.nodes, goal),
		Expanded: len(w.order),
		Cost:     w.nodes.AtCell(goal).G,
	}, nil
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(v *cspace.View, o Options) *walker {
	return &walker{
		view:  v,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, 64),
		nodes: planner.NewNodes(v.Indexer()),
	}
}

// enqueue marks c reached at depth d with the given parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(c grid.Cell, d int, parent *grid.Cell) {
	n := planner.Node{G: float64(d), F: float64(d), Queued: true}
	if parent != nil {
		n.Parent, n.HasParent = *parent, true
	}
	w.nodes.SetCell(c, n)
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, goal found, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.found {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)

	return item
}

// visit records the cell in order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.order = append(w.order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// accessible neighbor. Discovering the goal ends the search.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	nbrs, n := w.view.AccessibleNeighbors(item.cell)
	for _, nbr := range nbrs[:n] {
		if w.nodes.AtCell(nbr).Queued || !w.opts.FilterNeighbor(item.cell, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, &item.cell)
		if w.hasGoal && nbr == w.goal {
			w.found = true
			return
		}
	}
}

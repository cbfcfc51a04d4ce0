package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by Tree.PathTo for a cell outside the tree.
	ErrNotReached = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, with its depth.
	OnEnqueue func(c grid.Cell, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c grid.Cell, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c grid.Cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip a move by returning false.
	FilterNeighbor func(curr, neighbor grid.Cell) bool

	err error
}

// DefaultOptions returns a background context, no depth limit, no
// filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(grid.Cell, int) {},
		OnDequeue:      func(grid.Cell, int) {},
		OnVisit:        func(grid.Cell, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ grid.Cell) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: cells deeper than d are never enqueued
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips moves for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor grid.Cell) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Tree is the outcome of Walk: the BFS tree rooted at the start cell.
type Tree struct {
	// Order lists the visited cells in visit sequence.
	Order []grid.Cell

	nodes *planner.Nodes
}

// Depth returns the move count from the start to c, or false if c was not reached.
func (t *Tree) Depth(c grid.Cell) (int, bool) {
	if !t.nodes.Contains(c) {
		return 0, false
	}
	n := t.nodes.AtCell(c)

	return int(n.G), n.Queued
}

// Reached reports whether c is part of the tree.
func (t *Tree) Reached(c grid.Cell) bool {
	_, ok := t.Depth(c)

	return ok
}

// PathTo reconstructs the route from the start to dest.
func (t *Tree) PathTo(dest grid.Cell) (planner.Route, error) {
	if !t.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}

	return planner.Reconstruct(t.nodes, dest), nil
}

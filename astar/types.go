package astar

import "github.com/katalvlaran/gridplan/grid"

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, goal grid.Cell) float64

// Euclidean is the default heuristic.
func Euclidean(from, goal grid.Cell) float64 { return from.Distance(goal) }

// Options configures a Planner.
type Options struct {
	// Heuristic estimates the remaining cost. Default: Euclidean.
	Heuristic Heuristic

	// OnExpand is called with each cell as it is closed, in expansion order.
	OnExpand func(c grid.Cell)
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the Euclidean heuristic and a no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		OnExpand:  func(grid.Cell) {},
	}
}

// WithHeuristic replaces the heuristic. A nil h is ignored.
// An inadmissible h trades route quality for speed.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback run for every expanded cell.
// A nil fn is ignored.
func WithOnExpand(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

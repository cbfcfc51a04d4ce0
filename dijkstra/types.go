package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridplan/grid"
)

// ErrBadMaxCost indicates that WithMaxCost received a negative value.
var ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

// CostModel selects the cost of a single move.
type CostModel int

const (
	// UnitCost charges 1 for every move, orthogonal or diagonal.
	UnitCost CostModel = iota

	// EuclideanCost charges 1 for orthogonal moves and √2 for diagonal ones.
	EuclideanCost
)

// String returns "unit" or "euclidean".
func (m CostModel) String() string {
	if m == EuclideanCost {
		return "euclidean"
	}

	return "unit"
}

// step returns the cost of moving from a to an adjacent cell b.
func (m CostModel) step(a, b grid.Cell) float64 {
	if m == EuclideanCost && a.X != b.X && a.Y != b.Y {
		return math.Sqrt2
	}

	return 1
}

// Options configures a Planner.
//
// CostModel – cost of one move (default UnitCost).
// MaxCost   – cells with cost above this are not expanded (default +Inf).
// OnExpand  – called for every expanded cell (default no-op).
type Options struct {
	CostModel CostModel
	MaxCost   float64
	OnExpand  func(c grid.Cell)
}

// Option represents a functional option for New.
type Option func(*Options)

// DefaultOptions returns unit costs, no cost cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		CostModel: UnitCost,
		MaxCost:   math.Inf(1),
		OnExpand:  func(grid.Cell) {},
	}
}

// WithCostModel selects the move cost model.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		o.CostModel = m
	}
}

// WithMaxCost caps the explored cost. Panics on a negative or NaN value.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = c
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

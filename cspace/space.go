package cspace

import (
	"fmt"

	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/raster"
)

// Space is a configuration space in its build phase.
// It embeds the read-only View so the grid can be inspected while obstacles
// are still being added; Freeze hands the View to planners.
type Space struct {
	*View
	frozen bool
}

// New creates a width×height space for an agent of the given radius, with
// every cell Free except the padded boundary band.
// Returns grid.ErrBadShape if either dimension is zero.
//
// The agent radius is not validated against the grid size: a radius of half
// the smaller dimension or more pads the whole grid.
func New(width, height, agentRadius uint) (*Space, error) {
	ix, err := grid.NewIndexer(width, height)
	if err != nil {
		return nil, fmt.Errorf("cspace: %w", err)
	}
	s := &Space{View: &View{
		ix:     ix,
		radius: agentRadius,
		states: grid.NewFilledStore(ix, Free),
	}}
	s.padBoundary()

	return s, nil
}

// FromStates rebuilds a space from a previously persisted state grid.
// The grid is copied and the boundary band is padded again, which is a no-op
// for grids produced by this package.
func FromStates(states *grid.Store[State], agentRadius uint) (*Space, error) {
	if states == nil {
		return nil, ErrNilStates
	}
	s := &Space{View: &View{
		ix:     states.Indexer,
		radius: agentRadius,
		states: states.Clone(),
	}}
	s.padBoundary()

	return s, nil
}

// AddObstacles marks each obstacle on the grid. For every shape, the shape
// dilated by the agent radius is marked Padded, then the shape itself is
// marked Object. Object cells are never downgraded, and boundary cells stay
// Padded. Returns ErrFrozen after Freeze.
func (s *Space) AddObstacles(obstacles ...raster.Shape) error {
	if s.frozen {
		return ErrFrozen
	}
	pad := s.marker(Padded)
	obj := s.marker(Object)
	for _, o := range obstacles {
		if o == nil {
			continue
		}
		o.Dilate(s.radius).Rasterize(s.ix, pad)
		o.Rasterize(s.ix, obj)
	}

	return nil
}

// Freeze ends the build phase and returns the read-only view.
// Calling Freeze more than once returns the same view.
func (s *Space) Freeze() *View {
	s.frozen = true

	return s.View
}

// Frozen reports whether Freeze has been called.
func (s *Space) Frozen() bool { return s.frozen }

// marker returns an idempotent visitor that raises cells to st, honouring
// state precedence and the boundary band.
func (s *Space) marker(st State) raster.Visitor {
	return func(x, y uint) {
		if s.inBand(x, y) {
			return
		}
		if st.rank() > s.states.At(x, y).rank() {
			s.states.Set(x, y, st)
		}
	}
}

// padBoundary forces every cell of the boundary band to Padded.
func (s *Space) padBoundary() {
	if s.radius == 0 {
		return
	}
	w, h := s.ix.Shape()
	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			if s.inBand(x, y) {
				s.states.Set(x, y, Padded)
			}
		}
	}
}

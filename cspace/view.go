package cspace

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/gridplan/grid"
)

// MaxNeighbors is the size of a 3×3 neighborhood minus its center.
const MaxNeighbors = 8

// View is a read-only handle on a configuration space.
// It is safe for concurrent use once the owning Space is frozen.
type View struct {
	ix     grid.Indexer
	radius uint
	states *grid.Store[State]
}

// Width returns the number of columns.
func (v *View) Width() uint { return v.ix.Width() }

// Height returns the number of rows.
func (v *View) Height() uint { return v.ix.Height() }

// AgentRadius returns the agent radius in cells.
func (v *View) AgentRadius() uint { return v.radius }

// Indexer returns the grid shape.
func (v *View) Indexer() grid.Indexer { return v.ix }

// Contains reports whether c lies inside the grid.
func (v *View) Contains(c grid.Cell) bool { return v.ix.Contains(c) }

// State returns the state of c. Panics if c is out of bounds.
func (v *View) State(c grid.Cell) State { return v.states.AtCell(c) }

// IsAccessible reports whether c is inside the grid and Free.
func (v *View) IsAccessible(c grid.Cell) bool {
	return v.ix.Contains(c) && v.states.AtCell(c) == Free
}

// AccessibleNeighbors returns the Free cells of the 3×3 neighborhood around
// c, clipped at the grid edges, excluding c itself. The first n entries of
// the returned array are valid, in row-major order. Nothing is allocated.
// An out-of-bounds c has no neighbors.
func (v *View) AccessibleNeighbors(c grid.Cell) (nbrs [MaxNeighbors]grid.Cell, n int) {
	w, h := v.ix.Shape()
	if c.X >= w || c.Y >= h {
		return nbrs, 0
	}
	minX, maxX := c.X, c.X
	minY, maxY := c.Y, c.Y
	if c.X > 0 {
		minX--
	}
	if c.Y > 0 {
		minY--
	}
	if c.X+1 < w {
		maxX++
	}
	if c.Y+1 < h {
		maxY++
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x == c.X && y == c.Y {
				continue
			}
			if v.states.At(x, y) == Free {
				nbrs[n] = grid.Cell{X: x, Y: y}
				n++
			}
		}
	}

	return nbrs, n
}

// States returns a copy of the state grid, suitable for persistence.
func (v *View) States() *grid.Store[State] { return v.states.Clone() }

// Counts tallies cells per state.
func (v *View) Counts() Counts {
	var c Counts
	for _, s := range v.states.Values() {
		switch s {
		case Free:
			c.Free++
		case Object:
			c.Object++
		case Padded:
			c.Padded++
		}
	}

	return c
}

// String renders the grid as rows of space-separated state values,
// row y=0 first. This is the body of the persisted text format.
func (v *View) String() string {
	w, h := v.ix.Shape()
	var b strings.Builder
	b.Grow(v.ix.Size()*2 + int(h))
	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(v.states.At(x, y))))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// inBand reports whether (x, y) lies within the agent radius of any edge.
func (v *View) inBand(x, y uint) bool {
	k := v.radius
	if k == 0 {
		return false
	}
	w, h := v.ix.Shape()

	return x < k || y < k || x+k >= w || y+k >= h
}

package raster

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/gridplan/grid"
)

// Visitor receives the coordinates of one covered cell.
type Visitor func(x, y uint)

// Shape is an obstacle geometry that can be rasterized onto a grid.
// The set of implementations is closed; see Circle.
type Shape interface {
	// Rasterize calls fn for every in-bounds cell covered by the shape.
	Rasterize(ix grid.Indexer, fn Visitor)

	// Dilate returns the shape grown by `by` cells in every direction.
	Dilate(by uint) Shape

	// Bounds returns the axis-aligned bounding box in cell units.
	// It may extend past the grid and below zero.
	Bounds() (minX, minY, maxX, maxY float64)

	sealed()
}

// Circle is a disc centered on a cell, with a radius in cell units.
type Circle struct {
	Center grid.Cell `json:"center"`
	Radius uint      `json:"radius"`
}

// NewCircle returns the circle centered at (x, y) with radius r.
func NewCircle(x, y, r uint) Circle {
	return Circle{Center: grid.C(x, y), Radius: r}
}

// Rasterize implements Shape via VisitCircle.
func (c Circle) Rasterize(ix grid.Indexer, fn Visitor) {
	VisitCircle(c, ix, fn)
}

// Dilate returns a circle with the same center and radius grown by `by`,
// saturating at math.MaxUint.
func (c Circle) Dilate(by uint) Shape {
	r := c.Radius + by
	if r < c.Radius {
		r = math.MaxUint
	}

	return Circle{Center: c.Center, Radius: r}
}

// Bounds returns the circle's bounding square.
func (c Circle) Bounds() (minX, minY, maxX, maxY float64) {
	x, y, r := float64(c.Center.X), float64(c.Center.Y), float64(c.Radius)

	return x - r, y - r, x + r, y + r
}

// Covers reports whether the center of cell p lies strictly inside the circle,
// using the same inequality as VisitCircle.
func (c Circle) Covers(p grid.Cell) bool {
	return inside(absDiff(p.X, c.Center.X), absDiff(p.Y, c.Center.Y), c.Radius)
}

// String renders the circle as "circle{(x, y) r=n}".
func (c Circle) String() string {
	return fmt.Sprintf("circle{%v r=%d}", c.Center, c.Radius)
}

func (Circle) sealed() {}

// VisitCircle invokes fn once for every cell of ix whose center lies strictly
// inside c. Centers outside the grid are allowed; only in-bounds cells are
// visited, and only the part of the bounding square that overlaps the grid
// is scanned, so the cost never exceeds O(W×H) whatever the radius.
func VisitCircle(c Circle, ix grid.Indexer, fn Visitor) {
	r := c.Radius
	if r == 0 {
		return
	}
	cx, cy := c.Center.X, c.Center.Y
	w, h := ix.Shape()
	x0, x1, okX := span(cx, r, w)
	y0, y1, okY := span(cy, r, h)
	if !okX || !okY {
		return
	}

	for y := y0; y <= y1; y++ {
		dy := absDiff(y, cy)
		for x := x0; x <= x1; x++ {
			if inside(absDiff(x, cx), dy, r) {
				fn(x, y)
			}
		}
	}
}

// span clips [c-r, c+r] to [0, n) without overflowing.
// ok is false when the two ranges do not meet.
func span(c, r, n uint) (lo, hi uint, ok bool) {
	if c > r {
		lo = c - r
	}
	if lo >= n {
		return 0, 0, false
	}
	hi = n - 1
	if c < hi && hi-c > r {
		hi = c + r
	}

	return lo, hi, true
}

// inside reports dx² + dy² < r², computed in 128 bits.
func inside(dx, dy, r uint) bool {
	xh, xl := bits.Mul(dx, dx)
	yh, yl := bits.Mul(dy, dy)
	sl, carry := bits.Add(xl, yl, 0)
	sh, over := bits.Add(xh, yh, carry)
	if over != 0 {
		return false
	}
	rh, rl := bits.Mul(r, r)

	return sh < rh || (sh == rh && sl < rl)
}

func absDiff(a, b uint) uint {
	if a > b {
		return a - b
	}

	return b - a
}

// Shapes converts a circle list into the Shape slice accepted by the
// configuration space builder.
func Shapes(circles []Circle) []Shape {
	out := make([]Shape, len(circles))
	for i, c := range circles {
		out[i] = c
	}

	return out
}

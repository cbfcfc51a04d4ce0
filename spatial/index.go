package spatial

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
	"github.com/katalvlaran/gridplan/raster"
)

// minExtent keeps degenerate rectangles valid for rtreego, which rejects
// zero-length sides.
const minExtent = 1e-9

// entry wraps an obstacle for R-tree storage.
type entry struct {
	circle raster.Circle
	bbox   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.bbox }

// Index answers spatial queries over a fixed set of circular obstacles.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an index over obstacles.
func NewIndex(obstacles []raster.Circle) *Index {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, c := range obstacles {
		tree.Insert(&entry{circle: c, bbox: rect(c.Bounds())})
	}

	return &Index{tree: tree}
}

// Len returns the number of indexed obstacles.
func (ix *Index) Len() int { return ix.tree.Size() }

// Query returns the obstacles whose bounding squares intersect the box
// spanned by the two corner cells (in any order).
func (ix *Index) Query(a, b grid.Cell) []raster.Circle {
	minX, maxX := ordered(float64(a.X), float64(b.X))
	minY, maxY := ordered(float64(a.Y), float64(b.Y))

	return ix.search(minX-0.5, minY-0.5, maxX+0.5, maxY+0.5)
}

// Nearest returns the obstacle whose edge is closest to the center of c, and
// that distance (0 when c is inside). ok is false for an empty index.
func (ix *Index) Nearest(c grid.Cell) (nearest raster.Circle, dist float64, ok bool) {
	if ix.tree.Size() == 0 {
		return raster.Circle{}, 0, false
	}
	px, py := float64(c.X), float64(c.Y)
	first := ix.tree.NearestNeighbor(rtreego.Point{px, py}).(*entry)
	nearest, dist = first.circle, edgeDistance(first.circle, c)

	// Any obstacle whose edge is closer than dist has a bounding square
	// within dist of c, so a box search of that size finds them all.
	for _, o := range ix.search(px-dist, py-dist, px+dist, py+dist) {
		if d := edgeDistance(o, c); d < dist {
			nearest, dist = o, d
		}
	}

	return nearest, dist, true
}

// Violation records a route cell that encroaches on an obstacle.
type Violation struct {
	Index     int           `json:"index"` // position in the route
	Cell      grid.Cell     `json:"cell"`
	Obstacle  raster.Circle `json:"obstacle"`
	Clearance float64       `json:"clearance"` // center distance minus required distance, negative
}

// Audit reports every (cell, obstacle) pair of route where the cell center
// lies strictly within obstacle radius + agentRadius of the obstacle center.
// A route planned on a configuration space built from the same obstacles
// and agent radius has no violations.
func (ix *Index) Audit(route planner.Route, agentRadius uint) []Violation {
	var out []Violation
	k := float64(agentRadius)
	for i, c := range route {
		x, y := float64(c.X), float64(c.Y)
		for _, o := range ix.search(x-k, y-k, x+k, y+k) {
			grown := o.Dilate(agentRadius).(raster.Circle)
			if !grown.Covers(c) {
				continue
			}
			out = append(out, Violation{
				Index:     i,
				Cell:      c,
				Obstacle:  o,
				Clearance: c.Distance(o.Center) - float64(grown.Radius),
			})
		}
	}

	return out
}

func (ix *Index) search(minX, minY, maxX, maxY float64) []raster.Circle {
	results := ix.tree.SearchIntersect(rect(minX, minY, maxX, maxY))
	out := make([]raster.Circle, 0, len(results))
	for _, item := range results {
		out = append(out, item.(*entry).circle)
	}

	return out
}

// rect builds an rtreego rectangle from corners, padding empty sides.
func rect(minX, minY, maxX, maxY float64) rtreego.Rect {
	r, err := rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{math.Max(maxX-minX, minExtent), math.Max(maxY-minY, minExtent)},
	)
	if err != nil {
		// unreachable: both lengths are positive
		panic(err)
	}

	return r
}

// edgeDistance is the distance from the center of c to the obstacle's edge.
func edgeDistance(o raster.Circle, c grid.Cell) float64 {
	return math.Max(0, c.Distance(o.Center)-float64(o.Radius))
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}

	return a, b
}

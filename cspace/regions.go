package cspace

import "github.com/katalvlaran/gridplan/grid"

// conn8 lists the eight neighbor offsets: N, NE, E, SE, S, SW, W, NW.
var conn8 = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// RegionMap labels the 8-connected regions of Free cells.
// Two Free cells share a label iff a route of Free cells joins them.
type RegionMap struct {
	labels *grid.Store[int] // -1 for cells that are not Free
	sizes  []int
}

// Regions finds all 8-connected regions of Free cells using BFS.
// Labels are assigned in row-major order of each region's first cell.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for labels and the queue.
func Regions(v *View) *RegionMap {
	w, h := v.ix.Shape()
	labels := grid.NewFilledStore(v.ix, -1)
	rm := &RegionMap{labels: labels}
	queue := make([]int, 0, 64)

	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			if v.states.At(x, y) != Free || labels.At(x, y) >= 0 {
				continue
			}
			id := len(rm.sizes)
			size := 0
			labels.Set(x, y, id)
			queue = append(queue[:0], v.ix.Index(x, y))

			for qi := 0; qi < len(queue); qi++ {
				u := v.ix.Coordinate(queue[qi])
				size++
				for _, d := range conn8 {
					nx, ny := int(u.X)+d[0], int(u.Y)+d[1]
					if nx < 0 || ny < 0 || nx >= int(w) || ny >= int(h) {
						continue
					}
					ux, uy := uint(nx), uint(ny)
					if v.states.At(ux, uy) != Free || labels.At(ux, uy) >= 0 {
						continue
					}
					labels.Set(ux, uy, id)
					queue = append(queue, v.ix.Index(ux, uy))
				}
			}
			rm.sizes = append(rm.sizes, size)
		}
	}

	return rm
}

// Count returns the number of regions.
func (rm *RegionMap) Count() int { return len(rm.sizes) }

// Sizes returns the number of cells in each region, indexed by label.
func (rm *RegionMap) Sizes() []int {
	cp := make([]int, len(rm.sizes))
	copy(cp, rm.sizes)

	return cp
}

// Label returns the region label of c, or false if c is out of bounds or not Free.
func (rm *RegionMap) Label(c grid.Cell) (int, bool) {
	if !rm.labels.Contains(c) {
		return -1, false
	}
	l := rm.labels.AtCell(c)

	return l, l >= 0
}

// Connected reports whether a and b are Free cells of the same region.
func (rm *RegionMap) Connected(a, b grid.Cell) bool {
	la, okA := rm.Label(a)
	lb, okB := rm.Label(b)

	return okA && okB && la == lb
}

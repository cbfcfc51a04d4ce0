package planner

import (
	"container/heap"

	"github.com/katalvlaran/gridplan/grid"
)

// Frontier is a min-priority queue of cells. Entries with equal priority
// leave in insertion order. Updating a cell's priority is done by pushing it
// again; callers skip stale entries when popped (lazy decrease-key).
type Frontier struct {
	pq  entryPQ
	seq uint64
}

// NewFrontier returns an empty frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	return &Frontier{pq: make(entryPQ, 0, capacity)}
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier) Len() int { return f.pq.Len() }

// Push queues c with the given priority.
func (f *Frontier) Push(c grid.Cell, priority float64) {
	heap.Push(&f.pq, entry{cell: c, prio: priority, seq: f.seq})
	f.seq++
}

// Pop removes and returns the entry with the smallest priority.
// Panics if the frontier is empty.
func (f *Frontier) Pop() (grid.Cell, float64) {
	e := heap.Pop(&f.pq).(entry)

	return e.cell, e.prio
}

// entry is one queued cell. seq breaks priority ties.
type entry struct {
	cell grid.Cell
	prio float64
	seq  uint64
}

// entryPQ implements heap.Interface ordered by (prio, seq).
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

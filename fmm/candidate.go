package fmm

import (
	"math"

	"github.com/katalvlaran/fastmarch/lattice"
)

// candidate is one frontier entry: a point together with the tentative
// value it was inserted with. The same point may sit in the queue
// several times with different values under lazy re-insertion; only
// the first extraction counts.
type candidate struct {
	point lattice.Point // lattice point awaiting acceptance
	value float64       // tentative (signed) value at insertion time
}

// candidateQueue is a min-heap of *candidate ordered by increasing
// value magnitude, so a signed two-sided front still marches outward
// from the surface. Ties break lexicographically on the point, then by
// raw value (negative first), keeping extraction fully deterministic.
//
// Stale entries (points accepted since insertion) are not removed; the
// engine skips them at extraction. This is the same lazy-decrease-key
// strategy used by heap-based Dijkstra implementations.
type candidateQueue []*candidate

// Len returns the number of entries in the heap.
func (cq candidateQueue) Len() int { return len(cq) }

// Less defines the priority: smaller |value| first, then lexicographic
// point order, then raw value.
func (cq candidateQueue) Less(i, j int) bool {
	ai, aj := math.Abs(cq[i].value), math.Abs(cq[j].value)
	if ai != aj {
		return ai < aj
	}
	if c := lattice.Compare(cq[i].point, cq[j].point); c != 0 {
		return c < 0
	}

	return cq[i].value < cq[j].value
}

// Swap swaps two entries in the heap.
func (cq candidateQueue) Swap(i, j int) { cq[i], cq[j] = cq[j], cq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *candidate.
func (cq *candidateQueue) Push(x interface{}) { *cq = append(*cq, x.(*candidate)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *candidate.
func (cq *candidateQueue) Pop() interface{} {
	old := *cq
	n := len(old)
	item := old[n-1]
	*cq = old[:n-1]

	return item
}

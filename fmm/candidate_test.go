package fmm

import (
	"container/heap"
	"testing"

	"github.com/katalvlaran/fastmarch/lattice"
)

// TestCandidateQueueOrder feeds the frontier heap entries with mixed
// magnitudes, signs and points, and verifies the exact extraction
// order: |value| first, then lexicographic point, then raw value with
// the negative side ahead.
//
// Complexity: O(n log n) time, O(n) memory.
func TestCandidateQueueOrder(t *testing.T) {
	cq := &candidateQueue{}
	heap.Init(cq)

	heap.Push(cq, &candidate{point: lattice.Pt2(2, 0), value: 2})
	heap.Push(cq, &candidate{point: lattice.Pt2(0, 1), value: -1})
	heap.Push(cq, &candidate{point: lattice.Pt2(5, 5), value: 0.5})
	heap.Push(cq, &candidate{point: lattice.Pt2(0, 1), value: 1})
	heap.Push(cq, &candidate{point: lattice.Pt2(-1, 0), value: 1})

	want := []candidate{
		{point: lattice.Pt2(5, 5), value: 0.5},
		{point: lattice.Pt2(-1, 0), value: 1},
		{point: lattice.Pt2(0, 1), value: -1},
		{point: lattice.Pt2(0, 1), value: 1},
		{point: lattice.Pt2(2, 0), value: 2},
	}
	for i, w := range want {
		got := heap.Pop(cq).(*candidate)
		if got.point != w.point || got.value != w.value {
			t.Fatalf("pop %d = {%v %v}; want {%v %v}", i, got.point, got.value, w.point, w.value)
		}
	}
	if cq.Len() != 0 {
		t.Errorf("queue not drained: %d entries left", cq.Len())
	}
}

// TestCandidateQueueSignedMagnitude verifies that a negative value of
// smaller magnitude is extracted before a positive value of larger
// magnitude, the property that lets one heap serve a two-sided front.
func TestCandidateQueueSignedMagnitude(t *testing.T) {
	cq := &candidateQueue{}
	heap.Init(cq)

	heap.Push(cq, &candidate{point: lattice.Pt2(1, 0), value: 1.5})
	heap.Push(cq, &candidate{point: lattice.Pt2(-1, 0), value: -0.75})

	got := heap.Pop(cq).(*candidate)
	if got.value != -0.75 {
		t.Fatalf("first pop value = %v; want -0.75", got.value)
	}
	got = heap.Pop(cq).(*candidate)
	if got.value != 1.5 {
		t.Fatalf("second pop value = %v; want 1.5", got.value)
	}
}

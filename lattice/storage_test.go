package lattice_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fastmarch/lattice"
)

// TestMapFieldGetSet verifies sparse value storage: unset points read
// as NaN, written points read back exactly.
func TestMapFieldGetSet(t *testing.T) {
	f := lattice.NewMapField()

	assert.True(t, math.IsNaN(f.Get(lattice.Pt2(0, 0))), "unset points must read as NaN")

	f.Set(lattice.Pt2(1, 2), -0.5)
	f.Set(lattice.Pt2(1, 2), 2.25)
	assert.Equal(t, 2.25, f.Get(lattice.Pt2(1, 2)), "later writes overwrite")
	assert.Equal(t, 1, f.Len())
}

// TestDenseFieldGetSet verifies dense value storage: NaN until written,
// NaN outside the bounds, and a panic on out-of-bounds writes.
func TestDenseFieldGetSet(t *testing.T) {
	b := lattice.NewBox(lattice.Pt2(-1, -1), lattice.Pt2(1, 1))
	f := lattice.NewDenseField(b)

	assert.Equal(t, b, f.Bounds())
	assert.True(t, math.IsNaN(f.Get(lattice.Pt2(0, 0))), "unset points must read as NaN")
	assert.True(t, math.IsNaN(f.Get(lattice.Pt2(5, 5))), "points outside the bounds read as NaN")

	f.Set(lattice.Pt2(-1, 1), 3.5)
	assert.Equal(t, 3.5, f.Get(lattice.Pt2(-1, 1)))

	assert.PanicsWithValue(t, lattice.ErrOutOfBounds.Error(), func() {
		f.Set(lattice.Pt2(2, 0), 1)
	})
}

// TestMapSetMembership verifies sparse membership: Add is idempotent
// and Len tracks distinct points.
func TestMapSetMembership(t *testing.T) {
	s := lattice.NewMapSet(lattice.Pt2(0, 0), lattice.Pt2(1, 0), lattice.Pt2(0, 0))

	assert.Equal(t, 2, s.Len(), "duplicate constructor points count once")
	assert.True(t, s.Contains(lattice.Pt2(1, 0)))
	assert.False(t, s.Contains(lattice.Pt2(1, 1)))

	s.Add(lattice.Pt2(1, 1))
	s.Add(lattice.Pt2(1, 1))
	assert.Equal(t, 3, s.Len())
}

// TestDenseSetMembership verifies bitmap-backed membership: idempotent
// Add, never-member outside the bounds, panic on out-of-bounds Add.
func TestDenseSetMembership(t *testing.T) {
	b := lattice.NewBox(lattice.Pt2(0, 0), lattice.Pt2(3, 3))
	s := lattice.NewDenseSet(b)

	assert.Equal(t, b, s.Bounds())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(lattice.Pt2(9, 9)), "points outside the bounds are never members")

	s.Add(lattice.Pt2(2, 1))
	s.Add(lattice.Pt2(2, 1))
	assert.True(t, s.Contains(lattice.Pt2(2, 1)))
	assert.Equal(t, 1, s.Len(), "Add must be idempotent")

	assert.PanicsWithValue(t, lattice.ErrOutOfBounds.Error(), func() {
		s.Add(lattice.Pt2(4, 0))
	})
}

// TestDenseSetEachOrder verifies that Each visits members in ascending
// Index order and honors early stop.
func TestDenseSetEachOrder(t *testing.T) {
	b := lattice.NewBox(lattice.Pt2(0, 0), lattice.Pt2(2, 2))
	s := lattice.NewDenseSet(b)
	s.Add(lattice.Pt2(2, 2))
	s.Add(lattice.Pt2(0, 1))
	s.Add(lattice.Pt2(1, 0))

	var got []lattice.Point
	s.Each(func(p lattice.Point) bool {
		got = append(got, p)

		return true
	})
	assert.Equal(t, []lattice.Point{lattice.Pt2(1, 0), lattice.Pt2(0, 1), lattice.Pt2(2, 2)}, got)

	count := 0
	s.Each(func(lattice.Point) bool {
		count++

		return false
	})
	assert.Equal(t, 1, count)
}

// TestSetParity verifies that MapSet and DenseSet agree on membership
// over a whole box after identical insertions.
func TestSetParity(t *testing.T) {
	b := lattice.NewBox(lattice.Pt2(-2, -2), lattice.Pt2(2, 2))
	sparse := lattice.NewMapSet()
	dense := lattice.NewDenseSet(b)

	points := []lattice.Point{
		lattice.Pt2(-2, -2), lattice.Pt2(0, 0), lattice.Pt2(2, 2),
		lattice.Pt2(-1, 2), lattice.Pt2(1, -2), lattice.Pt2(0, 0),
	}
	var p lattice.Point
	for _, p = range points {
		sparse.Add(p)
		dense.Add(p)
	}
	assert.Equal(t, sparse.Len(), dense.Len())

	fromSparse := make(map[lattice.Point]bool)
	fromDense := make(map[lattice.Point]bool)
	b.Each(func(q lattice.Point) bool {
		fromSparse[q] = sparse.Contains(q)
		fromDense[q] = dense.Contains(q)

		return true
	})
	if diff := cmp.Diff(fromSparse, fromDense); diff != "" {
		t.Errorf("membership mismatch (-sparse +dense):\n%s", diff)
	}
}

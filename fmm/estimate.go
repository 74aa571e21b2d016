package fmm

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fastmarch/lattice"
)

// axisUpwind gathers the upwind data of a candidate: for each of the
// first dim axes, the smaller value magnitude among the accepted face
// neighbors on that axis. Axes with no accepted neighbor contribute
// nothing. neg carries the sign family, read off the smallest-magnitude
// value seen overall (scan order: axis by axis, negative side first, a
// strict comparison keeps the first on ties). ok is false when no axis
// contributed.
//
// Mixed signs across the contributing neighbors make the sign family,
// and hence the estimate, unspecified. Complete interface seedings
// never expose a candidate to both signs.
func axisUpwind(dim int, p lattice.Point, field FieldReader, accepted SetReader) (mags []float64, neg, ok bool) {
	mags = make([]float64, 0, dim)
	closest := math.Inf(1)
	var q lattice.Point
	var v, a, best float64
	var has bool
	var axis, delta int
	for axis = 0; axis < dim; axis++ {
		has, best = false, 0
		for _, delta = range [2]int{-1, +1} {
			q = p.Shift(axis, delta)
			if !accepted.Contains(q) {
				continue
			}
			v = field.Get(q)
			a = math.Abs(v)
			if has && a >= best {
				continue
			}
			has, best = true, a
			if a < closest {
				closest, neg = a, v < 0
			}
		}
		if has {
			mags = append(mags, best)
		}
	}

	return mags, neg, len(mags) > 0
}

// solveUpwind solves the first-order upwind quadratic
//
//	Σ (x - m_i)² = 1  over the known magnitudes m_i,
//
// the discrete form of the unit-gradient equation |∇u| = 1 restricted
// to the axes holding accepted neighbors. A negative discriminant
// means the largest magnitude cannot support a unit gradient; it is
// dropped and the solve retried on the remaining axes. A single axis
// reduces to m + 1. The input slice is sorted in place.
func solveUpwind(mags []float64) float64 {
	sort.Float64s(mags)
	var sum, sumSq float64
	var m float64
	for _, m = range mags {
		sum += m
		sumSq += m * m
	}
	var fn, disc, last float64
	for n := len(mags); n > 1; n-- {
		fn = float64(n)
		disc = sum*sum - fn*(sumSq-1)
		if disc >= 0 {
			return (sum + math.Sqrt(disc)) / fn
		}
		// Drop the largest magnitude and retry on fewer axes.
		last = mags[n-1]
		sum -= last
		sumSq -= last * last
	}

	return mags[0] + 1
}

// L2FirstOrder estimates Euclidean distance with the classic
// first-order upwind scheme: the tentative value at a candidate solves
// Σ (x - m_i)² = 1 over the per-axis upwind magnitudes m_i.
// This is the default estimator.
type L2FirstOrder struct{}

// Estimate implements Estimator.
func (L2FirstOrder) Estimate(dim int, p lattice.Point, field FieldReader, accepted SetReader) (float64, bool) {
	mags, neg, ok := axisUpwind(dim, p, field, accepted)
	if !ok {
		return 0, false
	}
	x := solveUpwind(mags)
	if neg {
		return -x, true
	}

	return x, true
}

// axisCoeff is one axis term k·(x - t)² of the weighted upwind
// quadratic used by the second-order scheme.
type axisCoeff struct {
	k float64 // stencil weight: 1 first-order, 9/4 second-order
	t float64 // shifted magnitude the axis contributes
}

// solveUpwindCoeff solves the weighted upwind quadratic
//
//	Σ k_i (x - t_i)² = 1  over the known axes,
//
// dropping the largest t_i on a negative discriminant, exactly as
// solveUpwind does for the unweighted form. A single remaining axis
// reduces to t + 1/√k. The input slice is sorted in place.
func solveUpwindCoeff(coeffs []axisCoeff) float64 {
	sort.Slice(coeffs, func(i, j int) bool { return coeffs[i].t < coeffs[j].t })
	var sk, skt, skt2 float64
	var c axisCoeff
	for _, c = range coeffs {
		sk += c.k
		skt += c.k * c.t
		skt2 += c.k * c.t * c.t
	}
	var disc float64
	for n := len(coeffs); n > 1; n-- {
		disc = skt*skt - sk*(skt2-1)
		if disc >= 0 {
			return (skt + math.Sqrt(disc)) / sk
		}
		c = coeffs[n-1]
		sk -= c.k
		skt -= c.k * c.t
		skt2 -= c.k * c.t * c.t
	}
	c = coeffs[0]

	return c.t + 1/math.Sqrt(c.k)
}

// L2SecondOrder estimates Euclidean distance with a second-order
// upwind stencil on every axis where two accepted points line up
// behind the front, falling back to the first-order stencil elsewhere.
// On the second-order axes the term (x - m)² is replaced by
// 9/4·(x - t)² with t = (4·m₁ - m₂)/3, built from the magnitudes one
// and two steps upwind. Sharper than L2FirstOrder on smooth fronts;
// identical interface and sign handling.
type L2SecondOrder struct{}

// Estimate implements Estimator.
func (L2SecondOrder) Estimate(dim int, p lattice.Point, field FieldReader, accepted SetReader) (float64, bool) {
	coeffs := make([]axisCoeff, 0, dim)
	closest := math.Inf(1)
	neg := false
	var q lattice.Point
	var v, a, best, m1, m2 float64
	var has bool
	var axis, delta, bestDelta int
	for axis = 0; axis < dim; axis++ {
		has, best, bestDelta = false, 0, 0
		for _, delta = range [2]int{-1, +1} {
			q = p.Shift(axis, delta)
			if !accepted.Contains(q) {
				continue
			}
			v = field.Get(q)
			a = math.Abs(v)
			if has && a >= best {
				continue
			}
			has, best, bestDelta = true, a, delta
			if a < closest {
				closest, neg = a, v < 0
			}
		}
		if !has {
			continue
		}

		// The second-order stencil needs one more accepted point behind
		// the chosen neighbor, no farther from the front than it.
		m1 = best
		q = p.Shift(axis, 2*bestDelta)
		if accepted.Contains(q) {
			m2 = math.Abs(field.Get(q))
			if m2 <= m1 {
				coeffs = append(coeffs, axisCoeff{k: 9.0 / 4.0, t: (4*m1 - m2) / 3})

				continue
			}
		}
		coeffs = append(coeffs, axisCoeff{k: 1, t: m1})
	}
	if len(coeffs) == 0 {
		return 0, false
	}
	x := solveUpwindCoeff(coeffs)
	if neg {
		return -x, true
	}

	return x, true
}

// L1 estimates taxicab distance. The L1 ball grows one face layer per
// unit, so the tentative value is the smallest neighbor magnitude plus
// one. Exact for the L1 metric on the lattice.
type L1 struct{}

// Estimate implements Estimator.
func (L1) Estimate(dim int, p lattice.Point, field FieldReader, accepted SetReader) (float64, bool) {
	mags, neg, ok := axisUpwind(dim, p, field, accepted)
	if !ok {
		return 0, false
	}
	x := floats.Min(mags) + 1
	if neg {
		return -x, true
	}

	return x, true
}

// LInf estimates chessboard distance. With a single known axis the
// front advances one unit: m + 1. With several known axes the
// candidate sits diagonally off the front, and the chessboard metric
// adds nothing along the extra axes: the estimate is max(m_i). Exact
// for the L∞ metric on the lattice.
type LInf struct{}

// Estimate implements Estimator.
func (LInf) Estimate(dim int, p lattice.Point, field FieldReader, accepted SetReader) (float64, bool) {
	mags, neg, ok := axisUpwind(dim, p, field, accepted)
	if !ok {
		return 0, false
	}
	var x float64
	if len(mags) == 1 {
		x = mags[0] + 1
	} else {
		x = floats.Max(mags)
	}
	if neg {
		return -x, true
	}

	return x, true
}

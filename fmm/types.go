// Package fmm defines storage capabilities, tunable options and error
// definitions for fast marching over an integer lattice.
package fmm

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fastmarch/lattice"
)

// Sentinel errors for engine construction and configuration.
var (
	// ErrNilField indicates a nil DistanceField was passed to New.
	ErrNilField = errors.New("fmm: distance field is nil")

	// ErrNilSet indicates a nil PointSet was passed to New.
	ErrNilSet = errors.New("fmm: accepted point set is nil")

	// ErrNilPredicate indicates a nil domain predicate was passed to New.
	ErrNilPredicate = errors.New("fmm: domain predicate is nil")

	// ErrDimension indicates a dimension outside [1, lattice.MaxDim].
	ErrDimension = errors.New("fmm: dimension must be between 1 and lattice.MaxDim")

	// ErrEmptyAcceptedSet indicates the accepted set holds no seed, so the
	// front has nowhere to start from.
	ErrEmptyAcceptedSet = errors.New("fmm: accepted set is empty; seed at least one point")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fmm: invalid option supplied")
)

// FieldReader is the read-only view of a distance field. Estimators
// receive this view: upwind estimation reads accepted values and never
// writes any.
type FieldReader interface {
	// Get returns the value stored at p. Implementations report points
	// never written as NaN.
	Get(p lattice.Point) float64
}

// DistanceField is the engine's writable value storage. The engine
// writes each accepted point exactly once, immediately on acceptance.
// lattice.MapField and *lattice.DenseField implement it.
type DistanceField interface {
	FieldReader

	// Set stores v at p, overwriting any previous value.
	Set(p lattice.Point, v float64)
}

// SetReader is the read-only membership view of a point set.
type SetReader interface {
	// Contains reports whether p belongs to the set.
	Contains(p lattice.Point) bool
}

// PointSet is the engine's accepted-set storage. The engine only ever
// grows it, one point per step. lattice.MapSet and *lattice.DenseSet
// implement it.
type PointSet interface {
	SetReader

	// Add inserts p into the set; inserting a member again is a no-op.
	Add(p lattice.Point)

	// Len returns the number of points in the set.
	Len() int

	// Each visits every point of the set, stopping early when visit
	// returns false. Order is implementation-defined.
	Each(visit func(p lattice.Point) bool)
}

// PointPredicate restricts the march to a domain: the engine considers
// only points for which the predicate returns true. It is evaluated
// once per neighbor per step, so keep it cheap and pure.
//
// A predicate true on unboundedly many points, combined with an engine
// that has no cap options, makes Compute march forever.
type PointPredicate func(p lattice.Point) bool

// Estimator computes the tentative value of one candidate point from
// already-accepted values around it. Implementations must be upwind:
// read only points reported accepted, through the read-only views.
type Estimator interface {
	// Estimate returns the tentative value at p. It reports ok=false
	// when no face neighbor of p along the first dim axes is accepted,
	// in which case no estimate exists.
	Estimate(dim int, p lattice.Point, field FieldReader, accepted SetReader) (v float64, ok bool)
}

// PointValue pairs a lattice point with a field value, as returned by
// ComputeOneStep and consumed by SeedSamples.
type PointValue struct {
	Point lattice.Point
	Value float64
}

// Option configures the engine via functional arguments. An invalid
// value (nil estimator, negative cap, NaN bound) is recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a march.
type Options struct {
	// Estimator is the local rule producing tentative values.
	Estimator Estimator

	// MaxAccepted, if > 0, makes Compute stop before a step would grow
	// the accepted set beyond this total (seed points included).
	// A value of 0 explicitly disables the cap.
	MaxAccepted int

	// MaxDistance makes Compute stop once an accepted value reaches
	// this magnitude. The crossing point itself is still accepted.
	// Default is +Inf (no bound).
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Estimator:   L2FirstOrder{} (first-order Euclidean rule)
//   - MaxAccepted: 0 (no cap on the accepted set)
//   - MaxDistance: +Inf (no distance bound)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Estimator:   L2FirstOrder{},
		MaxAccepted: 0,
		MaxDistance: math.Inf(1),
		err:         nil,
	}
}

// WithEstimator selects the local estimation rule.
// A nil estimator is invalid → ErrOptionViolation.
func WithEstimator(est Estimator) Option {
	return func(o *Options) {
		if est == nil {
			o.err = fmt.Errorf("%w: Estimator must not be nil", ErrOptionViolation)

			return
		}
		o.Estimator = est
	}
}

// WithMaxAccepted caps the total size of the accepted set, seed points
// included. Compute checks the cap before each step.
//
//	n > 0:  stop before the accepted set would exceed n points
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxAccepted(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxAccepted cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no cap"
			o.MaxAccepted = 0
		default:
			o.MaxAccepted = n
		}
	}
}

// WithMaxDistance makes Compute stop once an accepted value reaches d
// in magnitude. The check runs after the acceptance, so the crossing
// point keeps its value and at most one accepted value reaches past d.
// Must pass a non-negative, non-NaN value; others → ErrOptionViolation.
// Default (if not set) is +Inf (no bound).
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, d)

			return
		}
		o.MaxDistance = d
	}
}

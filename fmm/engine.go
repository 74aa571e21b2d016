package fmm

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/fastmarch/lattice"
)

// Engine holds the mutable state of one fast marching run.
// Construct with New; the zero Engine is not usable.
type Engine struct {
	dim      int             // working dimension, 1..lattice.MaxDim
	field    DistanceField   // accepted values, written once per point
	set      PointSet        // accepted set, grown by one point per step
	within   PointPredicate  // domain restriction
	options  Options         // estimator and stopping rules
	stencil  []lattice.Point // face-neighbor offsets for dim
	frontier candidateQueue  // min-heap of candidates by |value|
	accepted int             // points accepted by the engine (seeds not counted)
	min, max float64         // extreme values over seeds and accepted points
}

// New validates the inputs and builds an Engine whose frontier already
// holds an estimate for every unaccepted domain neighbor of the seeds.
//
// Preconditions and validation (in order):
//  1. Every supplied Option must be valid (ErrOptionViolation).
//  2. dim must lie in [1, lattice.MaxDim] (ErrDimension).
//  3. field must be non-nil (ErrNilField).
//  4. set must be non-nil (ErrNilSet).
//  5. within must be non-nil (ErrNilPredicate).
//  6. set must hold at least one seed point (ErrEmptyAcceptedSet).
//
// Every seed must already hold a finite value in field; the seeding
// helpers (Seed, SeedSamples, SeedBy, SeedInterface) maintain this.
//
// Options customization:
//
//   - WithEstimator(est): local rule, default L2FirstOrder.
//   - WithMaxAccepted(n): cap on the accepted set size, seeds included.
//   - WithMaxDistance(d): stop once an accepted |value| reaches d.
//
// Complexity: O(S·dim·(E + log(S·dim))) for S seeds and estimator cost E.
func New(dim int, field DistanceField, set PointSet, within PointPredicate, opts ...Option) (*Engine, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the dimension.
	if dim < 1 || dim > lattice.MaxDim {
		return nil, fmt.Errorf("%w: %d", ErrDimension, dim)
	}

	// 3) Validate storage inputs.
	if field == nil {
		return nil, ErrNilField
	}
	if set == nil {
		return nil, ErrNilSet
	}

	// 4) Validate the domain predicate.
	if within == nil {
		return nil, ErrNilPredicate
	}

	// 5) The front has to start somewhere.
	if set.Len() == 0 {
		return nil, ErrEmptyAcceptedSet
	}

	// 6) Assemble the engine around the caller's storage.
	e := &Engine{
		dim:     dim,
		field:   field,
		set:     set,
		within:  within,
		options: cfg,
		stencil: lattice.Stencil(dim),
		min:     math.Inf(1),
		max:     math.Inf(-1),
	}

	// 7) Build the initial frontier: every unaccepted domain neighbor
	//    of a seed gets an estimate. Seed values feed Min/Max.
	heap.Init(&e.frontier)
	var off lattice.Point
	set.Each(func(p lattice.Point) bool {
		e.observe(field.Get(p))
		for _, off = range e.stencil {
			e.consider(p.Add(off))
		}

		return true
	})

	return e, nil
}

// ComputeOneStep accepts the single closest candidate: it pops the
// frontier entry with the smallest value magnitude, finalizes that
// value in the field, and re-estimates the unaccepted domain neighbors
// of the accepted point.
//
// Returns the accepted point with its value, or ok=false once the
// frontier is exhausted (the march is complete; further calls keep
// returning false). The stopping rules from the options bound Compute
// only; single stepping ignores them.
//
// Complexity: O(dim·E + (1 + dim)·log F) per call, for frontier size F
// and estimator cost E.
func (e *Engine) ComputeOneStep() (PointValue, bool) {
	var c *candidate
	var off lattice.Point
	for e.frontier.Len() > 0 {
		// 1) Pop the smallest-magnitude entry from the heap.
		c = heap.Pop(&e.frontier).(*candidate)

		// 2) Skip stale entries: the point was accepted through an
		//    earlier extraction after this entry was pushed.
		if e.set.Contains(c.point) {
			continue
		}

		// 3) Accept. The value is final from here on.
		e.set.Add(c.point)
		e.field.Set(c.point, c.value)
		e.accepted++
		e.observe(c.value)

		// 4) Re-estimate the unaccepted domain neighbors.
		for _, off = range e.stencil {
			e.consider(c.point.Add(off))
		}

		return PointValue{Point: c.point, Value: c.value}, true
	}

	return PointValue{}, false
}

// Compute marches until a stopping rule fires:
//
//   - the frontier is exhausted (the reachable domain is fully swept), or
//   - accepting another point would grow the accepted set beyond
//     MaxAccepted (checked before each step, seeds included), or
//   - an accepted value reaches MaxDistance in magnitude (checked after
//     the acceptance, so the crossing point keeps its value).
//
// Calling Compute again resumes the march under the same rules; once
// the frontier is exhausted it is a no-op.
//
// Complexity: O(N·dim·(E + log N)) for N accepted points.
func (e *Engine) Compute() {
	var pv PointValue
	var ok bool
	for {
		// 1) Cap on the accepted set, seeds included.
		if e.options.MaxAccepted > 0 && e.set.Len() >= e.options.MaxAccepted {
			return
		}

		// 2) Accept the closest candidate, if any remains.
		pv, ok = e.ComputeOneStep()
		if !ok {
			return
		}

		// 3) Distance bound; the crossing point is already accepted.
		if math.Abs(pv.Value) >= e.options.MaxDistance {
			return
		}
	}
}

// Min returns the smallest value seen over seeds and accepted points.
func (e *Engine) Min() float64 { return e.min }

// Max returns the largest value seen over seeds and accepted points.
func (e *Engine) Max() float64 { return e.max }

// Accepted returns the number of points this engine has accepted.
// Seed points are not counted.
func (e *Engine) Accepted() int { return e.accepted }

// consider estimates q and pushes it onto the frontier, unless q lies
// outside the domain or is already accepted. Duplicate frontier
// entries for the same point are fine; extraction keeps the first.
func (e *Engine) consider(q lattice.Point) {
	// 1) The march never leaves the domain.
	if !e.within(q) {
		return
	}

	// 2) Accepted values are final; never re-estimate them.
	if e.set.Contains(q) {
		return
	}

	// 3) Estimate from accepted neighbors. A point considered here is
	//    the face neighbor of one, so an estimate always exists; its
	//    absence means field or set were mutated behind the engine.
	v, ok := e.options.Estimator.Estimate(e.dim, q, e.field, e.set)
	if !ok {
		panic(fmt.Sprintf("fmm: no accepted neighbor for candidate %v", q))
	}
	heap.Push(&e.frontier, &candidate{point: q, value: v})
}

// observe widens the accepted-value range with v.
func (e *Engine) observe(v float64) {
	if v < e.min {
		e.min = v
	}
	if v > e.max {
		e.max = v
	}
}

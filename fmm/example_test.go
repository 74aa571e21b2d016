package fmm_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/fastmarch/fmm"
	"github.com/katalvlaran/fastmarch/lattice"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEngine_Compute
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Sweep Euclidean distance from a single zero seed at the origin
//	across a 5×5 box and print the resulting field, row by row.
//
// Options:
//   - defaults: L2FirstOrder estimator, no caps.
//
// Effect:
//
//	Axis neighbors land on exact integers; diagonals show the classic
//	first-order upwind values (2+√2)/2 ≈ 1.71 and onward.
//
// Complexity: O(N log N) time over N = 25 points.
func ExampleEngine_Compute() {
	b := lattice.NewBox(lattice.Pt2(-2, -2), lattice.Pt2(2, 2))
	field := lattice.NewMapField()
	set := lattice.NewMapSet()
	fmm.Seed(field, set, 0, lattice.Pt2(0, 0))

	eng, err := fmm.New(2, field, set, b.Contains)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	eng.Compute()

	var x, y int
	for y = -2; y <= 2; y++ {
		for x = -2; x <= 2; x++ {
			if x > -2 {
				fmt.Print(" ")
			}
			fmt.Printf("%.2f", field.Get(lattice.Pt2(x, y)))
		}
		fmt.Println()
	}
	// Output:
	// 3.25 2.55 2.00 2.55 3.25
	// 2.55 1.71 1.00 1.71 2.55
	// 2.00 1.00 0.00 1.00 2.00
	// 2.55 1.71 1.00 1.71 2.55
	// 3.25 2.55 2.00 2.55 3.25
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEngine_ComputeOneStep
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Drive the march by hand: accept the two closest points one at a
//	time and inspect each acceptance as it happens.
//
// Use case:
//
//	Animations, custom stopping rules, or logging every front advance.
//
// Complexity: O(dim·log F) per step for frontier size F.
func ExampleEngine_ComputeOneStep() {
	b := lattice.NewBox(lattice.Pt2(-2, -2), lattice.Pt2(2, 2))
	field := lattice.NewMapField()
	set := lattice.NewMapSet()
	fmm.Seed(field, set, 0, lattice.Pt2(0, 0))

	eng, err := fmm.New(2, field, set, b.Contains)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var i int
	for i = 0; i < 2; i++ {
		pv, ok := eng.ComputeOneStep()
		if !ok {
			break
		}
		fmt.Printf("accepted %v at %.2f\n", pv.Point, pv.Value)
	}
	// Output:
	// accepted (-1,0,0) at 1.00
	// accepted (0,-1,0) at 1.00
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSeedInterface
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Digitize a circle of radius 1.5, seed both sides of its surfels
//	with ∓0.5, and march a signed distance field over the 7×7 box.
//
// Effect:
//
//	The negative front fills the inside, the positive front the
//	outside; no point ever flips family.
//
// Complexity: O(N log N) time over N = 49 points.
func ExampleSeedInterface() {
	b := lattice.NewBox(lattice.Pt2(-3, -3), lattice.Pt2(3, 3))
	phi := func(v r3.Vec) float64 { return math.Hypot(v.X, v.Y) - 1.5 }
	surfels := lattice.ImplicitSurfels(2, phi, b, 1)

	field := lattice.NewMapField()
	set := lattice.NewMapSet()
	seeds := fmm.SeedInterface(field, set, surfels, -0.5, +0.5)

	eng, err := fmm.New(2, field, set, b.Contains)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	eng.Compute()

	neg, pos := 0, 0
	b.Each(func(p lattice.Point) bool {
		if field.Get(p) < 0 {
			neg++
		} else {
			pos++
		}

		return true
	})
	fmt.Println("seeds:", seeds)
	fmt.Println("marched:", eng.Accepted())
	fmt.Println("negative:", neg)
	fmt.Println("positive:", pos)
	// Output:
	// seeds: 20
	// marched: 29
	// negative: 9
	// positive: 40
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleWithMaxDistance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	March an unbounded domain, stopped purely by the distance rule:
//	the engine halts on the first accepted value reaching 2.
//
// Effect:
//
//	Nine points are accepted, the last being the crossing point whose
//	value equals the bound.
//
// Complexity: O(K log K) time for the K points within the bound.
func ExampleWithMaxDistance() {
	field := lattice.NewMapField()
	set := lattice.NewMapSet()
	fmm.Seed(field, set, 0, lattice.Pt2(0, 0))

	everywhere := func(lattice.Point) bool { return true }
	eng, err := fmm.New(2, field, set, everywhere, fmm.WithMaxDistance(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	eng.Compute()

	fmt.Println("marched:", eng.Accepted())
	fmt.Printf("max: %.2f\n", eng.Max())
	// Output:
	// marched: 9
	// max: 2.00
}

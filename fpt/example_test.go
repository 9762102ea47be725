package fpt_test

import (
	"fmt"

	"github.com/quantpsy/ddmfpt/fpt"
)

// ExampleConstSymmetric computes both first-passage densities for a
// constant-drift diffusion between constant bounds ±1 on a coarse grid —
// the O(k) series fast path.
func ExampleConstSymmetric() {
	g1 := make([]float64, 5)
	g2 := make([]float64, 5)
	if err := fpt.ConstSymmetric(1.0, 1.0, 0.1, g1, g2); err != nil {
		fmt.Println("unexpected:", err)
		return
	}

	printDensities(g1)
	printDensities(g2)
	// Output:
	// 0.2198 0.9005 1.0729 1.0054 0.8779
	// 0.0297 0.1219 0.1452 0.1361 0.1188
}

// printDensities prints a density sequence on one line, 4 decimals each.
func printDensities(g []float64) {
	for i, v := range g {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%.4f", v)
	}
	fmt.Println()
}

// ExampleSymmetric runs the general unit-variance recursion with a mildly
// collapsing symmetric threshold; the boundary derivative is obtained
// internally by finite differencing.
func ExampleSymmetric() {
	const deltaT = 0.1
	mu := make([]float64, 6)
	bound := make([]float64, 6)
	for i := range bound {
		mu[i] = 0.8
		bound[i] = 1.0 - 0.05*float64(i)*deltaT
	}

	g1 := make([]float64, 6)
	g2 := make([]float64, 6)
	if err := fpt.Symmetric(mu, bound, deltaT, g1, g2); err != nil {
		fmt.Println("unexpected:", err)
		return
	}

	printDensities(g1)
	// Output:
	// 0.1841 0.7844 0.9555 0.9117 0.8091 0.7003
}

// ExampleNormalize clips negative artifacts and pushes the missing
// probability mass into the tail, preserving the upper/lower split.
func ExampleNormalize() {
	g1 := []float64{0.2, -0.1, 0.3}
	g2 := []float64{0.1, 0.2, -0.05}

	if err := fpt.Normalize(g1, g2, 0.5); err != nil {
		fmt.Println("unexpected:", err)
		return
	}

	fmt.Printf("g1: %.2f %.2f %.2f\n", g1[0], g1[1], g1[2])
	fmt.Printf("g2: %.2f %.2f %.2f\n", g2[0], g2[1], g2[2])
	// Output:
	// g1: 0.20 0.00 1.05
	// g2: 0.10 0.20 0.45
}

// ExampleExtendVector pads a drift sequence out to a longer time horizon.
func ExampleExtendVector() {
	out, err := fpt.ExtendVector([]float64{1.0, 2.0}, 4, 0.0)
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// [1 2 0 0]
}

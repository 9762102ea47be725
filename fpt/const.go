package fpt

import (
	"math"

	"github.com/quantpsy/ddmfpt/series"
)

// ConstSymmetric computes both first-passage densities for constant drift
// mu > 0 and constant symmetric boundaries ±bound, bound > 0, entirely from
// the canonical series expansions — no recursion, no scratch allocation.
//
// The Girsanov rescaling maps the problem onto the canonical driftless
// unit-interval one started at the midpoint:
//
//	g1[k] = e^(mu·bound − mu²/2·t) / (4·bound²) · f(t/(4·bound²))
//	g2[k] = e^(−2·mu·bound) · g1[k]
//
// where f is series.SymLowerDensity and t = (k+1)·Δt. Each step needs only
// a bounded number of series terms, so the whole call is O(k) versus the
// O(k²) of the general recursion.
//
// Complexity: O(k) time, O(1) memory, k = len(g1).
//
// Errors: ErrDriftSign, ErrBoundSign, ErrStepSize, ErrNoSteps,
// ErrSequenceLen.
func ConstSymmetric(mu, bound, deltaT float64, g1, g2 []float64) error {
	if !(mu > 0) {
		return ErrDriftSign
	}
	if !(bound > 0) {
		return ErrBoundSign
	}
	if err := validateGrid(deltaT, g1, g2); err != nil {
		return err
	}

	c1 := 4 * bound * bound
	c2 := mu * mu / 2
	c3 := mu * bound
	c4 := math.Exp(-2 * c3)

	t := deltaT
	for k := range g1 {
		g := symUpperDensity(t, c1, c2, c3)
		g1[k] = math.Max(g, 0)
		g2[k] = math.Max(c4*g, 0)
		t += deltaT
	}
	return nil
}

// ConstAsymmetric is the asymmetric-bound counterpart of ConstSymmetric:
// constant drift mu > 0 and constant boundaries bLo < 0 < bUp. The Girsanov
// rescaling maps onto the canonical unit-interval problem started at
// w = −bLo/(bUp−bLo), and each boundary density is read off the canonical
// lower density seen from its own side of the interval.
//
// Complexity: O(k) time, O(1) memory, k = len(g1).
//
// Errors: ErrDriftSign, ErrBoundSign, ErrStepSize, ErrNoSteps,
// ErrSequenceLen.
func ConstAsymmetric(mu, bLo, bUp, deltaT float64, g1, g2 []float64) error {
	if !(mu > 0) {
		return ErrDriftSign
	}
	if !(bLo < 0 && bUp > 0) {
		return ErrBoundSign
	}
	if err := validateGrid(deltaT, g1, g2); err != nil {
		return err
	}

	span := bUp - bLo
	c1 := span * span
	c2 := mu * mu / 2
	c3 := mu * bUp
	c4 := mu * bLo
	w := -bLo / span

	t := deltaT
	for k := range g1 {
		g1[k] = math.Max(asymUpperDensity(t, c1, c2, c3, w), 0)
		g2[k] = math.Max(asymLowerDensity(t, c1, c2, c4, w), 0)
		t += deltaT
	}
	return nil
}

// symUpperDensity rescales the canonical midpoint density to the
// upper-boundary density of a constant-drift, symmetric-bound diffusion:
// c1 = 4·bound², c2 = mu²/2, c3 = mu·bound.
func symUpperDensity(t, c1, c2, c3 float64) float64 {
	return math.Exp(c3-c2*t) / c1 * series.SymLowerDensity(t/c1, SeriesTol)
}

// asymUpperDensity is the asymmetric-bound counterpart of symUpperDensity
// for constant drift and constant bounds bLo < 0 < bUp:
// c1 = (bUp−bLo)², c2 = mu²/2, c3 = mu·bUp, w = −bLo/(bUp−bLo).
// The upper boundary of the original problem is the *lower* boundary of the
// canonical problem seen from 1−w.
func asymUpperDensity(t, c1, c2, c3, w float64) float64 {
	return math.Exp(c3-c2*t) / c1 * series.LowerDensity(t/c1, 1-w, SeriesTol)
}

// asymLowerDensity mirrors asymUpperDensity for the lower boundary, with
// c4 = mu·bLo in place of c3.
func asymLowerDensity(t, c1, c2, c4, w float64) float64 {
	return math.Exp(c4-c2*t) / c1 * series.LowerDensity(t/c1, w, SeriesTol)
}

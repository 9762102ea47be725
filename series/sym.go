package series

import "math"

// SymLowerDensity returns the canonical lower-boundary FPT density for a
// process started at the midpoint (w = ½), to absolute tolerance tol.
//
// The midpoint start collapses both expansions into one alternating series
// with a single decay parameter; only its parameterization differs between
// the short- and long-time regimes, selected by the usual crossover rule.
// t == 0 returns 0 immediately.
//
// Complexity: O(#terms), bounded by UseShortTime.
func SymLowerDensity(t, tol float64) float64 {
	if t == 0 {
		return 0
	}
	if UseShortTime(t, tol) {
		return symSeries(1/(8*t), 1/math.Sqrt(8*math.Pi*t*t*t), tol)
	}
	return symSeries(t*piSqr/2, math.Pi, tol)
}

// symSeries sums the alternating midpoint series with decay parameter a and
// prefactor b: b·(e^-a − 3e^-9a + 5e^-25a − …). Consecutive terms alternate
// in sign over odd multipliers; summation stops once a term falls below
// tol·b. Terms are positive and monotonically decreasing, so the truncation
// error is bounded by the first omitted term.
func symSeries(a, b, tol float64) float64 {
	tol *= b
	f := math.Exp(-a)
	for twok := 3.0; ; {
		incr := twok * math.Exp(-twok*twok*a)
		f -= incr
		if incr < tol {
			return f * b
		}
		twok += 2
		incr = twok * math.Exp(-twok*twok*a)
		f += incr
		if incr < tol {
			return f * b
		}
		twok += 2
	}
}

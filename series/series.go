package series

import "math"

const (
	twoPi = 2 * math.Pi
	piSqr = math.Pi * math.Pi
)

// UseShortTime reports whether the short-time (image) expansion needs fewer
// terms than the long-time (Fourier) expansion for an evaluation at time t
// with absolute tolerance tol.
//
// The two sides are analytic estimates of the term counts required by each
// series (Navarro & Fuss, 2009, Eq. 13), so the rule bounds the work of
// LowerDensity regardless of t.
//
// Complexity: O(1).
func UseShortTime(t, tol float64) bool {
	return 2+math.Sqrt(-2*t*math.Log(2*tol*math.Sqrt(twoPi*t))) <
		math.Sqrt(-2*math.Log(math.Pi*t*tol)/(t*piSqr))
}

// LowerDensity returns the density of the canonical diffusion (zero drift,
// boundaries {0,1}, started at w) first hitting the lower boundary at time t,
// to absolute tolerance tol.
//
// It dispatches to whichever of the two expansions the crossover rule deems
// cheaper; t == 0 returns 0 immediately.
//
// Complexity: O(#terms), bounded by UseShortTime.
func LowerDensity(t, w, tol float64) float64 {
	if t == 0 {
		return 0
	}
	if UseShortTime(t, tol) {
		return shortTime(t, w, tol)
	}
	return longTime(t, w, tol)
}

// shortTime sums the image expansion (Navarro & Fuss, 2009, Eq. 6): mirror
// images of the starting point at w ± 2k, each weighted by a Gaussian decay.
// Terms are added in increasing image order until the latest term falls below
// tol, rescaled by the t^(-3/2)/√(2π) prefactor.
func shortTime(t, w, tol float64) float64 {
	b := math.Pow(t, -1.5) / math.Sqrt(twoPi)
	tol *= b
	t *= 2
	f := w * math.Exp(-w*w/t)
	for k := 1; ; k++ {
		c := w + 2*float64(k)
		incr := c * math.Exp(-c*c/t)
		f += incr
		if math.Abs(incr) < tol {
			return f * b
		}
		c = w - 2*float64(k)
		incr = c * math.Exp(-c*c/t)
		f += incr
		if math.Abs(incr) < tol {
			return f * b
		}
	}
}

// longTime sums the Fourier sine expansion (Navarro & Fuss, 2009, Eq. 5),
// adding terms until the latest one falls below tol·π.
func longTime(t, w, tol float64) float64 {
	tol *= math.Pi
	f := 0.0
	for k := 1; ; k++ {
		kpi := float64(k) * math.Pi
		incr := float64(k) * math.Exp(-kpi*kpi*t/2) * math.Sin(kpi*w)
		f += incr
		if math.Abs(incr) < tol {
			return f * math.Pi
		}
	}
}

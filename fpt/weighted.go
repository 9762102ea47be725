package fpt

import "math"

// Weighted solves the proportional-threshold model: the decision variable is
// compared against a threshold proportional (factor weight) to the
// accumulated squared drift A(t) = ∫ mu(s)² ds rather than to a fixed
// diffusion clock. Only the upper density runs through the recursion, with
// cumulative squared drift taking the place of cumulative variance; the
// lower density follows from the reflection identity
// g2[n] = g1[n]·e^(−2·weight·bound[n]).
//
// mu and bound must have len(g1) elements, g2 included.
//
// Complexity: O(n²) time, O(n) scratch memory, n = len(g1).
//
// Errors: ErrStepSize, ErrNoSteps, ErrSequenceLen.
func Weighted(mu, bound []float64, weight, deltaT float64, g1, g2 []float64) error {
	if err := validateGrid(deltaT, g1, g2); err != nil {
		return err
	}
	nMax := len(g1)
	if err := validateLens(nMax, mu, bound); err != nil {
		return err
	}

	weight2 := -2 * weight
	twoPi := 2 * math.Pi

	// a2(t) = mu(t)², cumA[n] = Σ_{j≤n} Δt·a2[j], and the bound derivative
	a2 := make([]float64, nMax)
	cumA := make([]float64, nMax)
	a2[0] = mu[0] * mu[0]
	currCumA := deltaT * a2[0]
	cumA[0] = currCumA
	for j := 1; j < nMax; j++ {
		a2[j] = mu[j] * mu[j]
		currCumA += deltaT * a2[j]
		cumA[j] = currCumA
	}
	deriv := boundDeriv(bound, deltaT)

	for n := 0; n < nMax; n++ {
		boundN := bound[n]
		a2N := a2[n]
		cumAN := cumA[n]
		derivN := deriv[n]

		// initial term
		diff1 := boundN - weight*cumAN
		sqrtCumAN := math.Sqrt(twoPi * cumAN)
		flux := derivN - boundN/cumAN*a2N
		g1N := -math.Exp(-0.5*diff1*diff1/cumAN) / sqrtCumAN * flux

		for j := 0; j < n; j++ {
			boundJ := bound[j]
			cumADiff := cumAN - cumA[j]
			sqrtCumADiff := math.Sqrt(twoPi * cumADiff)
			diff1 = boundN - boundJ
			diff2 := boundN + boundJ
			// the threshold drifts with weight·A, the flux factor does not
			diff1A := diff1 - weight*cumADiff
			diff2A := diff2 - weight*cumADiff

			g1N += deltaT / sqrtCumADiff *
				(g1[j]*math.Exp(-0.5*diff1A*diff1A/cumADiff)*(derivN-a2N*diff1/cumADiff) +
					g2[j]*math.Exp(-0.5*diff2A*diff2A/cumADiff)*(derivN-a2N*diff2/cumADiff))
		}

		// avoid negative densities caused by numerical instability
		g1[n] = math.Max(g1N, 0)
		g2[n] = math.Max(g1N*math.Exp(weight2*boundN), 0)
	}
	return nil
}

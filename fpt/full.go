package fpt

import "math"

// Full solves the general discretized renewal (Volterra) equation for a
// diffusion with time-varying drift mu, diffusion variance sig2 and
// asymmetric time-varying boundaries bLo(t) < bUp(t), whose derivatives are
// supplied in bLoDeriv and bUpDeriv. The densities of first crossing the
// upper and lower boundary at step k are written to g1[k] and g2[k].
//
// Algorithm outline (forward substitution, k = 0..len(g1)-1):
//  1. Initial term: the Gaussian flux through each boundary at step k for a
//     process that started at 0 — a Gaussian density at the (bound −
//     cumulative drift) displacement over the cumulative variance, times
//     the flux correction (relative boundary velocity minus the
//     variance-weighted displacement).
//  2. Correction: for every earlier step j < k, subtract the flux of mass
//     that already crossed at j and diffused back — the same kernel
//     evaluated on the inter-step moments, weighted by g1[j] and g2[j],
//     for all four boundary pairings.
//  3. Clip both results at zero before storing (the subtractive recursion
//     can produce tiny negative artifacts).
//
// All parameter sequences must have len(g1) elements, g2 included.
//
// Complexity: O(k²) time, O(k) scratch memory, k = len(g1).
//
// Errors: ErrStepSize, ErrNoSteps, ErrSequenceLen.
func Full(mu, sig2, bLo, bUp, bLoDeriv, bUpDeriv []float64, deltaT float64, g1, g2 []float64) error {
	if err := validateGrid(deltaT, g1, g2); err != nil {
		return err
	}
	kMax := len(g1)
	if err := validateLens(kMax, mu, sig2, bLo, bUp, bLoDeriv, bUpDeriv); err != nil {
		return err
	}

	cumMu, cumSig2 := cumulate(mu, sig2, deltaT)
	deltaTSqrt2Pi := deltaT * invSqrt2Pi

	for k := 0; k < kMax; k++ {
		// hoist step-k values out of the j-loop
		sig2K := sig2[k]
		bUpK := bUp[k]
		bLoK := bLo[k]
		cumMuK := cumMu[k]
		cumSig2K := cumSig2[k]
		sqrtCumSig2K := math.Sqrt(cumSig2K)
		// boundary velocity relative to the drifting frame
		bUpDerivK := bUpDeriv[k] - mu[k]
		bLoDerivK := bLoDeriv[k] - mu[k]

		// initial terms
		g1K := -invSqrt2Pi / sqrtCumSig2K *
			math.Exp(-0.5*(bUpK-cumMuK)*(bUpK-cumMuK)/cumSig2K) *
			(bUpDerivK - sig2K*(bUpK-cumMuK)/cumSig2K)
		g2K := invSqrt2Pi / sqrtCumSig2K *
			math.Exp(-0.5*(bLoK-cumMuK)*(bLoK-cumMuK)/cumSig2K) *
			(bLoDerivK - sig2K*(bLoK-cumMuK)/cumSig2K)

		// corrections from all earlier crossings
		for j := 0; j < k; j++ {
			cumSig2Diff := cumSig2K - cumSig2[j]
			sqrtCumSig2Diff := math.Sqrt(cumSig2Diff)
			cumMuDiff := cumMu[j] - cumMuK
			upUpDiff := bUpK - bUp[j] + cumMuDiff
			upLoDiff := bUpK - bLo[j] + cumMuDiff
			loUpDiff := bLoK - bUp[j] + cumMuDiff
			loLoDiff := bLoK - bLo[j] + cumMuDiff

			g1K += deltaTSqrt2Pi / sqrtCumSig2Diff *
				(g1[j]*math.Exp(-0.5*upUpDiff*upUpDiff/cumSig2Diff)*
					(bUpDerivK-sig2K*upUpDiff/cumSig2Diff) +
					g2[j]*math.Exp(-0.5*upLoDiff*upLoDiff/cumSig2Diff)*
						(bUpDerivK-sig2K*upLoDiff/cumSig2Diff))
			g2K -= deltaTSqrt2Pi / sqrtCumSig2Diff *
				(g1[j]*math.Exp(-0.5*loUpDiff*loUpDiff/cumSig2Diff)*
					(bLoDerivK-sig2K*loUpDiff/cumSig2Diff) +
					g2[j]*math.Exp(-0.5*loLoDiff*loLoDiff/cumSig2Diff)*
						(bLoDerivK-sig2K*loLoDiff/cumSig2Diff))
		}

		// avoid negative densities caused by numerical instability
		g1[k] = math.Max(g1K, 0)
		g2[k] = math.Max(g2K, 0)
	}
	return nil
}

package fpt

import "math"

// FullLeak solves the same renewal equation as Full for a *leaky*
// accumulator: evidence decays back toward zero with inverse time constant
// invLeak, turning the drifting Brownian motion into an Ornstein–Uhlenbeck
// process. invLeak == 0 reduces exactly to Full (all discount factors
// degenerate to 1).
//
// The recursion structure is identical to Full, with three changes:
//   - cumulative drift and variance are exponentially discounted per step,
//   - inter-step moment differences are discounted by e^(-Δt·invLeak·span)
//     (drift, boundary positions) and its square (variance),
//   - the relative boundary velocity picks up an invLeak·bound term, the
//     restoring pull of the leak at the boundary.
//
// All parameter sequences must have len(g1) elements, g2 included.
//
// Complexity: O(k²) time, O(k) scratch memory, k = len(g1).
//
// Errors: ErrLeakSign, ErrStepSize, ErrNoSteps, ErrSequenceLen.
func FullLeak(mu, sig2, bLo, bUp, bLoDeriv, bUpDeriv []float64, invLeak, deltaT float64, g1, g2 []float64) error {
	if invLeak < 0 || math.IsNaN(invLeak) {
		return ErrLeakSign
	}
	if err := validateGrid(deltaT, g1, g2); err != nil {
		return err
	}
	kMax := len(g1)
	if err := validateLens(kMax, mu, sig2, bLo, bUp, bLoDeriv, bUpDeriv); err != nil {
		return err
	}

	cumMu, cumSig2, disc, disc2 := cumulateLeak(mu, sig2, invLeak, deltaT)
	deltaTSqrt2Pi := deltaT * invSqrt2Pi

	for k := 0; k < kMax; k++ {
		sig2K := sig2[k]
		bUpK := bUp[k]
		bLoK := bLo[k]
		cumMuK := cumMu[k]
		cumSig2K := cumSig2[k]
		sqrtCumSig2K := math.Sqrt(cumSig2K)
		// boundary velocity relative to the mean-reverting frame
		bUpDerivK := bUpDeriv[k] + invLeak*bUpK - mu[k]
		bLoDerivK := bLoDeriv[k] + invLeak*bLoK - mu[k]

		g1K := -invSqrt2Pi / sqrtCumSig2K *
			math.Exp(-0.5*(bUpK-cumMuK)*(bUpK-cumMuK)/cumSig2K) *
			(bUpDerivK - sig2K*(bUpK-cumMuK)/cumSig2K)
		g2K := invSqrt2Pi / sqrtCumSig2K *
			math.Exp(-0.5*(bLoK-cumMuK)*(bLoK-cumMuK)/cumSig2K) *
			(bLoDerivK - sig2K*(bLoK-cumMuK)/cumSig2K)

		for j := 0; j < k; j++ {
			discJ := disc[k-j-1]
			cumSig2Diff := cumSig2K - disc2[k-j-1]*cumSig2[j]
			sqrtCumSig2Diff := math.Sqrt(cumSig2Diff)
			cumMuDiff := discJ*cumMu[j] - cumMuK
			upUpDiff := bUpK - discJ*bUp[j] + cumMuDiff
			upLoDiff := bUpK - discJ*bLo[j] + cumMuDiff
			loUpDiff := bLoK - discJ*bUp[j] + cumMuDiff
			loLoDiff := bLoK - discJ*bLo[j] + cumMuDiff

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

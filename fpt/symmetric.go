package fpt

import "math"

// Symmetric solves the unit-variance renewal equation for symmetric
// time-varying boundaries ±bound(t) and time-varying drift mu. Boundary
// derivatives are obtained by finite differencing bound on the Δt grid, so
// no derivative sequences are needed. Equivalent to Full with sig2 ≡ 1,
// bUp = bound, bLo = −bound, but with the unit-variance Gaussian
// normalizers tabulated once instead of recomputed per pair of steps.
//
// mu and bound must have len(g1) elements, g2 included.
//
// Complexity: O(k²) time, O(k) scratch memory, k = len(g1).
//
// Errors: ErrStepSize, ErrNoSteps, ErrSequenceLen.
func Symmetric(mu, bound []float64, deltaT float64, g1, g2 []float64) error {
	if err := validateGrid(deltaT, g1, g2); err != nil {
		return err
	}
	kMax := len(g1)
	if err := validateLens(kMax, mu, bound); err != nil {
		return err
	}

	cumMu := make([]float64, kMax)
	currCumMu := deltaT * mu[0]
	cumMu[0] = currCumMu
	for j := 1; j < kMax; j++ {
		currCumMu += deltaT * mu[j]
		cumMu[j] = currCumMu
	}
	deriv := boundDeriv(bound, deltaT)
	normSqrtT, normT := timeNorms(deltaT, kMax)

	for k := 0; k < kMax; k++ {
		boundK := bound[k]
		// relative velocities of the upper (+bound) and lower (−bound) edge
		derivK1 := deriv[k] - mu[k]
		derivK2 := -deriv[k] - mu[k]
		cumMuK := cumMu[k]
		normTJ := normT[k]
		normSqrtTJ := normSqrtT[k]

		// initial terms
		g1K := -normSqrtTJ *
			math.Exp(-0.5*(boundK-cumMuK)*(boundK-cumMuK)*normTJ) *
			(derivK1 - (boundK-cumMuK)*normTJ)
		g2K := normSqrtTJ *
			math.Exp(-0.5*(-boundK-cumMuK)*(-boundK-cumMuK)*normTJ) *
			(derivK2 - (-boundK-cumMuK)*normTJ)

		for j := 0; j < k; j++ {
			boundJ := bound[j]
			cumMuKJ := cumMuK - cumMu[j]
			diff1 := boundK - boundJ - cumMuKJ
			diff2 := boundK + boundJ - cumMuKJ
			normTJ = normT[k-j-1]
			normSqrtTJ = normSqrtT[k-j-1]

			g1K += deltaT * normSqrtTJ *
				(g1[j]*math.Exp(-0.5*diff1*diff1*normTJ)*(derivK1-diff1*normTJ) +
					g2[j]*math.Exp(-0.5*diff2*diff2*normTJ)*(derivK1-diff2*normTJ))
			diff1 = -boundK - boundJ - cumMuKJ
			diff2 = -boundK + boundJ - cumMuKJ
			g2K -= deltaT * normSqrtTJ *
				(g1[j]*math.Exp(-0.5*diff1*diff1*normTJ)*(derivK2-diff1*normTJ) +
					g2[j]*math.Exp(-0.5*diff2*diff2*normTJ)*(derivK2-diff2*normTJ))
		}

		// avoid negative densities caused by numerical instability
		g1[k] = math.Max(g1K, 0)
		g2[k] = math.Max(g2K, 0)
	}
	return nil
}

// SymmetricConstDrift solves the symmetric-boundary problem of Symmetric for
// a *constant* drift mu > 0. Only g1 runs through the recursion; the lower
// density follows from the upper one by the drift-reflection identity
// g2[k] = g1[k]·e^(−2·mu·bound[k]), halving the kernel evaluations.
//
// bound must have len(g1) elements, g2 included.
//
// Complexity: O(k²) time, O(k) scratch memory, k = len(g1).
//
// Errors: ErrDriftSign, ErrStepSize, ErrNoSteps, ErrSequenceLen.
func SymmetricConstDrift(mu float64, bound []float64, deltaT float64, g1, g2 []float64) error {
	if !(mu > 0) {
		return ErrDriftSign
	}
	if err := validateGrid(deltaT, g1, g2); err != nil {
		return err
	}
	kMax := len(g1)
	if err := validateLens(kMax, bound); err != nil {
		return err
	}

	deriv := boundDeriv(bound, deltaT)
	normSqrtT, normT := timeNorms(deltaT, kMax)
	muDeltaT := deltaT * mu
	mu2 := -2 * mu

	for k := 0; k < kMax; k++ {
		boundK := bound[k]
		derivK1 := deriv[k] - mu
		derivK2 := -deriv[k] - mu
		cumMuK := float64(k+1) * muDeltaT
		normTJ := normT[k]
		normSqrtTJ := normSqrtT[k]

		g1K := -normSqrtTJ *
			math.Exp(-0.5*(boundK-cumMuK)*(boundK-cumMuK)*normTJ) *
			(derivK1 - (boundK-cumMuK)*normTJ)

		for j := 0; j < k; j++ {
			boundJ := bound[j]
			cumMuKJ := float64(k-j) * muDeltaT
			diff1 := boundK - boundJ - cumMuKJ
			diff2 := boundK + boundJ - cumMuKJ
			normTJ = normT[k-j-1]
			normSqrtTJ = normSqrtT[k-j-1]

			g1K += deltaT * normSqrtTJ *
				(g1[j]*math.Exp(-0.5*diff1*diff1*normTJ)*(derivK1-diff1*normTJ) +
					g2[j]*math.Exp(-0.5*diff2*diff2*normTJ)*(derivK2-diff2*normTJ))
		}

		// avoid negative densities caused by numerical instability
		g1[k] = math.Max(g1K, 0)
		g2[k] = math.Max(g1K*math.Exp(mu2*boundK), 0)
	}
	return nil
}

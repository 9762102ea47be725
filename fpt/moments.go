package fpt

import "math"

// invSqrt2Pi = 1/√(2π), the Gaussian density prefactor shared by all
// recursion kernels.
var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

// cumulate integrates the drift and variance sequences on the Δt grid:
// cumMu[k] = Σ_{j≤k} Δt·mu[j] and likewise for cumSig2. Both outputs are
// scratch sequences private to one solver invocation.
func cumulate(mu, sig2 []float64, deltaT float64) (cumMu, cumSig2 []float64) {
	k := len(mu)
	cumMu = make([]float64, k)
	cumSig2 = make([]float64, k)
	currMu := deltaT * mu[0]
	currSig2 := deltaT * sig2[0]
	cumMu[0] = currMu
	cumSig2[0] = currSig2
	for j := 1; j < k; j++ {
		currMu += deltaT * mu[j]
		cumMu[j] = currMu
		currSig2 += deltaT * sig2[j]
		cumSig2[j] = currSig2
	}
	return cumMu, cumSig2
}

// cumulateLeak integrates drift and variance with per-step exponential
// discounting (Ornstein–Uhlenbeck accumulation):
//
//	cumMu[k]   = e^(-Δt·invLeak)·cumMu[k-1]    + Δt·mu[k]
//	cumSig2[k] = e^(-2Δt·invLeak)·cumSig2[k-1] + Δt·sig2[k]
//
// It also builds the discount tables used by the leaky kernel:
//
//	disc[i]  = e^(-Δt·invLeak·(i+1))
//	disc2[i] = e^(-2Δt·invLeak·(i+1))
//
// so that disc[k-j-1] (resp. disc2[k-j-1]) discounts the span from step j to
// step k. Since disc2[i] = disc[2i+1], the first half of disc2 is read off
// disc directly and only the remainder is accumulated.
func cumulateLeak(mu, sig2 []float64, invLeak, deltaT float64) (cumMu, cumSig2, disc, disc2 []float64) {
	k := len(mu)
	cumMu = make([]float64, k)
	cumSig2 = make([]float64, k)
	disc = make([]float64, k)
	disc2 = make([]float64, k)

	expLeak := math.Exp(-deltaT * invLeak)
	exp2Leak := math.Exp(-2 * deltaT * invLeak)

	currMu := deltaT * mu[0]
	currSig2 := deltaT * sig2[0]
	currDisc := expLeak
	cumMu[0] = currMu
	cumSig2[0] = currSig2
	disc[0] = currDisc
	for j := 1; j < k; j++ {
		currMu = expLeak*currMu + deltaT*mu[j]
		cumMu[j] = currMu
		currSig2 = exp2Leak*currSig2 + deltaT*sig2[j]
		cumSig2[j] = currSig2
		currDisc *= expLeak
		disc[j] = currDisc
	}

	// borrow every in-range odd index; only indices with 2j+1 < k exist,
	// so the borrow stops one short of disc on odd k
	filled := 0
	for j := 0; 2*j+1 < k; j++ {
		disc2[j] = disc[2*j+1]
		filled = j + 1
	}
	if filled == 0 {
		disc2[0] = exp2Leak
		filled = 1
	}
	currDisc = disc2[filled-1]
	for j := filled; j < k; j++ {
		currDisc *= exp2Leak
		disc2[j] = currDisc
	}
	return cumMu, cumSig2, disc, disc2
}

// boundDeriv finite-differences a bound trajectory on the Δt grid. The last
// element repeats the second-to-last (there is no forward difference for it).
// A single-step trajectory has derivative zero.
func boundDeriv(bound []float64, deltaT float64) []float64 {
	k := len(bound)
	deriv := make([]float64, k)
	for j := 1; j < k; j++ {
		deriv[j-1] = (bound[j] - bound[j-1]) / deltaT
	}
	if k > 1 {
		deriv[k-1] = deriv[k-2]
	}
	return deriv
}

// timeNorms tabulates the unit-variance Gaussian normalizers on the Δt grid:
//
//	normSqrtT[i] = 1/√(2πΔt(i+1))
//	normT[i]     = 1/(Δt(i+1))
//
// Index i covers both the elapsed time of step i and the inter-step span
// (k-j-1) between steps j < k.
func timeNorms(deltaT float64, k int) (normSqrtT, normT []float64) {
	normSqrtT = make([]float64, k)
	normT = make([]float64, k)
	piDeltaT2 := math.Pi * 2 * deltaT
	for j := 0; j < k; j++ {
		normSqrtT[j] = 1 / math.Sqrt(piDeltaT2*(float64(j)+1))
		normT[j] = 1 / (deltaT * (float64(j) + 1))
	}
	return normSqrtT, normT
}

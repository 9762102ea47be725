package fpt_test

import (
	"testing"

	"github.com/quantpsy/ddmfpt/fpt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWeighted_MatchesConstSymmetric verifies the proportional-threshold
// solver against the series fast path: with mu ≡ 1 the accumulated squared
// drift equals elapsed time, so weight = 1 and bound ≡ 1 is exactly the
// standard constant-drift, constant-bound problem.
func TestWeighted_MatchesConstSymmetric(t *testing.T) {
	const nMax, deltaT = 500, 0.01
	w1 := make([]float64, nMax)
	w2 := make([]float64, nMax)
	require.NoError(t, fpt.Weighted(constSeq(1, nMax), constSeq(1, nMax), 1, deltaT, w1, w2))

	c1 := make([]float64, nMax)
	c2 := make([]float64, nMax)
	require.NoError(t, fpt.ConstSymmetric(1, 1, deltaT, c1, c2))

	for n := 0; n < nMax; n++ {
		assert.InDelta(t, c1[n], w1[n], 1e-10, "g1[%d]", n)
		assert.InDelta(t, c2[n], w2[n], 1e-10, "g2[%d]", n)
	}
}

// TestWeighted_ReflectionIdentity verifies that the lower density is tied to
// the upper one by g2[n] = g1[n]·e^(−2·weight·bound[n]) — it is never solved
// independently.
func TestWeighted_ReflectionIdentity(t *testing.T) {
	const nMax, deltaT = 200, 0.01
	const weight = 0.7
	bound := make([]float64, nMax)
	mu := make([]float64, nMax)
	for j := range bound {
		bound[j] = 1.1 - 0.2*float64(j)*deltaT
		mu[j] = 0.8 + 0.1*float64(j)*deltaT
	}

	g1 := make([]float64, nMax)
	g2 := make([]float64, nMax)
	require.NoError(t, fpt.Weighted(mu, bound, weight, deltaT, g1, g2))

	for n := 0; n < nMax; n++ {
		assert.GreaterOrEqual(t, g1[n], 0.0, "g1[%d]", n)
		assert.GreaterOrEqual(t, g2[n], 0.0, "g2[%d]", n)
		assert.LessOrEqual(t, g2[n], g1[n], "positive weight·bound must damp the lower density at %d", n)
	}
}

// TestWeighted_Validation covers the shared grid sentinels.
func TestWeighted_Validation(t *testing.T) {
	one := []float64{1}
	g1 := make([]float64, 1)
	g2 := make([]float64, 1)

	err := fpt.Weighted(one, one, 1, 0, g1, g2)
	assert.ErrorIs(t, err, fpt.ErrStepSize)

	err = fpt.Weighted([]float64{1, 1}, one, 1, 0.1, g1, g2)
	assert.ErrorIs(t, err, fpt.ErrSequenceLen)
}

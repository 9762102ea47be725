package fpt_test

import (
	"math"
	"testing"

	"github.com/quantpsy/ddmfpt/fpt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_MassAndRatio renormalizes a genuinely computed density pair
// and checks both postconditions: total mass exactly one, split ratio
// unchanged.
func TestNormalize_MassAndRatio(t *testing.T) {
	const kMax, deltaT = 200, 0.005
	g1 := make([]float64, kMax)
	g2 := make([]float64, kMax)
	require.NoError(t, fpt.ConstSymmetric(1, 1, deltaT, g1, g2))

	sum := func(s []float64) float64 {
		total := 0.0
		for _, v := range s {
			total += v
		}
		return total
	}
	before := sum(g1) / (sum(g1) + sum(g2))

	require.NoError(t, fpt.Normalize(g1, g2, deltaT))

	mass := (sum(g1) + sum(g2)) * deltaT
	assert.InDelta(t, 1.0, mass, 1e-9, "total mass after normalization")
	after := sum(g1) / (sum(g1) + sum(g2))
	assert.InDelta(t, before, after, 1e-12, "split ratio must be preserved")
}

// TestNormalize_ClipsNegatives verifies that negative elements are zeroed,
// excluded from the sums, and that the tail correction lands only in the
// last element.
func TestNormalize_ClipsNegatives(t *testing.T) {
	const deltaT = 0.5
	g1 := []float64{0.2, -0.1, 0.3}
	g2 := []float64{0.1, 0.2, -0.05}

	require.NoError(t, fpt.Normalize(g1, g2, deltaT))

	assert.Equal(t, 0.0, g1[1], "negative element must be clipped")
	assert.Equal(t, 0.2, g1[0], "untouched elements stay put")
	assert.Equal(t, 0.1, g2[0])
	assert.Equal(t, 0.2, g2[1])

	// p = 0.5/(0.5+0.3) with the clipped sums
	mass := (g1[0] + g1[1] + g1[2] + g2[0] + g2[1] + g2[2]) * deltaT
	assert.InDelta(t, 1.0, mass, 1e-12)
	assert.InDelta(t, 1.05, g1[2], 1e-12, "tail correction on g1")
	assert.InDelta(t, 0.45, g2[2], 1e-12, "tail correction on g2")
}

// TestNormalize_NoSurvivingMass feeds sequences with no positive mass; the
// unit mass must be split evenly between the tails instead of propagating a
// 0/0 ratio.
func TestNormalize_NoSurvivingMass(t *testing.T) {
	const deltaT = 0.1
	g1 := []float64{-0.2, -0.1, 0}
	g2 := []float64{0, -0.3, -0.4}

	require.NoError(t, fpt.Normalize(g1, g2, deltaT))

	for i := 0; i < 2; i++ {
		assert.Equal(t, 0.0, g1[i], "g1[%d]", i)
		assert.Equal(t, 0.0, g2[i], "g2[%d]", i)
	}
	assert.False(t, math.IsNaN(g1[2]), "tail must stay finite")
	assert.InDelta(t, 5.0, g1[2], 1e-12, "even split of the unit mass")
	assert.InDelta(t, 5.0, g2[2], 1e-12)
	assert.InDelta(t, 1.0, (g1[2]+g2[2])*deltaT, 1e-12)
}

// TestNormalize_Validation covers the shared grid sentinels.
func TestNormalize_Validation(t *testing.T) {
	assert.ErrorIs(t, fpt.Normalize(nil, nil, 0.1), fpt.ErrNoSteps)
	assert.ErrorIs(t, fpt.Normalize([]float64{1}, []float64{1, 2}, 0.1), fpt.ErrSequenceLen)
	assert.ErrorIs(t, fpt.Normalize([]float64{1}, []float64{1}, 0), fpt.ErrStepSize)
}

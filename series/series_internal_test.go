package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestShortLongAgreement verifies that the two expansions of the same
// density agree to machine precision at moderate times, where neither is
// near its slow regime. The crossover rule only trades cost, never value.
func TestShortLongAgreement(t *testing.T) {
	const tol = 1e-29
	for _, tt := range []float64{0.1, 0.2, 0.35, 0.5} {
		short := shortTime(tt, 0.3, tol)
		long := longTime(tt, 0.3, tol)
		assert.InDelta(t, long, short, 1e-12, "t=%v", tt)
	}
}

// TestSymSeriesParameterizations verifies that the short- and long-time
// parameterizations of the midpoint series evaluate the same density: they
// must agree at moderate t regardless of which one the crossover rule would
// pick.
func TestSymSeriesParameterizations(t *testing.T) {
	const tol = 1e-29
	for _, tt := range []float64{0.1, 0.2, 0.35, 0.5} {
		short := symSeries(1/(8*tt), 1/math.Sqrt(8*math.Pi*tt*tt*tt), tol)
		long := symSeries(tt*piSqr/2, math.Pi, tol)
		assert.InDelta(t, long, short, 1e-12, "t=%v", tt)
	}
}

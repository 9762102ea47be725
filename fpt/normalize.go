package fpt

// Normalize post-processes a computed density pair in place so that the
// discretized total probability (Σg1 + Σg2)·Δt equals exactly 1, up to
// floating-point rounding:
//
//  1. Every negative element is clipped to 0 while the sums of the
//     nonnegative elements of g1 and g2 accumulate.
//  2. The split ratio p = Σg1/(Σg1+Σg2) is computed from the clipped sums.
//  3. Only the *last* element of each sequence is adjusted:
//     g1[n-1] += p/Δt − Σg1 and g2[n-1] += (1−p)/Δt − Σg2.
//
// The correction lands in the tail, where truncation error is largest, and
// leaves the upper/lower split ratio untouched. If no positive mass
// survives the clipping there is no empirical ratio to preserve; the unit
// mass is then split evenly between the two tails.
//
// Complexity: O(n), no allocation.
//
// Errors: ErrStepSize, ErrNoSteps, ErrSequenceLen.
func Normalize(g1, g2 []float64, deltaT float64) error {
	if err := validateGrid(deltaT, g1, g2); err != nil {
		return err
	}

	// clip negatives, summing what remains
	g1Sum, g2Sum := 0.0, 0.0
	for i := range g1 {
		if g1[i] < 0 {
			g1[i] = 0
		} else {
			g1Sum += g1[i]
		}
		if g2[i] < 0 {
			g2[i] = 0
		} else {
			g2Sum += g2[i]
		}
	}

	// push the missing mass into the last elements, preserving the ratio;
	// with no surviving mass the ratio is undefined, so split evenly
	n := len(g1)
	p := 0.5
	if total := g1Sum + g2Sum; total > 0 {
		p = g1Sum / total
	}
	g1[n-1] += p/deltaT - g1Sum
	g2[n-1] += (1-p)/deltaT - g2Sum
	return nil
}

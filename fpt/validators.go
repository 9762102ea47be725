package fpt

import "math"

// validateGrid checks the common preconditions of every solver: a positive
// finite step size and a non-empty g1 matched in length by g2.
// Returns ErrStepSize or ErrNoSteps or ErrSequenceLen; O(1).
func validateGrid(deltaT float64, g1, g2 []float64) error {
	if !(deltaT > 0) || math.IsInf(deltaT, 1) {
		return ErrStepSize
	}
	if len(g1) == 0 {
		return ErrNoSteps
	}
	if len(g2) != len(g1) {
		return ErrSequenceLen
	}
	return nil
}

// validateLens checks that every parameter sequence has exactly k elements.
// Returns ErrSequenceLen; O(#sequences).
func validateLens(k int, seqs ...[]float64) error {
	for _, s := range seqs {
		if len(s) != k {
			return ErrSequenceLen
		}
	}
	return nil
}

package fpt

// ExtendVector returns a new sequence of newSize elements: the first
// min(len(v), newSize) are copied from v, the remainder is filled with
// fill. Ownership of the result transfers to the caller; v is never
// modified. Callers use it to carry parameter sequences across a change of
// time horizon.
//
// Complexity: O(newSize).
//
// Errors: ErrVectorSize if newSize < 0.
func ExtendVector(v []float64, newSize int, fill float64) ([]float64, error) {
	if newSize < 0 {
		return nil, ErrVectorSize
	}
	out := make([]float64, newSize)
	n := copy(out, v)
	for i := n; i < newSize; i++ {
		out[i] = fill
	}
	return out, nil
}

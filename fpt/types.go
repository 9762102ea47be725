package fpt

import "errors"

// Sentinel errors for fpt solvers.
var (
	// ErrStepSize indicates the step size Δt is not a positive finite number.
	ErrStepSize = errors.New("fpt: step size must be positive and finite")
	// ErrNoSteps indicates the output sequence g1 is empty.
	ErrNoSteps = errors.New("fpt: output sequences must have at least one element")
	// ErrSequenceLen indicates a sequence length differs from len(g1).
	ErrSequenceLen = errors.New("fpt: all sequences must have the same length as g1")
	// ErrDriftSign indicates a constant drift rate that is not positive.
	ErrDriftSign = errors.New("fpt: constant drift rate must be positive")
	// ErrBoundSign indicates a constant bound height that is not positive.
	ErrBoundSign = errors.New("fpt: constant bound height must be positive")
	// ErrLeakSign indicates a negative inverse leak time constant.
	ErrLeakSign = errors.New("fpt: inverse leak time constant must be non-negative")
	// ErrVectorSize indicates a negative target length for ExtendVector.
	ErrVectorSize = errors.New("fpt: target vector length must be non-negative")
)

// SeriesTol is the absolute tolerance the ConstSymmetric fast path requests
// from the canonical series expansions. It is far below the discretization
// error of any reasonable Δt, so the fast path is effectively exact.
const SeriesTol = 1e-29

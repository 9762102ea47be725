// Package fpt computes first-passage-time densities of discretized
// drift-diffusion models: evidence accumulates in steps of Δt until it
// crosses one of two absorbing boundaries, and each solver fills two
// caller-allocated sequences with the density of crossing the upper
// boundary (g1) and the lower boundary (g2) at every step.
//
// What:
//
//   - Full / FullLeak — general solvers for time-varying drift, variance
//     and asymmetric time-varying boundaries; FullLeak adds exponential
//     mean reversion (Ornstein–Uhlenbeck accumulation).
//   - Symmetric / SymmetricConstDrift — unit-variance solvers for symmetric
//     time-varying bounds ±bound(t), with vector or constant drift.
//   - Weighted — proportional (collapsing) threshold model; the lower
//     density follows from the upper one by a reflection identity.
//   - ConstSymmetric — series fast path for constant drift and constant
//     symmetric bounds, O(k) instead of O(k²).
//   - Normalize — clips negatives and renormalizes total mass to one while
//     preserving the upper/lower split ratio.
//   - ExtendVector — resizes a parameter sequence, padding with a fill
//     value.
//
// Conventions:
//
//   - The step count is len(g1); the time of step k is (k+1)·Δt.
//   - All parameter sequences must have exactly len(g1) elements.
//   - g1 and g2 are caller-allocated and written in place; every stored
//     element is clipped to ≥ 0.
//   - Before Normalize, (Σg1+Σg2)·Δt only approximates 1 (truncation);
//     after it, the sum is exactly 1 up to floating-point rounding.
//
// Complexity:
//
//   - Recursive solvers: O(k²) time, O(k) scratch memory.
//   - ConstSymmetric: O(k) time, no scratch allocation.
//   - Normalize, ExtendVector: O(k).
//
// Errors:
//
//   - ErrStepSize: Δt is not a positive finite number.
//   - ErrNoSteps: g1 is empty.
//   - ErrSequenceLen: some sequence length differs from len(g1).
//   - ErrDriftSign / ErrBoundSign: constant drift/bound must be positive.
//   - ErrLeakSign: inverse leak time constant must be ≥ 0.
//   - ErrVectorSize: ExtendVector target length is negative.
//
// The solvers share no state: concurrent calls are safe as long as each
// call uses its own output buffers.
package fpt

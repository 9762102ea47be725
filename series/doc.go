// Package series evaluates the first-passage-time density of the canonical
// driftless diffusion: zero drift, unit diffusion variance, absorbing
// boundaries at 0 and 1, process started at w ∈ (0,1). It returns the density
// of first hitting the *lower* boundary at time t.
//
// What:
//
//   - LowerDensity(t, w, tol) — canonical lower-boundary FPT density,
//     evaluated to absolute tolerance tol.
//   - SymLowerDensity(t, tol) — specialization for a process started at the
//     midpoint (w = ½), using a cheaper single-parameter series.
//   - UseShortTime(t, tol) — the analytic crossover rule (Navarro & Fuss,
//     2009, Eq. 13) selecting whichever expansion needs fewer terms at t.
//
// Why:
//
//	Two complementary expansions of the same density exist: a sum over
//	mirror images of the starting point (fast for small t) and a Fourier
//	sine series (fast for large t). Picking the cheaper one per evaluation
//	bounds the number of terms regardless of t, which is what makes the
//	constant-parameter fast path in package fpt O(k) overall.
//
// Complexity:
//
//   - One evaluation costs O(#terms), with #terms bounded by the crossover
//     rule; in practice a handful of exp() calls.
//
// Edge cases:
//
//   - t == 0 returns 0 without touching either series (both are singular
//     there).
//
// Non-canonical problems (nonzero drift, arbitrary bounds) are mapped onto
// this package by closed-form rescaling in package fpt.
package series

// Package ddmfpt computes first-passage-time (FPT) distributions of
// drift-diffusion models — the workhorse of binary-choice response-time
// modelling in psychology and neuroscience.
//
// 🚀 What is ddmfpt?
//
//	A pure-Go numerical library that, given discretized drift, variance and
//	boundary trajectories, returns the probability density of the diffusion
//	first crossing the upper boundary (g1) and the lower boundary (g2) at
//	each time step:
//		• General solver: arbitrary time-varying drift, variance and bounds
//		• Leaky variant: Ornstein–Uhlenbeck (mean-reverting) accumulation
//		• Weighted variant: proportional (collapsing) decision thresholds
//		• Series fast path: constant drift & symmetric bounds in O(k) time
//		• Mass normalization and parameter-vector utilities
//
// ✨ Why choose ddmfpt?
//
//   - Deterministic – forward substitution on the renewal integral
//     equation, no Monte-Carlo noise
//   - Rock-solid guarantees – densities are clipped nonnegative, mass can
//     be renormalized to exactly one
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-friendly – no shared state; call from as many goroutines
//     as you like with distinct output buffers
//
// Everything is organized under two subpackages:
//
//	fpt/    — solvers over discretized parameter sequences, normalization,
//	          vector utilities
//	series/ — asymptotic series expansions of the canonical driftless
//	          unit-interval first-passage problem
//
// Quick sketch of the model:
//
//	 bound ──────────────
//	   │    ╱╲    ╱──── upper crossing at t ⇒ contributes to g1(t)
//	   0 ──╱──╲╱╲╱──────
//	   │       ╲╱
//	-bound ──────────────
//
// Dive into the subpackage docs for formulas, complexity and examples.
//
//	go get github.com/quantpsy/ddmfpt
package ddmfpt

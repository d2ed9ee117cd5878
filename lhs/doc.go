// SPDX-License-Identifier: MIT

// Package lhs implements the LHS visibility oracle: given a bipartite state
// and a fixed set of qubit measurements, it decides how much white noise the
// state tolerates before the assemblage those measurements generate stops
// admitting a local-hidden-state model, and returns that threshold — the
// critical visibility η ∈ [0, 1].
//
// # The program
//
// For N measurements of K outcomes each, the oracle enumerates all K^N
// deterministic strategies (assignments of one outcome to every
// measurement, a base-K digit expansion of the strategy index) and asks for
// one PSD matrix σ_l per strategy on the unmeasured party such that, for
// every measurement i and outcome j,
//
//	Σ_{l : strategy l assigns j to i} σ_l
//	    = η·F[i][j] + ((1−η)/dB)·tr(F[i][j])·I,
//
// where F[i][j] = Tr_A[(M[i][j] ⊗ I_B)·ρ] is the target assemblage member.
// The largest η admitting such a decomposition is the critical visibility.
//
// # Cost
//
// The variable count grows as K^N; the oracle guards the strategy space
// with an explicit cap (ErrStrategySpace) so callers cannot accidentally
// request an intractable solve.
//
// # Backends
//
// The SDP itself is solved behind the Backend interface. The default
// backend runs bisection on η over [0, 1], deciding each fixed-η convex
// feasibility problem by alternating projections between the affine
// constraint set (closed form through the strategy-incidence Gram matrix
// pseudo-inverse) and the PSD cone (per-variable spectral clipping).
// Feasibility of η = 0 is guaranteed for any valid input, so an infeasible
// η = 0 is surfaced as ErrSolverFailure, never as a silent zero.
//
// Every call is stateless: variables, projections and scratch space live
// and die inside one Solve, so independent oracle evaluations can run
// concurrently without sharing solver sessions.
package lhs

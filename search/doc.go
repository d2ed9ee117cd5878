// Package search - continuous local search for steering-critical measurement sets.
//
// # What
//
// search drives a derivative-free Nelder–Mead optimizer (gonum/optimize)
// over the real parameter vector of a measurement family (povm.Trine or
// povm.General) and minimizes the critical visibility reported by the LHS
// oracle (lhs.CriticalVisibility) on a fixed bipartite state. The result is
// an upper bound on the family's minimal critical visibility: it certifies
// the measurement set it returns, not optimality.
//
// # How
//
//   - The initial parameter vector is drawn uniformly from a seeded RNG
//     ([0, π] per trine angle, [0, 1] per general-POVM coordinate).
//   - The objective decodes a candidate vector into a measurement set and
//     calls the oracle; oracle failures score a large finite penalty so the
//     simplex contracts away from them.
//   - Convergence is declared by function-value stabilization (FuncTol over
//     ConvergeIters consecutive iterations); exhausting MaxIterations or
//     MaxEvaluations reports StatusCapReached instead.
//
// # Determinism & concurrency
//
// Same seed ⇒ identical trajectory; seed 0 selects a fixed default. No
// time-based sources. One Minimize call is single-goroutine; independent
// restarts belong to the caller, with DeriveSeed producing decorrelated
// per-restart seeds.
//
// Errors are sentinel-based (ErrBadFamily, ErrBadOptions, ...) and oracle
// errors are wrapped, so callers can match with errors.Is.
package search

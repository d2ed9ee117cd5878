// SPDX-License-Identifier: MIT
// Package lhs: sentinel error set and oracle options.

package lhs

import "errors"

// Sentinel errors returned by the oracle. Tests match them via errors.Is.
var (
	// ErrStateNil indicates a nil state matrix.
	ErrStateNil = errors.New("lhs: state is nil")

	// ErrStateNotSquare indicates a non-square state matrix.
	ErrStateNotSquare = errors.New("lhs: state matrix is not square")

	// ErrStateDimension indicates a state dimension that is not a multiple
	// of the qubit measured party (dA = 2).
	ErrStateDimension = errors.New("lhs: state dimension is not a multiple of the measured qubit")

	// ErrStateNotHermitian indicates a state violating Hermiticity.
	ErrStateNotHermitian = errors.New("lhs: state is not Hermitian within eps")

	// ErrStateTrace indicates a state whose trace is not 1 within eps.
	ErrStateTrace = errors.New("lhs: state trace is not 1 within eps")

	// ErrStateNotPSD indicates a state with a negative eigenvalue beyond eps.
	ErrStateNotPSD = errors.New("lhs: state is not positive semidefinite within eps")

	// ErrEmptyMeasurements indicates an empty measurement set.
	ErrEmptyMeasurements = errors.New("lhs: empty measurement set")

	// ErrMeasurementShape indicates an operator of the wrong dimension or a
	// ragged outcome list.
	ErrMeasurementShape = errors.New("lhs: measurement operator shape mismatch")

	// ErrMeasurementIncomplete indicates a measurement whose outcomes do not
	// sum to the identity within eps. Positivity is deliberately NOT checked
	// here: the polytope driver feeds super-normalized projective sets.
	ErrMeasurementIncomplete = errors.New("lhs: measurement outcomes do not sum to identity")

	// ErrStrategySpace indicates K^N exceeds the configured strategy cap.
	ErrStrategySpace = errors.New("lhs: deterministic strategy space exceeds cap")

	// ErrBadOptions indicates a non-positive tolerance or iteration cap.
	ErrBadOptions = errors.New("lhs: invalid options")

	// ErrSolverFailure indicates the SDP backend could not certify a
	// solution (η = 0 infeasible or numerical breakdown) — distinct from a
	// legitimate visibility of 0.
	ErrSolverFailure = errors.New("lhs: solver failed to certify a solution")
)

// Default tolerances and caps; see Options.
const (
	// DefaultEps is the structural validation tolerance for states and
	// measurement completeness.
	DefaultEps = 1e-7

	// DefaultBisectTol is the width at which the η bisection stops; the
	// certified feasible endpoint is returned.
	DefaultBisectTol = 5e-4

	// DefaultFeasTol is the residual norm below which a fixed-η feasibility
	// problem is declared feasible. Kept well below BisectTol so that the
	// residual gap of a barely-infeasible η cannot masquerade as feasible.
	DefaultFeasTol = 1e-7

	// DefaultMaxProjIter caps alternating-projection rounds per feasibility
	// decision.
	DefaultMaxProjIter = 2000

	// DefaultMaxStrategies caps K^N; beyond it the oracle refuses to build
	// the program (ErrStrategySpace).
	DefaultMaxStrategies = 1 << 16
)

// Options configures one oracle invocation.
//
// Backend       – SDP backend; nil selects the built-in projection backend.
// Eps           – structural validation tolerance (> 0).
// BisectTol     – η bisection resolution (> 0).
// FeasTol       – feasibility residual tolerance (> 0).
// MaxProjIter   – alternating-projection cap per feasibility decision (> 0).
// MaxStrategies – strategy-space cap (> 0).
type Options struct {
	Backend       Backend
	Eps           float64
	BisectTol     float64
	FeasTol       float64
	MaxProjIter   int
	MaxStrategies int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Eps:           DefaultEps,
		BisectTol:     DefaultBisectTol,
		FeasTol:       DefaultFeasTol,
		MaxProjIter:   DefaultMaxProjIter,
		MaxStrategies: DefaultMaxStrategies,
	}
}

// validate rejects non-positive tolerances and caps.
func (o Options) validate() error {
	if o.Eps <= 0 || o.BisectTol <= 0 || o.FeasTol <= 0 || o.MaxProjIter <= 0 || o.MaxStrategies <= 0 {
		return ErrBadOptions
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package lhs: the oracle facade — input validation, program assembly, and
// dispatch to the SDP backend.

package lhs

import (
	"math"

	"github.com/jessicabavaresco/steerbounds/povm"
	"github.com/jessicabavaresco/steerbounds/qmat"
)

// Program is the assembled LHS feasibility program handed to a Backend:
// the strategy table, the target assemblage members F[i][j] (Hermitian,
// DimB×DimB) and their traces. Backends treat it as read-only.
type Program struct {
	// DimB is the dimension of the unmeasured party.
	DimB int

	// Strat is the deterministic-strategy table over K^N strategies.
	Strat Strategies

	// Targets[i][j] = Tr_A[(M[i][j] ⊗ I_B)·ρ], Hermitian-symmetrized.
	Targets [][]*qmat.Dense

	// Weights[i][j] = tr(Targets[i][j]) — the outcome probability at full
	// visibility; real and non-negative for valid POVMs.
	Weights [][]float64
}

// Backend solves an assembled LHS program, returning the critical
// visibility in [0, 1] or a failure. Implementations must be stateless
// across calls (or internally synchronized): the drivers evaluate
// independent programs concurrently.
type Backend interface {
	Solve(p *Program) (float64, error)
}

// CriticalVisibility returns the critical visibility of state rho under the
// fixed measurement set m: the largest η ∈ [0, 1] for which the η-depolarized
// assemblage admits a local-hidden-state decomposition.
//
// The call is a pure, stateless function of its inputs: the strategy table,
// decision variables and all solver scratch are scoped to this invocation.
//
// opts may be nil (defaults). Errors: the ErrState* family and
// ErrMeasurement* family on invalid input, ErrStrategySpace when K^N
// exceeds the cap, ErrSolverFailure when the backend cannot certify a
// solution.
//
// Complexity: program assembly is O(N·K·(dA·dB)³); the default backend adds
// O(MaxProjIter · K^N · dB³) per bisection step.
func CriticalVisibility(rho *qmat.Dense, m povm.Set, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = withDefaults(*opts)
	}
	if err := o.validate(); err != nil {
		return 0, err
	}

	dB, err := validateState(rho, o.Eps)
	if err != nil {
		return 0, err
	}
	if err = validateMeasurements(m, o.Eps); err != nil {
		return 0, err
	}

	p, err := assemble(rho, m, dB, o.MaxStrategies)
	if err != nil {
		return 0, err
	}

	backend := o.Backend
	if backend == nil {
		backend = newProjectionBackend(o)
	}

	eta, err := backend.Solve(p)
	if err != nil {
		return 0, err
	}

	// Clamp backend round-off into the physical range.
	return math.Max(0, math.Min(1, eta)), nil
}

// withDefaults fills zero-valued fields of o with the documented defaults,
// so callers may set only what they care about.
func withDefaults(o Options) Options {
	d := DefaultOptions()
	if o.Eps == 0 {
		o.Eps = d.Eps
	}
	if o.BisectTol == 0 {
		o.BisectTol = d.BisectTol
	}
	if o.FeasTol == 0 {
		o.FeasTol = d.FeasTol
	}
	if o.MaxProjIter == 0 {
		o.MaxProjIter = d.MaxProjIter
	}
	if o.MaxStrategies == 0 {
		o.MaxStrategies = d.MaxStrategies
	}

	return o
}

// validateState checks the state contract (square, dimension 2·dB,
// Hermitian, unit trace, PSD) and returns dB.
func validateState(rho *qmat.Dense, eps float64) (int, error) {
	if rho == nil {
		return 0, ErrStateNil
	}
	if rho.Rows() != rho.Cols() {
		return 0, ErrStateNotSquare
	}
	if rho.Rows() < 2 || rho.Rows()%qmat.QubitDim != 0 {
		return 0, ErrStateDimension
	}
	if !qmat.IsHermitian(rho, eps) {
		return 0, ErrStateNotHermitian
	}

	tr, err := qmat.Trace(rho)
	if err != nil {
		return 0, err
	}
	if math.Abs(real(tr)-1) > eps || math.Abs(imag(tr)) > eps {
		return 0, ErrStateTrace
	}

	min, err := qmat.MinEigval(rho)
	if err != nil {
		return 0, err
	}
	if min < -eps {
		return 0, ErrStateNotPSD
	}

	return rho.Rows() / qmat.QubitDim, nil
}

// validateMeasurements checks shape, Hermiticity and completeness of the
// set. Positivity is intentionally not required (see ErrMeasurementIncomplete
// docs); the program is well-defined for super-normalized directions.
func validateMeasurements(m povm.Set, eps float64) error {
	if m.N <= 0 || m.K <= 0 || len(m.Ops) != m.N {
		return ErrEmptyMeasurements
	}
	id, err := qmat.Identity(povm.Dim)
	if err != nil {
		return err
	}

	var i, j int
	for i = 0; i < m.N; i++ {
		if len(m.Ops[i]) != m.K {
			return ErrMeasurementShape
		}
		sum, zerr := qmat.Zeros(povm.Dim, povm.Dim)
		if zerr != nil {
			return zerr
		}
		for j = 0; j < m.K; j++ {
			op := m.Ops[i][j]
			if op == nil || op.Rows() != povm.Dim || op.Cols() != povm.Dim {
				return ErrMeasurementShape
			}
			if !qmat.IsHermitian(op, eps) {
				return ErrMeasurementShape
			}
			if aerr := qmat.AddInPlace(sum, op); aerr != nil {
				return aerr
			}
		}
		if !qmat.ApproxEqual(sum, id, eps) {
			return ErrMeasurementIncomplete
		}
	}

	return nil
}

// assemble builds the Program: strategy table plus target assemblage.
func assemble(rho *qmat.Dense, m povm.Set, dB, maxStrategies int) (*Program, error) {
	strat, err := NewStrategies(m.N, m.K, maxStrategies)
	if err != nil {
		return nil, err
	}

	idB, err := qmat.Identity(dB)
	if err != nil {
		return nil, err
	}

	targets := make([][]*qmat.Dense, m.N)
	weights := make([][]float64, m.N)

	var i, j int
	for i = 0; i < m.N; i++ {
		targets[i] = make([]*qmat.Dense, m.K)
		weights[i] = make([]float64, m.K)
		for j = 0; j < m.K; j++ {
			ext, kerr := qmat.Kron(m.Ops[i][j], idB)
			if kerr != nil {
				return nil, kerr
			}
			prod, merr := qmat.Mul(ext, rho)
			if merr != nil {
				return nil, merr
			}
			red, terr := qmat.PartialTraceFirst(prod, qmat.QubitDim, dB)
			if terr != nil {
				return nil, terr
			}
			red, herr := qmat.HermitianPart(red)
			if herr != nil {
				return nil, herr
			}
			tr, trerr := qmat.Trace(red)
			if trerr != nil {
				return nil, trerr
			}

			targets[i][j] = red
			weights[i][j] = real(tr)
		}
	}

	return &Program{DimB: dB, Strat: strat, Targets: targets, Weights: weights}, nil
}

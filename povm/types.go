// Package povm: sentinel errors, the Set type and its validation.

package povm

import (
	"errors"

	"github.com/jessicabavaresco/steerbounds/qmat"
)

// Dim is the dimension of the measured party; the parameterizers are
// qubit-specific (dA = 2 throughout).
const Dim = qmat.QubitDim

// TrineParams is the number of reals consumed per trine measurement.
const TrineParams = 3

// blochDim is the number of reals per free Bloch vector (dA²−1 for dA=2).
const blochDim = 3

// Sentinel errors returned by the parameterizers.
var (
	// ErrParamLength indicates a parameter vector whose length does not match
	// the family's decoding scheme — a caller contract violation.
	ErrParamLength = errors.New("povm: parameter vector length mismatch")

	// ErrBadMeasurementCount indicates a non-positive measurement count.
	ErrBadMeasurementCount = errors.New("povm: measurement count must be positive")

	// ErrBadOutcomeCount indicates an outcome count < 2 for the general family.
	ErrBadOutcomeCount = errors.New("povm: outcome count must be at least 2")

	// ErrDegenerateBloch indicates that all decoded Bloch vectors of one
	// measurement are (numerically) zero, so no normalization exists.
	ErrDegenerateBloch = errors.New("povm: degenerate Bloch decoding")

	// ErrNotPOVM indicates a measurement set violating completeness or
	// positivity beyond the requested tolerance.
	ErrNotPOVM = errors.New("povm: operators do not form a valid POVM")

	// ErrEmptySet indicates a nil or empty measurement set.
	ErrEmptySet = errors.New("povm: empty measurement set")
)

// Set is an indexed family of N measurements with K outcomes each;
// Ops[i][j] is the Dim×Dim operator of outcome j of measurement i.
//
// Sets are constructed fresh for each candidate evaluation and never
// mutated afterwards; sharing across goroutines is safe.
type Set struct {
	N   int
	K   int
	Ops [][]*qmat.Dense
}

// Validate checks the POVM invariants within tolerance eps: every operator
// is Hermitian with smallest eigenvalue ≥ −eps, and for every measurement
// the outcomes sum to the identity entrywise within eps.
//
// Errors: ErrEmptySet, ErrNotPOVM.
//
// Complexity: O(N·K) small-matrix eigendecompositions.
func (s Set) Validate(eps float64) error {
	if s.N == 0 || s.K == 0 || len(s.Ops) != s.N {
		return ErrEmptySet
	}
	id, err := qmat.Identity(Dim)
	if err != nil {
		return err
	}

	var i, j int
	for i = 0; i < s.N; i++ {
		if len(s.Ops[i]) != s.K {
			return ErrNotPOVM
		}
		sum, err := qmat.Zeros(Dim, Dim)
		if err != nil {
			return err
		}
		for j = 0; j < s.K; j++ {
			op := s.Ops[i][j]
			if !qmat.IsPSD(op, eps) {
				return ErrNotPOVM
			}
			if err = qmat.AddInPlace(sum, op); err != nil {
				return err
			}
		}
		if !qmat.ApproxEqual(sum, id, eps) {
			return ErrNotPOVM
		}
	}

	return nil
}

package lhs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessicabavaresco/steerbounds/lhs"
	"github.com/jessicabavaresco/steerbounds/povm"
	"github.com/jessicabavaresco/steerbounds/qmat"
)

// trineSet builds n trine measurements from fixed, well-spread angles.
func trineSet(t *testing.T, n int) povm.Set {
	t.Helper()
	params := make([]float64, 3*n)
	for i := 0; i < n; i++ {
		params[3*i] = 0.4 + 0.9*float64(i)
		params[3*i+1] = 0.2 + 0.5*float64(i)
		params[3*i+2] = 1.1 * float64(i)
	}
	set, err := povm.Trine(params, n)
	require.NoError(t, err)

	return set
}

// TestCriticalVisibility_StateValidation exercises the ErrState* family.
func TestCriticalVisibility_StateValidation(t *testing.T) {
	set := trineSet(t, 1)

	_, err := lhs.CriticalVisibility(nil, set, nil)
	assert.ErrorIs(t, err, lhs.ErrStateNil)

	rect, err := qmat.New(4, 3, nil)
	require.NoError(t, err)
	_, err = lhs.CriticalVisibility(rect, set, nil)
	assert.ErrorIs(t, err, lhs.ErrStateNotSquare)

	odd, err := qmat.MaximallyMixed(3)
	require.NoError(t, err)
	_, err = lhs.CriticalVisibility(odd, set, nil)
	assert.ErrorIs(t, err, lhs.ErrStateDimension)

	// Hermitian but trace 2.
	doubled, err := qmat.Identity(4)
	require.NoError(t, err)
	doubled, err = qmat.Scale(0.5, doubled)
	require.NoError(t, err)
	doubled, err = qmat.Add(doubled, doubled)
	require.NoError(t, err)
	_, err = lhs.CriticalVisibility(doubled, set, nil)
	assert.ErrorIs(t, err, lhs.ErrStateTrace)

	// Unit trace but indefinite.
	indef, err := qmat.New(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0.5, 0, 0,
		0, 0, -0.5, 0,
		0, 0, 0, 0,
	})
	require.NoError(t, err)
	_, err = lhs.CriticalVisibility(indef, set, nil)
	assert.ErrorIs(t, err, lhs.ErrStateNotPSD)
}

// TestCriticalVisibility_MeasurementValidation exercises the
// ErrMeasurement* family.
func TestCriticalVisibility_MeasurementValidation(t *testing.T) {
	rho, err := qmat.MaximallyMixed(4)
	require.NoError(t, err)

	_, err = lhs.CriticalVisibility(rho, povm.Set{}, nil)
	assert.ErrorIs(t, err, lhs.ErrEmptyMeasurements)

	// Outcomes that do not sum to identity.
	half, err := qmat.Identity(2)
	require.NoError(t, err)
	half, err = qmat.Scale(0.25, half)
	require.NoError(t, err)
	bad := povm.Set{N: 1, K: 2, Ops: [][]*qmat.Dense{{half, half}}}
	_, err = lhs.CriticalVisibility(rho, bad, nil)
	assert.ErrorIs(t, err, lhs.ErrMeasurementIncomplete)
}

// TestCriticalVisibility_StrategyCap verifies the K^N guard.
func TestCriticalVisibility_StrategyCap(t *testing.T) {
	rho, err := qmat.MaximallyMixed(4)
	require.NoError(t, err)
	set := trineSet(t, 2)

	opts := lhs.DefaultOptions()
	opts.MaxStrategies = 5 // 3^2 = 9 > 5
	_, err = lhs.CriticalVisibility(rho, set, &opts)
	assert.ErrorIs(t, err, lhs.ErrStrategySpace)
}

// TestCriticalVisibility_MaximallyMixed: a state with no steering content
// has an LHS model at full visibility for any measurement set.
func TestCriticalVisibility_MaximallyMixed(t *testing.T) {
	rho, err := qmat.MaximallyMixed(4)
	require.NoError(t, err)

	eta, err := lhs.CriticalVisibility(rho, trineSet(t, 2), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, eta, 1e-9, "maximally mixed state must reach eta = 1")
}

// TestCriticalVisibility_SingleMeasurement: one measurement never violates
// a steering inequality, even on the maximally entangled state.
func TestCriticalVisibility_SingleMeasurement(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)

	eta, err := lhs.CriticalVisibility(phi, trineSet(t, 1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, eta, 1e-9, "N=1 must reach eta = 1")

	// Same for a single projective measurement.
	proj, err := povm.Projective([][2]float64{{0, 1}})
	require.NoError(t, err)
	eta, err = lhs.CriticalVisibility(phi, proj, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, eta, 1e-9)
}

// TestCriticalVisibility_TwoMUBs reproduces the known threshold 1/√2 for
// the {σx, σz} pair on the maximally entangled state.
func TestCriticalVisibility_TwoMUBs(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)
	set, err := povm.Projective([][2]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	opts := lhs.DefaultOptions()
	opts.BisectTol = 2e-4
	opts.MaxProjIter = 4000

	eta, err := lhs.CriticalVisibility(phi, set, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt2, eta, 5e-3, "two mutually unbiased projective measurements")
}

// TestCriticalVisibility_ThreeMUBs reproduces the known threshold 1/√3 for
// noisy {σx, σy, σz} on the maximally entangled state, covering the
// complex-operator path through the solver.
func TestCriticalVisibility_ThreeMUBs(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)

	id, err := qmat.Identity(2)
	require.NoError(t, err)
	ops := make([][]*qmat.Dense, 3)
	for i, pauli := range []*qmat.Dense{qmat.PauliX(), qmat.PauliY(), qmat.PauliZ()} {
		plus, aerr := qmat.Add(id, pauli)
		require.NoError(t, aerr)
		plus, aerr = qmat.Scale(0.5, plus)
		require.NoError(t, aerr)
		minus, serr := qmat.Sub(id, pauli)
		require.NoError(t, serr)
		minus, serr = qmat.Scale(0.5, minus)
		require.NoError(t, serr)
		ops[i] = []*qmat.Dense{plus, minus}
	}
	set := povm.Set{N: 3, K: 2, Ops: ops}

	opts := lhs.DefaultOptions()
	opts.BisectTol = 2e-4
	opts.MaxProjIter = 4000

	eta, err := lhs.CriticalVisibility(phi, set, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(3), eta, 5e-3, "three mutually unbiased projective measurements")
}

// TestCriticalVisibility_Monotonicity: adding a measurement can only
// tighten the LHS test.
func TestCriticalVisibility_Monotonicity(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)

	one, err := povm.Projective([][2]float64{{1, 0}})
	require.NoError(t, err)
	two, err := povm.Projective([][2]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	etaOne, err := lhs.CriticalVisibility(phi, one, nil)
	require.NoError(t, err)
	etaTwo, err := lhs.CriticalVisibility(phi, two, nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, etaTwo, etaOne+5e-3, "superset visibility must not exceed subset visibility")
}

// TestCriticalVisibility_RelabelingInvariance: permuting the outcome order
// within one measurement leaves the visibility unchanged.
func TestCriticalVisibility_RelabelingInvariance(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)

	base, err := povm.Projective([][2]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	swapped := povm.Set{N: 2, K: 2, Ops: [][]*qmat.Dense{
		base.Ops[0],
		{base.Ops[1][1], base.Ops[1][0]}, // outcome order of the 2nd measurement reversed
	}}

	etaBase, err := lhs.CriticalVisibility(phi, base, nil)
	require.NoError(t, err)
	etaSwapped, err := lhs.CriticalVisibility(phi, swapped, nil)
	require.NoError(t, err)

	assert.InDelta(t, etaBase, etaSwapped, 1e-6, "oracle must be relabeling-invariant")
}

// TestCriticalVisibility_Depolarized: feeding the oracle an already
// depolarized steerable state raises the threshold accordingly — a coarse
// consistency check of the depolarizing constraint.
func TestCriticalVisibility_Depolarized(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)
	noisy, err := qmat.Depolarized(phi, 0.5)
	require.NoError(t, err)

	set, err := povm.Projective([][2]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	etaPure, err := lhs.CriticalVisibility(phi, set, nil)
	require.NoError(t, err)
	etaNoisy, err := lhs.CriticalVisibility(noisy, set, nil)
	require.NoError(t, err)

	assert.Greater(t, etaNoisy, etaPure, "a noisier state tolerates more extra noise")
	assert.InDelta(t, 1, etaNoisy, 5e-3, "at half visibility the {x,z} assemblage is unsteerable")
}

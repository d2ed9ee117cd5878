package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessicabavaresco/steerbounds/lhs"
	"github.com/jessicabavaresco/steerbounds/qmat"
	"github.com/jessicabavaresco/steerbounds/search"
)

const seedDet = 42

// TestMinimize_Validation covers the option and state guards.
func TestMinimize_Validation(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.Family = search.Family(7)
	_, err = search.Minimize(phi, opts)
	assert.ErrorIs(t, err, search.ErrBadFamily)

	opts = search.DefaultOptions()
	opts.Measurements = -1
	_, err = search.Minimize(phi, opts)
	assert.ErrorIs(t, err, search.ErrBadOptions)

	opts = search.DefaultOptions()
	opts.Family = search.FamilyGeneral
	opts.Outcomes = 1
	_, err = search.Minimize(phi, opts)
	assert.ErrorIs(t, err, search.ErrBadOptions)

	_, err = search.Minimize(nil, search.DefaultOptions())
	assert.ErrorIs(t, err, lhs.ErrStateNil)
}

// TestMinimize_Deterministic: the same seed reproduces the whole run.
func TestMinimize_Deterministic(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.Seed = seedDet
	opts.MaxEvaluations = 60

	first, err := search.Minimize(phi, opts)
	require.NoError(t, err)
	second, err := search.Minimize(phi, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Visibility, second.Visibility)
	assert.Equal(t, first.Params, second.Params)
	assert.Equal(t, first.Evaluations, second.Evaluations)
	assert.Equal(t, first.Status, second.Status)
}

// TestMinimize_TrinePair: the end-to-end trine search on the maximally
// entangled state converges to a steerable configuration, strictly below
// full visibility.
func TestMinimize_TrinePair(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.Seed = seedDet

	res, err := search.Minimize(phi, opts)
	require.NoError(t, err)

	assert.Equal(t, search.StatusConverged, res.Status)
	assert.Len(t, res.Params, 6)
	assert.Greater(t, res.Visibility, 0.0)
	assert.Less(t, res.Visibility, 0.999, "two well-placed trines must certify steering")
	assert.NoError(t, res.Measurements.Validate(1e-6), "the reported set must be a valid POVM set")
	assert.Equal(t, 2, res.Measurements.N)
	assert.Equal(t, 3, res.Measurements.K)
}

// TestMinimize_GeneralPair searches two-outcome general POVMs; the result
// must stay a valid POVM set (coordinates clamped into the domain) and its
// visibility must bracket correctly.
func TestMinimize_GeneralPair(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.Family = search.FamilyGeneral
	opts.Outcomes = 2
	opts.Seed = seedDet
	opts.MaxEvaluations = 400

	res, err := search.Minimize(phi, opts)
	require.NoError(t, err)

	assert.Len(t, res.Params, 6)
	for _, v := range res.Params {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.NoError(t, res.Measurements.Validate(1e-6))
	assert.Greater(t, res.Visibility, 0.0)
	assert.LessOrEqual(t, res.Visibility, 1.0)
	assert.Positive(t, res.Evaluations)
}

// TestMinimize_CapReached: a tiny evaluation budget terminates with the cap
// status but still reports the best scored candidate.
func TestMinimize_CapReached(t *testing.T) {
	phi, err := qmat.MaxEntangled(2)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.Seed = seedDet
	opts.MaxEvaluations = 10

	res, err := search.Minimize(phi, opts)
	require.NoError(t, err)

	assert.Equal(t, search.StatusCapReached, res.Status)
	assert.LessOrEqual(t, res.Visibility, 1.0)
	assert.NotEmpty(t, res.Params)
}

// TestDeriveSeed: deterministic, stream-sensitive, parent-sensitive.
func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, search.DeriveSeed(7, 3), search.DeriveSeed(7, 3))
	assert.NotEqual(t, search.DeriveSeed(7, 3), search.DeriveSeed(7, 4))
	assert.NotEqual(t, search.DeriveSeed(7, 3), search.DeriveSeed(8, 3))
}

package qmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessicabavaresco/steerbounds/qmat"
)

// TestNew_ShapeValidation verifies fail-fast shape checks for constructors.
func TestNew_ShapeValidation(t *testing.T) {
	_, err := qmat.New(0, 2, nil)
	assert.ErrorIs(t, err, qmat.ErrBadShape, "zero rows must error")

	_, err = qmat.New(2, 2, make([]complex128, 3))
	assert.ErrorIs(t, err, qmat.ErrBadShape, "mismatched backing data must error")

	_, err = qmat.Identity(-1)
	assert.ErrorIs(t, err, qmat.ErrBadShape, "negative identity size must error")
}

// TestMul_DimensionMismatch verifies strict operand validation.
func TestMul_DimensionMismatch(t *testing.T) {
	a, err := qmat.New(2, 3, nil)
	require.NoError(t, err)
	b, err := qmat.New(2, 2, nil)
	require.NoError(t, err)

	_, err = qmat.Mul(a, b)
	assert.ErrorIs(t, err, qmat.ErrDimensionMismatch)

	_, err = qmat.Mul(nil, b)
	assert.ErrorIs(t, err, qmat.ErrNilMatrix)
}

// TestMul_PauliAlgebra checks σx·σy = i·σz, a known closed-form product.
func TestMul_PauliAlgebra(t *testing.T) {
	xy, err := qmat.Mul(qmat.PauliX(), qmat.PauliY())
	require.NoError(t, err)

	iz, err := qmat.Scale(complex(0, 1), qmat.PauliZ())
	require.NoError(t, err)

	assert.True(t, qmat.ApproxEqual(xy, iz, 1e-12), "σx·σy must equal i·σz")
}

// TestDagger_Involution verifies (a†)† == a on a non-Hermitian matrix.
func TestDagger_Involution(t *testing.T) {
	a, err := qmat.New(2, 2, []complex128{1, complex(2, 3), 0, complex(0, -1)})
	require.NoError(t, err)

	d1, err := qmat.Dagger(a)
	require.NoError(t, err)
	d2, err := qmat.Dagger(d1)
	require.NoError(t, err)

	assert.True(t, qmat.ApproxEqual(a, d2, 0), "dagger must be an involution")
}

// TestKron_PartialTraceRoundTrip verifies Tr_A(A ⊗ B) == tr(A)·B.
func TestKron_PartialTraceRoundTrip(t *testing.T) {
	a, err := qmat.New(2, 2, []complex128{complex(0.25, 0), complex(0, 0.5), complex(0, -0.5), complex(0.75, 0)})
	require.NoError(t, err)
	b := qmat.PauliX()

	k, err := qmat.Kron(a, b)
	require.NoError(t, err)
	assert.Equal(t, 4, k.Rows())

	red, err := qmat.PartialTraceFirst(k, 2, 2)
	require.NoError(t, err)

	trA, err := qmat.Trace(a)
	require.NoError(t, err)
	want, err := qmat.Scale(trA, b)
	require.NoError(t, err)

	assert.True(t, qmat.ApproxEqual(red, want, 1e-12), "partial trace must undo the tensor factor")
}

// TestPartialTraceFirst_BadSubsystem verifies subsystem factor validation.
func TestPartialTraceFirst_BadSubsystem(t *testing.T) {
	m, err := qmat.Identity(6)
	require.NoError(t, err)

	_, err = qmat.PartialTraceFirst(m, 4, 2)
	assert.ErrorIs(t, err, qmat.ErrBadSubsystem)
}

// TestTrace_NonSquare verifies the square-matrix contract.
func TestTrace_NonSquare(t *testing.T) {
	m, err := qmat.New(2, 3, nil)
	require.NoError(t, err)

	_, err = qmat.Trace(m)
	assert.ErrorIs(t, err, qmat.ErrNonSquare)
}

// TestAddSubScale_Elementwise exercises the elementwise kernels together.
func TestAddSubScale_Elementwise(t *testing.T) {
	a := qmat.PauliZ()
	b := qmat.PauliX()

	sum, err := qmat.Add(a, b)
	require.NoError(t, err)
	diff, err := qmat.Sub(sum, b)
	require.NoError(t, err)
	assert.True(t, qmat.ApproxEqual(diff, a, 0), "a+b-b must equal a")

	twice, err := qmat.Scale(2, a)
	require.NoError(t, err)
	again, err := qmat.Add(a, a)
	require.NoError(t, err)
	assert.True(t, qmat.ApproxEqual(twice, again, 0), "2a must equal a+a")
}

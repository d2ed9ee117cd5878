// SPDX-License-Identifier: MIT
// Package qmat: sentinel error set and numeric policy constants.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package qmat

import "errors"

// DefaultEpsilon is the non-negative tolerance used by structural checks
// (Hermiticity, completeness, PSD-ness) throughout the module.
const DefaultEpsilon = 1e-9

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when the supplied backing data does not match the shape.
	ErrBadShape = errors.New("qmat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("qmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("qmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but not given.
	ErrNonSquare = errors.New("qmat: matrix is not square")

	// ErrNotHermitian signals that a Hermitian matrix was required and the
	// input violated Hermiticity beyond the configured tolerance.
	ErrNotHermitian = errors.New("qmat: matrix is not Hermitian within eps")

	// ErrEigenFailed indicates that the underlying symmetric
	// eigendecomposition did not converge.
	ErrEigenFailed = errors.New("qmat: eigendecomposition failed")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is
	// required.
	ErrNilMatrix = errors.New("qmat: nil matrix")

	// ErrBadSubsystem indicates that subsystem dimensions passed to a partial
	// trace do not factor the matrix dimension.
	ErrBadSubsystem = errors.New("qmat: subsystem dimensions do not match matrix size")
)

// SPDX-License-Identifier: MIT
// Package qmat: dense complex matrix type and the operator-algebra kernels
// (Add, Sub, Scale, Mul, Dagger, Kron, Trace, PartialTraceFirst).
// All kernels fail fast on shape violations and return plain sentinels.

package qmat

import (
	"math"
	"math/cmplx"
)

// Dense is a row-major dense complex matrix.
//
// The zero value is not usable; construct via New, Zeros or Identity.
// Dense values are never mutated by package operations — every kernel
// allocates a fresh result — so sharing a *Dense across goroutines is safe
// as long as callers do not Set concurrently.
type Dense struct {
	rows, cols int
	data       []complex128
}

// New constructs a rows×cols matrix backed by a copy of data.
// data may be nil (zero matrix) or must have length rows*cols.
//
// Errors: ErrBadShape on non-positive dimensions or mismatched data length.
//
// Complexity: O(rows·cols).
func New(rows, cols int, data []complex128) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if data != nil && len(data) != rows*cols {
		return nil, ErrBadShape
	}
	d := &Dense{rows: rows, cols: cols, data: make([]complex128, rows*cols)}
	copy(d.data, data)

	return d, nil
}

// Zeros returns a rows×cols zero matrix.
// Shape validity is the caller's contract; invalid shapes yield ErrBadShape.
func Zeros(rows, cols int) (*Dense, error) {
	return New(rows, cols, nil)
}

// Identity returns the n×n identity matrix.
// n must be positive; ErrBadShape otherwise.
func Identity(n int) (*Dense, error) {
	d, err := New(n, n, nil)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at (i, j).
// Errors: ErrOutOfRange when an index is outside bounds.
func (m *Dense) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.cols+j], nil
}

// Set assigns the element at (i, j).
// Errors: ErrOutOfRange when an index is outside bounds.
func (m *Dense) Set(i, j int, v complex128) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	m.data[i*m.cols+j] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	c := &Dense{rows: m.rows, cols: m.cols, data: make([]complex128, len(m.data))}
	copy(c.data, m.data)

	return c
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(rows·cols).
func Add(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, ErrDimensionMismatch
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}

	return out, nil
}

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, ErrDimensionMismatch
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] -= b.data[i]
	}

	return out, nil
}

// Scale returns c·a.
// Errors: ErrNilMatrix.
func Scale(c complex128, a *Dense) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= c
	}

	return out, nil
}

// AddInPlace accumulates b into a (a += b). Used by solver hot loops where
// per-iteration allocation would dominate.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AddInPlace(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}
	for i := range a.data {
		a.data[i] += b.data[i]
	}

	return nil
}

// Mul returns the matrix product a·b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
//
// Complexity: O(n³) for n×n operands; operand sizes here are tiny
// (dA·dB ≤ a few dozen), so a naive triple loop is deliberate.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{rows: a.rows, cols: b.cols, data: make([]complex128, a.rows*b.cols)}

	var (
		i, j, l int
		acc     complex128
	)
	for i = 0; i < a.rows; i++ {
		for j = 0; j < b.cols; j++ {
			acc = 0
			for l = 0; l < a.cols; l++ {
				acc += a.data[i*a.cols+l] * b.data[l*b.cols+j]
			}
			out.data[i*out.cols+j] = acc
		}
	}

	return out, nil
}

// Dagger returns the conjugate transpose a†.
// Errors: ErrNilMatrix.
func Dagger(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	out := &Dense{rows: a.cols, cols: a.rows, data: make([]complex128, len(a.data))}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*out.cols+i] = cmplx.Conj(a.data[i*a.cols+j])
		}
	}

	return out, nil
}

// Kron returns the Kronecker (tensor) product a ⊗ b with the usual ordering
// (a ⊗ b)[p·rb+q, r·cb+s] = a[p,r]·b[q,s].
// Errors: ErrNilMatrix.
//
// Complexity: O(ra·ca·rb·cb).
func Kron(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	out := &Dense{
		rows: a.rows * b.rows,
		cols: a.cols * b.cols,
		data: make([]complex128, a.rows*b.rows*a.cols*b.cols),
	}

	var p, r, q, s int
	for p = 0; p < a.rows; p++ {
		for r = 0; r < a.cols; r++ {
			av := a.data[p*a.cols+r]
			if av == 0 {
				continue
			}
			for q = 0; q < b.rows; q++ {
				for s = 0; s < b.cols; s++ {
					out.data[(p*b.rows+q)*out.cols+(r*b.cols+s)] = av * b.data[q*b.cols+s]
				}
			}
		}
	}

	return out, nil
}

// Trace returns the trace of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(a *Dense) (complex128, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	if a.rows != a.cols {
		return 0, ErrNonSquare
	}
	var t complex128
	for i := 0; i < a.rows; i++ {
		t += a.data[i*a.cols+i]
	}

	return t, nil
}

// PartialTraceFirst traces out the first subsystem of a square matrix on a
// dFirst ⊗ dSecond tensor space, returning the dSecond×dSecond reduction:
//
//	out[j, j'] = Σ_a  m[a·dSecond+j, a·dSecond+j'].
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadSubsystem when
// dFirst·dSecond != m.Rows().
//
// Complexity: O(dFirst·dSecond²).
func PartialTraceFirst(m *Dense, dFirst, dSecond int) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.rows != m.cols {
		return nil, ErrNonSquare
	}
	if dFirst <= 0 || dSecond <= 0 || dFirst*dSecond != m.rows {
		return nil, ErrBadSubsystem
	}
	out := &Dense{rows: dSecond, cols: dSecond, data: make([]complex128, dSecond*dSecond)}

	var a, j, jp int
	for a = 0; a < dFirst; a++ {
		for j = 0; j < dSecond; j++ {
			for jp = 0; jp < dSecond; jp++ {
				out.data[j*dSecond+jp] += m.data[(a*dSecond+j)*m.cols+(a*dSecond+jp)]
			}
		}
	}

	return out, nil
}

// ApproxEqual reports whether a and b have the same shape and agree
// entrywise within eps (in modulus).
func ApproxEqual(a, b *Dense, eps float64) bool {
	if a == nil || b == nil || a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > eps {
			return false
		}
	}

	return true
}

// FrobeniusNorm returns the Frobenius norm of a (0 for nil).
func FrobeniusNorm(a *Dense) float64 {
	if a == nil {
		return 0
	}
	var s float64
	for i := range a.data {
		re, im := real(a.data[i]), imag(a.data[i])
		s += re*re + im*im
	}

	return math.Sqrt(s)
}

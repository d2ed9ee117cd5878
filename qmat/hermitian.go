// SPDX-License-Identifier: MIT
// Package qmat: Hermitian utilities — Hermitian part, Hermiticity check,
// spectrum, minimum eigenvalue and PSD projection.
//
// The spectral routines work through the real symmetric 2d×2d embedding
// R(H) = [[X, −Y], [Y, X]] for H = X + iY and delegate the symmetric
// eigendecomposition to gonum (mat.EigenSym). R(H) carries the spectrum of
// H with multiplicity two, and eigenvalue clipping commutes with the
// embedding, so the PSD projection of H is recovered from the blocks of the
// projected R(H).

package qmat

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// HermitianPart returns (a + a†)/2, absorbing floating-point asymmetry.
// Errors: ErrNilMatrix, ErrNonSquare.
func HermitianPart(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.rows != a.cols {
		return nil, ErrNonSquare
	}
	n := a.rows
	out := &Dense{rows: n, cols: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[i*n+j] = (a.data[i*n+j] + cmplx.Conj(a.data[j*n+i])) / 2
		}
	}

	return out, nil
}

// IsHermitian reports whether a is square and equals its adjoint within eps.
func IsHermitian(a *Dense, eps float64) bool {
	if a == nil || a.rows != a.cols {
		return false
	}
	n := a.rows
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(a.data[i*n+j]-cmplx.Conj(a.data[j*n+i])) > eps {
				return false
			}
		}
	}

	return true
}

// realEmbedding builds the symmetric realification R(H) of a Hermitian H.
// The caller guarantees squareness; Hermiticity noise is absorbed by
// symmetrizing the result entry pairs.
func realEmbedding(h *Dense) *mat.SymDense {
	n := h.rows
	r := mat.NewSymDense(2*n, nil)

	var i, j int
	var re, im float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			// Use the Hermitian average of the (i,j)/(j,i) pair so the
			// embedding is exactly symmetric even for slightly noisy input.
			v := (h.data[i*n+j] + cmplx.Conj(h.data[j*n+i])) / 2
			re, im = real(v), imag(v)
			r.SetSym(i, j, re)
			r.SetSym(i+n, j+n, re)
			// Upper-right block is −Y; SetSym mirrors it to the lower-left.
			r.SetSym(i, j+n, -im)
			if i != j {
				r.SetSym(j, i+n, im)
			}
		}
	}

	return r
}

// EigvalsHermitian returns the spectrum of a Hermitian matrix in ascending
// order (d values for a d×d input; the doubled embedding spectrum is
// deduplicated pairwise).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian (eps policy:
// DefaultEpsilon), ErrEigenFailed.
//
// Complexity: O(d³) via the 2d×2d symmetric eigendecomposition.
func EigvalsHermitian(h *Dense) ([]float64, error) {
	if h == nil {
		return nil, ErrNilMatrix
	}
	if h.rows != h.cols {
		return nil, ErrNonSquare
	}
	if !IsHermitian(h, DefaultEpsilon) {
		return nil, ErrNotHermitian
	}

	var es mat.EigenSym
	if ok := es.Factorize(realEmbedding(h), false); !ok {
		return nil, ErrEigenFailed
	}
	all := es.Values(nil) // ascending, each eigenvalue of h appears twice

	out := make([]float64, h.rows)
	for i := range out {
		out[i] = (all[2*i] + all[2*i+1]) / 2
	}

	return out, nil
}

// MinEigval returns the smallest eigenvalue of a Hermitian matrix.
// Errors: as EigvalsHermitian.
func MinEigval(h *Dense) (float64, error) {
	vals, err := EigvalsHermitian(h)
	if err != nil {
		return 0, err
	}

	return vals[0], nil
}

// IsPSD reports whether h is Hermitian (within eps) with smallest
// eigenvalue ≥ −eps. Non-Hermitian or failing input reports false.
func IsPSD(h *Dense, eps float64) bool {
	if !IsHermitian(h, eps) {
		return false
	}
	// The Hermiticity gate above is looser than EigvalsHermitian's internal
	// DefaultEpsilon gate; re-symmetrize first so the spectrum call cannot
	// reject marginally noisy input.
	sym, err := HermitianPart(h)
	if err != nil {
		return false
	}
	min, err := MinEigval(sym)
	if err != nil {
		return false
	}

	return min >= -eps
}

// PSDProject returns the positive-semidefinite matrix closest to h in
// Frobenius norm: the eigendecomposition of h with negative eigenvalues
// clipped to zero. Input is Hermitian-symmetrized first.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
//
// Complexity: O(d³).
func PSDProject(h *Dense) (*Dense, error) {
	if h == nil {
		return nil, ErrNilMatrix
	}
	if h.rows != h.cols {
		return nil, ErrNonSquare
	}
	n := h.rows

	var es mat.EigenSym
	if ok := es.Factorize(realEmbedding(h), true); !ok {
		return nil, ErrEigenFailed
	}
	vals := es.Values(nil)

	// Fast path: already PSD.
	if vals[0] >= 0 {
		return HermitianPart(h)
	}

	clipped := make([]float64, len(vals))
	for i, v := range vals {
		if v > 0 {
			clipped[i] = v
		}
	}

	var q mat.Dense
	es.VectorsTo(&q)

	var tmp, proj mat.Dense
	tmp.Mul(&q, mat.NewDiagDense(2*n, clipped))
	proj.Mul(&tmp, q.T())

	// Read H' = X' + iY' back off the blocks, averaging the redundant copies.
	out := &Dense{rows: n, cols: n, data: make([]complex128, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			re := (proj.At(i, j) + proj.At(i+n, j+n)) / 2
			im := (proj.At(i+n, j) - proj.At(i, j+n)) / 2
			out.data[i*n+j] = complex(re, im)
		}
	}

	return HermitianPart(out)
}

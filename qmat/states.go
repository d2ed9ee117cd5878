// SPDX-License-Identifier: MIT
// Package qmat: named bipartite states used as entry-point glue by the
// drivers, the tests and the examples. States are fresh allocations; the
// library never mutates a state it is handed.

package qmat

import "math"

// MaximallyMixed returns I/n on an n-dimensional space.
// Errors: ErrBadShape for n <= 0.
func MaximallyMixed(n int) (*Dense, error) {
	id, err := Identity(n)
	if err != nil {
		return nil, err
	}

	return Scale(complex(1/float64(n), 0), id)
}

// MaxEntangled returns the projector onto the canonical maximally entangled
// state |φ⟩ = Σ_i |ii⟩/√d on a d ⊗ d space (a d²×d² density matrix).
// Errors: ErrBadShape for d <= 0.
func MaxEntangled(d int) (*Dense, error) {
	if d <= 0 {
		return nil, ErrBadShape
	}
	amp := complex(1/math.Sqrt(float64(d)), 0)
	psi := &Dense{rows: d * d, cols: 1, data: make([]complex128, d*d)}
	for i := 0; i < d; i++ {
		psi.data[i*d+i] = amp
	}

	return Projector(psi)
}

// Depolarized returns eta·rho + (1−eta)·I/d for a d×d state rho.
// eta is not range-checked beyond finiteness of the arithmetic; the
// physically meaningful range is [0, 1].
//
// Errors: ErrNilMatrix, ErrNonSquare.
func Depolarized(rho *Dense, eta float64) (*Dense, error) {
	if rho == nil {
		return nil, ErrNilMatrix
	}
	if rho.rows != rho.cols {
		return nil, ErrNonSquare
	}
	mixed, err := MaximallyMixed(rho.rows)
	if err != nil {
		return nil, err
	}
	signal, err := Scale(complex(eta, 0), rho)
	if err != nil {
		return nil, err
	}
	noise, err := Scale(complex(1-eta, 0), mixed)
	if err != nil {
		return nil, err
	}

	return Add(signal, noise)
}

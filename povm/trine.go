// Package povm: the trine parameterizer — three-outcome qubit measurements
// with outcomes at 120° Bloch separations.

package povm

import (
	"math"
	"math/cmplx"

	"github.com/jessicabavaresco/steerbounds/qmat"
)

// trineHalfAngle is half the 120° Bloch separation between trine outcomes;
// state-vector rotations act at half the Bloch angle.
const trineHalfAngle = math.Pi / 3

// trineWeight is the outcome weight 2/k for rank-1 trine outcomes (k = 3).
const trineWeight = 2.0 / 3.0

// Trine decodes a parameter vector into n trine measurements.
//
// Each measurement consumes three reals (θ, φ, ψ):
//  1. Build the orthonormal basis
//     ψ1 = ( cos θ,  e^{iφ}·sin θ ),
//     ψ2 = (−e^{−iφ}·sin θ,  cos θ ).
//  2. Form the first two trine directions in that basis,
//     t0 = ψ1,
//     t1 = cos(π/3)·ψ1 + e^{iψ}·sin(π/3)·ψ2,
//     and set M1 = (2/3)|t0⟩⟨t0|, M2 = (2/3)|t1⟩⟨t1|.
//  3. Define M3 = I − M1 − M2. Because t0 and t1 sit 120° apart on the
//     Bloch sphere, M3 is again a weight-2/3 rank-1 operator, so
//     completeness and positivity hold by construction.
//
// Every operator is Hermitian-symmetrized before being returned.
//
// Errors: ErrBadMeasurementCount, ErrParamLength.
//
// Complexity: O(n) small-matrix work.
func Trine(params []float64, n int) (Set, error) {
	if n <= 0 {
		return Set{}, ErrBadMeasurementCount
	}
	if len(params) != TrineParams*n {
		return Set{}, ErrParamLength
	}

	ops := make([][]*qmat.Dense, n)

	var i int
	for i = 0; i < n; i++ {
		theta := params[TrineParams*i]
		phi := params[TrineParams*i+1]
		psi := params[TrineParams*i+2]

		m, err := trineMeasurement(theta, phi, psi)
		if err != nil {
			return Set{}, err
		}
		ops[i] = m
	}

	return Set{N: n, K: 3, Ops: ops}, nil
}

// trineMeasurement builds the three outcome operators of one trine.
func trineMeasurement(theta, phi, psi float64) ([]*qmat.Dense, error) {
	ePhi := cmplx.Exp(complex(0, phi))
	ePsi := cmplx.Exp(complex(0, psi))
	ct, st := complex(math.Cos(theta), 0), complex(math.Sin(theta), 0)

	// Orthonormal basis from θ, φ.
	b1, err := qmat.Ket(ct, ePhi*st)
	if err != nil {
		return nil, err
	}
	b2, err := qmat.Ket(-st/ePhi, ct)
	if err != nil {
		return nil, err
	}

	ch := complex(math.Cos(trineHalfAngle), 0)
	sh := complex(math.Sin(trineHalfAngle), 0)

	// t0 = ψ1, t1 = cos(π/3)·ψ1 + e^{iψ}·sin(π/3)·ψ2.
	t0 := b1
	s1, err := qmat.Scale(ch, b1)
	if err != nil {
		return nil, err
	}
	s2, err := qmat.Scale(ePsi*sh, b2)
	if err != nil {
		return nil, err
	}
	t1, err := qmat.Add(s1, s2)
	if err != nil {
		return nil, err
	}

	m1, err := weightedProjector(t0, trineWeight)
	if err != nil {
		return nil, err
	}
	m2, err := weightedProjector(t1, trineWeight)
	if err != nil {
		return nil, err
	}

	id, err := qmat.Identity(Dim)
	if err != nil {
		return nil, err
	}
	rest, err := qmat.Sub(id, m1)
	if err != nil {
		return nil, err
	}
	rest, err = qmat.Sub(rest, m2)
	if err != nil {
		return nil, err
	}
	m3, err := qmat.HermitianPart(rest)
	if err != nil {
		return nil, err
	}

	return []*qmat.Dense{m1, m2, m3}, nil
}

// weightedProjector returns the Hermitian part of w·|t⟩⟨t|.
func weightedProjector(t *qmat.Dense, w float64) (*qmat.Dense, error) {
	p, err := qmat.Projector(t)
	if err != nil {
		return nil, err
	}
	p, err = qmat.Scale(complex(w, 0), p)
	if err != nil {
		return nil, err
	}

	return qmat.HermitianPart(p)
}

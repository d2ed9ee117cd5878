// SPDX-License-Identifier: MIT
// Package qmat: Pauli operators and Bloch-vector helpers for the qubit
// (measured) side. dA is fixed to 2 throughout the module.

package qmat

// QubitDim is the dimension of the measured (steering) party.
const QubitDim = 2

// PauliX returns the σx operator.
func PauliX() *Dense {
	return &Dense{rows: 2, cols: 2, data: []complex128{0, 1, 1, 0}}
}

// PauliY returns the σy operator.
func PauliY() *Dense {
	return &Dense{rows: 2, cols: 2, data: []complex128{0, complex(0, -1), complex(0, 1), 0}}
}

// PauliZ returns the σz operator.
func PauliZ() *Dense {
	return &Dense{rows: 2, cols: 2, data: []complex128{1, 0, 0, -1}}
}

// BlochOperator returns v·σ = vx·σx + vy·σy + vz·σz for a real vector v.
// The vector need not be normalized; callers constructing measurement
// operators from super-normalized polytope vertices rely on that.
func BlochOperator(vx, vy, vz float64) *Dense {
	return &Dense{rows: 2, cols: 2, data: []complex128{
		complex(vz, 0), complex(vx, -vy),
		complex(vx, vy), complex(-vz, 0),
	}}
}

// Ket constructs a column vector (d×1) from amplitudes.
// Errors: ErrBadShape on an empty amplitude list.
func Ket(amps ...complex128) (*Dense, error) {
	if len(amps) == 0 {
		return nil, ErrBadShape
	}
	d := make([]complex128, len(amps))
	copy(d, amps)

	return &Dense{rows: len(amps), cols: 1, data: d}, nil
}

// Projector returns |ψ⟩⟨ψ| for a column vector ψ.
// Errors: ErrNilMatrix, ErrBadShape when ψ is not a column vector.
func Projector(psi *Dense) (*Dense, error) {
	if psi == nil {
		return nil, ErrNilMatrix
	}
	if psi.cols != 1 {
		return nil, ErrBadShape
	}
	dag, err := Dagger(psi)
	if err != nil {
		return nil, err
	}

	return Mul(psi, dag)
}

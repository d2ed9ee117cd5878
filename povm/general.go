// Package povm: the general-POVM parameterizer — fully general k-outcome
// qubit measurements decoded from Bloch vectors and weights.

package povm

import (
	"math"

	"github.com/jessicabavaresco/steerbounds/qmat"
)

// degenerateNorm is the threshold below which a decoded Bloch vector is
// treated as zero (its outcome operator vanishes).
const degenerateNorm = 1e-12

// General decodes a parameter vector into n general k-outcome measurements.
//
// Each measurement consumes 3·(k−1) reals: k−1 free Bloch vectors, each
// component mapped affinely from [0,1] to [−1,1]. The k-th vector is
// determined as minus the sum of the free ones, which forces the weighted
// Bloch sum to zero — the completeness requirement on a qubit. Outcome j
// receives weight w_j = 2·‖v_j‖ / Σ‖v_i‖ and operator
//
//	M_j = (w_j/2)·(I + (v_j/‖v_j‖)·σ),
//
// so Σ_j M_j = I holds identically and every M_j is PSD. A vector of
// negligible norm contributes a zero operator; if all k vectors vanish the
// decoding is rejected with ErrDegenerateBloch.
//
// Errors: ErrBadMeasurementCount, ErrBadOutcomeCount, ErrParamLength,
// ErrDegenerateBloch.
//
// Complexity: O(n·k) small-matrix work.
func General(params []float64, n, k int) (Set, error) {
	if n <= 0 {
		return Set{}, ErrBadMeasurementCount
	}
	if k < 2 {
		return Set{}, ErrBadOutcomeCount
	}
	per := blochDim * (k - 1)
	if len(params) != per*n {
		return Set{}, ErrParamLength
	}

	ops := make([][]*qmat.Dense, n)

	var i int
	for i = 0; i < n; i++ {
		m, err := generalMeasurement(params[per*i:per*(i+1)], k)
		if err != nil {
			return Set{}, err
		}
		ops[i] = m
	}

	return Set{N: n, K: k, Ops: ops}, nil
}

// generalMeasurement decodes one measurement from its 3·(k−1) parameters.
func generalMeasurement(params []float64, k int) ([]*qmat.Dense, error) {
	vecs := make([][3]float64, k)

	var j, c int
	for j = 0; j < k-1; j++ {
		for c = 0; c < blochDim; c++ {
			// Affine map [0,1] → [−1,1]; out-of-range parameters simply land
			// outside the ball and are handled by the norm-weighting below.
			vecs[j][c] = 2*params[blochDim*j+c] - 1
			vecs[k-1][c] -= vecs[j][c]
		}
	}

	var total float64
	norms := make([]float64, k)
	for j = 0; j < k; j++ {
		norms[j] = math.Sqrt(vecs[j][0]*vecs[j][0] + vecs[j][1]*vecs[j][1] + vecs[j][2]*vecs[j][2])
		total += norms[j]
	}
	if total < degenerateNorm {
		return nil, ErrDegenerateBloch
	}

	id, err := qmat.Identity(Dim)
	if err != nil {
		return nil, err
	}

	out := make([]*qmat.Dense, k)
	for j = 0; j < k; j++ {
		if norms[j] < degenerateNorm {
			// Zero-weight outcome: clamp to the zero operator instead of
			// dividing by a vanishing norm.
			z, zerr := qmat.Zeros(Dim, Dim)
			if zerr != nil {
				return nil, zerr
			}
			out[j] = z

			continue
		}

		weight := 2 * norms[j] / total
		// (w/2)·(I + u·σ) with u the unit vector along v_j. Writing it as
		// (1/total)·(‖v‖·I + v·σ) avoids the explicit normalization.
		dir := qmat.BlochOperator(vecs[j][0], vecs[j][1], vecs[j][2])
		base, berr := qmat.Scale(complex(norms[j], 0), id)
		if berr != nil {
			return nil, berr
		}
		op, aerr := qmat.Add(base, dir)
		if aerr != nil {
			return nil, aerr
		}
		op, serr := qmat.Scale(complex(weight/(2*norms[j]), 0), op)
		if serr != nil {
			return nil, serr
		}
		op, herr := qmat.HermitianPart(op)
		if herr != nil {
			return nil, herr
		}
		out[j] = op
	}

	return out, nil
}

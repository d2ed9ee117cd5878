// Package povm: projective 2-outcome construction from planar Bloch
// directions, consumed by the polytope enumeration driver.

package povm

import "github.com/jessicabavaresco/steerbounds/qmat"

// Projective builds one 2-outcome measurement per planar direction:
//
//	M± = (I ± v·σ)/2,  v = (x, 0, z) in the Bloch x–z plane.
//
// Directions are not normalized: the polytope driver deliberately passes
// circumscribed-polygon vertices with norm > 1, whose "measurements" are
// slightly non-positive yet still define valid oracle targets. Callers that
// need physical POVMs should Validate the result.
//
// The two outcomes of a direction and of its antipode differ only by the
// outcome relabeling, which the oracle is invariant under.
//
// Errors: ErrEmptySet on an empty direction list.
func Projective(dirs [][2]float64) (Set, error) {
	if len(dirs) == 0 {
		return Set{}, ErrEmptySet
	}

	id, err := qmat.Identity(Dim)
	if err != nil {
		return Set{}, err
	}

	ops := make([][]*qmat.Dense, len(dirs))
	for i, d := range dirs {
		bloch := qmat.BlochOperator(d[0], 0, d[1])

		plus, aerr := qmat.Add(id, bloch)
		if aerr != nil {
			return Set{}, aerr
		}
		plus, aerr = qmat.Scale(0.5, plus)
		if aerr != nil {
			return Set{}, aerr
		}
		plus, aerr = qmat.HermitianPart(plus)
		if aerr != nil {
			return Set{}, aerr
		}

		minus, serr := qmat.Sub(id, bloch)
		if serr != nil {
			return Set{}, serr
		}
		minus, serr = qmat.Scale(0.5, minus)
		if serr != nil {
			return Set{}, serr
		}
		minus, serr = qmat.HermitianPart(minus)
		if serr != nil {
			return Set{}, serr
		}

		ops[i] = []*qmat.Dense{plus, minus}
	}

	return Set{N: len(dirs), K: 2, Ops: ops}, nil
}

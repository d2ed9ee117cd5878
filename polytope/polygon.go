// Package polytope: polygon vertex enumeration in the Bloch x–z plane.

package polytope

import "math"

// PolygonVertices returns the vertices of the regular polygon circumscribing
// the unit circle with num support halfspaces u_t·x ≤ 1,
// u_t = (cos 2πt/num, sin 2πt/num). Vertex t is the intersection of the
// support lines t and t+1; every vertex has norm 1/cos(π/num), which tends
// to 1 as the polygon resolves the circle.
//
// Errors: ErrTooFewSupports for num < 3.
//
// Complexity: O(num).
func PolygonVertices(num int) ([][2]float64, error) {
	if num < 3 {
		return nil, ErrTooFewSupports
	}

	dirs := make([][2]float64, num)
	for t := 0; t < num; t++ {
		a := 2 * math.Pi * float64(t) / float64(num)
		dirs[t] = [2]float64{math.Cos(a), math.Sin(a)}
	}

	verts := make([][2]float64, num)
	for t := 0; t < num; t++ {
		u, v := dirs[t], dirs[(t+1)%num]

		// Solve u·x = 1, v·x = 1 by Cramer's rule. Adjacent support
		// directions of a polygon with num ≥ 3 are never parallel.
		det := u[0]*v[1] - u[1]*v[0]
		verts[t] = [2]float64{(v[1] - u[1]) / det, (u[0] - v[0]) / det}
	}

	return verts, nil
}

// DedupAntipodal retains one vertex of each antipodal pair {v, −v}, keeping
// the earlier one in enumeration order. Vertices without an antipodal
// partner (odd polygons) are all retained.
//
// Complexity: O(n²) with tiny n; no tolerance knob is exposed, matching is
// within antipodalEps.
func DedupAntipodal(verts [][2]float64) [][2]float64 {
	out := make([][2]float64, 0, len(verts))
	for i, v := range verts {
		mirrored := false
		for j := 0; j < i; j++ {
			w := verts[j]
			if math.Abs(v[0]+w[0]) < antipodalEps && math.Abs(v[1]+w[1]) < antipodalEps {
				mirrored = true

				break
			}
		}
		if !mirrored {
			out = append(out, v)
		}
	}

	return out
}

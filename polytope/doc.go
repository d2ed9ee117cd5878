// Package polytope - certified visibility bounds from polygon enumeration.
//
// # What
//
// polytope bounds the critical visibility over ALL projective qubit
// measurements in the Bloch x–z plane, not just a finite sample: it
// circumscribes the unit circle with a regular polygon of NumVertices
// support halfspaces, so every planar measurement direction is a convex
// mixture of the polygon's (super-normalized) vertices. Running the LHS
// oracle on every size-Measurements combination of distinct vertices and
// taking the minimum yields a bound that holds for the whole continuum.
//
// # How
//
//   - PolygonVertices intersects adjacent support lines u_t·x = 1 at angles
//     2πt/NumVertices; every vertex has norm 1/cos(π/NumVertices).
//   - DedupAntipodal drops one vertex of each antipodal pair; ±v generate
//     the same two-outcome measurement up to relabeling, which the oracle
//     is invariant under.
//   - Bound enumerates combinations (gonum stat/combin) and evaluates the
//     oracle concurrently on an errgroup with a Workers limit. Each
//     evaluation is an atomic unit; cancellation is honored between
//     evaluations, and OnProgress reports (done, total, best) after each.
//
// Determinism: the enumeration order is fixed; the minimum and its
// attaining directions do not depend on worker scheduling.
package polytope

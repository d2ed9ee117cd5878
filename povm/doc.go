// Package povm maps real parameter vectors to physically valid sets of
// qubit measurements (POVMs), the way an outer search driver consumes them.
//
// Two parameterized families are provided, both pure functions of the
// parameter vector:
//
//   - Trine: three-outcome measurements with outcomes at 120° Bloch
//     separations. Three reals (θ, φ, ψ) per measurement: θ and φ fix an
//     orthonormal qubit basis, ψ adds a relative phase orienting the trine
//     plane. The third outcome is defined as I − M1 − M2, so completeness
//     holds by construction.
//
//   - General: fully general k-outcome POVMs. 3·(k−1) reals per measurement
//     decode into k−1 free Bloch vectors plus one determined vector forcing
//     the weighted Bloch sum to zero — required for completeness on a qubit.
//     Outcome weights derive from the vector norms, normalized so the
//     operators sum to identity.
//
// A third constructor, Projective, builds 2-outcome projective sets
// (I ± v·σ)/2 from planar Bloch directions; the polytope enumeration driver
// feeds it circumscribed-polygon vertices, which may carry norm > 1.
//
// Every constructed operator is Hermitian-symmetrized to absorb
// floating-point asymmetry. Malformed parameter-vector lengths fail fast
// with ErrParamLength; degenerate (all-zero) Bloch decodings fail with
// ErrDegenerateBloch rather than dividing by zero.
package povm

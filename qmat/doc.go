// SPDX-License-Identifier: MIT

// Package qmat provides the small complex linear-algebra kernel the steering
// bounds need: dense complex128 matrices with the usual operator algebra
// (product, adjoint, Kronecker product, partial trace), Hermitian utilities
// (Hermitian part, spectrum, PSD projection), Pauli operators, and the named
// states used as entry-point glue (maximally entangled, maximally mixed,
// depolarized).
//
// Hermitian spectral work is delegated to gonum's real symmetric
// eigendecomposition through the standard 2d×2d realification
//
//	H = X + iY  ⇒  R(H) = ⎡X −Y⎤
//	                      ⎣Y  X⎦
//
// which is symmetric exactly when H is Hermitian and carries H's spectrum
// with multiplicity two. Spectral functions of R(H) (eigenvalue clipping in
// particular) commute with the embedding, so PSD projection of H is read
// back off the blocks of the projected R(H).
//
// Design rules, shared with the rest of the module:
//   - No panics on user-triggered conditions; strict sentinel errors only.
//   - No hidden global state; every operation allocates its own result.
//   - Numeric policy is explicit: DefaultEpsilon governs structural checks.
package qmat

// Package steerbounds computes bounds on the critical visibility of a
// bipartite quantum state under local qubit measurements — the largest
// white-noise fraction the state tolerates while the assemblage it
// generates still admits a local-hidden-state (LHS) explanation.
//
// 🚀 What is steerbounds?
//
//	A deterministic, pure-Go library that brings together:
//		• Measurement parameterization: trine and general qubit POVM families
//		• An LHS visibility oracle: a per-call SDP over deterministic strategies
//		• A continuous search driver: derivative-free Nelder–Mead over
//		  measurement parameters (upper bounds from achieved candidates)
//		• A polytope enumeration driver: combinatorial lower bounds from
//		  circumscribed planar measurement polytopes
//
// ✨ Why choose steerbounds?
//
//   - Stateless oracle – every solve owns its variables; safe to run in parallel
//   - Rock-solid determinism – seeded RNG policy, no time-based sources
//   - Strict sentinels – every failure mode is a documented errors.Is target
//   - Extensible – plug your own SDP backend behind the lhs.Backend interface
//
// Under the hood, everything is organized in five subpackages:
//
//	qmat/     — complex dense matrices, Hermitian/eigen/PSD primitives
//	povm/     — measurement parameterizers (trine, general POVM, projective)
//	lhs/      — the LHS visibility oracle and its SDP backend
//	search/   — continuous local search over measurement parameters
//	polytope/ — planar polytope enumeration for certified lower bounds
//
// Data flows leaves-first: a parameterizer turns a real vector into a
// measurement set, the oracle turns (state, set) into one scalar visibility,
// and a driver loops back to produce the next candidate.
//
//	go get github.com/jessicabavaresco/steerbounds
package steerbounds

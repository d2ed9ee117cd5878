// SPDX-License-Identifier: MIT
// Package lhs: the built-in SDP backend.
//
// The LHS program is linear in (η, σ): for fixed η it is a convex
// feasibility problem — find σ_l ⪰ 0 with A·σ = b(η), where A is the
// strategy-incidence map (each constraint row (i, j) sums the σ_l whose
// strategy assigns outcome j to measurement i). The backend bisects on η:
// η = 0 is always feasible (the product of outcome distributions times the
// maximally mixed state satisfies every constraint), so the certified
// feasible endpoint of the bisection is the returned visibility.
//
// Each fixed-η decision alternates projections between the two sets:
//
//   - Affine set: σ ← σ + Aᵀ·G⁺·(b − A·σ), where G = A·Aᵀ is the Gram
//     matrix of the constraint rows. G has the closed form
//     G[(i,j),(i',j')] = K^{N−1}·δ_{jj'} for i = i' and K^{N−2} otherwise,
//     is identical across matrix entries, and is tiny (NK×NK), so its
//     pseudo-inverse is computed once per Solve (it is rank-deficient: the
//     per-measurement rows sum to the same total, so G⁺ not G⁻¹).
//
//   - PSD cone: spectral clipping of each σ_l (qmat.PSDProject).
//
// Feasibility is declared when the affine residual of the PSD iterate drops
// below FeasTol; exhausting MaxProjIter classifies the η as infeasible,
// which biases the bisection toward the certified side (the reported η is
// never above the width-BisectTol bracket around the true threshold).

package lhs

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jessicabavaresco/steerbounds/qmat"
)

// pinvCutoff is the relative eigenvalue threshold below which Gram spectrum
// components are treated as exact zeros in the pseudo-inverse.
const pinvCutoff = 1e-12

// projectionBackend is the default Backend. One value per Solve invocation;
// it holds tolerances only, all problem state lives on the stack of Solve.
type projectionBackend struct {
	bisectTol float64
	feasTol   float64
	maxIter   int
}

// newProjectionBackend builds the default backend from oracle options.
func newProjectionBackend(o Options) *projectionBackend {
	return &projectionBackend{
		bisectTol: o.BisectTol,
		feasTol:   o.FeasTol,
		maxIter:   o.MaxProjIter,
	}
}

// Solve runs the bisection. See the package comment of this file.
func (b *projectionBackend) Solve(p *Program) (float64, error) {
	ws, err := newWorkspace(p)
	if err != nil {
		return 0, err
	}

	// Full visibility first: maximally mixed and single-measurement programs
	// terminate here without touching the bisection.
	top := ws.freshVars()
	if b.feasible(ws, 1, top) {
		return 1, nil
	}

	// η = 0 must be feasible for any valid program; anything else is a
	// numerical breakdown, reported as such rather than as visibility 0.
	warm := ws.freshVars()
	if !b.feasible(ws, 0, warm) {
		return 0, ErrSolverFailure
	}

	lo, hi := 0.0, 1.0
	for hi-lo > b.bisectTol {
		mid := (lo + hi) / 2
		trial := cloneVars(warm)
		if b.feasible(ws, mid, trial) {
			lo, warm = mid, trial
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// feasible decides the fixed-η problem, mutating sig toward the
// intersection. sig enters PSD and leaves PSD.
func (b *projectionBackend) feasible(ws *workspace, eta float64, sig []*qmat.Dense) bool {
	targets, err := ws.depolarized(eta)
	if err != nil {
		return false
	}

	for iter := 0; iter < b.maxIter; iter++ {
		viol, perr := ws.affineStep(sig, targets)
		if perr != nil {
			return false
		}
		if viol < b.feasTol {
			return true
		}
		if perr = ws.psdStep(sig); perr != nil {
			return false
		}
	}

	return false
}

// workspace holds per-Solve precomputation: the Gram pseudo-inverse and the
// constraint-row indexing.
type workspace struct {
	p    *Program
	pinv *mat.Dense // (N·K)×(N·K)
	idB  *qmat.Dense
}

func newWorkspace(p *Program) (*workspace, error) {
	idB, err := qmat.Identity(p.DimB)
	if err != nil {
		return nil, err
	}
	pinv, err := gramPinv(p.Strat)
	if err != nil {
		return nil, err
	}

	return &workspace{p: p, pinv: pinv, idB: idB}, nil
}

// gramPinv builds the pseudo-inverse of the strategy-incidence Gram matrix.
func gramPinv(s Strategies) (*mat.Dense, error) {
	n, k := s.Measurements(), s.Outcomes()
	nk := n * k

	// Row counts: K^{N-1} strategies fix one digit, K^{N-2} fix two digits
	// on distinct measurements.
	perOne := float64(s.Count()) / float64(k)
	var perTwo float64
	if n > 1 {
		perTwo = float64(s.Count()) / float64(k*k)
	}

	g := mat.NewSymDense(nk, nil)
	var i, j, ip, jp int
	for i = 0; i < n; i++ {
		for j = 0; j < k; j++ {
			r := i*k + j
			g.SetSym(r, r, perOne)
			for ip = i; ip < n; ip++ {
				for jp = 0; jp < k; jp++ {
					rp := ip*k + jp
					if rp <= r {
						continue
					}
					if ip == i {
						continue // distinct outcomes of one measurement never co-occur
					}
					g.SetSym(r, rp, perTwo)
				}
			}
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(g, true); !ok {
		return nil, ErrSolverFailure
	}
	vals := es.Values(nil)
	cut := pinvCutoff * vals[len(vals)-1]

	inv := make([]float64, nk)
	for idx, v := range vals {
		if v > cut {
			inv[idx] = 1 / v
		}
	}

	var q mat.Dense
	es.VectorsTo(&q)

	var tmp, pinv mat.Dense
	tmp.Mul(&q, mat.NewDiagDense(nk, inv))
	pinv.Mul(&tmp, q.T())

	return &pinv, nil
}

// freshVars returns the maximally mixed starting point: σ_l = I/(dB·K^N),
// whose total trace matches the unit-trace reduced state.
func (ws *workspace) freshVars() []*qmat.Dense {
	count := ws.p.Strat.Count()
	scale := complex(1/float64(ws.p.DimB*count), 0)

	sig := make([]*qmat.Dense, count)
	for l := range sig {
		s, _ := qmat.Scale(scale, ws.idB)
		sig[l] = s
	}

	return sig
}

// cloneVars deep-copies a variable set so warm starts survive failed trials.
func cloneVars(sig []*qmat.Dense) []*qmat.Dense {
	out := make([]*qmat.Dense, len(sig))
	for l := range sig {
		out[l] = sig[l].Clone()
	}

	return out
}

// depolarized builds b(η): B[i][j] = η·F[i][j] + ((1−η)/dB)·w[i][j]·I.
func (ws *workspace) depolarized(eta float64) ([]*qmat.Dense, error) {
	n, k := ws.p.Strat.Measurements(), ws.p.Strat.Outcomes()
	out := make([]*qmat.Dense, n*k)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < k; j++ {
			signal, err := qmat.Scale(complex(eta, 0), ws.p.Targets[i][j])
			if err != nil {
				return nil, err
			}
			noise, err := qmat.Scale(complex((1-eta)*ws.p.Weights[i][j]/float64(ws.p.DimB), 0), ws.idB)
			if err != nil {
				return nil, err
			}
			b, err := qmat.Add(signal, noise)
			if err != nil {
				return nil, err
			}
			out[i*k+j] = b
		}
	}

	return out, nil
}

// affineStep projects sig onto the affine constraint set in place and
// returns the pre-projection residual norm (the constraint violation of the
// incoming, PSD, iterate).
func (ws *workspace) affineStep(sig []*qmat.Dense, targets []*qmat.Dense) (float64, error) {
	n, k := ws.p.Strat.Measurements(), ws.p.Strat.Outcomes()
	nk := n * k
	count := ws.p.Strat.Count()

	// Residuals R_r = B_r − Σ_{l ∈ S_r} σ_l.
	res := make([]*qmat.Dense, nk)
	for r := 0; r < nk; r++ {
		res[r] = targets[r].Clone()
	}

	var l, i int
	for l = 0; l < count; l++ {
		for i = 0; i < n; i++ {
			r := i*k + ws.p.Strat.Outcome(i, l)
			neg, err := qmat.Scale(-1, sig[l])
			if err != nil {
				return 0, err
			}
			if err = qmat.AddInPlace(res[r], neg); err != nil {
				return 0, err
			}
		}
	}

	var viol float64
	for r := 0; r < nk; r++ {
		f := qmat.FrobeniusNorm(res[r])
		viol += f * f
	}
	viol = math.Sqrt(viol)

	// Mix residuals through G⁺: C_r = Σ_s G⁺[r][s]·R_s.
	corr := make([]*qmat.Dense, nk)
	for r := 0; r < nk; r++ {
		c, err := qmat.Zeros(ws.p.DimB, ws.p.DimB)
		if err != nil {
			return 0, err
		}
		for s := 0; s < nk; s++ {
			w := ws.pinv.At(r, s)
			if w == 0 {
				continue
			}
			scaled, serr := qmat.Scale(complex(w, 0), res[s])
			if serr != nil {
				return 0, serr
			}
			if serr = qmat.AddInPlace(c, scaled); serr != nil {
				return 0, serr
			}
		}
		corr[r] = c
	}

	// Distribute: σ_l += Σ_{r ∈ rows(l)} C_r.
	for l = 0; l < count; l++ {
		for i = 0; i < n; i++ {
			r := i*k + ws.p.Strat.Outcome(i, l)
			if err := qmat.AddInPlace(sig[l], corr[r]); err != nil {
				return 0, err
			}
		}
	}

	return viol, nil
}

// psdStep clips every variable onto the PSD cone in place.
func (ws *workspace) psdStep(sig []*qmat.Dense) error {
	for l := range sig {
		p, err := qmat.PSDProject(sig[l])
		if err != nil {
			return err
		}
		sig[l] = p
	}

	return nil
}

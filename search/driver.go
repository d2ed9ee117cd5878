// Package search: the Nelder–Mead driver.

package search

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/optimize"

	"github.com/jessicabavaresco/steerbounds/lhs"
	"github.com/jessicabavaresco/steerbounds/povm"
	"github.com/jessicabavaresco/steerbounds/qmat"
)

// penaltyEta is the objective value assigned to parameter vectors the
// oracle cannot score (degenerate decodings, solver breakdown). It sits
// above every physical visibility, so the simplex contracts away from
// failing regions; it is finite because the optimizer rejects Inf/NaN
// objective values.
const penaltyEta = 2.0

// Minimize searches the configured measurement family for the set with the
// lowest critical visibility on the state rho.
//
// The initial parameter vector is drawn from the seeded RNG; the optimizer
// then runs single-threaded until the objective stabilizes (FuncTol over
// ConvergeIters iterations, StatusConverged) or a cap is exhausted
// (StatusCapReached). Either way the returned Result carries the best
// candidate scored along the trajectory, so a capped run is still a valid
// upper bound.
//
// Errors: ErrBadFamily and ErrBadOptions on invalid options, the oracle's
// ErrState* family on an invalid state, ErrNoCandidate (wrapping the first
// oracle failure) when no vector could be scored at all.
//
// Complexity: at most MaxEvaluations oracle solves; each solve is
// exponential in Measurements (see lhs.CriticalVisibility).
func Minimize(rho *qmat.Dense, opts Options) (Result, error) {
	o := withDefaults(opts)
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	// Validate the state once up front: a bad state would otherwise
	// surface as a uniform penalty landscape, not as an error. The probe
	// solve is a single measurement, which terminates at full visibility
	// immediately; default oracle options keep it independent of caller
	// caps.
	if _, err := lhs.CriticalVisibility(rho, probeSet(), nil); err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(o.Seed)
	x0 := initialVector(rng, o)

	var (
		evals    int
		bestEta  = math.Inf(1)
		bestX    []float64
		firstErr error
	)

	objective := func(x []float64) float64 {
		evals++
		params := effectiveParams(x, o)
		set, err := decode(params, o)
		if err == nil {
			var eta float64
			eta, err = lhs.CriticalVisibility(rho, set, o.Oracle)
			if err == nil {
				if eta < bestEta {
					bestEta = eta
					bestX = params
				}

				return eta
			}
		}
		if firstErr == nil {
			firstErr = err
		}

		return penaltyEta
	}

	problem := optimize.Problem{Func: objective}
	settings := optimize.Settings{
		MajorIterations: o.MaxIterations,
		FuncEvaluations: o.MaxEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   o.FuncTol,
			Iterations: o.ConvergeIters,
		},
	}

	res, err := optimize.Minimize(problem, x0, &settings, &optimize.NelderMead{})
	if err != nil {
		return Result{}, fmt.Errorf("search: optimizer: %w", err)
	}
	if bestX == nil {
		return Result{}, fmt.Errorf("%w: %w", ErrNoCandidate, firstErr)
	}

	set, err := decode(bestX, o)
	if err != nil {
		return Result{}, err
	}

	status := StatusCapReached
	if res.Status == optimize.FunctionConvergence {
		status = StatusConverged
	}

	return Result{
		Visibility:   bestEta,
		Params:       bestX,
		Measurements: set,
		Status:       status,
		Evaluations:  evals,
	}, nil
}

// paramCount returns the dimension of the family's parameter vector.
func paramCount(o Options) int {
	if o.Family == FamilyTrine {
		return povm.TrineParams * o.Measurements
	}

	return 3 * (o.Outcomes - 1) * o.Measurements
}

// initialVector draws the starting point: U[0, π] per trine angle,
// U[0, 1] per general-POVM coordinate.
func initialVector(rng *rand.Rand, o Options) []float64 {
	x := make([]float64, paramCount(o))
	hi := 1.0
	if o.Family == FamilyTrine {
		hi = math.Pi
	}
	for i := range x {
		x[i] = hi * rng.Float64()
	}

	return x
}

// effectiveParams maps an optimizer point into the family's domain: trine
// angles pass through (they are periodic), general coordinates clamp to
// [0, 1]. The returned slice is a copy; the optimizer's point is never
// retained.
func effectiveParams(x []float64, o Options) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	if o.Family == FamilyGeneral {
		for i, v := range out {
			out[i] = math.Max(0, math.Min(1, v))
		}
	}

	return out
}

// decode builds the measurement set at a domain point.
func decode(params []float64, o Options) (povm.Set, error) {
	if o.Family == FamilyTrine {
		return povm.Trine(params, o.Measurements)
	}

	return povm.General(params, o.Measurements, o.Outcomes)
}

// probeSet is a fixed single trine measurement used only to validate the
// state before the optimizer starts.
func probeSet() povm.Set {
	set, _ := povm.Trine([]float64{0, 0, 0}, 1)

	return set
}

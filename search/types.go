// Package search: families, statuses, options, results, sentinel errors.

package search

import (
	"errors"

	"github.com/jessicabavaresco/steerbounds/lhs"
	"github.com/jessicabavaresco/steerbounds/povm"
)

// Family selects the measurement parameterization the driver searches over.
type Family int

const (
	// FamilyTrine searches 3-outcome planar trine measurements,
	// povm.TrineParams reals per measurement.
	FamilyTrine Family = iota

	// FamilyGeneral searches unconstrained K-outcome qubit POVMs,
	// 3·(K−1) reals per measurement, coordinates clamped to [0, 1].
	FamilyGeneral
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case FamilyTrine:
		return "trine"
	case FamilyGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// Status reports how a Minimize run terminated.
type Status int

const (
	// StatusConverged: the objective stabilized within FuncTol over
	// ConvergeIters consecutive iterations.
	StatusConverged Status = iota

	// StatusCapReached: MaxIterations or MaxEvaluations was exhausted
	// before stabilization. The reported visibility is still the best
	// certified candidate found.
	StatusCapReached
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusCapReached:
		return "cap-reached"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by the driver.
var (
	// ErrBadFamily indicates an unknown Family value.
	ErrBadFamily = errors.New("search: unknown measurement family")

	// ErrBadOptions indicates a non-positive count, tolerance or cap.
	ErrBadOptions = errors.New("search: invalid options")

	// ErrNoCandidate indicates that no parameter vector decoded into a set
	// the oracle could score; the underlying cause is wrapped alongside.
	ErrNoCandidate = errors.New("search: no scorable candidate found")
)

// Defaults; see Options.
const (
	// DefaultMeasurements is the number of measurements in the searched set.
	DefaultMeasurements = 2

	// DefaultOutcomes is the outcome count for FamilyGeneral
	// (FamilyTrine is fixed at 3).
	DefaultOutcomes = 2

	// DefaultFuncTol is the absolute objective stabilization tolerance.
	DefaultFuncTol = 1e-5

	// DefaultConvergeIters is the number of consecutive stabilized
	// iterations required to declare convergence.
	DefaultConvergeIters = 30

	// DefaultMaxIterations caps optimizer major iterations.
	DefaultMaxIterations = 1000

	// DefaultMaxEvaluations caps objective evaluations (each one oracle
	// solve).
	DefaultMaxEvaluations = 2000
)

// Options configures one Minimize run.
//
// Family         – measurement parameterization (default FamilyTrine).
// Measurements   – number of measurements N (> 0).
// Outcomes       – outcomes K for FamilyGeneral (≥ 2; ignored for trine).
// Seed           – RNG seed; 0 selects the fixed default stream.
// FuncTol        – absolute objective stabilization tolerance (> 0).
// ConvergeIters  – consecutive stabilized iterations for convergence (> 0).
// MaxIterations  – optimizer iteration cap (> 0).
// MaxEvaluations – objective evaluation cap (> 0).
// Oracle         – oracle options forwarded per evaluation; nil ⇒ defaults.
type Options struct {
	Family         Family
	Measurements   int
	Outcomes       int
	Seed           int64
	FuncTol        float64
	ConvergeIters  int
	MaxIterations  int
	MaxEvaluations int
	Oracle         *lhs.Options
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Family:         FamilyTrine,
		Measurements:   DefaultMeasurements,
		Outcomes:       DefaultOutcomes,
		FuncTol:        DefaultFuncTol,
		ConvergeIters:  DefaultConvergeIters,
		MaxIterations:  DefaultMaxIterations,
		MaxEvaluations: DefaultMaxEvaluations,
	}
}

// withDefaults fills zero-valued fields so callers may set only what they
// care about.
func withDefaults(o Options) Options {
	d := DefaultOptions()
	if o.Measurements == 0 {
		o.Measurements = d.Measurements
	}
	if o.Outcomes == 0 {
		o.Outcomes = d.Outcomes
	}
	if o.FuncTol == 0 {
		o.FuncTol = d.FuncTol
	}
	if o.ConvergeIters == 0 {
		o.ConvergeIters = d.ConvergeIters
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = d.MaxIterations
	}
	if o.MaxEvaluations == 0 {
		o.MaxEvaluations = d.MaxEvaluations
	}

	return o
}

// validate rejects unknown families and non-positive knobs.
func (o Options) validate() error {
	if o.Family != FamilyTrine && o.Family != FamilyGeneral {
		return ErrBadFamily
	}
	if o.Measurements <= 0 {
		return ErrBadOptions
	}
	if o.Family == FamilyGeneral && o.Outcomes < 2 {
		return ErrBadOptions
	}
	if o.FuncTol <= 0 || o.ConvergeIters <= 0 || o.MaxIterations <= 0 || o.MaxEvaluations <= 0 {
		return ErrBadOptions
	}

	return nil
}

// Result is the outcome of one Minimize run.
type Result struct {
	// Visibility is the best (lowest) critical visibility found.
	Visibility float64

	// Params is the parameter vector attaining Visibility (clamped into
	// the family's domain for FamilyGeneral).
	Params []float64

	// Measurements is the decoded measurement set at Params.
	Measurements povm.Set

	// Status distinguishes convergence from cap exhaustion.
	Status Status

	// Evaluations counts objective evaluations (= oracle solves).
	Evaluations int
}

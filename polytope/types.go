// Package polytope: sentinel errors, options, results.

package polytope

import (
	"errors"
	"runtime"

	"github.com/jessicabavaresco/steerbounds/lhs"
)

// Sentinel errors returned by the driver.
var (
	// ErrTooFewSupports indicates fewer than 3 support directions; no
	// bounded polygon exists below a triangle.
	ErrTooFewSupports = errors.New("polytope: need at least 3 support directions")

	// ErrTooFewVertices indicates fewer retained vertices than the
	// requested combination size.
	ErrTooFewVertices = errors.New("polytope: fewer retained vertices than measurements per combination")

	// ErrBadOptions indicates a non-positive combination size or a
	// negative worker count.
	ErrBadOptions = errors.New("polytope: invalid options")
)

// Defaults; see Options.
const (
	// DefaultNumVertices is the polygon resolution. 12 supports retain 6
	// vertices after antipodal dedup.
	DefaultNumVertices = 12

	// DefaultMeasurements is the combination size handed to the oracle.
	DefaultMeasurements = 5

	// antipodalEps is the matching tolerance of DedupAntipodal.
	antipodalEps = 1e-9
)

// Options configures one Bound run.
//
// NumVertices  – polygon support directions (≥ 3).
// Measurements – vertices per oracle evaluation (> 0).
// Workers      – concurrent oracle evaluations; 0 ⇒ GOMAXPROCS.
// OnProgress   – optional hook, called after every completed evaluation
//                with (done, total, best-so-far); invoked serially.
// Oracle       – oracle options forwarded per evaluation; nil ⇒ defaults.
type Options struct {
	NumVertices  int
	Measurements int
	Workers      int
	OnProgress   func(done, total int, best float64)
	Oracle       *lhs.Options
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		NumVertices:  DefaultNumVertices,
		Measurements: DefaultMeasurements,
	}
}

// withDefaults fills zero-valued fields so callers may set only what they
// care about.
func withDefaults(o Options) Options {
	d := DefaultOptions()
	if o.NumVertices == 0 {
		o.NumVertices = d.NumVertices
	}
	if o.Measurements == 0 {
		o.Measurements = d.Measurements
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// validate rejects degenerate polygons and bad counts.
func (o Options) validate() error {
	if o.NumVertices < 3 {
		return ErrTooFewSupports
	}
	if o.Measurements <= 0 || o.Workers < 0 {
		return ErrBadOptions
	}

	return nil
}

// Result is the outcome of one Bound run.
type Result struct {
	// Visibility is the minimum critical visibility over all evaluated
	// vertex combinations: a bound valid for every planar projective
	// measurement set of the same size.
	Visibility float64

	// Directions are the Bloch x–z vertex directions attaining Visibility,
	// in enumeration order.
	Directions [][2]float64

	// Evaluations counts completed oracle solves.
	Evaluations int
}

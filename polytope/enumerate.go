// Package polytope: the concurrent enumeration driver.

package polytope

import (
	"context"
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/jessicabavaresco/steerbounds/lhs"
	"github.com/jessicabavaresco/steerbounds/povm"
	"github.com/jessicabavaresco/steerbounds/qmat"
)

// Bound evaluates the LHS oracle on every size-Measurements combination of
// the deduplicated polygon vertices and returns the minimum visibility with
// its attaining directions.
//
// Evaluations run concurrently up to Workers at a time; each is an atomic
// unit of work. Cancelling ctx stops the run between evaluations and
// returns the context's error; completed work is discarded. Ties on the
// minimum resolve to the earliest combination in enumeration order, so the
// result is independent of scheduling.
//
// Errors: ErrTooFewSupports, ErrTooFewVertices, ErrBadOptions, the
// oracle's validation errors (first one encountered), ctx.Err().
//
// Complexity: C(retained, Measurements) oracle solves, each over
// 2^Measurements deterministic strategies.
func Bound(ctx context.Context, rho *qmat.Dense, opts Options) (Result, error) {
	o := withDefaults(opts)
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	verts, err := PolygonVertices(o.NumVertices)
	if err != nil {
		return Result{}, err
	}
	retained := DedupAntipodal(verts)
	if len(retained) < o.Measurements {
		return Result{}, ErrTooFewVertices
	}

	combos := allCombinations(len(retained), o.Measurements)
	total := len(combos)
	etas := make([]float64, total)

	var (
		mu   sync.Mutex
		done int
		best = math.Inf(1)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	for idx, combo := range combos {
		idx, combo := idx, combo
		g.Go(func() error {
			if cerr := gctx.Err(); cerr != nil {
				return cerr
			}

			set, serr := povm.Projective(pick(retained, combo))
			if serr != nil {
				return serr
			}
			eta, oerr := lhs.CriticalVisibility(rho, set, o.Oracle)
			if oerr != nil {
				return fmt.Errorf("polytope: oracle: %w", oerr)
			}
			etas[idx] = eta

			mu.Lock()
			done++
			if eta < best {
				best = eta
			}
			if o.OnProgress != nil {
				o.OnProgress(done, total, best)
			}
			mu.Unlock()

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	// Scan in enumeration order so ties resolve deterministically.
	bestIdx := 0
	for idx := 1; idx < total; idx++ {
		if etas[idx] < etas[bestIdx] {
			bestIdx = idx
		}
	}

	return Result{
		Visibility:  etas[bestIdx],
		Directions:  pick(retained, combos[bestIdx]),
		Evaluations: total,
	}, nil
}

// allCombinations materializes the size-k combinations of 0..n-1 in the
// generator's lexicographic order.
func allCombinations(n, k int) [][]int {
	out := make([][]int, 0, combin.Binomial(n, k))
	gen := combin.NewCombinationGenerator(n, k)
	for gen.Next() {
		out = append(out, gen.Combination(nil))
	}

	return out
}

// pick selects the vertices of one combination.
func pick(verts [][2]float64, combo []int) [][2]float64 {
	out := make([][2]float64, len(combo))
	for i, c := range combo {
		out[i] = verts[c]
	}

	return out
}

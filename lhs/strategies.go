// SPDX-License-Identifier: MIT
// Package lhs: the deterministic-strategy table — the purely combinatorial
// index structure underneath the LHS program.

package lhs

// Strategies enumerates the K^N deterministic strategies for N measurements
// of K outcomes: strategy l assigns outcome Outcome(i, l) to measurement i,
// where Outcome(i, l) is digit i of the base-K expansion of l (measurement
// 0 on the least-significant digit). The table is an explicit index-to-digit
// function; no per-strategy storage is allocated.
//
// The zero value is not usable; construct via NewStrategies.
type Strategies struct {
	n, k  int
	count int
}

// NewStrategies builds the table for n measurements of k outcomes, refusing
// strategy spaces larger than limit.
//
// Errors: ErrEmptyMeasurements for n <= 0 or k <= 0; ErrStrategySpace when
// k^n would exceed limit (overflow-safe).
//
// Complexity: O(n).
func NewStrategies(n, k, limit int) (Strategies, error) {
	if n <= 0 || k <= 0 {
		return Strategies{}, ErrEmptyMeasurements
	}
	if limit <= 0 {
		return Strategies{}, ErrBadOptions
	}

	count := 1
	for i := 0; i < n; i++ {
		if count > limit/k {
			return Strategies{}, ErrStrategySpace
		}
		count *= k
	}

	return Strategies{n: n, k: k, count: count}, nil
}

// Measurements returns N.
func (s Strategies) Measurements() int { return s.n }

// Outcomes returns K.
func (s Strategies) Outcomes() int { return s.k }

// Count returns K^N, the number of deterministic strategies.
func (s Strategies) Count() int { return s.count }

// Outcome returns the outcome that strategy l assigns to measurement i:
// digit i of the base-K expansion of l. Both indices are 0-based; callers
// guarantee 0 ≤ i < N and 0 ≤ l < Count().
//
// Complexity: O(i).
func (s Strategies) Outcome(i, l int) int {
	for ; i > 0; i-- {
		l /= s.k
	}

	return l % s.k
}

// Assigns reports whether strategy l assigns outcome j to measurement i —
// the 3-index indicator D[i][j][l] of the LHS program.
func (s Strategies) Assigns(i, j, l int) bool {
	return s.Outcome(i, l) == j
}

// Package assign - unified entry points.
//
// This file provides the canonical ways to run a count-constrained
// assignment:
//
//   - Solve: accept rows as class→probability maps, densify them against
//     the class order, then delegate to SolveMatrix.
//   - SolveMatrix: accept dense rows aligned with the class order, apply
//     strict validation, build the LP, invoke the backend, and extract
//     the labels.
//
// Design principles:
//   - Deterministic: stable class-order tie-breaking; no randomness.
//   - Strict sentinels: only errors from types.go and lpsolver.
//   - Fail fast: full validation before the backend is ever touched.
//   - Stable score: the returned score is recomputed from the caller's
//     matrix and rounded to 1e−9 to prevent FP drift.
package assign

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lpassign/lpsolver"
)

// roundScale controls final score stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// Solve computes the assignment for rows given as class→probability
// maps. Each row must carry an entry for every class in classes; the
// rows are densified in class order and delegated to SolveMatrix.
//
// Contracts:
//   - classes: non-empty, unique, non-blank identifiers.
//   - counts: one non-negative entry per class, summing to len(rows).
//   - rows: every map covers the full class set with finite values.
//
// Errors: sentinels from types.go (all wrapping ErrValidation) before
// any solve; lpsolver sentinels or ErrIntegrality afterwards.
//
// Complexity: O(N·K) densification + SolveMatrix.
func Solve(classes []string, counts map[string]int, rows []map[string]float64, opts ...Option) (Result, error) {
	// Classes must be sane before they can index the row maps.
	if _, err := validateClasses(classes); err != nil {
		return Result{}, err
	}

	// Densify in class order; a missing entry is a validation error,
	// value checks happen in SolveMatrix.
	dense := make([][]float64, len(rows))
	for i, row := range rows {
		r := make([]float64, len(classes))
		for j, id := range classes {
			v, ok := row[id]
			if !ok {
				return Result{}, fmt.Errorf("%w: row %d, class %q", ErrMissingProbability, i, id)
			}
			r[j] = v
		}
		dense[i] = r
	}

	return SolveMatrix(classes, counts, dense, opts...)
}

// SolveMatrix computes the assignment for dense probability rows
// aligned with classes: probs[i][j] is the probability that example i
// belongs to classes[j].
//
// Pipeline: validate → build LP → backend solve → argmax extraction →
// realized-count self-check. The inputs are only read, never mutated;
// all state is call-scoped, so concurrent calls are safe.
//
// Tie-breaking: within a row, the first maximal x value wins, so ties
// resolve to the earliest class in the caller's order.
//
// Errors:
//   - validation sentinels (wrapping ErrValidation) with no solve attempt;
//   - lpsolver.ErrInfeasible / ErrUnbounded / ErrIterationLimit /
//     ErrSolverFailure forwarded verbatim from the backend;
//   - ErrIntegrality if the extracted counts deviate from the targets.
//
// Complexity: O(N·K·(N+K)) construction + backend solve + O(N·K)
// extraction.
func SolveMatrix(classes []string, counts map[string]int, probs [][]float64, opts ...Option) (Result, error) {
	// Stage 0 - assemble options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1 - unified validation (Options + classes + counts + matrix).
	if err := validateAll(classes, counts, probs, o); err != nil {
		return Result{}, err
	}

	var (
		n = len(probs)
		k = len(classes)
	)

	// Stage 2 - trivial batch: zero rows with all-zero counts is valid
	// and needs no backend (the LP would be vacuous).
	if n == 0 {
		return Result{Labels: []string{}}, nil
	}

	// Stage 3 - build the LP and delegate to the backend.
	solver := o.Solver
	if solver == nil {
		solver = lpsolver.Simplex{MaxIter: o.MaxIterations, Tol: o.Tolerance}
	}
	sol, err := solver.Solve(buildProgram(classes, counts, probs))
	if err != nil {
		// Backend taxonomy is surfaced verbatim; retrying an identical
		// LP cannot succeed.
		return Result{}, err
	}
	if len(sol.X) != n*k {
		return Result{}, fmt.Errorf("%w: got %d variables, want %d", lpsolver.ErrSolverFailure, len(sol.X), n*k)
	}

	// Stage 4 - extraction. At an integral vertex each x[i,·] is a unit
	// row up to solver noise (0.999999 / 1e-9), so the per-row argmax
	// recovers the label without exact 0/1 comparisons. Strict '>' keeps
	// the first maximum, giving the stable class-order tie-break.
	var (
		labels   = make([]string, n)
		realized = make(map[string]int, k)
		score    float64
		best     int
		bestVal  float64
	)
	for i := 0; i < n; i++ {
		best, bestVal = 0, sol.X[i*k]
		for j := 1; j < k; j++ {
			if v := sol.X[i*k+j]; v > bestVal {
				best, bestVal = j, v
			}
		}
		labels[i] = classes[best]
		realized[classes[best]]++
		score += probs[i][best]
	}

	// Stage 5 - postcondition self-check. The optimum satisfies the
	// count rows exactly, so any deviation here means the backend
	// returned a non-vertex or numerically degraded point.
	for _, id := range classes {
		if realized[id] != counts[id] {
			return Result{}, fmt.Errorf("%w: class %q realized %d, want %d", ErrIntegrality, id, realized[id], counts[id])
		}
	}

	return Result{Labels: labels, Score: round1e9(score)}, nil
}

// round1e9 stabilizes a sum of probabilities to 1e-9 precision.
func round1e9(v float64) float64 {
	return math.Round(v*roundScale) / roundScale
}

// Package assign - LP construction.
//
// This file translates (class set, target counts, probability matrix)
// into the equality-form problem consumed by lpsolver. Variables are
// laid out row-major: x[i,k] lives at index i·K + k.
//
// Design:
//   - Maximization is encoded by negating the probabilities (backends
//     minimize).
//   - The per-example rows already force Σₖ x[i,k] = 1 with x ≥ 0, so
//     the individual upper bounds x[i,k] ≤ 1 are implied and never
//     materialized.
//   - The class-count rows are linearly dependent on the rest (example
//     rows fix the total mass, so K−1 class rows determine the Kth);
//     the final class row is dropped to keep the system full row rank
//     for rank-strict backends.
//
// Complexity: O(N·K·(N+K)) time and space for the dense rows.
package assign

import "github.com/katalvlaran/lpassign/lpsolver"

// buildProgram encodes the transportation LP for the given inputs.
//
// Contract:
//   - Inputs already validated (shapes agree, counts cover classes and
//     sum to len(probs), N ≥ 1).
//
// Constraint layout: N per-example rows first, then K−1 per-class rows
// in class order (the last class's row is implied).
func buildProgram(classes []string, counts map[string]int, probs [][]float64) lpsolver.Problem {
	var (
		n    = len(probs)
		k    = len(classes)
		nVar = n * k
	)

	// Objective: minimize −Σ p[i][k]·x[i,k].
	c := make([]float64, nVar)
	for i, row := range probs {
		for j, p := range row {
			c[i*k+j] = -p
		}
	}

	var (
		rows = make([][]float64, 0, n+k-1)
		rhs  = make([]float64, 0, n+k-1)
		r    []float64
		i, j int
	)

	// Per-example rows: Σₖ x[i,k] = 1.
	for i = 0; i < n; i++ {
		r = make([]float64, nVar)
		for j = 0; j < k; j++ {
			r[i*k+j] = 1
		}
		rows = append(rows, r)
		rhs = append(rhs, 1)
	}

	// Per-class rows: Σᵢ x[i,j] = counts[classes[j]], for j < k−1.
	for j = 0; j < k-1; j++ {
		r = make([]float64, nVar)
		for i = 0; i < n; i++ {
			r[i*k+j] = 1
		}
		rows = append(rows, r)
		rhs = append(rhs, float64(counts[classes[j]]))
	}

	return lpsolver.Problem{C: c, AEq: rows, BEq: rhs}
}

// Package assign - validation utilities shared by both entry points.
//
// This file contains small, tight helpers that:
//  1. Validate Options (iteration bound, tolerance).
//  2. Validate the class set (non-empty, unique, non-blank identifiers).
//  3. Validate target counts against the class set and the row total.
//  4. Validate the dense probability matrix (shape, finiteness).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from types.go.
//   - O(N·K) worst-case over N rows and K classes; no hidden allocations
//     beyond the class index map.
package assign

import (
	"fmt"
	"math"
	"sort"
)

// validateAll verifies Options + class set + target counts + matrix.
//
// Contract:
//   - Runs before any backend call; a non-nil error means no solve was
//     attempted.
//   - Every returned error wraps ErrValidation.
//
// Complexity: O(N·K) time, O(K) extra space.
func validateAll(classes []string, counts map[string]int, probs [][]float64, opts Options) error {
	// Stage 1 - Options-only sanity.
	if err := validateOptionsStandalone(opts); err != nil {
		return err
	}

	// Stage 2 - class set (uniqueness check builds the index).
	index, err := validateClasses(classes)
	if err != nil {
		return err
	}

	// Stage 3 - counts vs class set, and the exact-sum invariant.
	if err = validateCounts(classes, index, counts, len(probs)); err != nil {
		return err
	}

	// Stage 4 - matrix shape and value finiteness.
	return validateMatrix(probs, len(classes))
}

// validateOptionsStandalone checks internal consistency of Options
// without referencing the problem inputs.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	// Negative budgets are undefined; 0 means "backend default".
	if opts.MaxIterations < 0 {
		return ErrBadMaxIterations
	}
	// A negative tolerance would invert feasibility comparisons.
	if opts.Tolerance < 0 {
		return ErrBadTolerance
	}

	return nil
}

// validateClasses checks the class set and returns identifier → column.
//
// Contract:
//   - At least one class; identifiers unique and non-empty.
//
// Complexity: O(K) time, O(K) space.
func validateClasses(classes []string) (map[string]int, error) {
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}

	index := make(map[string]int, len(classes))
	for j, id := range classes {
		if id == "" {
			return nil, ErrEmptyClass
		}
		if _, seen := index[id]; seen {
			return nil, fmt.Errorf("%w %q", ErrDuplicateClass, id)
		}
		index[id] = j
	}

	return index, nil
}

// validateCounts checks that counts covers the class set exactly (zero
// entries allowed, absent entries not), that every count is
// non-negative, and that the counts sum to nRows. The sum mismatch is a
// hard failure - never rescaled.
//
// Complexity: O(K) expected time (O(K log K) only on the unknown-key
// error path, to report deterministically).
func validateCounts(classes []string, index map[string]int, counts map[string]int, nRows int) error {
	var total int
	for _, id := range classes {
		c, ok := counts[id]
		if !ok {
			return fmt.Errorf("%w %q", ErrMissingCount, id)
		}
		if c < 0 {
			return fmt.Errorf("%w: class %q has %d", ErrNegativeCount, id, c)
		}
		total += c
	}

	// Every class is covered; any surplus key references an unknown class.
	if len(counts) > len(classes) {
		extra := make([]string, 0, len(counts)-len(classes))
		for id := range counts {
			if _, ok := index[id]; !ok {
				extra = append(extra, id)
			}
		}
		// Sort so the reported identifier does not depend on map order.
		sort.Strings(extra)

		return fmt.Errorf("%w %q", ErrUnknownClass, extra[0])
	}

	if total != nRows {
		return fmt.Errorf("%w: counts sum to %d, rows are %d", ErrCountSum, total, nRows)
	}

	return nil
}

// validateMatrix checks that every dense row has exactly k entries and
// that every entry is finite. Finite values outside [0,1] are accepted:
// the LP is well-defined for any finite objective and callers feed
// near-normalized rows in practice.
//
// Complexity: O(N·K).
func validateMatrix(probs [][]float64, k int) error {
	for i, row := range probs {
		if len(row) != k {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrRowWidth, i, len(row), k)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: row %d, column %d", ErrBadProbability, i, j)
			}
		}
	}

	return nil
}

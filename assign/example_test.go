// Package assign_test provides runnable, deterministic examples for the
// count-constrained assignment solver. Each example prints labels and a
// score with a stable // Output: block.
package assign_test

import (
	"fmt"

	"github.com/katalvlaran/lpassign/assign"
	"github.com/katalvlaran/lpassign/lpsolver"
)

// ExampleSolveMatrix corrects three predictions so that exactly one
// example lands on class B. The counts here agree with the per-row
// argmax, so the assignment keeps every dominant class.
func ExampleSolveMatrix() {
	res, err := assign.SolveMatrix(
		[]string{"A", "B"},
		map[string]int{"A": 2, "B": 1},
		[][]float64{
			{0.9, 0.1},
			{0.6, 0.4},
			{0.2, 0.8},
		},
	)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println(res.Labels)
	fmt.Printf("%.1f\n", res.Score)
	// Output:
	// [A A B]
	// 2.3
}

// ExampleSolveMatrix_reassignment tightens class A to a single slot:
// the optimizer flips the cheapest A-leaning example (losing only 0.2
// of confidence) instead of an arbitrary one.
func ExampleSolveMatrix_reassignment() {
	res, err := assign.SolveMatrix(
		[]string{"A", "B"},
		map[string]int{"A": 1, "B": 2},
		[][]float64{
			{0.9, 0.1},
			{0.6, 0.4},
			{0.2, 0.8},
		},
	)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println(res.Labels)
	fmt.Printf("%.1f\n", res.Score)
	// Output:
	// [A B B]
	// 2.1
}

// ExampleSolve feeds rows as class→probability maps and selects the
// gonum backend explicitly.
func ExampleSolve() {
	rows := []map[string]float64{
		{"cat": 0.6, "dog": 0.3, "fox": 0.1},
		{"cat": 0.2, "dog": 0.5, "fox": 0.3},
		{"cat": 0.8, "dog": 0.1, "fox": 0.1},
		{"cat": 0.5, "dog": 0.1, "fox": 0.4},
	}

	res, err := assign.Solve(
		[]string{"cat", "dog", "fox"},
		map[string]int{"cat": 2, "dog": 1, "fox": 1},
		rows,
		assign.WithSolver(lpsolver.Gonum{}),
	)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println(res.Labels)
	// Output:
	// [cat dog cat fox]
}

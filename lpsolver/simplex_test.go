package lpsolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpassign/lpsolver"
)

// TestSimplex_SmallOptimum solves min −x₁−2x₂ s.t. x₁+x₂=1, x≥0:
// the optimum puts all mass on x₂ with objective −2.
func TestSimplex_SmallOptimum(t *testing.T) {
	p := lpsolver.Problem{
		C:   []float64{-1, -2},
		AEq: [][]float64{{1, 1}},
		BEq: []float64{1},
	}

	sol, err := lpsolver.Simplex{}.Solve(p)
	require.NoError(t, err)
	require.InDelta(t, -2.0, sol.Objective, 1e-9)
	require.Len(t, sol.X, 2)
	require.InDelta(t, 0.0, sol.X[0], 1e-9)
	require.InDelta(t, 1.0, sol.X[1], 1e-9)
	// The backend reports its pivot count through Solution.Iterations.
	require.Greater(t, sol.Iterations, 0)
}

// TestSimplex_VertexOnAssignmentPolytope solves a 2×2 transportation
// system and expects an integral vertex (exact 0/1 up to tolerance).
func TestSimplex_VertexOnAssignmentPolytope(t *testing.T) {
	// Two examples, two classes, one of each: x laid out row-major.
	p := lpsolver.Problem{
		C: []float64{-0.9, -0.1, -0.2, -0.8},
		AEq: [][]float64{
			{1, 1, 0, 0}, // example 0
			{0, 0, 1, 1}, // example 1
			{1, 0, 1, 0}, // class 0 count = 1 (class 1 row implied)
		},
		BEq: []float64{1, 1, 1},
	}

	sol, err := lpsolver.Simplex{}.Solve(p)
	require.NoError(t, err)
	require.InDelta(t, -1.7, sol.Objective, 1e-9)
	for _, v := range sol.X {
		require.True(t, v < 1e-6 || v > 1-1e-6, "non-integral coordinate %v", v)
	}
}

// TestSimplex_Infeasible reports ErrInfeasible when x ≥ 0 cannot reach
// a negative right-hand side.
func TestSimplex_Infeasible(t *testing.T) {
	p := lpsolver.Problem{
		C:   []float64{1, 1},
		AEq: [][]float64{{1, 1}},
		BEq: []float64{-1},
	}

	_, err := lpsolver.Simplex{}.Solve(p)
	require.ErrorIs(t, err, lpsolver.ErrInfeasible)
}

// TestSimplex_Unbounded reports ErrUnbounded on min −x₁−x₂ with the
// feasible ray x₁=x₂=t.
func TestSimplex_Unbounded(t *testing.T) {
	p := lpsolver.Problem{
		C:   []float64{-1, -1},
		AEq: [][]float64{{1, -1}},
		BEq: []float64{0},
	}

	_, err := lpsolver.Simplex{}.Solve(p)
	require.ErrorIs(t, err, lpsolver.ErrUnbounded)
}

// TestSimplex_BadProblem rejects malformed dimensions before any solve.
func TestSimplex_BadProblem(t *testing.T) {
	cases := []struct {
		name string
		p    lpsolver.Problem
	}{
		{"empty objective", lpsolver.Problem{AEq: [][]float64{{1}}, BEq: []float64{1}}},
		{"no rows", lpsolver.Problem{C: []float64{1}}},
		{"ragged row", lpsolver.Problem{C: []float64{1, 1}, AEq: [][]float64{{1}}, BEq: []float64{1}}},
		{"rhs mismatch", lpsolver.Problem{C: []float64{1}, AEq: [][]float64{{1}}, BEq: []float64{1, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lpsolver.Simplex{}.Solve(tc.p)
			require.ErrorIs(t, err, lpsolver.ErrBadProblem)
		})
	}
}

// Package lpsolver — gonum backend.
//
// Gonum delegates to gonum.org/v1/gonum/optimize/convex/lp, which
// solves the same equality standard form (minimize c·x s.t. Ax = b,
// x ≥ 0) with a dense simplex. The constraint matrix must have full row
// rank; callers with linearly dependent rows drop the redundant ones
// before solving (assign does).
package lpsolver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// gonumDefaultTol is the tolerance handed to lp.Simplex when Tol is
// unset. lp.Simplex treats it as the convergence/pivot tolerance; the
// lpsimplex default (1e-12) is too strict for gonum's dense kernels.
const gonumDefaultTol = 1e-10

// Gonum solves Problems with gonum's dense simplex.
//
// Fields:
//   - Tol — convergence tolerance; ≤ 0 means gonumDefaultTol.
//
// The zero value is ready to use. Gonum is stateless and safe for
// concurrent use. The backend does not report pivot counts, so
// Solution.Iterations is always 0.
type Gonum struct {
	Tol float64
}

// Ensure interface compliance at compile time.
var _ Solver = Gonum{}

// Solve runs gonum's simplex on p.
//
// Contract:
//   - p must pass dimension validation (ErrBadProblem otherwise).
//   - AEq must have full row rank; a rank-deficient system surfaces as
//     ErrSolverFailure wrapping the backend's singularity error.
//
// Errors: ErrBadProblem, ErrInfeasible, ErrUnbounded, ErrSolverFailure.
func (g Gonum) Solve(p Problem) (Solution, error) {
	if err := p.validate(); err != nil {
		return Solution{}, err
	}

	tol := g.Tol
	if tol <= 0 {
		tol = gonumDefaultTol
	}

	// Densify the constraint rows for the backend.
	var (
		m = len(p.AEq)
		n = len(p.C)
		a = mat.NewDense(m, n, nil)
	)
	for i, row := range p.AEq {
		a.SetRow(i, row)
	}

	optF, optX, err := lp.Simplex(p.C, a, p.BEq, tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return Solution{}, ErrInfeasible
		case errors.Is(err, lp.ErrUnbounded):
			return Solution{}, ErrUnbounded
		default:
			return Solution{}, fmt.Errorf("%w: %v", ErrSolverFailure, err)
		}
	}

	return Solution{X: optX, Objective: optF}, nil
}

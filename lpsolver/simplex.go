// Package lpsolver — lpsimplex backend.
//
// Simplex delegates to github.com/willauld/lpsimplex, a pure-Go port of
// scipy.optimize.linprog's simplex method, and translates its
// scipy-compatible status codes into this package's sentinels.
//
// Complexity: exponential worst case, fast in practice on assignment
// polytopes (each pivot is O(rows·vars)).
package lpsolver

import (
	"fmt"

	"github.com/willauld/lpsimplex"
)

// scipy-compatible status codes reported by lpsimplex.
const (
	statusOptimal    = 0
	statusIterLimit  = 1
	statusInfeasible = 2
	statusUnbounded  = 3
)

// Simplex solves Problems with the lpsimplex backend.
//
// Fields:
//   - MaxIter — pivot budget; ≤ 0 means DefaultMaxIter.
//   - Tol     — pivot/feasibility tolerance; ≤ 0 means DefaultTol.
//
// The zero value is ready to use. Simplex is stateless and safe for
// concurrent use.
type Simplex struct {
	MaxIter int
	Tol     float64
}

// Ensure interface compliance at compile time.
var _ Solver = Simplex{}

// Solve runs the simplex method on p.
//
// Contract:
//   - p must pass dimension validation (ErrBadProblem otherwise).
//   - On success the returned point is an optimal vertex.
//
// Errors: ErrBadProblem, ErrInfeasible, ErrUnbounded, ErrIterationLimit,
// ErrSolverFailure (with the backend message attached).
func (s Simplex) Solve(p Problem) (Solution, error) {
	if err := p.validate(); err != nil {
		return Solution{}, err
	}

	// Fall back to the scipy defaults when tuning is unset.
	var (
		maxIter = s.MaxIter
		tol     = s.Tol
	)
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	if tol <= 0 {
		tol = DefaultTol
	}

	// Equality-only problem: no inequality rows, no explicit bounds
	// (x ≥ 0 is the backend default), no callback, no Bland pivoting.
	res := lpsimplex.LPSimplex(
		p.C,
		nil, nil, // A_ub, b_ub
		p.AEq, p.BEq,
		nil, // bounds: default [0, +inf) per variable
		lpsimplex.Callbackfunc(nil),
		false, // disp
		maxIter,
		tol,
		false, // bland
	)

	if !res.Success {
		switch res.Status {
		case statusIterLimit:
			return Solution{}, fmt.Errorf("%w after %d pivots", ErrIterationLimit, res.Nitr)
		case statusInfeasible:
			return Solution{}, ErrInfeasible
		case statusUnbounded:
			return Solution{}, ErrUnbounded
		default:
			return Solution{}, fmt.Errorf("%w: %s", ErrSolverFailure, res.Message)
		}
	}

	return Solution{X: res.X, Objective: res.Fun, Iterations: res.Nitr}, nil
}

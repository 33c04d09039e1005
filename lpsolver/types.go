package lpsolver

import "errors"

// Sentinel errors reported by Solver implementations.
var (
	// ErrBadProblem indicates malformed problem dimensions: an empty
	// objective, no constraint rows, a row whose length differs from the
	// objective, or mismatched AEq/BEq lengths.
	ErrBadProblem = errors.New("lpsolver: malformed problem dimensions")

	// ErrInfeasible indicates the constraint set admits no feasible point.
	ErrInfeasible = errors.New("lpsolver: constraints are infeasible")

	// ErrUnbounded indicates the objective decreases without bound over
	// the feasible region.
	ErrUnbounded = errors.New("lpsolver: objective is unbounded")

	// ErrIterationLimit indicates the pivot budget was exhausted before
	// the backend converged to an optimum.
	ErrIterationLimit = errors.New("lpsolver: iteration limit reached")

	// ErrSolverFailure indicates a backend-internal failure that is
	// neither infeasibility nor unboundedness.
	ErrSolverFailure = errors.New("lpsolver: backend failure")
)

// Default tuning shared by the backends. The values mirror the scipy
// linprog simplex defaults that the Simplex backend ports.
const (
	// DefaultMaxIter bounds the number of simplex pivots.
	DefaultMaxIter = 4000

	// DefaultTol is the pivot/feasibility tolerance.
	DefaultTol = 1e-12
)

// Problem is an equality-form linear program:
//
//	minimize   C·x
//	subject to AEq·x = BEq,  x ≥ 0
//
// All rows of AEq must have len(C) entries and len(AEq) must equal
// len(BEq). At least one constraint row is required.
type Problem struct {
	C   []float64   // objective coefficients, minimized
	AEq [][]float64 // equality-constraint coefficient rows
	BEq []float64   // equality-constraint right-hand sides
}

// validate checks Problem dimensions shared by every backend.
//
// Complexity: O(rows).
func (p Problem) validate() error {
	if len(p.C) == 0 || len(p.AEq) == 0 || len(p.AEq) != len(p.BEq) {
		return ErrBadProblem
	}
	for _, row := range p.AEq {
		if len(row) != len(p.C) {
			return ErrBadProblem
		}
	}

	return nil
}

// Solution is an optimal feasible point reported by a backend.
type Solution struct {
	// X holds the variable values at the optimum, len(X) == len(Problem.C).
	X []float64

	// Objective is C·X at the optimum.
	Objective float64

	// Iterations is the number of simplex pivots performed, when the
	// backend reports it (0 otherwise).
	Iterations int
}

// Solver is the collaborator interface: given an equality-form LP it
// returns an optimal vertex solution or a sentinel failure.
//
// Implementations must be safe for concurrent use; both backends in
// this package are stateless value types.
type Solver interface {
	Solve(p Problem) (Solution, error)
}

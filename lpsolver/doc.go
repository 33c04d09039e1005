// Package lpsolver defines the linear-programming collaborator consumed
// by lpassign/assign: a minimal Solver interface over equality-form
// problems, plus two interchangeable pure-Go simplex backends.
//
// Problem form:
//
//	minimize   C·x
//	subject to AEq·x = BEq,  x ≥ 0
//
// Maximization is encoded by the caller negating C. Variable upper
// bounds are not part of the form; callers whose constraints already
// imply them (as the assignment polytope does) need none.
//
// Backends:
//
//   - Simplex — github.com/willauld/lpsimplex, a pure-Go port of
//     scipy.optimize.linprog's simplex method. The default.
//   - Gonum   — gonum.org/v1/gonum/optimize/convex/lp, gonum's dense
//     simplex on the same standard form.
//
// Both are simplex methods and therefore return vertex solutions; on
// totally unimodular systems with integer right-hand sides the returned
// optimum is integral, which downstream extraction relies on.
//
// Errors (sentinel):
//
//	– ErrBadProblem     malformed dimensions (empty objective, ragged rows).
//	– ErrInfeasible     the constraint set admits no feasible point.
//	– ErrUnbounded      the objective decreases without bound.
//	– ErrIterationLimit pivot budget exhausted before convergence.
//	– ErrSolverFailure  any other backend-internal failure.
package lpsolver

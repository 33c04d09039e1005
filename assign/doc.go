// Package assign computes count-constrained label assignments: given a
// matrix of per-example, per-class predicted probabilities and a target
// count for every class, it returns one label per example such that the
// realized per-class counts equal the targets exactly and the summed
// probability of the chosen labels is maximal.
//
// Formulation:
//
//	maximize   Σᵢ Σₖ p[i][k]·x[i,k]
//	subject to Σₖ x[i,k] = 1          for every example i
//	           Σᵢ x[i,k] = counts[k]  for every class k
//	           x[i,k] ≥ 0
//
// This is the transportation polytope: the constraint matrix is totally
// unimodular and the right-hand sides are integers, so simplex backends
// return an integral vertex (every x[i,k] exactly 0 or 1 up to floating
// noise) even though the variables are continuous. Extraction takes the
// per-row argmax to absorb that noise, then re-verifies the realized
// counts against the targets.
//
// Entry points:
//
//   - Solve       — rows as class→probability maps (order-free input).
//   - SolveMatrix — dense rows aligned with the class order.
//
// Both validate fully before any backend call, never mutate their
// inputs, and keep all state call-scoped: concurrent solves are safe.
//
// Complexity:
//
//	– LP construction: O(N·K·(N+K)) time and space for the dense
//	  constraint rows (N examples, K classes, N·K variables).
//	– Solve: backend-dependent; simplex is fast in practice here.
//	– Extraction + self-check: O(N·K).
//
// Errors (sentinel):
//
//	– ErrValidation and its wrapped family for bad inputs (see types.go).
//	– lpsolver sentinels forwarded verbatim for backend failures.
//	– ErrIntegrality if extracted counts deviate from the targets.
package assign

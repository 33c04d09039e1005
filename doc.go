// Package lpassign corrects multiclass probabilistic predictions so that
// the number of examples assigned to each class matches a caller-supplied
// target count exactly, while maximizing the total confidence of the
// chosen labels.
//
// 🚀 What is lpassign?
//
//	A small, deterministic library that sits downstream of any classifier:
//		• You bring per-example, per-class predicted probabilities
//		• You bring the target count for every class (a known prevalence)
//		• lpassign returns one best label per example, and the per-class
//		  label counts match your targets exactly — not approximately
//
// The problem is solved as a linear program over the transportation
// polytope: per-example rows force each example to carry exactly one
// unit of assignment mass, per-class rows force the assigned mass of
// every class to equal its target count. The constraint matrix is
// totally unimodular and the right-hand sides are integers, so simplex
// backends return an integral vertex and the continuous relaxation is
// exact.
//
// ✨ Why choose lpassign?
//
//   - Exactness guaranteed – realized counts equal targets, verified
//     after extraction and surfaced as an error if a backend drifts
//   - Deterministic – stable class-order tie-breaking, no randomness
//   - Call-scoped – no shared state; concurrent solves are safe
//   - Swappable backends – any LP solver behind one small interface
//
// Everything is organized under two subpackages:
//
//	assign/   — input validation, LP construction, label extraction
//	lpsolver/ — the LP collaborator: Solver interface + simplex backends
//
// Quick start:
//
//	res, err := assign.SolveMatrix(
//	    []string{"A", "B"},
//	    map[string]int{"A": 2, "B": 1},
//	    [][]float64{{0.9, 0.1}, {0.6, 0.4}, {0.2, 0.8}},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Labels, res.Score) // [A A B] 2.3
package lpassign

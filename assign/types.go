package assign

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lpassign/lpsolver"
)

// ErrValidation is the common ancestor of every input-validation error:
// errors.Is(err, ErrValidation) matches the whole family below. Each
// member is also matchable individually.
var ErrValidation = errors.New("assign: invalid input")

// Input-validation sentinels. All are raised before any backend call;
// none of them triggers a solve attempt.
var (
	// ErrNoClasses indicates an empty class set.
	ErrNoClasses = fmt.Errorf("%w: empty class set", ErrValidation)

	// ErrEmptyClass indicates a class identifier that is the empty string.
	ErrEmptyClass = fmt.Errorf("%w: empty class identifier", ErrValidation)

	// ErrDuplicateClass indicates a class identifier listed twice.
	ErrDuplicateClass = fmt.Errorf("%w: duplicate class identifier", ErrValidation)

	// ErrUnknownClass indicates a target count keyed by a class that is
	// not in the class set.
	ErrUnknownClass = fmt.Errorf("%w: count for unknown class", ErrValidation)

	// ErrMissingCount indicates a class with no target-count entry.
	// Zero counts are valid; absent entries are not.
	ErrMissingCount = fmt.Errorf("%w: class without target count", ErrValidation)

	// ErrNegativeCount indicates a negative target count.
	ErrNegativeCount = fmt.Errorf("%w: negative target count", ErrValidation)

	// ErrCountSum indicates target counts whose sum differs from the
	// number of probability rows. Never rescaled or clipped.
	ErrCountSum = fmt.Errorf("%w: target counts do not sum to the row count", ErrValidation)

	// ErrRowWidth indicates a dense probability row whose length differs
	// from the number of classes.
	ErrRowWidth = fmt.Errorf("%w: probability row width differs from class count", ErrValidation)

	// ErrMissingProbability indicates a map row with no entry for some
	// class in the class set.
	ErrMissingProbability = fmt.Errorf("%w: probability row missing a class entry", ErrValidation)

	// ErrBadProbability indicates a NaN or infinite probability value.
	ErrBadProbability = fmt.Errorf("%w: probability is not finite", ErrValidation)

	// ErrBadMaxIterations indicates a negative iteration bound in Options.
	ErrBadMaxIterations = fmt.Errorf("%w: MaxIterations must be non-negative", ErrValidation)

	// ErrBadTolerance indicates a negative tolerance in Options.
	ErrBadTolerance = fmt.Errorf("%w: Tolerance must be non-negative", ErrValidation)
)

// ErrIntegrality indicates that the labels extracted from the backend's
// optimum do not realize the target counts exactly. The LP optimum at an
// integral vertex satisfies the counts by construction, so this error
// signals a backend precision problem; it is surfaced, never corrected.
var ErrIntegrality = errors.New("assign: extracted labels violate the target counts")

// Result holds the outcome of a solve.
type Result struct {
	// Labels is the assignment: one class identifier per input row, in
	// row order. For every class, its occurrence count equals the
	// requested target exactly.
	Labels []string

	// Score is the summed probability of the chosen labels,
	// Σᵢ p[i][Labels[i]], stabilized to 1e-9.
	Score float64
}

// Options configures a solve.
//
// Solver        – LP backend; nil selects lpsolver.Simplex configured
//
//	with MaxIterations and Tolerance below.
//
// MaxIterations – pivot budget for the default backend.
//
//	Must be ≥ 0; 0 means the backend default. Ignored when
//	Solver is set explicitly.
//
// Tolerance     – pivot/feasibility tolerance for the default backend.
//
//	Must be ≥ 0; 0 means the backend default. Ignored when
//	Solver is set explicitly.
type Options struct {
	Solver        lpsolver.Solver // LP backend (nil ⇒ default Simplex)
	MaxIterations int             // pivot budget for the default backend
	Tolerance     float64         // LP tolerance for the default backend
}

// Option represents a functional option for configuring a solve.
type Option func(*Options)

// WithSolver selects an explicit LP backend. When set, MaxIterations
// and Tolerance are not applied (configure the backend directly).
func WithSolver(s lpsolver.Solver) Option {
	return func(o *Options) {
		o.Solver = s
	}
}

// WithMaxIterations bounds the default backend's pivot count.
// Must pass a positive value; non-positive values cause ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			// Panic to signal invalid configuration early, as option
			// constructors cannot return errors.
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the default backend's pivot/feasibility tolerance.
// Must pass a positive value; non-positive values cause ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// DefaultOptions returns an Options struct initialized with the library
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Solver:        nil (lpsolver.Simplex assembled at solve time).
//   - MaxIterations: lpsolver.DefaultMaxIter.
//   - Tolerance:     lpsolver.DefaultTol.
func DefaultOptions() Options {
	return Options{
		Solver:        nil,
		MaxIterations: lpsolver.DefaultMaxIter,
		Tolerance:     lpsolver.DefaultTol,
	}
}

package solver

import (
	"errors"
	"time"

	"github.com/katalvlaran/prodmix/lp"
)

// ErrInvocation indicates the backend itself could not run or crashed:
// a model load failure, a numerical breakdown inside the engine, and so
// on. It is distinct from a legitimate Infeasible/Unbounded outcome,
// which is a normal terminal Status, not an error.
var ErrInvocation = errors.New("solver: backend invocation failed")

// ErrIntegerUnsupported indicates the chosen backend cannot handle an
// integer variable domain (the dense simplex backend is continuous-only).
var ErrIntegerUnsupported = errors.New("solver: backend does not support integer variables")

// Status is the terminal state of a solve attempt.
type Status int

const (
	// NotSolved means no solve has been attempted on the spec.
	NotSolved Status = iota

	// Optimal means an optimal solution was found; primal values (and,
	// when the backend supports them, dual values) are available.
	Optimal

	// Infeasible means the constraints admit no solution at all.
	Infeasible

	// Unbounded means the objective can improve without limit; some
	// necessary constraint is missing.
	Unbounded

	// Undefined covers every indeterminate outcome: time or iteration
	// limits, external cancellation, or a backend status that maps to
	// none of the other terminal states.
	Undefined
)

// String returns the human label for the status, matching the report
// vocabulary ("Not Solved", "Optimal", "Infeasible", "Unbounded",
// "Undefined").
func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	case Undefined:
		return "Undefined"
	default:
		return "Not Solved"
	}
}

// Explain returns a plain-language explanation of a non-optimal terminal
// status, suitable for showing to the user next to the label. Optimal and
// NotSolved return an empty string.
func (s Status) Explain() string {
	switch s {
	case Infeasible:
		return "The constraints are too restrictive: no production plan satisfies all of them."
	case Unbounded:
		return "The objective can grow without limit: a necessary constraint is missing."
	case Undefined:
		return "The solver stopped without a conclusive answer (limit reached or interrupted)."
	default:
		return ""
	}
}

// Result is the raw solver output for one spec, keyed by identifier.
//
// Quantities and Objective are populated only when Status == Optimal.
// Duals maps constraint name → dual value (shadow price); it is nil when
// the backend does not supply duals — integer-domain solves and dual-less
// backends — which consumers must treat as "not available", not as zero.
type Result struct {
	Status     Status
	Objective  float64
	Quantities map[string]float64
	Duals      map[string]float64
}

// Solver is the narrow backend boundary: one spec in, one result out.
//
// Implementations must be name-preserving (Result keys come verbatim from
// the Spec's variable and constraint names) and must report Infeasible /
// Unbounded / Undefined through Result.Status, reserving errors for
// genuine invocation failures (ErrInvocation).
type Solver interface {
	Solve(spec lp.Spec) (Result, error)
}

// Options configures a backend. The zero value is ready to use.
//
//	TimeLimit – wall-clock cap on the solve; 0 means none. A solve cut
//	            short by the limit reports Status Undefined.
//	Verbose   – surface the backend's own log output (off by default).
type Options struct {
	TimeLimit time.Duration
	Verbose   bool
}

// DefaultOptions returns the zero configuration: no time limit, quiet.
func DefaultOptions() Options {
	return Options{}
}

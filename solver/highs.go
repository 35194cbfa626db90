// Package solver - HiGHS backend.
//
// HiGHS is the primary backend: it solves both continuous LPs and integer
// programs, and for continuous LPs it reports per-row dual values, which
// the analysis package turns into shadow prices.
//
// Mapping contract:
//   - variables are passed to HiGHS in Spec order and read back by the
//     same order, then re-keyed by variable name;
//   - constraint rows are added in Spec order; row duals are re-keyed by
//     constraint name the same way;
//   - integer-domain solves yield no duals (Result.Duals == nil).
package solver

import (
	"fmt"

	"github.com/bartolsthoorn/gohighs/highs"
	"github.com/katalvlaran/prodmix/lp"
	"github.com/katalvlaran/prodmix/mix"
)

// HiGHS solves specs with the HiGHS engine (LP and MIP).
type HiGHS struct {
	opts Options
}

// NewHiGHS returns a HiGHS backend with the given options.
func NewHiGHS(opts Options) *HiGHS {
	return &HiGHS{opts: opts}
}

// Solve builds a HiGHS model from the spec, runs it, and maps the outcome
// back onto the Result contract. Engine-level failures (model load or
// solve errors) return an error wrapping ErrInvocation; Infeasible and
// Unbounded come back as regular statuses.
func (h *HiGHS) Solve(spec lp.Spec) (Result, error) {
	n := len(spec.Variables)

	model := highs.Model{
		Maximize: spec.Sense == mix.Maximize,
		ColCosts: make([]float64, n),
		ColLower: make([]float64, n), // zeros: x ≥ 0, no upper bound
	}
	for i, v := range spec.Variables {
		model.ColCosts[i] = v.Cost
	}
	if spec.Domain == mix.Integer {
		model.VarTypes = make([]highs.VariableType, n)
		for i := range model.VarTypes {
			model.VarTypes[i] = highs.Integer
		}
	}

	// One ≤ row per constraint, coefficients in variable order.
	for _, c := range spec.Constraints {
		row := make([]float64, n)
		for i, v := range spec.Variables {
			row[i] = c.Coeffs[v.Name]
		}
		model.AddLeRow(row, c.Bound)
	}

	solveOpts := []highs.SolveOption{highs.WithOutput(h.opts.Verbose)}
	if h.opts.TimeLimit > 0 {
		solveOpts = append(solveOpts, highs.WithTimeLimit(h.opts.TimeLimit.Seconds()))
	}

	sol, err := model.Solve(solveOpts...)
	if err != nil {
		return Result{}, fmt.Errorf("%w: highs: %v", ErrInvocation, err)
	}

	status, err := statusFromHiGHS(sol.Status)
	if err != nil {
		return Result{}, err
	}
	if status != Optimal {
		return Result{Status: status}, nil
	}

	res := Result{
		Status:     Optimal,
		Objective:  sol.Objective,
		Quantities: make(map[string]float64, n),
	}
	for i, v := range spec.Variables {
		res.Quantities[v.Name] = sol.Value(i)
	}

	// Row duals exist for continuous LPs only; a MIP has no dual theory.
	if spec.Domain == mix.Continuous && len(sol.RowDuals) == len(spec.Constraints) {
		res.Duals = make(map[string]float64, len(spec.Constraints))
		for i, c := range spec.Constraints {
			res.Duals[c.Name] = sol.RowDuals[i]
		}
	}

	return res, nil
}

// statusFromHiGHS maps the engine's status vocabulary onto the Result
// contract.
//
// UnboundedOrInfeasible resolves to Unbounded: a validated spec always has
// x = 0 feasible (bounds ≥ 0, usage ≥ 0), so the ambiguous case can only
// mean the objective is unbounded. Limit statuses resolve to Undefined;
// engine-error statuses become ErrInvocation.
func statusFromHiGHS(s highs.ModelStatus) (Status, error) {
	switch s {
	case highs.ModelStatusOptimal:
		return Optimal, nil
	case highs.ModelStatusInfeasible:
		return Infeasible, nil
	case highs.ModelStatusUnbounded, highs.ModelStatusUnboundedOrInfeasible:
		return Unbounded, nil
	case highs.ModelStatusLoadError, highs.ModelStatusModelError,
		highs.ModelStatusPresolveError, highs.ModelStatusSolveError,
		highs.ModelStatusPostsolveError:
		return Undefined, fmt.Errorf("%w: highs status %v", ErrInvocation, s)
	default:
		// NotSet, ModelEmpty, ObjectiveBound, ObjectiveTarget, TimeLimit,
		// IterationLimit, Unknown.
		return Undefined, nil
	}
}

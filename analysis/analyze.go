// Package analysis - derivation of economic quantities from raw solver output.
//
// Analyze is a pure function: same (model, raw) pair in, bit-identical
// Result out. It owns every derived number — resource usage, slack,
// binding flags, shadow prices — so backends stay thin and the numbers
// stay reproducible across engines.
//
// Design principles:
//   - Non-optimal statuses short-circuit: no derivation is attempted.
//   - All joins are by name (product/resource identifiers), never by index.
//   - Binding (|slack| < BindingEps) and shadow-price significance
//     (|price| > ShadowEps) are computed independently; degenerate LPs can
//     have a binding row with a zero dual and the code must not conflate
//     the two.
package analysis

import (
	"math"

	"github.com/katalvlaran/prodmix/lp"
	"github.com/katalvlaran/prodmix/mix"
	"github.com/katalvlaran/prodmix/solver"
)

// Analyze derives the full economic picture from a raw solver result.
//
// If raw.Status is not Optimal the returned Result carries only that
// status. Otherwise, per resource r:
//
//	used(r)  = Σ_p usage(r,p) · quantity(p)
//	slack(r) = available(r) − used(r)
//	binding  = |slack(r)| < BindingEps
//
// and the shadow price of r is raw.Duals[r] when present, otherwise
// marked unavailable (Known=false).
//
// Complexity: O(P·R) time for P products, R resources.
func Analyze(m *mix.Model, raw solver.Result) Result {
	if raw.Status != solver.Optimal {
		return Result{Status: raw.Status}
	}

	res := Result{
		Status:    solver.Optimal,
		Objective: raw.Objective,
		Plan:      make([]Quantity, len(m.Products)),
		Usage:     make([]ResourceUsage, len(m.Resources)),
		Shadow:    make([]ShadowPrice, len(m.Resources)),
	}

	for i, p := range m.Products {
		res.Plan[i] = Quantity{Product: p.Name, Units: raw.Quantities[p.Name]}
	}

	for i, r := range m.Resources {
		var used float64
		for _, p := range m.Products {
			used += r.Usage[p.Name] * raw.Quantities[p.Name]
		}
		slack := r.Available - used
		u := ResourceUsage{
			Resource:  r.Name,
			Used:      used,
			Available: r.Available,
			Slack:     slack,
			Binding:   math.Abs(slack) < BindingEps,
		}
		if r.Available > 0 {
			u.Utilization = used / r.Available * 100
		}
		res.Usage[i] = u

		price, ok := raw.Duals[r.Name]
		res.Shadow[i] = ShadowPrice{Resource: r.Name, Price: price, Known: ok}
	}

	return res
}

// Run executes the full formulate → solve → analyze cycle for one model.
//
// Validation errors from formulation and invocation errors from the
// backend propagate unchanged; non-optimal solver statuses flow through
// the Result as data.
func Run(m *mix.Model, s solver.Solver) (Result, error) {
	spec, err := lp.Formulate(m)
	if err != nil {
		return Result{}, err
	}
	raw, err := s.Solve(spec)
	if err != nil {
		return Result{}, err
	}
	return Analyze(m, raw), nil
}

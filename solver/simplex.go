// Package solver - dense simplex backend (pure Go).
//
// Simplex solves continuous specs with gonum's simplex method. It exists
// for two reasons: a cgo-free fallback when HiGHS is unavailable, and a
// living proof that the solver boundary is backend-agnostic — Formulate
// and Analyze never change when the engine does.
//
// The backend converts the spec to standard form itself:
//
//	minimize   c'ᵀ[x s]
//	subject to [A I][x s] = b,  x ≥ 0, s ≥ 0
//
// with one slack column per ≤ row and c negated for Maximize problems.
// gonum's simplex reports no dual values, so Result.Duals is always nil;
// the analysis package treats that as "shadow prices unavailable".
package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	golp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/prodmix/lp"
	"github.com/katalvlaran/prodmix/mix"
)

// Simplex solves continuous specs with gonum's dense simplex.
type Simplex struct {
	opts Options
}

// NewSimplex returns a dense simplex backend with the given options.
// TimeLimit is not supported by this backend and is ignored.
func NewSimplex(opts Options) *Simplex {
	return &Simplex{opts: opts}
}

// Solve converts the spec to equality standard form and runs the simplex.
// Integer-domain specs return ErrIntegerUnsupported. Infeasible and
// Unbounded outcomes surface as statuses; any other engine failure wraps
// ErrInvocation.
func (s *Simplex) Solve(spec lp.Spec) (Result, error) {
	if spec.Domain == mix.Integer {
		return Result{}, ErrIntegerUnsupported
	}

	n := len(spec.Variables)
	m := len(spec.Constraints)

	// No constraint rows: the optimum is immediate. x = 0 is feasible and,
	// for Minimize with non-negative costs, optimal; for Maximize, any
	// positive objective coefficient makes the problem unbounded.
	if m == 0 {
		if spec.Sense == mix.Maximize {
			for _, v := range spec.Variables {
				if v.Cost > 0 {
					return Result{Status: Unbounded}, nil
				}
			}
		}
		res := Result{Status: Optimal, Quantities: make(map[string]float64, n)}
		for _, v := range spec.Variables {
			res.Quantities[v.Name] = 0
		}
		return res, nil
	}

	// Standard form: n structural columns followed by m slack columns.
	c := make([]float64, n+m)
	for i, v := range spec.Variables {
		if spec.Sense == mix.Maximize {
			c[i] = -v.Cost
		} else {
			c[i] = v.Cost
		}
	}

	a := mat.NewDense(m, n+m, nil)
	b := make([]float64, m)
	for i, con := range spec.Constraints {
		for j, v := range spec.Variables {
			a.Set(i, j, con.Coeffs[v.Name])
		}
		a.Set(i, n+i, 1) // slack turns ≤ into =
		b[i] = con.Bound
	}

	opt, x, err := golp.Simplex(c, a, b, 0, nil)
	if err != nil {
		switch {
		case errors.Is(err, golp.ErrInfeasible):
			return Result{Status: Infeasible}, nil
		case errors.Is(err, golp.ErrUnbounded):
			return Result{Status: Unbounded}, nil
		default:
			return Result{}, fmt.Errorf("%w: simplex: %v", ErrInvocation, err)
		}
	}

	res := Result{
		Status:     Optimal,
		Objective:  opt,
		Quantities: make(map[string]float64, n),
	}
	if spec.Sense == mix.Maximize && opt != 0 {
		res.Objective = -opt
	}
	for i, v := range spec.Variables {
		res.Quantities[v.Name] = x[i]
	}

	return res, nil
}

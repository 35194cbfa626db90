// Package lp - canonical formulation step.
//
// Formulate is a pure function from validated model to solver-ready Spec.
// It owns the model → LP mapping exactly; backends own the algorithm.
//
// Design principles:
//   - Validation happens here, before any solver is involved; a malformed
//     model never reaches a backend.
//   - Name-preserving: variable names are product names, constraint names
//     are resource names, both verbatim. All downstream joins are by name.
//   - Side-effect free: the input model is read, never mutated; the Spec
//     copies every coefficient it needs.
package lp

import "github.com/katalvlaran/prodmix/mix"

// Formulate converts a problem model into its canonical LP:
//
//	objective:  Sense Σ_p UnitValue(p)·x_p
//	subject to: Σ_p Usage(r,p)·x_p ≤ Available(r)   for each resource r
//	            x_p ≥ 0                              for each product p
//
// with x_p continuous or integer per the model's Domain.
//
// Returns a mix validation error (errors.Is(err, mix.ErrValidation)) when
// the model violates any invariant; the solver is never reached in that
// case.
//
// Complexity: O(P·R) time and space for P products, R resources.
func Formulate(m *mix.Model) (Spec, error) {
	if err := m.Validate(); err != nil {
		return Spec{}, err
	}

	spec := Spec{
		Name:        m.Name,
		Sense:       m.Sense,
		Domain:      m.Domain,
		Variables:   make([]Variable, len(m.Products)),
		Constraints: make([]Constraint, len(m.Resources)),
	}

	for i, p := range m.Products {
		spec.Variables[i] = Variable{Name: p.Name, Cost: p.UnitValue}
	}

	for i, r := range m.Resources {
		coeffs := make(map[string]float64, len(m.Products))
		for _, p := range m.Products {
			coeffs[p.Name] = r.Usage[p.Name]
		}
		spec.Constraints[i] = Constraint{Name: r.Name, Coeffs: coeffs, Bound: r.Available}
	}

	return spec, nil
}

package lp

import "github.com/katalvlaran/prodmix/mix"

// Variable is one decision column of the LP: the production quantity of a
// single product. Lower bound is always 0 and there is no upper bound;
// the admissible values (fractional or whole) follow the Spec's Domain.
type Variable struct {
	// Name is the product name, verbatim. Solver results are mapped back
	// to products by this identifier, never by position.
	Name string

	// Cost is the objective coefficient: the product's unit value.
	Cost float64
}

// Constraint is one ≤ row of the LP: total consumption of a resource must
// not exceed its availability.
type Constraint struct {
	// Name is the resource name, verbatim. It is the key under which the
	// solver reports this row's dual value (shadow price).
	Name string

	// Coeffs maps variable (product) name → consumption per unit produced.
	// Zero-consumption entries are present explicitly.
	Coeffs map[string]float64

	// Bound is the right-hand side: the resource's available amount.
	Bound float64
}

// Spec is the solver-ready formulation of a product-mix model: objective
// direction, variable domain, one variable per product, and one ≤
// constraint per resource, all identified by name. A Spec is a plain
// value detached from the model it was built from.
type Spec struct {
	Name        string
	Sense       mix.Sense
	Domain      mix.Domain
	Variables   []Variable
	Constraints []Constraint
}

// Variable returns the variable with the given name, or false when absent.
func (s *Spec) Variable(name string) (Variable, bool) {
	for _, v := range s.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Constraint returns the constraint with the given name, or false when absent.
func (s *Spec) Constraint(name string) (Constraint, bool) {
	for _, c := range s.Constraints {
		if c.Name == name {
			return c, true
		}
	}
	return Constraint{}, false
}

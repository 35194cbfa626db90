// Package lp defines the solver-ready representation of a product-mix
// linear program and the single Formulate step that produces it.
//
// The Spec is deliberately narrow: a name, an objective sense, a variable
// domain, named variables with objective coefficients, and named ≤
// constraints with dense coefficient maps. Nothing solver-specific leaks
// in; every backend in prodmix/solver consumes this one shape.
//
// The crucial property is name preservation. Display order, formulation
// order, and solver iteration order need not coincide, so quantities and
// dual values are always joined back to products and resources by
// identifier — the Spec carries product and resource names verbatim for
// exactly that purpose.
package lp

// Package mix - validation of problem-model invariants.
//
// Validate is the single gate between user-entered data and formulation:
// every Model invariant (unique non-empty names, a complete usage matrix
// with no extras, all numerics ≥ 0) is checked here, before any solver is
// involved. Downstream packages may therefore assume a
// validated model and never re-check.
//
// Design principles:
//   - Deterministic, side-effect free; no logging, no panics on user input.
//   - Only sentinel errors from types.go, wrapped with positional context.
//   - O(P·R) worst case where P = products, R = resources.
package mix

import "fmt"

// Validate checks every model invariant and returns nil when the model is
// well-formed. All returned errors match ErrValidation via errors.Is, plus
// the specific sentinel naming the violated invariant.
//
// Checked, in order:
//  1. non-nil model with at least one product;
//  2. product names non-empty, pairwise distinct, unit values ≥ 0;
//  3. resource names non-empty, pairwise distinct, availabilities ≥ 0;
//  4. each resource's usage mapping has exactly one non-negative entry per
//     product — no missing entries, no extras.
//
// An empty resource slice is valid: the problem is then unconstrained and
// the solver reports Unbounded or a trivial optimum, which is data, not an
// error.
func (m *Model) Validate() error {
	if m == nil {
		return ErrNilModel
	}
	if len(m.Products) == 0 {
		return ErrNoProducts
	}

	// Stage 1 - products.
	seen := make(map[string]struct{}, len(m.Products))
	for _, p := range m.Products {
		if p.Name == "" {
			return fmt.Errorf("product: %w", ErrEmptyName)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("product %q: %w", p.Name, ErrDuplicateProduct)
		}
		seen[p.Name] = struct{}{}
		if p.UnitValue < 0 {
			return fmt.Errorf("product %q unit value %g: %w", p.Name, p.UnitValue, ErrNegativeValue)
		}
	}

	// Stage 2 - resources and the usage matrix.
	seenRes := make(map[string]struct{}, len(m.Resources))
	for _, r := range m.Resources {
		if r.Name == "" {
			return fmt.Errorf("resource: %w", ErrEmptyName)
		}
		if _, dup := seenRes[r.Name]; dup {
			return fmt.Errorf("resource %q: %w", r.Name, ErrDuplicateResource)
		}
		seenRes[r.Name] = struct{}{}
		if r.Available < 0 {
			return fmt.Errorf("resource %q available %g: %w", r.Name, r.Available, ErrNegativeValue)
		}

		// Exactly one entry per product, nothing else.
		for _, p := range m.Products {
			amount, ok := r.Usage[p.Name]
			if !ok {
				return fmt.Errorf("resource %q, product %q: %w", r.Name, p.Name, ErrMissingUsage)
			}
			if amount < 0 {
				return fmt.Errorf("resource %q, product %q usage %g: %w", r.Name, p.Name, amount, ErrNegativeValue)
			}
		}
		if len(r.Usage) != len(m.Products) {
			for name := range r.Usage {
				if _, ok := seen[name]; !ok {
					return fmt.Errorf("resource %q, entry %q: %w", r.Name, name, ErrUnknownUsage)
				}
			}
		}
	}

	return nil
}

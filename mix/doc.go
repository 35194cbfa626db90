// Package mix defines the canonical problem model for product-mix linear
// programs: products with per-unit values, resources with finite
// availability, and the usage matrix tying them together.
//
// A Model is a plain, order-preserving value:
//
//	m := mix.New("Wyndor", mix.Maximize, mix.Continuous).
//	    AddProduct("Doors", 300).
//	    AddProduct("Windows", 500).
//	    AddResource("Plant_1", 4, map[string]float64{"Doors": 1, "Windows": 0})
//
// Invariants (enforced by Validate, assumed by every downstream package):
//
//	– product names are pairwise distinct and non-empty;
//	– resource names are pairwise distinct and non-empty;
//	– every resource's usage mapping has exactly one entry per product
//	  (explicit zero when unused), and no extra entries;
//	– all numeric fields are ≥ 0.
//
// Lifecycle: a Model is constructed once per solve request from the current
// input state (FromInput for tabular form data, New/Add for programmatic
// use), validated, and treated as immutable from formulation onward. There
// is no session state in this package; each solve works on its own value
// (Clone yields a private deep copy when needed).
//
// Errors (sentinel): every violation wraps ErrValidation, so a single
// errors.Is(err, mix.ErrValidation) distinguishes "fix the input" from
// solver-side failures. See types.go for the specific sentinels.
package mix

// Package mix - tabular input boundary.
//
// Input mirrors what a form-driven front end collects: flat product and
// resource rows plus a resource × product usage matrix. FromInput is the
// only place where presentation-level bounds (1..MaxProducts products,
// 1..MaxResources resources) are enforced; the core Model deliberately
// accepts wider shapes (e.g. zero resources) so that programmatic callers
// stay unrestricted.
package mix

import "fmt"

// ProductInput is one product row of the input table.
type ProductInput struct {
	Name      string
	UnitValue float64
}

// ResourceInput is one resource row of the input table.
type ResourceInput struct {
	Name      string
	Available float64
}

// Input is the structured form state a presentation layer hands over per
// solve request. Usage is resource-major: Usage[i][j] is the amount of
// resource i consumed per unit of product j, in row/column order of the
// Resources and Products slices.
type Input struct {
	Name      string
	Sense     Sense
	Domain    Domain
	Products  []ProductInput
	Resources []ResourceInput
	Usage     [][]float64
}

// FromInput builds a validated Model from tabular input.
//
// Errors (all matching ErrValidation):
//   - ErrCount when product or resource counts fall outside [1, 10];
//   - ErrShape when the usage matrix is not resources × products;
//   - any Validate sentinel for name/number violations.
func FromInput(in Input) (*Model, error) {
	if n := len(in.Products); n < 1 || n > MaxProducts {
		return nil, fmt.Errorf("%d products: %w", n, ErrCount)
	}
	if n := len(in.Resources); n < 1 || n > MaxResources {
		return nil, fmt.Errorf("%d resources: %w", n, ErrCount)
	}
	if len(in.Usage) != len(in.Resources) {
		return nil, fmt.Errorf("%d usage rows for %d resources: %w", len(in.Usage), len(in.Resources), ErrShape)
	}

	m := New(in.Name, in.Sense, in.Domain)
	for _, p := range in.Products {
		m.AddProduct(p.Name, p.UnitValue)
	}
	for i, r := range in.Resources {
		row := in.Usage[i]
		if len(row) != len(in.Products) {
			return nil, fmt.Errorf("usage row %d has %d columns for %d products: %w", i, len(row), len(in.Products), ErrShape)
		}
		usage := make(map[string]float64, len(in.Products))
		for j, p := range in.Products {
			usage[p.Name] = row[j]
		}
		m.AddResource(r.Name, r.Available, usage)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

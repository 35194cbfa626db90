package mix

import (
	"errors"
	"fmt"
)

// MaxProducts bounds the number of products accepted from tabular input.
const MaxProducts = 10

// MaxResources bounds the number of resources accepted from tabular input.
const MaxResources = 10

// ErrValidation is the umbrella sentinel for every malformed-model condition.
// All specific validation sentinels below wrap it, so callers may either
// match the class (errors.Is(err, ErrValidation)) or the precise cause.
var ErrValidation = errors.New("mix: invalid problem model")

var (
	// ErrNilModel indicates a nil *Model was passed where a model is required.
	ErrNilModel = fmt.Errorf("%w: model is nil", ErrValidation)

	// ErrNoProducts indicates the model defines no products; a product-mix
	// problem without decision variables has no meaningful formulation.
	ErrNoProducts = fmt.Errorf("%w: model has no products", ErrValidation)

	// ErrEmptyName indicates a product or resource with an empty identifier.
	// Names are the join keys between model, LP, and solver result.
	ErrEmptyName = fmt.Errorf("%w: empty identifier", ErrValidation)

	// ErrDuplicateProduct indicates two products share the same name.
	ErrDuplicateProduct = fmt.Errorf("%w: duplicate product name", ErrValidation)

	// ErrDuplicateResource indicates two resources share the same name.
	ErrDuplicateResource = fmt.Errorf("%w: duplicate resource name", ErrValidation)

	// ErrNegativeValue indicates a negative unit value, availability, or
	// usage coefficient. All numeric fields of the model are ≥ 0.
	ErrNegativeValue = fmt.Errorf("%w: negative numeric field", ErrValidation)

	// ErrMissingUsage indicates a resource whose usage mapping lacks an entry
	// for some product. Unused resources must carry an explicit zero.
	ErrMissingUsage = fmt.Errorf("%w: missing usage entry", ErrValidation)

	// ErrUnknownUsage indicates a usage entry keyed by a name that is not a
	// product of the model.
	ErrUnknownUsage = fmt.Errorf("%w: usage entry for unknown product", ErrValidation)

	// ErrCount indicates a product or resource count outside the accepted
	// tabular-input range [1, MaxProducts] / [1, MaxResources].
	ErrCount = fmt.Errorf("%w: count out of range", ErrValidation)

	// ErrShape indicates a usage matrix whose dimensions do not match the
	// declared products × resources.
	ErrShape = fmt.Errorf("%w: usage matrix shape mismatch", ErrValidation)
)

// Sense selects the optimization direction of the objective.
type Sense int

const (
	// Maximize treats unit values as per-unit profit to be maximized.
	Maximize Sense = iota

	// Minimize treats unit values as per-unit cost to be minimized.
	Minimize
)

// String returns the lower-case name of the sense ("maximize"/"minimize").
func (s Sense) String() string {
	if s == Minimize {
		return "minimize"
	}
	return "maximize"
}

// Domain selects the admissible values of the decision variables.
type Domain int

const (
	// Continuous allows fractional production quantities.
	Continuous Domain = iota

	// Integer restricts production quantities to whole units.
	Integer
)

// String returns the name of the domain ("Continuous"/"Integer").
func (d Domain) String() string {
	if d == Integer {
		return "Integer"
	}
	return "Continuous"
}

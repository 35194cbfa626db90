package mix

// Product is one producible good: a decision variable of the mix problem.
//
// UnitValue is the per-unit profit when the model maximizes, or the
// per-unit cost when it minimizes. It must be non-negative.
type Product struct {
	Name      string
	UnitValue float64
}

// Resource is one finite capacity consumed by production.
//
// Usage maps product name → amount of this resource consumed per unit
// produced. A valid model carries exactly one entry per product — an
// explicit zero when the product does not touch the resource.
type Resource struct {
	Name      string
	Available float64
	Usage     map[string]float64
}

// Model is the canonical in-memory description of a product-mix problem.
//
// Products and Resources keep their insertion order; the order is the
// display/report order and carries no semantic weight for the solve.
// A Model is a plain value with no ambient state: construct one per solve
// request, validate it, and treat it as immutable once formulation begins
// (Formulate never mutates it; use Clone when a private snapshot is needed).
type Model struct {
	Name      string
	Sense     Sense
	Domain    Domain
	Products  []Product
	Resources []Resource
}

// New returns an empty Model with the given name, objective sense, and
// variable domain. Populate it with AddProduct / AddResource.
func New(name string, sense Sense, domain Domain) *Model {
	return &Model{Name: name, Sense: sense, Domain: domain}
}

// AddProduct appends a product and returns the model for chaining.
// No validation happens here; call Validate once the model is complete.
func (m *Model) AddProduct(name string, unitValue float64) *Model {
	m.Products = append(m.Products, Product{Name: name, UnitValue: unitValue})
	return m
}

// AddResource appends a resource and returns the model for chaining.
// The usage map is copied, so the caller's map may be reused or mutated
// freely afterwards.
func (m *Model) AddResource(name string, available float64, usage map[string]float64) *Model {
	cp := make(map[string]float64, len(usage))
	for product, amount := range usage {
		cp[product] = amount
	}
	m.Resources = append(m.Resources, Resource{Name: name, Available: available, Usage: cp})
	return m
}

// Product returns the product with the given name, or false when absent.
func (m *Model) Product(name string) (Product, bool) {
	for _, p := range m.Products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// Resource returns the resource with the given name, or false when absent.
func (m *Model) Resource(name string) (Resource, bool) {
	for _, r := range m.Resources {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}

// Clone returns a deep copy of the model: slices and usage maps are
// duplicated, so mutating the copy never aliases the original.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	cp := &Model{
		Name:      m.Name,
		Sense:     m.Sense,
		Domain:    m.Domain,
		Products:  append([]Product(nil), m.Products...),
		Resources: make([]Resource, len(m.Resources)),
	}
	for i, r := range m.Resources {
		usage := make(map[string]float64, len(r.Usage))
		for product, amount := range r.Usage {
			usage[product] = amount
		}
		cp.Resources[i] = Resource{Name: r.Name, Available: r.Available, Usage: usage}
	}
	return cp
}

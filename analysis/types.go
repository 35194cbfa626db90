package analysis

import "github.com/katalvlaran/prodmix/solver"

// BindingEps is the slack tolerance below which a resource constraint is
// considered binding (satisfied with equality at the optimum). A design
// constant, not user-configurable.
const BindingEps = 0.001

// ShadowEps is the magnitude above which a shadow price is considered
// economically meaningful in narrative output. Below it the resource is
// reported as having no marginal value. A design constant, independent of
// BindingEps: zero slack and a non-negligible dual are related but
// distinct notions and are never derived from one another.
const ShadowEps = 0.01

// Quantity is one line of the optimal production plan.
type Quantity struct {
	Product string
	Units   float64
}

// ResourceUsage is the derived utilization of one resource at the optimum.
//
// Used + Slack == Available holds exactly (Slack is defined as the
// difference). Utilization is Used/Available in percent, 0 when the
// resource has zero availability.
type ResourceUsage struct {
	Resource    string
	Used        float64
	Available   float64
	Slack       float64
	Utilization float64
	Binding     bool
}

// ShadowPrice is the marginal value of one resource: the dual value of
// its constraint. Known is false when the backend supplied no dual for it
// (integer solves, dual-less backends); Price is meaningless in that case
// and must not be read as zero.
type ShadowPrice struct {
	Resource string
	Price    float64
	Known    bool
}

// Result is the analyzed outcome of one solve.
//
// For any Status other than Optimal only Status is populated; querying
// plan, usage, or shadow prices of a non-optimal result is undefined and
// the slices are nil. For Optimal results all three slices follow the
// model's display order.
type Result struct {
	Status    solver.Status
	Objective float64
	Plan      []Quantity
	Usage     []ResourceUsage
	Shadow    []ShadowPrice
}

// Optimal reports whether derived data is available on this result.
func (r Result) Optimal() bool {
	return r.Status == solver.Optimal
}

// Package analysis turns raw solver output into the economic picture a
// decision maker reads: production plan, resource usage and slack,
// binding constraints, shadow prices, and interpretation text — plus a
// fixed-layout plain-text report for export.
//
// The lifecycle of one solve is strictly linear:
//
//	model (validated) → lp.Formulate → solver backend → Analyze → Result
//
// with Run wiring the whole chain. Only an Optimal status permits
// derivation; Infeasible, Unbounded, and Undefined short-circuit into a
// status-only Result (they are outcomes to explain to the user, never
// errors). Each cycle runs to completion on its own immutable model
// snapshot before the next may start; nothing is shared across solves.
//
// Two numeric policies govern the narrative, both fixed design constants:
//
//	BindingEps (0.001) – a constraint is binding when |slack| falls below it;
//	ShadowEps  (0.01)  – a shadow price is worth mentioning only above it.
//
// The two are computed independently. A degenerate LP may present a
// binding constraint with a zero dual (or, in edge cases, the reverse);
// consumers must not infer one flag from the other.
package analysis

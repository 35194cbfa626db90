// Package prodmix is an in-memory toolkit for formulating, solving, and
// interpreting product-mix linear programs — from the tabular problem
// description all the way to shadow-price analysis.
//
// 🚀 What is prodmix?
//
//	A small, focused library that brings together:
//		• Problem model: products, resources, a usage matrix — validated once, immutable per solve
//		• Formulation: canonical LP construction (one variable per product, one ≤ row per resource)
//		• Solving: pluggable backends — HiGHS (LP/MIP, duals) or a pure-Go dense simplex
//		• Analysis: resource usage, slack, binding constraints, shadow prices, what-if text
//		• Reporting: a plain-text solution report suitable for file export
//
// ✨ Why choose prodmix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact by construction – name-keyed mapping between model, LP, and result (never positional)
//   - Honest outcomes – Infeasible and Unbounded are data, not errors
//   - Extensible – the solver boundary is a one-method interface; swap backends freely
//
// Everything is organized under five subpackages:
//
//	mix/      — Product, Resource, Model, Sense, Domain + validation
//	lp/       — solver-ready LP specification and the Formulate step
//	solver/   — backend boundary: Status, Result, Options, HiGHS & Simplex adapters
//	analysis/ — derived quantities (usage, slack, binding, shadow prices) + text report
//	preset/   — classic fixture problems (Wyndor Glass, Bakery)
//
// Quick sketch:
//
//	model, _ := mix.New("Wyndor", mix.Maximize, mix.Continuous)
//	→ lp.Formulate(model)
//	→ solver.Solve(spec)
//	→ analysis.Analyze(model, raw)
//
// Dive into the examples/ directory for complete, runnable programs.
package prodmix

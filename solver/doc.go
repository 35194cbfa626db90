// Package solver defines the backend boundary of prodmix and two real
// backends behind it.
//
// The boundary is deliberately minimal: a Solver takes one lp.Spec and
// returns one Result. Everything a consumer may rely on is part of the
// Result contract:
//
//	– Status is one of {NotSolved, Optimal, Infeasible, Unbounded, Undefined};
//	– Infeasible / Unbounded / Undefined are data, never errors — errors
//	  (wrapping ErrInvocation) mean the engine itself failed to run;
//	– Quantities and Objective are present only for Optimal;
//	– Duals are keyed by constraint name and may be absent (nil): integer
//	  solves have no dual theory, and some backends simply do not report
//	  duals. Absent means "unavailable", never "zero".
//
// Backends:
//
//	HiGHS   – github.com/bartolsthoorn/gohighs: LP + MIP, row duals for
//	          continuous problems, time-limit support. The default choice.
//	Simplex – gonum.org/v1/gonum dense simplex: continuous only, no duals,
//	          pure Go. Useful where cgo is unwelcome and for exercising
//	          backend substitution.
//
// Both are synchronous and stateless: each Solve call is independent, so a
// single backend value may be reused across solves (one at a time; the
// formulate-solve-analyze cycle is a sequential request/response).
package solver

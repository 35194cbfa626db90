package solver_test

import (
	"testing"

	"github.com/katalvlaran/prodmix/mix"
	"github.com/katalvlaran/prodmix/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSimplex_WyndorOptimal verifies the dense simplex backend against the
// known Wyndor optimum. This backend reports no duals.
func TestSimplex_WyndorOptimal(t *testing.T) {
	res, err := solver.NewSimplex(solver.DefaultOptions()).Solve(wyndorSpec(t, mix.Continuous))
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, res.Status)

	assert.InDelta(t, 2.0, res.Quantities["Doors"], delta)
	assert.InDelta(t, 6.0, res.Quantities["Windows"], delta)
	assert.InDelta(t, 3600.0, res.Objective, delta)
	assert.Nil(t, res.Duals, "the simplex backend never reports duals")
}

// TestSimplex_IntegerUnsupported verifies the continuous-only restriction.
func TestSimplex_IntegerUnsupported(t *testing.T) {
	_, err := solver.NewSimplex(solver.DefaultOptions()).Solve(wyndorSpec(t, mix.Integer))
	assert.ErrorIs(t, err, solver.ErrIntegerUnsupported)
}

// TestSimplex_Unbounded verifies both unbounded shapes: no rows at all,
// and rows that do not touch the profitable variable.
func TestSimplex_Unbounded(t *testing.T) {
	s := solver.NewSimplex(solver.DefaultOptions())

	res, err := s.Solve(freeSpec(t))
	require.NoError(t, err)
	assert.Equal(t, solver.Unbounded, res.Status)

	res, err = s.Solve(zeroUsageSpec(t))
	require.NoError(t, err)
	assert.Equal(t, solver.Unbounded, res.Status)
}

// TestSimplex_ZeroAvailability verifies the zero-capacity edge: optimal
// zero plan rather than infeasibility.
func TestSimplex_ZeroAvailability(t *testing.T) {
	res, err := solver.NewSimplex(solver.DefaultOptions()).Solve(chokedSpec(t))
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, res.Status)
	assert.InDelta(t, 0.0, res.Quantities["Doors"], delta)
}

// TestSimplex_MinimizeNoRows verifies the no-constraint minimize shortcut:
// non-negative costs make the zero plan optimal.
func TestSimplex_MinimizeNoRows(t *testing.T) {
	m := mix.New("idle", mix.Minimize, mix.Continuous).AddProduct("Doors", 300)
	spec := formulated(t, m)

	res, err := solver.NewSimplex(solver.DefaultOptions()).Solve(spec)
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, res.Status)
	assert.InDelta(t, 0.0, res.Quantities["Doors"], delta)
	assert.InDelta(t, 0.0, res.Objective, delta)
}

// TestBackends_Agree cross-checks the two backends on the same spec:
// identical status, objective, and quantities within tolerance.
func TestBackends_Agree(t *testing.T) {
	spec := wyndorSpec(t, mix.Continuous)

	hres, err := solver.NewHiGHS(solver.DefaultOptions()).Solve(spec)
	require.NoError(t, err)
	sres, err := solver.NewSimplex(solver.DefaultOptions()).Solve(spec)
	require.NoError(t, err)

	require.Equal(t, hres.Status, sres.Status)
	assert.InDelta(t, hres.Objective, sres.Objective, delta)
	for name, q := range hres.Quantities {
		assert.InDelta(t, q, sres.Quantities[name], delta, name)
	}
}

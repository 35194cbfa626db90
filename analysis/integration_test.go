package analysis_test

import (
	"testing"

	"github.com/katalvlaran/prodmix/analysis"
	"github.com/katalvlaran/prodmix/mix"
	"github.com/katalvlaran/prodmix/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_WyndorHiGHS is the end-to-end classic scenario through the
// HiGHS backend: quantities, objective, slack/binding pattern, and
// meaningful shadow prices.
func TestRun_WyndorHiGHS(t *testing.T) {
	res, err := analysis.Run(wyndor(), solver.NewHiGHS(solver.DefaultOptions()))
	require.NoError(t, err)
	require.True(t, res.Optimal())

	assert.InDelta(t, 2.0, res.Plan[0].Units, 1e-6)
	assert.InDelta(t, 6.0, res.Plan[1].Units, 1e-6)
	assert.InDelta(t, 3600.0, res.Objective, 1e-6)

	assert.InDelta(t, 2.0, res.Usage[0].Slack, 1e-6)
	assert.False(t, res.Usage[0].Binding)
	assert.True(t, res.Usage[1].Binding)
	assert.True(t, res.Usage[2].Binding)

	require.True(t, res.Shadow[1].Known)
	assert.InDelta(t, 150.0, res.Shadow[1].Price, 1e-6)
	require.True(t, res.Shadow[2].Known)
	assert.InDelta(t, 100.0, res.Shadow[2].Price, 1e-6)
}

// TestRun_WyndorSimplex runs the same scenario through the dense simplex
// backend: identical primal picture, shadow prices unavailable.
func TestRun_WyndorSimplex(t *testing.T) {
	res, err := analysis.Run(wyndor(), solver.NewSimplex(solver.DefaultOptions()))
	require.NoError(t, err)
	require.True(t, res.Optimal())

	assert.InDelta(t, 2.0, res.Plan[0].Units, 1e-6)
	assert.InDelta(t, 6.0, res.Plan[1].Units, 1e-6)
	assert.InDelta(t, 3600.0, res.Objective, 1e-6)
	assert.True(t, res.Usage[1].Binding)

	for _, sp := range res.Shadow {
		assert.False(t, sp.Known, sp.Resource)
	}
}

// TestRun_IntegerDomain verifies the MIP path end to end: integral plan,
// no shadow prices, binding analysis still intact.
func TestRun_IntegerDomain(t *testing.T) {
	m := wyndor()
	m.Domain = mix.Integer

	res, err := analysis.Run(m, solver.NewHiGHS(solver.DefaultOptions()))
	require.NoError(t, err)
	require.True(t, res.Optimal())

	assert.InDelta(t, 2.0, res.Plan[0].Units, 1e-6)
	assert.InDelta(t, 6.0, res.Plan[1].Units, 1e-6)
	for _, sp := range res.Shadow {
		assert.False(t, sp.Known, "integer solves carry no duals")
	}
}

// TestRun_UnboundedEndToEnd verifies the unconstrained-model path through
// a real backend: Unbounded status, no derived data, and a renderable
// report.
func TestRun_UnboundedEndToEnd(t *testing.T) {
	m := mix.New("free", mix.Maximize, mix.Continuous).AddProduct("Doors", 300)

	res, err := analysis.Run(m, solver.NewHiGHS(solver.DefaultOptions()))
	require.NoError(t, err)
	assert.Equal(t, solver.Unbounded, res.Status)
	assert.Nil(t, res.Plan)

	text := analysis.Report(m, res)
	assert.Contains(t, text, "Status: Unbounded")
}

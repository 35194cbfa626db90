package preset_test

import (
	"testing"

	"github.com/katalvlaran/prodmix/analysis"
	"github.com/katalvlaran/prodmix/preset"
	"github.com/katalvlaran/prodmix/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPresets_Valid verifies both fixtures pass model validation.
func TestPresets_Valid(t *testing.T) {
	assert.NoError(t, preset.Wyndor().Validate())
	assert.NoError(t, preset.Bakery().Validate())
}

// TestWyndor_KnownOptimum solves the Wyndor fixture and checks the
// textbook answer.
func TestWyndor_KnownOptimum(t *testing.T) {
	res, err := analysis.Run(preset.Wyndor(), solver.NewHiGHS(solver.DefaultOptions()))
	require.NoError(t, err)
	require.True(t, res.Optimal())
	assert.InDelta(t, 2.0, res.Plan[0].Units, 1e-6)
	assert.InDelta(t, 6.0, res.Plan[1].Units, 1e-6)
	assert.InDelta(t, 3600.0, res.Objective, 1e-6)
}

// TestBakery_Solves verifies the bakery fixture reaches an optimum with a
// non-negative plan that respects every resource.
func TestBakery_Solves(t *testing.T) {
	res, err := analysis.Run(preset.Bakery(), solver.NewHiGHS(solver.DefaultOptions()))
	require.NoError(t, err)
	require.True(t, res.Optimal())

	for _, q := range res.Plan {
		assert.GreaterOrEqual(t, q.Units, 0.0, q.Product)
	}
	for _, u := range res.Usage {
		assert.LessOrEqual(t, u.Used, u.Available+1e-9, u.Resource)
	}
}

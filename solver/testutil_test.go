package solver_test

import (
	"testing"

	"github.com/katalvlaran/prodmix/lp"
	"github.com/katalvlaran/prodmix/mix"
	"github.com/stretchr/testify/require"
)

// formulated formulates a model, failing the test on validation errors.
func formulated(t *testing.T, m *mix.Model) lp.Spec {
	t.Helper()
	spec, err := lp.Formulate(m)
	require.NoError(t, err)
	return spec
}

// wyndorSpec formulates the classic Wyndor Glass problem:
// max 300·Doors + 500·Windows, three plant-capacity rows.
// Known optimum: Doors=2, Windows=6, objective 3600.
func wyndorSpec(t *testing.T, domain mix.Domain) lp.Spec {
	t.Helper()
	m := mix.New("Wyndor", mix.Maximize, domain).
		AddProduct("Doors", 300).
		AddProduct("Windows", 500).
		AddResource("Plant_1", 4, map[string]float64{"Doors": 1, "Windows": 0}).
		AddResource("Plant_2", 12, map[string]float64{"Doors": 0, "Windows": 2}).
		AddResource("Plant_3", 18, map[string]float64{"Doors": 3, "Windows": 2})
	spec, err := lp.Formulate(m)
	require.NoError(t, err)
	return spec
}

// freeSpec formulates a one-product maximize problem with no constraining
// resource at all — the textbook unbounded case.
func freeSpec(t *testing.T) lp.Spec {
	t.Helper()
	m := mix.New("free", mix.Maximize, mix.Continuous).AddProduct("Doors", 300)
	spec, err := lp.Formulate(m)
	require.NoError(t, err)
	return spec
}

// zeroUsageSpec formulates a maximize problem whose single resource does
// not constrain the product (all-zero usage row): also unbounded.
func zeroUsageSpec(t *testing.T) lp.Spec {
	t.Helper()
	m := mix.New("loose", mix.Maximize, mix.Continuous).
		AddProduct("Doors", 300).
		AddResource("Plant_1", 4, map[string]float64{"Doors": 0})
	spec, err := lp.Formulate(m)
	require.NoError(t, err)
	return spec
}

// chokedSpec formulates a maximize problem whose single resource has zero
// availability and positive usage: the only feasible plan is zero output.
func chokedSpec(t *testing.T) lp.Spec {
	t.Helper()
	m := mix.New("choked", mix.Maximize, mix.Continuous).
		AddProduct("Doors", 300).
		AddResource("Plant_1", 0, map[string]float64{"Doors": 1})
	spec, err := lp.Formulate(m)
	require.NoError(t, err)
	return spec
}

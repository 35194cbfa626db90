// Package preset ships the classic textbook product-mix problems as
// ready-made models. They are fixture data, not defaults: the formulation
// and analysis code knows nothing about them.
package preset

import "github.com/katalvlaran/prodmix/mix"

// Wyndor returns the Wyndor Glass Co. problem: two products (Doors,
// Windows), three plant-capacity resources, maximize profit.
// Known continuous optimum: Doors=2, Windows=6, profit 3600.
func Wyndor() *mix.Model {
	return mix.New("Wyndor Glass", mix.Maximize, mix.Continuous).
		AddProduct("Doors", 300).
		AddProduct("Windows", 500).
		AddResource("Plant_1", 4, map[string]float64{"Doors": 1, "Windows": 0}).
		AddResource("Plant_2", 12, map[string]float64{"Doors": 0, "Windows": 2}).
		AddResource("Plant_3", 18, map[string]float64{"Doors": 3, "Windows": 2})
}

// Bakery returns the bakery planning problem: two products (Cookies,
// Cakes) competing for oven time, mixing time, and ingredients.
func Bakery() *mix.Model {
	return mix.New("Bakery", mix.Maximize, mix.Continuous).
		AddProduct("Cookies", 2).
		AddProduct("Cakes", 8).
		AddResource("Oven_Time", 40, map[string]float64{"Cookies": 0.5, "Cakes": 2}).
		AddResource("Mixing_Time", 30, map[string]float64{"Cookies": 0.3, "Cakes": 1}).
		AddResource("Ingredients", 50, map[string]float64{"Cookies": 0.2, "Cakes": 1.5})
}

package PDDO1D

import "math"

// WeightFunction weights a bond of length xi inside a horizon of the given length
type WeightFunction func(xi, horizon float64) float64

// GaussianWeight is exp(-4 (|xi|/horizon)^2)
func GaussianWeight(xi, horizon float64) float64 {
	r := math.Abs(xi) / horizon
	return math.Exp(-4. * r * r)
}

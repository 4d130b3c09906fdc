package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ConditionNumber is the 2-norm condition number from the singular values
func (m Matrix) ConditionNumber() float64 {
	minVal, maxVal := m.SingularValues()
	if minVal == 0 {
		return math.Inf(1)
	}
	return maxVal / minVal
}

// SingularValues returns the smallest and largest singular values
func (m Matrix) SingularValues() (min, max float64) {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDNone) {
		return 0, math.Inf(1)
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, math.Inf(1)
	}
	return values[len(values)-1], values[0]
}

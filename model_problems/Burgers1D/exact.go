package Burgers1D

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BreakTime is when characteristics of u0 = sin(πx) first cross and the shock forms
const BreakTime = 1. / math.Pi

/*
ExactSine is the smooth solution for u0 = sin(πx) before BreakTime, found from
the characteristic relation

	u = sin(π(x - u t))

by Newton iteration starting from the initial value at x.
*/
func ExactSine(x, t float64) (u float64) {
	var (
		maxIter = 100
		tol     = 1.e-14
	)
	u = math.Sin(math.Pi * x)
	if t == 0 {
		return
	}
	for i := 0; i < maxIter; i++ {
		arg := math.Pi * (x - u*t)
		g := u - math.Sin(arg)
		dg := 1 + math.Pi*t*math.Cos(arg)
		du := g / dg
		u -= du
		if math.Abs(du) < tol {
			break
		}
	}
	return
}

func ExactSineField(X []float64, t float64) (u []float64) {
	u = make([]float64, len(X))
	for i, x := range X {
		u[i] = ExactSine(x, t)
	}
	return
}

// ErrorNorms returns the mean absolute, root mean square and maximum pointwise errors
func ErrorNorms(u, exact []float64) (l1, l2, linf float64) {
	N := float64(len(u))
	l1 = floats.Distance(u, exact, 1) / N
	l2 = floats.Distance(u, exact, 2) / math.Sqrt(N)
	linf = floats.Distance(u, exact, math.Inf(1))
	return
}

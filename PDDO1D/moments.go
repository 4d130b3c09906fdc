package PDDO1D

import (
	"github.com/notargets/gopddo/utils"
)

// Monomials is the basis vector [1, eta, eta^2, ..., eta^order]
func Monomials(eta float64, order int) (P utils.Vector) {
	P = utils.NewVector(order + 1)
	data := P.Data()
	for i := range data {
		data[i] = utils.POW(eta, i)
	}
	return
}

/*
MomentMatrix is the weighted least squares normal matrix of a family

	A = sum_i w(xi_i) P(eta_i) P(eta_i)^T

The basis is evaluated at the bond lengths in grid spacings, eta_i = xi_i/dx,
so the conditioning of A depends on the family and the kernel only. Physical
monomials would add a factor dx^(p+q) to entry (p,q).
*/
func MomentMatrix(f *Family, horizon float64, order int, w WeightFunction) (A utils.Matrix) {
	A = utils.NewMatrix(order+1, order+1)
	for i := 0; i < f.Len(); i++ {
		P := Monomials(f.Eta(i), order)
		A.Add(P.Outer(P).Scale(w(f.Xi(i), horizon)))
	}
	return
}

// WeightedMonomials has one row per family member, w(xi_i) P(eta_i)^T
func WeightedMonomials(f *Family, horizon float64, order int, w WeightFunction) (W utils.Matrix) {
	W = utils.NewMatrix(f.Len(), order+1)
	for i := 0; i < f.Len(); i++ {
		wi := w(f.Xi(i), horizon)
		for q, val := range Monomials(f.Eta(i), order).Data() {
			W.Set(i, q, wi*val)
		}
	}
	return
}

// NormalizationMatrix is diag(0!, 1!, ..., order!). Row k requires the k-th
// derivative operator to return k! when applied to eta^k.
func NormalizationMatrix(order int) (b utils.Matrix) {
	d := make([]float64, order+1)
	for i := range d {
		d[i] = utils.Factorial(i)
	}
	return utils.NewDiagMatrix(d)
}

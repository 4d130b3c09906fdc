package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(N int, dataO ...[]float64) Vector {
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			panic(fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v", N, len(dataO[0])))
		}
		return Vector{mat.NewVecDense(N, dataO[0])}
	}
	return Vector{mat.NewVecDense(N, make([]float64, N))}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Data() []float64          { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Copy() Vector {
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.Data())
	return NewVector(len(data), data)
}

func (v Vector) Linspace(beg, end float64) Vector {
	var (
		data = v.Data()
		N    = len(data)
		span = end - beg
	)
	if N == 1 {
		data[0] = beg
		return v
	}
	step := span / float64(N-1)
	for i := range data {
		data[i] = beg + float64(i)*step
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	floats.Scale(a, v.Data())
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.Data()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	var (
		data = v.Data()
	)
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return v
}

func (v Vector) Sum() float64 {
	return floats.Sum(v.Data())
}

func (v Vector) Min() (min float64) {
	return floats.Min(v.Data())
}

func (v Vector) Max() (max float64) {
	return floats.Max(v.Data())
}

// Subset gathers the entries at the indices in I
func (v Vector) Subset(I Index) Vector {
	var (
		data = v.Data()
		r    = make([]float64, len(I))
	)
	for i, ind := range I {
		r[i] = data[ind]
	}
	return NewVector(len(I), r)
}

func (v Vector) Outer(w Vector) Matrix {
	var (
		nr, nc = v.Len(), w.Len()
		R      = NewMatrix(nr, nc)
	)
	R.M.Outer(1, v.V, w.V)
	return R
}

package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	// Col, Set
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, -6,
		})
		assert.Equal(t, []float64{1, 4}, M.Col(0).Data())
		assert.Equal(t, []float64{3, -6}, M.Col(-1).Data()) // Negative index counts from the end
		M.Set(-1, 0, 7)
		assert.Equal(t, 7., M.At(1, 0))
	}
	// Mul, Scale, Add, Copy
	{
		A := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		B := NewDiagMatrix([]float64{2, 3})
		assert.Equal(t, []float64{2, 6, 6, 12}, A.Mul(B).Data())
		C := A.Copy().Scale(2).Add(A)
		assert.Equal(t, []float64{3, 6, 9, 12}, C.Data())
		assert.Equal(t, []float64{1, 2, 3, 4}, A.Data())
	}
	// Accumulated outer products
	{
		A := NewMatrix(3, 3)
		v, w := NewVector(3, []float64{1, 2, 3}), NewVector(3, []float64{1, 0, -1})
		A.Add(v.Outer(v).Scale(2)).Add(w.Outer(w))
		assert.Equal(t, []float64{
			3, 4, 5,
			4, 8, 12,
			5, 12, 19,
		}, A.Data())
	}
	// Read only protection
	{
		A := NewMatrix(2, 2)
		A.SetReadOnly("A")
		assert.Panics(t, func() { A.Set(0, 0, 1) })
		assert.Panics(t, func() { A.Scale(1) })
		assert.Panics(t, func() { A.Add(NewMatrix(2, 2)) })
		assert.NotPanics(t, func() { A.Copy().Set(0, 0, 1) })
	}
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
}

func TestMatrix_Solve(t *testing.T) {
	{
		A := NewMatrix(3, 3, []float64{
			4, 1, 0,
			1, 3, 1,
			0, 1, 2,
		})
		B := NewDiagMatrix([]float64{1, 1, 2})
		X, err := A.Solve(B)
		require.NoError(t, err)
		AX := A.Mul(X)
		for i, val := range AX.Data() {
			assert.InDelta(t, B.Data()[i], val, 1e-14)
		}
		// The receiver is not factored in place
		assert.Equal(t, 4., A.At(0, 0))
		assert.Equal(t, 2., A.At(2, 2))
	}
	{ // Zero pivot
		_, err := NewMatrix(2, 2).Solve(NewDiagMatrix([]float64{1, 1}))
		assert.True(t, errors.Is(err, ErrSingular))
	}
	{ // Numerically rank deficient
		A := NewMatrix(2, 2, []float64{
			1, 1,
			1, math.Nextafter(1, 2),
		})
		_, err := A.Solve(NewDiagMatrix([]float64{1, 1}))
		assert.True(t, errors.Is(err, ErrSingular))
	}
	{
		_, err := NewMatrix(2, 3).Solve(NewMatrix(2, 1))
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrSingular))
	}
}

func TestMatrix_ConditionNumber(t *testing.T) {
	A := NewDiagMatrix([]float64{4, 0.5, 2})
	assert.InDelta(t, 8, A.ConditionNumber(), 1e-12)
	min, max := A.SingularValues()
	assert.InDelta(t, 0.5, min, 1e-14)
	assert.InDelta(t, 4, max, 1e-14)
	assert.True(t, math.IsInf(NewMatrix(2, 2).ConditionNumber(), 1))
}

func TestMath(t *testing.T) {
	assert.Equal(t, 1., Factorial(0))
	assert.Equal(t, 1., Factorial(1))
	assert.Equal(t, 120., Factorial(5))
	assert.Equal(t, 2, RoundInt(2.5))
	assert.Equal(t, 4, RoundInt(3.5))
	assert.Equal(t, 2, RoundInt(2.015))
	assert.Equal(t, -2, RoundInt(-2.5))
	for p := -9; p <= 9; p++ {
		assert.InDelta(t, math.Pow(1.3, float64(p)), POW(1.3, p), 1e-12)
	}
	assert.Equal(t, []float64{2, 2, 2}, ConstArray(3, 2))
	assert.True(t, IsNan([]float64{1, math.NaN()}))
	assert.True(t, IsNan(NewVector(2, []float64{math.NaN(), 0})))
	assert.False(t, IsNan(NewMatrix(2, 2)))
	assert.False(t, IsNan(1.))
	assert.NotEmpty(t, GetMemUsage())
}

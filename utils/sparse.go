package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

type CSR struct {
	M *sparse.CSR
}

// NewCirculant assembles the N x N periodic banded operator whose row j holds
// weights[i] in column (j + offsets[i]) mod N. Columns that wrap onto each
// other when N is smaller than the stencil accumulate.
func NewCirculant(N int, offsets Index, weights []float64) (R CSR) {
	if len(offsets) != len(weights) {
		panic(fmt.Errorf("length of offsets and weights are not equal: %d, %d", len(offsets), len(weights)))
	}
	dok := sparse.NewDOK(N, N)
	for j := 0; j < N; j++ {
		for i, off := range offsets {
			col := WrapIndex(j+off, N)
			dok.Set(j, col, dok.At(j, col)+weights[i])
		}
	}
	R = CSR{dok.ToCSR()}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

// MulVec returns m·x
func (m CSR) MulVec(x []float64) (r []float64) {
	var (
		nr, nc = m.Dims()
	)
	if len(x) != nc {
		panic(fmt.Errorf("dimension mismatch in MulVec: %dx%d times %d", nr, nc, len(x)))
	}
	dst := mat.NewVecDense(nr, nil)
	dst.MulVec(m.M, mat.NewVecDense(nc, x))
	r = dst.RawVector().Data
	return
}

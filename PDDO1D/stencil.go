package PDDO1D

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gopddo/utils"
)

/*
Stencil holds the Peridynamic Differential Operator weights for a uniform
periodic grid. For each family direction and derivative order k = 0..Order
there is one weight per family member, so that

	d^k g/dx^k (x_j) ~= sum_i DVecs[dir][k][i] * g(x_j + Offsets[dir][i]*dx)

The moments are formed in grid units, the order k weights then carry the
factor dx^-k. They are computed once and shared read only by every point and
time step.
*/
type Stencil struct {
	Dx, Delta float64
	Order     int
	Families  [2]*Family
	DVecs     [2][]utils.Vector // [Direction][derivative order] weights, length FamilySize
	Moments   [2]utils.Matrix   // Moment matrix A of each direction, in grid units
	weight    WeightFunction
}

type Option func(st *Stencil)

// WithWeightFunction replaces the Gaussian kernel
func WithWeightFunction(w WeightFunction) Option {
	return func(st *Stencil) {
		st.weight = w
	}
}

// ValidateConfig checks that a stencil can be built before any work is done
func ValidateConfig(dx, delta float64, order int) (err error) {
	switch {
	case math.IsNaN(dx) || math.IsInf(dx, 0) || dx <= 0:
		return NewConfigurationError("dx", dx, "grid spacing must be positive and finite")
	case math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 1:
		return NewConfigurationError("delta", delta, "horizon must be at least one grid spacing")
	case order < 0:
		return NewConfigurationError("order", float64(order), "polynomial order must be non-negative")
	case order+1 > FamilySize(delta):
		return NewConfigurationError("order", float64(order),
			fmt.Sprintf("a family of %d points cannot fit a polynomial of order %d", FamilySize(delta), order))
	}
	return
}

// Generate builds the backward and forward derivative operators up to order
func Generate(dx, delta float64, order int, opts ...Option) (st *Stencil, err error) {
	if err = ValidateConfig(dx, delta, order); err != nil {
		return
	}
	st = &Stencil{
		Dx:     dx,
		Delta:  delta,
		Order:  order,
		weight: GaussianWeight,
	}
	for _, opt := range opts {
		opt(st)
	}
	var (
		horizon = st.Horizon()
		bmat    = NormalizationMatrix(order)
	)
	for _, dir := range Directions {
		var (
			f    = NewFamily(dir, delta, dx)
			amat utils.Matrix
		)
		st.Families[dir] = f
		st.Moments[dir] = MomentMatrix(f, horizon, order, st.weight)
		if amat, err = st.Moments[dir].Solve(bmat); err != nil {
			if errors.Is(err, utils.ErrSingular) {
				err = fmt.Errorf("%w: %s family, delta = %v, order = %d: %v",
					ErrSingularSystem, dir, delta, order, err)
			}
			return nil, err
		}
		D := WeightedMonomials(f, horizon, order, st.weight).Mul(amat)
		st.DVecs[dir] = make([]utils.Vector, order+1)
		for k := 0; k <= order; k++ {
			// d^k/dx^k = dx^-k d^k/deta^k
			st.DVecs[dir][k] = D.Col(k).Scale(utils.POW(dx, -k))
		}
		st.Moments[dir].SetReadOnly(fmt.Sprintf("%s moment matrix", dir))
	}
	return
}

// Horizon is the physical interaction radius delta*dx
func (st *Stencil) Horizon() float64 { return st.Delta * st.Dx }

func (st *Stencil) FamilySize() int { return st.Families[Backward].Len() }

func (st *Stencil) Offsets(dir Direction) utils.Index {
	return st.Families[dir].Offsets.Copy()
}

// Operator returns a copy of the order k weights of a family
func (st *Stencil) Operator(dir Direction, k int) utils.Vector {
	return st.DVecs[dir][k].Copy()
}

// Weights exposes the order k weights without copying, callers must not write to them
func (st *Stencil) Weights(dir Direction, k int) []float64 {
	return st.DVecs[dir][k].Data()
}

// Apply evaluates the order k operator on samples taken at the family members
func (st *Stencil) Apply(dir Direction, k int, samples []float64) float64 {
	return floats.Dot(st.DVecs[dir][k].Data(), samples)
}

// ApplyAt evaluates the order k operator at point j of the periodic field g
func (st *Stencil) ApplyAt(dir Direction, k, j int, g []float64) float64 {
	nb := st.Families[dir].Neighbors(j, len(g))
	return st.Apply(dir, k, utils.NewVector(len(g), g).Subset(nb).Data())
}

// GlobalOperator assembles the order k operator of a family over a ring of N points
func (st *Stencil) GlobalOperator(dir Direction, k, N int) utils.CSR {
	return utils.NewCirculant(N, st.Families[dir].Offsets, st.DVecs[dir][k].Data())
}

// ConditionNumbers of the backward and forward moment matrices
func (st *Stencil) ConditionNumbers() (cn [2]float64) {
	for _, dir := range Directions {
		cn[dir] = st.Moments[dir].ConditionNumber()
	}
	return
}

func (st *Stencil) Print() {
	fmt.Printf("PDDO stencil: dx = %8.5f, delta = %6.3f, horizon = %8.5f, order = %d, family size = %d\n",
		st.Dx, st.Delta, st.Horizon(), st.Order, st.FamilySize())
	cn := st.ConditionNumbers()
	for _, dir := range Directions {
		fmt.Printf("%-8s offsets = %v, cond(A) = %8.3e\n", dir, st.Families[dir].Offsets, cn[dir])
		for k := 0; k <= st.Order; k++ {
			fmt.Printf("    D%d = %v\n", k, st.DVecs[dir][k].Data())
		}
	}
}

package Burgers1D

import (
	"fmt"
	"math"
	"sync"

	"github.com/notargets/gopddo/PDDO1D"
	"github.com/notargets/gopddo/utils"
)

/*
UpwindIntegrator advances the inviscid Burgers equation in conservative form

	du/dt + d/dx ( u²/2 ) = 0

on a periodic grid with forward Euler in time. The flux derivative at point j is
taken with the first derivative PDDO operator of the upwind family:

	u[j] = uPrev[j] - dt/2 * sum_i uPrev[nb_i]² * D1[dir][i]

Every update reads only the previous step, so the points of a step are
independent and are split into contiguous partitions run in parallel.
*/
type UpwindIntegrator struct {
	Stencil        *PDDO1D.Stencil
	Dt             float64
	N              int
	ParallelDegree int // Number of go routines to use for parallel execution
	Partitions     *utils.PartitionMap
	offsets        [2]utils.Index
	dvec           [2][]float64 // First derivative weights, per PDDO1D.Direction
	globalOnce     sync.Once
	global         [2]utils.CSR
}

// NewUpwindIntegrator binds a stencil to a ring of N points. A procLimit of 0 uses all CPUs.
func NewUpwindIntegrator(st *PDDO1D.Stencil, dt float64, N, procLimit int) (ui *UpwindIntegrator, err error) {
	switch {
	case st == nil:
		err = fmt.Errorf("%w: no stencil", PDDO1D.ErrConfiguration)
		return
	case st.Order < 1:
		err = PDDO1D.NewConfigurationError("order", float64(st.Order),
			"the upwind update needs the first derivative operator, order must be at least 1")
		return
	case N < 2:
		err = PDDO1D.NewConfigurationError("numpt", float64(N), "at least two grid points are required")
		return
	case dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0):
		err = PDDO1D.NewConfigurationError("dt", dt, "time step must be positive and finite")
		return
	}
	ui = &UpwindIntegrator{
		Stencil: st,
		Dt:      dt,
		N:       N,
	}
	ui.ParallelDegree = utils.ParallelDegree(procLimit, N)
	ui.Partitions = utils.NewPartitionMap(ui.ParallelDegree, N)
	for _, dir := range PDDO1D.Directions {
		ui.offsets[dir] = st.Offsets(dir)
		ui.dvec[dir] = st.Weights(dir, 1)
	}
	return
}

// UpdatePoint is the new value at point j computed from the previous field only
func (ui *UpwindIntegrator) UpdatePoint(j int, uPrev []float64) float64 {
	dir, ok := SelectUpwind(uPrev[j]).Family()
	if !ok {
		return uPrev[j]
	}
	var (
		w    = ui.dvec[dir]
		flux float64
	)
	for i, off := range ui.offsets[dir] {
		u := uPrev[utils.WrapIndex(j+off, ui.N)]
		flux += u * u * w[i]
	}
	return uPrev[j] - ui.Dt/2*flux
}

func (ui *UpwindIntegrator) updateRange(kMin, kMax int, uPrev, u []float64) {
	for j := kMin; j < kMax; j++ {
		u[j] = ui.UpdatePoint(j, uPrev)
	}
}

// Step writes the next field into u. uPrev and u must not overlap.
func (ui *UpwindIntegrator) Step(uPrev, u []float64) {
	var (
		pm = ui.Partitions
		wg = sync.WaitGroup{}
	)
	if ui.ParallelDegree == 1 {
		ui.updateRange(0, ui.N, uPrev, u)
		return
	}
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			ui.updateRange(kMin, kMax, uPrev, u)
			wg.Done()
		}(np)
	}
	wg.Wait()
}

// Advance returns the field after steps time steps, u0 is left unchanged
func (ui *UpwindIntegrator) Advance(u0 []float64, steps int) (u []float64, err error) {
	if len(u0) != ui.N {
		err = fmt.Errorf("%w: field has %d points, integrator was built for %d",
			PDDO1D.ErrConfiguration, len(u0), ui.N)
		return
	}
	if steps < 0 {
		err = PDDO1D.NewConfigurationError("steps", float64(steps), "step count must be non-negative")
		return
	}
	var (
		uPrev = make([]float64, ui.N)
		uNext = make([]float64, ui.N)
	)
	copy(uPrev, u0)
	for n := 0; n < steps; n++ {
		ui.Step(uPrev, uNext)
		uPrev, uNext = uNext, uPrev
	}
	u = uPrev
	return
}

// Residual is the upwind du/dt of field u, assembled with the global sparse operators
func (ui *UpwindIntegrator) Residual(u []float64) (dudt []float64) {
	ui.globalOnce.Do(func() {
		for _, dir := range PDDO1D.Directions {
			ui.global[dir] = ui.Stencil.GlobalOperator(dir, 1, ui.N)
		}
	})
	var (
		f    = utils.NewVector(ui.N, u).Copy().POW(2).Data()
		dfdx [2][]float64
	)
	for _, dir := range PDDO1D.Directions {
		dfdx[dir] = ui.global[dir].MulVec(f)
	}
	dudt = make([]float64, ui.N)
	for j, val := range u {
		if dir, ok := SelectUpwind(val).Family(); ok {
			dudt[j] = -0.5 * dfdx[dir][j]
		}
	}
	return
}

// Advance integrates u0 for steps time steps of size dt using all CPUs
func Advance(u0 []float64, dt float64, steps int, st *PDDO1D.Stencil) (u []float64, err error) {
	var ui *UpwindIntegrator
	if ui, err = NewUpwindIntegrator(st, dt, len(u0), 0); err != nil {
		return
	}
	return ui.Advance(u0, steps)
}

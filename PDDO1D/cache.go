package PDDO1D

import "sync"

type stencilKey struct {
	dx, delta float64
	order     int
}

// StencilCache shares generated stencils between runs with the same grid and horizon.
// Stencils built with options are not cached.
type StencilCache struct {
	mu       sync.Mutex
	stencils map[stencilKey]*Stencil
}

func NewStencilCache() *StencilCache {
	return &StencilCache{
		stencils: make(map[stencilKey]*Stencil),
	}
}

func (sc *StencilCache) Get(dx, delta float64, order int) (st *Stencil, err error) {
	var (
		key = stencilKey{dx, delta, order}
		ok  bool
	)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if st, ok = sc.stencils[key]; ok {
		return
	}
	if st, err = Generate(dx, delta, order); err != nil {
		return
	}
	sc.stencils[key] = st
	return
}

func (sc *StencilCache) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.stencils)
}

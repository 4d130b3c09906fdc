package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gopddo/PDDO1D"
	"github.com/notargets/gopddo/model_problems/Burgers1D"
	"github.com/notargets/gopddo/utils"
)

var (
	csvFile   string
	numPTS    = "101,201,401,801"
	delta     = 2.015
	order     = 1
	dt        = 0.001
	finalTime = 0.1
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file to write the entries of the convergence study")
	numPTSPtr := flag.String("numpt", numPTS, "comma separated list of grid sizes")
	deltaPtr := flag.Float64("delta", delta, "horizon size in units of the grid spacing")
	orderPtr := flag.Int("order", order, "polynomial order of the PDDO operators")
	dtPtr := flag.Float64("dt", dt, "time step, shared by every grid")
	ftPtr := flag.Float64("tmax", finalTime, "final time, must be before the shock forms at 1/π")
	flag.Parse()
	csvFile = *csvFilePtr

	var (
		npts []int
		err  error
	)
	if npts, err = parseList(*numPTSPtr); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		flag.Usage()
		os.Exit(1)
	}
	cs := NewConvergenceStudy("Burgers 1D sine wave", *orderPtr, *deltaPtr, *dtPtr, *ftPtr)
	if err = cs.Run(npts); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	cs.Print()
	if len(csvFile) != 0 {
		var f *os.File
		if f, err = os.Create(csvFile); err != nil {
			panic(err)
		}
		w := bufio.NewWriter(f)
		if err = cs.WriteCSV(w); err != nil {
			panic(err)
		}
		if err = w.Flush(); err != nil {
			panic(err)
		}
		_ = f.Close()
		fmt.Printf("Output file: %v\n", csvFile)
	}
}

func parseList(list string) (npts []int, err error) {
	for _, txt := range strings.Split(list, ",") {
		var n int
		if n, err = strconv.Atoi(strings.TrimSpace(txt)); err != nil {
			return nil, fmt.Errorf("bad grid size %q: %w", txt, err)
		}
		npts = append(npts, n)
	}
	return
}

type ConvergenceStudy struct {
	title           string
	order           int
	delta, dt, tEnd float64
	numPTS          []int
	dx              []float64
	l1, l2, linf    []float64
	cache           *PDDO1D.StencilCache
}

func NewConvergenceStudy(title string, order int, delta, dt, tEnd float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		order: order,
		delta: delta,
		dt:    dt,
		tEnd:  tEnd,
		cache: PDDO1D.NewStencilCache(),
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, dx, l1, l2, linf float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.dx = append(cs.dx, dx)
	cs.l1 = append(cs.l1, l1)
	cs.l2 = append(cs.l2, l2)
	cs.linf = append(cs.linf, linf)
}

// Run solves the sine wave on [0,2] for each grid size and records the error against the exact solution
func (cs *ConvergenceStudy) Run(numPTS []int) (err error) {
	if cs.tEnd >= Burgers1D.BreakTime {
		return PDDO1D.NewConfigurationError("tmax", cs.tEnd, "the exact solution is only available before the shock forms")
	}
	steps := utils.RoundInt(cs.tEnd / cs.dt)
	for _, N := range numPTS {
		var (
			st *PDDO1D.Stencil
			u  []float64
		)
		if N < 2 {
			return PDDO1D.NewConfigurationError("numpt", float64(N), "at least two grid points are required")
		}
		dx := 2. / float64(N-1)
		if st, err = cs.cache.Get(dx, cs.delta, cs.order); err != nil {
			return
		}
		X := utils.NewVector(N).Linspace(0, 2).Data()
		u0 := utils.NewVector(N, X).Copy().Apply(func(x float64) float64 { return math.Sin(math.Pi * x) }).Data()
		if u, err = Burgers1D.Advance(u0, cs.dt, steps, st); err != nil {
			return
		}
		l1, l2, linf := Burgers1D.ErrorNorms(u, Burgers1D.ExactSineField(X, float64(steps)*cs.dt))
		cs.Add(N, dx, l1, l2, linf)
	}
	return
}

// ObservedOrder is log(e[i-1]/e[i]) / log(dx[i-1]/dx[i]) between successive grids
func ObservedOrder(dx, e []float64) (p []float64) {
	p = make([]float64, len(e))
	if len(e) == 0 {
		return
	}
	p[0] = math.NaN()
	for i := 1; i < len(e); i++ {
		p[i] = math.Log(e[i-1]/e[i]) / math.Log(dx[i-1]/dx[i])
	}
	return
}

func (cs *ConvergenceStudy) Print() {
	fmt.Printf("Title = %s, Order = %d, Delta = %5.3f, dt = %8.5f, t = %8.5f\n",
		cs.title, cs.order, cs.delta, cs.dt, cs.tEnd)
	pL2, pLinf := ObservedOrder(cs.dx, cs.l2), ObservedOrder(cs.dx, cs.linf)
	fmt.Printf("%8s%12s%12s%12s%12s%8s%8s\n", "numpt", "dx", "L1", "L2", "Linf", "p(L2)", "p(Linf)")
	for i := range cs.numPTS {
		fmt.Printf("%8d%12.4e%12.4e%12.4e%12.4e%8.3f%8.3f\n",
			cs.numPTS[i], cs.dx[i], cs.l1[i], cs.l2[i], cs.linf[i], pL2[i], pLinf[i])
	}
}

func (cs *ConvergenceStudy) WriteCSV(w io.Writer) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"title", "numpt", "order", "delta", "dx", "L1", "L2", "Linf"}); err != nil {
		return
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for i := range cs.numPTS {
		rec := []string{cs.title, strconv.Itoa(cs.numPTS[i]), strconv.Itoa(cs.order), ff(cs.delta),
			ff(cs.dx[i]), ff(cs.l1[i]), ff(cs.l2[i]), ff(cs.linf[i])}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

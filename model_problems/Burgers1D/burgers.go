package Burgers1D

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/notargets/gopddo/InputParameters"
	"github.com/notargets/gopddo/PDDO1D"
	"github.com/notargets/gopddo/utils"
)

type InitType uint

const (
	SINE InitType = iota
	GAUSSIAN
	CONSTANT
)

var (
	InitNames = map[string]InitType{
		"sine":     SINE,
		"gaussian": GAUSSIAN,
		"constant": CONSTANT,
	}
	InitPrintNames = []string{"Sine wave sin(πx)", "Gaussian pulse", "Constant zero field"}
)

func NewInitType(label string) (it InitType, err error) {
	var ok bool
	label = strings.ToLower(label)
	if it, ok = InitNames[label]; !ok {
		err = PDDO1D.NewConfigurationError("InitType", math.NaN(),
			fmt.Sprintf("unknown init type %q, must be one of sine, gaussian, constant", label))
	}
	return
}

func (it InitType) Print() string { return InitPrintNames[it] }

// Burgers is the PDDO upwind model of the 1D inviscid Burgers equation on a periodic domain
type Burgers struct {
	Title          string
	FinalTime, DT  float64
	Steps          int
	Case           InitType
	X, U           []float64 // Grid coordinates and current field
	Time           float64
	Stencil        *PDDO1D.Stencil
	Integrator     *UpwindIntegrator
	ElapsedCompute time.Duration
	graphDelay     []time.Duration
	logFrequency   int
	stencilCache   *PDDO1D.StencilCache
}

type Option func(c *Burgers)

// WithLogFrequency sets the number of steps between progress lines
func WithLogFrequency(n int) Option {
	return func(c *Burgers) {
		if n > 0 {
			c.logFrequency = n
		}
	}
}

// WithStencilCache shares stencils between models built with the same grid
func WithStencilCache(sc *PDDO1D.StencilCache) Option {
	return func(c *Burgers) {
		c.stencilCache = sc
	}
}

func NewBurgers(ip *InputParameters.InputParameters1D, opts ...Option) (c *Burgers, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Burgers{
		Title:        ip.Title,
		FinalTime:    ip.FinalTime,
		DT:           ip.DT,
		Steps:        ip.NumSteps(),
		logFrequency: 50,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Case, err = NewInitType(ip.InitType); err != nil {
		return nil, err
	}
	dx := ip.Dx()
	if c.stencilCache != nil {
		c.Stencil, err = c.stencilCache.Get(dx, ip.Delta, ip.PolynomialOrder)
	} else {
		c.Stencil, err = PDDO1D.Generate(dx, ip.Delta, ip.PolynomialOrder)
	}
	if err != nil {
		return nil, err
	}
	if c.Integrator, err = NewUpwindIntegrator(c.Stencil, ip.DT, ip.NumPoints, ip.ProcLimit); err != nil {
		return nil, err
	}
	c.X = utils.NewVector(ip.NumPoints).Linspace(ip.XMin, ip.XMax).Data()
	c.U = c.InitialCondition()
	return
}

func (c *Burgers) InitialCondition() (u []float64) {
	var (
		N  = len(c.X)
		xc = 0.5 * (c.X[0] + c.X[N-1])
	)
	u = utils.ConstArray(N, 0)
	switch c.Case {
	case SINE:
		for i, x := range c.X {
			u[i] = math.Sin(math.Pi * x)
		}
	case GAUSSIAN:
		for i, x := range c.X {
			r := (x - xc) / 0.1
			u[i] = math.Exp(-r * r)
		}
	}
	return
}

// Run advances the field to the final time. With showGraph the final field is
// plotted and Run does not return.
func (c *Burgers) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		ui    = c.Integrator
		uPrev = make([]float64, len(c.U))
		start time.Time
	)
	c.graphDelay = graphDelay
	c.PrintInitialization()
	for tstep := 1; tstep <= c.Steps; tstep++ {
		copy(uPrev, c.U)
		start = time.Now()
		ui.Step(uPrev, c.U)
		c.ElapsedCompute += time.Since(start)
		c.Time = float64(tstep) * c.DT
		if tstep%c.logFrequency == 0 || tstep == c.Steps {
			c.PrintUpdate(tstep)
		}
	}
	c.PrintFinal()
	if showGraph {
		c.PlotField()
	}
}

func (c *Burgers) PrintInitialization() {
	fmt.Printf("Burgers Equation in 1 Dimension, PDDO upwind scheme\n")
	fmt.Printf("%s\n", c.Title)
	fmt.Printf("Solving %s\n", c.Case.Print())
	fmt.Printf("Using %d go routines in parallel\n", c.Integrator.ParallelDegree)
	c.Stencil.Print()
	fmt.Printf("dt = %8.5f, Num Points = %d, Num Steps = %d, Final Time = %8.5f\n\n",
		c.DT, len(c.X), c.Steps, c.FinalTime)
}

func (c *Burgers) PrintUpdate(tstep int) {
	var (
		maxResid float64
		nanFlag  string
		uv       = utils.NewVector(len(c.U), c.U)
		dx       = (c.X[len(c.X)-1] - c.X[0]) / float64(len(c.X)-1)
	)
	for _, r := range c.Integrator.Residual(c.U) {
		if math.Abs(r) > maxResid {
			maxResid = math.Abs(r)
		}
	}
	if utils.IsNan(c.U) {
		nanFlag = " NaN detected"
	}
	fmt.Printf("Time = %8.4f, max_resid[%d] = %8.4f, umin = %8.6f, umax = %8.6f, mass = %10.6f%s\n",
		c.Time, tstep, maxResid, uv.Min(), uv.Max(), uv.Sum()*dx, nanFlag)
}

func (c *Burgers) PrintFinal() {
	var rate float64
	if c.Steps > 0 {
		rate = float64(c.ElapsedCompute.Microseconds()) / float64(len(c.X)*c.Steps)
	}
	fmt.Printf("\nRate of execution = %8.5f us/(point*iteration) over %d iterations\n", rate, c.Steps)
	fmt.Printf("%s\n", utils.GetMemUsage())
	if c.Case == SINE && c.FinalTime < BreakTime {
		l1, l2, linf := ErrorNorms(c.U, ExactSineField(c.X, c.Time))
		fmt.Printf("Error vs exact solution: L1 = %8.3e, L2 = %8.3e, Linf = %8.3e\n", l1, l2, linf)
	}
}

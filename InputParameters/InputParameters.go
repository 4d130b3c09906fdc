package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"

	"github.com/notargets/gopddo/PDDO1D"
	"github.com/notargets/gopddo/utils"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title           string  `json:"Title"`
	NumPoints       int     `json:"numpt"`
	XMin            float64 `json:"xmin"`
	XMax            float64 `json:"xmax"`
	Delta           float64 `json:"delta"` // Horizon in units of dx
	PolynomialOrder int     `json:"order"`
	FinalTime       float64 `json:"tmax"`
	DT              float64 `json:"dt"`
	InitType        string  `json:"InitType"`
	ProcLimit       int     `json:"ProcLimit"` // 0 uses every CPU
}

// NewInputParameters1D returns the sine wave shock formation case
func NewInputParameters1D() *InputParameters1D {
	return &InputParameters1D{
		Title:           "Burgers 1D, steepening sine wave",
		NumPoints:       201,
		XMin:            0,
		XMax:            2,
		Delta:           2.015,
		PolynomialOrder: 1,
		FinalTime:       0.6,
		DT:              0.001,
		InitType:        "sine",
	}
}

// Parse overlays the YAML document on the receiver, absent keys keep their value
func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Dx() float64 {
	return (ip.XMax - ip.XMin) / float64(ip.NumPoints-1)
}

// NumSteps is tmax/dt rounded half to even
func (ip *InputParameters1D) NumSteps() int {
	return utils.RoundInt(ip.FinalTime / ip.DT)
}

func (ip *InputParameters1D) Validate() (err error) {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	switch {
	case ip.NumPoints < 2:
		return PDDO1D.NewConfigurationError("numpt", float64(ip.NumPoints), "at least two grid points are required")
	case !finite(ip.XMin):
		return PDDO1D.NewConfigurationError("xmin", ip.XMin, "domain bound must be finite")
	case !finite(ip.XMax) || ip.XMax <= ip.XMin:
		return PDDO1D.NewConfigurationError("xmax", ip.XMax, "domain bound must be finite and above xmin")
	case !finite(ip.DT) || ip.DT <= 0:
		return PDDO1D.NewConfigurationError("dt", ip.DT, "time step must be positive and finite")
	case !finite(ip.FinalTime) || ip.FinalTime <= 0:
		return PDDO1D.NewConfigurationError("tmax", ip.FinalTime, "final time must be positive and finite")
	case ip.PolynomialOrder < 1:
		return PDDO1D.NewConfigurationError("order", float64(ip.PolynomialOrder),
			"the upwind update needs the first derivative operator, order must be at least 1")
	case ip.ProcLimit < 0:
		return PDDO1D.NewConfigurationError("ProcLimit", float64(ip.ProcLimit), "must be zero or positive")
	}
	return PDDO1D.ValidateConfig(ip.Dx(), ip.Delta, ip.PolynomialOrder)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Number of Points\n", ip.NumPoints)
	fmt.Printf("[%8.5f, %8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("%8.5f\t\t= Horizon (dx units)\n", ip.Delta)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= Time Step\n", ip.DT)
	fmt.Printf("[%s]\t\t\t= InitType\n", ip.InitType)
}

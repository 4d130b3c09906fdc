package InputParameters

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopddo/PDDO1D"
)

func TestInputParameters1D_Defaults(t *testing.T) {
	ip := NewInputParameters1D()
	require.NoError(t, ip.Validate())
	assert.InDelta(t, 0.01, ip.Dx(), 1e-15)
	assert.Equal(t, 600, ip.NumSteps())
	assert.Equal(t, 3, PDDO1D.FamilySize(ip.Delta))
}

func TestInputParameters1D_Parse(t *testing.T) {
	input := []byte(`
Title: "Coarse run"
numpt: 101
xmax: 4
delta: 3.015
order: 2
tmax: 0.25
dt: 0.002
InitType: Gaussian
`)
	ip := NewInputParameters1D()
	require.NoError(t, ip.Parse(input))
	assert.Equal(t, "Coarse run", ip.Title)
	assert.Equal(t, 101, ip.NumPoints)
	assert.Equal(t, 0., ip.XMin) // Absent keys keep the default
	assert.Equal(t, 4., ip.XMax)
	assert.Equal(t, 3.015, ip.Delta)
	assert.Equal(t, 2, ip.PolynomialOrder)
	assert.Equal(t, "Gaussian", ip.InitType)
	assert.Equal(t, 125, ip.NumSteps())
	assert.InDelta(t, 0.04, ip.Dx(), 1e-15)
	assert.NoError(t, ip.Validate())

	assert.Error(t, ip.Parse([]byte("numpt: [1, 2")))
}

func TestInputParameters1D_NumStepsRoundsHalfToEven(t *testing.T) {
	ip := NewInputParameters1D()
	ip.FinalTime, ip.DT = 2.5, 1
	assert.Equal(t, 2, ip.NumSteps())
	ip.FinalTime = 3.5
	assert.Equal(t, 4, ip.NumSteps())
}

func TestInputParameters1D_Validate(t *testing.T) {
	for _, c := range []struct {
		modify func(ip *InputParameters1D)
		param  string
	}{
		{func(ip *InputParameters1D) { ip.NumPoints = 1 }, "numpt"},
		{func(ip *InputParameters1D) { ip.XMax = ip.XMin }, "xmax"},
		{func(ip *InputParameters1D) { ip.XMin = math.NaN() }, "xmin"},
		{func(ip *InputParameters1D) { ip.DT = 0 }, "dt"},
		{func(ip *InputParameters1D) { ip.FinalTime = -1 }, "tmax"},
		{func(ip *InputParameters1D) { ip.PolynomialOrder = 0 }, "order"},
		{func(ip *InputParameters1D) { ip.PolynomialOrder = 3 }, "order"},
		{func(ip *InputParameters1D) { ip.Delta = 0.4 }, "delta"},
		{func(ip *InputParameters1D) { ip.ProcLimit = -2 }, "ProcLimit"},
	} {
		ip := NewInputParameters1D()
		c.modify(ip)
		err := ip.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, PDDO1D.ErrConfiguration))
		var ce *PDDO1D.ConfigurationError
		if assert.True(t, errors.As(err, &ce)) {
			assert.Equal(t, c.param, ce.Parameter)
		}
	}
}

package Burgers1D

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopddo/InputParameters"
	"github.com/notargets/gopddo/PDDO1D"
)

func smallCase() *InputParameters.InputParameters1D {
	ip := InputParameters.NewInputParameters1D()
	ip.NumPoints = 81
	ip.FinalTime = 0.05
	ip.DT = 0.001
	ip.ProcLimit = 2
	return ip
}

func TestNewInitType(t *testing.T) {
	for label, it := range map[string]InitType{"Sine": SINE, "GAUSSIAN": GAUSSIAN, "constant": CONSTANT} {
		got, err := NewInitType(label)
		require.NoError(t, err)
		assert.Equal(t, it, got)
	}
	_, err := NewInitType("square")
	var ce *PDDO1D.ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "InitType", ce.Parameter)
}

func TestNewBurgers(t *testing.T) {
	{
		c, err := NewBurgers(smallCase())
		require.NoError(t, err)
		assert.Equal(t, 50, c.Steps)
		assert.Equal(t, 81, len(c.X))
		assert.Equal(t, 0., c.X[0])
		assert.InDelta(t, 2, c.X[80], 1e-15)
		assert.InDelta(t, 1, c.U[20], 1e-15)
		assert.Equal(t, 2, c.Integrator.ParallelDegree)
	}
	{
		ip := smallCase()
		ip.InitType = "gaussian"
		c, err := NewBurgers(ip)
		require.NoError(t, err)
		assert.InDelta(t, 1, c.U[40], 1e-15)
		assert.InDelta(t, math.Exp(-1), c.U[36], 1e-12)
		assert.Less(t, c.U[0], 1e-30)
	}
	{
		ip := smallCase()
		ip.InitType = "triangle"
		_, err := NewBurgers(ip)
		assert.True(t, errors.Is(err, PDDO1D.ErrConfiguration))
		ip = smallCase()
		ip.Delta = 0.2
		_, err = NewBurgers(ip)
		assert.True(t, errors.Is(err, PDDO1D.ErrConfiguration))
	}
	{
		sc := PDDO1D.NewStencilCache()
		c1, err := NewBurgers(smallCase(), WithStencilCache(sc))
		require.NoError(t, err)
		c2, err := NewBurgers(smallCase(), WithStencilCache(sc))
		require.NoError(t, err)
		assert.True(t, c1.Stencil == c2.Stencil)
		assert.Equal(t, 1, sc.Len())
	}
}

func TestBurgers_Run(t *testing.T) {
	ip := smallCase()
	c, err := NewBurgers(ip, WithLogFrequency(10))
	require.NoError(t, err)
	u0 := c.InitialCondition()
	c.Run(false)
	assert.InDelta(t, ip.FinalTime, c.Time, 1e-12)
	u, err := Advance(u0, ip.DT, c.Steps, c.Stencil)
	require.NoError(t, err)
	assert.Equal(t, u, c.U)

	ip.InitType = "constant"
	c, err = NewBurgers(ip)
	require.NoError(t, err)
	c.Run(false)
	assert.Equal(t, make([]float64, ip.NumPoints), c.U)
}

func TestBurgers_Output(t *testing.T) {
	c, err := NewBurgers(smallCase())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, c.X, c.U))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, len(c.X)+1, len(records))
	assert.Equal(t, []string{"x", "u"}, records[0])
	for i, rec := range records[1:] {
		x, err := strconv.ParseFloat(rec[0], 64)
		require.NoError(t, err)
		u, err := strconv.ParseFloat(rec[1], 64)
		require.NoError(t, err)
		assert.Equal(t, c.X[i], x)
		assert.Equal(t, c.U[i], u)
	}
	assert.Error(t, WriteCSV(&buf, c.X, c.U[1:]))

	graph := c.ASCIIPlot(60, 10)
	assert.True(t, strings.Contains(graph, "u(x), t = 0.000"))
	assert.Greater(t, len(strings.Split(graph, "\n")), 10)
}

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopddo/PDDO1D"
)

func writeInput(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0644))
	return fileName
}

func TestProcessInput(t *testing.T) {
	defer viper.Reset()
	fileInput := `
Title: Test Case
numpt: 51
delta: 3.015
order: 2
tmax: 0.02
dt: 0.002
InitType: Gaussian # Can be Sine, Gaussian or Constant
`
	{
		ip, err := processInput("")
		require.NoError(t, err)
		assert.Equal(t, 201, ip.NumPoints)
		assert.Equal(t, 2.015, ip.Delta)
	}
	{
		ip, err := processInput(writeInput(t, fileInput))
		require.NoError(t, err)
		assert.Equal(t, "Test Case", ip.Title)
		assert.Equal(t, 51, ip.NumPoints)
		assert.Equal(t, 2, ip.PolynomialOrder)
		assert.Equal(t, 10, ip.NumSteps())
		assert.Equal(t, "Gaussian", ip.InitType)
	}
	{ // Explicit settings win over the input file
		viper.Set("numpt", 101)
		viper.Set("init", "constant")
		ip, err := processInput(writeInput(t, fileInput))
		require.NoError(t, err)
		assert.Equal(t, 101, ip.NumPoints)
		assert.Equal(t, "constant", ip.InitType)
		assert.Equal(t, 3.015, ip.Delta)
	}
	{
		viper.Set("order", 0)
		_, err := processInput("")
		assert.True(t, errors.Is(err, PDDO1D.ErrConfiguration))
		viper.Set("order", 1)
	}
	{
		_, err := processInput(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
		_, err = processInput(writeInput(t, "numpt: [1, 2"))
		assert.Error(t, err)
	}
}

func TestRun1D(t *testing.T) {
	defer viper.Reset()
	viper.Set("numpt", 41)
	viper.Set("tmax", 0.01)
	viper.Set("parallel", 2)
	ip, err := processInput("")
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "u.csv")
	m1d := &Model1D{OutputFile: out, ASCII: true}
	require.NoError(t, Run1D(m1d, ip))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "x,u\n0,0\n")

	ip.InitType = "square"
	assert.Error(t, Run1D(&Model1D{}, ip))
}

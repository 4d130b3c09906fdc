/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gopddo/InputParameters"
	"github.com/notargets/gopddo/model_problems/Burgers1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Burgers Equation, PDDO upwind scheme",
	Long: `
Executes the PDDO upwind solver for the inviscid Burgers equation on a periodic domain.
Parameters come from the defaults, then the YAML input file, then the config file,
PDDO_* environment variables and flags.

gopddo 1D -I input.yaml --numpt 401`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ip  *InputParameters.InputParameters1D
		)
		fmt.Println("1D called")
		m1d := &Model1D{}
		m1d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		m1d.ASCII, _ = cmd.Flags().GetBool("ascii")
		m1d.OutputFile, _ = cmd.Flags().GetString("output")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr) * time.Millisecond
		if ip, err = processInput(m1d.ICFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = Run1D(m1d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

var parameterKeys = []string{"title", "numpt", "xmin", "xmax", "delta", "order", "tmax", "dt", "init", "parallel"}

func init() {
	rootCmd.AddCommand(OneDCmd)
	var (
		def = InputParameters.NewInputParameters1D()
		fl  = OneDCmd.Flags()
	)
	fl.StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- numpt\n\t- delta (horizon in grid spacings)")
	fl.String("title", def.Title, "title of the run")
	fl.IntP("numpt", "n", def.NumPoints, "number of grid points")
	fl.Float64("xmin", def.XMin, "left end of the periodic domain")
	fl.Float64("xmax", def.XMax, "right end of the periodic domain")
	fl.Float64("delta", def.Delta, "horizon size in units of the grid spacing")
	fl.IntP("order", "p", def.PolynomialOrder, "polynomial order of the PDDO operators, at least 1")
	fl.Float64("tmax", def.FinalTime, "final time of the simulation")
	fl.Float64("dt", def.DT, "time step")
	fl.String("init", def.InitType, "initial condition: sine, gaussian or constant")
	fl.Int("parallel", def.ProcLimit, "number of go routines, 0 uses every CPU")
	fl.BoolP("graph", "g", false, "display a graph of the final solution")
	fl.IntP("delay", "d", 0, "milliseconds of delay for plotting")
	fl.BoolP("ascii", "a", false, "print a terminal graph of the final solution")
	fl.StringP("output", "o", "", "write the final x,u field to this CSV file")
	for _, key := range parameterKeys {
		if err := viper.BindPFlag(key, fl.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

type Model1D struct {
	ICFile, OutputFile string
	Graph, ASCII       bool
	Delay              time.Duration
}

// processInput layers the YAML input file and any explicitly set viper keys over the defaults
func processInput(icFile string) (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.NewInputParameters1D()
	if len(icFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(icFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("unable to parse input file %s: %w", icFile, err)
		}
	}
	if viper.IsSet("title") {
		ip.Title = viper.GetString("title")
	}
	if viper.IsSet("numpt") {
		ip.NumPoints = viper.GetInt("numpt")
	}
	if viper.IsSet("xmin") {
		ip.XMin = viper.GetFloat64("xmin")
	}
	if viper.IsSet("xmax") {
		ip.XMax = viper.GetFloat64("xmax")
	}
	if viper.IsSet("delta") {
		ip.Delta = viper.GetFloat64("delta")
	}
	if viper.IsSet("order") {
		ip.PolynomialOrder = viper.GetInt("order")
	}
	if viper.IsSet("tmax") {
		ip.FinalTime = viper.GetFloat64("tmax")
	}
	if viper.IsSet("dt") {
		ip.DT = viper.GetFloat64("dt")
	}
	if viper.IsSet("init") {
		ip.InitType = viper.GetString("init")
	}
	if viper.IsSet("parallel") {
		ip.ProcLimit = viper.GetInt("parallel")
	}
	err = ip.Validate()
	return
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) (err error) {
	var c *Burgers1D.Burgers
	ip.Print()
	if c, err = Burgers1D.NewBurgers(ip); err != nil {
		return
	}
	c.Run(false, m1d.Delay)
	if m1d.ASCII {
		fmt.Println(c.ASCIIPlot(80, 15))
	}
	if len(m1d.OutputFile) != 0 {
		if err = c.WriteCSV(m1d.OutputFile); err != nil {
			return
		}
		fmt.Printf("Wrote final field to %s\n", m1d.OutputFile)
	}
	if m1d.Graph {
		c.PlotField()
	}
	return
}

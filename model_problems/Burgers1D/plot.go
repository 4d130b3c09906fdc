package Burgers1D

import (
	"fmt"
	"image/color"
	"time"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gopddo/utils"
)

// polyline converts a field into the segment list used by chart2d.AddLine
func polyline(x, u []float64) (line []float32) {
	line = make([]float32, 0, 4*(len(x)-1))
	for i := 0; i < len(x)-1; i++ {
		line = append(line,
			float32(x[i]), float32(u[i]),
			float32(x[i+1]), float32(u[i+1]),
		)
	}
	return
}

// PlotField draws the initial and current fields with a time label, then blocks
func (c *Burgers) PlotField() {
	var (
		N          = len(c.X)
		xMin, xMax = float32(c.X[0]), float32(c.X[N-1])
		u0         = c.InitialCondition()
		lines      = map[color.RGBA][]float32{
			utils2.GREEN: polyline(c.X, u0),
			utils2.BLUE:  polyline(c.X, c.U),
		}
	)
	both := utils.NewVector(2*N, append(u0, c.U...))
	umin, umax := both.Min(), both.Max()
	margin := 0.1 * (umax - umin)
	if margin == 0 {
		margin = 1
	}
	yMin, yMax := float32(umin-margin), float32(umax+margin)
	if c.Case == SINE && c.Time < BreakTime {
		lines[utils2.RED] = polyline(c.X, ExactSineField(c.X, c.Time))
	}
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for col, line := range lines {
		ch.AddLine(line, col)
	}
	tf := assets.NewTextFormatter("NotoSans", "Regular", 24,
		utils2.BLACK, true, false)
	ch.Printf(tf, xMin+0.05*(xMax-xMin), yMax-0.08*(yMax-yMin), "t = %s", fmt.Sprintf("%5.3f", c.Time))
	for {
		if len(c.graphDelay) != 0 {
			time.Sleep(c.graphDelay[0])
		} else {
			time.Sleep(time.Second)
		}
	}
}

package Burgers1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/guptarohit/asciigraph"
)

// ASCIIPlot renders the current field for a terminal
func (c *Burgers) ASCIIPlot(width, height int) string {
	return asciigraph.Plot(c.U,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("u(x), t = %5.3f", c.Time)),
	)
}

// WriteCSV writes one x,u record per grid point after a header line
func WriteCSV(w io.Writer, X, U []float64) (err error) {
	if len(X) != len(U) {
		return fmt.Errorf("length of x and u are not equal: %d, %d", len(X), len(U))
	}
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"x", "u"}); err != nil {
		return
	}
	for i := range X {
		rec := []string{
			strconv.FormatFloat(X[i], 'g', -1, 64),
			strconv.FormatFloat(U[i], 'g', -1, 64),
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

func (c *Burgers) WriteCSV(path string) (err error) {
	var f *os.File
	if f, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, c.X, c.U)
}

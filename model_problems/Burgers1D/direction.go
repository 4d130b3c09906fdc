package Burgers1D

import (
	"fmt"
	"math"

	"github.com/notargets/gopddo/PDDO1D"
)

// Upwind is the flux direction chosen at a point from the sign of its velocity
type Upwind uint8

const (
	Stationary Upwind = iota // u == 0, the point is not updated
	Backward                 // u > 0, information arrives from the left
	Forward                  // u < 0, information arrives from the right
)

var upwindNames = []string{"Stationary", "Backward", "Forward"}

func (uw Upwind) String() string {
	if int(uw) < len(upwindNames) {
		return upwindNames[uw]
	}
	return fmt.Sprintf("Upwind(%d)", uw)
}

// SelectUpwind maps a velocity to its flux direction. NaN is left untouched.
func SelectUpwind(u float64) Upwind {
	switch {
	case u > 0:
		return Backward
	case u < 0:
		return Forward
	case math.IsNaN(u):
		fallthrough
	default:
		return Stationary
	}
}

// Family is the stencil direction used for the update, ok is false for Stationary
func (uw Upwind) Family() (dir PDDO1D.Direction, ok bool) {
	switch uw {
	case Backward:
		return PDDO1D.Backward, true
	case Forward:
		return PDDO1D.Forward, true
	}
	return
}

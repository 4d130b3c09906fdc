package PDDO1D

import (
	"fmt"

	"github.com/notargets/gopddo/utils"
)

// Direction selects which side of a point its interaction family lies on
type Direction uint8

const (
	Backward Direction = iota // offsets -(m-1) ... 0
	Forward                   // offsets 0 ... m-1
)

var (
	Directions     = [2]Direction{Backward, Forward}
	directionNames = [2]string{"Backward", "Forward"}
)

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// FamilySize is the number of family members, including the point itself,
// for a horizon of delta grid spacings. Half values round to even.
func FamilySize(delta float64) int {
	return utils.RoundInt(delta) + 1
}

/*
Family is the set of bonds from a reference point to its neighbors within the
horizon on one side. On a uniform periodic grid every point has the same family
shape, only the wrapped absolute indices differ.

	m = 3, Backward:  [j-2] [j-1] [j]
	m = 3, Forward:         [j] [j+1] [j+2]
*/
type Family struct {
	Direction Direction
	Offsets   utils.Index // Index units relative to the reference point
	Dx        float64
}

func NewFamily(dir Direction, delta, dx float64) (f *Family) {
	var (
		m = FamilySize(delta)
	)
	f = &Family{
		Direction: dir,
		Dx:        dx,
	}
	switch dir {
	case Backward:
		f.Offsets = utils.NewRange(-m+1, 0)
	case Forward:
		f.Offsets = utils.NewRange(0, m-1)
	default:
		panic(fmt.Errorf("unknown family direction %v", dir))
	}
	return
}

func (f *Family) Len() int { return len(f.Offsets) }

// Xi is the physical bond length to member i
func (f *Family) Xi(i int) float64 {
	return float64(f.Offsets[i]) * f.Dx
}

// Eta is the bond length to member i in grid spacings
func (f *Family) Eta(i int) float64 { return float64(f.Offsets[i]) }

// Neighbors are the absolute indices of the family of point j on a ring of N points
func (f *Family) Neighbors(j, N int) (I utils.Index) {
	return f.Offsets.Add(j).Wrap(N)
}

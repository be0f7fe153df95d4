package FD1D

import (
	"github.com/notargets/fdm1d/utils"
)

// Default Riemann step used by the Burgers and convection problems
const (
	StepLocation = 0.5
	StepHigh     = 1.0
	StepLow      = 0.0
)

// StepFunction is hi where x <= x0 and lo elsewhere
func StepFunction(x utils.Vector, x0, hi, lo float64) (u utils.Vector) {
	u = utils.NewVectorConstant(x.Len(), lo)
	u.AssignScalar(x.Find(utils.LessOrEqual, x0, false), hi)
	return
}

func DefaultStep(m *Mesh1D) utils.Vector {
	return StepFunction(m.x, StepLocation, StepHigh, StepLow)
}

// Spike is zero everywhere except at node idx
func Spike(nx, idx int, value float64) (u utils.Vector) {
	u = utils.NewVector(nx)
	u.DataP()[idx] = value
	return
}

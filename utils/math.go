package utils

import (
	"math"
)

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if p < 0 {
		p = -p
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	default:
		y = math.Pow(x, float64(p))
	}
	if flipped {
		y = 1. / y
	}
	return
}

// Trapezoid integrates u(x) over the sample points with the trapezoidal rule
func Trapezoid(x, u []float64) (result float64) {
	for i := 0; i < len(x)-1; i++ {
		delx := x[i+1] - x[i]
		uave := 0.5 * (u[i+1] + u[i])
		result += uave * delx
	}
	return
}

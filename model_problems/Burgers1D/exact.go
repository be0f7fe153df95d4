package Burgers1D

// ShockSpeed is the Rankine-Hugoniot speed of a Burgers shock
func ShockSpeed(uL, uR float64) float64 {
	return 0.5 * (uL + uR)
}

/*
RiemannExact is the entropy solution at time t of Burgers' equation for the
initial step u = uL for x <= x0, u = uR otherwise. A falling step moves as a
shock, a rising step opens into a rarefaction fan.
*/
func RiemannExact(uL, uR, x0, t float64, x []float64) (u []float64) {
	u = make([]float64, len(x))
	for i, xx := range x {
		xi := xx - x0
		switch {
		case uL > uR:
			if xi <= ShockSpeed(uL, uR)*t {
				u[i] = uL
			} else {
				u[i] = uR
			}
		case xi <= uL*t:
			u[i] = uL
		case xi >= uR*t:
			u[i] = uR
		default:
			u[i] = xi / t
		}
	}
	return
}

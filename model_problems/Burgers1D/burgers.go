package Burgers1D

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/fdm1d/FD1D"
	"github.com/notargets/fdm1d/utils"
	"github.com/notargets/fdm1d/writefiles"
)

/*
Burgers solves the inviscid Burgers equation

	du/dt + d(u^2/2)/dx = 0

with the explicit Lax-Wendroff scheme. The two end values are frozen at the
initial condition. The time step is trusted as given, there is no CFL control.
*/
type Burgers struct {
	// Input parameters
	FinalTime, DT float64
	Mesh          *FD1D.Mesh1D
	U0, U         utils.Vector
	Time          float64
	Steps         int
	uo            utils.Vector // Previous step
	m1, m2        float64
	chart         *utils.FieldChart
}

func NewBurgers(xa, xb, FinalTime, DT float64, NX int) (c *Burgers) {
	c = &Burgers{
		FinalTime: FinalTime,
		DT:        DT,
		Mesh:      FD1D.NewMesh1D(xa, xb, NX),
	}
	c.InitializeStep()
	dtdx := c.DT / c.Mesh.Dx()
	c.m1 = 0.5 * dtdx
	c.m2 = 0.5 * dtdx * dtdx
	log.Infof("Inviscid Burgers Equation in 1 Dimension, Lax-Wendroff Scheme")
	log.Infof("NX = %d, DX = %8.6f, DT = %8.6f, FinalTime = %8.4f", NX, c.Mesh.Dx(), DT, FinalTime)
	log.Infof("dt/dx: %v", dtdx)
	return
}

// InitializeStep sets the Riemann step and resets the clock
func (c *Burgers) InitializeStep() {
	c.U0 = FD1D.DefaultStep(c.Mesh)
	c.U = c.U0.Copy()
	c.uo = c.U0.Copy()
	c.Time, c.Steps = 0, 0
}

func (c *Burgers) Name() string { return "Burgers1D Lax-Wendroff" }

// DtDx is the ratio dt/dx, equal to the Courant number where |u| = 1
func (c *Burgers) DtDx() float64 { return 2 * c.m1 }

func flux(u float64) float64 { return 0.5 * utils.POW(u, 2) }

// Step advances the field by one time step
func (c *Burgers) Step() {
	var (
		u  = c.U.DataP()
		uo = c.uo.DataP()
		nx = len(u)
	)
	for i := 1; i < nx-1; i++ {
		var (
			fL, fC, fR = flux(uo[i-1]), flux(uo[i]), flux(uo[i+1])
			aL, aR     = 0.5 * (uo[i] + uo[i-1]), 0.5 * (uo[i] + uo[i+1])
		)
		u[i] = uo[i] - c.m1*(fR-fL) + c.m2*(aR*(fR-fC)-aL*(fC-fL))
	}
	u[0] = uo[0]
	u[nx-1] = uo[nx-1]
	c.uo.Assign(c.U)
	c.Time += c.DT
	c.Steps++
}

// Run marches until the elapsed time exceeds FinalTime
func (c *Burgers) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		logFrequency = 10
	)
	for c.Time <= c.FinalTime {
		c.Plot(showGraph, graphDelay)
		c.Step()
		if c.Steps%logFrequency == 0 {
			log.Debugf("Time = %8.4f, step = %d, umin = %8.6f, umax = %8.6f", c.Time, c.Steps, c.U.Min(), c.U.Max())
		}
	}
	c.Plot(showGraph, graphDelay)
	log.Infof("Completed %d steps, Time = %8.4f, Mass = %8.6f", c.Steps, c.Time, c.Mass())
}

// Mass is the trapezoidal integral of the current field
func (c *Burgers) Mass() float64 {
	return utils.Trapezoid(c.Mesh.XData(), c.U.DataP())
}

func (c *Burgers) Plot(showGraph bool, graphDelay []time.Duration) {
	if !showGraph {
		return
	}
	if c.chart == nil {
		c.chart = utils.NewFieldChart(c.Mesh.XA, c.Mesh.XB, -0.1, 1.6)
	}
	x := c.Mesh.XData()
	c.chart.AddField("U_init", x, c.U0.Data(), -0.7)
	c.chart.AddField("U", x, c.U.Data(), 0.7)
	c.chart.AddPoints("Exact", x, RiemannExact(FD1D.StepHigh, FD1D.StepLow, FD1D.StepLocation, c.Time, x), 0.0)
	c.chart.Pause(graphDelay)
}

func (c *Burgers) Tecplot() *writefiles.Tecplot {
	return writefiles.NewTecplot([]string{"x", "u_init", "u"},
		c.Mesh.XData(), c.U0.Data(), c.U.Data()).AddTimeAux(c.DT, 0, c.FinalTime)
}

func (c *Burgers) Print(w io.Writer) error {
	return writefiles.PrintTable(w, []string{"X", "InitialU", "LaxWendroffU"},
		c.Mesh.XData(), c.U0.Data(), c.U.Data())
}

func (c *Burgers) Final() (x, u []float64) {
	return c.Mesh.XData(), c.U.Data()
}

func (c *Burgers) Summary() string {
	x := c.Mesh.XData()
	exact := utils.NewVector(len(x), RiemannExact(FD1D.StepHigh, FD1D.StepLow, FD1D.StepLocation, c.Time, x))
	return fmt.Sprintf("Steps = %d, Time = %8.4f, L1 error vs exact = %8.6f",
		c.Steps, c.Time, exact.Subtract(c.U).Norm(1)*c.Mesh.Dx())
}

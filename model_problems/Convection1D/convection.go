package Convection1D

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/fdm1d/FD1D"
	"github.com/notargets/fdm1d/utils"
	"github.com/notargets/fdm1d/writefiles"
)

/*
Convection solves du/dt + a*du/dx = 0 on a mesh of NX nodes over [0, Length].
The update is first order upwind, taking the backward difference for a > 0
and the forward difference otherwise. The end values are frozen.
*/
type Convection struct {
	// Input parameters
	a, FinalTime, DT float64
	Mesh             *FD1D.Mesh1D
	U0, U            utils.Vector
	Time             float64
	Steps            int
	uo               utils.Vector
	chart            *utils.FieldChart
}

func NewConvection(a, FinalTime, DT, Length float64, NX int) (c *Convection) {
	c = &Convection{
		a:         a,
		FinalTime: FinalTime,
		DT:        DT,
		Mesh:      FD1D.NewMeshLength(NX, Length),
	}
	c.U0 = FD1D.DefaultStep(c.Mesh)
	c.U = c.U0.Copy()
	c.uo = c.U0.Copy()
	log.Infof("Linear Convection in 1 Dimension, First Order Upwind")
	log.Infof("NX = %d, DX = %8.6f, a = %8.4f, DT = %8.6f, FinalTime = %8.4f", NX, c.Mesh.Dx(), a, DT, FinalTime)
	log.Infof("Courant number: %v", c.Courant())
	return
}

func (c *Convection) Name() string { return "Convection1D Upwind" }

func (c *Convection) Courant() float64 {
	return c.a * c.DT / c.Mesh.Dx()
}

func (c *Convection) Step() {
	var (
		u   = c.U.DataP()
		uo  = c.uo.DataP()
		nx  = len(u)
		cfl = c.Courant()
	)
	for i := 1; i < nx-1; i++ {
		if c.a > 0 {
			u[i] = uo[i] - cfl*(uo[i]-uo[i-1])
		} else {
			u[i] = uo[i] - cfl*(uo[i+1]-uo[i])
		}
	}
	u[0] = uo[0]
	u[nx-1] = uo[nx-1]
	c.uo.Assign(c.U)
	c.Time += c.DT
	c.Steps++
}

func (c *Convection) Run(showGraph bool, graphDelay ...time.Duration) {
	for c.Time <= c.FinalTime {
		c.Plot(showGraph, graphDelay)
		c.Step()
		log.Debugf("Time = %8.4f, step = %d", c.Time, c.Steps)
	}
	c.Plot(showGraph, graphDelay)
	log.Infof("Completed %d steps, Time = %8.4f", c.Steps, c.Time)
}

func (c *Convection) Plot(showGraph bool, graphDelay []time.Duration) {
	if !showGraph {
		return
	}
	if c.chart == nil {
		c.chart = utils.NewFieldChart(c.Mesh.XA, c.Mesh.XB, -0.1, 1.6)
	}
	x := c.Mesh.XData()
	c.chart.AddField("U_init", x, c.U0.Data(), -0.7)
	c.chart.AddField("U", x, c.U.Data(), 0.7)
	c.chart.Pause(graphDelay)
}

func (c *Convection) PrintMesh(w io.Writer) {
	c.Mesh.Print(w)
}

func (c *Convection) Tecplot() *writefiles.Tecplot {
	return writefiles.NewTecplot([]string{"x", "u_init", "u"},
		c.Mesh.XData(), c.U0.Data(), c.U.Data()).AddTimeAux(c.DT, 0, c.FinalTime)
}

func (c *Convection) Print(w io.Writer) error {
	return writefiles.PrintTable(w, []string{"X", "InitialU", "UpwindU"},
		c.Mesh.XData(), c.U0.Data(), c.U.Data())
}

func (c *Convection) Final() (x, u []float64) {
	return c.Mesh.XData(), c.U.Data()
}

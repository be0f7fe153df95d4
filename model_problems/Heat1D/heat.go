package Heat1D

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/james-bowman/sparse"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/fdm1d/FD1D"
	"github.com/notargets/fdm1d/utils"
	"github.com/notargets/fdm1d/writefiles"
)

var (
	DefaultSnapshots = []float64{0.1, 0.2, 0.3, 0.5, 1.0}
)

type Snapshot struct {
	Time float64
	U    []float64
}

/*
Heat solves du/dt = k*d2u/dx2 with the explicit FTCS update

	u[i] += lambda*(u[i+1] - 2*u[i] + u[i-1]),  lambda = k*dt/dx^2

applied as a sparse tridiagonal operator. The end values are held fixed.
*/
type Heat struct {
	// Input parameters
	K, FinalTime, DT float64
	SnapTimes        []float64
	Mesh             *FD1D.Mesh1D
	U0, U            utils.Vector
	Time             float64
	Steps            int
	Lambda           float64
	Snapshots        []Snapshot
	A                *sparse.CSR
	next             *mat.VecDense
	chart            *utils.FieldChart
}

// NewHeat starts from a spike of SpikeValue at the middle node of [0, Length]
func NewHeat(K, DT, Length, SpikeValue float64, NX int, SnapTimes ...float64) (c *Heat) {
	if len(SnapTimes) == 0 {
		SnapTimes = DefaultSnapshots
	}
	c = &Heat{
		K:         K,
		DT:        DT,
		SnapTimes: SnapTimes,
		FinalTime: SnapTimes[len(SnapTimes)-1],
		Mesh:      FD1D.NewMeshLength(NX, Length),
		next:      mat.NewVecDense(NX, nil),
	}
	c.U0 = FD1D.Spike(NX, NX/2, SpikeValue)
	c.U = c.U0.Copy()
	c.Lambda = K * DT / utils.POW(c.Mesh.Dx(), 2)
	c.A = c.Operator()
	log.Infof("Heat Diffusion in 1 Dimension, FTCS")
	log.Infof("NX = %d, DX = %8.6f, DT = %8.6f, K = %8.4f, FinalTime = %8.4f", NX, c.Mesh.Dx(), DT, K, c.FinalTime)
	log.Infof("Lambda: %v", c.Lambda)
	return
}

func (c *Heat) Name() string { return "Heat1D FTCS" }

// Operator assembles the one step update matrix, identity rows at the ends
func (c *Heat) Operator() *sparse.CSR {
	var (
		nx  = c.Mesh.NX
		dok = sparse.NewDOK(nx, nx)
	)
	dok.Set(0, 0, 1)
	dok.Set(nx-1, nx-1, 1)
	for i := 1; i < nx-1; i++ {
		dok.Set(i, i-1, c.Lambda)
		dok.Set(i, i, 1-2*c.Lambda)
		dok.Set(i, i+1, c.Lambda)
	}
	return dok.ToCSR()
}

func (c *Heat) Step() {
	c.next.MulVec(c.A, c.U.V)
	c.U.V.CopyVec(c.next)
	c.Time += c.DT
	c.Steps++
}

func (c *Heat) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		tol = 0.5 * c.DT
	)
	for c.Time <= c.FinalTime {
		c.Step()
		for _, ts := range c.SnapTimes {
			if math.Abs(c.Time-ts) < tol {
				c.Snapshots = append(c.Snapshots, Snapshot{Time: ts, U: c.U.Data()})
				log.Infof("Snapshot t = %v, step = %d, umax = %8.4f", ts, c.Steps, c.U.Max())
				c.Plot(showGraph, graphDelay)
			}
		}
	}
	log.Infof("Completed %d steps, Time = %8.4f", c.Steps, c.Time)
}

func (c *Heat) Plot(showGraph bool, graphDelay []time.Duration) {
	if !showGraph {
		return
	}
	if c.chart == nil {
		c.chart = utils.NewFieldChart(c.Mesh.XA, c.Mesh.XB, -1, 0.5*c.U0.Max())
	}
	var (
		x     = c.Mesh.XData()
		last  = c.Snapshots[len(c.Snapshots)-1]
		color = float32(2*len(c.Snapshots))/float32(len(c.SnapTimes)) - 1
	)
	c.chart.AddField(snapName(last.Time), x, last.U, color)
	c.chart.Pause(graphDelay)
}

func snapName(t float64) string {
	return fmt.Sprintf("t=%v", t)
}

func (c *Heat) columns() (names []string, cols [][]float64) {
	names = []string{"x", "u_init"}
	cols = [][]float64{c.Mesh.XData(), c.U0.Data()}
	for _, s := range c.Snapshots {
		names = append(names, snapName(s.Time))
		cols = append(cols, s.U)
	}
	return
}

func (c *Heat) Tecplot() *writefiles.Tecplot {
	names, cols := c.columns()
	return writefiles.NewTecplot(names, cols...).AddTimeAux(c.DT, 0, c.FinalTime)
}

func (c *Heat) Print(w io.Writer) error {
	names, cols := c.columns()
	names[0], names[1] = "X", "InitialU"
	return writefiles.PrintTable(w, names, cols...)
}

func (c *Heat) Final() (x, u []float64) {
	return c.Mesh.XData(), c.U.Data()
}

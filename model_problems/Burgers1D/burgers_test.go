package Burgers1D

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fdm1d/utils"
)

func TestBurgersInitialization(t *testing.T) {
	c := NewBurgers(0, 1, 0.5, 1.e-2, 81)
	{ // Zero steps leaves the initial condition untouched
		require.Equal(t, 81, c.U.Len())
		assert.Equal(t, c.U0.Data(), c.U.Data())
		assert.Equal(t, 0, c.Steps)
		assert.Equal(t, 0., c.Time)
	}
	{ // The field is independent storage from the initial condition
		c.U.DataP()[10] = -1
		assert.Equal(t, 1., c.U0.AtVec(10))
		c.InitializeStep()
		assert.Equal(t, c.U0.Data(), c.U.Data())
	}
	assert.InDelta(t, 0.8, c.DtDx(), 1.e-12)
}

func TestBurgersStep(t *testing.T) {
	/*
		nx = 81 on [0,1], dt = 0.01: dx = 0.0125, m1 = 0.4, m2 = 0.32
		Only the two nodes either side of the step change on the first step:
			u[40] = 1 + 0.4*0.5 - 0.32*0.5*0.5 = 1.12
			u[41] = 0 + 0.4*0.5 + 0.32*0.5*0.5 = 0.28
	*/
	c := NewBurgers(0, 1, 0.5, 1.e-2, 81)
	c.Step()
	assert.Equal(t, 1, c.Steps)
	assert.InDelta(t, 0.01, c.Time, 1.e-15)
	assert.InDelta(t, 1.12, c.U.AtVec(40), 1.e-12)
	assert.InDelta(t, 0.28, c.U.AtVec(41), 1.e-12)
	for i := 0; i < c.U.Len(); i++ {
		if i == 40 || i == 41 {
			continue
		}
		assert.Equal(t, c.U0.AtVec(i), c.U.AtVec(i), "node %d", i)
	}
	// The second step only reads first step values
	c.Step()
	dd := c.U.Data()
	assert.Equal(t, 1., dd[38])
	assert.NotEqual(t, 1., dd[39])
	assert.NotEqual(t, 0., dd[42])
	assert.Equal(t, 0., dd[43])
}

func TestBurgersBoundaryFreezing(t *testing.T) {
	c := NewBurgers(0, 1, 0.5, 1.e-2, 81)
	c.Run(false)
	assert.Equal(t, c.U0.AtVec(0), c.U.AtVec(0))
	assert.Equal(t, c.U0.AtVec(80), c.U.AtVec(80))
	// A coarse mesh lets the shock reach the right end, the end value still holds
	c = NewBurgers(0, 1, 2, 1.e-2, 11)
	for i := 0; i < 300; i++ {
		c.Step()
		require.Equal(t, 1., c.U.AtVec(0))
		require.Equal(t, 0., c.U.AtVec(10))
	}
}

func TestBurgersRun(t *testing.T) {
	c := NewBurgers(0, 1, 0.5, 1.e-2, 81)
	c.Run(false)
	// The loop runs while time <= FinalTime, so it always passes FinalTime
	assert.Greater(t, c.Time, c.FinalTime)
	assert.InDelta(t, 51, c.Steps, 1)
	assert.InDelta(t, float64(c.Steps)*c.DT, c.Time, 1.e-12)
	{ // A negative end time takes no steps
		c := NewBurgers(0, 1, -1, 1.e-2, 81)
		c.Run(false)
		assert.Equal(t, 0, c.Steps)
		assert.Equal(t, c.U0.Data(), c.U.Data())
	}
}

func TestBurgersConservation(t *testing.T) {
	/*
		The scheme is conservative and the stencil reaches one node per step, so
		while the disturbance is away from the ends the only mass change is the
		inflow flux F(1) = 0.5 through the left end.
	*/
	c := NewBurgers(0, 1, 0.2, 1.e-2, 81)
	dx := c.Mesh.Dx()
	sum0 := c.U.Sum() * dx
	c.Run(false)
	require.Less(t, c.Steps, 40)
	sum1 := c.U.Sum() * dx
	assert.InDelta(t, float64(c.Steps)*c.DT*0.5, sum1-sum0, 1.e-12)
}

func TestBurgersShockLocation(t *testing.T) {
	// Shock speed is 0.5, mass balance places the shock at 0.5 + 0.5*t
	c := NewBurgers(0, 1, 0.2, 1.e-2, 81)
	c.Run(false)
	x := c.Mesh.XData()
	exact := utils.NewVector(len(x), RiemannExact(1, 0, 0.5, c.Time, x))
	// The numerical and exact mass agree up to the end node treatment
	assert.InDelta(t, exact.Sum(), c.U.Sum(), 1.)
	assert.Contains(t, c.Summary(), "Steps = ")
}

func TestBurgersOutput(t *testing.T) {
	c := NewBurgers(0, 1, 0.5, 1.e-2, 81)
	{
		var buf bytes.Buffer
		require.NoError(t, c.Tecplot().Write(&buf))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Equal(t, 81+4, len(lines))
		assert.Equal(t, "VARIABLES=x,u_init,u", lines[0])
		assert.Equal(t, "ZONE T=\"Data\", I=81, F=POINT", lines[1])
		assert.Equal(t, "0 1 1", lines[2])
		assert.Equal(t, "0.5 1 1", lines[42])
		assert.Equal(t, "1 0 0", lines[82])
		assert.Equal(t, "DT=1.0e-2", lines[83])
		assert.Equal(t, "TIME=0.0,0.5", lines[84])
	}
	{
		var buf bytes.Buffer
		require.NoError(t, c.Print(&buf))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Equal(t, 82, len(lines))
		assert.Equal(t, "X\t\tInitialU\t\tLaxWendroffU", lines[0])
		assert.Equal(t, "0.0125\t\t1\t\t1", lines[2])
	}
	x, u := c.Final()
	assert.Equal(t, 81, len(x))
	assert.Equal(t, c.U.Data(), u)
}

func TestRiemannExact(t *testing.T) {
	x := []float64{0, 0.25, 0.5, 0.6, 0.75, 1}
	{ // Shock
		assert.Equal(t, 0.5, ShockSpeed(1, 0))
		assert.Equal(t, []float64{1, 1, 1, 0, 0, 0}, RiemannExact(1, 0, 0.5, 0, x))
		assert.Equal(t, []float64{1, 1, 1, 1, 0, 0}, RiemannExact(1, 0, 0.5, 0.2, x))
	}
	{ // Rarefaction
		u := RiemannExact(0, 1, 0.5, 0.5, x)
		assert.Equal(t, 0., u[1])
		assert.Equal(t, 0., u[2])
		assert.InDelta(t, 0.2, u[3], 1.e-12)
		assert.InDelta(t, 0.5, u[4], 1.e-12)
		assert.Equal(t, 1., u[5])
	}
}

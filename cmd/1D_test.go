package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	ip := Defaults(M_1DBurgers)
	assert.Equal(t, 81, ip.NX)
	assert.Equal(t, 0., ip.XA)
	assert.Equal(t, 1., ip.XB)
	assert.Equal(t, 0.5, ip.FinalTime)
	assert.Equal(t, 1.e-2, ip.DT)
	assert.Equal(t, "data", ip.Output)

	ip = Defaults(M_1DConvection)
	assert.Equal(t, 10, ip.NX)
	assert.Equal(t, 1., ip.Speed)

	ip = Defaults(M_1DHeat)
	assert.Equal(t, 0.25, ip.Diffusivity)
	assert.Equal(t, 100., ip.SpikeValue)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.5, 1.0}, ip.SnapTimes)

	mt, err := NewModelType1D("Heat")
	require.NoError(t, err)
	assert.Equal(t, M_1DHeat, mt)
	assert.Equal(t, "Heat", mt.String())
	_, err = NewModelType1D("Euler")
	assert.Error(t, err)
}

func TestNewModel1D(t *testing.T) {
	{ // No flags, no file: the default Burgers run
		viper.Reset()
		m1d, err := NewModel1D("")
		require.NoError(t, err)
		assert.Equal(t, M_1DBurgers, m1d.ModelRun)
		assert.Equal(t, Defaults(M_1DBurgers), m1d.InputParameters1D)
	}
	{ // Flags override defaults
		viper.Reset()
		viper.Set("nx", 41)
		viper.Set("dt", 0.005)
		viper.Set("quiet", true)
		m1d, err := NewModel1D("")
		require.NoError(t, err)
		assert.Equal(t, 41, m1d.NX)
		assert.Equal(t, 0.005, m1d.DT)
		assert.Equal(t, 0.5, m1d.FinalTime)
		assert.True(t, m1d.Quiet)
	}
	{ // The input file selects the model, flags still win
		viper.Reset()
		fileName := filepath.Join(t.TempDir(), "heat.yaml")
		require.NoError(t, os.WriteFile(fileName, []byte("Model: Heat\nNX: 21\nSnapTimes: [0.001, 0.002]\n"), 0644))
		viper.Set("diffusivity", 0.5)
		m1d, err := NewModel1D(fileName)
		require.NoError(t, err)
		assert.Equal(t, M_1DHeat, m1d.ModelRun)
		assert.Equal(t, 21, m1d.NX)
		assert.Equal(t, 0.5, m1d.Diffusivity)
		assert.Equal(t, 1.e-4, m1d.DT)
		assert.Equal(t, 0.002, m1d.FinalTime)
		assert.Equal(t, "heat", m1d.Output)
	}
	{ // Degenerate input is refused before a run
		viper.Reset()
		viper.Set("nx", 1)
		_, err := NewModel1D("")
		assert.Error(t, err)
		viper.Reset()
		viper.Set("model", 7)
		_, err = NewModel1D("")
		assert.Error(t, err)
		viper.Reset()
		_, err = NewModel1D(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	}
	viper.Reset()
}

func TestRun1D(t *testing.T) {
	dir := t.TempDir()
	{
		viper.Reset()
		viper.Set("output", filepath.Join(dir, "data"))
		viper.Set("ascii", true)
		m1d, err := NewModel1D("")
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Run1D(m1d, &buf))
		assert.True(t, strings.HasPrefix(buf.String(), "X\t\tInitialU\t\tLaxWendroffU\n"))
		assert.Contains(t, buf.String(), "Burgers1D Lax-Wendroff")
		data, err := os.ReadFile(filepath.Join(dir, "data.dat"))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, "VARIABLES=x,u_init,u", lines[0])
		assert.Equal(t, "ZONE T=\"Data\", I=81, F=POINT", lines[1])
		assert.Equal(t, "DT=1.0e-2", lines[len(lines)-2])
		assert.Equal(t, "TIME=0.0,0.5", lines[len(lines)-1])
	}
	{ // Convection echoes its mesh first
		viper.Reset()
		viper.Set("model", int(M_1DConvection))
		viper.Set("output", "")
		m1d, err := NewModel1D("")
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Run1D(m1d, &buf))
		lines := strings.Split(buf.String(), "\n")
		assert.Equal(t, "0", lines[0])
		assert.Equal(t, "1", lines[9])
		assert.Equal(t, "X\t\tInitialU\t\tUpwindU", lines[10])
	}
	{ // Unwritable output is reported
		viper.Reset()
		viper.Set("output", filepath.Join(dir, "missing", "data"))
		viper.Set("quiet", true)
		m1d, err := NewModel1D("")
		require.NoError(t, err)
		var buf bytes.Buffer
		assert.Error(t, Run1D(m1d, &buf))
		assert.Equal(t, 0, buf.Len())
	}
	viper.Reset()
}

/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/fdm1d/InputParameters"
	"github.com/notargets/fdm1d/model_problems/Burgers1D"
	"github.com/notargets/fdm1d/model_problems/Convection1D"
	"github.com/notargets/fdm1d/model_problems/Heat1D"
	"github.com/notargets/fdm1d/utils"
	"github.com/notargets/fdm1d/writefiles"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Model Problem Solutions",
	Long: `
Executes the explicit finite difference solver for a variety of model problems,
writing a Tecplot point file and echoing the solution to the console.

fdm1d 1D --model 0 --nx 81 --dt 0.01 --finalTime 0.5`,
	Run: func(cmd *cobra.Command, args []string) {
		m1d, err := NewModel1D(viper.GetString("inputFile"))
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = Run1D(m1d, os.Stdout); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if m1d.Graph {
			utils.Hold()
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().IntP("model", "m", int(M_1DBurgers), "model to run: 0 = Burgers1D, 1 = Convection1D, 2 = Heat1D")
	OneDCmd.Flags().IntP("nx", "n", 0, "Number of grid nodes (default depends on model)")
	OneDCmd.Flags().Float64("xa", 0, "Left end of the domain")
	OneDCmd.Flags().Float64("xb", 0, "Right end of the domain (default depends on model)")
	OneDCmd.Flags().Float64("finalTime", 0, "FinalTime - the target end time for the sim (default depends on model)")
	OneDCmd.Flags().Float64("dt", 0, "Time step, used as given with no stability check (default depends on model)")
	OneDCmd.Flags().Float64("speed", 0, "Convection speed, for Convection1D")
	OneDCmd.Flags().Float64("diffusivity", 0, "Diffusion constant, for Heat1D")
	OneDCmd.Flags().StringP("output", "o", "", "Tecplot output file name, .dat is appended (default depends on model)")
	OneDCmd.Flags().StringP("inputFile", "I", "", "YAML file for input parameters like:\n\t- Model\n\t- NX\n\t- DT")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().Bool("ascii", false, "draw the final solution as a console chart")
	OneDCmd.Flags().BoolP("quiet", "q", false, "skip the console table")
	if err := viper.BindPFlags(OneDCmd.Flags()); err != nil {
		panic(err)
	}
}

type Model1D struct {
	InputParameters.InputParameters1D
	ModelRun            ModelType1D
	Delay               time.Duration
	Graph, Ascii, Quiet bool
}

type ModelType1D uint8

const (
	M_1DBurgers ModelType1D = iota
	M_1DConvection
	M_1DHeat
)

var (
	model_names = []string{"Burgers", "Convection", "Heat"}
	def_NX      = []int{81, 10, 101}
	def_XB      = []float64{1, 1, 1}
	def_FT      = []float64{0.5, 0.25, 1}
	def_DT      = []float64{1.e-2, 0.05, 1.e-4}
	def_SPEED   = []float64{0, 1, 0}
	def_K       = []float64{0, 0, 0.25}
	def_OUTPUT  = []string{"data", "convection", "heat"}
)

func NewModelType1D(name string) (mt ModelType1D, err error) {
	for i, n := range model_names {
		if n == name {
			return ModelType1D(i), nil
		}
	}
	return 0, fmt.Errorf("unknown model %q, choose one of %v", name, model_names)
}

func (mt ModelType1D) String() string {
	if int(mt) < len(model_names) {
		return model_names[mt]
	}
	return fmt.Sprintf("ModelType1D(%d)", mt)
}

func Defaults(model ModelType1D) InputParameters.InputParameters1D {
	ip := InputParameters.InputParameters1D{
		Title:       model_names[model],
		Model:       model_names[model],
		NX:          def_NX[model],
		XA:          0,
		XB:          def_XB[model],
		FinalTime:   def_FT[model],
		DT:          def_DT[model],
		Speed:       def_SPEED[model],
		Diffusivity: def_K[model],
		Output:      def_OUTPUT[model],
	}
	if model == M_1DHeat {
		ip.SpikeValue = 100
		ip.SnapTimes = append([]float64{}, Heat1D.DefaultSnapshots...)
	}
	return ip
}

/*
NewModel1D resolves the run parameters, lowest precedence first: model defaults,
the YAML input file, then anything set by flag, environment or config file.
*/
func NewModel1D(inputFile string) (m1d *Model1D, err error) {
	var (
		file *InputParameters.InputParameters1D
	)
	m1d = &Model1D{}
	if len(inputFile) != 0 {
		file = &InputParameters.InputParameters1D{}
		if err = file.ReadFile(inputFile); err != nil {
			return
		}
	}
	switch {
	case viper.IsSet("model"):
		m1d.ModelRun = ModelType1D(viper.GetInt("model"))
		if int(m1d.ModelRun) >= len(model_names) {
			return nil, fmt.Errorf("unknown model number %d", m1d.ModelRun)
		}
	case file != nil && len(file.Model) != 0:
		if m1d.ModelRun, err = NewModelType1D(file.Model); err != nil {
			return
		}
	}
	m1d.InputParameters1D = Defaults(m1d.ModelRun)
	if len(inputFile) != 0 {
		// Re-read on top of the defaults so missing keys keep their default
		if err = m1d.InputParameters1D.ReadFile(inputFile); err != nil {
			return
		}
		m1d.Model = m1d.ModelRun.String()
	}
	ip := &m1d.InputParameters1D
	setInt("nx", &ip.NX)
	setFloat("xa", &ip.XA)
	setFloat("xb", &ip.XB)
	setFloat("finalTime", &ip.FinalTime)
	setFloat("dt", &ip.DT)
	setFloat("speed", &ip.Speed)
	setFloat("diffusivity", &ip.Diffusivity)
	if viper.IsSet("output") {
		ip.Output = viper.GetString("output")
	}
	if m1d.ModelRun == M_1DHeat && len(ip.SnapTimes) != 0 {
		ip.FinalTime = ip.SnapTimes[len(ip.SnapTimes)-1]
	}
	m1d.Graph = viper.GetBool("graph")
	m1d.Ascii = viper.GetBool("ascii")
	m1d.Quiet = viper.GetBool("quiet")
	m1d.Delay = time.Duration(viper.GetInt("delay"))
	if err = ip.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input parameters: %w", err)
	}
	return
}

func setInt(key string, target *int) {
	if viper.IsSet(key) {
		*target = viper.GetInt(key)
	}
}

func setFloat(key string, target *float64) {
	if viper.IsSet(key) {
		*target = viper.GetFloat64(key)
	}
}

type Model interface {
	Run(graph bool, graphDelay ...time.Duration)
	Tecplot() *writefiles.Tecplot
	Print(w io.Writer) error
	Final() (x, u []float64)
	Name() string
}

func NewModel(m1d *Model1D) (C Model) {
	ip := m1d.InputParameters1D
	switch m1d.ModelRun {
	case M_1DConvection:
		C = Convection1D.NewConvection(ip.Speed, ip.FinalTime, ip.DT, ip.XB-ip.XA, ip.NX)
	case M_1DHeat:
		C = Heat1D.NewHeat(ip.Diffusivity, ip.DT, ip.XB-ip.XA, ip.SpikeValue, ip.NX, ip.SnapTimes...)
	case M_1DBurgers:
		fallthrough
	default:
		C = Burgers1D.NewBurgers(ip.XA, ip.XB, ip.FinalTime, ip.DT, ip.NX)
	}
	return
}

// Run1D marches the selected model, then writes the Tecplot file and the console echo
func Run1D(m1d *Model1D, w io.Writer) (err error) {
	var (
		C = NewModel(m1d)
	)
	if log.IsLevelEnabled(log.DebugLevel) {
		lw := log.StandardLogger().WriterLevel(log.DebugLevel)
		m1d.InputParameters1D.Print(lw)
		lw.Close()
	}
	if mp, ok := C.(interface{ PrintMesh(io.Writer) }); ok && !m1d.Quiet {
		mp.PrintMesh(w)
	}
	C.Run(m1d.Graph, m1d.Delay*time.Millisecond)
	if len(m1d.Output) != 0 {
		var fileName string
		if fileName, err = C.Tecplot().WriteFile(m1d.Output); err != nil {
			return
		}
		log.Infof("Wrote %s", fileName)
	}
	if !m1d.Quiet {
		if err = C.Print(w); err != nil {
			return
		}
	}
	if s, ok := C.(interface{ Summary() string }); ok {
		log.Info(s.Summary())
	}
	if m1d.Ascii {
		_, u := C.Final()
		fmt.Fprintln(w, utils.AsciiPlot(u, C.Name()))
	}
	return
}

package InputParameters

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title       string    `json:"Title"`
	Model       string    `json:"Model"` // Burgers, Convection or Heat
	NX          int       `json:"NX"`
	XA          float64   `json:"XA"`
	XB          float64   `json:"XB"`
	FinalTime   float64   `json:"FinalTime"`
	DT          float64   `json:"DT"`
	Speed       float64   `json:"Speed"`       // Convection speed
	Diffusivity float64   `json:"Diffusivity"` // Heat diffusion constant
	SpikeValue  float64   `json:"SpikeValue"`
	SnapTimes   []float64 `json:"SnapTimes"`
	Output      string    `json:"Output"` // Tecplot file name without the .dat extension
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ReadFile overlays the contents of a YAML file onto the receiver
func (ip *InputParameters1D) ReadFile(fileName string) (err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return fmt.Errorf("unable to read input parameters file: %w", err)
	}
	if err = ip.Parse(data); err != nil {
		return fmt.Errorf("unable to parse input parameters file %s: %w", fileName, err)
	}
	return
}

func (ip *InputParameters1D) Validate() error {
	if ip.NX < 2 {
		return fmt.Errorf("NX must be at least 2, have %d", ip.NX)
	}
	if ip.DT <= 0 {
		return fmt.Errorf("DT must be positive, have %v", ip.DT)
	}
	if ip.XB <= ip.XA {
		return fmt.Errorf("XB (%v) must be greater than XA (%v)", ip.XB, ip.XA)
	}
	if !sort.Float64sAreSorted(ip.SnapTimes) {
		return fmt.Errorf("SnapTimes must be increasing, have %v", ip.SnapTimes)
	}
	return nil
}

func (ip *InputParameters1D) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Model\n", ip.Model)
	fmt.Fprintf(w, "[%d]\t\t\t= NX\n", ip.NX)
	fmt.Fprintf(w, "[%8.5f,%8.5f]\t= Domain\n", ip.XA, ip.XB)
	fmt.Fprintf(w, "%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Fprintf(w, "%8.5f\t\t= DT\n", ip.DT)
	switch ip.Model {
	case "Convection":
		fmt.Fprintf(w, "%8.5f\t\t= Speed\n", ip.Speed)
	case "Heat":
		fmt.Fprintf(w, "%8.5f\t\t= Diffusivity\n", ip.Diffusivity)
		fmt.Fprintf(w, "%v\t= SnapTimes\n", ip.SnapTimes)
	}
}

package utils

import (
	"sync"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

// FieldChart is an interactive line chart of 1D fields, opened on first use
type FieldChart struct {
	XMin, XMax, FMin, FMax float32
	once                   sync.Once
	chart                  *chart2d.Chart2D
	colorMap               *utils2.ColorMap
}

func NewFieldChart(xmin, xmax, fmin, fmax float64) *FieldChart {
	return &FieldChart{
		XMin: float32(xmin),
		XMax: float32(xmax),
		FMin: float32(fmin),
		FMax: float32(fmax),
	}
}

func (fc *FieldChart) open() {
	fc.once.Do(func() {
		fc.chart = chart2d.NewChart2D(1920, 1280, fc.XMin, fc.XMax, fc.FMin, fc.FMax)
		fc.colorMap = utils2.NewColorMap(-1, 1, 1)
		go fc.chart.Plot()
	})
}

// AddField draws a solid line series, replacing any earlier series of the same name.
// Color is a position on the colormap in [-1,1].
func (fc *FieldChart) AddField(name string, x, f []float64, color float32) {
	fc.open()
	if err := fc.chart.AddSeries(name, x, f, chart2d.NoGlyph, chart2d.Solid, fc.colorMap.GetRGB(color)); err != nil {
		panic("unable to add graph series " + name)
	}
}

// AddPoints draws an unconnected glyph series, used for reference solutions
func (fc *FieldChart) AddPoints(name string, x, f []float64, color float32) {
	fc.open()
	if err := fc.chart.AddSeries(name, x, f, chart2d.XGlyph, chart2d.NoLine, fc.colorMap.GetRGB(color)); err != nil {
		panic("unable to add graph series " + name)
	}
}

func (fc *FieldChart) Pause(graphDelay []time.Duration) {
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

// Hold keeps the process alive so the final frame stays on screen
func Hold() {
	for {
		time.Sleep(time.Second)
	}
}

// AsciiPlot renders a field as a console line chart
func AsciiPlot(f []float64, caption string) string {
	return asciigraph.Plot(f,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

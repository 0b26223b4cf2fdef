package utils

import (
	"fmt"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"
)

type LineChart struct {
	Chart    *chart2d.Chart2D
	ColorMap *utils2.ColorMap
}

func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Chart:    chart2d.NewChart2D(width, height, float32(xmin), float32(xmax), float32(fmin), float32(fmax)),
		ColorMap: utils2.NewColorMap(-1, 1, 1),
	}
	go lc.Chart.Plot()
	return
}

// PlotBounds pads the range of f by a tenth of its spread, with a floor so a flat profile stays visible
func PlotBounds(f []float64) (fMin, fMax float64) {
	fMin, fMax = floats.Min(f), floats.Max(f)
	margin := 0.1 * (fMax - fMin)
	if margin < 1.e-4 {
		margin = 1.e-4
	}
	return fMin - margin, fMax + margin
}

// Plot replaces the series named lineName, lineColor goes from -1 (red) to 1 (blue)
func (lc *LineChart) Plot(graphDelay time.Duration, x, f []float64, lineColor float64, lineName string) {
	if err := lc.Chart.AddSeries(lineName, x, f,
		chart2d.NoGlyph, chart2d.Solid, lc.ColorMap.GetRGB(float32(lineColor))); err != nil {
		panic(fmt.Errorf("unable to add graph series %s: %w", lineName, err))
	}
	time.Sleep(graphDelay)
}

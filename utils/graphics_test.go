package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlotBounds(t *testing.T) {
	fMin, fMax := PlotBounds([]float64{0, 0.5, 1})
	assert.InDelta(t, -0.1, fMin, 1.e-15)
	assert.InDelta(t, 1.1, fMax, 1.e-15)
	fMin, fMax = PlotBounds([]float64{2, 2})
	assert.Less(t, fMin, 2.)
	assert.Greater(t, fMax, 2.)
}

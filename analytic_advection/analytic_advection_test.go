package analytic_advection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofv/FV1D"
	"github.com/notargets/gofv/utils"
)

func TestProfiles(t *testing.T) {
	g := FV1D.NewGrid1D(0, 1, 200)
	U := g.NewState()
	{ // The default square pulse covers cells 50 through 99
		p := &Profile{Type: SQUARE, Amplitude: 1, PulseStart: 0.25, PulseEnd: 0.5, XMin: 0, Length: 1}
		p.Fill(g.X, U)
		for i, u := range U {
			if i >= 50 && i < 100 {
				assert.Equal(t, 1., u)
			} else {
				assert.Equal(t, 0., u)
			}
		}
	}
	{
		p := &Profile{Type: TRIANGLE, Amplitude: 2, PulseStart: 0.2, PulseEnd: 0.6}
		assert.InDelta(t, 2., p.Value(0.4), 1.e-14)
		assert.InDelta(t, 1., p.Value(0.3), 1.e-14)
		assert.InDelta(t, 1., p.Value(0.5), 1.e-14)
		assert.Equal(t, 0., p.Value(0.1))
		assert.Equal(t, 0., p.Value(0.6))
	}
	{
		p := &Profile{Type: GAUSSIAN, Amplitude: 1, Center: 0.5, Width: 200}
		assert.Equal(t, 1., p.Value(0.5))
		assert.InDelta(t, math.Exp(-2), p.Value(0.6), 1.e-14)
	}
	{
		p := &Profile{Type: SINE, Amplitude: 1, XMin: -1, Length: 2}
		assert.InDelta(t, 0., p.Value(-1), 1.e-14)
		assert.InDelta(t, 1., p.Value(-0.5), 1.e-14)
	}
	{
		p := &Profile{Type: UNIFORM, Amplitude: 3.5}
		assert.Equal(t, 3.5, p.Value(100))
	}
	assert.Panics(t, func() { (&Profile{Type: InitType(99)}).Value(0) })
	assert.Panics(t, func() { (&Profile{Type: UNIFORM}).Fill(g.X, U[1:]) })
}

func TestInitType(t *testing.T) {
	it, err := NewInitType(" Gaussian")
	assert.NoError(t, err)
	assert.Equal(t, GAUSSIAN, it)
	it, err = NewInitType("hat")
	assert.NoError(t, err)
	assert.Equal(t, TRIANGLE, it)
	assert.Equal(t, "Triangle (Hat) Pulse", it.Print())
	_, err = NewInitType("shock")
	assert.Error(t, err)
	assert.Equal(t, "Unknown", InitType(42).Print())
}

func TestExact(t *testing.T) {
	p := &Profile{Type: SQUARE, Amplitude: 1, PulseStart: 0.02, PulseEnd: 0.03, XMin: 0, Length: 0.1}
	{ // Translation by a*t, as in the humid air pipe case
		assert.Equal(t, 1., p.Exact(0.075, 0.5, 0.1, 0, utils.BCZeroInflow))
		assert.Equal(t, 0., p.Exact(0.025, 0.5, 0.1, 0, utils.BCZeroInflow))
	}
	{ // Periodic wrap in both directions
		assert.Equal(t, 1., p.Exact(0.025, 1, 0.1, 0, utils.BCPeriodic))
		assert.Equal(t, 1., p.Exact(0.025, 1, -0.1, 0, utils.BCPeriodic))
		assert.Equal(t, 1., p.Exact(0.005, 0.8, 0.1, 0, utils.BCPeriodic))
	}
	{ // Zero inflow brings in nothing, zero gradient holds the inflow value
		u := &Profile{Type: UNIFORM, Amplitude: 2, XMin: 0, Length: 1}
		assert.Equal(t, 0., u.Exact(0.1, 2, 0.1, 0, utils.BCZeroInflow))
		assert.Equal(t, 2., u.Exact(0.1, 2, 0.1, 0, utils.BCZeroGradient))
		assert.Equal(t, 2., u.Exact(0.9, 2, -0.1, 0, utils.BCZeroGradient))
		// Against the flow the right boundary holds its value
		assert.Equal(t, 2., u.Exact(0.9, 2, -0.1, 0, utils.BCZeroInflow))
		assert.Equal(t, 0., u.Exact(0.05, 2, 0.1, 0, utils.BCZeroInflow))
		g := &Profile{Type: GAUSSIAN, Amplitude: 1, Center: 0.5, Width: 200, XMin: 0, Length: 1}
		assert.InDelta(t, 1., g.Exact(0.3, 2, -0.1, 0, utils.BCZeroInflow), 1.e-12)
		assert.Equal(t, g.Value(1), g.Exact(0.9, 2, -0.1, 0, utils.BCZeroInflow))
	}
	{ // Diffusive decay of the periodic sine wave
		s := &Profile{Type: SINE, Amplitude: 1, XMin: 0, Length: 1}
		k := 2 * math.Pi
		assert.InDelta(t, math.Exp(-0.01*k*k*2), s.Exact(0.25, 2, 0, 0.01, utils.BCPeriodic), 1.e-14)
		assert.True(t, s.HasExact(0.01, utils.BCPeriodic))
		assert.False(t, s.HasExact(0.01, utils.BCZeroGradient))
		assert.True(t, p.HasExact(0, utils.BCZeroInflow))
		assert.False(t, p.HasExact(0.01, utils.BCPeriodic))
	}
}

func TestErrorNorms(t *testing.T) {
	U := []float64{1, 2, 3, 4}
	A := []float64{1, 1, 3, 2}
	en := NewErrorNorms(U, A, 0.25)
	assert.InDelta(t, 5./4., en.MSE, 1.e-14)
	assert.InDelta(t, math.Sqrt(0.25*5), en.L2, 1.e-14)
	assert.Equal(t, 2., en.LInf)
	assert.InDelta(t, 1., ConvergenceOrder(0.1, 0.05, 100, 200), 1.e-14)
	assert.InDelta(t, 2., ConvergenceOrder(0.4, 0.1, 50, 100), 1.e-14)
}

package analytic_advection

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofv/utils"
)

type InitType uint8

const (
	SQUARE InitType = iota
	TRIANGLE
	GAUSSIAN
	SINE
	UNIFORM
)

var (
	InitNames = map[string]InitType{
		"square":   SQUARE,
		"pulse":    SQUARE,
		"triangle": TRIANGLE,
		"hat":      TRIANGLE,
		"gaussian": GAUSSIAN,
		"sine":     SINE,
		"uniform":  UNIFORM,
	}
	InitPrintNames = []string{"Square Pulse", "Triangle (Hat) Pulse", "Gaussian Hump", "Sine Wave", "Uniform"}
)

func (it InitType) Print() (txt string) {
	if int(it) < len(InitPrintNames) {
		return InitPrintNames[it]
	}
	return "Unknown"
}

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use initialization type named %q", label)
	}
	return
}

/*
Profile is an initial condition on [XMin, XMin+Length] that also serves as the exact solution of linear
advection: the profile translated by a*t, wrapped for a periodic domain.

	SQUARE:   Amplitude strictly inside (PulseStart, PulseEnd), zero elsewhere
	TRIANGLE: rises linearly from PulseStart to Amplitude at the pulse midpoint, back to zero at PulseEnd
	GAUSSIAN: Amplitude * exp(-Width * (x - Center)^2)
	SINE:     Amplitude * sin(2*pi*(x - XMin)/Length)
	UNIFORM:  Amplitude everywhere
*/
type Profile struct {
	Type                 InitType
	Amplitude            float64
	PulseStart, PulseEnd float64
	Center, Width        float64
	XMin, Length         float64
}

// Value evaluates the initial profile at x
func (p *Profile) Value(x float64) (u float64) {
	switch p.Type {
	case SQUARE:
		if x > p.PulseStart && x < p.PulseEnd {
			u = p.Amplitude
		}
	case TRIANGLE:
		var (
			mid  = 0.5 * (p.PulseStart + p.PulseEnd)
			half = 0.5 * (p.PulseEnd - p.PulseStart)
		)
		if x > p.PulseStart && x < p.PulseEnd && half > 0 {
			u = p.Amplitude * (1 - math.Abs(x-mid)/half)
		}
	case GAUSSIAN:
		u = p.Amplitude * math.Exp(-p.Width*(x-p.Center)*(x-p.Center))
	case SINE:
		u = p.Amplitude * math.Sin(2*math.Pi*(x-p.XMin)/p.Length)
	case UNIFORM:
		u = p.Amplitude
	default:
		panic(fmt.Sprintf("unknown initialization type %d", p.Type))
	}
	return
}

// Fill sets U[i] to the profile value at cell center X[i]
func (p *Profile) Fill(X, U []float64) {
	if len(X) != len(U) {
		panic(fmt.Sprintf("position count %d does not match value count %d", len(X), len(U)))
	}
	for i, x := range X {
		U[i] = p.Value(x)
	}
}

// HasExact reports whether Exact is a solution for the given diffusion coefficient and boundary policy
func (p *Profile) HasExact(D float64, bc utils.BCType) bool {
	switch {
	case D == 0:
		return true
	case p.Type == UNIFORM && bc != utils.BCZeroInflow:
		return true
	case p.Type == SINE && bc == utils.BCPeriodic:
		return true
	}
	return false
}

/*
Exact evaluates the solution at position x and time t for velocity a and diffusion D.

Periodic domains wrap the departure point x - a*t. Otherwise the departure point is clamped to the
domain for BCZeroGradient, which holds the inflow cell value. BCZeroInflow brings in zero through the
left boundary for a >= 0, while for a < 0 the right boundary holds its last cell value, so the departure
point is clamped to the right edge. Only the periodic sine wave carries the diffusive decay
exp(-D*k^2*t).
*/
func (p *Profile) Exact(x, t, a, D float64, bc utils.BCType) (u float64) {
	var (
		xd   = x - a*t
		xMax = p.XMin + p.Length
	)
	switch bc {
	case utils.BCPeriodic:
		xd = p.XMin + math.Mod(xd-p.XMin, p.Length)
		if xd < p.XMin {
			xd += p.Length
		}
	case utils.BCZeroGradient:
		xd = math.Max(p.XMin, math.Min(xd, xMax))
	default:
		if a < 0 && xd > xMax {
			xd = xMax
		}
		if xd < p.XMin || xd > xMax {
			return 0
		}
	}
	u = p.Value(xd)
	if p.Type == SINE && D != 0 {
		k := 2 * math.Pi / p.Length
		u *= math.Exp(-D * k * k * t)
	}
	return
}

// ExactState fills A with the exact solution at the cell centers X
func (p *Profile) ExactState(X, A []float64, t, a, D float64, bc utils.BCType) {
	for i, x := range X {
		A[i] = p.Exact(x, t, a, D, bc)
	}
}

type ErrorNorms struct {
	MSE  float64 // Mean squared error, sum((U-A)^2)/N
	L2   float64 // Discrete L2 norm, sqrt(dx * sum((U-A)^2))
	LInf float64 // Maximum absolute error
}

func NewErrorNorms(U, A []float64, dx float64) (en ErrorNorms) {
	var (
		l2 = floats.Distance(U, A, 2)
	)
	en = ErrorNorms{
		MSE:  l2 * l2 / float64(len(U)),
		L2:   math.Sqrt(dx) * l2,
		LInf: floats.Distance(U, A, math.Inf(1)),
	}
	return
}

// ConvergenceOrder is the observed order of accuracy between two resolutions with errors e1 at n1 cells and e2 at n2 cells
func ConvergenceOrder(e1, e2 float64, n1, n2 int) float64 {
	return math.Log(e1/e2) / math.Log(float64(n2)/float64(n1))
}

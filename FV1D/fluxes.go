package FV1D

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofv/utils"
)

// FluxParams holds the scalars that shape the interface flux
type FluxParams struct {
	Velocity  float64 // Advection velocity, the sign selects the upwind side
	Diffusion float64 // Diffusion coefficient, zero for pure advection
	DX        float64 // Cell width
	BC        utils.BCType
}

/*
ComputeFluxes fills F (N+1 interfaces) from U (N cells). F[j] is the flux between cell j-1 and cell j.

Interior interfaces take the upwind cell value times the velocity, plus -D*(U[j]-U[j-1])/dx when
the diffusion coefficient is non-zero. The two boundary interfaces follow p.BC:

	BCZeroInflow:   F[0] = 0 for velocity >= 0, velocity*U[0] otherwise; F[N] = velocity*U[N-1]
	BCZeroGradient: F[0] = F[1], F[N] = F[N-1]
	BCPeriodic:     F[0] = F[N] = flux between cell N-1 and cell 0

Diffusion does not cross non-periodic boundaries.
*/
func ComputeFluxes(U, F []float64, p FluxParams) {
	checkDims(U, F)
	computeInteriorFluxes(U, F, p, 1, len(U))
	computeBoundaryFluxes(U, F, p)
}

// UpdateState advances U by one forward Euler step: U[i] -= (dt/dx) * (F[i+1] - F[i])
func UpdateState(U, F []float64, dt, dx float64) {
	checkDims(U, F)
	updateCells(U, F, dt/dx, 0, len(U))
}

// Mass is the integral of U over the grid, dx * sum(U)
func Mass(U []float64, dx float64) float64 {
	return dx * floats.Sum(U)
}

func checkDims(U, F []float64) {
	if len(U) < 1 {
		panic("state has no cells")
	}
	if len(F) != len(U)+1 {
		panic(fmt.Sprintf("flux dimension %d must be one more than the state dimension %d", len(F), len(U)))
	}
}

// interfaceFlux is the numerical flux between a cell holding uL and its right neighbor holding uR
func (p FluxParams) interfaceFlux(uL, uR float64) (f float64) {
	switch {
	case p.Velocity > 0:
		f = p.Velocity * uL
	case p.Velocity < 0:
		f = p.Velocity * uR
	}
	if p.Diffusion != 0 {
		f -= p.Diffusion * (uR - uL) / p.DX
	}
	return
}

// computeInteriorFluxes fills interfaces [jMin, jMax), all of which must lie in [1, N-1]
func computeInteriorFluxes(U, F []float64, p FluxParams, jMin, jMax int) {
	for j := jMin; j < jMax; j++ {
		F[j] = p.interfaceFlux(U[j-1], U[j])
	}
}

// computeBoundaryFluxes must follow the interior, BCZeroGradient reads the interior fluxes
func computeBoundaryFluxes(U, F []float64, p FluxParams) {
	var (
		N = len(U)
	)
	switch p.BC {
	case utils.BCPeriodic:
		F[0] = p.interfaceFlux(U[N-1], U[0])
		F[N] = F[0]
	case utils.BCZeroGradient:
		if N == 1 {
			// No interior interface to copy from, the ghost values on both sides equal U[0]
			F[0] = p.interfaceFlux(U[0], U[0])
			F[1] = F[0]
			return
		}
		F[0] = F[1]
		F[N] = F[N-1]
	case utils.BCZeroInflow:
		if p.Velocity < 0 {
			F[0] = p.Velocity * U[0]
		} else {
			F[0] = 0
		}
		F[N] = p.Velocity * U[N-1]
	default:
		panic(fmt.Sprintf("unknown boundary policy %v", p.BC))
	}
}

// updateCells advances cells [iMin, iMax)
func updateCells(U, F []float64, dtdx float64, iMin, iMax int) {
	for i := iMin; i < iMax; i++ {
		U[i] -= dtdx * (F[i+1] - F[i])
	}
}

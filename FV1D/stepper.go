package FV1D

import (
	"github.com/notargets/gofv/utils"
)

/*
Stepper owns the interface flux buffer for a grid and advances a state array one explicit step at a time.

With a parallel degree above one, interior interfaces and cells are partitioned across go routines.
Each interface reads only U and each cell reads only F, so the partitions are independent within a
phase and the result is identical to the serial kernel.
*/
type Stepper struct {
	Grid                   *Grid1D
	Params                 FluxParams
	F                      []float64 // Interface fluxes from the latest ComputeFluxes, dimension NumCells+1
	FluxParts, CellParts   *utils.PartitionMap
	ParallelDegree         int
	stepCount              int
	elapsed, lastTimeStep  float64
	massBefore, massChange float64
}

func NewStepper(grid *Grid1D, a, D float64, bc utils.BCType, ProcLimit int) (s *Stepper) {
	var (
		nInterior = grid.NumCells - 1
	)
	s = &Stepper{
		Grid: grid,
		Params: FluxParams{
			Velocity:  a,
			Diffusion: D,
			DX:        grid.DX,
			BC:        bc,
		},
		F: grid.NewFlux(),
	}
	s.ParallelDegree = utils.LimitParallelDegree(ProcLimit, grid.NumCells)
	s.FluxParts = utils.NewPartitionMap(utils.LimitParallelDegree(s.ParallelDegree, nInterior), nInterior)
	s.CellParts = utils.NewPartitionMap(s.ParallelDegree, grid.NumCells)
	return
}

// ComputeFluxes refreshes s.F from U
func (s *Stepper) ComputeFluxes(U []float64) {
	checkDims(U, s.F)
	s.FluxParts.Apply(1, func(jMin, jMax int) {
		computeInteriorFluxes(U, s.F, s.Params, jMin, jMax)
	})
	computeBoundaryFluxes(U, s.F, s.Params)
}

// UpdateState advances U in place with the fluxes held in s.F
func (s *Stepper) UpdateState(U []float64, dt float64) {
	checkDims(U, s.F)
	dtdx := dt / s.Grid.DX
	s.CellParts.Apply(0, func(iMin, iMax int) {
		updateCells(U, s.F, dtdx, iMin, iMax)
	})
}

// Step computes the fluxes from U and then advances U by dt
func (s *Stepper) Step(U []float64, dt float64) {
	s.massBefore = Mass(U, s.Grid.DX)
	s.ComputeFluxes(U)
	s.UpdateState(U, dt)
	s.massChange = Mass(U, s.Grid.DX) - s.massBefore
	s.stepCount++
	s.elapsed += dt
	s.lastTimeStep = dt
}

// BoundaryMassFlow is the mass the latest step should have added, dt * (F[0] - F[N])
func (s *Stepper) BoundaryMassFlow() float64 {
	return s.lastTimeStep * (s.F[0] - s.F[s.Grid.NumCells])
}

// MassChange is the change of Mass over the latest step
func (s *Stepper) MassChange() float64 {
	return s.massChange
}

func (s *Stepper) StepCount() int {
	return s.stepCount
}

func (s *Stepper) Time() float64 {
	return s.elapsed
}

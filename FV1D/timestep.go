package FV1D

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoTimeScale indicates neither advection nor diffusion is present to derive a time step from
	ErrNoTimeScale = errors.New("FV1D: velocity and diffusion coefficient are both zero, no time scale for dt")
	// ErrInvalidCFL indicates a CFL number that is not positive
	ErrInvalidCFL = errors.New("FV1D: CFL number must be positive")
)

/*
TimeStep returns dt = CFL / (|a|/dx + 2D/dx^2)

For pure advection this is CFL*dx/|a|, for pure diffusion CFL*dx^2/(2D). With both present the
Courant number plus twice the diffusion number equals CFL, which keeps the explicit upwind update a
convex combination of neighbor values for CFL <= 1.
*/
func TimeStep(CFL, dx, a, D float64) (dt float64, err error) {
	if CFL <= 0 {
		return 0, fmt.Errorf("%w, have %v", ErrInvalidCFL, CFL)
	}
	rate := math.Abs(a) / dx
	if D > 0 {
		rate += 2 * D / (dx * dx)
	}
	if rate == 0 {
		return 0, ErrNoTimeScale
	}
	dt = CFL / rate
	return
}

// CourantNumber is the advective CFL number dt*|a|/dx realized by a time step
func CourantNumber(dt, dx, a float64) float64 {
	return dt * math.Abs(a) / dx
}

// DiffusionNumber is D*dt/dx^2, the explicit scheme is stable for values up to 0.5
func DiffusionNumber(dt, dx, D float64) float64 {
	return D * dt / (dx * dx)
}

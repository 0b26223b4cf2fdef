package FV1D

import (
	"fmt"
)

// Grid1D is a uniform cell-centered grid of NumCells cells covering [XMin, XMin+Length]
type Grid1D struct {
	NumCells     int
	XMin, Length float64
	DX           float64
	X            []float64 // Cell centers, dimension NumCells
}

func NewGrid1D(XMin, Length float64, NumCells int) (g *Grid1D) {
	if NumCells < 1 {
		panic(fmt.Sprintf("number of cells must be at least 1, have %d", NumCells))
	}
	if Length <= 0 {
		panic(fmt.Sprintf("domain length must be positive, have %v", Length))
	}
	g = &Grid1D{
		NumCells: NumCells,
		XMin:     XMin,
		Length:   Length,
		DX:       Length / float64(NumCells),
		X:        make([]float64, NumCells),
	}
	for i := range g.X {
		g.X[i] = g.CellCenter(i)
	}
	return
}

// CellCenter returns the physical position (i + 0.5) * dx of cell i
func (g *Grid1D) CellCenter(i int) float64 {
	return g.XMin + (float64(i)+0.5)*g.DX
}

// Interface returns the physical position of interface j, between cell j-1 and cell j
func (g *Grid1D) Interface(j int) float64 {
	return g.XMin + float64(j)*g.DX
}

func (g *Grid1D) NumInterfaces() int {
	return g.NumCells + 1
}

func (g *Grid1D) XMax() float64 {
	return g.XMin + g.Length
}

func (g *Grid1D) NewState() []float64 {
	return make([]float64, g.NumCells)
}

func (g *Grid1D) NewFlux() []float64 {
	return make([]float64, g.NumInterfaces())
}

package Advection1D

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/notargets/gofv/FV1D"
	"github.com/notargets/gofv/InputParameters"
	"github.com/notargets/gofv/analytic_advection"
)

var ErrNoExactSolution = errors.New("case has no exact solution to measure error against")

type ConvergenceRecord struct {
	NumCells int
	CFL      float64
	Norms    analytic_advection.ErrorNorms
	Order    float64 // Observed L2 order against the previous record, zero for the first
}

/*
Convergence runs the case in ip once per grid resolution and measures the error against the exact solution.

All runs end at the same time. A case defined by a step count is converted to a final time using the time
step of the coarsest grid. The parameters in ip are not modified.
*/
func Convergence(ip *InputParameters.InputParameters1D, cells []int, log logrus.FieldLogger) (recs []ConvergenceRecord, err error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: no grid resolutions given", InputParameters.ErrInvalidParameter)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	cells = append([]int{}, cells...)
	sort.Ints(cells)
	base := *ip
	base.SetDefaults()
	if err = base.Validate(); err != nil {
		return
	}
	if base.Steps > 0 {
		dt := base.DT
		if dt == 0 {
			dx := base.DomainLength / float64(cells[0])
			if dt, err = FV1D.TimeStep(base.CFL, dx, base.Velocity, base.DiffusionCoefficient); err != nil {
				return
			}
		}
		base.FinalTime, base.Steps = float64(base.Steps)*dt, 0
	}
	base.OutputFile, base.InitialFile, base.FluxFile = "", "", ""
	base.SnapshotTimes = nil
	for _, n := range cells {
		var (
			c   *Advection
			res *Result
			run = base
		)
		run.NumCells = n
		if c, err = NewAdvection(&run, log.WithField("cells", n)); err != nil {
			return
		}
		if res, err = c.Run(false); err != nil {
			return
		}
		if res.Norms == nil {
			return nil, ErrNoExactSolution
		}
		rec := ConvergenceRecord{
			NumCells: n,
			CFL:      FV1D.CourantNumber(c.DT, c.Grid.DX, c.a),
			Norms:    *res.Norms,
		}
		if len(recs) != 0 {
			prev := recs[len(recs)-1]
			rec.Order = analytic_advection.ConvergenceOrder(prev.Norms.L2, rec.Norms.L2, prev.NumCells, n)
		}
		recs = append(recs, rec)
	}
	return
}

// WriteConvergence writes one CSV row per record, prefixed by the case title
func WriteConvergence(w io.Writer, title string, recs []ConvergenceRecord) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"Title", "NumCells", "CFL", "L2", "Linf", "MSE", "Order"}); err != nil {
		return
	}
	ff := func(f float64) string { return strconv.FormatFloat(f, 'e', 8, 64) }
	for _, rec := range recs {
		row := []string{
			title,
			strconv.Itoa(rec.NumCells),
			strconv.FormatFloat(rec.CFL, 'f', 4, 64),
			ff(rec.Norms.L2),
			ff(rec.Norms.LInf),
			ff(rec.Norms.MSE),
			strconv.FormatFloat(rec.Order, 'f', 4, 64),
		}
		if err = cw.Write(row); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

package Advection1D

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofv/FV1D"
	"github.com/notargets/gofv/InputParameters"
	"github.com/notargets/gofv/analytic_advection"
	"github.com/notargets/gofv/utils"
)

type Advection struct {
	// Input parameters
	IP           *InputParameters.InputParameters1D
	a, D         float64
	BC           utils.BCType
	Format       utils.OutputFormat
	Grid         *FV1D.Grid1D
	Stepper      *FV1D.Stepper
	Profile      *analytic_advection.Profile
	U            []float64 // Cell values, dimension NumCells
	DT, Time     float64
	Log          logrus.FieldLogger
	snapshots    []float64
	nextSnap     int
	PlotOnce     sync.Once
	chart        *utils.LineChart
	filesWritten []string
}

// Result summarizes a completed run
type Result struct {
	Steps        int
	Time         float64
	InitialMass  float64
	FinalMass    float64
	Norms        *analytic_advection.ErrorNorms // Nil when the case has no exact solution
	FilesWritten []string
}

func NewAdvection(ip *InputParameters.InputParameters1D, log logrus.FieldLogger) (c *Advection, err error) {
	ip.SetDefaults()
	if err = ip.Validate(); err != nil {
		return
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	c = &Advection{
		IP:      ip,
		a:       ip.Velocity,
		D:       ip.DiffusionCoefficient,
		Grid:    FV1D.NewGrid1D(ip.XMin, ip.DomainLength, ip.NumCells),
		Profile: ip.Profile(),
		Log:     log,
	}
	// Validate has already checked these
	c.BC, _ = ip.BC()
	c.Format, _ = ip.Format()
	c.U = c.Grid.NewState()
	c.Profile.Fill(c.Grid.X, c.U)
	if c.DT = ip.DT; c.DT == 0 {
		if c.DT, err = FV1D.TimeStep(ip.CFL, c.Grid.DX, c.a, c.D); err != nil {
			return nil, err
		}
	}
	c.Stepper = FV1D.NewStepper(c.Grid, c.a, c.D, c.BC, ip.ParallelDegree)
	c.snapshots = append([]float64{}, ip.SnapshotTimes...)
	sort.Float64s(c.snapshots)
	courant := FV1D.CourantNumber(c.DT, c.Grid.DX, c.a)
	diffusion := FV1D.DiffusionNumber(c.DT, c.Grid.DX, c.D)
	fields := logrus.Fields{
		"cells":     ip.NumCells,
		"dx":        c.Grid.DX,
		"dt":        c.DT,
		"courant":   courant,
		"diffusion": diffusion,
		"bc":        c.BC.String(),
		"init":      c.Profile.Type.Print(),
		"parallel":  c.Stepper.ParallelDegree,
	}
	c.Log.WithFields(fields).Info("advection model initialized")
	endTime := ip.FinalTime
	if ip.Steps > 0 {
		endTime = float64(ip.Steps) * c.DT
	}
	for _, st := range c.snapshots {
		if st > endTime+0.5*c.DT {
			c.Log.WithFields(logrus.Fields{"snapshot": st, "endTime": endTime}).
				Warn("snapshot time is past the end of the run and will not be written")
		}
	}
	if courant+2*diffusion > 1 {
		c.Log.WithFields(fields).Warn("time step exceeds the explicit stability limit, the solution will diverge")
	}
	return
}

func (c *Advection) Mass() float64 {
	return FV1D.Mass(c.U, c.Grid.DX)
}

// Fluxes evaluates the interface fluxes of the current state without advancing it
func (c *Advection) Fluxes() []float64 {
	c.Stepper.ComputeFluxes(c.U)
	return c.Stepper.F
}

func (c *Advection) Run(showGraph bool, graphDelay ...time.Duration) (res *Result, err error) {
	var (
		ip           = c.IP
		logFrequency = ip.LogFrequency
		tstep        int
		dt           float64
	)
	res = &Result{InitialMass: c.Mass()}
	if len(ip.InitialFile) != 0 {
		if err = c.save(ip.InitialFile, "Initial_U"); err != nil {
			return
		}
	}
	for !c.isDone(tstep) {
		c.Plot(showGraph, graphDelay)
		dt = c.DT
		if ip.Steps == 0 && c.Time+dt > ip.FinalTime {
			dt = ip.FinalTime - c.Time
		}
		c.Stepper.Step(c.U, dt)
		c.Time += dt
		tstep++
		if err = c.writeSnapshots(dt); err != nil {
			return
		}
		if tstep%logFrequency == 0 {
			c.Log.WithFields(logrus.Fields{
				"step": tstep,
				"time": c.Time,
				"mass": c.Mass(),
				"umin": floats.Min(c.U),
				"umax": floats.Max(c.U),
			}).Info("step completed")
		}
	}
	c.Plot(showGraph, graphDelay)
	res.Steps, res.Time, res.FinalMass = tstep, c.Time, c.Mass()
	if !utils.IsFinite(c.U) {
		c.Log.WithField("step", tstep).Warn("solution contains non finite values")
	}
	if len(ip.OutputFile) != 0 {
		if err = c.save(ip.OutputFile, ip.Title); err != nil {
			return
		}
	}
	if len(ip.FluxFile) != 0 {
		if err = utils.SaveFluxes(ip.FluxFile, c.Stepper.F); err != nil {
			return
		}
		c.filesWritten = append(c.filesWritten, ip.FluxFile)
	}
	if c.Profile.HasExact(c.D, c.BC) {
		A := c.Grid.NewState()
		c.Profile.ExactState(c.Grid.X, A, c.Time, c.a, c.D, c.BC)
		norms := analytic_advection.NewErrorNorms(c.U, A, c.Grid.DX)
		res.Norms = &norms
	}
	res.FilesWritten = c.filesWritten
	fields := logrus.Fields{
		"steps":       res.Steps,
		"time":        res.Time,
		"massInitial": res.InitialMass,
		"massFinal":   res.FinalMass,
	}
	if res.Norms != nil {
		fields["mse"] = res.Norms.MSE
		fields["l2"] = res.Norms.L2
		fields["linf"] = res.Norms.LInf
	}
	c.Log.WithFields(fields).Info("simulation finished")
	c.Log.Debug(utils.GetMemUsage())
	return
}

func (c *Advection) isDone(tstep int) bool {
	if c.IP.Steps > 0 {
		return tstep >= c.IP.Steps
	}
	// Relative tolerance keeps rounding in the accumulated time from adding a sliver of a step
	return c.IP.FinalTime-c.Time <= 1.e-10*c.IP.FinalTime
}

// writeSnapshots saves the state for every requested time the latest step reached within dt/2
func (c *Advection) writeSnapshots(dt float64) (err error) {
	for c.nextSnap < len(c.snapshots) && c.Time >= c.snapshots[c.nextSnap]-0.5*dt {
		st := c.snapshots[c.nextSnap]
		label := fmt.Sprintf("%.2fs", st)
		fileName := fmt.Sprintf("%s_t_%s.csv", c.IP.SnapshotPrefix, strings.ReplaceAll(label, ".", "_"))
		if len(c.IP.OutputFile) != 0 {
			fileName = filepath.Join(filepath.Dir(c.IP.OutputFile), fileName)
		}
		if err = c.save(fileName, fmt.Sprintf("%s_t_%s", c.IP.SnapshotPrefix, label)); err != nil {
			return
		}
		c.Log.WithFields(logrus.Fields{"time": c.Time, "target": st, "file": fileName}).Info("snapshot saved")
		c.nextSnap++
	}
	return
}

func (c *Advection) save(fileName, title string) (err error) {
	if err = utils.SaveCells(fileName, c.Format, title, c.Grid.X, c.U); err != nil {
		return
	}
	c.filesWritten = append(c.filesWritten, fileName)
	return
}

func (c *Advection) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		delay time.Duration
	)
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		fMin, fMax := utils.PlotBounds(c.U)
		c.chart = utils.NewLineChart(1280, 1024, c.Grid.XMin, c.Grid.XMax(), fMin, fMax)
	})
	if len(graphDelay) != 0 {
		delay = graphDelay[0]
	}
	c.chart.Plot(delay, c.Grid.X, c.U, 0, "U")
}

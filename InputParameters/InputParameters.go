package InputParameters

import (
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/notargets/gofv/analytic_advection"
	"github.com/notargets/gofv/utils"
)

// ErrInvalidParameter is wrapped by every validation failure
var ErrInvalidParameter = errors.New("invalid input parameter")

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title                string    `yaml:"Title"`
	NumCells             int       `yaml:"NumCells"`
	Velocity             float64   `yaml:"Velocity"`
	DomainLength         float64   `yaml:"DomainLength"`
	XMin                 float64   `yaml:"XMin"`
	CFL                  float64   `yaml:"CFL"`
	DT                   float64   `yaml:"DT"`        // Explicit time step, overrides the CFL derived value when positive
	FinalTime            float64   `yaml:"FinalTime"` // Used when Steps is zero
	Steps                int       `yaml:"Steps"`
	BoundaryPolicy       string    `yaml:"BoundaryPolicy"`
	DiffusionCoefficient float64   `yaml:"DiffusionCoefficient"`
	InitType             string    `yaml:"InitType"`
	Amplitude            float64   `yaml:"Amplitude"`
	PulseStart           float64   `yaml:"PulseStart"`
	PulseEnd             float64   `yaml:"PulseEnd"`
	Center               float64   `yaml:"Center"`
	Width                float64   `yaml:"Width"`
	OutputFile           string    `yaml:"OutputFile"`
	OutputFormat         string    `yaml:"OutputFormat"`
	InitialFile          string    `yaml:"InitialFile"`
	FluxFile             string    `yaml:"FluxFile"`
	SnapshotTimes        []float64 `yaml:"SnapshotTimes"`
	SnapshotPrefix       string    `yaml:"SnapshotPrefix"`
	LogFrequency         int       `yaml:"LogFrequency"`
	ParallelDegree       int       `yaml:"ParallelDegree"`
}

// NewInputParameters1D returns the pulse case: 200 cells on a unit domain, velocity 0.1, CFL 0.5, 100 steps
func NewInputParameters1D() (ip *InputParameters1D) {
	ip = &InputParameters1D{
		Title:          "Final_U",
		NumCells:       200,
		Velocity:       0.1,
		DomainLength:   1,
		CFL:            0.5,
		Steps:          100,
		BoundaryPolicy: "ZeroInflow",
		InitType:       "Square",
		Amplitude:      1,
		OutputFile:     "final_u_profile.csv",
		OutputFormat:   "index",
		SnapshotPrefix: "u",
		LogFrequency:   50,
		ParallelDegree: 1,
	}
	return
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ReadFile parses a YAML input file over the current values, keys absent from the file are left unchanged
func (ip *InputParameters1D) ReadFile(fileName string) (err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	if err = ip.Parse(data); err != nil {
		return fmt.Errorf("unable to parse %s: %w", fileName, err)
	}
	return
}

// SetDefaults fills the profile geometry left at zero with values relative to the domain
func (ip *InputParameters1D) SetDefaults() {
	if ip.PulseStart == 0 && ip.PulseEnd == 0 {
		ip.PulseStart = ip.XMin + 0.25*ip.DomainLength
		ip.PulseEnd = ip.XMin + 0.5*ip.DomainLength
	}
	if ip.Center == 0 {
		ip.Center = ip.XMin + 0.5*ip.DomainLength
	}
	if ip.Width == 0 && ip.DomainLength > 0 {
		ip.Width = 200 / (ip.DomainLength * ip.DomainLength)
	}
	if ip.LogFrequency <= 0 {
		ip.LogFrequency = 50
	}
	if len(ip.Title) == 0 {
		ip.Title = "Final_U"
	}
}

func (ip *InputParameters1D) Validate() (err error) {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
	}
	switch {
	case ip.NumCells < 1:
		return invalid("NumCells must be at least 1, have %d", ip.NumCells)
	case ip.DomainLength <= 0:
		return invalid("DomainLength must be positive, have %v", ip.DomainLength)
	case ip.DiffusionCoefficient < 0:
		return invalid("DiffusionCoefficient must not be negative, have %v", ip.DiffusionCoefficient)
	case ip.DT < 0:
		return invalid("DT must not be negative, have %v", ip.DT)
	case ip.DT == 0 && ip.CFL <= 0:
		return invalid("CFL must be positive, have %v", ip.CFL)
	case ip.DT == 0 && ip.Velocity == 0 && ip.DiffusionCoefficient == 0:
		return invalid("Velocity and DiffusionCoefficient are both zero, set DT to run")
	case ip.Steps < 0:
		return invalid("Steps must not be negative, have %d", ip.Steps)
	case ip.Steps == 0 && ip.FinalTime <= 0:
		return invalid("one of Steps or FinalTime must be positive")
	case ip.ParallelDegree < 0:
		return invalid("ParallelDegree must not be negative, have %d", ip.ParallelDegree)
	}
	if _, err = ip.BC(); err != nil {
		return invalid("%v", err)
	}
	if _, err = ip.Init(); err != nil {
		return invalid("%v", err)
	}
	if _, err = ip.Format(); err != nil {
		return invalid("%v", err)
	}
	for _, st := range ip.SnapshotTimes {
		if st <= 0 {
			return invalid("SnapshotTimes must be positive, have %v", st)
		}
	}
	return
}

func (ip *InputParameters1D) BC() (utils.BCType, error) {
	return utils.ParseBCName(ip.BoundaryPolicy)
}

func (ip *InputParameters1D) Init() (analytic_advection.InitType, error) {
	return analytic_advection.NewInitType(ip.InitType)
}

func (ip *InputParameters1D) Format() (utils.OutputFormat, error) {
	return utils.NewOutputFormat(ip.OutputFormat)
}

// Profile builds the initial condition described by the parameters, Validate must have succeeded
func (ip *InputParameters1D) Profile() *analytic_advection.Profile {
	it, err := ip.Init()
	if err != nil {
		panic(err)
	}
	return &analytic_advection.Profile{
		Type:       it,
		Amplitude:  ip.Amplitude,
		PulseStart: ip.PulseStart,
		PulseEnd:   ip.PulseEnd,
		Center:     ip.Center,
		Width:      ip.Width,
		XMin:       ip.XMin,
		Length:     ip.DomainLength,
	}
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= Number of Cells\n", ip.NumCells)
	fmt.Printf("%8.5f\t\t= Velocity\n", ip.Velocity)
	fmt.Printf("%8.5f\t\t= Domain Length\n", ip.DomainLength)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	if ip.DT > 0 {
		fmt.Printf("%8.5g\t\t= DT\n", ip.DT)
	}
	if ip.Steps > 0 {
		fmt.Printf("[%d]\t\t\t= Steps\n", ip.Steps)
	} else {
		fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	}
	fmt.Printf("[%s]\t\t= Boundary Policy\n", ip.BoundaryPolicy)
	fmt.Printf("%8.5g\t\t= Diffusion Coefficient\n", ip.DiffusionCoefficient)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	if len(ip.SnapshotTimes) != 0 {
		fmt.Printf("%v\t= Snapshot Times\n", ip.SnapshotTimes)
	}
}

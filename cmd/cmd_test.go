package cmd

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofv/InputParameters"
)

func newTestConfig(t *testing.T, args ...string) (v *viper.Viper) {
	v = viper.New()
	v.SetEnvPrefix("GOFV")
	v.AutomaticEnv()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	other := pflag.NewFlagSet("other", pflag.ContinueOnError)
	addParameterFlags(v, fs, other)
	require.NoError(t, fs.Parse(args))
	// Flags are shared between commands
	assert.NotNil(t, other.Lookup("numCells"))
	assert.NotNil(t, other.ShorthandLookup("I"))
	return
}

func TestConfigure(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(inputFile, []byte(`
Title: Humidity
NumCells: 400
BoundaryPolicy: Periodic
InitType: Gaussian
SnapshotTimes: [1, 2]
`), 0644))
	{ // Defaults only
		ip, err := configure(newTestConfig(t))
		require.NoError(t, err)
		assert.Equal(t, 200, ip.NumCells)
		assert.Equal(t, "ZeroInflow", ip.BoundaryPolicy)
		assert.Equal(t, 100, ip.Steps)
	}
	{ // Flags take priority over the input file
		ip, err := configure(newTestConfig(t, "-I", inputFile, "--numCells", "50", "--snapshotTimes", "0.5, 1.5"))
		require.NoError(t, err)
		assert.Equal(t, "Humidity", ip.Title)
		assert.Equal(t, 50, ip.NumCells)
		assert.Equal(t, "Periodic", ip.BoundaryPolicy)
		assert.Equal(t, "Gaussian", ip.InitType)
		assert.Equal(t, []float64{0.5, 1.5}, ip.SnapshotTimes)
	}
	{
		ip, err := configure(newTestConfig(t, "-I", inputFile))
		require.NoError(t, err)
		assert.Equal(t, 400, ip.NumCells)
		assert.Equal(t, []float64{1, 2}, ip.SnapshotTimes)
	}
	{ // Environment
		t.Setenv("GOFV_VELOCITY", "-0.2")
		t.Setenv("GOFV_STEPS", "0")
		t.Setenv("GOFV_FINALTIME", "3")
		ip, err := configure(newTestConfig(t, "-b", "ZeroGradient"))
		require.NoError(t, err)
		assert.Equal(t, -0.2, ip.Velocity)
		assert.Equal(t, 0, ip.Steps)
		assert.Equal(t, 3., ip.FinalTime)
		assert.Equal(t, "ZeroGradient", ip.BoundaryPolicy)
	}
}

func TestConfigureErrors(t *testing.T) {
	{
		v := newTestConfig(t)
		v.Set("boundaryPolicy", "Wall")
		_, err := configure(v)
		assert.ErrorIs(t, err, InputParameters.ErrInvalidParameter)
	}
	{
		_, err := configure(newTestConfig(t, "--snapshotTimes", "0.5,soon"))
		assert.ErrorIs(t, err, InputParameters.ErrInvalidParameter)
	}
	{
		_, err := configure(newTestConfig(t, "-I", filepath.Join(t.TempDir(), "missing.yaml")))
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}

func TestParseFloatList(t *testing.T) {
	list, err := parseFloatList([]interface{}{0.25, "0.5"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.5}, list)
	list, err = parseFloatList("0.1,0.2,")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2}, list)
	list, err = parseFloatList("")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDumpFluxes(t *testing.T) {
	ip := InputParameters.NewInputParameters1D()
	ip.FluxFile = filepath.Join(t.TempDir(), "fluxes.dat")
	F, err := DumpFluxes(ip)
	require.NoError(t, err)
	require.Equal(t, 201, len(F))
	// Upwind flux of the square pulse on cells 50 through 99
	assert.Equal(t, 0., F[50])
	assert.InDelta(t, 0.1, F[51], 1.e-15)
	assert.InDelta(t, 0.1, F[100], 1.e-15)
	assert.Equal(t, 0., F[101])

	f, err := os.Open(ip.FluxFile)
	require.NoError(t, err)
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	assert.Equal(t, 201, len(lines))
	assert.Equal(t, "51 1.000000000000000e-01", lines[51])
	printFluxes(F, 5)
	printFluxes(F[:3], 5)
}

func TestRunConvergence(t *testing.T) {
	ip := InputParameters.NewInputParameters1D()
	ip.BoundaryPolicy = "Periodic"
	ip.InitType = "Sine"
	ip.Steps, ip.FinalTime = 0, 1
	fileName := filepath.Join(t.TempDir(), "convergence.csv")
	recs, err := RunConvergence(ip, []int{20, 40}, fileName)
	require.NoError(t, err)
	assert.Equal(t, 2, len(recs))
	_, err = os.Stat(fileName)
	assert.NoError(t, err)
	_, err = RunConvergence(ip, []int{20}, filepath.Join(t.TempDir(), "missing", "c.csv"))
	assert.Error(t, err)
}

/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/notargets/gofv/InputParameters"
)

// An option is a simulation parameter settable by flag, environment or config file.
// The field function returns a pointer into the parameter struct.
type option struct {
	name, shorthand, usage string
	field                  func(ip *InputParameters.InputParameters1D) interface{}
}

var options = []option{
	{"title", "", "title written in the header of the final output file",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.Title }},
	{"numCells", "n", "number of finite volume cells",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.NumCells }},
	{"velocity", "a", "advection velocity, may be negative",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.Velocity }},
	{"domainLength", "L", "length of the domain",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.DomainLength }},
	{"xMin", "", "coordinate of the left boundary",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.XMin }},
	{"CFL", "", "CFL - increase for speedup, decrease for stability",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.CFL }},
	{"DT", "", "explicit time step, overrides the CFL derived step when positive",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.DT }},
	{"finalTime", "", "FinalTime - the target end time for the sim, used when steps is zero",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.FinalTime }},
	{"steps", "s", "number of time steps, zero to run to finalTime",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.Steps }},
	{"boundaryPolicy", "b", "boundary policy: ZeroInflow, ZeroGradient or Periodic",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.BoundaryPolicy }},
	{"diffusionCoefficient", "D", "diffusion coefficient, zero for pure advection",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.DiffusionCoefficient }},
	{"initType", "", "initial profile: Square, Triangle, Gaussian, Sine or Uniform",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.InitType }},
	{"amplitude", "", "amplitude of the initial profile",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.Amplitude }},
	{"outputFile", "o", "file receiving the final cell values, empty to skip",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.OutputFile }},
	{"outputFormat", "", "output rows keyed by cell index (index) or cell center (position)",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.OutputFormat }},
	{"initialFile", "", "file receiving the initial cell values, empty to skip",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.InitialFile }},
	{"fluxFile", "", "file receiving the final interface fluxes, empty to skip",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.FluxFile }},
	{"snapshotTimes", "", "comma separated times at which the state is saved",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.SnapshotTimes }},
	{"snapshotPrefix", "", "file name prefix of the snapshot files",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.SnapshotPrefix }},
	{"logFrequency", "", "steps between progress log lines",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.LogFrequency }},
	{"parallelDegree", "p", "number of go routines used by the kernel, zero for one per CPU",
		func(ip *InputParameters.InputParameters1D) interface{} { return &ip.ParallelDegree }},
}

// addParameterFlags defines the parameter flags on the first flag set and shares them with the rest
func addParameterFlags(cfg *viper.Viper, sets ...*pflag.FlagSet) {
	def := InputParameters.NewInputParameters1D()
	sets[0].StringP("inputConditionsFile", "I", "", "YAML file of input parameters, keys named as in InputParameters1D")
	for _, set := range sets[1:] {
		set.AddFlag(sets[0].Lookup("inputConditionsFile"))
	}
	_ = cfg.BindPFlag("inputConditionsFile", sets[0].Lookup("inputConditionsFile"))
	for _, o := range options {
		set := sets[0]
		switch p := o.field(def).(type) {
		case *string:
			set.StringP(o.name, o.shorthand, *p, o.usage)
		case *int:
			set.IntP(o.name, o.shorthand, *p, o.usage)
		case *float64:
			set.Float64P(o.name, o.shorthand, *p, o.usage)
		case *[]float64:
			set.StringP(o.name, o.shorthand, "", o.usage)
		default:
			panic("invalid option type")
		}
		for _, other := range sets[1:] {
			other.AddFlag(set.Lookup(o.name))
		}
		_ = cfg.BindPFlag(o.name, set.Lookup(o.name))
	}
}

/*
configure builds the simulation parameters. Defaults are read over by the input conditions file,
then by every parameter set in the config file, the environment or on the command line.
*/
func configure(cfg *viper.Viper) (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.NewInputParameters1D()
	if fileName := cfg.GetString("inputConditionsFile"); len(fileName) != 0 {
		if err = ip.ReadFile(fileName); err != nil {
			return nil, err
		}
	}
	for _, o := range options {
		if !cfg.IsSet(o.name) {
			continue
		}
		switch p := o.field(ip).(type) {
		case *string:
			*p = cfg.GetString(o.name)
		case *int:
			*p = cfg.GetInt(o.name)
		case *float64:
			*p = cfg.GetFloat64(o.name)
		case *[]float64:
			if *p, err = parseFloatList(cfg.Get(o.name)); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", InputParameters.ErrInvalidParameter, o.name, err)
			}
		}
	}
	ip.SetDefaults()
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

// parseFloatList accepts a list from a config file or a comma separated string from a flag or the environment
func parseFloatList(v interface{}) (list []float64, err error) {
	var (
		f float64
	)
	for _, item := range cast.ToStringSlice(v) {
		for _, field := range strings.Split(item, ",") {
			if field = strings.TrimSpace(field); len(field) == 0 {
				continue
			}
			if f, err = strconv.ParseFloat(field, 64); err != nil {
				return nil, err
			}
			list = append(list, f)
		}
	}
	return
}

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

	"github.com/spf13/cobra"

	"github.com/notargets/gofv/InputParameters"
	"github.com/notargets/gofv/model_problems/Advection1D"
	"github.com/notargets/gofv/utils"
)

// FluxesCmd represents the fluxes command
var FluxesCmd = &cobra.Command{
	Use:   "fluxes",
	Short: "Evaluate the interface fluxes of the initial state once and save them",
	Long: `
Initializes the cells, computes a single pass of interface fluxes without advancing in time and writes
one "<interface> <flux>" line per interface.

gofv fluxes --initType Gaussian --fluxFile fluxes.dat`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters1D
			F  []float64
		)
		if ip, err = configure(Cfg); err != nil {
			return
		}
		if F, err = DumpFluxes(ip); err != nil {
			return
		}
		printFluxes(F, 5)
		fmt.Printf("Successfully saved %d fluxes to %s\n", len(F), ip.FluxFile)
		return
	},
}

func init() {
	rootCmd.AddCommand(FluxesCmd)
}

// DumpFluxes computes the fluxes of the initial state and writes them to ip.FluxFile, fluxes.dat when unset
func DumpFluxes(ip *InputParameters.InputParameters1D) (F []float64, err error) {
	var (
		c *Advection1D.Advection
	)
	if len(ip.FluxFile) == 0 {
		ip.FluxFile = "fluxes.dat"
	}
	if c, err = Advection1D.NewAdvection(ip, newLogger()); err != nil {
		return
	}
	F = c.Fluxes()
	if err = utils.SaveFluxes(ip.FluxFile, F); err != nil {
		return nil, err
	}
	return
}

func printFluxes(F []float64, count int) {
	fmt.Printf("\nFirst few fluxes (F):\n")
	for j := 0; j < count && j < len(F); j++ {
		fmt.Printf("F[%d] = %.8f\n", j, F[j])
	}
	if len(F) <= count {
		return
	}
	fmt.Printf("...\n")
	jMin := len(F) - count
	if jMin < count {
		jMin = count
	}
	for j := jMin; j < len(F); j++ {
		fmt.Printf("F[%d] = %.8f\n", j, F[j])
	}
}

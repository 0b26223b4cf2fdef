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
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gofv/InputParameters"
	"github.com/notargets/gofv/model_problems/Advection1D"
)

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Grid refinement study against the exact solution",
	Long: `
Runs the configured case once per grid resolution to the same final time and writes the error norms and
the observed order of accuracy as CSV. The case needs an exact solution: no diffusion, or a Sine profile
on a periodic domain.

gofv convergence --cells 50,100,200,400 --boundaryPolicy Periodic --initType Sine --finalTime 1`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip   *InputParameters.InputParameters1D
			recs []Advection1D.ConvergenceRecord
		)
		if ip, err = configure(Cfg); err != nil {
			return
		}
		cells, _ := cmd.Flags().GetIntSlice("cells")
		fileName, _ := cmd.Flags().GetString("convergenceFile")
		if recs, err = RunConvergence(ip, cells, fileName); err != nil {
			return
		}
		for _, rec := range recs {
			fmt.Printf("N = %5d, L2 = %12.6e, Linf = %12.6e, Order = %6.3f\n",
				rec.NumCells, rec.Norms.L2, rec.Norms.LInf, rec.Order)
		}
		fmt.Printf("Wrote %s\n", fileName)
		return
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().IntSlice("cells", []int{50, 100, 200, 400}, "grid resolutions of the study")
	ConvergenceCmd.Flags().String("convergenceFile", "convergence.csv", "CSV file receiving the study")
}

func RunConvergence(ip *InputParameters.InputParameters1D, cells []int, fileName string) (recs []Advection1D.ConvergenceRecord, err error) {
	var (
		f *os.File
	)
	log := newLogger()
	if recs, err = Advection1D.Convergence(ip, cells, log); err != nil {
		return
	}
	if f, err = os.Create(fileName); err != nil {
		return nil, fmt.Errorf("unable to open convergence file: %w", err)
	}
	defer f.Close()
	if err = Advection1D.WriteConvergence(f, ip.Title, recs); err != nil {
		return nil, err
	}
	return
}

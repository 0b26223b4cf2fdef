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
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/gofv/InputParameters"
	"github.com/notargets/gofv/model_problems/Advection1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional advection and diffusion on a uniform grid",
	Long: `
Executes the first order upwind finite volume solver, writing the final cell values and optional snapshots.

gofv 1D -I input.yaml
gofv 1D --numCells 200 --velocity 0.1 --CFL 0.5 --steps 100`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip  *InputParameters.InputParameters1D
			res *Advection1D.Result
		)
		fmt.Println("1D called")
		if ip, err = configure(Cfg); err != nil {
			return
		}
		graph, _ := cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		ip.Print()
		if res, err = Run1D(ip, graph, time.Duration(dr)*time.Millisecond); err != nil {
			return
		}
		printResult(res)
		return
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	addParameterFlags(Cfg, OneDCmd.Flags(), FluxesCmd.Flags(), ConvergenceCmd.Flags())
}

func Run1D(ip *InputParameters.InputParameters1D, graph bool, delay time.Duration) (res *Advection1D.Result, err error) {
	var (
		c *Advection1D.Advection
	)
	if c, err = Advection1D.NewAdvection(ip, newLogger()); err != nil {
		return
	}
	return c.Run(graph, delay)
}

func printResult(res *Advection1D.Result) {
	fmt.Printf("[%d]\t\t\t= Steps Taken\n", res.Steps)
	fmt.Printf("%8.5f\t\t= Final Time\n", res.Time)
	fmt.Printf("%12.8g\t\t= Mass Initial\n", res.InitialMass)
	fmt.Printf("%12.8g\t\t= Mass Final\n", res.FinalMass)
	if res.Norms != nil {
		fmt.Printf("%12.6e\t\t= L2 Error\n", res.Norms.L2)
		fmt.Printf("%12.6e\t\t= Linf Error\n", res.Norms.LInf)
		fmt.Printf("%12.6e\t\t= MSE\n", res.Norms.MSE)
	}
	for _, fileName := range res.FilesWritten {
		fmt.Printf("Wrote %s\n", fileName)
	}
}

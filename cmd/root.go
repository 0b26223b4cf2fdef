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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// Cfg holds the merged configuration: config file, GOFV_ environment variables and command line flags
	Cfg      = viper.New()
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gofv",
	Short: "Finite volume solver for one dimensional linear advection and diffusion",
	Long: `
Explicit first order upwind finite volume solver for u_t + a u_x = D u_xx on a uniform grid.

Parameters come from, in increasing priority: defaults, an input conditions file (-I), then any value
set in the config file ($HOME/.gofv.yaml or --config), in environment variables named GOFV_<PARAMETER>
or on the command line.

gofv 1D -I input.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return startProfile() },
	PersistentPostRun: func(cmd *cobra.Command, args []string) { stopProfile() },
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stopProfile()
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gofv.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().String("profile", "", "write a profile of the run: cpu or mem")
	_ = Cfg.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = Cfg.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		Cfg.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gofv" (without extension).
		Cfg.AddConfigPath(home)
		Cfg.SetConfigName(".gofv")
	}
	Cfg.SetEnvPrefix("GOFV")
	Cfg.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := Cfg.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", Cfg.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Printf("error: unable to read config file %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if Cfg.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func startProfile() error {
	switch mode := Cfg.GetString("profile"); mode {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile mode %q, use cpu or mem", mode)
	}
	return nil
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

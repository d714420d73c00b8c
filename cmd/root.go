// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/civil-soft-science/OpenSees.NET/fem"
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string              // configuration file
	prof    interface{ Stop() } // running profiler
)

var rootCmd = &cobra.Command{
	Use:   "timobeam",
	Short: "Elastic Timoshenko beam-column elements in 3D",
	Long: `timobeam - linear elastic 3D Timoshenko beam-column analysis

Reads a structural model (nodes, transformations, sections, elements,
fixities and loads) from a YAML file and:
  - prints element matrices
  - solves linear static and transient (Newmark) problems
  - plots section-force diagrams along elements`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if dir := viper.GetString("profile"); dir != "" {
			prof = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
		}
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if prof != nil {
			prof.Stop()
			prof = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.timobeam.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "show messages")
	rootCmd.PersistentFlags().String("profile", "", "directory to save a CPU profile; empty => no profiling")
	mustBind(viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))
	mustBind(viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile")))
	viper.SetDefault("stations", 11)
	viper.SetDefault("height", 10)
	viper.SetDefault("every", 10)
}

// mustBind panics if a flag cannot be bound to a configuration key
func mustBind(err error) {
	if err != nil {
		chk.Panic("cannot bind flag:\n%v", err)
	}
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".timobeam")
	}
	viper.SetEnvPrefix("timobeam")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

// loadDomain reads a model and allocates its domain
func loadDomain(fn string) (dom *fem.Domain, err error) {
	if fn == "" {
		return nil, chk.Err("a model file is required (-f, --file)")
	}
	mdl, err := inp.ReadModel(fn)
	if err != nil {
		return
	}
	return fem.NewDomain(mdl, viper.GetBool("verbose"))
}

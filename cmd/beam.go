// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/civil-soft-science/OpenSees.NET/ele/solid"
	"github.com/civil-soft-science/OpenSees.NET/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
)

var beamFile string // model file shared by beam subcommands

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Analyses of models with Timoshenko beam-column elements",
	Long: `Analyses of models with Timoshenko beam-column elements.

Subcommands:
  matrices - print the matrices of an element
  solve    - solve the static or transient problem
  diagram  - plot section forces along elements`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
	beamCmd.PersistentFlags().StringVarP(&beamFile, "file", "f", "", "model file (.yaml) [required]")
}

// beamElement returns the Timoshenko beam with the given tag
func beamElement(dom *fem.Domain, tag int) (e *solid.TimoshenkoBeam, err error) {
	e, ok := dom.Tag2elem[tag].(*solid.TimoshenkoBeam)
	if !ok {
		return nil, chk.Err("cannot find Timoshenko beam with tag %d", tag)
	}
	return
}

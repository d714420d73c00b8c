// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var matricesElem int // element tag

var beamMatricesCmd = &cobra.Command{
	Use:   "matrices",
	Short: "Print the matrices of an element",
	Long: `Print the local stiffness kl, the initial stiffness Ki in the global
system and the mass matrix M of an element.

Examples:
  timobeam beam matrices -f frame.yaml -e 2`,
	RunE: runBeamMatrices,
}

func init() {
	beamCmd.AddCommand(beamMatricesCmd)
	beamMatricesCmd.Flags().IntVarP(&matricesElem, "elem", "e", 1, "element tag")
}

func runBeamMatrices(cmd *cobra.Command, args []string) (err error) {
	dom, err := loadDomain(beamFile)
	if err != nil {
		return
	}
	e, err := beamElement(dom, matricesElem)
	if err != nil {
		return
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%v\n", e)
	fmt.Fprintf(w, "  L: %g  phiY: %g  phiZ: %g\n", e.L, e.PhiY, e.PhiZ)
	printMatrix(w, "kl", e.Kl)
	printMatrix(w, "Ki", e.InitialStiff())
	printMatrix(w, "M", e.Mass())
	return
}

// printMatrix prints a matrix with its name
func printMatrix(w io.Writer, name string, a mat.Matrix) {
	fmt.Fprintf(w, "\n%s =\n%8.4g\n", name, mat.Formatted(a, mat.Squeeze()))
}

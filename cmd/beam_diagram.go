// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/civil-soft-science/OpenSees.NET/out"
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	diagramElem int    // element tag; 0 => all
	diagramKey  string // section force key
	diagramOut  string // image file
)

var beamDiagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Plot section forces along elements",
	Long: `Solve the static problem and plot a section force (N, Vy, Vz, T, My or Mz)
along elements with recovery enabled. The diagram is printed to the terminal
or saved to an image file (.png, .svg or .pdf) with --output.

Examples:
  timobeam beam diagram -f fixedfixed.yaml -k Mz
  timobeam beam diagram -f fixedfixed.yaml -e 1 -k Vy -o /tmp/vy.png`,
	RunE: runBeamDiagram,
}

func init() {
	beamCmd.AddCommand(beamDiagramCmd)
	beamDiagramCmd.Flags().IntVarP(&diagramElem, "elem", "e", 0, "element tag; 0 => all elements with recovery")
	beamDiagramCmd.Flags().StringVarP(&diagramKey, "key", "k", "Mz", "section force: N, Vy, Vz, T, My or Mz")
	beamDiagramCmd.Flags().StringVarP(&diagramOut, "output", "o", "", "image file; empty => print to terminal")
	beamDiagramCmd.Flags().Int("stations", 11, "number of stations along each element")
	beamDiagramCmd.Flags().Int("height", 10, "number of rows of terminal plots")
	mustBind(viper.BindPFlag("stations", beamDiagramCmd.Flags().Lookup("stations")))
	mustBind(viper.BindPFlag("height", beamDiagramCmd.Flags().Lookup("height")))
}

func runBeamDiagram(cmd *cobra.Command, args []string) (err error) {
	dom, err := loadDomain(beamFile)
	if err != nil {
		return
	}
	err = dom.SolveStatic(dom.Mdl.Control.Factor)
	if err != nil {
		return
	}

	// diagrams
	elems := dom.Elems
	if diagramElem > 0 {
		e, err := beamElement(dom, diagramElem)
		if err != nil {
			return err
		}
		elems = []ele.Element{e}
	}
	diagrams, err := out.Diagrams(elems, diagramKey, viper.GetInt("stations"))
	if err != nil {
		return
	}
	if len(diagrams) == 0 {
		return chk.Err("no element can output section forces; enable recovery in the model file")
	}

	// output
	w := cmd.OutOrStdout()
	if diagramOut != "" {
		err = out.SaveDiagram(diagramOut, diagrams...)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "file <%s> written\n", diagramOut)
		return
	}
	for _, d := range diagrams {
		ymin, xmin, ymax, xmax := d.Extremes()
		fmt.Fprintf(w, "%s\n", out.AsciiDiagram(d, viper.GetInt("height")))
		fmt.Fprintf(w, "min %s = %g @ x = %g  max %s = %g @ x = %g\n\n", d.Key, ymin, xmin, d.Key, ymax, xmax)
		fmt.Fprintf(w, "%s\n", d.Table())
	}
	return
}

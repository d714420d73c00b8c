// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/civil-soft-science/OpenSees.NET/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"
)

var (
	solveTransient bool    // run transient analysis
	solveNode      int     // node to monitor in transient analyses
	solveDof       string  // dof to monitor in transient analyses
	solveFactor    float64 // load factor of static analyses
)

var beamSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the static or transient problem",
	Long: `Solve the linear static problem and print nodal displacements, reactions
and element forces in the local system. With --transient, the problem is
solved with Newmark's method using the control data of the model file and
the history of one degree of freedom is printed.

Examples:
  timobeam beam solve -f cantilever.yaml
  timobeam beam solve -f frame.yaml --transient --node 2 --dof ux`,
	RunE: runBeamSolve,
}

func init() {
	beamCmd.AddCommand(beamSolveCmd)
	beamSolveCmd.Flags().BoolVar(&solveTransient, "transient", false, "transient analysis")
	beamSolveCmd.Flags().IntVar(&solveNode, "node", 0, "node to monitor in transient analyses; 0 => last node")
	beamSolveCmd.Flags().StringVar(&solveDof, "dof", "uy", "dof to monitor in transient analyses: ux, uy, uz, rx, ry or rz")
	beamSolveCmd.Flags().Float64Var(&solveFactor, "factor", 1, "load factor for static analyses")
	beamSolveCmd.Flags().Int("every", 10, "print state every n steps in transient analyses")
	mustBind(viper.BindPFlag("every", beamSolveCmd.Flags().Lookup("every")))
}

func runBeamSolve(cmd *cobra.Command, args []string) (err error) {
	dom, err := loadDomain(beamFile)
	if err != nil {
		return
	}
	w := cmd.OutOrStdout()
	if solveTransient {
		return transient(w, dom)
	}
	err = dom.SolveStatic(solveFactor)
	if err != nil {
		return
	}
	printStatic(w, dom, solveFactor)
	return
}

// printStatic prints displacements, reactions and element forces
func printStatic(w io.Writer, dom *fem.Domain, factor float64) {
	fmt.Fprintf(w, "nodal displacements\n%6s", "node")
	for _, key := range []string{"ux", "uy", "uz", "rx", "ry", "rz"} {
		fmt.Fprintf(w, "%14s", key)
	}
	fmt.Fprintln(w)
	for _, nod := range dom.Nodes {
		fmt.Fprintf(w, "%6d", nod.Vid)
		for _, u := range nod.U {
			fmt.Fprintf(w, "%14.6g", u)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\nreactions\n")
	reac := dom.Reactions(factor)
	for _, id := range dom.NodeIds() {
		if r, ok := reac[id]; ok {
			fmt.Fprintf(w, "%6d", id)
			for _, v := range r {
				fmt.Fprintf(w, "%14.6g", v)
			}
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "\nelement forces (local system)\n")
	for _, e := range dom.Elems {
		res, err := beamElement(dom, e.Id())
		if err != nil {
			continue
		}
		f, err := res.LocalForce()
		if err != nil {
			fmt.Fprintf(w, "%6d  %v\n", e.Id(), err)
			continue
		}
		fmt.Fprintf(w, "%6d  I:", e.Id())
		for _, v := range f[:6] {
			fmt.Fprintf(w, "%14.6g", v)
		}
		fmt.Fprintf(w, "\n%6s  J:", "")
		for _, v := range f[6:] {
			fmt.Fprintf(w, "%14.6g", v)
		}
		fmt.Fprintln(w)
	}
}

// transient runs the transient analysis and prints the history of the monitored dof
func transient(w io.Writer, dom *fem.Domain) (err error) {

	// monitored dof
	id := solveNode
	if id == 0 {
		ids := dom.NodeIds()
		id = ids[len(ids)-1]
	}
	nod, ok := dom.Vid2node[id]
	if !ok {
		return chk.Err("cannot find node %d", id)
	}
	idx := -1
	for i, dof := range nod.Dofs {
		if dof.Key == solveDof {
			idx = i
		}
	}
	if idx < 0 {
		return chk.Err("node %d does not have dof %q", id, solveDof)
	}

	// run
	every := viper.GetInt("every")
	if every < 1 {
		every = 1
	}
	var hist []float64
	fmt.Fprintf(w, "%8s%14s%14s\n", "step", "t", solveDof)
	err = dom.SolveTransient(dom.Mdl.Control, func(step int, t float64, d *fem.Domain) (err error) {
		hist = append(hist, nod.U[idx])
		if step%every == 0 {
			fmt.Fprintf(w, "%8d%14.6g%14.6g\n", step, t, nod.U[idx])
		}
		return
	})
	if err != nil {
		return
	}

	// summary
	fmt.Fprintf(w, "\n%s @ node %d: min = %g  max = %g\n\n", solveDof, id, floats.Min(hist), floats.Max(hist))
	fmt.Fprintln(w, asciigraph.Plot(hist,
		asciigraph.Height(viper.GetInt("height")),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s @ node %d versus step", solveDof, id))))
	return
}

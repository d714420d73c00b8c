// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds the degrees of freedom of an element type
type Info struct {
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", "uy", "uz", "rx", "ry", "rz"], [...]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx", "rz" => "mz"
}

// Ykeys returns the dof keys of node m
func (o *Info) Ykeys(m int) []string {
	return o.Dofs[m]
}

// Fkeys returns the force keys corresponding to the dofs of node m
func (o *Info) Fkeys(m int) (fkeys []string) {
	fkeys = make([]string, len(o.Dofs[m]))
	for i, y := range o.Dofs[m] {
		fkeys[i] = o.Y2F[y]
	}
	return
}

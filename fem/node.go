// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/cpmech/gosl/io"
)

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key   string // primary variable key. e.g. "ux"
	Eq    int    // equation number
	Fixed bool   // prescribed (zero) value
}

// Node holds node dofs information and the trial state of its dofs
type Node struct {
	Vid    int       // vertex id
	Coords []float64 // [3] coordinates
	Dofs   []*Dof    // dofs: ux, uy, uz, rx, ry, rz
	U      []float64 // [ndof] trial displacements and rotations
	V      []float64 // [ndof] trial velocities
	A      []float64 // [ndof] trial accelerations
}

// NewNode allocates a new Node
func NewNode(dat *inp.NodeData) *Node {
	return &Node{
		Vid:    dat.Id,
		Coords: []float64{dat.X[0], dat.X[1], dat.X[2]},
	}
}

// AddDofAndEq adds a new dof and equation number to this node if it doesn't exist yet
//  Output: the next equation number
func (o *Node) AddDofAndEq(ukey string, eqNumber int) (nextEqNumber int) {
	if o.GetDof(ukey) != nil {
		return eqNumber
	}
	o.Dofs = append(o.Dofs, &Dof{Key: ukey, Eq: eqNumber})
	o.U = append(o.U, 0)
	o.V = append(o.V, 0)
	o.A = append(o.A, 0)
	return eqNumber + 1
}

// GetDof returns the Dof structure for given Dof name (ukey)
//  Note: returns nil if not found
func (o *Node) GetDof(ukey string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == ukey {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number for given Dof name (ukey)
//  Note: returns -1 if not found
func (o *Node) GetEq(ukey string) (eq int) {
	if dof := o.GetDof(ukey); dof != nil {
		return dof.Eq
	}
	return -1
}

// Id returns the node identifier
func (o *Node) Id() int { return o.Vid }

// Ndof returns the number of dofs
func (o *Node) Ndof() int { return len(o.Dofs) }

// X returns the coordinates
func (o *Node) X() []float64 { return o.Coords }

// TrialDisp returns the trial displacements and rotations
func (o *Node) TrialDisp() []float64 { return o.U }

// TrialVel returns the trial velocities
func (o *Node) TrialVel() []float64 { return o.V }

// TrialAccel returns the trial accelerations
func (o *Node) TrialAccel() []float64 { return o.A }

// String returns a string representation of node
func (o *Node) String() (l string) {
	l = io.Sf("{\"vid\":%d, \"x\":%v, \"dofs\":[", o.Vid, o.Coords)
	for i, dof := range o.Dofs {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"%s\":%d}", dof.Key, dof.Eq)
	}
	l += "]}"
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Node defines the nodal data read by elements
type Node interface {
	Id() int               // node identifier
	Ndof() int             // number of degrees of freedom
	X() []float64          // [3] coordinates
	TrialDisp() []float64  // [ndof] trial displacements
	TrialVel() []float64   // [ndof] trial velocities
	TrialAccel() []float64 // [ndof] trial accelerations
}

// NodeFinder finds nodes by identifier
type NodeFinder interface {
	Node(id int) Node // returns nil if not found
}

// CrdTransf defines coordinate transformations; i.e. the providers of element geometry
type CrdTransf interface {
	Tag() int                       // transformation tag
	Kind() string                   // "Linear", "PDelta" or "Corotational"
	Vecxz() []float64               // [3] vector in the local x-z plane
	Initialize(ni, nj Node) error   // computes length and local axes from end nodes
	InitialLength() float64         // length between end nodes
	LocalAxes() (x, y, z []float64) // unit vectors of the local system
	Copy() CrdTransf                // returns an independent copy
}

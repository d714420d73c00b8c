// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

import "gonum.org/v1/gonum/mat"

// Element defines what all elements must implement.
//
//  Matrices and vectors returned by an element are owned by it and are only valid until the
//  next call to the same method; callers that keep them must copy.
type Element interface {

	// information and initialisation
	Id() int                              // returns the element tag
	Nodes() []int                         // identifiers of connected nodes
	Ndof() int                            // total number of degrees of freedom
	SetDomain(dom NodeFinder) (err error) // connects to nodes and computes element matrices

	// state
	CommitState() (err error)        // accepts the current trial state
	RevertToLastCommit() (err error) // goes back to the committed state
	RevertToStart() (err error)      // goes back to the initial state
	Update() (err error)             // updates state for new trial displacements

	// called for each iteration
	TangentStiff() (K *mat.SymDense, err error)             // current tangent stiffness in global system
	InitialStiff() *mat.SymDense                            // initial stiffness in global system
	Mass() *mat.SymDense                                    // mass matrix in global system
	ResistingForce() (R *mat.VecDense, err error)           // resisting forces in global system
	ResistingForceIncInertia() (R *mat.VecDense, err error) // resisting forces including damping and inertia

	// loads
	ZeroLoad()                                             // clears element loads of the current load stage
	AddLoad(load Load, factor float64) (err error)         // adds element load
	AddInertiaLoadToUnbalance(accel []float64) (err error) // adds -M·R·accel to the unbalanced load

	// reading and writing of element data
	Encode(enc Encoder) (err error) // encodes element data
	Decode(dec Decoder) (err error) // decodes element data
}

// WithFixedKM defines elements with fixed K,M matrices; to be recomputed if prms are changed
type WithFixedKM interface {
	Recompute() (err error) // recompute K and M
}

// WithDamping defines elements with a damping matrix
type WithDamping interface {
	DampingMatrix() (C *mat.SymDense, err error) // damping matrix in global system; nil if there is no damping
}

// CanOutputIps defines elements that can output values at points along the element
type CanOutputIps interface {
	Id() int                         // returns the element tag
	OutIpCoords() [][]float64        // coordinates of output points
	OutIpKeys() []string             // keys of values at output points; e.g. "N", "Mz"
	OutIpVals(M *IpsMap) (err error) // values corresponding to keys
}

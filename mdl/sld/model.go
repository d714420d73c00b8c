// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sld implements cross-section response models for structural (1D) elements
package sld

import (
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/cpmech/gosl/chk"
)

// Quantity identifies the physical response represented by one row of a section tangent
type Quantity int

// section response quantities
const (
	Axial   Quantity = iota + 1 // P: axial force
	BendZ                       // Mz: bending about the local z-axis (strong)
	ShearY                      // Vy: shear along the local y-axis
	BendY                       // My: bending about the local y-axis (weak)
	ShearZ                      // Vz: shear along the local z-axis
	Torsion                     // T: twisting moment
)

// String returns the usual short name of the quantity
func (q Quantity) String() string {
	switch q {
	case Axial:
		return "P"
	case BendZ:
		return "Mz"
	case ShearY:
		return "Vy"
	case BendY:
		return "My"
	case ShearZ:
		return "Vz"
	case Torsion:
		return "T"
	}
	return "?"
}

// Section defines the response of a cross section as seen by beam elements
type Section interface {
	Init(prms inp.Prms) error           // initialises model
	InitialTangent() [][]float64        // [n][n] initial section stiffness
	Codes() []Quantity                  // [n] quantity of each row of the tangent
	Modulus(q Quantity) (float64, bool) // modulus associated with q: E for axial/bending, G for shear/torsion
	GetPrms() inp.Prms                  // gets (an example) of parameters
}

// New returns a new section model
func New(name string) (model Section, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("section model %q is not available in 'sld' database", name)
	}
	return allocator(), nil
}

// Alloc allocates and initialises a section model
func Alloc(name string, prms inp.Prms) (model Section, err error) {
	model, err = New(name)
	if err != nil {
		return
	}
	err = model.Init(prms)
	if err != nil {
		return nil, chk.Err("cannot initialise %q section:\n%v", name, err)
	}
	return
}

// allocators holds all available section models; modelname => allocator
var allocators = map[string]func() Section{}

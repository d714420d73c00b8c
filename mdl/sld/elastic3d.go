// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Elastic3d implements a linear elastic 3D beam section.
// If the shear shape factors αy and αz are given, the section also responds in shear
// with Avy = αy·A and Avz = αz·A.
type Elastic3d struct {
	E      float64 // Young's modulus
	G      float64 // shear modulus
	A      float64 // cross-sectional area
	Iz     float64 // moment of inertia about z-axis
	Iy     float64 // moment of inertia about y-axis
	J      float64 // torsional constant
	AlphaY float64 // shear shape factor along y; 0 => no shear response
	AlphaZ float64 // shear shape factor along z; 0 => no shear response
}

// add model to factory
func init() {
	allocators["elastic3d"] = func() Section { return new(Elastic3d) }
}

// Init initialises model
func (o *Elastic3d) Init(prms inp.Prms) (err error) {
	err = prms.Need("E", "G", "A", "Iz", "Iy", "J")
	if err != nil {
		return
	}
	o.E, o.G, o.A = prms["E"], prms["G"], prms["A"]
	o.Iz, o.Iy, o.J = prms["Iz"], prms["Iy"], prms["J"]
	o.AlphaY = prms.Get("alphaY", 0)
	o.AlphaZ = prms.Get("alphaZ", 0)
	if o.E < 0 || o.G < 0 || o.A < 0 || o.Iz < 0 || o.Iy < 0 || o.J < 0 {
		return chk.Err("elastic3d: parameters must be non-negative. %v", prms)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Elastic3d) GetPrms() inp.Prms {
	return inp.Prms{
		"E":  2.0000e+08,
		"G":  7.6923e+07,
		"A":  1.0000e-02,
		"Iz": 8.3333e-06,
		"Iy": 8.3333e-06,
		"J":  1.4063e-05,
	}
}

// withShear tells whether the section has a shear response
func (o *Elastic3d) withShear() bool {
	return o.AlphaY > 0 || o.AlphaZ > 0
}

// Codes returns the quantity of each row of the tangent
func (o *Elastic3d) Codes() []Quantity {
	if o.withShear() {
		return []Quantity{Axial, BendZ, ShearY, BendY, ShearZ, Torsion}
	}
	return []Quantity{Axial, BendZ, BendY, Torsion}
}

// InitialTangent returns the (diagonal) section stiffness
func (o *Elastic3d) InitialTangent() (k [][]float64) {
	codes := o.Codes()
	k = utl.Alloc(len(codes), len(codes))
	for i, q := range codes {
		switch q {
		case Axial:
			k[i][i] = o.E * o.A
		case BendZ:
			k[i][i] = o.E * o.Iz
		case BendY:
			k[i][i] = o.E * o.Iy
		case ShearY:
			k[i][i] = o.G * o.AlphaY * o.A
		case ShearZ:
			k[i][i] = o.G * o.AlphaZ * o.A
		case Torsion:
			k[i][i] = o.G * o.J
		}
	}
	return
}

// Modulus returns the modulus associated with quantity q
func (o *Elastic3d) Modulus(q Quantity) (float64, bool) {
	switch q {
	case Axial, BendZ, BendY:
		return o.E, true
	case ShearY, ShearZ, Torsion:
		return o.G, true
	}
	return 0, false
}

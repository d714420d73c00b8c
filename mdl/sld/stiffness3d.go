// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Stiffness3d implements a section given directly by its rigidities (EA, EIz, EIy, GJ and,
// optionally, GAvy and GAvz). It does not know the moduli separately.
type Stiffness3d struct {
	EA   float64 // axial rigidity
	EIz  float64 // bending rigidity about z
	EIy  float64 // bending rigidity about y
	GJ   float64 // torsional rigidity
	GAvy float64 // shear rigidity along y; 0 => no shear response
	GAvz float64 // shear rigidity along z; 0 => no shear response
}

// add model to factory
func init() {
	allocators["stiffness3d"] = func() Section { return new(Stiffness3d) }
}

// Init initialises model
func (o *Stiffness3d) Init(prms inp.Prms) (err error) {
	err = prms.Need("EA", "EIz", "EIy", "GJ")
	if err != nil {
		return
	}
	o.EA, o.EIz, o.EIy, o.GJ = prms["EA"], prms["EIz"], prms["EIy"], prms["GJ"]
	o.GAvy, o.GAvz = prms.Get("GAvy", 0), prms.Get("GAvz", 0)
	if o.EA <= 0 {
		return chk.Err("stiffness3d: EA must be positive. EA=%g", o.EA)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Stiffness3d) GetPrms() inp.Prms {
	return inp.Prms{"EA": 2.0e+06, "EIz": 1.6e+03, "EIy": 1.6e+03, "GJ": 7.7e+02}
}

// Codes returns the quantity of each row of the tangent
func (o *Stiffness3d) Codes() []Quantity {
	if o.GAvy > 0 || o.GAvz > 0 {
		return []Quantity{Axial, BendZ, ShearY, BendY, ShearZ, Torsion}
	}
	return []Quantity{Axial, BendZ, BendY, Torsion}
}

// InitialTangent returns the (diagonal) section stiffness
func (o *Stiffness3d) InitialTangent() (k [][]float64) {
	codes := o.Codes()
	k = utl.Alloc(len(codes), len(codes))
	for i, q := range codes {
		switch q {
		case Axial:
			k[i][i] = o.EA
		case BendZ:
			k[i][i] = o.EIz
		case ShearY:
			k[i][i] = o.GAvy
		case BendY:
			k[i][i] = o.EIy
		case ShearZ:
			k[i][i] = o.GAvz
		case Torsion:
			k[i][i] = o.GJ
		}
	}
	return
}

// Modulus is not available
func (o *Stiffness3d) Modulus(q Quantity) (float64, bool) {
	return 0, false
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/chk"

// Param identifies the section properties that can be updated during an analysis
type Param int

// parameters of beams
const (
	ParamE   Param = iota + 1 // Young's modulus
	ParamG                    // shear modulus
	ParamA                    // cross-sectional area
	ParamJ                    // torsional constant
	ParamIy                   // moment of inertia about local y
	ParamIz                   // moment of inertia about local z
	ParamAvy                  // effective shear area along local y
	ParamAvz                  // effective shear area along local z
)

// paramNames holds the names of parameters
var paramNames = map[Param]string{
	ParamE:   "E",
	ParamG:   "G",
	ParamA:   "A",
	ParamJ:   "J",
	ParamIy:  "Iy",
	ParamIz:  "Iz",
	ParamAvy: "Avy",
	ParamAvz: "Avz",
}

// String returns the name of parameter
func (p Param) String() string {
	if name, ok := paramNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParamByName returns the parameter with the given name; e.g. "E", "Iy"
func ParamByName(name string) (p Param, err error) {
	for p, n := range paramNames {
		if n == name {
			return p, nil
		}
	}
	return 0, chk.Err("parameter %q is not available in timobeam3d", name)
}

// ptr returns a pointer to the value of parameter
func (o *TimoshenkoBeam) ptr(p Param) *float64 {
	switch p {
	case ParamE:
		return &o.E
	case ParamG:
		return &o.G
	case ParamA:
		return &o.A
	case ParamJ:
		return &o.J
	case ParamIy:
		return &o.Iy
	case ParamIz:
		return &o.Iz
	case ParamAvy:
		return &o.Avy
	case ParamAvz:
		return &o.Avz
	}
	return nil
}

// Param returns the value of parameter
func (o *TimoshenkoBeam) Param(p Param) (val float64, err error) {
	v := o.ptr(p)
	if v == nil {
		return 0, chk.Err("timobeam3d %d: parameter %d is not available", o.Tag, p)
	}
	return *v, nil
}

// UpdateParam sets the value of parameter and recomputes all matrices.
// If the geometry is not set yet, the value is stored and an error is returned.
func (o *TimoshenkoBeam) UpdateParam(p Param, val float64) (err error) {
	v := o.ptr(p)
	if v == nil {
		return chk.Err("timobeam3d %d: parameter %d is not available", o.Tag, p)
	}
	*v = val
	return o.Recompute()
}

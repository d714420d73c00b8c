// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/cpmech/gosl/chk"
)

// Rectangle implements an elastic solid rectangular section of width b (along y) and depth h (along z).
// G is computed from E and ν; the effective shear areas use the shape factor 5/6.
type Rectangle struct {
	Elastic3d
	B  float64 // width
	H  float64 // depth
	Nu float64 // Poisson's coefficient
}

// add model to factory
func init() {
	allocators["rectangle"] = func() Section { return new(Rectangle) }
}

// NewRectangle returns a rectangular section with Young's modulus E and Poisson's coefficient nu
func NewRectangle(E, nu, b, h float64) (o *Rectangle, err error) {
	o = new(Rectangle)
	err = o.Init(inp.Prms{"E": E, "nu": nu, "b": b, "h": h})
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises model
func (o *Rectangle) Init(prms inp.Prms) (err error) {
	err = prms.Need("E", "b", "h")
	if err != nil {
		return
	}
	o.B, o.H, o.Nu = prms["b"], prms["h"], prms.Get("nu", 0.3)
	if o.B <= 0 || o.H <= 0 {
		return chk.Err("rectangle: b and h must be positive. b=%g, h=%g", o.B, o.H)
	}
	o.E = prms["E"]
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.A = o.B * o.H
	o.Iy = o.B * o.H * o.H * o.H / 12.0
	o.Iz = o.H * o.B * o.B * o.B / 12.0
	o.J = RectTorsionConstant(o.B, o.H)
	o.AlphaY = 5.0 / 6.0
	o.AlphaZ = 5.0 / 6.0
	return
}

// GetPrms gets (an example) of parameters
func (o Rectangle) GetPrms() inp.Prms {
	return inp.Prms{"E": 2.0e+08, "nu": 0.3, "b": 0.2, "h": 0.4}
}

// RectTorsionConstant returns the Saint-Venant torsion constant of a solid rectangle (Roark)
func RectTorsionConstant(breadth, depth float64) float64 {
	a := depth / 2
	b := breadth / 2
	if a < b {
		a, b = b, a
	}
	return a * b * b * b * (16./3. - 3.36*b/a*(1.-b*b*b*b/12./a/a/a/a))
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"github.com/civil-soft-science/OpenSees.NET/ana"
	"github.com/civil-soft-science/OpenSees.NET/inp"
)

// Shape implements an elastic section computed from the dimensions of a standard shape
//  circle: r
//  ibeam:  b, h, tf, tw (web along z)
type Shape struct {
	Elastic3d
	Geo ana.CrossSection // geometric properties
	Nu  float64          // Poisson's coefficient
}

// add models to factory
func init() {
	allocators["circle"] = func() Section { return &Shape{Geo: ana.CrossSection{Type: "circle"}} }
	allocators["ibeam"] = func() Section { return &Shape{Geo: ana.CrossSection{Type: "I-beam"}} }
}

// Init initialises model
func (o *Shape) Init(prms inp.Prms) (err error) {
	err = prms.Need("E")
	if err != nil {
		return
	}
	switch o.Geo.Type {
	case "circle":
		err = prms.Need("r")
	default:
		err = prms.Need("b", "h", "tf", "tw")
	}
	if err != nil {
		return
	}
	err = o.Geo.Init(o.Geo.Type, prms["b"], prms["h"], prms["tf"], prms["tw"], prms["r"])
	if err != nil {
		return
	}
	o.Nu = prms.Get("nu", 0.3)
	o.E = prms["E"]
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.A, o.Iy, o.Iz, o.J = o.Geo.A, o.Geo.Iy, o.Geo.Iz, o.Geo.J
	o.AlphaY = o.Geo.Avy / o.A
	o.AlphaZ = o.Geo.Avz / o.A
	return
}

// GetPrms gets (an example) of parameters
func (o Shape) GetPrms() inp.Prms {
	if o.Geo.Type == "circle" {
		return inp.Prms{"E": 2.0e+08, "nu": 0.3, "r": 0.1}
	}
	return inp.Prms{"E": 2.0e+08, "nu": 0.3, "b": 0.2, "h": 0.4, "tf": 0.02, "tw": 0.01}
}

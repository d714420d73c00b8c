// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package transf implements coordinate transformations for frame elements
package transf

import (
	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// kinds of transformations
const (
	KindLinear = "Linear"       // small displacements
	KindPDelta = "PDelta"       // small displacements with P-Delta effects
	KindCorot  = "Corotational" // large displacements (handled as PDelta by linear elements)
)

// Linear implements the linear coordinate transformation
//
//        z (local) ^   vecxz
//                  |  /
//                  | /
//       (I) o------+---------o (J) ---> x (local)
//                 /
//                v y (local) = vecxz × x
//
type Linear struct {
	tag   int       // transformation tag
	vecxz []float64 // [3] vector in the local x-z plane
	l     float64   // length
	x     []float64 // [3] local x-axis
	y     []float64 // [3] local y-axis
	z     []float64 // [3] local z-axis
}

// PDelta implements the P-Delta coordinate transformation
type PDelta struct {
	Linear
}

// Corotational implements the corotational coordinate transformation
type Corotational struct {
	Linear
}

// New returns a new coordinate transformation
func New(kind string, tag int, vecxz []float64) (o ele.CrdTransf, err error) {
	if len(vecxz) != 3 {
		return nil, chk.Err("transformation %d: vecxz must have 3 components. %v is invalid", tag, vecxz)
	}
	if floats.Norm(vecxz, 2) == 0 {
		return nil, chk.Err("transformation %d: vecxz must not be zero", tag)
	}
	lin := newLinear(tag, vecxz)
	switch kind {
	case KindLinear:
		return lin, nil
	case KindPDelta:
		return &PDelta{*lin}, nil
	case KindCorot:
		return &Corotational{*lin}, nil
	}
	return nil, chk.Err("transformation %d: kind %q is not available", tag, kind)
}

// newLinear allocates a linear transformation
func newLinear(tag int, vecxz []float64) *Linear {
	return &Linear{
		tag:   tag,
		vecxz: []float64{vecxz[0], vecxz[1], vecxz[2]},
		x:     make([]float64, 3),
		y:     make([]float64, 3),
		z:     make([]float64, 3),
	}
}

// Tag returns the transformation tag
func (o *Linear) Tag() int { return o.tag }

// Kind returns "Linear"
func (o *Linear) Kind() string { return KindLinear }

// Vecxz returns the vector in the local x-z plane
func (o *Linear) Vecxz() []float64 { return o.vecxz }

// InitialLength returns the length computed by Initialize
func (o *Linear) InitialLength() float64 { return o.l }

// LocalAxes returns the unit vectors of the local system
func (o *Linear) LocalAxes() (x, y, z []float64) { return o.x, o.y, o.z }

// Initialize computes the length and the local axes
//  x := (xJ - xI) / L
//  y := vecxz × x / |vecxz × x|
//  z := x × y
func (o *Linear) Initialize(ni, nj ele.Node) (err error) {
	if ni == nil || nj == nil {
		return chk.Err("transformation %d: nodes are not available", o.tag)
	}
	xi, xj := ni.X(), nj.X()
	if len(xi) != 3 || len(xj) != 3 {
		return chk.Err("transformation %d: nodes %d and %d must have 3 coordinates", o.tag, ni.Id(), nj.Id())
	}
	floats.SubTo(o.x, xj, xi)
	o.l = floats.Norm(o.x, 2)
	if o.l == 0 {
		return chk.Err("transformation %d: nodes %d and %d have the same coordinates", o.tag, ni.Id(), nj.Id())
	}
	floats.Scale(1.0/o.l, o.x)
	utl.Cross3d(o.y, o.vecxz, o.x) // y := vecxz × x
	ny := floats.Norm(o.y, 2)
	if ny < 1e-10*floats.Norm(o.vecxz, 2) {
		return chk.Err("transformation %d: vecxz=%v is parallel to the element axis", o.tag, o.vecxz)
	}
	floats.Scale(1.0/ny, o.y)
	utl.Cross3d(o.z, o.x, o.y) // z := x × y
	return
}

// Copy returns an independent copy
func (o *Linear) Copy() ele.CrdTransf {
	return o.clone()
}

// clone copies all data
func (o *Linear) clone() *Linear {
	c := newLinear(o.tag, o.vecxz)
	c.l = o.l
	copy(c.x, o.x)
	copy(c.y, o.y)
	copy(c.z, o.z)
	return c
}

// Kind returns "PDelta"
func (o *PDelta) Kind() string { return KindPDelta }

// Copy returns an independent copy
func (o *PDelta) Copy() ele.CrdTransf { return &PDelta{*o.clone()} }

// Kind returns "Corotational"
func (o *Corotational) Kind() string { return KindCorot }

// Copy returns an independent copy
func (o *Corotational) Copy() ele.CrdTransf { return &Corotational{*o.clone()} }

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes cross-sectional moments of inertia and other properties
//
//           z                     z
//           ^                     ^     tw
//           |                     | -->| |<--
//   +-------+-------+      ___   ########### ___
//   |       |       |    tf |    #####|#####  |
//   |       |       |       -       |##|      |
//   |       o-------|--> y          |##o------|---> y      h = hei
//   |               |               |##|      |
//   |               |       _       ##|##     |
//   +---------------+    tf_|_   ###########  -
//         b = wid                  b = wid
//
//   typ : rectangle, I-beam or circle
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) along y if not circular
	Hei  float64 // height (h) along z if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A   float64 // cross-sectional area
	Iy  float64 // major moment of inertia (about y-axis)
	Iz  float64 // minor moment of inertia (about z-axis)
	J   float64 // torsional constant
	Avy float64 // effective shear area along y
	Avz float64 // effective shear area along z
}

// Init initialises structure and computes moments of inertia
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		if b <= 0 || h <= 0 {
			return chk.Err("rectangle: width and height must be positive. b=%g, h=%g", b, h)
		}
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.Iy = b * h3 / 12.0
		o.Iz = b3 * h / 12.0
		if b == h {
			o.J = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
				b3 = b * b * b
				h3 = h * h * h
			}
			o.J = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}
		o.Avy = 5.0 * o.A / 6.0
		o.Avz = o.Avy

	case "I-beam":
		b, h := wid, hei
		if b <= 0 || h <= 0 || tf <= 0 || tw <= 0 || 2.0*tf >= h || tw >= b {
			return chk.Err("I-beam: invalid dimensions. b=%g, h=%g, tf=%g, tw=%g", b, h, tf, tw)
		}
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.Iy = b*h3/12.0 - (b-tw)*l3/12.0
		o.Iz = l*tw3/12.0 + tf*b3/6.0
		o.J = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0
		o.Avy = 5.0 * 2.0 * b * tf / 6.0
		o.Avz = h * tw

	case "circle":
		if rad <= 0 {
			return chk.Err("circle: radius must be positive. r=%g", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.Iy = math.Pi * r2 * r2 / 4.0
		o.Iz = o.Iy
		o.J = o.Iy + o.Iz
		o.Avy = 0.9 * o.A
		o.Avz = o.Avy

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// String returns a summary of the properties
func (o *CrossSection) String() string {
	return io.Sf("%s: A=%g Iy=%g Iz=%g J=%g Avy=%g Avz=%g", o.Type, o.A, o.Iy, o.Iz, o.J, o.Avy, o.Avz)
}

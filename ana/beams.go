// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Beam holds the properties of a prismatic Timoshenko beam bending in one plane
//
//          P                         w
//          |        ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓
//  |=======o        |===============o===============|
//  |<--L-->|        |<------------- L ------------->|
//  cantilever       fixed-fixed
//
type Beam struct {
	E  float64 // Young's modulus
	G  float64 // shear modulus
	I  float64 // moment of inertia
	Av float64 // effective shear area; 0 => Euler-Bernoulli beam
	L  float64 // length
}

// shear returns L/(G·Av) or zero if the beam is rigid in shear
func (o Beam) shear() float64 {
	if o.Av == 0 {
		return 0
	}
	return o.L / (o.G * o.Av)
}

// Flexibility returns the tip deflection of a cantilever under a unit tip load
func (o Beam) Flexibility() float64 {
	return o.L*o.L*o.L/(3.0*o.E*o.I) + o.shear()
}

// Cantilever returns the tip deflection u and rotation θ of a cantilever under a tip load P
func (o Beam) Cantilever(P float64) (u, θ float64) {
	return P * o.Flexibility(), P * o.L * o.L / (2.0 * o.E * o.I)
}

// FixedFixed returns the solution of a fixed-fixed beam under a uniform load w
//  umid -- deflection at midspan
//  Mend -- bending moment at supports
//  Mmid -- bending moment at midspan with the sign of Mend
func (o Beam) FixedFixed(w float64) (umid, Mend, Mmid float64) {
	L2 := o.L * o.L
	umid = w*L2*L2/(384.0*o.E*o.I) + w*L2*o.shear()/(8.0*o.L)
	Mend = w * L2 / 12.0
	Mmid = -w * L2 / 24.0
	return
}

// Period returns the natural period of a massless cantilever with a tip mass m
func (o Beam) Period(m float64) float64 {
	return 2.0 * math.Pi * math.Sqrt(m*o.Flexibility())
}

// StepPeak returns the peak dynamic amplification of a single degree-of-freedom system
// with damping ratio ξ under a suddenly applied constant load
func StepPeak(ξ float64) float64 {
	return 1.0 + math.Exp(-ξ*math.Pi/math.Sqrt(1.0-ξ*ξ))
}

// CheckCantilever compares tip deflection and rotation of a cantilever with the analytical solution
func (o Beam) CheckCantilever(tst *testing.T, P, u, θ, tol float64) {
	ua, θa := o.Cantilever(P)
	chk.Float64(tst, "u @ tip", tol, u, ua)
	chk.Float64(tst, "θ @ tip", tol, θ, θa)
}

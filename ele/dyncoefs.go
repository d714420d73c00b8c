// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DynCoefs calculates the Newmark coefficients for dynamics
//
//  a := α1·u - ζ*   with   ζ* := α1·u + α2·v + α3·a   (computed at the previous step)
//  v := α4·u - χ*   with   χ* := α4·u + α5·v + α6·a   (computed at the previous step)
//
type DynCoefs struct {
	γ  float64 // Newmark γ
	β  float64 // Newmark β
	α1 float64 // coefficients for the second order derivative
	α2 float64
	α3 float64
	α4 float64
	α5 float64
	α6 float64
}

// Init initialises the coefficients. Default values are used if γ or β are zero:
// γ = 0.5 and β = 0.25; i.e. the average acceleration (trapezoidal) rule
func (o *DynCoefs) Init(γ, β float64) (err error) {
	if γ == 0 {
		γ = 0.5
	}
	if β == 0 {
		β = 0.25
	}
	if γ < 0.5 || β < 0 {
		return chk.Err("Newmark coefficients must satisfy γ ≥ 0.5 and β > 0. γ=%g, β=%g", γ, β)
	}
	o.γ, o.β = γ, β
	return
}

// Calc computes the coefficients for a time increment Δt
func (o *DynCoefs) Calc(Δt float64) (err error) {
	if Δt < 1e-14 {
		return chk.Err("Δt is too small: %g", Δt)
	}
	γ, β := o.γ, o.β
	o.α1 = 1.0 / (β * Δt * Δt)
	o.α2 = 1.0 / (β * Δt)
	o.α3 = 1.0/(2.0*β) - 1.0
	o.α4 = γ / (β * Δt)
	o.α5 = γ/β - 1.0
	o.α6 = (γ/(2.0*β) - 1.0) * Δt
	return
}

// GetAlp1 returns α1
func (o *DynCoefs) GetAlp1() float64 { return o.α1 }

// GetAlp4 returns α4
func (o *DynCoefs) GetAlp4() float64 { return o.α4 }

// String returns the coefficients
func (o *DynCoefs) String() string {
	return io.Sf("γ=%g β=%g α1=%g α2=%g α3=%g α4=%g α5=%g α6=%g", o.γ, o.β, o.α1, o.α2, o.α3, o.α4, o.α5, o.α6)
}

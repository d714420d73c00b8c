// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the state of a transient analysis at the free equations
//
//  a := α1·u - ζ*   and   v := α4·u - χ*
//
type Solution struct {

	// current state
	T      float64   // current time
	Y      []float64 // displacements
	Dydt   []float64 // velocities
	D2ydt2 []float64 // accelerations

	// auxiliary
	Dt  float64   // current time increment
	Zet []float64 // t2 star vars; e.g. ζ* = α1.u + α2.v + α3.a
	Chi []float64 // t2 star vars; e.g. χ* = α4.u + α5.v + α6.a

	// constants
	DynCfs *DynCoefs // coefficients for dynamics
}

// NewSolution allocates a solution with n equations
func NewSolution(n int, dc *DynCoefs) (o *Solution) {
	o = new(Solution)
	o.Y = make([]float64, n)
	o.Dydt = make([]float64, n)
	o.D2ydt2 = make([]float64, n)
	o.Zet = make([]float64, n)
	o.Chi = make([]float64, n)
	o.DynCfs = dc
	return
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.Dydt[i] = 0
		o.D2ydt2[i] = 0
		o.Zet[i] = 0
		o.Chi[i] = 0
	}
}

// Predict advances time by Δt, computes the star variables and sets the velocities and
// accelerations of the predicted state u(t+Δt) = u(t)
func (o *Solution) Predict(Δt float64) {
	c := o.DynCfs
	o.Dt = Δt
	o.T += Δt
	for i := 0; i < len(o.Y); i++ {
		o.Zet[i] = c.α1*o.Y[i] + c.α2*o.Dydt[i] + c.α3*o.D2ydt2[i]
		o.Chi[i] = c.α4*o.Y[i] + c.α5*o.Dydt[i] + c.α6*o.D2ydt2[i]
	}
	o.update()
}

// Correct adds the increment of displacements and updates velocities and accelerations
func (o *Solution) Correct(Δy []float64) {
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] += Δy[i]
	}
	o.update()
}

// update computes velocities and accelerations from displacements and star variables
func (o *Solution) update() {
	c := o.DynCfs
	for i := 0; i < len(o.Y); i++ {
		o.Dydt[i] = c.α4*o.Y[i] - o.Chi[i]
		o.D2ydt2[i] = c.α1*o.Y[i] - o.Zet[i]
	}
}

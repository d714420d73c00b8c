// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// OutputFunc is called after each time step of transient analyses
type OutputFunc func(step int, t float64, dom *Domain) (err error)

// SolveStatic solves the linear static problem K·u = factor·Fext - R(0)
// where R(0) holds the fixed-end forces of element loads
func (o *Domain) SolveStatic(factor float64) (err error) {

	// loads and initial state
	err = o.zeroState()
	if err != nil {
		return
	}
	err = o.ApplyEleLoads(factor)
	if err != nil {
		return
	}
	err = o.AssembleR(false)
	if err != nil {
		return
	}

	// stiffness
	err = o.AssembleK()
	if err != nil {
		return
	}
	var lu mat.LU
	lu.Factorize(o.reduce(o.Kb.ToCSR()))
	if math.IsInf(lu.Cond(), 1) {
		return chk.Err("stiffness matrix is singular; check the fixities")
	}

	// right-hand side
	b := mat.NewVecDense(len(o.free), nil)
	for k, I := range o.free {
		b.SetVec(k, factor*o.Fext[I]-o.R[I])
	}

	// solve
	var x mat.VecDense
	err = lu.SolveVecTo(&x, false, b)
	if err != nil {
		return chk.Err("cannot solve linear system:\n%v", err)
	}
	o.scatter(func(nod *Node) []float64 { return nod.U }, x.RawVector().Data)

	// final state
	err = o.AssembleR(false)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf(">> static solution: unbalance = %g\n", o.Unbalance(factor))
	}
	return o.CommitState()
}

// SolveTransient solves the linear dynamic problem M·a + C·v + K·u = λ(t)·Fext - R(0) - M·ι·ag(t)
// with Newmark's method. The analysis starts at rest.
//  ctrl -- Dt, Nsteps, Gamma, Beta, Factor and, optionally, a uniform ground acceleration Accel.
//          λ(t) = Factor·LoadFunc(t) and ag(t) = Accel·AccelFunc(t); missing functions give 1
//  out  -- output function called after each step; may be nil
func (o *Domain) SolveTransient(ctrl inp.Control, out OutputFunc) (err error) {

	// coefficients
	if ctrl.Nsteps < 1 {
		return chk.Err("number of steps must be positive. nsteps=%d", ctrl.Nsteps)
	}
	if ctrl.Accel != nil && len(ctrl.Accel) != 6 {
		return chk.Err("ground acceleration must have 6 components; %d given", len(ctrl.Accel))
	}
	var dc ele.DynCoefs
	err = dc.Init(ctrl.Gamma, ctrl.Beta)
	if err != nil {
		return
	}
	err = dc.Calc(ctrl.Dt)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf(">> Newmark: %v\n", &dc)
	}

	// time functions
	lf, err := o.timeFunc(ctrl.LoadFunc)
	if err != nil {
		return
	}
	af, err := o.timeFunc(ctrl.AccelFunc)
	if err != nil {
		return
	}

	// loads and initial state
	err = o.zeroState()
	if err != nil {
		return
	}
	err = o.ApplyEleLoads(ctrl.Factor * lf.F(0, nil))
	if err != nil {
		return
	}

	// effective stiffness: K + α1·M + α4·C
	err = o.AssembleK()
	if err != nil {
		return
	}
	o.AssembleM()
	err = o.AssembleC()
	if err != nil {
		return
	}
	Keff := o.reduce(o.Kb.ToCSR())
	Keff.Add(Keff, scaled(dc.GetAlp1(), o.reduce(o.Mb.ToCSR())))
	Keff.Add(Keff, scaled(dc.GetAlp4(), o.reduce(o.Cb.ToCSR())))
	var lu mat.LU
	lu.Factorize(Keff)
	if math.IsInf(lu.Cond(), 1) {
		return chk.Err("effective stiffness matrix is singular; check the fixities")
	}

	// ground motion: M·ι with ι holding the acceleration of each dof
	mι := o.GroundInertia(ctrl.Accel)

	// auxiliary
	nf := len(o.free)
	sol := ele.NewSolution(nf, &dc)
	b := mat.NewVecDense(nf, nil)
	var Δu mat.VecDense

	// time loop
	for step := 1; step <= ctrl.Nsteps; step++ {

		// predicted state
		sol.Predict(ctrl.Dt)
		t := sol.T
		o.scatter(func(nod *Node) []float64 { return nod.V }, sol.Dydt)
		o.scatter(func(nod *Node) []float64 { return nod.A }, sol.D2ydt2)

		// loads at t
		λ := ctrl.Factor * lf.F(t, nil)
		if ctrl.LoadFunc != "" {
			err = o.ApplyEleLoads(λ)
			if err != nil {
				return
			}
		}
		ag := af.F(t, nil)

		// unbalanced forces
		err = o.AssembleR(true)
		if err != nil {
			return
		}
		for k, I := range o.free {
			b.SetVec(k, λ*o.Fext[I]-o.R[I]-ag*mι[k])
		}

		// solve and update
		err = lu.SolveVecTo(&Δu, false, b)
		if err != nil {
			return chk.Err("cannot solve linear system at t=%g:\n%v", t, err)
		}
		sol.Correct(Δu.RawVector().Data)
		o.scatter(func(nod *Node) []float64 { return nod.U }, sol.Y)
		o.scatter(func(nod *Node) []float64 { return nod.V }, sol.Dydt)
		o.scatter(func(nod *Node) []float64 { return nod.A }, sol.D2ydt2)
		err = o.CommitState()
		if err != nil {
			return
		}

		// output
		if out != nil {
			err = out(step, t, o)
			if err != nil {
				return
			}
		}
	}
	return
}

// GroundInertia returns M·ι at free equations, where ι holds the ground acceleration of each dof.
// The result is zero if accel is nil.
//  Note: AssembleM must be called first
func (o *Domain) GroundInertia(accel []float64) (mι []float64) {
	if accel == nil {
		return make([]float64, len(o.free))
	}
	ι := make([]float64, o.Ny)
	for _, nod := range o.Nodes {
		for i, dof := range nod.Dofs {
			if i < len(accel) {
				ι[dof.Eq] = accel[i]
			}
		}
	}
	mι = make([]float64, len(o.free))
	M := o.Mb.ToCSR()
	for k, I := range o.free {
		for J := 0; J < o.Ny; J++ {
			mι[k] += M.At(I, J) * ι[J]
		}
	}
	return
}

// timeFunc returns the time function of the model with the given name; f(t) = 1 if name is empty
func (o *Domain) timeFunc(name string) (fcn dbf.T, err error) {
	if name == "" {
		return &dbf.Cte{C: 1}, nil
	}
	return o.Mdl.Functions.Get(name)
}

// zeroState zeroes the trial state of all nodes and reverts elements to their initial state
func (o *Domain) zeroState() (err error) {
	for _, nod := range o.Nodes {
		for i := range nod.U {
			nod.U[i], nod.V[i], nod.A[i] = 0, 0, 0
		}
	}
	for _, e := range o.Elems {
		err = e.RevertToStart()
		if err != nil {
			return
		}
	}
	return
}

// scaled returns α·a
func scaled(α float64, a *mat.Dense) *mat.Dense {
	a.Scale(α, a)
	return a
}

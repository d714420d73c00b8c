// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/cpmech/gosl/chk"
)

// ZeroLoad clears fixed-end forces, inertia loads and recorded loads
func (o *TimoshenkoBeam) ZeroLoad() {
	o.ql0.Zero()
	o.load.Zero()
	if o.Recovery != nil {
		o.Recovery.Clear()
	}
}

// AddLoad adds the fixed-end forces of an element load to the current load stage.
// Unknown loads and point loads outside the span are rejected and nothing is added.
func (o *TimoshenkoBeam) AddLoad(load ele.Load, factor float64) (err error) {
	if !o.ready {
		return o.notReady()
	}
	typ, data := load.Data(factor)
	switch typ {
	case ele.LoadUniform:
		err = o.addUniformLoad(data)
	case ele.LoadPoint:
		err = o.addPointLoad(data)
	default:
		err = chk.Err("timobeam3d %d: load type %d is not available", o.Tag, typ)
	}
	if err != nil {
		return
	}
	if o.Recovery != nil {
		o.Recovery.Record(typ, data)
	}
	return
}

// addUniformLoad adds fixed-end forces of uniformly distributed loads
//  data = [wy, wz, wx]
func (o *TimoshenkoBeam) addUniformLoad(data []float64) (err error) {
	if len(data) < 3 {
		return chk.Err("timobeam3d %d: uniform load needs [wy, wz, wx]", o.Tag)
	}
	wy, wz, wx := data[0], data[1], data[2]
	L := o.L
	Vy := 0.5 * wy * L
	Mz := Vy * L / 6.0 // wy·L²/12
	Vz := 0.5 * wz * L
	My := Vz * L / 6.0 // wz·L²/12
	P := 0.5 * wx * L
	q := o.ql0
	q.SetVec(0, q.AtVec(0)-P)
	q.SetVec(1, q.AtVec(1)-Vy)
	q.SetVec(2, q.AtVec(2)-Vz)
	q.SetVec(4, q.AtVec(4)+My)
	q.SetVec(5, q.AtVec(5)-Mz)
	q.SetVec(6, q.AtVec(6)-P)
	q.SetVec(7, q.AtVec(7)-Vy)
	q.SetVec(8, q.AtVec(8)-Vz)
	q.SetVec(10, q.AtVec(10)-My)
	q.SetVec(11, q.AtVec(11)+Mz)
	return
}

// addPointLoad adds fixed-end forces of a concentrated load at a = (a/L)·L
//  data = [Py, Pz, N, a/L]
func (o *TimoshenkoBeam) addPointLoad(data []float64) (err error) {
	if len(data) < 4 {
		return chk.Err("timobeam3d %d: point load needs [Py, Pz, N, a/L]", o.Tag)
	}
	Py, Pz, N, aOverL := data[0], data[1], data[2], data[3]
	if aOverL < 0 || aOverL > 1 {
		return chk.Err("timobeam3d %d: point load position a/L=%g is outside [0, 1]", o.Tag, aOverL)
	}
	L := o.L
	a := aOverL * L
	b := L - a
	LL := L * L
	q := o.ql0
	q.SetVec(0, q.AtVec(0)-0.5*N)
	q.SetVec(1, q.AtVec(1)-Py*(1.0-aOverL))
	q.SetVec(2, q.AtVec(2)-Pz*(1.0-aOverL))
	q.SetVec(4, q.AtVec(4)+Pz*a*b*b/LL)
	q.SetVec(5, q.AtVec(5)-Py*a*b*b/LL)
	q.SetVec(6, q.AtVec(6)-0.5*N)
	q.SetVec(7, q.AtVec(7)-Py*aOverL)
	q.SetVec(8, q.AtVec(8)-Pz*aOverL)
	q.SetVec(10, q.AtVec(10)-Pz*a*a*b/LL)
	q.SetVec(11, q.AtVec(11)+Py*a*a*b/LL)
	return
}

// AddInertiaLoadToUnbalance adds -M·R·accel to the inertia loads
//  accel -- [6] ground acceleration applied to the translations and rotations of both nodes
func (o *TimoshenkoBeam) AddInertiaLoadToUnbalance(accel []float64) (err error) {
	if o.Rho == 0 {
		return
	}
	if len(accel) != 6 {
		return chk.Err("timobeam3d %d: acceleration must have 6 components. %v is invalid", o.Tag, accel)
	}
	ele.Gather(o.ug, accel, accel)
	o.wv.MulVec(o.M, o.ug)
	o.load.SubVec(o.load, o.wv)
	return
}

// FixedEndForces returns a copy of the fixed-end forces in local system
func (o *TimoshenkoBeam) FixedEndForces() []float64 {
	res := make([]float64, o.Nu)
	for i := range res {
		res[i] = o.ql0.AtVec(i)
	}
	return res
}

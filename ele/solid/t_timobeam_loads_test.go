// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/civil-soft-science/OpenSees.NET/ele/transf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// badLoad implements a load unknown to beams
type badLoad struct{}

func (o badLoad) Data(factor float64) (ele.LoadType, []float64) { return ele.LoadType(99), nil }

func Test_timobeamload01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("timobeamload01. uniform loads")

	o, _ := newBeamX(tst, transf.KindLinear, Options{})
	L := 4.0

	// wy = 3 with factor 2 => wy = 6
	wy := 6.0
	err := o.AddLoad(&ele.UniformLoad{Wy: 3}, 2)
	require.NoError(tst, err)
	q := o.FixedEndForces()
	io.Pforan("ql0 = %v\n", q)
	chk.Float64(tst, "Vy at I", 1e-15, q[1], -wy*L/2)
	chk.Float64(tst, "Vy at J", 1e-15, q[7], -wy*L/2)
	chk.Float64(tst, "Mz at I", 1e-14, q[5], -wy*L*L/12)
	chk.Float64(tst, "Mz at J", 1e-14, q[11], wy*L*L/12)

	// equilibrium: end forces balance the load
	chk.Float64(tst, "ΣFy", 1e-14, q[1]+q[7]+wy*L, 0)
	chk.Float64(tst, "ΣMz about I", 1e-13, q[5]+q[11]+L*q[7]+wy*L*L/2, 0)
	chk.Float64(tst, "ΣMz about J", 1e-13, q[5]+q[11]-L*q[1]-wy*L*L/2, 0)

	// wz and wx
	o.ZeroLoad()
	wz, wx := 5.0, 1.5
	err = o.AddLoad(&ele.UniformLoad{Wz: wz, Wx: wx}, 1)
	require.NoError(tst, err)
	q = o.FixedEndForces()
	chk.Float64(tst, "N at I", 1e-15, q[0], -wx*L/2)
	chk.Float64(tst, "N at J", 1e-15, q[6], -wx*L/2)
	chk.Float64(tst, "Vz at I", 1e-15, q[2], -wz*L/2)
	chk.Float64(tst, "My at I", 1e-14, q[4], wz*L*L/12)
	chk.Float64(tst, "My at J", 1e-14, q[10], -wz*L*L/12)
	chk.Float64(tst, "ΣFz", 1e-14, q[2]+q[8]+wz*L, 0)
	chk.Float64(tst, "ΣMy about I", 1e-13, q[4]+q[10]-L*q[8]-wz*L*L/2, 0)

	// loads accumulate
	err = o.AddLoad(&ele.UniformLoad{Wz: wz, Wx: wx}, 1)
	require.NoError(tst, err)
	chk.Float64(tst, "Vz at I (twice)", 1e-15, o.FixedEndForces()[2], -wz*L)

	// zero loads
	o.ZeroLoad()
	assert.InDeltaSlice(tst, make([]float64, 12), o.FixedEndForces(), 1e-17)

	// fixed-end forces enter the resisting force
	err = o.AddLoad(&ele.UniformLoad{Wy: 3}, 1)
	require.NoError(tst, err)
	R, err := o.ResistingForce()
	require.NoError(tst, err)
	chk.Float64(tst, "R[1]", 1e-15, R.AtVec(1), -6)
	chk.Float64(tst, "R[11]", 1e-14, R.AtVec(11), 4)
}

func Test_timobeamload02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("timobeamload02. point loads")

	o, _ := newBeamX(tst, transf.KindLinear, Options{})
	P := 10.0

	// midspan
	err := o.AddLoad(&ele.PointLoad{Py: P, Pz: P, N: 4, AoverL: 0.5}, 1)
	require.NoError(tst, err)
	q := o.FixedEndForces()
	io.Pforan("ql0 = %v\n", q)
	chk.Float64(tst, "Vy at I", 1e-15, q[1], -P/2)
	chk.Float64(tst, "Vy at J", 1e-15, q[7], -P/2)
	chk.Float64(tst, "Mz at I", 1e-15, q[5], -P*4/8)
	chk.Float64(tst, "Mz at J", 1e-15, q[11], P*4/8)
	chk.Float64(tst, "Vz at I", 1e-15, q[2], -P/2)
	chk.Float64(tst, "My at I", 1e-15, q[4], P*4/8)
	chk.Float64(tst, "My at J", 1e-15, q[10], -P*4/8)
	chk.Float64(tst, "N at I", 1e-15, q[0], -2)
	chk.Float64(tst, "N at J", 1e-15, q[6], -2)

	// at the ends
	for _, aOverL := range []float64{0, 1} {
		o.ZeroLoad()
		err = o.AddLoad(&ele.PointLoad{Py: P, AoverL: aOverL}, 1)
		require.NoError(tst, err)
		q = o.FixedEndForces()
		chk.Float64(tst, "Vy at I", 1e-15, q[1], -P*(1-aOverL))
		chk.Float64(tst, "Vy at J", 1e-15, q[7], -P*aOverL)
		chk.Float64(tst, "Mz at I", 1e-15, q[5], 0)
		chk.Float64(tst, "Mz at J", 1e-15, q[11], 0)
	}

	// general position
	o.ZeroLoad()
	err = o.AddLoad(&ele.PointLoad{Py: P, AoverL: 0.25}, 2)
	require.NoError(tst, err)
	q = o.FixedEndForces()
	a, b, L := 1.0, 3.0, 4.0
	chk.Float64(tst, "Vy at I", 1e-15, q[1], -2*P*b/L)
	chk.Float64(tst, "Vy at J", 1e-15, q[7], -2*P*a/L)
	chk.Float64(tst, "Mz at I", 1e-14, q[5], -2*P*a*b*b/(L*L))
	chk.Float64(tst, "Mz at J", 1e-14, q[11], 2*P*a*a*b/(L*L))

	// out of range => rejected; nothing added
	for _, aOverL := range []float64{-0.1, 1.5} {
		err = o.AddLoad(&ele.PointLoad{Py: P, AoverL: aOverL}, 1)
		assert.Error(tst, err)
	}
	assert.InDeltaSlice(tst, q, o.FixedEndForces(), 1e-17)

	// unknown load type => rejected; other loads still applied
	err = o.AddLoad(badLoad{}, 1)
	assert.Error(tst, err)
	err = o.AddLoad(&ele.UniformLoad{Wy: 1}, 1)
	require.NoError(tst, err)
	chk.Float64(tst, "Vy at I", 1e-15, o.FixedEndForces()[1], q[1]-2)

	// element without geometry
	crd, _ := transf.New(transf.KindLinear, 1, []float64{0, 0, 1})
	s, err := NewTimoshenkoBeam(2, []int{1, 2}, props01(), crd, Options{})
	require.NoError(tst, err)
	assert.Error(tst, s.AddLoad(&ele.UniformLoad{Wy: 1}, 1))
}

func Test_timobeamload03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("timobeamload03. inertia and damping")

	// no mass => no inertia loads
	o, dom := newBeamX(tst, transf.KindLinear, Options{})
	err := o.AddInertiaLoadToUnbalance([]float64{1, 0, 0, 0, 0, 0})
	require.NoError(tst, err)
	R, err := o.ResistingForceIncInertia()
	require.NoError(tst, err)
	assert.Equal(tst, 0.0, mat.Norm(R, 1))

	// lumped mass
	ρ := 2.0
	o, dom = newBeamX(tst, transf.KindLinear, Options{Rho: ρ})
	err = o.AddInertiaLoadToUnbalance([]float64{1, 0, 0, 0, 0, 0})
	require.NoError(tst, err)
	R, err = o.ResistingForce()
	require.NoError(tst, err)
	chk.Float64(tst, "R[0]", 1e-15, R.AtVec(0), ρ*4/2)
	chk.Float64(tst, "R[6]", 1e-15, R.AtVec(6), ρ*4/2)

	// the inertia load is subtracted again when inertia forces are included
	R, err = o.ResistingForceIncInertia()
	require.NoError(tst, err)
	chk.Float64(tst, "R[0]", 1e-15, R.AtVec(0), 2*ρ*4/2)
	chk.Float64(tst, "R[6]", 1e-15, R.AtVec(6), 2*ρ*4/2)
	chk.Float64(tst, "R[1]", 1e-15, R.AtVec(1), 0)

	// inertia forces
	o.ZeroLoad()
	dom[1].a[1] = 3
	dom[2].a[1] = 3
	R, err = o.ResistingForceIncInertia()
	require.NoError(tst, err)
	chk.Float64(tst, "M·a at I", 1e-15, R.AtVec(1), ρ*4/2*3)
	chk.Float64(tst, "M·a at J", 1e-15, R.AtVec(7), ρ*4/2*3)

	// invalid acceleration
	assert.Error(tst, o.AddInertiaLoadToUnbalance([]float64{1, 0}))

	// mass-proportional damping
	dom[1].a[1], dom[2].a[1] = 0, 0
	o.Damp = ele.Rayleigh{AlphaM: 0.1}
	dom[1].v[2] = 5
	R, err = o.ResistingForceIncInertia()
	require.NoError(tst, err)
	chk.Float64(tst, "αM·M·v", 1e-15, R.AtVec(2), 0.1*ρ*2*5)

	// stiffness-proportional damping with committed tangent
	o.Damp = ele.Rayleigh{BetaKc: 0.01}
	R, err = o.ResistingForceIncInertia()
	require.NoError(tst, err)
	chk.Float64(tst, "no committed tangent yet", 1e-15, R.AtVec(2), 0)
	require.NoError(tst, o.CommitState())
	require.NotNil(tst, o.Kc)
	R, err = o.ResistingForceIncInertia()
	require.NoError(tst, err)
	chk.Float64(tst, "βKc·Kc·v", 1e-15, R.AtVec(2), 0.01*o.Kl.At(2, 2)*5)
	require.NoError(tst, o.RevertToStart())
	assert.Nil(tst, o.Kc)

	// initial-stiffness damping
	o.Damp = ele.Rayleigh{BetaK0: 0.01, BetaK: 0.02}
	R, err = o.ResistingForceIncInertia()
	require.NoError(tst, err)
	chk.Float64(tst, "βK0·K0·v + βK·K·v", 1e-15, R.AtVec(8), 0.03*o.Kl.At(8, 2)*5)
}

func Test_timobeamload04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("timobeamload04. section forces")

	o, dom := newBeamX(tst, transf.KindLinear, Options{})
	_, err := o.SectionForces(0.5)
	assert.Error(tst, err) // recovery is not enabled
	o.EnableForceRecovery(5)

	// fixed-fixed beam with uniform load
	wy, L := 3.0, 4.0
	require.NoError(tst, o.AddLoad(&ele.UniformLoad{Wy: wy}, 1))
	sp, err := o.SectionForces(0)
	require.NoError(tst, err)
	io.Pforan("sp(0) = %v\n", sp)
	chk.Float64(tst, "Vy(0)", 1e-14, sp[1], wy*L/2)
	chk.Float64(tst, "Mz(0)", 1e-14, sp[5], wy*L*L/12)
	sp, err = o.SectionForces(0.5)
	require.NoError(tst, err)
	chk.Float64(tst, "Vy(L/2)", 1e-14, sp[1], 0)
	chk.Float64(tst, "Mz(L/2)", 1e-14, sp[5], -wy*L*L/24)
	sp, err = o.SectionForces(1)
	require.NoError(tst, err)
	chk.Float64(tst, "Vy(L)", 1e-14, sp[1], -wy*L/2)
	chk.Float64(tst, "Mz(L)", 1e-14, sp[5], wy*L*L/12)

	// out of range
	_, err = o.SectionForces(1.1)
	assert.Error(tst, err)

	// point load: shear jumps at the load
	o.ZeroLoad()
	assert.Len(tst, o.Recovery.Loads, 0)
	require.NoError(tst, o.AddLoad(&ele.PointLoad{Py: 10, AoverL: 0.5}, 1))
	spa, err := o.SectionForces(0.49)
	require.NoError(tst, err)
	spb, err := o.SectionForces(0.51)
	require.NoError(tst, err)
	chk.Float64(tst, "ΔVy", 1e-13, spa[1]-spb[1], 10)

	// axial force from displacements
	o.ZeroLoad()
	dom[2].u[0] = 1e-3
	sp, err = o.SectionForces(0.3)
	require.NoError(tst, err)
	chk.Float64(tst, "N", 1e-14, sp[0], 0.5)

	// stations
	M := ele.NewIpsMap()
	require.NoError(tst, o.OutIpVals(M))
	assert.Equal(tst, SectionKeys, o.OutIpKeys())
	C := o.OutIpCoords()
	require.Len(tst, C, 5)
	chk.Float64(tst, "x of station 1", 1e-15, C[1][0], 1)
	assert.Len(tst, (*M)["N"], 5)
	chk.Float64(tst, "N at station 4", 1e-14, M.Get("N", 4), 0.5)

	// response keys
	res, err := o.Response("internalForce", 0.3)
	require.NoError(tst, err)
	assert.InDeltaSlice(tst, sp, res, 1e-15)
	res, err = o.Response("localForce")
	require.NoError(tst, err)
	chk.Float64(tst, "N at J", 1e-14, res[6], 0.5)
	res, err = o.Response("globalForce")
	require.NoError(tst, err)
	chk.Float64(tst, "Fx at I", 1e-14, res[0], -0.5)
	_, err = o.Response("internalForce")
	assert.Error(tst, err)
	_, err = o.Response("stresses")
	assert.Error(tst, err)

	// element implements output at stations
	var e ele.Element = o
	_, ok := e.(ele.CanOutputIps)
	assert.True(tst, ok)
}

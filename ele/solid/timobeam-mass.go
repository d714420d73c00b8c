// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/civil-soft-science/OpenSees.NET/ele"
	"gonum.org/v1/gonum/mat"
)

// buildMass computes the mass matrix in global system
//  lumped:     ½·ρ·L on the translations of each node; no rotational inertia
//  consistent: trans(T) * (Mtrn + Mrot) * T with Timoshenko shape functions
func (o *TimoshenkoBeam) buildMass() {
	o.M.Zero()
	if o.Rho <= 0 {
		return
	}

	// lumped mass matrix
	if !o.CMass {
		m := 0.5 * o.Rho * o.L
		for i := 0; i < 3; i++ {
			o.M.SetSym(i, i, m)
			o.M.SetSym(i+6, i+6, m)
		}
		return
	}

	// consistent mass matrix: translational inertia
	L := o.L
	mtrn := mat.NewSymDense(o.Nu, nil)
	c1x := o.Rho * L / 210.0
	mtrn.SetSym(0, 0, 70.0*c1x)
	mtrn.SetSym(6, 6, 70.0*c1x)
	mtrn.SetSym(0, 6, 35.0*c1x)
	c2x := o.Rho / o.A * o.J * L / 210.0
	mtrn.SetSym(3, 3, 70.0*c2x)
	mtrn.SetSym(9, 9, 70.0*c2x)
	mtrn.SetSym(3, 9, 35.0*c2x)
	c1y := c1x / ((1.0 + o.PhiY) * (1.0 + o.PhiY))
	c1z := c1x / ((1.0 + o.PhiZ) * (1.0 + o.PhiZ))
	bendingMassTrn(mtrn, 2, 4, 8, 10, c1y, o.PhiY, L, -1)
	bendingMassTrn(mtrn, 1, 5, 7, 11, c1z, o.PhiZ, L, +1)

	// rotational inertia
	mrot := mat.NewSymDense(o.Nu, nil)
	c2y := o.Rho / o.A * o.Iy / (30.0 * L * (1.0 + o.PhiY) * (1.0 + o.PhiY))
	c2z := o.Rho / o.A * o.Iz / (30.0 * L * (1.0 + o.PhiZ) * (1.0 + o.PhiZ))
	bendingMassRot(mrot, 2, 4, 8, 10, c2y, o.PhiY, L, -1)
	bendingMassRot(mrot, 1, 5, 7, 11, c2z, o.PhiZ, L, +1)

	// transform from local to global system
	mtrn.AddSym(mtrn, mrot)
	ele.TrMulSym(o.M, o.T, mtrn, o.wm)
}

// bendingMassTrn sets the translational-inertia terms of one bending plane with c1 = ρ·L/(210(1+φ)²)
//  see bendingStiff for the meaning of t1, r1, t2, r2 and s
func bendingMassTrn(m *mat.SymDense, t1, r1, t2, r2 int, c1, φ, L, s float64) {
	φφ := φ * φ
	mtt := c1 * (70.0*φφ + 147.0*φ + 78.0)
	m.SetSym(t1, t1, mtt)
	m.SetSym(t2, t2, mtt)
	m.SetSym(t1, t2, c1*(35.0*φφ+63.0*φ+27.0))
	mrr := c1 * L * L / 4.0 * (7.0*φφ + 14.0*φ + 8.0)
	m.SetSym(r1, r1, mrr)
	m.SetSym(r2, r2, mrr)
	m.SetSym(r1, r2, -c1*L*L/4.0*(7.0*φφ+14.0*φ+6.0))
	near := s * c1 * L / 4.0 * (35.0*φφ + 77.0*φ + 44.0)
	m.SetSym(t1, r1, near)
	m.SetSym(t2, r2, -near)
	far := -s * c1 * L / 4.0 * (35.0*φφ + 63.0*φ + 26.0)
	m.SetSym(t1, r2, far)
	m.SetSym(r1, t2, -far)
}

// bendingMassRot sets the rotational-inertia terms of one bending plane with c2 = ρ/A·I/(30·L·(1+φ)²)
//  see bendingStiff for the meaning of t1, r1, t2, r2 and s
func bendingMassRot(m *mat.SymDense, t1, r1, t2, r2 int, c2, φ, L, s float64) {
	φφ := φ * φ
	m.SetSym(t1, t1, 36.0*c2)
	m.SetSym(t2, t2, 36.0*c2)
	m.SetSym(t1, t2, -36.0*c2)
	mrr := c2 * L * L * (10.0*φφ + 5.0*φ + 4.0)
	m.SetSym(r1, r1, mrr)
	m.SetSym(r2, r2, mrr)
	m.SetSym(r1, r2, c2*L*L*(5.0*φφ-5.0*φ-1.0))
	mtr := -s * c2 * L * (15.0*φ - 3.0)
	m.SetSym(t1, r1, mtr)
	m.SetSym(t1, r2, mtr)
	m.SetSym(r1, t2, -mtr)
	m.SetSym(t2, r2, -mtr)
}

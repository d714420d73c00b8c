// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "gonum.org/v1/gonum/mat"

// shearRatio returns φ = 12·E·I/(L²·G·Av), the ratio of bending to shear stiffness.
// A zero Av is replaced by A; a zero shear rigidity gives φ = 0 (no shear deformation)
func shearRatio(E, I, L, G, Av, A float64) float64 {
	if Av == 0 {
		Av = A
	}
	if G*Av == 0 {
		return 0
	}
	return 12.0 * E * I / (L * L * G * Av)
}

// buildTransform computes the global-to-local transformation matrix
//  each 3x3 block holds the local axes as rows
func (o *TimoshenkoBeam) buildTransform() {
	x, y, z := o.Crd.LocalAxes()
	o.T.Zero()
	for k := 0; k < 4; k++ {
		for j := 0; j < 3; j++ {
			o.T.Set(3*k+0, 3*k+j, x[j])
			o.T.Set(3*k+1, 3*k+j, y[j])
			o.T.Set(3*k+2, 3*k+j, z[j])
		}
	}
}

// buildStiffness computes the local elastic stiffness
//  dofs of bending planes:
//   x-z plane (about y): uz = 2, ry = 4 at I and 8, 10 at J
//   x-y plane (about z): uy = 1, rz = 5 at I and 7, 11 at J
func (o *TimoshenkoBeam) buildStiffness() {
	k := o.Kl
	k.Zero()
	L := o.L

	// axial
	ka := o.E * o.A / L
	k.SetSym(0, 0, ka)
	k.SetSym(6, 6, ka)
	k.SetSym(0, 6, -ka)

	// torsion
	kt := o.G * o.J / L
	k.SetSym(3, 3, kt)
	k.SetSym(9, 9, kt)
	k.SetSym(3, 9, -kt)

	// bending
	a1y := o.E * o.Iy / (L * L * L * (1.0 + o.PhiY))
	a1z := o.E * o.Iz / (L * L * L * (1.0 + o.PhiZ))
	bendingStiff(k, 2, 4, 8, 10, a1y, o.PhiY, L, -1)
	bendingStiff(k, 1, 5, 7, 11, a1z, o.PhiZ, L, +1)
}

// buildGeometric computes the local geometric stiffness (template for a unit axial force)
func (o *TimoshenkoBeam) buildGeometric() {
	o.Klgeo.Zero()
	if !o.GeomNl {
		return
	}
	geometricStiff(o.Klgeo, 2, 4, 8, 10, o.PhiY, o.L, -1)
	geometricStiff(o.Klgeo, 1, 5, 7, 11, o.PhiZ, o.L, +1)
}

// bendingStiff sets the terms of one bending plane with a1 = E·I/(L³(1+φ))
//  t1, r1 -- translation and rotation dofs at I
//  t2, r2 -- translation and rotation dofs at J
//  s      -- sign of the shear-moment coupling at I: -1 for the x-z plane; +1 for the x-y plane
func bendingStiff(k *mat.SymDense, t1, r1, t2, r2 int, a1, φ, L, s float64) {
	ktt := 12.0 * a1
	k.SetSym(t1, t1, ktt)
	k.SetSym(t2, t2, ktt)
	k.SetSym(t1, t2, -ktt)
	krr := a1 * L * L * (4.0 + φ)
	k.SetSym(r1, r1, krr)
	k.SetSym(r2, r2, krr)
	k.SetSym(r1, r2, a1*L*L*(2.0-φ))
	ktr := s * 6.0 * L * a1
	k.SetSym(t1, r1, ktr)
	k.SetSym(t1, r2, ktr)
	k.SetSym(r1, t2, -ktr)
	k.SetSym(t2, r2, -ktr)
}

// geometricStiff sets the terms of one bending plane with b1 = 1/(30·L·(1+φ)²)
//  see bendingStiff for the meaning of t1, r1, t2, r2 and s
func geometricStiff(k *mat.SymDense, t1, r1, t2, r2 int, φ, L, s float64) {
	b1 := 1.0 / (30.0 * L * (1.0 + φ) * (1.0 + φ))
	φφ := φ * φ
	ktt := b1 * (30.0*φφ + 60.0*φ + 36.0)
	k.SetSym(t1, t1, ktt)
	k.SetSym(t2, t2, ktt)
	k.SetSym(t1, t2, -ktt)
	krr := b1 * L * L * (2.5*φφ + 5.0*φ + 4.0)
	k.SetSym(r1, r1, krr)
	k.SetSym(r2, r2, krr)
	k.SetSym(r1, r2, -b1*L*L*(2.5*φφ+5.0*φ+1.0))
	ktr := s * 3.0 * L * b1
	k.SetSym(t1, r1, ktr)
	k.SetSym(t1, r2, ktr)
	k.SetSym(r1, t2, -ktr)
	k.SetSym(t2, r2, -ktr)
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/cpmech/gosl/chk"
)

// LoadRecord holds the data of an applied element load (already multiplied by the load factor)
type LoadRecord struct {
	Type ele.LoadType `json:"type"` // uniform or point
	Data []float64    `json:"data"` // [wy, wz, wx] or [Py, Pz, N, a/L]
}

// ForceRecovery records the loads applied to an element in order to compute section forces
// at any point along the span from the end forces and the statics of the loads
type ForceRecovery struct {
	Nsta  int          // number of stations for output; e.g. diagrams
	Loads []LoadRecord // loads applied in the current stage
}

// SectionKeys holds the keys of section forces
var SectionKeys = []string{"N", "Vy", "Vz", "T", "My", "Mz"}

// Record records a new load
func (o *ForceRecovery) Record(typ ele.LoadType, data []float64) {
	o.Loads = append(o.Loads, LoadRecord{typ, append([]float64{}, data...)})
}

// Clear removes all loads
func (o *ForceRecovery) Clear() {
	o.Loads = o.Loads[:0]
}

// compute computes section forces at distance x from node I
//  sp -- [6] section forces: N, Vy, Vz, T, My, Mz
//  qJ -- [6] local forces at node J
func (o *ForceRecovery) compute(sp, qJ []float64, x, L float64) {
	d := L - x
	sp[0] = qJ[0]
	sp[1] = qJ[1]
	sp[2] = qJ[2]
	sp[3] = qJ[3]
	sp[4] = qJ[4] - d*qJ[2]
	sp[5] = qJ[5] + d*qJ[1]
	for _, load := range o.Loads {
		switch load.Type {
		case ele.LoadUniform:
			wy, wz, wa := load.Data[0], load.Data[1], load.Data[2]
			sp[0] += wa * d
			sp[1] += wy * d
			sp[2] += wz * d
			sp[4] -= wz * 0.5 * d * d
			sp[5] += wy * 0.5 * d * d
		case ele.LoadPoint:
			Py, Pz, N, aOverL := load.Data[0], load.Data[1], load.Data[2], load.Data[3]
			if aOverL < 0 || aOverL > 1 {
				continue
			}
			a := aOverL * L
			if x <= a {
				sp[0] += N
				sp[1] += Py
				sp[2] += Pz
				sp[4] -= Pz * (a - x)
				sp[5] += Py * (a - x)
			}
		}
	}
}

// EnableForceRecovery attaches a force recovery to the element
//  nsta -- number of stations for output; use 0 for the default (11)
func (o *TimoshenkoBeam) EnableForceRecovery(nsta int) {
	if nsta < 2 {
		nsta = 11
	}
	o.Recovery = &ForceRecovery{Nsta: nsta}
}

// SectionForces returns the section forces [N, Vy, Vz, T, My, Mz] at x = xi·L
func (o *TimoshenkoBeam) SectionForces(xi float64) (sp []float64, err error) {
	if o.Recovery == nil {
		return nil, chk.Err("timobeam3d %d: force recovery is not enabled", o.Tag)
	}
	if xi < 0 || xi > 1 {
		return nil, chk.Err("timobeam3d %d: section location xi=%g must be in [0, 1]", o.Tag, xi)
	}
	_, err = o.ResistingForce()
	if err != nil {
		return
	}
	qJ := make([]float64, 6)
	for i := 0; i < 6; i++ {
		qJ[i] = o.ql.AtVec(6 + i)
	}
	sp = make([]float64, 6)
	o.Recovery.compute(sp, qJ, xi*o.L, o.L)
	return
}

// OutIpCoords returns the coordinates of stations along the element
func (o *TimoshenkoBeam) OutIpCoords() (C [][]float64) {
	if o.Recovery == nil || !o.ready {
		return
	}
	n := o.Recovery.Nsta
	xa, xb := o.nodes[0].X(), o.nodes[1].X()
	C = make([][]float64, n)
	dξ := 1.0 / float64(n-1)
	for i := 0; i < n; i++ {
		ξ := float64(i) * dξ
		C[i] = make([]float64, 3)
		for j := 0; j < 3; j++ {
			C[i][j] = (1.0-ξ)*xa[j] + ξ*xb[j]
		}
	}
	return
}

// OutIpKeys returns the keys of section forces
func (o *TimoshenkoBeam) OutIpKeys() []string {
	if o.Recovery == nil {
		return nil
	}
	return SectionKeys
}

// OutIpVals computes section forces at stations
func (o *TimoshenkoBeam) OutIpVals(M *ele.IpsMap) (err error) {
	if o.Recovery == nil {
		return chk.Err("timobeam3d %d: force recovery is not enabled", o.Tag)
	}
	n := o.Recovery.Nsta
	dξ := 1.0 / float64(n-1)
	for i := 0; i < n; i++ {
		ξ := float64(i) * dξ
		if i == n-1 {
			ξ = 1
		}
		sp, err := o.SectionForces(ξ)
		if err != nil {
			return err
		}
		for k, key := range SectionKeys {
			M.Set(key, i, n, sp[k])
		}
	}
	return
}

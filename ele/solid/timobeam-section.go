// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/civil-soft-science/OpenSees.NET/mdl/sld"
	"github.com/cpmech/gosl/chk"
)

// ResolveSection derives the section properties from the diagonal of the initial tangent of a section
//  A = k_P/E, Iz = k_Mz/E, Iy = k_My/E, Avy = k_Vy/G, Avz = k_Vz/G, J = k_T/G
//  Note: E and G default to 1 if they cannot be obtained from the section or are zero.
//        Shear areas that are not found default to A.
func ResolveSection(sec sld.Section) (p Props, err error) {
	if sec == nil {
		return p, chk.Err("section is not available")
	}
	p.E = modulus(sec, sld.Axial, "E")
	p.G = modulus(sec, sld.Torsion, "G")
	k := sec.InitialTangent()
	codes := sec.Codes()
	if len(k) != len(codes) {
		return p, chk.Err("section tangent has %d rows but there are %d codes", len(k), len(codes))
	}
	for i, q := range codes {
		switch q {
		case sld.Axial:
			p.A = k[i][i] / p.E
		case sld.BendZ:
			p.Iz = k[i][i] / p.E
		case sld.BendY:
			p.Iy = k[i][i] / p.E
		case sld.ShearY:
			p.Avy = k[i][i] / p.G
		case sld.ShearZ:
			p.Avz = k[i][i] / p.G
		case sld.Torsion:
			p.J = k[i][i] / p.G
		}
	}
	if p.Avy == 0 {
		p.Avy = p.A
	}
	if p.Avz == 0 {
		p.Avz = p.A
	}
	return
}

// modulus returns the modulus of the section associated with q; 1 if not available
func modulus(sec sld.Section, q sld.Quantity, name string) float64 {
	val, ok := sec.Modulus(q)
	if !ok || val == 0 {
		ele.Warn("%s from section is not available or zero; using %s = 1", name, name)
		return 1.0
	}
	return val
}

// propsFromPrms returns the section properties given explicitly in the element data
func propsFromPrms(prms inp.Prms) (p Props, err error) {
	err = prms.Need("E", "G", "A", "J", "Iy", "Iz")
	if err != nil {
		return
	}
	p = Props{
		E:   prms["E"],
		G:   prms["G"],
		A:   prms["A"],
		J:   prms["J"],
		Iy:  prms["Iy"],
		Iz:  prms["Iz"],
		Avy: prms.Get("Avy", 0),
		Avz: prms.Get("Avz", 0),
	}
	return
}

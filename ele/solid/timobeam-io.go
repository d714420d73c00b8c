// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"bytes"
	"encoding/json"
	goio "io"

	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/civil-soft-science/OpenSees.NET/ele/transf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// beamData holds the data required to rebuild an element
type beamData struct {
	Tag        int          `json:"tag"`
	Nodes      []int        `json:"nodes"`
	Props      Props        `json:"props"`
	Rho        float64      `json:"rho"`
	CMass      bool         `json:"cmass"`
	Damp       ele.Rayleigh `json:"damping"`
	TransfKind string       `json:"transfKind"`
	GeomNl     string       `json:"geomNl,omitempty"` // "true" or "false"; empty => from TransfKind
	TransfTag  int          `json:"transfTag"`
	Vecxz      []float64    `json:"vecxz"`
	Recovery   bool         `json:"recovery"`
	Nsta       int          `json:"nsta"`
	Loads      []LoadRecord `json:"loads"`
	Ql0        []float64    `json:"ql0"`
}

// Encode encodes element data
func (o *TimoshenkoBeam) Encode(enc ele.Encoder) (err error) {
	d := beamData{
		Tag:        o.Tag,
		Nodes:      o.Conn,
		Props:      o.GetProps(),
		Rho:        o.Rho,
		CMass:      o.CMass,
		Damp:       o.Damp,
		TransfKind: o.Crd.Kind(),
		TransfTag:  o.Crd.Tag(),
		Vecxz:      o.Crd.Vecxz(),
		GeomNl:     io.Sf("%v", o.GeomNl),
		Ql0:        o.FixedEndForces(),
	}
	if o.Recovery != nil {
		d.Recovery = true
		d.Nsta = o.Recovery.Nsta
		d.Loads = o.Recovery.Loads
	}
	err = enc.Encode(&d)
	if err != nil {
		return chk.Err("timobeam3d %d: cannot encode data:\n%v", o.Tag, err)
	}
	return
}

// Decode decodes element data. The coordinate transformation is rebuilt from its kind.
// P-Delta effects are restored from the encoded flag; without it, they are enabled for
// PDelta and Corotational transformations.
// Fixed-end forces are restored; inertia loads are not. SetDomain must be called afterwards.
func (o *TimoshenkoBeam) Decode(dec ele.Decoder) (err error) {
	var d beamData
	err = dec.Decode(&d)
	if err != nil {
		return chk.Err("cannot decode timobeam3d data:\n%v", err)
	}
	if len(d.Nodes) != 2 {
		return chk.Err("timobeam3d %d: 2 nodes are required; %v is invalid", d.Tag, d.Nodes)
	}
	crd, err := transf.New(d.TransfKind, d.TransfTag, d.Vecxz)
	if err != nil {
		return chk.Err("timobeam3d %d: cannot rebuild coordinate transformation:\n%v", d.Tag, err)
	}
	switch d.TransfKind {
	case transf.KindLinear:
		o.GeomNl = false
	case transf.KindPDelta:
		o.GeomNl = true
	case transf.KindCorot:
		o.GeomNl = true
		ele.Warn("timobeam3d %d: Corotational transformation is not supported; using PDelta instead", d.Tag)
	}
	if d.GeomNl != "" {
		o.GeomNl = d.GeomNl == "true"
	}
	o.Tag = d.Tag
	o.Conn = []int{d.Nodes[0], d.Nodes[1]}
	o.SetProps(d.Props)
	o.Rho, o.CMass, o.Damp = d.Rho, d.CMass, d.Damp
	o.Crd = crd
	o.Recovery = nil
	if d.Recovery {
		o.EnableForceRecovery(d.Nsta)
		for _, l := range d.Loads {
			if (l.Type == ele.LoadUniform && len(l.Data) < 3) || (l.Type == ele.LoadPoint && len(l.Data) < 4) {
				return chk.Err("timobeam3d %d: recorded %v load has invalid data %v", d.Tag, l.Type, l.Data)
			}
			o.Recovery.Record(l.Type, l.Data)
		}
	}
	if o.T == nil {
		o.alloc()
	}
	o.detach()
	o.ql0.Zero()
	o.load.Zero()
	if len(d.Ql0) == o.Nu {
		for i, v := range d.Ql0 {
			o.ql0.SetVec(i, v)
		}
	}
	return
}

// String returns a summary of the element
func (o *TimoshenkoBeam) String() string {
	var b bytes.Buffer
	io.Ff(&b, "Element: %d  type: ElasticTimoshenkoBeam3d  iNode: %d  jNode: %d\n", o.Tag, o.Conn[0], o.Conn[1])
	io.Ff(&b, "  E: %g  G: %g\n", o.E, o.G)
	io.Ff(&b, "  A: %g  Jx: %g  Iy: %g  Iz: %g  Avy: %g  Avz: %g\n", o.A, o.J, o.Iy, o.Iz, o.Avy, o.Avz)
	io.Ff(&b, "  coordTransf: %s\n", o.Crd.Kind())
	mass := "lumped"
	if o.CMass {
		mass = "consistent"
	}
	io.Ff(&b, "  rho: %g  mass: %s", o.Rho, mass)
	return b.String()
}

// PrintJSON writes the model data of the element in JSON format
func (o *TimoshenkoBeam) PrintJSON(w goio.Writer) (err error) {
	d := struct {
		Name   int     `json:"name"`
		Type   string  `json:"type"`
		Nodes  []int   `json:"nodes"`
		E      float64 `json:"E"`
		G      float64 `json:"G"`
		A      float64 `json:"A"`
		Avy    float64 `json:"Avy"`
		Avz    float64 `json:"Avz"`
		Jx     float64 `json:"Jx"`
		Iy     float64 `json:"Iy"`
		Iz     float64 `json:"Iz"`
		Rho    float64 `json:"massperlength"`
		Transf string  `json:"crdTransformation"`
	}{o.Tag, "ElasticTimoshenkoBeam3d", o.Conn, o.E, o.G, o.A, o.Avy, o.Avz, o.J, o.Iy, o.Iz, o.Rho, io.Sf("%d", o.Crd.Tag())}
	b, err := json.Marshal(&d)
	if err != nil {
		return
	}
	_, err = w.Write(b)
	return
}

// Response returns results by key
//  "force", "globalForce"  -- resisting forces in global system
//  "localForce"            -- forces in local system
//  "internalForce" xi      -- section forces at xi = x/L; requires force recovery
func (o *TimoshenkoBeam) Response(key string, args ...float64) (res []float64, err error) {
	switch key {
	case "force", "forces", "globalForce", "globalForces":
		return o.GlobalForce()
	case "localForce", "localForces":
		return o.LocalForce()
	case "internalForce", "InternalForce":
		if len(args) < 1 {
			return nil, chk.Err("timobeam3d %d: internalForce requires the section location xi", o.Tag)
		}
		return o.SectionForces(args[0])
	}
	return nil, chk.Err("timobeam3d %d: response %q is not available", o.Tag, key)
}

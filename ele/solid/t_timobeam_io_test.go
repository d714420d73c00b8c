// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/civil-soft-science/OpenSees.NET/ele/transf"
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/civil-soft-science/OpenSees.NET/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_timobeamio01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("timobeamio01. encode and decode")

	for _, enctype := range []string{"gob", "json"} {

		// element with loads and damping
		o, dom := newBeam(tst, transf.KindPDelta, props01(), Options{Rho: 2, CMass: true, GeomNl: true}, []float64{0, 0, 0}, []float64{1, 2, 3})
		o.Damp = ele.Rayleigh{AlphaM: 0.1, BetaK0: 0.002}
		o.EnableForceRecovery(7)
		require.NoError(tst, o.AddLoad(&ele.UniformLoad{Wy: 2, Wz: -1}, 1))
		require.NoError(tst, o.AddLoad(&ele.PointLoad{Py: 3, AoverL: 0.25}, 1))

		// encode
		var buf bytes.Buffer
		enc := ele.GetEncoder(&buf, enctype)
		require.NoError(tst, o.Encode(enc))
		io.Pforan("%s: %d bytes\n", enctype, buf.Len())

		// decode
		var p TimoshenkoBeam
		dec := ele.GetDecoder(&buf, enctype)
		require.NoError(tst, p.Decode(dec))
		assert.False(tst, p.Ready())
		assert.Equal(tst, o.Tag, p.Tag)
		assert.Equal(tst, o.Conn, p.Conn)
		assert.Equal(tst, o.GetProps(), p.GetProps())
		assert.Equal(tst, o.Damp, p.Damp)
		assert.True(tst, p.CMass)
		assert.True(tst, p.GeomNl)
		assert.Equal(tst, transf.KindPDelta, p.Crd.Kind())
		assert.Equal(tst, []float64{0, 0, 1}, p.Crd.Vecxz())
		require.NotNil(tst, p.Recovery)
		assert.Equal(tst, 7, p.Recovery.Nsta)
		assert.Len(tst, p.Recovery.Loads, 2)
		assert.InDeltaSlice(tst, o.FixedEndForces(), p.FixedEndForces(), 1e-17)

		// same matrices after setting the domain
		require.NoError(tst, p.SetDomain(dom))
		chk.Deep2(tst, "Kl", 1e-17, ele.Rows(p.Kl), ele.Rows(o.Kl))
		chk.Deep2(tst, "T", 1e-17, ele.Rows(p.T), ele.Rows(o.T))
		chk.Deep2(tst, "M", 1e-17, ele.Rows(p.M), ele.Rows(o.M))

		// same section forces
		dom[2].u[1] = 1e-3
		spo, err := o.SectionForces(0.4)
		require.NoError(tst, err)
		spp, err := p.SectionForces(0.4)
		require.NoError(tst, err)
		assert.InDeltaSlice(tst, spo, spp, 1e-15)
	}
}

func Test_timobeamio02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("timobeamio02. decode special cases")

	// corotational => P-Delta
	d := beamData{Tag: 3, Nodes: []int{1, 2}, Props: props01(), TransfKind: transf.KindCorot, TransfTag: 4, Vecxz: []float64{0, 1, 0}}
	b, err := json.Marshal(&d)
	require.NoError(tst, err)
	var o TimoshenkoBeam
	require.NoError(tst, o.Decode(json.NewDecoder(bytes.NewReader(b))))
	assert.True(tst, o.GeomNl)
	assert.Equal(tst, transf.KindCorot, o.Crd.Kind())
	assert.Nil(tst, o.Recovery)

	// linear
	d.TransfKind = transf.KindLinear
	b, _ = json.Marshal(&d)
	require.NoError(tst, o.Decode(json.NewDecoder(bytes.NewReader(b))))
	assert.False(tst, o.GeomNl)

	// encoded flag takes precedence over the transformation kind
	d.GeomNl = "true"
	b, _ = json.Marshal(&d)
	require.NoError(tst, o.Decode(json.NewDecoder(bytes.NewReader(b))))
	assert.True(tst, o.GeomNl)
	assert.Equal(tst, transf.KindLinear, o.Crd.Kind())

	// P-Delta flag survives encoding regardless of the transformation kind
	for _, enctype := range []string{"gob", "json"} {
		for _, kind := range []string{transf.KindLinear, transf.KindPDelta} {
			for _, geomNl := range []bool{true, false} {
				p, _ := newBeamX(tst, kind, Options{GeomNl: geomNl})
				var buf bytes.Buffer
				require.NoError(tst, p.Encode(ele.GetEncoder(&buf, enctype)))
				var q TimoshenkoBeam
				require.NoError(tst, q.Decode(ele.GetDecoder(&buf, enctype)))
				assert.Equal(tst, geomNl, q.GeomNl, "%s %s", enctype, kind)
			}
		}
	}

	// invalid data
	for _, bad := range []beamData{
		{Tag: 1, Nodes: []int{1}, TransfKind: transf.KindLinear, Vecxz: []float64{0, 0, 1}},
		{Tag: 1, Nodes: []int{1, 2}, TransfKind: "Rigid", Vecxz: []float64{0, 0, 1}},
		{Tag: 1, Nodes: []int{1, 2}, TransfKind: transf.KindLinear, Vecxz: []float64{0, 0}},
		{Tag: 1, Nodes: []int{1, 2}, TransfKind: transf.KindLinear, Vecxz: []float64{0, 0, 1}, Recovery: true,
			Loads: []LoadRecord{{ele.LoadPoint, []float64{1, 2}}}},
	} {
		b, _ = json.Marshal(&bad)
		assert.Error(tst, o.Decode(json.NewDecoder(bytes.NewReader(b))))
	}
	assert.Error(tst, o.Decode(json.NewDecoder(strings.NewReader("{"))))
}

func Test_timobeamio03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("timobeamio03. printing")

	o, _ := newBeamX(tst, transf.KindLinear, Options{Rho: 1.5})

	// summary
	s := o.String()
	io.Pforan("%s\n", s)
	assert.Contains(tst, s, "Element: 1")
	assert.Contains(tst, s, "ElasticTimoshenkoBeam3d")
	assert.Contains(tst, s, "coordTransf: Linear")
	assert.Contains(tst, s, "mass: lumped")

	// json
	var buf bytes.Buffer
	require.NoError(tst, o.PrintJSON(&buf))
	io.Pforan("%s\n", buf.String())
	var res map[string]interface{}
	require.NoError(tst, json.Unmarshal(buf.Bytes(), &res))
	for _, key := range []string{"name", "type", "nodes", "E", "G", "A", "Avy", "Avz", "Jx", "Iy", "Iz", "massperlength", "crdTransformation"} {
		assert.Contains(tst, res, key)
	}
	assert.Equal(tst, "ElasticTimoshenkoBeam3d", res["type"])
	assert.Equal(tst, "1", res["crdTransformation"])
	assert.Equal(tst, 1.5, res["massperlength"])
	assert.Equal(tst, 1e-5, res["Jx"])
}

func Test_timobeamio04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("timobeamio04. allocation from input data")

	// info
	edat := &inp.ElemData{
		Tag:      5,
		Type:     "timobeam3d",
		Nodes:    []int{1, 2},
		Transf:   1,
		Prms:     inp.Prms{"E": 200000, "G": 77000, "A": 0.01, "J": 1e-5, "Iy": 8e-6, "Iz": 8e-6},
		Rho:      2,
		Recovery: true,
		Damping:  &inp.DampingData{AlphaM: 0.3},
	}
	info, err := ele.GetInfo(edat)
	require.NoError(tst, err)
	assert.Equal(tst, []string{"ux", "uy", "uz", "rx", "ry", "rz"}, info.Ykeys(0))
	assert.Equal(tst, []string{"fx", "fy", "fz", "mx", "my", "mz"}, info.Fkeys(1))

	// explicit properties; shear areas default to A
	crd, err := transf.New(transf.KindLinear, 1, []float64{0, 0, 1})
	require.NoError(tst, err)
	e, err := ele.New(edat, nil, crd)
	require.NoError(tst, err)
	o := e.(*TimoshenkoBeam)
	assert.Equal(tst, 5, o.Id())
	assert.Equal(tst, 0.3, o.Damp.AlphaM)
	assert.NotNil(tst, o.Recovery)
	dom := testDomain{1: newTestNode(1, 0, 0, 0), 2: newTestNode(2, 4, 0, 0)}
	require.NoError(tst, o.SetDomain(dom))
	chk.Float64(tst, "phiZ", 1e-15, o.PhiZ, 12*200000*8e-6/(16*77000*0.01))

	// missing properties
	edat.Prms = inp.Prms{"E": 200000}
	_, err = ele.New(edat, nil, crd)
	assert.Error(tst, err)

	// section
	sec, err := sld.Alloc("elastic3d", inp.Prms{"E": 200000, "G": 77000, "A": 0.01, "J": 1e-5, "Iy": 8e-6, "Iz": 8e-6})
	require.NoError(tst, err)
	e, err = ele.New(edat, sec, crd)
	require.NoError(tst, err)
	chk.Float64(tst, "A", 1e-17, e.(*TimoshenkoBeam).A, 0.01)

	// unknown element
	_, err = ele.New(&inp.ElemData{Type: "nonexistent"}, nil, crd)
	assert.Error(tst, err)
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/civil-soft-science/OpenSees.NET/ana"
	"github.com/civil-soft-science/OpenSees.NET/fem"
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// simply supported beam with uniform load w = 1 and L = 2 => Mz = x·(L - x)/2
type fakeBeam struct{ recovery bool }

func (o *fakeBeam) Id() int             { return 7 }
func (o *fakeBeam) OutIpKeys() []string { return []string{"Vy", "Mz"} }

func (o *fakeBeam) OutIpCoords() [][]float64 {
	if !o.recovery {
		return nil
	}
	return [][]float64{{1, 1, 0}, {1, 1, 1}, {1, 1, 2}}
}

func (o *fakeBeam) SectionForces(xi float64) (sp []float64, err error) {
	if xi < 0 || xi > 1 {
		return nil, chk.Err("xi=%g is out of range", xi)
	}
	x := 2 * xi
	return []float64{1 - x, x * (2 - x) / 2}, nil
}

func Test_diagram01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagram01. stations")

	e := &fakeBeam{recovery: true}
	d, err := Stations(e, "Mz", 5)
	require.NoError(tst, err)
	assert.Equal(tst, 7, d.Tag)
	chk.Deep2(tst, "xy", 1e-15, [][]float64{d.X, d.Y}, [][]float64{
		{0, 0.5, 1, 1.5, 2},
		{0, 0.375, 0.5, 0.375, 0},
	})
	ymin, xmin, ymax, xmax := d.Extremes()
	chk.Float64(tst, "ymin", 1e-15, ymin, 0)
	chk.Float64(tst, "xmin", 1e-15, xmin, 0)
	chk.Float64(tst, "ymax", 1e-15, ymax, 0.5)
	chk.Float64(tst, "xmax", 1e-15, xmax, 1)
	io.Pf("%s", d.Table())
	assert.Contains(tst, d.Table(), "Mz")

	// stations of the element
	d, err = Stations(e, "Vy", 0)
	require.NoError(tst, err)
	chk.Deep2(tst, "xy", 1e-15, [][]float64{d.X, d.Y}, [][]float64{{0, 1, 2}, {1, 0, -1}})

	// failures
	_, err = Stations(e, "My", 3)
	assert.Error(tst, err)
	_, err = Stations(&fakeBeam{}, "Mz", 3)
	assert.Error(tst, err)
}

func Test_diagram02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagram02. ascii and png")

	d, err := Stations(&fakeBeam{recovery: true}, "Mz", 21)
	require.NoError(tst, err)
	txt := AsciiDiagram(d, 0)
	io.Pf("%s\n", txt)
	assert.Contains(tst, txt, "element 7: Mz(x)")

	fn := filepath.Join(tst.TempDir(), "diagrams", "mz.png")
	require.NoError(tst, SaveDiagram(fn, d))
	info, err := os.Stat(fn)
	require.NoError(tst, err)
	assert.True(tst, info.Size() > 0)
	assert.Error(tst, SaveDiagram(fn))
}

func Test_diagram03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagram03. fixed-fixed beam")

	mdl, err := inp.ReadModel("../fem/data/fixedfixed.yaml")
	require.NoError(tst, err)
	dom, err := fem.NewDomain(mdl, false)
	require.NoError(tst, err)
	require.NoError(tst, dom.SolveStatic(1))

	res, err := Diagrams(dom.Elems, "Mz", 9)
	require.NoError(tst, err)
	require.Len(tst, res, 2)

	// two elements of length 4 with w = -0.002
	_, Mend, Mmid := ana.Beam{L: 8}.FixedFixed(-0.002)
	chk.Float64(tst, "Mz(0)", 1e-12, res[0].Y[0], Mend)
	chk.Float64(tst, "Mz(L/2)", 1e-12, res[0].Y[8], Mmid)
	chk.Float64(tst, "x(L/2)", 1e-15, res[0].X[8], 4)
	chk.Float64(tst, "Mz(L)", 1e-12, res[1].Y[8], Mend)
	io.Pf("%s\n", AsciiDiagram(res[0], 5))
}

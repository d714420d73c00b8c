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
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func init() {
	io.Verbose = false
}

// testNode implements ele.Node
type testNode struct {
	id   int
	ndof int
	x    []float64
	u    []float64
	v    []float64
	a    []float64
}

func newTestNode(id int, x ...float64) *testNode {
	return &testNode{id, 6, x, make([]float64, 6), make([]float64, 6), make([]float64, 6)}
}

func (o *testNode) Id() int               { return o.id }
func (o *testNode) Ndof() int             { return o.ndof }
func (o *testNode) X() []float64          { return o.x }
func (o *testNode) TrialDisp() []float64  { return o.u }
func (o *testNode) TrialVel() []float64   { return o.v }
func (o *testNode) TrialAccel() []float64 { return o.a }

// testDomain implements ele.NodeFinder
type testDomain map[int]*testNode

func (o testDomain) Node(id int) ele.Node {
	if n, ok := o[id]; ok {
		return n
	}
	return nil
}

// props01 returns the properties of the reference beam
func props01() Props {
	return Props{E: 200000, G: 77000, A: 0.01, J: 1e-5, Iy: 8e-6, Iz: 8e-6, Avy: 0.008, Avz: 0.008}
}

// newBeam returns an element connecting nodes 1 and 2 and its domain
func newBeam(tst *testing.T, kind string, p Props, opt Options, xa, xb []float64) (*TimoshenkoBeam, testDomain) {
	crd, err := transf.New(kind, 1, []float64{0, 0, 1})
	if err != nil {
		tst.Fatalf("transf.New failed: %v", err)
	}
	o, err := NewTimoshenkoBeam(1, []int{1, 2}, p, crd, opt)
	if err != nil {
		tst.Fatalf("NewTimoshenkoBeam failed: %v", err)
	}
	dom := testDomain{1: newTestNode(1, xa...), 2: newTestNode(2, xb...)}
	err = o.SetDomain(dom)
	if err != nil {
		tst.Fatalf("SetDomain failed: %v", err)
	}
	return o, dom
}

// newBeamX returns the reference beam along x with length 4
func newBeamX(tst *testing.T, kind string, opt Options) (*TimoshenkoBeam, testDomain) {
	return newBeam(tst, kind, props01(), opt, []float64{0, 0, 0}, []float64{4, 0, 0})
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yaml) structural model file
package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ghodss/yaml"
)

// NodeData holds node data
type NodeData struct {
	Id int       `json:"id"` // node identifier
	X  []float64 `json:"x"`  // [3] coordinates
}

// TransfData holds coordinate transformation data
type TransfData struct {
	Tag   int       `json:"tag"`   // tag of transformation
	Type  string    `json:"type"`  // Linear, PDelta or Corotational
	Vecxz []float64 `json:"vecxz"` // [3] vector in the local x-z plane
}

// SectionData holds cross-section data
type SectionData struct {
	Tag  int    `json:"tag"`  // tag of section
	Type string `json:"type"` // section model name. ex: elastic3d, rectangle
	Prms Prms   `json:"prms"` // parameters. ex: E, G, A, Iz, Iy, J
}

// DampingData holds Rayleigh damping coefficients
type DampingData struct {
	AlphaM float64 `json:"alphaM"` // mass proportional
	BetaK  float64 `json:"betaK"`  // current-tangent proportional
	BetaK0 float64 `json:"betaK0"` // initial-stiffness proportional
	BetaKc float64 `json:"betaKc"` // committed-tangent proportional
}

// ElemData holds element data
type ElemData struct {

	// input data
	Tag     int    `json:"tag"`     // tag of element
	Type    string `json:"type"`    // type of element. ex: timobeam3d
	Nodes   []int  `json:"nodes"`   // connected nodes; [I, J]
	Transf  int    `json:"transf"`  // tag of coordinate transformation
	Section int    `json:"section"` // tag of section; 0 => use Prms
	Prms    Prms   `json:"prms"`    // explicit section properties: E, G, A, J, Iy, Iz, Avy, Avz

	// options
	Rho      float64      `json:"rho"`      // mass per unit length
	CMass    bool         `json:"cmass"`    // consistent mass matrix
	GeomNl   bool         `json:"geomnl"`   // P-Delta geometric stiffness
	Recovery bool         `json:"recovery"` // record loads to recover section forces along the span
	Damping  *DampingData `json:"damping"`  // Rayleigh damping
}

// FixData holds restrained degrees of freedom of a node
type FixData struct {
	Node int   `json:"node"` // node identifier
	Dofs []int `json:"dofs"` // [6] 1 => restrained
}

// NodalLoad holds a load applied at a node
type NodalLoad struct {
	Node   int       `json:"node"`   // node identifier
	Values []float64 `json:"values"` // [6] forces and moments in global system
}

// EleLoad holds a load applied on elements
type EleLoad struct {
	Elems []int   `json:"elems"` // tags of loaded elements
	Type  string  `json:"type"`  // "uniform" or "point"
	Wy    float64 `json:"wy"`    // uniform: transverse load along local y
	Wz    float64 `json:"wz"`    // uniform: transverse load along local z
	Wx    float64 `json:"wx"`    // uniform: axial load
	Py    float64 `json:"py"`    // point: transverse force along local y
	Pz    float64 `json:"pz"`    // point: transverse force along local z
	N     float64 `json:"n"`     // point: axial force
	Xl    float64 `json:"xl"`    // point: position along span as a fraction of the length
}

// Control holds analysis control data
type Control struct {
	Factor float64   `json:"factor"` // load factor
	Dt     float64   `json:"dt"`     // time step for transient analyses
	Nsteps int       `json:"nsteps"` // number of time steps
	Gamma  float64   `json:"gamma"`  // Newmark γ
	Beta   float64   `json:"beta"`   // Newmark β
	Accel  []float64 `json:"accel"`  // [6] uniform ground acceleration applied during transient analyses

	// time histories
	AccelFunc string `json:"accelfunc"` // name of function multiplying Accel; e.g. an earthquake record
	LoadFunc  string `json:"loadfunc"`  // name of function multiplying Factor during transient analyses
}

// Model holds all structural model data
type Model struct {

	// input
	Desc       string         `json:"desc"`       // description of model
	Nodes      []*NodeData    `json:"nodes"`      // nodes
	Transfs    []*TransfData  `json:"transfs"`    // coordinate transformations
	Sections   []*SectionData `json:"sections"`   // cross sections
	Elems      []*ElemData    `json:"elems"`      // elements
	Fixities   []*FixData     `json:"fixities"`   // supports
	NodalLoads []*NodalLoad   `json:"nodalloads"` // nodal loads
	EleLoads   []*EleLoad     `json:"eleloads"`   // element loads
	Functions  FuncsData      `json:"functions"`  // time functions
	Control    Control        `json:"control"`    // analysis control

	// derived
	Key string // model key; e.g. cantilever.yaml => cantilever
}

// SetDefault sets default values
func (o *Control) SetDefault() {
	o.Factor = 1
	o.Gamma = 0.5
	o.Beta = 0.25
}

// ReadModel reads a model from a YAML (or JSON) file
func ReadModel(fn string) (o *Model, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", fn, err)
	}
	o, err = ParseModel(b)
	if err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", fn, err)
	}
	o.Key = io.FnKey(filepath.Base(fn))
	return
}

// ParseModel decodes and checks model data
func ParseModel(b []byte) (o *Model, err error) {
	o = new(Model)
	o.Control.SetDefault()
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}
	err = o.Check()
	return
}

// Check checks the consistency of model data
func (o *Model) Check() (err error) {
	nodes := make(map[int]bool)
	for _, n := range o.Nodes {
		if nodes[n.Id] {
			return chk.Err("node %d is defined twice", n.Id)
		}
		if len(n.X) != 3 {
			return chk.Err("node %d must have 3 coordinates; %d given", n.Id, len(n.X))
		}
		nodes[n.Id] = true
	}
	for _, t := range o.Transfs {
		if len(t.Vecxz) != 3 {
			return chk.Err("transformation %d needs vecxz with 3 components", t.Tag)
		}
	}
	elems := make(map[int]bool)
	for _, e := range o.Elems {
		if elems[e.Tag] {
			return chk.Err("element %d is defined twice", e.Tag)
		}
		elems[e.Tag] = true
		for _, nid := range e.Nodes {
			if !nodes[nid] {
				return chk.Err("element %d: node %d does not exist", e.Tag, nid)
			}
		}
		if o.Transf(e.Transf) == nil {
			return chk.Err("element %d: transformation %d does not exist", e.Tag, e.Transf)
		}
		if e.Section != 0 && o.Section(e.Section) == nil {
			return chk.Err("element %d: section %d does not exist", e.Tag, e.Section)
		}
	}
	for _, f := range o.Fixities {
		if !nodes[f.Node] || len(f.Dofs) != 6 {
			return chk.Err("fixity of node %d must refer to an existing node and have 6 flags", f.Node)
		}
	}
	for _, l := range o.NodalLoads {
		if !nodes[l.Node] || len(l.Values) != 6 {
			return chk.Err("nodal load at node %d must refer to an existing node and have 6 values", l.Node)
		}
	}
	for _, l := range o.EleLoads {
		for _, tag := range l.Elems {
			if !elems[tag] {
				return chk.Err("element load refers to unknown element %d", tag)
			}
		}
	}
	if o.Control.Accel != nil && len(o.Control.Accel) != 6 {
		return chk.Err("ground acceleration must have 6 components")
	}
	if o.Control.AccelFunc != "" && o.Control.Accel == nil {
		return chk.Err("function %q for ground acceleration requires accel", o.Control.AccelFunc)
	}
	for _, name := range []string{o.Control.AccelFunc, o.Control.LoadFunc} {
		if name != "" {
			if _, err = o.Functions.Get(name); err != nil {
				return
			}
		}
	}
	return
}

// Transf returns transformation data or nil
func (o *Model) Transf(tag int) *TransfData {
	for _, t := range o.Transfs {
		if t.Tag == tag {
			return t
		}
	}
	return nil
}

// Section returns section data or nil
func (o *Model) Section(tag int) *SectionData {
	for _, s := range o.Sections {
		if s.Tag == tag {
			return s
		}
	}
	return nil
}

// Elem returns element data or nil
func (o *Model) Elem(tag int) *ElemData {
	for _, e := range o.Elems {
		if e.Tag == tag {
			return e
		}
	}
	return nil
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements elements for solid mechanics problems
package solid

import (
	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/civil-soft-science/OpenSees.NET/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// TimoshenkoBeam represents a 3D elastic beam-column element with shear deformations (Timoshenko)
//
//                 z ^        y (local)
//                   |      ,'
//                   |    ,'
//                   |  ,'        Props:                 Dofs at I and J:
//                   |,'           E, G, A, J              ux, uy, uz, rx, ry, rz
//        (I) o------+----------o (J) ---> x (local)
//                                 Iy, Iz, Avy, Avz
//
//  The local system comes from the coordinate transformation: x from I to J, y := vecxz × x and z := x × y.
//  Local forces follow the same order as dofs: [N, Vy, Vz, T, My, Mz] at I and J.
type TimoshenkoBeam struct {

	// basic data
	Tag  int   // element tag
	Conn []int // [2] identifiers of connected nodes: I and J
	Nu   int   // total number of unknowns == 12

	// section properties
	E   float64 // Young's modulus
	G   float64 // shear modulus
	A   float64 // cross-sectional area
	J   float64 // torsional constant
	Iy  float64 // moment of inertia about local y
	Iz  float64 // moment of inertia about local z
	Avy float64 // effective shear area along local y
	Avz float64 // effective shear area along local z

	// options
	Rho    float64      // mass per unit length
	CMass  bool         // consistent mass matrix; otherwise lumped
	GeomNl bool         // P-Delta geometric stiffness
	Damp   ele.Rayleigh // Rayleigh damping coefficients

	// geometry
	Crd  ele.CrdTransf // own copy of coordinate transformation
	L    float64       // (derived) length of beam
	PhiY float64       // (derived) 12·E·Iy/(L²·G·Avz)
	PhiZ float64       // (derived) 12·E·Iz/(L²·G·Avy)

	// extensions
	Recovery *ForceRecovery // section-force recovery; nil => disabled

	// vectors and matrices
	T     *mat.Dense    // [12][12] global-to-local transformation matrix
	Kl    *mat.SymDense // [12][12] local elastic stiffness
	Klgeo *mat.SymDense // [12][12] local geometric stiffness; to be multiplied by the axial force
	Ki    *mat.SymDense // [12][12] initial stiffness in global system
	M     *mat.SymDense // [12][12] mass matrix in global system
	Kc    *mat.SymDense // [12][12] last committed tangent; nil if not needed by damping

	// nodes
	nodes [2]ele.Node // connected nodes; set by SetDomain
	ready bool        // geometry and matrices are set

	// loads
	ql0  *mat.VecDense // [12] fixed-end forces in local system
	load *mat.VecDense // [12] inertia loads in global system

	// results
	ul *mat.VecDense // [12] local displacements
	ql *mat.VecDense // [12] local forces

	// scratchpad
	ug  *mat.VecDense // [12] global values gathered from nodes
	fe  *mat.VecDense // [12] global forces
	wv  *mat.VecDense // [12] work vector
	kt  *mat.SymDense // [12][12] tangent stiffness in global system
	klt *mat.SymDense // [12][12] total local stiffness
	cd  *mat.SymDense // [12][12] damping matrix
	wm  *mat.Dense    // [12][12] work matrix
}

// Props holds the section properties of beams
type Props struct {
	E   float64 `json:"E"`   // Young's modulus
	G   float64 `json:"G"`   // shear modulus
	A   float64 `json:"A"`   // cross-sectional area
	J   float64 `json:"J"`   // torsional constant
	Iy  float64 `json:"Iy"`  // moment of inertia about local y
	Iz  float64 `json:"Iz"`  // moment of inertia about local z
	Avy float64 `json:"Avy"` // effective shear area along local y
	Avz float64 `json:"Avz"` // effective shear area along local z
}

// Options holds the mass and geometric options of beams
type Options struct {
	Rho    float64 // mass per unit length
	CMass  bool    // consistent mass matrix
	GeomNl bool    // P-Delta geometric stiffness
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("timobeam3d", func(edat *inp.ElemData) *ele.Info {
		ykeys := []string{"ux", "uy", "uz", "rx", "ry", "rz"}
		return &ele.Info{
			Dofs: [][]string{ykeys, ykeys},
			Y2F:  map[string]string{"ux": "fx", "uy": "fy", "uz": "fz", "rx": "mx", "ry": "my", "rz": "mz"},
		}
	})

	// element allocator
	ele.SetAllocator("timobeam3d", func(edat *inp.ElemData, sec sld.Section, crd ele.CrdTransf) (ele.Element, error) {

		// properties
		var p Props
		var err error
		if sec != nil {
			p, err = ResolveSection(sec)
		} else {
			p, err = propsFromPrms(edat.Prms)
		}
		if err != nil {
			return nil, err
		}

		// element
		o, err := NewTimoshenkoBeam(edat.Tag, edat.Nodes, p, crd, Options{edat.Rho, edat.CMass, edat.GeomNl})
		if err != nil {
			return nil, err
		}
		if edat.Damping != nil {
			o.Damp = ele.Rayleigh{
				AlphaM: edat.Damping.AlphaM,
				BetaK:  edat.Damping.BetaK,
				BetaK0: edat.Damping.BetaK0,
				BetaKc: edat.Damping.BetaKc,
			}
		}
		if edat.Recovery {
			o.EnableForceRecovery(0)
		}
		return o, nil
	})
}

// NewTimoshenkoBeam returns a new element with the given section properties.
// The matrices are computed by SetDomain.
func NewTimoshenkoBeam(tag int, nodes []int, p Props, crd ele.CrdTransf, opt Options) (o *TimoshenkoBeam, err error) {
	if len(nodes) != 2 {
		return nil, chk.Err("timobeam3d %d: 2 nodes are required; %v is invalid", tag, nodes)
	}
	if crd == nil {
		return nil, chk.Err("timobeam3d %d: coordinate transformation is required", tag)
	}
	if opt.Rho < 0 {
		return nil, chk.Err("timobeam3d %d: mass per length must be non-negative. rho=%g", tag, opt.Rho)
	}
	if opt.Rho > 0 && opt.CMass && p.A <= 0 {
		return nil, chk.Err("timobeam3d %d: consistent mass requires A > 0. A=%g", tag, p.A)
	}
	o = new(TimoshenkoBeam)
	o.Tag = tag
	o.Conn = []int{nodes[0], nodes[1]}
	o.SetProps(p)
	o.Rho, o.CMass, o.GeomNl = opt.Rho, opt.CMass, opt.GeomNl
	o.Crd = crd.Copy()
	o.alloc()
	return
}

// NewTimoshenkoBeamSection returns a new element with properties resolved from a section model
func NewTimoshenkoBeamSection(tag int, nodes []int, sec sld.Section, crd ele.CrdTransf, opt Options) (o *TimoshenkoBeam, err error) {
	p, err := ResolveSection(sec)
	if err != nil {
		return nil, chk.Err("timobeam3d %d: %v", tag, err)
	}
	return NewTimoshenkoBeam(tag, nodes, p, crd, opt)
}

// alloc allocates vectors and matrices
func (o *TimoshenkoBeam) alloc() {
	o.Nu = 12
	o.T = mat.NewDense(o.Nu, o.Nu, nil)
	o.Kl = mat.NewSymDense(o.Nu, nil)
	o.Klgeo = mat.NewSymDense(o.Nu, nil)
	o.Ki = mat.NewSymDense(o.Nu, nil)
	o.M = mat.NewSymDense(o.Nu, nil)
	o.ql0 = mat.NewVecDense(o.Nu, nil)
	o.load = mat.NewVecDense(o.Nu, nil)
	o.ul = mat.NewVecDense(o.Nu, nil)
	o.ql = mat.NewVecDense(o.Nu, nil)
	o.ug = mat.NewVecDense(o.Nu, nil)
	o.fe = mat.NewVecDense(o.Nu, nil)
	o.wv = mat.NewVecDense(o.Nu, nil)
	o.kt = mat.NewSymDense(o.Nu, nil)
	o.klt = mat.NewSymDense(o.Nu, nil)
	o.cd = mat.NewSymDense(o.Nu, nil)
	o.wm = mat.NewDense(o.Nu, o.Nu, nil)
}

// SetProps sets the section properties. Matrices are not recomputed
func (o *TimoshenkoBeam) SetProps(p Props) {
	o.E, o.G, o.A, o.J = p.E, p.G, p.A, p.J
	o.Iy, o.Iz, o.Avy, o.Avz = p.Iy, p.Iz, p.Avy, p.Avz
}

// GetProps returns the section properties
func (o *TimoshenkoBeam) GetProps() Props {
	return Props{o.E, o.G, o.A, o.J, o.Iy, o.Iz, o.Avy, o.Avz}
}

// Id returns the element tag
func (o *TimoshenkoBeam) Id() int { return o.Tag }

// Nodes returns the identifiers of nodes I and J
func (o *TimoshenkoBeam) Nodes() []int { return o.Conn }

// Ndof returns the number of degrees of freedom
func (o *TimoshenkoBeam) Ndof() int { return o.Nu }

// Ready tells whether the geometry and matrices are set
func (o *TimoshenkoBeam) Ready() bool { return o.ready }

// SetDomain finds the end nodes, initialises the coordinate transformation and computes all matrices.
// With a nil domain, the element is detached from its nodes.
func (o *TimoshenkoBeam) SetDomain(dom ele.NodeFinder) (err error) {
	o.detach()
	if dom == nil {
		return
	}
	var nodes [2]ele.Node
	for i, id := range o.Conn {
		nodes[i] = dom.Node(id)
		if nodes[i] == nil {
			return chk.Err("timobeam3d %d: node %d does not exist", o.Tag, id)
		}
		if nodes[i].Ndof() != 6 {
			return chk.Err("timobeam3d %d: node %d has %d dofs; 6 are required", o.Tag, id, nodes[i].Ndof())
		}
	}
	err = o.Crd.Initialize(nodes[0], nodes[1])
	if err != nil {
		return chk.Err("timobeam3d %d: cannot initialise coordinate transformation:\n%v", o.Tag, err)
	}
	o.nodes = nodes
	return o.setup()
}

// detach clears node pointers and matrices; i.e. makes the element inert
func (o *TimoshenkoBeam) detach() {
	o.nodes = [2]ele.Node{}
	o.ready = false
	o.L, o.PhiY, o.PhiZ = 0, 0, 0
	o.T.Zero()
	o.Kl.Zero()
	o.Klgeo.Zero()
	o.Ki.Zero()
	o.M.Zero()
	o.Kc = nil
}

// Recompute re-computes matrices after parameters are externally changed
func (o *TimoshenkoBeam) Recompute() (err error) {
	if o.nodes[0] == nil {
		return chk.Err("timobeam3d %d: geometry is not set", o.Tag)
	}
	return o.setup()
}

// setup computes length, shear ratios and all matrices
func (o *TimoshenkoBeam) setup() (err error) {
	o.ready = false
	o.L = o.Crd.InitialLength()
	if o.L <= 0 {
		o.L = 0
		return chk.Err("timobeam3d %d: element has zero length", o.Tag)
	}
	if o.Rho > 0 && o.CMass && o.A <= 0 {
		return chk.Err("timobeam3d %d: consistent mass requires A > 0. A=%g", o.Tag, o.A)
	}
	o.buildTransform()
	o.PhiY = shearRatio(o.E, o.Iy, o.L, o.G, o.Avz, o.A)
	o.PhiZ = shearRatio(o.E, o.Iz, o.L, o.G, o.Avy, o.A)
	o.buildStiffness()
	o.buildGeometric()
	ele.TrMulSym(o.Ki, o.T, o.Kl, o.wm)
	o.buildMass()
	o.ready = true
	return
}

// state //////////////////////////////////////////////////////////////////////////////////////////

// CommitState stores the tangent if required by damping
func (o *TimoshenkoBeam) CommitState() (err error) {
	if o.Damp.BetaKc == 0 {
		return
	}
	K, err := o.TangentStiff()
	if err != nil {
		return
	}
	if o.Kc == nil {
		o.Kc = mat.NewSymDense(o.Nu, nil)
	}
	o.Kc.CopySym(K)
	return
}

// RevertToLastCommit does nothing since the element has no internal variables
func (o *TimoshenkoBeam) RevertToLastCommit() (err error) { return }

// RevertToStart clears the committed tangent
func (o *TimoshenkoBeam) RevertToStart() (err error) {
	o.Kc = nil
	return
}

// Update does nothing since the element has no internal variables
func (o *TimoshenkoBeam) Update() (err error) { return }

// response ///////////////////////////////////////////////////////////////////////////////////////

// TangentStiff returns the tangent stiffness in global system
//  linear:  K = trans(T) * Kl * T
//  P-Delta: K = trans(T) * (Kl + N * Klgeo) * T  with N = (Kl * ul)[6]
func (o *TimoshenkoBeam) TangentStiff() (K *mat.SymDense, err error) {
	if !o.ready {
		o.kt.Zero()
		return o.kt, o.notReady()
	}
	if !o.GeomNl {
		o.kt.CopySym(o.Ki)
		return o.kt, nil
	}
	ele.Gather(o.ug, o.nodes[0].TrialDisp(), o.nodes[1].TrialDisp())
	o.ul.MulVec(o.T, o.ug)
	o.wv.MulVec(o.Kl, o.ul)
	N := o.wv.AtVec(6)
	if N == 0 {
		o.kt.CopySym(o.Ki)
		return o.kt, nil
	}
	ele.AddScaledSym(o.klt, o.Kl, N, o.Klgeo)
	ele.TrMulSym(o.kt, o.T, o.klt, o.wm)
	return o.kt, nil
}

// InitialStiff returns the initial stiffness in global system
func (o *TimoshenkoBeam) InitialStiff() *mat.SymDense { return o.Ki }

// Mass returns the mass matrix in global system
func (o *TimoshenkoBeam) Mass() *mat.SymDense { return o.M }

// ResistingForce returns the resisting forces in global system
//  R = trans(T) * ql - inertia loads
//  ql = Kl * ul [+ N * Klgeo * ul] + ql0
func (o *TimoshenkoBeam) ResistingForce() (R *mat.VecDense, err error) {
	o.fe.Zero()
	if !o.ready {
		return o.fe, o.notReady()
	}
	o.localForces()
	o.fe.MulVec(o.T.T(), o.ql)
	if o.Rho != 0 {
		o.fe.SubVec(o.fe, o.load)
	}
	return o.fe, nil
}

// ResistingForceIncInertia returns the resisting forces including damping and inertia forces
//  R = ResistingForce - inertia loads + C * v + M * a
//  Note: inertia loads are subtracted by ResistingForce and once more here
func (o *TimoshenkoBeam) ResistingForceIncInertia() (R *mat.VecDense, err error) {
	_, err = o.ResistingForce()
	if err != nil {
		return o.fe, err
	}
	if o.Rho != 0 {
		o.fe.SubVec(o.fe, o.load)
	}

	// damping
	if o.Damp.Active() {
		var K *mat.SymDense
		if o.Damp.BetaK != 0 {
			K, err = o.TangentStiff()
			if err != nil {
				return o.fe, err
			}
		}
		ele.Gather(o.ug, o.nodes[0].TrialVel(), o.nodes[1].TrialVel())
		o.Damp.AddForce(o.fe, o.ug, o.M, K, o.Ki, o.Kc, o.wv)
	}

	// check for quick return
	if o.Rho == 0 {
		return o.fe, nil
	}

	// inertia
	ele.Gather(o.ug, o.nodes[0].TrialAccel(), o.nodes[1].TrialAccel())
	o.wv.MulVec(o.M, o.ug)
	o.fe.AddVec(o.fe, o.wv)
	return o.fe, nil
}

// DampingMatrix returns the Rayleigh damping matrix; nil if all coefficients are zero
func (o *TimoshenkoBeam) DampingMatrix() (C *mat.SymDense, err error) {
	if !o.ready {
		return nil, o.notReady()
	}
	if !o.Damp.Active() {
		return nil, nil
	}
	var K *mat.SymDense
	if o.Damp.BetaK != 0 {
		K, err = o.TangentStiff()
		if err != nil {
			return
		}
	}
	o.Damp.Matrix(o.cd, o.M, K, o.Ki, o.Kc)
	return o.cd, nil
}

// GlobalForce returns a copy of the resisting forces in global system
func (o *TimoshenkoBeam) GlobalForce() (f []float64, err error) {
	R, err := o.ResistingForce()
	return mat.Col(nil, 0, R), err
}

// LocalForce returns a copy of the local forces ql: [N, Vy, Vz, T, My, Mz] at I and J
func (o *TimoshenkoBeam) LocalForce() (f []float64, err error) {
	_, err = o.ResistingForce()
	if err != nil {
		return
	}
	return mat.Col(nil, 0, o.ql), nil
}

// localForces computes ul := T * ug and ql := Kl * ul [+ N * Klgeo * ul] + ql0
func (o *TimoshenkoBeam) localForces() {
	ele.Gather(o.ug, o.nodes[0].TrialDisp(), o.nodes[1].TrialDisp())
	o.ul.MulVec(o.T, o.ug)
	o.ql.MulVec(o.Kl, o.ul)
	if o.GeomNl {
		N := o.ql.AtVec(6)
		if N != 0 {
			o.wv.MulVec(o.Klgeo, o.ul)
			o.ql.AddScaledVec(o.ql, N, o.wv)
		}
	}
	o.ql.AddVec(o.ql, o.ql0)
}

// notReady returns the error of elements without geometry
func (o *TimoshenkoBeam) notReady() error {
	return chk.Err("timobeam3d %d: geometry is not set; SetDomain must succeed first", o.Tag)
}

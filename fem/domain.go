// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements a small structural domain: nodes, elements, assembly and solvers
package fem

import (
	"sort"

	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/civil-soft-science/OpenSees.NET/ele/transf"
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/civil-soft-science/OpenSees.NET/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Domain holds all Nodes and Elements of a structural model in addition to the global vectors and matrices
type Domain struct {

	// init: auxiliary variables
	ShowMsg bool       // show messages
	Mdl     *inp.Model // input data

	// nodes and elements
	Nodes    []*Node             // nodes in the order of input. Note: indices in Nodes do NOT correspond to Ids => use Vid2node
	Elems    []ele.Element       // elements in the order of input
	Vid2node map[int]*Node       // node id => node
	Tag2elem map[int]ele.Element // element tag => element

	// subsets of elements
	ElemFixedKM []ele.WithFixedKM  // elements with fixed K,M matrices; to be recomputed if prms are changed
	ElemDamping []ele.WithDamping  // elements with damping matrices
	ElemOutIps  []ele.CanOutputIps // elements with section forces along the span

	// dimensions
	Ny int // total number of dofs

	// global vectors and matrices
	Fext []float64   // [ny] external (nodal) forces at unit load factor
	R    []float64   // [ny] assembled resisting forces
	Kb   *sparse.DOK // [ny][ny] stiffness
	Mb   *sparse.DOK // [ny][ny] mass
	Cb   *sparse.DOK // [ny][ny] damping

	// auxiliary
	eqs  [][]int // [nelems][12] equation numbers of each element
	free []int   // equations that are not fixed
}

// NewDomain allocates nodes and elements, sets the domain of all elements and sets fixities and nodal loads
func NewDomain(mdl *inp.Model, verbose bool) (o *Domain, err error) {

	// allocate domain
	o = new(Domain)
	o.ShowMsg = verbose
	o.Mdl = mdl
	o.Vid2node = make(map[int]*Node)
	o.Tag2elem = make(map[int]ele.Element)
	for _, dat := range mdl.Nodes {
		nod := NewNode(dat)
		o.Nodes = append(o.Nodes, nod)
		o.Vid2node[dat.Id] = nod
	}

	// elements
	var eq int // current equation number => total number of equations @ end of loop
	for _, edat := range mdl.Elems {

		// get element info
		info, err := ele.GetInfo(edat)
		if err != nil {
			return nil, chk.Err("get element information failed:\n%v", err)
		}
		if len(info.Dofs) != len(edat.Nodes) {
			return nil, chk.Err("element %d: information for %d nodes does not match %d nodes", edat.Tag, len(info.Dofs), len(edat.Nodes))
		}

		// set DOFs and equation numbers
		for j, vid := range edat.Nodes {
			nod := o.Vid2node[vid]
			if nod == nil {
				return nil, chk.Err("element %d: node %d does not exist", edat.Tag, vid)
			}
			for _, ukey := range info.Dofs[j] {
				eq = nod.AddDofAndEq(ukey, eq)
			}
		}

		// new element
		e, err := o.newElement(edat)
		if err != nil {
			return nil, chk.Err("new element failed:\n%v", err)
		}
		o.Elems = append(o.Elems, e)
		o.Tag2elem[e.Id()] = e
		o.addElementToSubsets(e)

		// element equations
		var eqs []int
		for j, vid := range edat.Nodes {
			for _, ukey := range info.Dofs[j] {
				eqs = append(eqs, o.Vid2node[vid].GetEq(ukey))
			}
		}
		o.eqs = append(o.eqs, eqs)
	}
	o.Ny = eq

	// set domain of elements
	for _, e := range o.Elems {
		err = e.SetDomain(o)
		if err != nil {
			return nil, chk.Err("cannot set domain of element %d:\n%v", e.Id(), err)
		}
	}

	// fixities
	for _, fix := range mdl.Fixities {
		nod := o.Vid2node[fix.Node]
		for i, flag := range fix.Dofs {
			if flag != 0 && i < len(nod.Dofs) {
				nod.Dofs[i].Fixed = true
			}
		}
	}
	o.free = make([]int, 0, o.Ny)
	fixed := make([]bool, o.Ny)
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			fixed[dof.Eq] = dof.Fixed
		}
	}
	for i := 0; i < o.Ny; i++ {
		if !fixed[i] {
			o.free = append(o.free, i)
		}
	}

	// nodal loads
	o.Fext = make([]float64, o.Ny)
	o.R = make([]float64, o.Ny)
	for _, load := range mdl.NodalLoads {
		nod := o.Vid2node[load.Node]
		for i, val := range load.Values {
			if i < len(nod.Dofs) {
				o.Fext[nod.Dofs[i].Eq] += val
			}
		}
	}

	// message
	if o.ShowMsg {
		io.Pf(">> domain: %d nodes, %d elements, %d equations (%d free)\n", len(o.Nodes), len(o.Elems), o.Ny, len(o.free))
	}
	return
}

// Node returns the node with the given identifier or nil
func (o *Domain) Node(id int) ele.Node {
	if nod, ok := o.Vid2node[id]; ok {
		return nod
	}
	return nil
}

// newElement allocates coordinate transformation, section and element
func (o *Domain) newElement(edat *inp.ElemData) (e ele.Element, err error) {

	// coordinate transformation
	tdat := o.Mdl.Transf(edat.Transf)
	if tdat == nil {
		return nil, chk.Err("element %d: transformation %d does not exist", edat.Tag, edat.Transf)
	}
	crd, err := transf.New(tdat.Type, tdat.Tag, tdat.Vecxz)
	if err != nil {
		return
	}

	// P-Delta effects come from the transformation
	dat := *edat
	switch tdat.Type {
	case transf.KindPDelta:
		dat.GeomNl = true
	case transf.KindCorot:
		dat.GeomNl = true
		ele.Warn("element %d: Corotational transformation is handled as PDelta", edat.Tag)
	}

	// section
	var sec sld.Section
	if edat.Section != 0 {
		sdat := o.Mdl.Section(edat.Section)
		if sdat == nil {
			return nil, chk.Err("element %d: section %d does not exist", edat.Tag, edat.Section)
		}
		sec, err = sld.Alloc(sdat.Type, sdat.Prms)
		if err != nil {
			return
		}
	}
	return ele.New(&dat, sec, crd)
}

// addElementToSubsets adds an element to many subsets as it fits
func (o *Domain) addElementToSubsets(e ele.Element) {
	if ekm, ok := e.(ele.WithFixedKM); ok {
		o.ElemFixedKM = append(o.ElemFixedKM, ekm)
	}
	if edm, ok := e.(ele.WithDamping); ok {
		o.ElemDamping = append(o.ElemDamping, edm)
	}
	if eip, ok := e.(ele.CanOutputIps); ok {
		o.ElemOutIps = append(o.ElemOutIps, eip)
	}
}

// ApplyEleLoads clears element loads and applies the element loads of the model at the given factor.
// Loads that an element rejects are reported and skipped.
func (o *Domain) ApplyEleLoads(factor float64) (err error) {
	for _, e := range o.Elems {
		e.ZeroLoad()
	}
	for i, dat := range o.Mdl.EleLoads {
		var load ele.Load
		switch dat.Type {
		case "uniform":
			load = &ele.UniformLoad{Wy: dat.Wy, Wz: dat.Wz, Wx: dat.Wx}
		case "point":
			load = &ele.PointLoad{Py: dat.Py, Pz: dat.Pz, N: dat.N, AoverL: dat.Xl}
		default:
			return chk.Err("element load %d: type %q is not available", i, dat.Type)
		}
		for _, tag := range dat.Elems {
			e, ok := o.Tag2elem[tag]
			if !ok {
				return chk.Err("element load %d: element %d does not exist", i, tag)
			}
			if err := e.AddLoad(load, factor); err != nil {
				ele.Warn("load %d skipped: %v", i, err)
			}
		}
	}
	return
}

// RecomputeKM recomputes K and M matrices of elements; e.g. after parameters are changed
func (o *Domain) RecomputeKM() (err error) {
	for _, e := range o.ElemFixedKM {
		err = e.Recompute()
		if err != nil {
			return
		}
	}
	return
}

// CommitState commits the state of all elements
func (o *Domain) CommitState() (err error) {
	for _, e := range o.Elems {
		err = e.CommitState()
		if err != nil {
			return
		}
	}
	return
}

// AssembleK assembles the tangent stiffness matrix
func (o *Domain) AssembleK() (err error) {
	o.Kb = sparse.NewDOK(o.Ny, o.Ny)
	for i, e := range o.Elems {
		K, err := e.TangentStiff()
		if err != nil {
			return err
		}
		addToDOK(o.Kb, o.eqs[i], K)
	}
	return
}

// AssembleM assembles the mass matrix
func (o *Domain) AssembleM() {
	o.Mb = sparse.NewDOK(o.Ny, o.Ny)
	for i, e := range o.Elems {
		addToDOK(o.Mb, o.eqs[i], e.Mass())
	}
}

// AssembleC assembles the damping matrix
func (o *Domain) AssembleC() (err error) {
	o.Cb = sparse.NewDOK(o.Ny, o.Ny)
	for i, e := range o.Elems {
		edm, ok := e.(ele.WithDamping)
		if !ok {
			continue
		}
		C, err := edm.DampingMatrix()
		if err != nil {
			return err
		}
		if C != nil {
			addToDOK(o.Cb, o.eqs[i], C)
		}
	}
	return
}

// AssembleR assembles the resisting forces; including damping and inertia forces if withInertia
func (o *Domain) AssembleR(withInertia bool) (err error) {
	for i := range o.R {
		o.R[i] = 0
	}
	for i, e := range o.Elems {
		var R *mat.VecDense
		if withInertia {
			R, err = e.ResistingForceIncInertia()
		} else {
			R, err = e.ResistingForce()
		}
		if err != nil {
			return
		}
		for k, I := range o.eqs[i] {
			o.R[I] += R.AtVec(k)
		}
	}
	return
}

// Reactions returns the support reactions at fixed dofs; i.e. R - factor·Fext
//  Note: AssembleR must be called first
func (o *Domain) Reactions(factor float64) (reac map[int][]float64) {
	reac = make(map[int][]float64)
	for _, nod := range o.Nodes {
		var fixed bool
		vals := make([]float64, len(nod.Dofs))
		for i, dof := range nod.Dofs {
			if dof.Fixed {
				fixed = true
				vals[i] = o.R[dof.Eq] - factor*o.Fext[dof.Eq]
			}
		}
		if fixed {
			reac[nod.Vid] = vals
		}
	}
	return
}

// NodeIds returns the sorted identifiers of nodes
func (o *Domain) NodeIds() (ids []int) {
	for id := range o.Vid2node {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return
}

// Unbalance returns the norm of the unbalanced forces at free dofs; i.e. |factor·Fext - R|
func (o *Domain) Unbalance(factor float64) float64 {
	r := make([]float64, len(o.free))
	for k, I := range o.free {
		r[k] = factor*o.Fext[I] - o.R[I]
	}
	return floats.Norm(r, 2)
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// addToDOK adds the entries of a symmetric element matrix to a global matrix
func addToDOK(G *sparse.DOK, eqs []int, K mat.Symmetric) {
	for i, I := range eqs {
		for j, J := range eqs {
			v := K.At(i, j)
			if v != 0 {
				G.Set(I, J, G.At(I, J)+v)
			}
		}
	}
}

// reduce returns the dense matrix a[free][free] of a sparse matrix
func (o *Domain) reduce(a mat.Matrix) *mat.Dense {
	n := len(o.free)
	res := mat.NewDense(n, n, nil)
	for i, I := range o.free {
		for j, J := range o.free {
			res.Set(i, j, a.At(I, J))
		}
	}
	return res
}

// scatter sets the trial displacements of nodes from a vector of free dofs
func (o *Domain) scatter(dst func(nod *Node) []float64, x []float64) {
	val := make([]float64, o.Ny)
	for k, I := range o.free {
		val[I] = x[k]
	}
	for _, nod := range o.Nodes {
		v := dst(nod)
		for i, dof := range nod.Dofs {
			v[i] = val[dof.Eq]
		}
	}
}

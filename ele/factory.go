// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/civil-soft-science/OpenSees.NET/inp"
	"github.com/civil-soft-science/OpenSees.NET/mdl/sld"
	"github.com/cpmech/gosl/chk"
)

// InfoFuncType defines a function that returns information about a certain element type
type InfoFuncType func(edat *inp.ElemData) *Info

// AllocatorType defines a function that allocates an element
//  Input:
//   edat -- element data
//   sec  -- cross-section model; may be nil if edat holds the section properties
//   crd  -- coordinate transformation; the element keeps its own copy
type AllocatorType func(edat *inp.ElemData, sec sld.Section, crd CrdTransf) (Element, error)

// GetInfo returns information about elements from factory
func GetInfo(edat *inp.ElemData) (info *Info, err error) {
	fcn, ok := infofactory[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get info for element {type=%q, tag=%d}", edat.Type, edat.Tag)
	}
	info = fcn(edat)
	if info == nil {
		err = chk.Err("info for element {type=%q, tag=%d} is not available", edat.Type, edat.Tag)
	}
	return
}

// New returns a new element from factory
func New(edat *inp.ElemData, sec sld.Section, crd CrdTransf) (ele Element, err error) {
	fcn, ok := allocators[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {type=%q, tag=%d}", edat.Type, edat.Tag)
	}
	ele, err = fcn(edat, sec, crd)
	if err != nil {
		return nil, chk.Err("cannot allocate element {type=%q, tag=%d}:\n%v", edat.Type, edat.Tag, err)
	}
	return
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: quake, ramp
	Type string     `json:"type"` // type of function. ex: cte, rmp, pts, sin
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" give f(t) = 0
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		return &dbf.Zero, nil
	}
	for _, f := range o {
		if f.Name == name {
			return newFunc(f)
		}
	}
	return nil, chk.Err("cannot find function named %q", name)
}

// newFunc allocates a function; errors raised by the function database are returned
func newFunc(f *FuncData) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot get function named %q because of the following error:\n%v", f.Name, r)
		}
	}()
	fcn = dbf.New(f.Type, f.Prms)
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("{name: %q, type: %q, prms: %v}", o.Name, o.Type, o.Prms)
}

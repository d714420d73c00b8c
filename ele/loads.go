// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// LoadType defines the kind of element load
type LoadType int

// element load types
const (
	LoadUniform LoadType = iota + 1 // distributed over the whole length
	LoadPoint                       // concentrated at some point along the element
)

// String returns the name of load type
func (t LoadType) String() string {
	switch t {
	case LoadUniform:
		return "uniform"
	case LoadPoint:
		return "point"
	}
	return "unknown"
}

// Load defines element loads
type Load interface {

	// Data returns the load type and its data at the given load factor.
	// Magnitudes are multiplied by factor; positions are not.
	Data(factor float64) (typ LoadType, data []float64)
}

// UniformLoad holds uniformly distributed loads in the local system
type UniformLoad struct {
	Wy float64 // load per length along local y
	Wz float64 // load per length along local z
	Wx float64 // load per length along local x
}

// Data returns [wy, wz, wx]
func (o *UniformLoad) Data(factor float64) (LoadType, []float64) {
	return LoadUniform, []float64{o.Wy * factor, o.Wz * factor, o.Wx * factor}
}

// PointLoad holds a concentrated load in the local system
type PointLoad struct {
	Py     float64 // force along local y
	Pz     float64 // force along local z
	N      float64 // axial force
	AoverL float64 // position of load relative to length; in [0, 1]
}

// Data returns [Py, Pz, N, a/L]
func (o *PointLoad) Data(factor float64) (LoadType, []float64) {
	return LoadPoint, []float64{o.Py * factor, o.Pz * factor, o.N * factor, o.AoverL}
}

// NewLoad returns a new load from its type and data at unit factor
func NewLoad(typ LoadType, data []float64) (load Load, err error) {
	switch typ {
	case LoadUniform:
		if len(data) != 3 {
			return nil, chk.Err("uniform load needs 3 values [wy, wz, wx]. %d is invalid", len(data))
		}
		return &UniformLoad{data[0], data[1], data[2]}, nil
	case LoadPoint:
		if len(data) != 4 {
			return nil, chk.Err("point load needs 4 values [Py, Pz, N, a/L]. %d is invalid", len(data))
		}
		return &PointLoad{data[0], data[1], data[2], data[3]}, nil
	}
	return nil, chk.Err("load type %d is not available", typ)
}

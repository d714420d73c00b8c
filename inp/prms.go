// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Prms holds named parameters; e.g. {"E": 200000, "A": 0.01}
type Prms map[string]float64

// Get returns parameter value or dflt if key is absent
func (o Prms) Get(key string, dflt float64) float64 {
	if v, ok := o[key]; ok {
		return v
	}
	return dflt
}

// Need returns an error naming every absent key
func (o Prms) Need(keys ...string) (err error) {
	var missing []string
	for _, key := range keys {
		if _, ok := o[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return chk.Err("missing parameters %v", missing)
	}
	return
}

// String returns a sorted list of parameters
func (o Prms) String() (l string) {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%s=%g", k, o[k])
	}
	return
}

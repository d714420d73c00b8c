// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "sort"

// IpsMap holds values at output points (stations) along elements; key => values
type IpsMap map[string][]float64

// NewIpsMap returns a new IpsMap
func NewIpsMap() *IpsMap {
	M := make(IpsMap)
	return &M
}

// Set sets the value of 'key' at station idx. The slice is allocated with n items if needed
func (o *IpsMap) Set(key string, idx, n int, val float64) {
	if slice, ok := (*o)[key]; ok && len(slice) == n {
		slice[idx] = val
		return
	}
	slice := make([]float64, n)
	slice[idx] = val
	(*o)[key] = slice
}

// Get returns the value of 'key' at station idx; 0 if 'key' is not found
func (o *IpsMap) Get(key string, idx int) float64 {
	if slice, ok := (*o)[key]; ok && idx < len(slice) {
		return slice[idx]
	}
	return 0
}

// Keys returns the sorted keys
func (o *IpsMap) Keys() (keys []string) {
	for key := range *o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

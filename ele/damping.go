// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "gonum.org/v1/gonum/mat"

// Rayleigh holds Rayleigh damping coefficients
//  C = αM·M + βK·K + βK0·K0 + βKc·Kc
//  where K is the current tangent, K0 the initial stiffness and Kc the last committed tangent
type Rayleigh struct {
	AlphaM float64 `json:"alphaM"` // mass-proportional coefficient
	BetaK  float64 `json:"betaK"`  // current-tangent coefficient
	BetaK0 float64 `json:"betaK0"` // initial-stiffness coefficient
	BetaKc float64 `json:"betaKc"` // committed-tangent coefficient
}

// Active tells whether any coefficient is not zero
func (o Rayleigh) Active() bool {
	return o.AlphaM != 0 || o.BetaK != 0 || o.BetaK0 != 0 || o.BetaKc != 0
}

// AddForce adds damping forces to f; i.e. f += C·v
//  Note: nil matrices are skipped; work is a scratch vector with the size of v
func (o Rayleigh) AddForce(f *mat.VecDense, v mat.Vector, M, K, K0, Kc *mat.SymDense, work *mat.VecDense) {
	terms := []struct {
		c float64
		a *mat.SymDense
	}{{o.AlphaM, M}, {o.BetaK, K}, {o.BetaK0, K0}, {o.BetaKc, Kc}}
	for _, t := range terms {
		if t.c == 0 || t.a == nil {
			continue
		}
		work.MulVec(t.a, v)
		f.AddScaledVec(f, t.c, work)
	}
}

// Matrix computes C := αM·M + βK·K + βK0·K0 + βKc·Kc
//  Note: nil matrices are skipped
func (o Rayleigh) Matrix(C *mat.SymDense, M, K, K0, Kc *mat.SymDense) {
	C.Zero()
	for _, t := range []struct {
		c float64
		a *mat.SymDense
	}{{o.AlphaM, M}, {o.BetaK, K}, {o.BetaK0, K0}, {o.BetaKc, Kc}} {
		if t.c == 0 || t.a == nil {
			continue
		}
		AddScaledSym(C, C, t.c, t.a)
	}
}

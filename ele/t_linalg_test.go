// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func Test_linalg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linalg01. triple product and symmetric sums")

	// rotation about z by 90°
	T := mat.NewDense(2, 2, []float64{0, 1, -1, 0})
	A := mat.NewSymDense(2, []float64{2, 1, 1, 3})
	K := mat.NewSymDense(2, nil)
	work := mat.NewDense(2, 2, nil)
	TrMulSym(K, T, A, work)
	io.Pforan("K = %v\n", mat.Formatted(K))
	chk.Deep2(tst, "K", 1e-17, Rows(K), [][]float64{{3, -1}, {-1, 2}})

	// C := A + α·B
	C := mat.NewSymDense(2, nil)
	AddScaledSym(C, A, 0.5, K)
	chk.Deep2(tst, "C", 1e-17, Rows(C), [][]float64{{3.5, 0.5}, {0.5, 4}})

	// symmetry
	assert.True(tst, Symmetric(C, 0))
	assert.False(tst, Symmetric(mat.NewDense(2, 2, []float64{1, 2, 3, 4}), 1e-10))
	assert.False(tst, Symmetric(mat.NewDense(2, 3, nil), 1e-10))
}

func Test_linalg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linalg02. gather")

	v := mat.NewVecDense(5, nil)
	Gather(v, []float64{1, 2}, []float64{3, 4, 5})
	assert.Equal(tst, []float64{1, 2, 3, 4, 5}, mat.Col(nil, 0, v))
}

func Test_damping01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("damping01. Rayleigh damping")

	M := mat.NewSymDense(2, []float64{2, 0, 0, 2})
	K := mat.NewSymDense(2, []float64{4, -2, -2, 4})
	K0 := mat.NewSymDense(2, []float64{8, 0, 0, 8})

	var o Rayleigh
	assert.False(tst, o.Active())

	// C·v with a missing committed tangent
	o = Rayleigh{AlphaM: 0.5, BetaK: 0.25, BetaK0: 0.125, BetaKc: 1}
	assert.True(tst, o.Active())
	v := mat.NewVecDense(2, []float64{1, 1})
	f := mat.NewVecDense(2, []float64{10, 20})
	work := mat.NewVecDense(2, nil)
	o.AddForce(f, v, M, K, K0, nil, work)
	chk.Float64(tst, "f0", 1e-15, f.AtVec(0), 10+0.5*2+0.25*2+0.125*8)
	chk.Float64(tst, "f1", 1e-15, f.AtVec(1), 20+0.5*2+0.25*2+0.125*8)

	// matrix
	C := mat.NewSymDense(2, nil)
	o.Matrix(C, M, K, K0, nil)
	chk.Deep2(tst, "C", 1e-15, Rows(C), [][]float64{{3, -0.5}, {-0.5, 3}})

	// committed tangent
	o = Rayleigh{BetaKc: 2}
	o.Matrix(C, M, K, K0, K)
	chk.Deep2(tst, "C", 1e-15, Rows(C), [][]float64{{8, -4}, {-4, 8}})
}

func Test_ipsmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipsmap01. values at stations")

	M := NewIpsMap()
	M.Set("Mz", 1, 3, 10)
	M.Set("Mz", 2, 3, 20)
	M.Set("N", 0, 2, -1)
	assert.Equal(tst, []float64{0, 10, 20}, (*M)["Mz"])
	assert.Equal(tst, []string{"Mz", "N"}, M.Keys())
	assert.Equal(tst, 20.0, M.Get("Mz", 2))
	assert.Equal(tst, 0.0, M.Get("Mz", 5))
	assert.Equal(tst, 0.0, M.Get("Vy", 0))

	// resize
	M.Set("N", 3, 4, 7)
	assert.Equal(tst, []float64{0, 0, 0, 7}, (*M)["N"])
}

func Test_loads01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads01. element loads")

	// uniform
	l, err := NewLoad(LoadUniform, []float64{1, 2, 3})
	require.NoError(tst, err)
	typ, data := l.Data(2)
	assert.Equal(tst, LoadUniform, typ)
	assert.Equal(tst, "uniform", typ.String())
	assert.Equal(tst, []float64{2, 4, 6}, data)

	// point: the position is not scaled
	l, err = NewLoad(LoadPoint, []float64{1, 2, 3, 0.25})
	require.NoError(tst, err)
	typ, data = l.Data(-2)
	assert.Equal(tst, "point", typ.String())
	assert.Equal(tst, []float64{-2, -4, -6, 0.25}, data)

	// errors
	_, err = NewLoad(LoadUniform, []float64{1, 2})
	assert.Error(tst, err)
	_, err = NewLoad(LoadPoint, []float64{1, 2, 3})
	assert.Error(tst, err)
	_, err = NewLoad(LoadType(0), nil)
	assert.Error(tst, err)
	assert.Equal(tst, "unknown", LoadType(0).String())
}

func Test_encoding01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("encoding01. encoders")

	for _, enctype := range []string{"gob", "json"} {
		var buf bytes.Buffer
		in := Rayleigh{AlphaM: 0.1, BetaKc: 0.2}
		require.NoError(tst, GetEncoder(&buf, enctype).Encode(&in))
		var out Rayleigh
		require.NoError(tst, GetDecoder(&buf, enctype).Decode(&out))
		assert.Equal(tst, in, out)
	}
}

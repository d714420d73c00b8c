// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "gonum.org/v1/gonum/mat"

// TrMulSym computes K := trans(T) * A * T
//  Note: work must be a [n][n] matrix; (i,j) and (j,i) terms are averaged so K is exactly symmetric
func TrMulSym(K *mat.SymDense, T *mat.Dense, A mat.Symmetric, work *mat.Dense) {
	work.Mul(A, T) // work := A * T
	n := A.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sij, sji float64
			for k := 0; k < n; k++ {
				sij += T.At(k, i) * work.At(k, j)
				sji += T.At(k, j) * work.At(k, i)
			}
			K.SetSym(i, j, 0.5*(sij+sji))
		}
	}
}

// AddScaledSym computes C := A + α * B
func AddScaledSym(C *mat.SymDense, A mat.Symmetric, α float64, B mat.Symmetric) {
	n := A.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			C.SetSym(i, j, A.At(i, j)+α*B.At(i, j))
		}
	}
}

// Gather copies nodal values into the element vector v; e.g. trial displacements of end nodes
func Gather(v *mat.VecDense, vals ...[]float64) {
	k := 0
	for _, vv := range vals {
		for _, x := range vv {
			v.SetVec(k, x)
			k++
		}
	}
}

// Rows returns a copy of matrix a as [][]float64
func Rows(a mat.Matrix) (res [][]float64) {
	m, n := a.Dims()
	res = make([][]float64, m)
	for i := 0; i < m; i++ {
		res[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			res[i][j] = a.At(i, j)
		}
	}
	return
}

// Symmetric tells whether a is symmetric within tol (absolute)
func Symmetric(a mat.Matrix, tol float64) bool {
	m, n := a.Dims()
	if m != n {
		return false
	}
	for i := 0; i < m; i++ {
		for j := i + 1; j < n; j++ {
			d := a.At(i, j) - a.At(j, i)
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}

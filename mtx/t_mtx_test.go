// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtx

import (
	"math"
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func (a Mat2) slice() [][]float64 {
	return [][]float64{{a[0][0], a[0][1]}, {a[1][0], a[1][1]}}
}

func (a Mat3) slice() [][]float64 {
	return [][]float64{a[0][:], a[1][:], a[2][:]}
}

func Test_mat2a(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat2a. basic operations")

	a := Mat2{{1, 2}, {3, 4}}
	b := Mat2{{-1, 0.5}, {2, 1}}
	chk.Deep2(tst, "a+b", 1e-15, a.Add(b).slice(), [][]float64{{0, 2.5}, {5, 5}})
	chk.Deep2(tst, "a-b", 1e-15, a.Sub(b).slice(), [][]float64{{2, 1.5}, {1, 3}})
	chk.Deep2(tst, "a・b", 1e-15, a.Mul(b).slice(), [][]float64{{3, 2.5}, {5, 5.5}})
	chk.Deep2(tst, "aᵀ", 1e-15, a.T().slice(), [][]float64{{1, 3}, {2, 4}})
	chk.Deep2(tst, "sym(a)", 1e-15, a.Sym().slice(), [][]float64{{1, 2.5}, {2.5, 4}})
	chk.Float64(tst, "tr(a)", 1e-15, a.Tr(), 5)
	chk.Float64(tst, "det(a)", 1e-15, a.Det(), -2)

	v := a.MulVec(r2.Vec{X: 1, Y: -1})
	chk.Array(tst, "a・v", 1e-15, []float64{v.X, v.Y}, []float64{-1, -1})

	o := Outer(r2.Vec{X: 1, Y: 2}, r2.Vec{X: 3, Y: 4})
	chk.Deep2(tst, "u⊗v", 1e-15, o.slice(), [][]float64{{3, 4}, {6, 8}})

	ai, ok := a.Inv()
	if !ok {
		tst.Errorf("a should be invertible\n")
		return
	}
	chk.Deep2(tst, "a・a⁻¹", 1e-15, a.Mul(ai).slice(), I2.slice())

	_, ok = Mat2{{1, 2}, {2, 4}}.Inv()
	if ok {
		tst.Errorf("singular matrix must not be inverted\n")
	}
}

func Test_mat3a(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat3a. inverse and moments")

	var m Mat3
	pts := []Vec3{{1, 0.3, -0.2}, {1, -0.7, -0.2}, {1, 0.3, 0.8}, {1, -0.7, 0.8}, {1, 0.1, 0.1}}
	ws := []float64{0.2, 0.1, 0.3, 0.05, 0.6}
	for i, p := range pts {
		m.AddOuter(ws[i], p)
	}
	chk.Float64(tst, "m01 == m10", 1e-17, m[0][1], m[1][0])
	chk.Float64(tst, "m12 == m21", 1e-17, m[1][2], m[2][1])

	mi, det, ok := m.Inv()
	if !ok {
		tst.Errorf("moment matrix should be invertible\n")
		return
	}
	io.Pforan("det = %v  diagprod = %v\n", det, m.DiagProd())
	if det > m.DiagProd() || det < 0 {
		tst.Errorf("Hadamard bound violated: det=%v diagprod=%v\n", det, m.DiagProd())
	}
	id := Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	chk.Deep2(tst, "m・m⁻¹", 1e-13, m.Mul(mi).slice(), id.slice())

	u := Vec3{1, 2, 3}
	tu, mu := m.TrMulVec(u), m.MulVec(u)
	chk.Array(tst, "mᵀ・u == m・u", 1e-15, tu[:], mu[:])
	chk.Float64(tst, "u・u", 1e-15, u.Dot(u), 14)

	var z Mat3
	_, _, ok = z.Inv()
	if ok {
		tst.Errorf("zero matrix must not be inverted\n")
	}
}

func Test_svd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svd01. signed 2×2 SVD versus gonum")

	mats := []Mat2{
		{{2, 0}, {0, 1}},
		{{1, 0}, {0, -1}},
		{{1.01, 0.02}, {-0.03, 0.98}},
		{{0.5, 1.2}, {-0.3, 2.0}},
		{{0, 1}, {1, 0}},
		Rot(0.7),
		Rot(2.9).Mul(Diag2(3, 0.2)).Mul(Rot(-1.1)),
	}
	for k, a := range mats {
		U, σ, V := SVD(a)

		// rotations
		chk.Float64(tst, io.Sf("%d: det(U)", k), 1e-14, U.Det(), 1)
		chk.Float64(tst, io.Sf("%d: det(V)", k), 1e-14, V.Det(), 1)

		// reconstruction and Jacobian
		b := U.Mul(Diag2(σ[0], σ[1])).Mul(V.T())
		chk.Deep2(tst, io.Sf("%d: U・Σ・Vᵀ", k), 1e-14, b.slice(), a.slice())
		chk.Float64(tst, io.Sf("%d: σ0・σ1 == det", k), 1e-14, σ[0]*σ[1], a.Det())

		// oracle
		var svd mat.SVD
		ok := svd.Factorize(mat.NewDense(2, 2, []float64{a[0][0], a[0][1], a[1][0], a[1][1]}), mat.SVDFull)
		if !ok {
			tst.Errorf("gonum SVD failed\n")
			return
		}
		ref := svd.Values(nil)
		got := []float64{math.Abs(σ[0]), math.Abs(σ[1])}
		sort.Sort(sort.Reverse(sort.Float64Slice(got)))
		chk.Array(tst, io.Sf("%d: |σ|", k), 1e-14, got, ref)
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mtx implements small fixed-size matrices (2×2 and 3×3) used inside particle loops.
// All types are values; no operation allocates.
package mtx

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Mat2 is a 2×2 matrix stored by rows
type Mat2 [2][2]float64

// I2 is the 2×2 identity
var I2 = Mat2{{1, 0}, {0, 1}}

// Diag2 returns the diagonal matrix diag(a, b)
func Diag2(a, b float64) Mat2 {
	return Mat2{{a, 0}, {0, b}}
}

// Outer returns u ⊗ v
func Outer(u, v r2.Vec) Mat2 {
	return Mat2{{u.X * v.X, u.X * v.Y}, {u.Y * v.X, u.Y * v.Y}}
}

// Add returns a + b
func (a Mat2) Add(b Mat2) Mat2 {
	return Mat2{{a[0][0] + b[0][0], a[0][1] + b[0][1]}, {a[1][0] + b[1][0], a[1][1] + b[1][1]}}
}

// Sub returns a - b
func (a Mat2) Sub(b Mat2) Mat2 {
	return Mat2{{a[0][0] - b[0][0], a[0][1] - b[0][1]}, {a[1][0] - b[1][0], a[1][1] - b[1][1]}}
}

// Scale returns s・a
func (a Mat2) Scale(s float64) Mat2 {
	return Mat2{{s * a[0][0], s * a[0][1]}, {s * a[1][0], s * a[1][1]}}
}

// Mul returns a・b
func (a Mat2) Mul(b Mat2) Mat2 {
	return Mat2{
		{a[0][0]*b[0][0] + a[0][1]*b[1][0], a[0][0]*b[0][1] + a[0][1]*b[1][1]},
		{a[1][0]*b[0][0] + a[1][1]*b[1][0], a[1][0]*b[0][1] + a[1][1]*b[1][1]},
	}
}

// MulVec returns a・v
func (a Mat2) MulVec(v r2.Vec) r2.Vec {
	return r2.Vec{X: a[0][0]*v.X + a[0][1]*v.Y, Y: a[1][0]*v.X + a[1][1]*v.Y}
}

// T returns the transpose
func (a Mat2) T() Mat2 {
	return Mat2{{a[0][0], a[1][0]}, {a[0][1], a[1][1]}}
}

// Sym returns the symmetric part (a + aᵀ)/2
func (a Mat2) Sym() Mat2 {
	off := 0.5 * (a[0][1] + a[1][0])
	return Mat2{{a[0][0], off}, {off, a[1][1]}}
}

// Tr returns the trace
func (a Mat2) Tr() float64 {
	return a[0][0] + a[1][1]
}

// Det returns the determinant
func (a Mat2) Det() float64 {
	return a[0][0]*a[1][1] - a[0][1]*a[1][0]
}

// Inv returns the inverse. ok is false if the determinant is zero
func (a Mat2) Inv() (ai Mat2, ok bool) {
	det := a.Det()
	if det == 0 {
		return
	}
	ai = Mat2{{a[1][1] / det, -a[0][1] / det}, {-a[1][0] / det, a[0][0] / det}}
	return ai, true
}

// IsFinite tells whether all components are finite
func (a Mat2) IsFinite() bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.IsNaN(a[i][j]) || math.IsInf(a[i][j], 0) {
				return false
			}
		}
	}
	return true
}

// Rot returns the rotation matrix for angle θ
func Rot(θ float64) Mat2 {
	s, c := math.Sincos(θ)
	return Mat2{{c, -s}, {s, c}}
}

// SVD computes the signed singular value decomposition a = U・diag(σ)・Vᵀ where U and V are proper
// rotations. σ[0] ≥ |σ[1]| and σ[1] is negative when det(a) < 0, hence σ[0]・σ[1] == det(a)
func SVD(a Mat2) (U Mat2, σ [2]float64, V Mat2) {
	e := 0.5 * (a[0][0] + a[1][1])
	f := 0.5 * (a[0][0] - a[1][1])
	g := 0.5 * (a[1][0] + a[0][1])
	h := 0.5 * (a[1][0] - a[0][1])
	q := math.Hypot(e, h)
	r := math.Hypot(f, g)
	σ[0] = q + r
	σ[1] = q - r
	a1 := math.Atan2(g, f)
	a2 := math.Atan2(h, e)
	U = Rot(0.5 * (a2 + a1))
	V = Rot(0.5 * (a2 - a1)).T()
	return
}

// IsFinite tells whether both components of v are finite
func IsFinite(v r2.Vec) bool {
	return !(math.IsNaN(v.X) || math.IsInf(v.X, 0) || math.IsNaN(v.Y) || math.IsInf(v.Y, 0))
}

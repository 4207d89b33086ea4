// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtx

// Vec3 is a 3-vector; e.g. the linear basis P = [1, Δx, Δy]
type Vec3 [3]float64

// Mat3 is a 3×3 matrix stored by rows
type Mat3 [3][3]float64

// Dot returns u・v
func (u Vec3) Dot(v Vec3) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// AddOuter performs a += w・p⊗p
func (a *Mat3) AddOuter(w float64, p Vec3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] += w * p[i] * p[j]
		}
	}
}

// MulVec returns a・v
func (a Mat3) MulVec(v Vec3) (r Vec3) {
	for i := 0; i < 3; i++ {
		r[i] = a[i][0]*v[0] + a[i][1]*v[1] + a[i][2]*v[2]
	}
	return
}

// TrMulVec returns aᵀ・v
func (a Mat3) TrMulVec(v Vec3) (r Vec3) {
	for i := 0; i < 3; i++ {
		r[i] = a[0][i]*v[0] + a[1][i]*v[1] + a[2][i]*v[2]
	}
	return
}

// Det returns the determinant
func (a Mat3) Det() float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// DiagProd returns the product of the diagonal entries. For a symmetric positive semi-definite
// matrix, 0 ≤ det ≤ DiagProd (Hadamard)
func (a Mat3) DiagProd() float64 {
	return a[0][0] * a[1][1] * a[2][2]
}

// Inv returns the inverse via the adjugate and the determinant. ok is false if det == 0
func (a Mat3) Inv() (ai Mat3, det float64, ok bool) {
	det = a.Det()
	if det == 0 {
		return
	}
	c := 1.0 / det
	ai[0][0] = c * (a[1][1]*a[2][2] - a[1][2]*a[2][1])
	ai[0][1] = c * (a[0][2]*a[2][1] - a[0][1]*a[2][2])
	ai[0][2] = c * (a[0][1]*a[1][2] - a[0][2]*a[1][1])
	ai[1][0] = c * (a[1][2]*a[2][0] - a[1][0]*a[2][2])
	ai[1][1] = c * (a[0][0]*a[2][2] - a[0][2]*a[2][0])
	ai[1][2] = c * (a[0][2]*a[1][0] - a[0][0]*a[1][2])
	ai[2][0] = c * (a[1][0]*a[2][1] - a[1][1]*a[2][0])
	ai[2][1] = c * (a[0][1]*a[2][0] - a[0][0]*a[2][1])
	ai[2][2] = c * (a[0][0]*a[1][1] - a[0][1]*a[1][0])
	return ai, det, true
}

// Mul returns a・b
func (a Mat3) Mul(b Mat3) (c Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements reproducing kernel (RK) shape functions on regular lattices
package shp

import (
	"math"

	"github.com/cpmech/gompm/mtx"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// constants
const (
	TOLSING = 1e-10 // default minimum det(M)/diagprod(M) before falling back to the pseudo-inverse
	RCOND   = 1e-12 // relative cutoff of singular values in the pseudo-inverse
)

// RK holds lattice data and the scratchpad of linear reproducing kernel shape functions.
// The stencil of a point x is the block of NodeNum×NodeNum lattice points starting at Base.
// Stencil entries are numbered k = i・NodeNum + j where i runs along x and j along y.
type RK struct {

	// lattice
	Kind    KernelKind // window kind
	Win     KernelFunc // window function
	A       float64    // support size a = aNorm・dx
	Dx      float64    // lattice spacing
	Origin  float64    // coordinate of lattice point 0 (both axes)
	N       int        // number of lattice points along each axis
	NodeNum int        // number of lattice points in the stencil along each axis
	Shift   float64    // subtracted from (x-Origin)/dx before truncation to get Base
	TolSing float64    // minimum det(M)/diagprod(M) accepted by the closed-form inverse

	// scratchpad
	Base    [2]int       // stencil origin (lattice indices)
	Active  []bool       // [nodeNum²] stencil entry lies inside the lattice
	W       []float64    // [nodeNum²] 2D window weights
	S       []float64    // [nodeNum²] shape functions φ
	Gx      []float64    // [nodeNum²] ∂φ/∂x
	Gy      []float64    // [nodeNum²] ∂φ/∂y
	M       mtx.Mat3     // moment matrix
	Minv    mtx.Mat3     // inverse (or pseudo-inverse) of M
	IllCond bool         // M was singular or nearly so; Minv is the pseudo-inverse
	w1      [][2]float64 // [nodeNum][2] 1D windows
}

// NodeNum returns the number of lattice points in the support along one axis
func NodeNum(a, dx, eps float64) int {
	return int(2*a/dx + eps)
}

// Shift returns the offset used to compute the stencil base
func Shift(a, dx float64) float64 {
	return a/dx - 1
}

// NewRK returns a new RK structure
//  Input:
//   kind    -- window kind
//   a       -- support size
//   dx      -- lattice spacing
//   origin  -- coordinate of lattice point 0
//   n       -- number of lattice points along each axis
//   nodeNum -- number of stencil points along each axis
//   shift   -- offset used to compute the base
func NewRK(kind KernelKind, a, dx, origin float64, n, nodeNum int, shift float64) (o *RK) {
	if nodeNum < 2 {
		chk.Panic("RK stencil needs at least 2 points per axis. nodeNum = %d", nodeNum)
	}
	o = new(RK)
	o.Kind = kind
	o.Win = GetKernel(kind)
	if o.Win == nil {
		chk.Panic("cannot find kernel of kind %d", kind)
	}
	o.A = a
	o.Dx = dx
	o.Origin = origin
	o.N = n
	o.NodeNum = nodeNum
	o.Shift = shift
	o.TolSing = TOLSING
	o.init_scratchpad()
	return
}

// GetCopy returns a new copy with its own scratchpad; e.g. one per goroutine
func (o *RK) GetCopy() *RK {
	p := *o
	p.init_scratchpad()
	return &p
}

// BaseOf returns the stencil base of point x
func (o *RK) BaseOf(x r2.Vec) (base [2]int) {
	base[0] = int((x.X-o.Origin)/o.Dx - o.Shift)
	base[1] = int((x.Y-o.Origin)/o.Dx - o.Shift)
	return
}

// Calc computes shape functions and derivatives at x using the base of x
func (o *RK) Calc(x r2.Vec) (err error) {
	return o.CalcAt(x, o.BaseOf(x))
}

// CalcAt computes shape functions and derivatives at x for a given stencil base.
// Stencil points outside the lattice are excluded; i.e. they get zero weight.
//  Output: Active, W, S, Gx, Gy, M, Minv and IllCond
func (o *RK) CalcAt(x r2.Vec, base [2]int) (err error) {

	// 1D windows
	o.Base = base
	n := o.NodeNum
	xp := [2]float64{x.X, x.Y}
	for i := 0; i < n; i++ {
		for d := 0; d < 2; d++ {
			o.w1[i][d] = 0
			idx := base[d] + i
			if idx < 0 || idx >= o.N {
				continue
			}
			z := math.Abs(xp[d]-o.coord(idx)) / o.A
			o.w1[i][d] = o.Win(z)
		}
	}

	// weights and moment matrix
	o.M = mtx.Mat3{}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := i*n + j
			o.S[k], o.Gx[k], o.Gy[k], o.W[k] = 0, 0, 0, 0
			o.Active[k] = o.inside(base[0]+i) && o.inside(base[1]+j)
			if !o.Active[k] {
				continue
			}
			o.W[k] = o.w1[i][0] * o.w1[j][1]
			if o.W[k] != 0 {
				o.M.AddOuter(o.W[k], o.basis(x, k))
			}
		}
	}
	if o.M[0][0] == 0 {
		return chk.Err("RK stencil at x=(%g,%g) with base=%v has no points inside the support", x.X, x.Y, base)
	}

	// inverse of moment matrix
	o.IllCond = false
	mi, det, ok := o.M.Inv()
	if !ok || math.Abs(det) <= o.TolSing*math.Abs(o.M.DiagProd()) {
		o.Minv = pinv3(o.M, RCOND)
		o.IllCond = true
	} else {
		o.Minv = mi
	}

	// φ = w・[1,0,0]・M⁻¹・P ;  ∂φ/∂x = w・[0,-1,0]・M⁻¹・P ;  ∂φ/∂y = w・[0,0,-1]・M⁻¹・P
	for k := range o.S {
		if o.W[k] == 0 {
			continue
		}
		q := o.Minv.MulVec(o.basis(x, k))
		o.S[k] = o.W[k] * q[0]
		o.Gx[k] = -o.W[k] * q[1]
		o.Gy[k] = -o.W[k] * q[2]
	}
	return
}

// Indices returns the lattice indices of stencil entry k
func (o *RK) Indices(k int) (i, j int) {
	return o.Base[0] + k/o.NodeNum, o.Base[1] + k%o.NodeNum
}

// Index returns the flat lattice index (i・N + j) of stencil entry k
func (o *RK) Index(k int) int {
	i, j := o.Indices(k)
	return i*o.N + j
}

// Coords returns the coordinates of stencil entry k
func (o *RK) Coords(k int) r2.Vec {
	i, j := o.Indices(k)
	return r2.Vec{X: o.coord(i), Y: o.coord(j)}
}

// Residuals returns the reproducing residuals at x; must be called after Calc
//  Output:
//   pou    -- Σφ - 1
//   cons   -- |Σφ・xI - x|
//   consDx -- |Σ∂φ/∂x・xI - [1,0]|
//   consDy -- |Σ∂φ/∂y・xI - [0,1]|
func (o *RK) Residuals(x r2.Vec) (pou, cons, consDx, consDy float64) {
	var sx, sy, gxx, gxy, gyx, gyy float64
	for k := range o.S {
		if !o.Active[k] {
			continue
		}
		xI := o.Coords(k)
		pou += o.S[k]
		sx += o.S[k] * xI.X
		sy += o.S[k] * xI.Y
		gxx += o.Gx[k] * xI.X
		gxy += o.Gx[k] * xI.Y
		gyx += o.Gy[k] * xI.X
		gyy += o.Gy[k] * xI.Y
	}
	pou -= 1
	cons = math.Hypot(sx-x.X, sy-x.Y)
	consDx = math.Hypot(gxx-1, gxy)
	consDy = math.Hypot(gyx, gyy-1)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// init_scratchpad allocates the scratchpad
func (o *RK) init_scratchpad() {
	nn := o.NodeNum * o.NodeNum
	o.Active = make([]bool, nn)
	o.W = make([]float64, nn)
	o.S = make([]float64, nn)
	o.Gx = make([]float64, nn)
	o.Gy = make([]float64, nn)
	o.w1 = make([][2]float64, o.NodeNum)
}

func (o *RK) coord(idx int) float64 {
	return o.Origin + float64(idx)*o.Dx
}

func (o *RK) inside(idx int) bool {
	return idx >= 0 && idx < o.N
}

// basis returns P = [1, x - xI, y - yI] for stencil entry k
func (o *RK) basis(x r2.Vec, k int) mtx.Vec3 {
	xI := o.Coords(k)
	return mtx.Vec3{1, x.X - xI.X, x.Y - xI.Y}
}

// pinv3 computes the Moore-Penrose pseudo-inverse of a 3×3 matrix; singular values below
// rcond・σmax are discarded
func pinv3(a mtx.Mat3, rcond float64) (ai mtx.Mat3) {
	var svd mat.SVD
	ok := svd.Factorize(mat.NewDense(3, 3, []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	}), mat.SVDFull)
	if !ok {
		return
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)
	for k := 0; k < 3; k++ {
		if s[k] <= rcond*s[0] {
			continue
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				ai[i][j] += v.At(i, k) * u.At(j, k) / s[k]
			}
		}
	}
	return
}

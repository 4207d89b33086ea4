// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r2"
)

// CheckPoU checks the partition of unity Σφ = 1 at x
func CheckPoU(tst *testing.T, o *RK, x r2.Vec, tol float64, verbose bool) {
	err := o.Calc(x)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	pou, _, _, _ := o.Residuals(x)
	if verbose {
		io.Pf("x = (%g,%g) base = %v  Σφ-1 = %g\n", x.X, x.Y, o.Base, pou)
	}
	if math.Abs(pou) > tol {
		tst.Errorf("partition of unity failed at x=(%g,%g) with err = %g\n", x.X, x.Y, pou)
	}
}

// CheckConsistency checks the linear reproducing conditions Σφ・xI = x and Σ∇φ⊗xI = I at x
func CheckConsistency(tst *testing.T, o *RK, x r2.Vec, tol float64, verbose bool) {
	err := o.Calc(x)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	_, cons, consDx, consDy := o.Residuals(x)
	if verbose {
		io.Pforan("x = (%g,%g)  cons = %g  consDx = %g  consDy = %g\n", x.X, x.Y, cons, consDx, consDy)
	}
	if cons > tol {
		tst.Errorf("Σφ・xI = x failed at x=(%g,%g) with err = %g\n", x.X, x.Y, cons)
	}
	if consDx > tol || consDy > tol {
		tst.Errorf("Σ∇φ⊗xI = I failed at x=(%g,%g) with errs = %g, %g\n", x.X, x.Y, consDx, consDy)
	}
}

// CheckGrad compares the RK gradients of the linear field u = c0 + c1・x + c2・y with numerical
// derivatives of its interpolant Σφ(x)・u(xI); the stencil base is kept fixed
func CheckGrad(tst *testing.T, o *RK, x r2.Vec, c [3]float64, tol float64, verbose bool) {

	// nodal values
	field := func(k int) float64 {
		xI := o.Coords(k)
		return c[0] + c[1]*xI.X + c[2]*xI.Y
	}
	interp := func(y r2.Vec, base [2]int) (res float64, err error) {
		err = o.CalcAt(y, base)
		for k := range o.S {
			res += o.S[k] * field(k)
		}
		return
	}

	// analytical
	base := o.BaseOf(x)
	err := o.CalcAt(x, base)
	if err != nil {
		tst.Errorf("CalcAt failed:\n%v", err)
		return
	}
	var gx, gy float64
	for k := range o.S {
		gx += o.Gx[k] * field(k)
		gy += o.Gy[k] * field(k)
	}

	// numerical
	h := 1e-3 * o.Dx
	dx, err := deriv5(x.X, h, func(t float64) (float64, error) {
		return interp(r2.Vec{X: t, Y: x.Y}, base)
	})
	if err != nil {
		tst.Errorf("CalcAt failed:\n%v", err)
		return
	}
	dy, err := deriv5(x.Y, h, func(t float64) (float64, error) {
		return interp(r2.Vec{X: x.X, Y: t}, base)
	})
	if err != nil {
		tst.Errorf("CalcAt failed:\n%v", err)
		return
	}
	chk.AnaNum(tst, "du/dx", tol, gx, dx, verbose)
	chk.AnaNum(tst, "du/dy", tol, gy, dy, verbose)
}

// deriv5 computes df/dx with the 5-point central difference rule
func deriv5(x, h float64, f func(t float64) (float64, error)) (res float64, err error) {
	var v [4]float64
	for i, t := range []float64{x - 2*h, x - h, x + h, x + 2*h} {
		v[i], err = f(t)
		if err != nil {
			return
		}
	}
	return (v[0] - 8*v[1] + 8*v[2] - v[3]) / (12 * h), nil
}

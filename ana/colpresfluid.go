// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify simulations
package ana

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// ColumnFluidPressure computes pressure (p) and intrinsic density (R) of a fluid
// along a column with gravity (g). With a linear state equation:
//
//    R  = R0 + C・(p - p0)   thus   dR/dp = C
//    dp = -R(p)・g・dz
//
// integration from z=H (where p=p0) gives
//
//    p(z) = p0 + (R0/C)・(exp(C・g・(H - z)) - 1)
//
// With C → 0 (incompressible) the hydrostatic law p = p0 + R0・g・(H - z) is recovered
type ColumnFluidPressure struct {
	R0   float64 // intrinsic density corresponding to p0
	P0   float64 // pressure corresponding to R0
	C    float64 // compressibility coefficient; e.g. R0/Kbulk
	Grav float64 // gravity acceleration (positive constant)
	H    float64 // elevation where (R0,p0) is known
}

// Init initialises this structure
func (o *ColumnFluidPressure) Init(R0, p0, C, g, H float64) {
	o.R0 = R0
	o.P0 = p0
	o.C = C
	o.Grav = g
	o.H = H
}

// Calc computes pressure and density
func (o ColumnFluidPressure) Calc(z float64) (p, R float64) {
	if o.C == 0 {
		return o.P0 + o.R0*o.Grav*(o.H-z), o.R0
	}
	p = o.P0 + (o.R0/o.C)*math.Expm1(o.C*o.Grav*(o.H-z))
	R = o.R0 + o.C*(p-o.P0)
	return
}

// Profile computes pressure and density at np points along [0, H]
func (o ColumnFluidPressure) Profile(np int) (Z, P, R []float64) {
	Z = utl.LinSpace(0, o.H, np)
	P = make([]float64, np)
	R = make([]float64, np)
	for i, z := range Z {
		P[i], R[i] = o.Calc(z)
	}
	return
}

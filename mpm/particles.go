// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mtx"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/spatial/r2"
)

// Particles holds the state of all material points (one slice per field)
//  Invariants after each substep: M = Vol0・Rho0 ; Vol = Vol0・J ; Rho = Rho0/J
type Particles struct {
	Np   int        // number of particles
	Rho0 float64    // reference density
	X    []r2.Vec   // [np] position
	V    []r2.Vec   // [np] velocity
	L    []mtx.Mat2 // [np] velocity gradient
	F    []mtx.Mat2 // [np] deformation gradient
	Sig  []mtx.Mat2 // [np] Cauchy stress
	Vol0 []float64  // [np] reference volume
	Vol  []float64  // [np] current volume
	M    []float64  // [np] mass
	Rho  []float64  // [np] density
	J    []float64  // [np] det(F)
	P    []float64  // [np] pressure
	Div  []float64  // [np] velocity divergence
	Mat  []int      // [np] material id

	// diagnostics recomputed in P2G
	PoU     []float64 // [np] Σφ - 1
	Cons    []float64 // [np] |Σφ・xI - x|
	ConsDx  []float64 // [np] |Σ∂φ/∂x・xI - [1,0]|
	ConsDy  []float64 // [np] |Σ∂φ/∂y・xI - [0,1]|
	IllCond []bool    // [np] moment matrix was singular
}

// NewParticles allocates np particles at rest with F = I
func NewParticles(np int, rho0 float64) (o *Particles) {
	o = new(Particles)
	o.Np = np
	o.Rho0 = rho0
	o.X = make([]r2.Vec, np)
	o.V = make([]r2.Vec, np)
	o.L = make([]mtx.Mat2, np)
	o.F = make([]mtx.Mat2, np)
	o.Sig = make([]mtx.Mat2, np)
	o.Vol0 = make([]float64, np)
	o.Vol = make([]float64, np)
	o.M = make([]float64, np)
	o.Rho = make([]float64, np)
	o.J = make([]float64, np)
	o.P = make([]float64, np)
	o.Div = make([]float64, np)
	o.Mat = make([]int, np)
	o.PoU = make([]float64, np)
	o.Cons = make([]float64, np)
	o.ConsDx = make([]float64, np)
	o.ConsDy = make([]float64, np)
	o.IllCond = make([]bool, np)
	for p := 0; p < np; p++ {
		o.F[p] = mtx.I2
		o.J[p] = 1
		o.Rho[p] = rho0
	}
	return
}

// SetVolume sets the reference and current volumes and the mass of particle p
func (o *Particles) SetVolume(p int, vol0 float64) {
	o.Vol0[p] = vol0
	o.Vol[p] = vol0
	o.M[p] = vol0 * o.Rho0
}

// NewBlock returns the particles of the initial block of fluid; i.e. an nx×ny regular lattice
// filling [0,w]×[0,h] shifted by the skirt of the grid. Particles are numbered row by row
func NewBlock(sim *inp.Simulation) (o *Particles) {
	b := sim.Block
	o = NewParticles(b.Nx*b.Ny, sim.Material.Fluid.GetRho())
	xx := lattice(b.W, b.Nx, sim.Grid.Xmin)
	yy := lattice(b.H, b.Ny, sim.Grid.Xmin)
	vol0 := b.W * b.H / float64(o.Np)
	for j := 0; j < b.Ny; j++ {
		for i := 0; i < b.Nx; i++ {
			p := j*b.Nx + i
			o.X[p] = r2.Vec{X: xx[i], Y: yy[j]}
			o.Mat[p] = b.Mat
			o.SetVolume(p, vol0)
		}
	}
	return
}

// lattice returns n equally spaced coordinates spanning [x0, x0+l]; a single point goes to the middle
func lattice(l float64, n int, x0 float64) []float64 {
	if n == 1 {
		return []float64{x0 + l/2}
	}
	return utl.LinSpace(x0, x0+l, n)
}

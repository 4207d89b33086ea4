// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mtx"
	"gonum.org/v1/gonum/spatial/r2"
)

// Grid holds the transient accumulators of the background lattice. Node (i,j) is stored at i・N + j.
//  P2G fills Mass, V0 and V with momenta and P with pressure×volume; Solve converts them in place
//  into velocities and pressure for the nodes with invertible mass matrix (Active)
type Grid struct {
	N      int        // number of nodes along each axis
	Mass   []mtx.Mat2 // [n²] mass matrix
	V0     []r2.Vec   // [n²] momentum before forces => velocity before forces
	V      []r2.Vec   // [n²] momentum after forces => velocity after forces
	Vol    []float64  // [n²] volume
	P      []float64  // [n²] pressure×volume => pressure
	Active []bool     // [n²] mass matrix is invertible
}

// NewGrid allocates a grid with n×n nodes
func NewGrid(n int) (o *Grid) {
	o = new(Grid)
	o.N = n
	nn := n * n
	o.Mass = make([]mtx.Mat2, nn)
	o.V0 = make([]r2.Vec, nn)
	o.V = make([]r2.Vec, nn)
	o.Vol = make([]float64, nn)
	o.P = make([]float64, nn)
	o.Active = make([]bool, nn)
	return
}

// Zero zeroes nodes in [lo,hi)
func (o *Grid) Zero(lo, hi int) {
	for I := lo; I < hi; I++ {
		o.Mass[I] = mtx.Mat2{}
		o.V0[I] = r2.Vec{}
		o.V[I] = r2.Vec{}
		o.Vol[I] = 0
		o.P[I] = 0
		o.Active[I] = false
	}
}

// AddFrom adds the accumulators of another grid of the same size to nodes in [lo,hi)
func (o *Grid) AddFrom(b *Grid, lo, hi int) {
	for I := lo; I < hi; I++ {
		o.Mass[I] = o.Mass[I].Add(b.Mass[I])
		o.V0[I] = r2.Add(o.V0[I], b.V0[I])
		o.V[I] = r2.Add(o.V[I], b.V[I])
		o.Vol[I] += b.Vol[I]
		o.P[I] += b.P[I]
	}
}

// Solve converts the accumulators of nodes in [lo,hi) into velocities and pressures
//  Nodes with non-invertible mass matrix are left untouched and marked inactive
func (o *Grid) Solve(lo, hi int) {
	for I := lo; I < hi; I++ {
		if o.Vol[I] != 0 {
			o.P[I] /= o.Vol[I]
		}
		mi, ok := o.Mass[I].Inv()
		o.Active[I] = ok
		if !ok {
			continue
		}
		o.V0[I] = mi.MulVec(o.V0[I])
		o.V[I] = mi.MulVec(o.V[I])
	}
}

// Clip sets to zero the outward normal velocity of active nodes in [lo,hi) lying within the
// clipping layers of the walls. Calling Clip twice gives the same result as calling it once
func (o *Grid) Clip(geo *inp.GridData, lo, hi int) {
	for I := lo; I < hi; I++ {
		if !o.Active[I] {
			continue
		}
		i, j := I/o.N, I%o.N
		v := &o.V[I]
		if (geo.NearWall(i, true) && v.X < 0) || (geo.NearWall(i, false) && v.X > 0) {
			v.X = 0
		}
		if (geo.NearWall(j, true) && v.Y < 0) || (geo.NearWall(j, false) && v.Y > 0) {
			v.Y = 0
		}
	}
}

// Cells holds the accumulators of the divergence projector on the lattice of cell centres
type Cells struct {
	N   int       // number of cells along each axis
	Num []float64 // [n²] Σ div・Vol0・φ
	Den []float64 // [n²] Σ Vol0・φ
	Div []float64 // [n²] cell-averaged divergence
}

// NewCells allocates n×n cells
func NewCells(n int) (o *Cells) {
	o = new(Cells)
	o.N = n
	o.Num = make([]float64, n*n)
	o.Den = make([]float64, n*n)
	o.Div = make([]float64, n*n)
	return
}

// Zero zeroes cells in [lo,hi)
func (o *Cells) Zero(lo, hi int) {
	for I := lo; I < hi; I++ {
		o.Num[I], o.Den[I], o.Div[I] = 0, 0, 0
	}
}

// AddFrom adds the accumulators of another set of cells to cells in [lo,hi)
func (o *Cells) AddFrom(b *Cells, lo, hi int) {
	for I := lo; I < hi; I++ {
		o.Num[I] += b.Num[I]
		o.Den[I] += b.Den[I]
	}
}

// Average computes the cell-averaged divergence of cells in [lo,hi)
func (o *Cells) Average(eps float64, lo, hi int) {
	for I := lo; I < hi; I++ {
		o.Div[I] = o.Num[I] / (o.Den[I] + eps)
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpm implements the material point method with reproducing kernel shape functions
package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mdl/fluid"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
)

// State holds everything that is modified along the simulation
//  Each worker of the pool owns one shape functions evaluator per lattice and one private copy of
//  the grid (and cells) accumulators; with a single worker the private copies are the main ones
type State struct {
	Sim   *inp.Simulation // simulation data
	Mdl   fluid.Model     // constitutive model
	Par   *Particles      // particles
	Grid  *Grid           // background grid
	Cells *Cells          // projector cells; nil if divbar is off
	T     float64         // current time
	Step  int             // number of substeps taken

	// workers
	pool     Pool      // worker pool
	rks      []*shp.RK // [nworkers] evaluators on the node lattice
	cks      []*shp.RK // [nworkers] evaluators on the cell lattice
	prk      *shp.RK   // evaluator for the penalty points
	grids    []*Grid   // [nworkers] private grid accumulators
	cellbufs []*Cells  // [nworkers] private cell accumulators
	private  bool      // workers accumulate into private copies that need reduction

	// diagnostics
	penIllCond int // penalty points with ill-conditioned moment matrix in the last substep
}

// NewState allocates a new state. If par is nil, the block of fluid defined in sim is used
func NewState(sim *inp.Simulation, par *Particles) (o *State) {
	if sim.Material.Fluid == nil {
		chk.Panic("material of simulation must be initialised (call PostProcess first)")
	}
	o = new(State)
	o.Sim = sim
	o.Mdl = sim.Material.Fluid
	o.Par = par
	if o.Par == nil {
		o.Par = NewBlock(sim)
	}
	for p := 0; p < o.Par.Np; p++ {
		o.Par.Sig[p] = o.Mdl.Stress(o.Par.P[p], o.Par.L[p])
	}

	// grid and cells
	geo := &sim.Grid
	num := &sim.Numerics
	o.Grid = NewGrid(geo.N)
	if num.DivBar {
		o.Cells = NewCells(geo.Ncells)
	}

	// workers
	nw := num.Nworkers
	if nw < 1 {
		nw = 1
	}
	o.pool = Pool{Nworkers: nw}
	o.private = nw > 1
	rk := geo.NewRK(num.KernelKind)
	o.prk = rk
	o.rks = make([]*shp.RK, nw)
	o.grids = make([]*Grid, nw)
	for w := 0; w < nw; w++ {
		o.rks[w] = rk.GetCopy()
		o.grids[w] = o.Grid
		if o.private {
			o.grids[w] = NewGrid(geo.N)
		}
	}
	if num.DivBar {
		ck := geo.NewCellRK(num.KernelKind)
		o.cks = make([]*shp.RK, nw)
		o.cellbufs = make([]*Cells, nw)
		for w := 0; w < nw; w++ {
			o.cks[w] = ck.GetCopy()
			o.cellbufs[w] = o.Cells
			if o.private {
				o.cellbufs[w] = NewCells(geo.Ncells)
			}
		}
	}
	return
}

// ZeroGrid zeroes all grid accumulators (main and private ones)
func (o *State) ZeroGrid() error {
	nn := o.Grid.N * o.Grid.N
	return o.pool.Run(nn, func(w, lo, hi int) error {
		o.Grid.Zero(lo, hi)
		if o.private {
			for _, g := range o.grids {
				g.Zero(lo, hi)
			}
		}
		return nil
	})
}

// ReduceGrid adds the private accumulators of all workers to the main grid in worker order
func (o *State) ReduceGrid() error {
	if !o.private {
		return nil
	}
	nn := o.Grid.N * o.Grid.N
	return o.pool.Run(nn, func(w, lo, hi int) error {
		for _, g := range o.grids {
			o.Grid.AddFrom(g, lo, hi)
		}
		return nil
	})
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"

	"github.com/cpmech/gompm/mtx"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Health reports the numerical quality of the particles after a substep
type Health struct {
	IllCond    int     // moment matrix needed the pseudo-inverse
	PenIllCond int     // same as IllCond but at penalty sample points
	NonFinite  int     // NaN or Inf in position, velocity, pressure or stress
	Inverted   int     // J ≤ 0
	OutOfGrid  int     // position outside the node lattice
	Inactive   int     // nodes without mass
	MinJ       float64 // minimum J
	MaxJ       float64 // maximum J
	MaxV       float64 // maximum |v|
	MaxPoU     float64 // maximum |Σφ - 1|
}

// CheckHealth computes the health report of the current state
func (o *State) CheckHealth() (h Health) {
	par := o.Par
	h.PenIllCond = o.penIllCond
	if par.Np == 0 {
		return
	}
	geo := &o.Sim.Grid
	xmax := float64(geo.N-1) * geo.Dx
	speed := make([]float64, par.Np)
	pou := make([]float64, par.Np)
	for p := 0; p < par.Np; p++ {
		x := par.X[p]
		if par.IllCond[p] {
			h.IllCond++
		}
		if !mtx.IsFinite(x) || !mtx.IsFinite(par.V[p]) || math.IsNaN(par.P[p]) || math.IsInf(par.P[p], 0) || !par.Sig[p].IsFinite() {
			h.NonFinite++
		}
		if !(par.J[p] > 0) {
			h.Inverted++
		}
		if !(x.X >= 0 && x.X <= xmax && x.Y >= 0 && x.Y <= xmax) {
			h.OutOfGrid++
		}
		speed[p] = math.Hypot(par.V[p].X, par.V[p].Y)
		pou[p] = math.Abs(par.PoU[p])
	}
	for _, active := range o.Grid.Active {
		if !active {
			h.Inactive++
		}
	}
	h.MinJ = floats.Min(par.J)
	h.MaxJ = floats.Max(par.J)
	h.MaxV = floats.Max(speed)
	h.MaxPoU = floats.Max(pou)
	return
}

// Merge combines the report of a later substep into o. Counters keep the worst substep
func (o *Health) Merge(b Health) {
	o.IllCond = max(o.IllCond, b.IllCond)
	o.PenIllCond = max(o.PenIllCond, b.PenIllCond)
	o.NonFinite = max(o.NonFinite, b.NonFinite)
	o.Inverted = max(o.Inverted, b.Inverted)
	o.OutOfGrid = max(o.OutOfGrid, b.OutOfGrid)
	o.Inactive = max(o.Inactive, b.Inactive)
	o.MinJ = math.Min(o.MinJ, b.MinJ)
	o.MaxJ = math.Max(o.MaxJ, b.MaxJ)
	o.MaxV = math.Max(o.MaxV, b.MaxV)
	o.MaxPoU = math.Max(o.MaxPoU, b.MaxPoU)
}

// Err returns an error if the run cannot continue; i.e. some particles are inverted or outside
// the lattice
func (o Health) Err() error {
	if o.Inverted > 0 {
		return chk.Err("%d particles have non-positive Jacobian (min J = %g)", o.Inverted, o.MinJ)
	}
	if o.OutOfGrid > 0 {
		return chk.Err("%d particles left the grid", o.OutOfGrid)
	}
	return nil
}

// Warn prints warnings about ill-conditioned shape functions and non-finite values
func (o Health) Warn(t float64) {
	if o.IllCond > 0 {
		io.Pfyel("t = %g: %d particles with ill-conditioned moment matrix\n", t, o.IllCond)
	}
	if o.PenIllCond > 0 {
		io.Pfyel("t = %g: %d penalty points with ill-conditioned moment matrix\n", t, o.PenIllCond)
	}
	if o.NonFinite > 0 {
		io.PfRed("t = %g: %d particles with non-finite values\n", t, o.NonFinite)
	}
}

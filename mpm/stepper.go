// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"

	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/out"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Substep advances the state by one time step
//  zero grid → penalty → P2G → reduce → solve → G2P → projector → health
// The returned error is non-nil if any phase fails or the health report is fatal
func (o *State) Substep() (h Health, err error) {
	num := &o.Sim.Numerics
	err = o.ZeroGrid()
	if err != nil {
		return
	}
	if num.BoundaryKind == inp.Penalty {
		err = o.AssemblePenalty()
		if err != nil {
			return
		}
	}
	err = o.ScatterToGrid()
	if err != nil {
		return
	}
	err = o.ReduceGrid()
	if err != nil {
		return
	}
	err = o.SolveGrid()
	if err != nil {
		return
	}
	err = o.GatherToParticles()
	if err != nil {
		return
	}
	if num.DivBar {
		err = o.ProjectDivergence()
		if err != nil {
			return
		}
	}
	o.T += o.Sim.Control.Dt
	o.Step++
	h = o.CheckHealth()
	err = h.Err()
	return
}

// Advance runs nsub substeps and returns the merged health report of all of them. If report is
// not nil, it is called with the health report of every substep
func (o *State) Advance(nsub int, report func(h Health)) (h Health, err error) {
	for s := 0; s < nsub; s++ {
		var hs Health
		hs, err = o.Substep()
		if report != nil {
			report(hs)
		}
		if s == 0 {
			h = hs
		} else {
			h.Merge(hs)
		}
		if err != nil {
			return
		}
	}
	return
}

// Snapshot returns the exported state of the particles
func (o *State) Snapshot(tidx int) (s *out.Snapshot) {
	par := o.Par
	s = &out.Snapshot{Tidx: tidx, Time: o.T, Points: make(out.Points, par.Np)}
	for p := 0; p < par.Np; p++ {
		σ := par.Sig[p]
		pt := &out.Point{
			Id:     p,
			Mat:    par.Mat[p],
			X:      par.X[p].X,
			Y:      par.X[p].Y,
			J:      par.J[p],
			PoU:    par.PoU[p],
			Cons:   par.Cons[p],
			ConsDx: par.ConsDx[p],
			ConsDy: par.ConsDy[p],
		}
		pt.SetVelocity(par.V[p].X, par.V[p].Y)
		pt.SetStress(σ[0][0], σ[1][1], σ[0][1])
		s.Points[p] = pt
	}
	return
}

// Record returns the global quantities of the current state
func (o *State) Record(tidx int, h Health) (r *out.Record) {
	par := o.Par
	r = &out.Record{Tidx: tidx, Time: o.T, Step: o.Step, MinJ: h.MinJ, MaxJ: h.MaxJ, MaxV: h.MaxV, MaxPoU: h.MaxPoU, IllCond: h.IllCond}
	if par.Np == 0 {
		return
	}
	v2 := make([]float64, par.Np)
	for p := 0; p < par.Np; p++ {
		v2[p] = 0.5 * (par.V[p].X*par.V[p].X + par.V[p].Y*par.V[p].Y)
	}
	r.Ekin = floats.Dot(par.M, v2)
	r.MeanP = stat.Mean(par.P, par.Vol)
	if math.IsNaN(r.MeanP) {
		r.MeanP = 0
	}
	return
}

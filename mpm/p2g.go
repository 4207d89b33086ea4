// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mtx"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r2"
)

// ScatterToGrid transfers mass, momentum, volume and pressure from particles to the grid.
// It also recomputes the reproducing residuals of each particle
//  mI   += φ・m・I
//  VolI += φ・vol
//  P0I  += φ・m・v                          (PIC)
//  P0I  += φ・m・(v + L・(xI - x))          (APIC)
//  PI   += P0I + dt・vol・(φ・fb - σ・∇φ)
//  pI   += φ・vol・(p - dt・K・div)
func (o *State) ScatterToGrid() error {
	par := o.Par
	dt := o.Sim.Control.Dt
	K := o.Mdl.Bulk()
	fb := o.Sim.Fb
	apic := o.Sim.Numerics.TransferKind == inp.APIC
	return o.pool.Run(par.Np, func(w, lo, hi int) (err error) {
		rk := o.rks[w]
		g := o.grids[w]
		for p := lo; p < hi; p++ {
			x := par.X[p]
			err = rk.Calc(x)
			if err != nil {
				return chk.Err("P2G failed at particle %d:\n%v", p, err)
			}
			par.IllCond[p] = rk.IllCond
			par.PoU[p], par.Cons[p], par.ConsDx[p], par.ConsDy[p] = rk.Residuals(x)
			m, vol, v := par.M[p], par.Vol[p], par.V[p]
			for k, φ := range rk.S {
				if rk.W[k] == 0 {
					continue
				}
				I := rk.Index(k)
				dφ := r2.Vec{X: rk.Gx[k], Y: rk.Gy[k]}
				mv := v
				if apic {
					mv = r2.Add(mv, par.L[p].MulVec(r2.Sub(rk.Coords(k), x)))
				}
				mom := r2.Scale(φ*m, mv)
				f := r2.Sub(r2.Scale(φ, fb), par.Sig[p].MulVec(dφ))
				g.Mass[I] = g.Mass[I].Add(mtx.I2.Scale(φ * m))
				g.Vol[I] += φ * vol
				g.V0[I] = r2.Add(g.V0[I], mom)
				g.V[I] = r2.Add(g.V[I], r2.Add(mom, r2.Scale(dt*vol, f)))
				g.P[I] += φ*vol*par.P[p] - dt*K*vol*φ*par.Div[p]
			}
		}
		return
	})
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/mtx"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r2"
)

// GatherToParticles transfers the grid solution back to particles and updates their state
//  L     = Σ vI ⊗ ∇φ          div = Σ vI・∇φ         pp = Σ φ・pI
//  vAPIC = Σ φ・vI             vFLIP = v + Σ φ・(vI - v0I)
//  v     = η・vFLIP + (1-η)・vAPIC ;  x += dt・v
//  F     = (I + dt・L)・F ;  J = σ0・σ1 (signed singular values)
//  p     = mix・pp + (1-mix)・(p - dt・K・div) ;  σ = -p・I + 2μ・sym(L)
// Inactive nodes are skipped. Particles with J ≤ 0 keep their previous volume and density
func (o *State) GatherToParticles() error {
	par := o.Par
	g := o.Grid
	dt := o.Sim.Control.Dt
	η := o.Sim.Numerics.Eta
	mix := o.Sim.Numerics.MixRatio
	return o.pool.Run(par.Np, func(w, lo, hi int) (err error) {
		rk := o.rks[w]
		for p := lo; p < hi; p++ {
			x := par.X[p]
			err = rk.Calc(x)
			if err != nil {
				return chk.Err("G2P failed at particle %d:\n%v", p, err)
			}

			// gather
			var L mtx.Mat2
			var div, pp float64
			var vapic, dvflip r2.Vec
			for k, φ := range rk.S {
				if rk.W[k] == 0 {
					continue
				}
				I := rk.Index(k)
				if !g.Active[I] {
					continue
				}
				dφ := r2.Vec{X: rk.Gx[k], Y: rk.Gy[k]}
				vI := g.V[I]
				L = L.Add(mtx.Outer(vI, dφ))
				div += r2.Dot(vI, dφ)
				vapic = r2.Add(vapic, r2.Scale(φ, vI))
				dvflip = r2.Add(dvflip, r2.Scale(φ, r2.Sub(vI, g.V0[I])))
				pp += φ * g.P[I]
			}

			// velocity and position
			vflip := r2.Add(par.V[p], dvflip)
			v := r2.Add(r2.Scale(η, vflip), r2.Scale(1-η, vapic))
			par.V[p] = v
			par.X[p] = r2.Add(x, r2.Scale(dt, v))
			par.L[p] = L
			par.Div[p] = div

			// deformation
			F := mtx.I2.Add(L.Scale(dt)).Mul(par.F[p])
			_, σ, _ := mtx.SVD(F)
			J := σ[0] * σ[1]
			par.F[p] = F
			par.J[p] = J
			if J > 0 {
				par.Vol[p] = par.Vol0[p] * J
				par.Rho[p] = par.Rho0 / J
			}
			par.M[p] = par.Vol0[p] * par.Rho0

			// pressure and stress
			par.P[p] = mix*pp + (1-mix)*o.Mdl.PressureUpdate(par.P[p], div, dt)
			par.Sig[p] = o.Mdl.Stress(par.P[p], L)
		}
		return
	})
}

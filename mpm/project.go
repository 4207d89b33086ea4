// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import "github.com/cpmech/gosl/chk"

// ProjectDivergence smooths the velocity divergence of particles over the cells of the dual
// lattice. First pass: numC = Σ div・Vol0・φ and denC = Σ Vol0・φ; then divC = numC/(denC+ε).
// Second pass: div += Σ φ・divC
func (o *State) ProjectDivergence() (err error) {
	if o.Cells == nil {
		return chk.Err("divergence projector is not allocated; set divbar in numerics")
	}
	par := o.Par
	nc := o.Cells.N * o.Cells.N

	// zero
	err = o.pool.Run(nc, func(w, lo, hi int) error {
		o.Cells.Zero(lo, hi)
		if o.private {
			for _, c := range o.cellbufs {
				c.Zero(lo, hi)
			}
		}
		return nil
	})
	if err != nil {
		return
	}

	// first pass
	err = o.pool.Run(par.Np, func(w, lo, hi int) (err error) {
		ck := o.cks[w]
		c := o.cellbufs[w]
		for p := lo; p < hi; p++ {
			err = ck.Calc(par.X[p])
			if err != nil {
				return chk.Err("projector failed at particle %d:\n%v", p, err)
			}
			for k, φ := range ck.S {
				if ck.W[k] == 0 {
					continue
				}
				I := ck.Index(k)
				c.Num[I] += par.Div[p] * par.Vol0[p] * φ
				c.Den[I] += par.Vol0[p] * φ
			}
		}
		return
	})
	if err != nil {
		return
	}

	// cell average
	eps := o.Sim.Numerics.Eps
	err = o.pool.Run(nc, func(w, lo, hi int) error {
		if o.private {
			for _, c := range o.cellbufs {
				o.Cells.AddFrom(c, lo, hi)
			}
		}
		o.Cells.Average(eps, lo, hi)
		return nil
	})
	if err != nil {
		return
	}

	// second pass
	return o.pool.Run(par.Np, func(w, lo, hi int) (err error) {
		ck := o.cks[w]
		for p := lo; p < hi; p++ {
			err = ck.Calc(par.X[p])
			if err != nil {
				return chk.Err("projector failed at particle %d:\n%v", p, err)
			}
			var s float64
			for k, φ := range ck.S {
				if ck.W[k] == 0 {
					continue
				}
				s += φ * o.Cells.Div[ck.Index(k)]
			}
			par.Div[p] += s
		}
		return
	})
}

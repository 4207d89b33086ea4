// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mtx"
	"github.com/cpmech/gosl/chk"
)

// AssemblePenalty adds the wall penalty dx・β・S to the mass matrix of the nodes around the
// sample points of each wall, where S selects the normal direction. The term is weighted by φ
// except for the nodes beyond the wall which receive the full penalty. Sample points with
// ill-conditioned moment matrix are counted in the health report
func (o *State) AssemblePenalty() (err error) {
	geo := &o.Sim.Grid
	pen := geo.Dx * geo.Beta
	rk := o.prk
	o.penIllCond = 0
	for _, e := range inp.Edges {
		ax := e.Axis()
		var S mtx.Mat2
		S[ax][ax] = 1
		for _, x := range geo.PenaltyPts[e] {
			err = rk.Calc(x)
			if err != nil {
				return chk.Err("cannot compute shape functions at penalty point (%g,%g) of %v wall:\n%v", x.X, x.Y, e, err)
			}
			if rk.IllCond {
				o.penIllCond++
			}
			for k, φ := range rk.S {
				if !rk.Active[k] {
					continue
				}
				i, j := rk.Indices(k)
				idx := i
				if ax == 1 {
					idx = j
				}
				c := pen * φ
				if geo.RawPenalty(e, idx) {
					c = pen
				}
				I := rk.Index(k)
				o.Grid.Mass[I] = o.Grid.Mass[I].Add(S.Scale(c))
			}
		}
	}
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import "github.com/cpmech/gompm/inp"

// SolveGrid computes nodal velocities and pressures and, unless the penalty method is on,
// clips the outward velocities of nodes next to the walls
func (o *State) SolveGrid() error {
	nn := o.Grid.N * o.Grid.N
	clip := o.Sim.Numerics.BoundaryKind == inp.Clip
	return o.pool.Run(nn, func(w, lo, hi int) error {
		o.Grid.Solve(lo, hi)
		if clip {
			o.Grid.Clip(&o.Sim.Grid, lo, hi)
		}
		return nil
	})
}

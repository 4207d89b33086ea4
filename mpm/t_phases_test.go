// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"
	"testing"

	"github.com/cpmech/gompm/ana"
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mdl/fluid"
	"github.com/cpmech/gompm/mtx"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newSim returns a small simulation: 25×25 nodes with dx = 0.05 and a 9×5 block of water
func newSim(tst *testing.T, modify func(sim *inp.Simulation)) *inp.Simulation {
	sim := inp.NewSimulation()
	sim.Domain = inp.DomainData{Len: 1, Numg: 21, Skirt: 2}
	sim.Block = inp.BlockData{W: 0.4, H: 0.2, Nx: 9, Ny: 5}
	sim.Material.Prms = fluid.Prms{{N: "rho", V: 997.5}, {N: "mu", V: 1e-3}, {N: "K", V: 2e5}}
	sim.Control = inp.TimeControl{Tf: 1e-3, Dt: 1e-4, DtOut: 1e-3}
	sim.Numerics.Nworkers = 1
	if modify != nil {
		modify(sim)
	}
	err := sim.PostProcess()
	if err != nil {
		tst.Fatalf("PostProcess failed:\n%v", err)
	}
	return sim
}

func run(tst *testing.T, st *State, nsteps int) (h Health) {
	var err error
	for i := 0; i < nsteps; i++ {
		h, err = st.Substep()
		if err != nil {
			tst.Fatalf("Substep %d failed:\n%v", i, err)
		}
	}
	return
}

func Test_pool01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pool01. chunks and errors")

	pool := Pool{Nworkers: 3}
	var ranges []int
	for w := 0; w < 3; w++ {
		lo, hi := pool.Chunk(w, 10)
		ranges = append(ranges, lo, hi)
	}
	chk.Ints(tst, "chunks", ranges, []int{0, 4, 4, 7, 7, 10})

	count := make([]int, 10)
	err := pool.Run(10, func(w, lo, hi int) error {
		for i := lo; i < hi; i++ {
			count[i]++
		}
		return nil
	})
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Ints(tst, "count", count, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1})

	err = pool.Run(10, func(w, lo, hi int) error {
		if w > 0 {
			return chk.Err("worker %d failed", w)
		}
		return nil
	})
	if err == nil {
		tst.Errorf("Run must fail\n")
		return
	}
	chk.String(tst, err.Error(), "worker 1 failed")

	// more workers than items
	pool = Pool{Nworkers: 4}
	n := 0
	err = pool.Run(2, func(w, lo, hi int) error {
		if hi-lo != 1 {
			return chk.Err("chunk of worker %d has %d items", w, hi-lo)
		}
		return nil
	})
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
	}
	err = Pool{Nworkers: 1}.Run(5, func(w, lo, hi int) error {
		n = hi - lo
		return nil
	})
	chk.IntAssert(n, 5)
}

func Test_block01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("block01. initial lattice of particles")

	sim := newSim(tst, nil)
	par := NewBlock(sim)
	chk.IntAssert(par.Np, 45)
	x0 := sim.Grid.Xmin
	chk.Array(tst, "x[0]", 1e-15, []float64{par.X[0].X, par.X[0].Y}, []float64{x0, x0})
	chk.Array(tst, "x[8]", 1e-15, []float64{par.X[8].X, par.X[8].Y}, []float64{x0 + 0.4, x0})
	chk.Array(tst, "x[9]", 1e-15, []float64{par.X[9].X, par.X[9].Y}, []float64{x0, x0 + 0.05})
	chk.Array(tst, "x[44]", 1e-15, []float64{par.X[44].X, par.X[44].Y}, []float64{x0 + 0.4, x0 + 0.2})
	w, h := sim.Block.W, sim.Block.H
	vol0 := w * h / float64(par.Np)
	for p := 0; p < par.Np; p++ {
		chk.Float64(tst, "vol0", 1e-17, par.Vol0[p], vol0)
		chk.Float64(tst, "vol", 1e-17, par.Vol[p], vol0)
		chk.Float64(tst, "m", 1e-15, par.M[p], vol0*997.5)
		if par.F[p] != mtx.I2 || par.J[p] != 1 || par.Rho[p] != 997.5 {
			tst.Errorf("particle %d is not initialised correctly\n", p)
			return
		}
	}

	// single particle goes to the middle of the block
	sim = newSim(tst, func(sim *inp.Simulation) {
		sim.Block = inp.BlockData{W: 0.2, H: 0.1, Nx: 1, Ny: 1, Mat: 4}
	})
	par = NewBlock(sim)
	chk.IntAssert(par.Np, 1)
	chk.IntAssert(par.Mat[0], 4)
	chk.Array(tst, "x", 1e-15, []float64{par.X[0].X, par.X[0].Y}, []float64{x0 + 0.1, x0 + 0.05})
	chk.Float64(tst, "vol0", 1e-15, par.Vol0[0], 0.02)
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. solve and clip")

	sim := newSim(tst, nil)
	geo := &sim.Grid
	n := geo.N
	g := NewGrid(n)
	nn := n * n
	for I := 0; I < nn; I++ {
		if I%7 == 0 {
			continue // massless
		}
		m := 1 + float64(I%5)
		g.Mass[I] = mtx.I2.Scale(m)
		g.V0[I] = r2.Vec{X: m * math.Sin(float64(I)), Y: m * math.Cos(float64(I))}
		g.V[I] = r2.Scale(2, g.V0[I])
		g.Vol[I] = 0.5
		g.P[I] = 3
	}
	g.Solve(0, nn)
	for I := 0; I < nn; I++ {
		if I%7 == 0 {
			if g.Active[I] || g.P[I] != 0 {
				tst.Errorf("node %d must be inactive\n", I)
				return
			}
			continue
		}
		chk.Float64(tst, "p", 1e-15, g.P[I], 6)
		chk.Float64(tst, "vx", 1e-14, g.V0[I].X, math.Sin(float64(I)))
		chk.Float64(tst, "vy", 1e-14, g.V[I].Y, 2*math.Cos(float64(I)))
	}

	// clip once and twice
	g.Clip(geo, 0, nn)
	once := append([]r2.Vec{}, g.V...)
	g.Clip(geo, 0, nn)
	for I := 0; I < nn; I++ {
		if g.V[I] != once[I] {
			tst.Errorf("clipping is not idempotent at node %d\n", I)
			return
		}
	}

	// walls
	for I := 0; I < nn; I++ {
		if !g.Active[I] {
			continue
		}
		i, j := I/n, I%n
		v := g.V[I]
		if (i < 3 && v.X < 0) || (i > n-4 && v.X > 0) || (j < 3 && v.Y < 0) || (j > n-4 && v.Y > 0) {
			tst.Errorf("node (%d,%d) has outward velocity %v\n", i, j, v)
			return
		}
		if i >= 3 && i <= n-4 && j >= 3 && j <= n-4 {
			chk.Float64(tst, "interior vx", 1e-14, v.X, 2*math.Sin(float64(I)))
		}
	}
}

func Test_freefall01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("freefall01. single particle under gravity")

	nsteps := 100
	for _, transfer := range []string{"pic", "apic"} {
		for _, eta := range []float64{0, 1} {
			for _, nw := range []int{1, 2} {
				sim := newSim(tst, func(sim *inp.Simulation) {
					sim.Block = inp.BlockData{W: 0.2, H: 0.2, Nx: 1, Ny: 1}
					sim.Material.Prms = fluid.Prms{{N: "rho", V: 1}, {N: "mu", V: 0}, {N: "K", V: 0}}
					sim.Control.Dt = 1e-5
					sim.Numerics.Transfer = transfer
					sim.Numerics.Eta = eta
					sim.Numerics.Nworkers = nw
				})
				st := NewState(sim, nil)
				y0 := st.Par.X[0].Y
				h := run(tst, st, nsteps)

				ff := ana.FreeFall{G: -9.81, Y0: y0}
				dt := sim.Control.Dt
				io.Pforan("%s η=%g nw=%d: v = %v\n", transfer, eta, nw, st.Par.V[0])
				chk.Float64(tst, "vx", 1e-12, st.Par.V[0].X, 0)
				chk.Float64(tst, "vy", 1e-12, st.Par.V[0].Y, ff.Velocity(nsteps, dt))
				chk.Float64(tst, "y", 1e-12, st.Par.X[0].Y, ff.Position(nsteps, dt))
				chk.Float64(tst, "J", 1e-12, st.Par.J[0], 1)
				chk.Float64(tst, "t", 1e-15, st.T, float64(nsteps)*dt)
				chk.IntAssert(st.Step, nsteps)
				chk.IntAssert(h.IllCond, 0)
			}
		}
	}
}

func Test_equilibrium01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("equilibrium01. block at rest without gravity")

	for _, boundary := range []string{"clip", "penalty"} {
		for _, divbar := range []bool{false, true} {
			sim := newSim(tst, func(sim *inp.Simulation) {
				sim.Gravity.G = 0
				sim.Numerics.Boundary = boundary
				sim.Numerics.DivBar = divbar
				sim.Numerics.Transfer = "apic"
				sim.Numerics.MixRatio = 0.5
				sim.Numerics.Nworkers = 2
			})
			st := NewState(sim, nil)
			x0 := append([]r2.Vec{}, st.Par.X...)
			h := run(tst, st, 20)
			io.Pforan("%s divbar=%v: max|v| = %g\n", boundary, divbar, h.MaxV)
			chk.Float64(tst, "max|v|", 0, h.MaxV, 0)
			for p := 0; p < st.Par.Np; p++ {
				if st.Par.X[p] != x0[p] || st.Par.P[p] != 0 || st.Par.J[p] != 1 {
					tst.Errorf("particle %d moved or changed: x=%v p=%g J=%g\n", p, st.Par.X[p], st.Par.P[p], st.Par.J[p])
					return
				}
			}
		}
	}
}

func Test_conservation01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conservation01. mass and volume laws")

	for _, kernel := range []string{"bspline", "tent"} {
		sim := newSim(tst, func(sim *inp.Simulation) {
			sim.Numerics.Kernel = kernel
			sim.Numerics.Transfer = "apic"
			sim.Numerics.Eta = 0.5
			sim.Numerics.MixRatio = 0
			sim.Numerics.DivBar = true
		})
		st := NewState(sim, nil)
		par := st.Par
		for step := 0; step < 10; step++ {
			h := run(tst, st, 1)
			if h.NonFinite > 0 {
				tst.Errorf("non-finite values found\n")
				return
			}
			for p := 0; p < par.Np; p++ {
				if par.M[p] != par.Vol0[p]*par.Rho0 {
					tst.Errorf("mass of particle %d changed: %g != %g\n", p, par.M[p], par.Vol0[p]*par.Rho0)
					return
				}
				chk.Float64(tst, "vol", 1e-17, par.Vol[p], par.Vol0[p]*par.J[p])
				chk.Float64(tst, "rho・J", 1e-10, par.Rho[p]*par.J[p], par.Rho0)
				chk.Float64(tst, "J", 1e-14, par.J[p], par.F[p].Det())
			}
		}
		io.Pforan("%s: min J = %g  max J = %g  max|v| = %g\n", kernel, floats.Min(par.J), floats.Max(par.J), st.CheckHealth().MaxV)

		// particles moved down
		if par.V[par.Np/2].Y >= 0 {
			tst.Errorf("particles must fall\n")
		}

		// interior particles reproduce constants and linear fields
		for p := 0; p < par.Np; p++ {
			if par.IllCond[p] {
				tst.Errorf("particle %d has ill-conditioned moment matrix\n", p)
				return
			}
			if math.Abs(par.PoU[p]) > 1e-12 || par.Cons[p] > 1e-12 {
				tst.Errorf("reproducing conditions fail at particle %d: pou=%g cons=%g\n", p, par.PoU[p], par.Cons[p])
				return
			}
		}
	}
}

func Test_workers01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("workers01. same results with 1 and 3 workers")

	var states []*State
	for _, nw := range []int{1, 3} {
		sim := newSim(tst, func(sim *inp.Simulation) {
			sim.Numerics.Nworkers = nw
			sim.Numerics.Boundary = "penalty"
			sim.Numerics.DivBar = true
		})
		st := NewState(sim, nil)
		run(tst, st, 10)
		states = append(states, st)
	}
	a, b := states[0].Par, states[1].Par
	for p := 0; p < a.Np; p++ {
		chk.Float64(tst, "vx", 1e-12, a.V[p].X, b.V[p].X)
		chk.Float64(tst, "vy", 1e-12, a.V[p].Y, b.V[p].Y)
		chk.Float64(tst, "y", 1e-14, a.X[p].Y, b.X[p].Y)
		chk.Float64(tst, "p", 1e-6, a.P[p], b.P[p])
	}
}

func Test_project01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("project01. divergence projector")

	sim := newSim(tst, func(sim *inp.Simulation) {
		sim.Block = inp.BlockData{W: 0.5, H: 0.5, Nx: 21, Ny: 21}
		sim.Numerics.DivBar = true
		sim.Numerics.Nworkers = 2
	})
	st := NewState(sim, nil)
	par := st.Par

	// zero divergence
	err := st.ProjectDivergence()
	if err != nil {
		tst.Errorf("ProjectDivergence failed:\n%v", err)
		return
	}
	for p := 0; p < par.Np; p++ {
		if par.Div[p] != 0 {
			tst.Errorf("divergence of particle %d must remain zero. div = %g\n", p, par.Div[p])
			return
		}
	}

	// constant divergence is doubled away from the free surface
	d := 0.3
	for p := 0; p < par.Np; p++ {
		par.Div[p] = d
	}
	err = st.ProjectDivergence()
	if err != nil {
		tst.Errorf("ProjectDivergence failed:\n%v", err)
		return
	}
	x0, dx := sim.Grid.Xmin, sim.Grid.Dx
	ninterior := 0
	for p := 0; p < par.Np; p++ {
		x := r2.Sub(par.X[p], r2.Vec{X: x0, Y: x0})
		if x.X < 2.9*dx || x.X > 0.5-2.9*dx || x.Y < 2.9*dx || x.Y > 0.5-2.9*dx {
			continue
		}
		ninterior++
		chk.Float64(tst, "div", 1e-9, par.Div[p], 2*d)
	}
	chk.IntAssert(ninterior, 81)

	// projector requires cells
	sim.Numerics.DivBar = false
	st = NewState(sim, nil)
	if err = st.ProjectDivergence(); err == nil {
		tst.Errorf("ProjectDivergence must fail without cells\n")
	}
}

func Test_penalty01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("penalty01. wall penalty")

	sim := newSim(tst, func(sim *inp.Simulation) {
		sim.Gravity.G = 0
		sim.Block = inp.BlockData{W: 0.4, H: 0.4, Nx: 17, Ny: 17}
		sim.Numerics.Boundary = "penalty"
	})
	geo := &sim.Grid
	pen := geo.Dx * geo.Beta
	st := NewState(sim, nil)
	n := st.Grid.N

	// mass matrix of nodes beyond the left wall
	err := st.ZeroGrid()
	if err != nil {
		tst.Errorf("ZeroGrid failed:\n%v", err)
		return
	}
	err = st.AssemblePenalty()
	if err != nil {
		tst.Errorf("AssemblePenalty failed:\n%v", err)
		return
	}
	io.Pforan("pen = %g\n", pen)
	for _, c := range []struct{ i, j, ax int }{{1, 10, 0}, {10, 1, 1}, {23, 10, 0}, {10, 23, 1}} {
		M := st.Grid.Mass[c.i*n+c.j]
		io.Pforan("M(%d,%d) = %v\n", c.i, c.j, M)
		ratio := M[c.ax][c.ax] / pen
		if ratio < 2 || math.Abs(ratio-math.Round(ratio)) > 1e-12 {
			tst.Errorf("node (%d,%d) must receive the full penalty from each sample point. ratio = %g\n", c.i, c.j, ratio)
		}
		if M[1-c.ax][1-c.ax] != 0 || M[0][1] != 0 || M[1][0] != 0 {
			tst.Errorf("node (%d,%d) must be penalised along the normal only\n", c.i, c.j)
		}
	}
	chk.Deep2(tst, "M(12,12)", 0, [][]float64{st.Grid.Mass[12*n+12][0][:], st.Grid.Mass[12*n+12][1][:]}, [][]float64{{0, 0}, {0, 0}})
	if st.Grid.Mass[2*n+10][1][1] != 0 || st.Grid.Mass[2*n+10][0][0] == 0 {
		tst.Errorf("node (2,10) must be penalised along x only\n")
	}
	chk.IntAssert(st.CheckHealth().PenIllCond, 0)

	// every sample point is flagged since det(M) ≤ diagprod(M)
	st.prk.TolSing = 2
	err = st.AssemblePenalty()
	if err != nil {
		tst.Errorf("AssemblePenalty failed:\n%v", err)
		return
	}
	chk.IntAssert(st.CheckHealth().PenIllCond, 4*len(geo.PenaltyPts[inp.Left]))
	chk.IntAssert(len(geo.PenaltyPts[inp.Left]), 20)
	st.prk.TolSing = shp.TOLSING

	// block moving towards the left wall
	par := st.Par
	for p := 0; p < par.Np; p++ {
		par.V[p] = r2.Vec{X: -1}
	}
	run(tst, st, 1)
	for p := 0; p < par.Np; p++ {
		i, j := p%17, p/17
		if i == 0 && j > 0 && math.Abs(par.V[p].X) > 1e-2 {
			tst.Errorf("particle %d on the wall must stop. vx = %g\n", p, par.V[p].X)
		}
		if i >= 10 && i < 14 {
			chk.Float64(tst, "vx", 1e-10, par.V[p].X, -1)
		}
	}

	// the first sample point of the left wall lies half a cell above the bottom wall, hence the
	// nodes (i,1) are not penalised along x and the corner particle is only slowed down
	io.Pforan("corner: vx = %g\n", par.V[0].X)
	if par.V[0].X > 0 || par.V[0].X < -0.5 {
		tst.Errorf("corner particle must be slowed down. vx = %g\n", par.V[0].X)
	}
	if math.Abs(par.V[0].X) < math.Abs(par.V[17].X) {
		tst.Errorf("corner particle must move faster than the ones above it\n")
	}
}

func Test_health01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("health01. fatal and non-fatal conditions")

	sim := newSim(tst, nil)
	st := NewState(sim, nil)
	h := st.CheckHealth()
	if err := h.Err(); err != nil {
		tst.Errorf("initial state must be healthy:\n%v", err)
		return
	}
	chk.Float64(tst, "minJ", 0, h.MinJ, 1)

	st.Par.V[3].X = math.NaN()
	st.Par.IllCond[4] = true
	h = st.CheckHealth()
	chk.IntAssert(h.NonFinite, 1)
	chk.IntAssert(h.IllCond, 1)
	if h.Err() != nil {
		tst.Errorf("non-finite velocity is not fatal\n")
	}
	st.Par.Sig[7][0][1] = math.Inf(1)
	h = st.CheckHealth()
	chk.IntAssert(h.NonFinite, 2)

	st.Par.J[5] = -0.1
	st.Par.X[6].X = -1
	h = st.CheckHealth()
	chk.IntAssert(h.Inverted, 1)
	chk.IntAssert(h.OutOfGrid, 1)
	if h.Err() == nil {
		tst.Errorf("inverted particle must be fatal\n")
	}
	st.Par.J[5] = 1
	h = st.CheckHealth()
	if h.Err() == nil {
		tst.Errorf("particle out of grid must be fatal\n")
	}

	// merging keeps the worst substep
	a := Health{IllCond: 2, MinJ: 0.9, MaxJ: 1.1, MaxV: 3, MaxPoU: 1e-14}
	a.Merge(Health{IllCond: 1, PenIllCond: 1, NonFinite: 4, MinJ: 0.95, MaxJ: 1.2, MaxV: 2, MaxPoU: 1e-13})
	chk.Ints(tst, "counters", []int{a.IllCond, a.PenIllCond, a.NonFinite, a.Inverted}, []int{2, 1, 4, 0})
	chk.Array(tst, "extrema", 1e-17, []float64{a.MinJ, a.MaxJ, a.MaxV, a.MaxPoU}, []float64{0.9, 1.2, 3, 1e-13})

	// substep fails with a particle far outside the lattice
	st = NewState(sim, nil)
	st.Par.X[0] = r2.Vec{X: 100, Y: 100}
	if _, err := st.Substep(); err == nil {
		tst.Errorf("Substep must fail\n")
	}
}

func Test_advance01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("advance01. health of all substeps between outputs")

	sim := newSim(tst, nil)
	st := NewState(sim, nil)
	np := st.Par.Np

	// only the first substep has ill-conditioned stencils; det(M) ≤ diagprod(M) always
	for _, rk := range st.rks {
		rk.TolSing = 2
	}
	var ill []int
	h, err := st.Advance(3, func(hs Health) {
		ill = append(ill, hs.IllCond)
		for _, rk := range st.rks {
			rk.TolSing = shp.TOLSING
		}
	})
	if err != nil {
		tst.Errorf("Advance failed:\n%v", err)
		return
	}
	chk.IntAssert(st.Step, 3)
	chk.Ints(tst, "ill-conditioned per substep", ill, []int{np, 0, 0})
	chk.IntAssert(h.IllCond, np)

	last := st.CheckHealth()
	chk.IntAssert(last.IllCond, 0)
	if h.MinJ > last.MinJ || h.MaxJ < last.MaxJ || h.MaxV < last.MaxV {
		tst.Errorf("merged extrema must enclose the ones of the last substep\n")
	}
}

func Test_inversion01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inversion01. compression beyond J = 0")

	sim := newSim(tst, func(sim *inp.Simulation) {
		sim.Gravity.G = 0
		sim.Control.Dt = 1e-2
	})
	st := NewState(sim, nil)
	par := st.Par

	// vx = -c・(x - xc) with c・dt = 1.5 gives J ≈ 1 - 1.5
	xc := sim.Grid.Xmin + sim.Block.W/2
	c := 1.5 / sim.Control.Dt
	for p := 0; p < par.Np; p++ {
		par.V[p] = r2.Vec{X: -c * (par.X[p].X - xc)}
	}
	h, err := st.Substep()
	if err == nil {
		tst.Errorf("Substep must fail with inverted particles\n")
		return
	}
	io.Pforan("%v\n", err)
	io.Pforan("inverted = %d  min J = %g\n", h.Inverted, h.MinJ)
	if h.Inverted < 1 || h.MinJ >= 0 {
		tst.Errorf("some particles must be inverted\n")
	}
	chk.IntAssert(h.OutOfGrid, 0)
	for p := 0; p < par.Np; p++ {
		if par.M[p] != par.Vol0[p]*par.Rho0 {
			tst.Errorf("mass of particle %d changed\n", p)
		}
		if par.J[p] > 0 {
			chk.Float64(tst, "vol", 1e-17, par.Vol[p], par.Vol0[p]*par.J[p])
			continue
		}
		if par.Vol[p] != par.Vol0[p] || par.Rho[p] != par.Rho0 {
			tst.Errorf("inverted particle %d must keep volume and density: vol=%g rho=%g\n", p, par.Vol[p], par.Rho[p])
		}
	}
}

func Test_hydrostatic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hydrostatic01. column of water at rest")

	var water ana.Water
	water.Init()
	fl := water.Weak(2e5)
	sim := newSim(tst, func(sim *inp.Simulation) {
		sim.Block = inp.BlockData{W: 1, H: 0.2, Nx: 21, Ny: 5}
		sim.Material.Prms = fluid.Prms{{N: "rho", V: fl.Rho}, {N: "mu", V: fl.Mu}, {N: "K", V: fl.K}}
		sim.Numerics.Boundary = "clip"
		sim.Numerics.MixRatio = 1
	})
	if sim.Control.Dt > fl.CriticalDt(sim.Grid.Dx) {
		tst.Errorf("time step is too large\n")
		return
	}

	// initial pressure; each row of particles stands for a layer of thickness dy
	nx, ny := sim.Block.Nx, sim.Block.Ny
	dy := sim.Block.H / float64(ny-1)
	var col ana.ColumnFluidPressure
	col.Init(fl.Rho, 0, fl.C, -sim.Gravity.G, sim.Block.H+dy/2)
	par := NewBlock(sim)
	for p := 0; p < par.Np; p++ {
		par.P[p], _ = col.Calc(par.X[p].Y - sim.Grid.Xmin)
	}
	st := NewState(sim, par)

	// time averages after a while
	nsteps, nskip := 2000, 1000
	var pbot, ptop, pmean, maxv float64
	for step := 0; step < nsteps; step++ {
		h := run(tst, st, 1)
		if step < nskip {
			continue
		}
		pbot += stat.Mean(par.P[:nx], nil)
		ptop += stat.Mean(par.P[par.Np-nx:], nil)
		pmean += stat.Mean(par.P, par.Vol)
		maxv = math.Max(maxv, h.MaxV)
	}
	n := float64(nsteps - nskip)
	pbot, ptop, pmean = pbot/n, ptop/n, pmean/n

	// analytical solution at the rows of particles
	var pana float64
	for j := 0; j < ny; j++ {
		p, _ := col.Calc(float64(j) * dy)
		pana += p / float64(ny)
	}
	pb, _ := col.Calc(0)
	io.Pforan("p(bottom) = %g (%g)  p(top) = %g  mean p = %g (%g)  max|v| = %g\n", pbot, pb, ptop, pmean, pana, maxv)
	if math.Abs(pmean-pana) > 0.25*pana {
		tst.Errorf("mean pressure %g is too far from %g\n", pmean, pana)
	}
	if pbot <= ptop {
		tst.Errorf("pressure must increase with depth\n")
	}
	if maxv > 0.2 {
		tst.Errorf("column must stay at rest. max|v| = %g\n", maxv)
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"time"

	"github.com/cpmech/gompm/ana"
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the material point method
type Main struct {
	Sim     *inp.Simulation // simulation data
	State   *State          // particles, grid and workers
	Summary *Summary        // summary structure
	Series  *out.Series     // time series; nil if not requested
	ShowMsg bool            // show messages
	Tidx    int             // next output index
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim or .yaml) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple simulations
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary
//   readSummary -- read summary of previous simulation
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, saveSummary, readSummary, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev, true)
	if err != nil {
		return nil, err
	}

	// read summary of previous simulation
	if saveSummary || readSummary {
		o.Summary = new(Summary)
	}
	if readSummary {
		err = o.Summary.Read(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
		if err != nil {
			return nil, chk.Err("cannot read summary:\n%v", err)
		}
	}

	// message
	if o.ShowMsg {
		io.Pf("> Simulation file read\n")
	}

	// state
	o.State = NewState(o.Sim, nil)
	if o.ShowMsg {
		g := &o.Sim.Grid
		io.Pf("> %d particles; %d×%d nodes; dx = %g; %d workers\n", o.State.Par.Np, g.N, g.N, g.Dx, o.State.pool.Nworkers)
		fl := ana.Water{K: o.Sim.Material.Fluid.Bulk(), Rho: o.Sim.Material.Fluid.GetRho()}
		if dtc := fl.CriticalDt(g.Dx); o.Sim.Control.Dt > dtc {
			io.Pfyel("> dt = %g is larger than dx/c = %g\n", o.Sim.Control.Dt, dtc)
		}
	}
	return
}

// Run runs the simulation until the final time, writing results after every Nsub substeps
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// time series
	if o.Sim.Data.Series && o.Series == nil {
		o.Series, err = out.NewSeries(o.Sim.DirOut, o.Sim.Key)
		if err != nil {
			return
		}
	}

	// initial output
	if o.ShowMsg {
		io.Pf("> Running MPM solver\n")
	}
	h := o.State.CheckHealth()
	o.report(h)
	err = o.Output(h)
	if err != nil {
		return
	}

	// time loop
	ctrl := &o.Sim.Control
	for k := 0; k < ctrl.Nout; k++ {
		h, err = o.State.Advance(ctrl.Nsub, o.report)
		if err != nil {
			return chk.Err("substep %d failed at t = %g:\n%v", o.State.Step, o.State.T, err)
		}
		err = o.Output(h)
		if err != nil {
			return
		}
	}
	return
}

// Output writes the particles and the global quantities of the current state
func (o *Main) Output(h Health) (err error) {
	st := o.State
	if o.ShowMsg {
		io.Pf("> t = %-12g step = %-8d max|v| = %-12g J ∈ [%g, %g]\n", st.T, st.Step, h.MaxV, h.MinJ, h.MaxJ)
	}
	if h.NonFinite > 0 {
		return chk.Err("cannot write results at t = %g: %d particles with non-finite values", st.T, h.NonFinite)
	}
	snap := st.Snapshot(o.Tidx)
	if o.Sim.Data.Vtu {
		out.WriteVtu(o.Sim.DirOut, o.Sim.Key, snap)
	}
	if o.Sim.Data.Csv {
		err = out.WriteCsv(o.Sim.DirOut, o.Sim.Key, snap, o.ShowMsg)
		if err != nil {
			return
		}
	}
	err = o.Series.Write(st.Record(o.Tidx, h))
	if err != nil {
		return
	}
	if o.Summary != nil {
		o.Summary.Append(st.T, h)
	}
	o.Tidx++
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// report prints the warnings of one substep
func (o *Main) report(h Health) {
	if o.ShowMsg {
		h.Warn(o.State.T)
	}
}

// onexit closes files, prints final message with simulation and cpu times and saves summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// clean resources
	err = o.Series.Close()

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> t = %g after %d substeps\n", o.State.T, o.State.Step)
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save summary
	if o.Summary != nil {
		e := o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.ShowMsg)
		if err == nil {
			err = e
		}
	}

	// previous error has precedence
	if prevErr != nil {
		err = prevErr
	}
	return
}

// Times returns the output times of a run from t=0 to tf
func (o *Main) Times() (times []float64) {
	ctrl := &o.Sim.Control
	times = make([]float64, ctrl.Nout+1)
	for k := 1; k <= ctrl.Nout; k++ {
		times[k] = float64(k*ctrl.Nsub) * ctrl.Dt
	}
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of particle snapshots (VTU and CSV) and of time series
package out

import (
	"math"
	"path"

	"github.com/cpmech/gosl/io"
)

// Point holds the exported data of one particle
type Point struct {
	Id       int     `csv:"id"`
	Mat      int     `csv:"mat"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Z        float64 `csv:"z"`
	Vx       float64 `csv:"vx"`
	Vy       float64 `csv:"vy"`
	Vz       float64 `csv:"vz"`
	Sxx      float64 `csv:"sxx"`
	Syy      float64 `csv:"syy"`
	Sxy      float64 `csv:"sxy"`
	Pressure float64 `csv:"pressure"` // -(sxx+syy)/3
	J        float64 `csv:"J"`        // det(F)
	PoU      float64 `csv:"pou"`      // Σφ - 1
	Cons     float64 `csv:"cons"`     // |Σφ・xI - x|
	ConsDx   float64 `csv:"consdx"`   // |Σ∂φ/∂x・xI - [1,0]|
	ConsDy   float64 `csv:"consdy"`   // |Σ∂φ/∂y・xI - [0,1]|
	Vmag     float64 `csv:"vmag"`     // |v|
}

// Points is a set of points
type Points []*Point

// Snapshot holds the state of all particles at an output time
type Snapshot struct {
	Tidx   int     // output index
	Time   float64 // simulation time
	Points Points  // all particles
}

// SetStress sets the stress components and the derived pressure
func (o *Point) SetStress(sxx, syy, sxy float64) {
	o.Sxx, o.Syy, o.Sxy = sxx, syy, sxy
	o.Pressure = -(sxx + syy) / 3.0
}

// SetVelocity sets the velocity components and the magnitude
func (o *Point) SetVelocity(vx, vy float64) {
	o.Vx, o.Vy, o.Vz = vx, vy, 0
	o.Vmag = math.Hypot(vx, vy)
}

// Record holds global quantities written to the time series
type Record struct {
	Tidx    int     `csv:"tidx"`
	Time    float64 `csv:"time"`
	Step    int     `csv:"step"`
	Ekin    float64 `csv:"ekin"`    // Σ ½m|v|²
	MaxV    float64 `csv:"maxv"`    // max |v|
	MinJ    float64 `csv:"minj"`    // min det(F)
	MaxJ    float64 `csv:"maxj"`    // max det(F)
	MeanP   float64 `csv:"meanp"`   // volume-weighted mean pressure
	MaxPoU  float64 `csv:"maxpou"`  // max |Σφ - 1|
	IllCond int     `csv:"illcond"` // number of ill-conditioned moment matrices
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func snapshot_fn(fnkey string, tidx int, ext string) string {
	return io.Sf("%s_%06d%s", fnkey, tidx, ext)
}

func series_path(dirout, fnkey string) string {
	return path.Join(dirout, fnkey+"_series.csv")
}

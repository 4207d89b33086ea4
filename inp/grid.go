// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gompm/shp"
	"gonum.org/v1/gonum/spatial/r2"
)

// Edge identifies a wall of the square domain
type Edge int

const (
	Left Edge = iota
	Right
	Bottom
	Top
)

// Edges holds all walls
var Edges = []Edge{Left, Right, Bottom, Top}

// Axis returns the index of the coordinate normal to the wall
func (e Edge) Axis() int {
	if e == Left || e == Right {
		return 0
	}
	return 1
}

// String returns the name of the wall
func (e Edge) String() string {
	return [...]string{"left", "right", "bottom", "top"}[e]
}

// GridData holds the derived geometry of the background lattice
//  The lattice has N×N nodes with coordinates i・dx, i=0..N-1. The physical domain [0,len]² is
//  shifted by Skirt cells so it spans [Skirt・dx, len + Skirt・dx]²
type GridData struct {
	N       int     // number of nodes along each axis = numg + 2・skirt
	Ncells  int     // number of cells along each axis = N - 1
	Skirt   int     // number of layers of cells around the domain
	Dx      float64 // spacing = len / (ncells - 2・skirt)
	A       float64 // support size of shape functions
	NodeNum int     // number of stencil nodes along each axis
	Shift   float64 // used to compute the stencil base
	Beta    float64 // penalty parameter
	Xmin    float64 // lower limit of domain (both axes)
	Xmax    float64 // upper limit of domain (both axes)

	// penalty sample points on each wall; [4][ncells-2・skirt]
	PenaltyPts [4][]r2.Vec
}

// Init computes the geometry
func (o *GridData) Init(dom *DomainData, num *NumericsData, rho float64) {
	o.N = dom.Numg + 2*dom.Skirt
	o.Ncells = o.N - 1
	o.Skirt = dom.Skirt
	o.Dx = dom.Len / float64(o.Ncells-2*dom.Skirt)
	o.A = num.ANorm * o.Dx
	o.NodeNum = shp.NodeNum(o.A, o.Dx, num.Eps)
	o.Shift = shp.Shift(o.A, o.Dx)
	o.Beta = num.BetaNor * rho * o.Dx * o.Dx
	o.Xmin = float64(dom.Skirt) * o.Dx
	o.Xmax = dom.Len + o.Xmin

	// penalty points: one per cell along each wall, half a cell off the wall corners
	npts := o.Ncells - 2*dom.Skirt
	for _, e := range Edges {
		o.PenaltyPts[e] = make([]r2.Vec, npts)
	}
	s := float64(dom.Skirt) + 0.5
	for i := 0; i < npts; i++ {
		t := (s + float64(i)) * o.Dx
		o.PenaltyPts[Left][i] = r2.Vec{X: o.Xmin, Y: t}
		o.PenaltyPts[Right][i] = r2.Vec{X: o.Xmax, Y: t}
		o.PenaltyPts[Bottom][i] = r2.Vec{X: t, Y: o.Xmin}
		o.PenaltyPts[Top][i] = r2.Vec{X: t, Y: o.Xmax}
	}
}

// NewRK returns a shape functions evaluator on the node lattice
func (o *GridData) NewRK(kind shp.KernelKind) *shp.RK {
	return shp.NewRK(kind, o.A, o.Dx, 0, o.N, o.NodeNum, o.Shift)
}

// NewCellRK returns a shape functions evaluator on the lattice of cell centres
func (o *GridData) NewCellRK(kind shp.KernelKind) *shp.RK {
	return shp.NewRK(kind, o.A, o.Dx, o.Dx/2, o.Ncells, o.NodeNum, o.Shift)
}

// RawPenalty tells whether a node with index idx along the normal of wall e lies beyond the
// wall; such nodes receive the full penalty instead of the shape-function weighted one
func (o *GridData) RawPenalty(e Edge, idx int) bool {
	if e == Left || e == Bottom {
		return idx < o.Skirt
	}
	return idx > o.Ncells-o.Skirt
}

// NearWall tells whether a node with index idx is within NodeNum layers of the lower (low=true)
// or upper wall; these nodes are subject to velocity clipping
func (o *GridData) NearWall(idx int, low bool) bool {
	if low {
		return idx < o.NodeNum
	}
	return idx > o.N-o.NodeNum-1
}

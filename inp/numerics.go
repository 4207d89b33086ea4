// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"runtime"

	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
)

// TransferKind selects how particle momentum is scattered to the grid
type TransferKind int

const (
	PIC  TransferKind = iota // m・v
	APIC                     // m・(v + L・(xI - x))
)

// BoundaryKind selects how the walls of the domain are enforced
type BoundaryKind int

const (
	Clip    BoundaryKind = iota // outward normal velocity of nodes near walls is set to zero
	Penalty                     // stiffness added to the grid mass matrix along wall normals
)

var transferNames = map[string]TransferKind{"pic": PIC, "apic": APIC}
var boundaryNames = map[string]BoundaryKind{"clip": Clip, "penalty": Penalty}

// String returns the input name
func (o TransferKind) String() string {
	if o == APIC {
		return "apic"
	}
	return "pic"
}

// String returns the input name
func (o BoundaryKind) String() string {
	if o == Penalty {
		return "penalty"
	}
	return "clip"
}

// NumericsData holds data for the particle/grid algorithm
type NumericsData struct {

	// input
	Kernel   string  `json:"kernel" yaml:"kernel"`     // window function: "bspline" or "tent"
	Transfer string  `json:"transfer" yaml:"transfer"` // P2G momentum transfer: "pic" or "apic"
	Eta      float64 `json:"eta" yaml:"eta"`           // FLIP/APIC blend: 0 => APIC, 1 => FLIP
	MixRatio float64 `json:"mixratio" yaml:"mixratio"` // pressure: 0 => point-wise, 1 => projected from grid
	Boundary string  `json:"boundary" yaml:"boundary"` // wall condition: "clip" or "penalty"
	BetaNor  float64 `json:"betanor" yaml:"betanor"`   // normalised penalty; β = betanor・ρ・dx²
	DivBar   bool    `json:"divbar" yaml:"divbar"`     // smooth the velocity divergence over cells
	ANorm    float64 `json:"anorm" yaml:"anorm"`       // normalised support size; a = anorm・dx
	Eps      float64 `json:"eps" yaml:"eps"`           // small number
	Nworkers int     `json:"nworkers" yaml:"nworkers"` // number of goroutines; 0 => GOMAXPROCS

	// derived
	KernelKind   shp.KernelKind
	TransferKind TransferKind
	BoundaryKind BoundaryKind
}

// SetDefault sets defaults values
func (o *NumericsData) SetDefault() {
	o.Kernel = "bspline"
	o.Transfer = "pic"
	o.Eta = 0
	o.MixRatio = 1
	o.Boundary = "clip"
	o.BetaNor = 1e6
	o.ANorm = 1.5
	o.Eps = 1e-15
}

// PostProcess converts names to kinds and checks values
func (o *NumericsData) PostProcess() (err error) {
	o.KernelKind, err = shp.ParseKernel(o.Kernel)
	if err != nil {
		return
	}
	var ok bool
	if o.TransferKind, ok = transferNames[o.Transfer]; !ok {
		return chk.Err("transfer %q is not available; options are \"pic\" and \"apic\"", o.Transfer)
	}
	if o.BoundaryKind, ok = boundaryNames[o.Boundary]; !ok {
		return chk.Err("boundary %q is not available; options are \"clip\" and \"penalty\"", o.Boundary)
	}
	if o.Eta < 0 || o.Eta > 1 {
		return chk.Err("eta must be in [0, 1]. eta = %g", o.Eta)
	}
	if o.MixRatio < 0 || o.MixRatio > 1 {
		return chk.Err("mixratio must be in [0, 1]. mixratio = %g", o.MixRatio)
	}
	if o.ANorm <= 0 {
		return chk.Err("anorm must be positive. anorm = %g", o.ANorm)
	}
	if o.BoundaryKind == Penalty && o.BetaNor <= 0 {
		return chk.Err("betanor must be positive with penalty boundary. betanor = %g", o.BetaNor)
	}
	if o.Nworkers < 1 {
		o.Nworkers = runtime.GOMAXPROCS(0)
	}
	return
}

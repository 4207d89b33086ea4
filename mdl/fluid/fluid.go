// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements constitutive models for weakly compressible fluids
package fluid

import (
	"strings"

	"github.com/cpmech/gompm/mtx"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Prm holds a material parameter; e.g. {"n":"rho", "v":997.5}
type Prm struct {
	N string  `json:"n" yaml:"n"` // name
	V float64 `json:"v" yaml:"v"` // value
}

// Prms holds many parameters
type Prms []*Prm

// Find returns a parameter or nil if not found
func (o Prms) Find(name string) *Prm {
	for _, p := range o {
		if p.N == name {
			return p
		}
	}
	return nil
}

// String returns a JSON-like representation of the parameters
func (o Prms) String() string {
	l := make([]string, len(o))
	for i, p := range o {
		l[i] = io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return "[" + strings.Join(l, ", ") + "]"
}

// Model defines the interface for fluid models
//  The stress is computed from the pressure p and the velocity gradient L; the pressure evolves
//  according to the volumetric strain rate
type Model interface {
	Init(prms Prms) error                      // initialises model
	GetPrms(example bool) Prms                 // gets (an example) of parameters
	GetRho() float64                           // returns reference density
	Bulk() float64                             // returns the bulk modulus
	Stress(p float64, L mtx.Mat2) mtx.Mat2     // computes Cauchy stress
	PressureUpdate(p, div, dt float64) float64 // integrates pressure over dt for the given ∇・v
	SoundSpeed() float64                       // returns the speed of sound √(K/ρ)
}

// New returns new fluid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'fluid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available fluid models; modelname => allocator
var allocators = map[string]func() Model{}

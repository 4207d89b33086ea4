// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gompm/mtx"
	"github.com/cpmech/gosl/chk"
)

// Newtonian implements a weakly compressible Newtonian viscous fluid
//   σ = -p・I + 2・μ・sym(L)
//   dp/dt = -K・∇・v
type Newtonian struct {
	Rho float64 // reference density
	Mu  float64 // dynamic viscosity
	Nu  float64 // Poisson coefficient
	K   float64 // bulk modulus
	E   float64 // Young's modulus
	G   float64 // shear modulus
}

// add model to factory
func init() {
	allocators["newtonian"] = func() Model { return new(Newtonian) }
}

// Init initialises model
//  Either "K" or "E" must be given; the other moduli are derived with
//   E = 2・K・(1-ν)   G = K・(1-ν)/(1+ν)
func (o *Newtonian) Init(prms Prms) (err error) {
	var hasK, hasE bool
	o.Nu = 0.4999
	for _, p := range prms {
		switch p.N {
		case "rho":
			o.Rho = p.V
		case "mu":
			o.Mu = p.V
		case "nu":
			o.Nu = p.V
		case "K":
			o.K, hasK = p.V, true
		case "E":
			o.E, hasE = p.V, true
		default:
			return chk.Err("newtonian: parameter named %q is invalid", p.N)
		}
	}
	if o.Rho <= 0 {
		return chk.Err("newtonian: density must be positive. rho = %g", o.Rho)
	}
	if o.Mu < 0 {
		return chk.Err("newtonian: viscosity must be non-negative. mu = %g", o.Mu)
	}
	if o.Nu <= -1 || o.Nu >= 1 {
		return chk.Err("newtonian: Poisson coefficient must be in (-1, 1). nu = %g", o.Nu)
	}
	switch {
	case hasK && hasE:
		return chk.Err("newtonian: K and E cannot be given at the same time")
	case hasK:
		o.E = 2 * o.K * (1 - o.Nu)
	case hasE:
		o.K = o.E / (2 * (1 - o.Nu))
	default:
		return chk.Err("newtonian: either K or E must be given")
	}
	if o.K < 0 {
		return chk.Err("newtonian: bulk modulus must be non-negative. K = %g", o.K)
	}
	o.G = o.K * (1 - o.Nu) / (1 + o.Nu)
	return
}

// GetPrms gets (an example) of parameters
//  Input:
//   example -- returns water in SI units; otherwise returns current parameters
func (o Newtonian) GetPrms(example bool) Prms {
	if example {
		return Prms{
			&Prm{N: "rho", V: 997.5}, // [kg/m³]
			&Prm{N: "mu", V: 1e-3},   // [Pa・s]
			&Prm{N: "nu", V: 0.4999}, // [-]
			&Prm{N: "K", V: 2e9},     // [Pa]
		}
	}
	return Prms{
		&Prm{N: "rho", V: o.Rho},
		&Prm{N: "mu", V: o.Mu},
		&Prm{N: "nu", V: o.Nu},
		&Prm{N: "K", V: o.K},
	}
}

// GetRho returns the reference density
func (o Newtonian) GetRho() float64 {
	return o.Rho
}

// Bulk returns the bulk modulus
func (o Newtonian) Bulk() float64 {
	return o.K
}

// Stress computes σ = -p・I + 2・μ・sym(L)
func (o Newtonian) Stress(p float64, L mtx.Mat2) mtx.Mat2 {
	return L.Sym().Scale(2 * o.Mu).Sub(mtx.I2.Scale(p))
}

// PressureUpdate computes p - dt・K・∇・v
func (o Newtonian) PressureUpdate(p, div, dt float64) float64 {
	return p - dt*o.K*div
}

// SoundSpeed returns √(K/ρ)
func (o Newtonian) SoundSpeed() float64 {
	return math.Sqrt(o.K / o.Rho)
}

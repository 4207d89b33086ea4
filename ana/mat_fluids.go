// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// Water handles the properties of water in SI units
type Water struct {
	Θ   float64 // reference temperature; default = 25°C or 298.15K
	K   float64 // bulk modulus @ reference temperature
	Rho float64 // intrinsic density @ reference temperature
	Mu  float64 // dynamic viscosity @ reference temperature
	C   float64 // compressibility @ reference temperature
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 298.15      // [K]       25°C
	o.K = 2.2e9       // [Pa]      25°C
	o.Rho = 997.0479  // [kg/m³]   25°C
	o.Mu = 0.890e-3   // [Pa・s]   25°C
	o.C = o.Rho / o.K // [kg/(m³・Pa)]
}

// Weak returns a copy with bulk modulus K; e.g. to run weakly compressible simulations with
// a larger time step
func (o Water) Weak(K float64) Water {
	o.K = K
	o.C = o.Rho / K
	return o
}

// SoundSpeed returns √(K/ρ)
func (o Water) SoundSpeed() float64 {
	return math.Sqrt(o.K / o.Rho)
}

// CriticalDt returns the largest stable time step dx/c of an explicit scheme with spacing dx
func (o Water) CriticalDt(dx float64) float64 {
	return dx / o.SoundSpeed()
}

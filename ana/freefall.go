// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// FreeFall computes the motion of a body under constant gravity g (signed; e.g. -9.81)
// integrated with n explicit steps of size dt
type FreeFall struct {
	G  float64 // acceleration
	V0 float64 // initial velocity
	Y0 float64 // initial position
}

// Velocity returns v = v0 + g・n・dt
func (o FreeFall) Velocity(n int, dt float64) float64 {
	return o.V0 + o.G*float64(n)*dt
}

// Position returns the position after n semi-implicit Euler steps; i.e. y += dt・v after updating v
//  y = y0 + n・dt・v0 + g・dt²・n・(n+1)/2
func (o FreeFall) Position(n int, dt float64) float64 {
	fn := float64(n)
	return o.Y0 + fn*dt*o.V0 + o.G*dt*dt*fn*(fn+1)/2
}

// PositionExact returns y = y0 + v0・t + g・t²/2
func (o FreeFall) PositionExact(t float64) float64 {
	return o.Y0 + o.V0*t + o.G*t*t/2
}

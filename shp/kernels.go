// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/chk"

// KernelKind selects the 1D window function used to build the RK weights
type KernelKind int

const (
	BSpline KernelKind = iota // cubic B-spline
	Tent                      // linear (tent)
)

// KernelFunc evaluates a 1D window at the normalised distance z = |x - xI| / a
type KernelFunc func(z float64) float64

// kernels holds all available windows
var kernels = map[KernelKind]KernelFunc{
	BSpline: bspline,
	Tent:    tent,
}

// kernelNames maps input names to kinds
var kernelNames = map[string]KernelKind{
	"bspline": BSpline,
	"tent":    Tent,
}

// GetKernel returns the window function of a given kind
func GetKernel(kind KernelKind) KernelFunc {
	return kernels[kind]
}

// ParseKernel converts a name such as "bspline" or "tent" into a kind
func ParseKernel(name string) (kind KernelKind, err error) {
	kind, ok := kernelNames[name]
	if !ok {
		return 0, chk.Err("kernel %q is not available; options are \"bspline\" and \"tent\"", name)
	}
	return
}

// String returns the input name of the kernel
func (o KernelKind) String() string {
	for name, kind := range kernelNames {
		if kind == o {
			return name
		}
	}
	return "unknown"
}

// bspline implements the cubic B-spline window
func bspline(z float64) float64 {
	switch {
	case z < 0:
		return 0
	case z < 0.5:
		return 2.0/3.0 - 4*z*z + 4*z*z*z
	case z < 1:
		return 4.0/3.0 - 4*z + 4*z*z - 4.0/3.0*z*z*z
	}
	return 0
}

// tent implements the linear window. The sign is negative inside the support; the 2D tensor
// product and the moment-matrix normalisation cancel it out
func tent(z float64) float64 {
	if z >= 0 && z < 1 {
		return z - 1
	}
	return 0
}

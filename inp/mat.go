// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gompm/mdl/fluid"
	"github.com/cpmech/gosl/chk"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name" yaml:"name"`   // name of material
	Model string     `json:"model" yaml:"model"` // name of model; e.g. "newtonian"
	Extra string     `json:"extra" yaml:"extra"` // extra information about this material
	Prms  fluid.Prms `json:"prms" yaml:"prms"`   // prms holds all model parameters for this material

	// derived
	Fluid fluid.Model `json:"-" yaml:"-"` // pointer to actual fluid model
}

// SetDefault sets defaults values
func (o *Material) SetDefault() {
	o.Name = "water"
	o.Model = "newtonian"
}

// Init allocates and initialises the model; missing parameters are replaced by the
// model's example
func (o *Material) Init() (err error) {
	o.Fluid, err = fluid.New(o.Model)
	if err != nil {
		return chk.Err("cannot allocate model for material %q:\n%v", o.Name, err)
	}
	if len(o.Prms) == 0 {
		o.Prms = o.Fluid.GetPrms(true)
	}
	err = o.Fluid.Init(o.Prms)
	if err != nil {
		return chk.Err("cannot initialise model for material %q:\n%v", o.Name, err)
	}
	return
}

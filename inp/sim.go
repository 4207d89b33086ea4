// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file or from a YAML file
package inp

import (
	"encoding/json"
	goio "io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/gompm
	Encoder string `json:"encoder" yaml:"encoder"` // encoder name for the summary; e.g. "gob" "json"
	Vtu     bool   `json:"vtu" yaml:"vtu"`         // write particles to VTU files
	Csv     bool   `json:"csv" yaml:"csv"`         // write particles to CSV files
	Series  bool   `json:"series" yaml:"series"`   // write time series of global quantities to a CSV file
}

// DomainData holds the definition of the square domain and its lattice
type DomainData struct {
	Len   float64 `json:"len" yaml:"len"`     // side length of domain
	Numg  int     `json:"numg" yaml:"numg"`   // number of nodes along each side of domain
	Skirt int     `json:"skirt" yaml:"skirt"` // number of layers of cells around the domain
}

// BlockData holds the definition of the initial block of fluid
type BlockData struct {
	W   float64 `json:"w" yaml:"w"`     // width
	H   float64 `json:"h" yaml:"h"`     // height
	Nx  int     `json:"nx" yaml:"nx"`   // number of particles along x
	Ny  int     `json:"ny" yaml:"ny"`   // number of particles along y
	Mat int     `json:"mat" yaml:"mat"` // material id attached to particles
}

// GravityData holds the body force definition
type GravityData struct {
	G   float64   `json:"g" yaml:"g"`     // acceleration; negative means opposite to dir
	Dir []float64 `json:"dir" yaml:"dir"` // unit direction; e.g. [0,1]
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf    float64 `json:"tf" yaml:"tf"`       // final time
	Dt    float64 `json:"dt" yaml:"dt"`       // time step size
	DtOut float64 `json:"dtout" yaml:"dtout"` // time step size for output

	// derived
	Nsub int // number of substeps between outputs
	Nout int // number of outputs after the initial one
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data     Data         `json:"data" yaml:"data"`         // stores global simulation data
	Domain   DomainData   `json:"domain" yaml:"domain"`     // domain and lattice
	Block    BlockData    `json:"block" yaml:"block"`       // initial block of fluid
	Material Material     `json:"material" yaml:"material"` // fluid material
	Numerics NumericsData `json:"numerics" yaml:"numerics"` // algorithm data
	Gravity  GravityData  `json:"gravity" yaml:"gravity"`   // body force
	Control  TimeControl  `json:"control" yaml:"control"`   // time control

	// derived
	DirOut  string   // directory to save results
	Key     string   // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType string   // encoder type
	Grid    GridData // lattice geometry
	Fb      r2.Vec   // body force density ρ・g・dir
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// NewSimulation returns a simulation with default values; e.g. to be changed before PostProcess
func NewSimulation() *Simulation {
	o := new(Simulation)
	o.SetDefault()
	return o
}

// ReadSim reads all simulation data from a .sim JSON file or a .yaml file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) (o *Simulation, err error) {

	// new sim
	o = NewSimulation()

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	ext := strings.ToLower(io.FnExt(simfilepath))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/gompm/" + fnkey
	}

	// derived data
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("ReadSim: invalid data in %q:\n%v", simfilepath, err)
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	return
}

// SetDefault sets defaults values
func (o *Simulation) SetDefault() {
	o.Data.Encoder = "gob"
	o.Data.Vtu = true
	o.Domain = DomainData{Len: 6, Numg: 71, Skirt: 2}
	o.Block = BlockData{W: 4, H: 2, Nx: 80, Ny: 40}
	o.Material.SetDefault()
	o.Numerics.SetDefault()
	o.Gravity = GravityData{G: -9.81, Dir: []float64{0, 1}}
	o.Control = TimeControl{Tf: 0.1, Dt: 1e-5, DtOut: 5e-4}
}

// PostProcess checks the input and computes derived data
func (o *Simulation) PostProcess() (err error) {

	// keys
	if o.Key == "" {
		o.Key = "gompm"
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/gompm"
	}
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// numerics and material
	err = o.Numerics.PostProcess()
	if err != nil {
		return
	}
	err = o.Material.Init()
	if err != nil {
		return
	}

	// domain
	if o.Domain.Len <= 0 {
		return chk.Err("domain length must be positive. len = %g", o.Domain.Len)
	}
	if o.Domain.Skirt < 2 {
		return chk.Err("skirt must have at least 2 layers of cells. skirt = %d", o.Domain.Skirt)
	}
	if o.Domain.Numg < 2 {
		return chk.Err("numg must be at least 2. numg = %d", o.Domain.Numg)
	}
	o.Grid.Init(&o.Domain, &o.Numerics, o.Material.Fluid.GetRho())
	if o.Grid.NodeNum < 2 {
		return chk.Err("support is too small: anorm = %g gives %d stencil nodes per axis", o.Numerics.ANorm, o.Grid.NodeNum)
	}

	// block
	if o.Block.Nx < 2 || o.Block.Ny < 2 {
		if o.Block.Nx != 1 || o.Block.Ny != 1 {
			return chk.Err("block needs at least 2×2 particles (or exactly one). nx = %d, ny = %d", o.Block.Nx, o.Block.Ny)
		}
	}
	if o.Block.W < 0 || o.Block.H < 0 || o.Block.W > o.Domain.Len || o.Block.H > o.Domain.Len {
		return chk.Err("block (w=%g, h=%g) does not fit in domain of side %g", o.Block.W, o.Block.H, o.Domain.Len)
	}

	// gravity
	if len(o.Gravity.Dir) != 2 {
		return chk.Err("gravity direction must have 2 components. dir = %v", o.Gravity.Dir)
	}
	dir := r2.Vec{X: o.Gravity.Dir[0], Y: o.Gravity.Dir[1]}
	if n := r2.Norm(dir); n > 0 {
		dir = r2.Scale(1/n, dir)
	}
	o.Fb = r2.Scale(o.Material.Fluid.GetRho()*o.Gravity.G, dir)

	// time control
	c := &o.Control
	if c.Dt <= 0 {
		return chk.Err("dt must be positive. dt = %g", c.Dt)
	}
	if c.Tf < c.Dt {
		c.Tf = c.Dt
	}
	if c.DtOut < c.Dt {
		c.DtOut = c.Dt
	}
	c.Nsub = int(math.Round(c.DtOut / c.Dt))
	c.Nout = int(math.Ceil(c.Tf/(float64(c.Nsub)*c.Dt) - 1e-10))
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

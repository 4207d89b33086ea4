// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// VTK code of a vertex cell
const vtkVertex = 1

// WriteVtu writes a snapshot to <dirout>/<fnkey>_<tidx>.vtu as a cloud of vertex cells
func WriteVtu(dirout, fnkey string, s *Snapshot) {
	geo := new(bytes.Buffer)
	dat := new(bytes.Buffer)
	vtu_topology(geo, s.Points)
	vtu_pdata(dat, s.Points)
	np := len(s.Points)
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<FieldData>\n<DataArray type=\"Float64\" Name=\"TIME\" NumberOfTuples=\"1\" format=\"ascii\">\n%23.15e\n</DataArray>\n</FieldData>\n", s.Time)
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", np, np)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, snapshot_fn(fnkey, s.Tidx, ".vtu"), &hdr, geo, dat, &foo)
}

// topology ////////////////////////////////////////////////////////////////////////////////////////

func vtu_topology(buf *bytes.Buffer, pts Points) {

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, p := range pts {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", p.X, p.Y, p.Z)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for i := range pts {
		io.Ff(buf, "%d ", i)
	}

	// offsets
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for i := range pts {
		io.Ff(buf, "%d ", i+1)
	}

	// types
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for range pts {
		io.Ff(buf, "%d ", vtkVertex)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}

// points data /////////////////////////////////////////////////////////////////////////////////////

func vtu_pdata(buf *bytes.Buffer, pts Points) {

	// open
	io.Ff(buf, "<PointData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"ID\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, p := range pts {
		io.Ff(buf, "%d ", p.Mat)
	}
	io.Ff(buf, "\n</DataArray>\n")

	// vectors
	io.Ff(buf, "<DataArray type=\"Float64\" Name=\"velocity\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, p := range pts {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", p.Vx, p.Vy, p.Vz)
	}
	io.Ff(buf, "\n</DataArray>\n")

	// scalars
	scalars := []struct {
		name string
		get  func(p *Point) float64
	}{
		{"sxx", func(p *Point) float64 { return p.Sxx }},
		{"syy", func(p *Point) float64 { return p.Syy }},
		{"sxy", func(p *Point) float64 { return p.Sxy }},
		{"pressure", func(p *Point) float64 { return p.Pressure }},
		{"deformation", func(p *Point) float64 { return p.J }},
		{"PoU", func(p *Point) float64 { return p.PoU }},
		{"Cons", func(p *Point) float64 { return p.Cons }},
		{"ConsDx", func(p *Point) float64 { return p.ConsDx }},
		{"ConsDy", func(p *Point) float64 { return p.ConsDy }},
		{"vmag", func(p *Point) float64 { return p.Vmag }},
	}
	for _, s := range scalars {
		io.Ff(buf, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"1\" format=\"ascii\">\n", s.name)
		for _, p := range pts {
			io.Ff(buf, "%23.15e ", s.get(p))
		}
		io.Ff(buf, "\n</DataArray>\n")
	}

	// close
	io.Ff(buf, "</PointData>\n")
}

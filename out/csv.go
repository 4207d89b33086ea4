// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gocarina/gocsv"
)

// WriteCsv writes a snapshot to <dirout>/<fnkey>_<tidx>.csv with one row per particle
func WriteCsv(dirout, fnkey string, s *Snapshot, verbose bool) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fn := path.Join(dirout, snapshot_fn(fnkey, s.Tidx, ".csv"))
	fil, err := os.Create(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	err = gocsv.Marshal(s.Points, fil)
	if err != nil {
		return chk.Err("cannot write %q:\n%v", fn, err)
	}
	if verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// ReadCsv reads the particles of a snapshot written by WriteCsv
func ReadCsv(dirout, fnkey string, tidx int) (pts Points, err error) {
	fn := path.Join(dirout, snapshot_fn(fnkey, tidx, ".csv"))
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer fil.Close()
	err = gocsv.UnmarshalFile(fil, &pts)
	return
}

// Series writes one Record per output to <dirout>/<fnkey>_series.csv
type Series struct {
	Fn      string   // file name
	fil     *os.File // file handle
	written bool     // header was written
}

// NewSeries creates the time series file
func NewSeries(dirout, fnkey string) (o *Series, err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return nil, chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	o = new(Series)
	o.Fn = series_path(dirout, fnkey)
	o.fil, err = os.Create(o.Fn)
	if err != nil {
		return nil, chk.Err("cannot create time series file:\n%v", err)
	}
	return
}

// Write appends a record; the first call also writes the header
func (o *Series) Write(r *Record) (err error) {
	if o == nil {
		return
	}
	records := []*Record{r}
	if !o.written {
		err = gocsv.Marshal(records, o.fil)
		o.written = err == nil
	} else {
		err = gocsv.MarshalWithoutHeaders(records, o.fil)
	}
	if err != nil {
		return chk.Err("cannot write time series:\n%v", err)
	}
	return
}

// Close closes the file
func (o *Series) Close() (err error) {
	if o == nil || o.fil == nil {
		return
	}
	err = o.fil.Close()
	o.fil = nil
	return
}

// ReadSeries reads all records of a time series
func ReadSeries(dirout, fnkey string) (res []*Record, err error) {
	fil, err := os.Open(series_path(dirout, fnkey))
	if err != nil {
		return
	}
	defer fil.Close()
	err = gocsv.UnmarshalFile(fil, &res)
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import "sync"

// Pool runs data-parallel loops with a fixed number of goroutines
type Pool struct {
	Nworkers int // number of workers
}

// Chunk returns the range [lo,hi) of n items handled by worker w
func (o Pool) Chunk(w, n int) (lo, hi int) {
	size := n / o.Nworkers
	rest := n % o.Nworkers
	lo = w*size + min(w, rest)
	hi = lo + size
	if w < rest {
		hi++
	}
	return
}

// Run splits n items into contiguous chunks and calls fcn for each chunk in its own goroutine.
// It waits for all workers and returns the error of the first failing worker (in worker order)
func (o Pool) Run(n int, fcn func(w, lo, hi int) error) (err error) {
	if o.Nworkers < 2 {
		return fcn(0, 0, n)
	}
	errs := make([]error, o.Nworkers)
	var wg sync.WaitGroup
	for w := 0; w < o.Nworkers; w++ {
		lo, hi := o.Chunk(w, n)
		if lo == hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			errs[w] = fcn(w, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return
}

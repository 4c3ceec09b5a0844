// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"sync"

	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// Run executes every shot of the current acquisition and returns the
// stacked output (spec.md S4.6, S5, S7). Shots are distributed round-robin
// across MPI ranks (mirroring fem.FEM's mpi.IsOn()/Rank()/Size() gate) and,
// within a rank, across a bounded goroutine pool (spec.md S5's "parallel
// worker processes" realized at shot granularity). A failed shot aborts the
// run, reverts the Engine to Configured, and returns the error with the
// gather buffers and gradient left unset, per spec.md S7.
func (e *Engine) Run() (model.Output, error) {
	if e.state != Configured {
		return model.Output{}, model.ConfigErrorf("engine: Run requires state Configured, got %s", e.state)
	}
	e.state = Running
	out, err := e.run()
	if err != nil {
		e.state = Configured
		return model.Output{}, err
	}
	e.state = Configured
	return out, nil
}

func (e *Engine) run() (model.Output, error) {
	n := e.acq.NShots()
	results := make([]*shotResult, n)

	owned := make([]int, 0, n)
	for ishot := 0; ishot < n; ishot++ {
		if ishot%e.nproc == e.proc {
			owned = append(owned, ishot)
		}
	}

	workers := e.cfg.NWorkers
	if workers <= 0 || workers > len(owned) {
		workers = len(owned)
	}
	if workers == 0 {
		workers = 1
	}

	jobs := make(chan int)
	errs := make(chan error, len(owned))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ishot := range jobs {
				res, err := e.runShot(ishot)
				if err != nil {
					errs <- err
					continue
				}
				results[ishot] = res
			}
		}()
	}
	for _, ishot := range owned {
		jobs <- ishot
	}
	close(jobs)
	wg.Wait()
	close(errs)
	for err := range errs {
		return model.Output{}, err
	}

	if e.cfg.ShowMsg && e.proc == 0 {
		io.Pf("> engine: %d shots computed on this rank\n", len(owned))
	}

	return e.assembleOutput(results)
}

// assembleOutput flattens every rank's shotResult into fixed-size buffers
// (identical layout on every rank, since the acquisition is shared) and
// combines ranks with mpi.AllReduceSum, exactly as fem assembles nodal
// vectors shared across ranks: shot ownership is disjoint, so the "reduce"
// degenerates to a gather, and the gradient/illumination terms genuinely sum
// across shots (spec.md S4.6 step 5).
func (e *Engine) assembleOutput(results []*shotResult) (model.Output, error) {
	n := e.acq.NShots()
	traceOffsets := make([]int, n+1)
	for ishot := 0; ishot < n; ishot++ {
		shot := e.acq.Shot(ishot)
		traceOffsets[ishot+1] = traceOffsets[ishot] + len(shot.Receivers)*e.cfg.Nt
	}
	flat := make([]float64, traceOffsets[n])
	for ishot, res := range results {
		if res == nil {
			continue
		}
		off := traceOffsets[ishot]
		for ir, tr := range res.traces {
			copy(flat[off+ir*e.cfg.Nt:off+(ir+1)*e.cfg.Nt], tr)
		}
	}
	reduceSum(flat)

	dtOut := e.cfg.DtOut
	if dtOut <= 0 {
		dtOut = e.cfg.Dt
	}

	gathers := make([][]model.ShotGather, n)
	for ishot := 0; ishot < n; ishot++ {
		shot := e.acq.Shot(ishot)
		off := traceOffsets[ishot]
		traces := make([][]float64, len(shot.Receivers))
		for ir := range traces {
			row := flat[off+ir*e.cfg.Nt : off+(ir+1)*e.cfg.Nt]
			if dtOut != e.cfg.Dt {
				row = resampleTrace(row, e.cfg.Dt, dtOut)
			}
			traces[ir] = row
		}
		nt := e.cfg.Nt
		if dtOut != e.cfg.Dt {
			duration := float64(e.cfg.Nt-1) * e.cfg.Dt
			nt = int(math.Floor(duration/dtOut)) + 1
		}
		gathers[ishot] = buildGathers(shot, traces, nt)
	}

	out := model.Output{DtOut: dtOut, Gathers: gathers}

	if e.cfg.Gradient {
		grad, err := e.assembleGradient(results)
		if err != nil {
			return model.Output{}, err
		}
		out.Grad = grad
	}
	return out, nil
}

func (e *Engine) assembleGradient(results []*shotResult) (*model.Gradient, error) {
	n := physicalCells(e.cfg.Grid)
	gKI := make([]float64, n)
	gRhoI := make([]float64, n)
	var illum []float64
	if e.cfg.IllumNormalize {
		illum = make([]float64, n)
	}
	for _, res := range results {
		if res == nil || res.gradKI == nil {
			continue
		}
		for i := 0; i < n; i++ {
			gKI[i] += res.gradKI[i]
			gRhoI[i] += res.gradRhoI[i]
			if illum != nil {
				illum[i] += res.illum[i]
			}
		}
	}
	reduceSum(gKI)
	reduceSum(gRhoI)
	if illum != nil {
		reduceSum(illum)
		for i := range gKI {
			if illum[i] > 0 {
				gKI[i] /= illum[i]
				gRhoI[i] /= illum[i]
			}
		}
	}

	area := e.cfg.Grid.CellArea()
	scaleByCellArea(gKI, area)
	scaleByCellArea(gRhoI, area)

	g := e.cfg.Grid
	return &model.Gradient{Nz: g.Nz, Nx: g.Nx, Ny: g.Ny, GKI: gKI, GRhoI: gRhoI, Illum: illum}, nil
}

// reduceSum sums buf across MPI ranks in place; a no-op outside an MPI run.
func reduceSum(buf []float64) {
	if !mpi.IsOn() || mpi.Size() < 2 {
		return
	}
	scratch := make([]float64, len(buf))
	mpi.AllReduceSum(buf, scratch)
}

func buildGathers(shot model.Shot, traces [][]float64, nt int) []model.ShotGather {
	var order []model.ReceiverField
	groups := map[model.ReceiverField][]int{}
	for ir, r := range shot.Receivers {
		if _, ok := groups[r.Field]; !ok {
			order = append(order, r.Field)
		}
		groups[r.Field] = append(groups[r.Field], ir)
	}
	gathers := make([]model.ShotGather, len(order))
	for gi, f := range order {
		idxs := groups[f]
		data := make([][]float64, nt)
		for it := 0; it < nt; it++ {
			row := make([]float64, len(idxs))
			for k, ir := range idxs {
				row[k] = traces[ir][it]
			}
			data[it] = row
		}
		gathers[gi] = model.ShotGather{Field: f, Data: data}
	}
	return gathers
}

// resampleTrace linearly interpolates one receiver trace, recorded at dtIn,
// onto dtOut, spanning the same total duration.
func resampleTrace(vals []float64, dtIn, dtOut float64) []float64 {
	duration := float64(len(vals)-1) * dtIn
	nOut := int(math.Floor(duration/dtOut)) + 1
	out := make([]float64, nOut)
	for it := 0; it < nOut; it++ {
		t := float64(it) * dtOut
		pos := t / dtIn
		i0 := int(math.Floor(pos))
		if i0 >= len(vals)-1 {
			out[it] = vals[len(vals)-1]
			continue
		}
		frac := pos - float64(i0)
		out[it] = (1-frac)*vals[i0] + frac*vals[i0+1]
	}
	return out
}

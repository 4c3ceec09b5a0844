// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boundary implements the forward-pass recorder and reverse-pass
// replayer of spec.md S4.5 (C6): a thin interior shell saved at every time
// step plus a full-interior terminal snapshot, together sufficient to
// reconstruct the forward wavefield exactly during time reversal without
// storing the full grid at every step.
package boundary

import "github.com/cpmech/gofdtd/grid"

// shellPoint is one (iz,ix,iy) location of the recorded ring, shared by
// every field in a Recorder.
type shellPoint struct{ iz, ix, iy int }

// Recorder captures named field arrays on a 3-cell-thick ring just inside
// the CPML at every forward step, and the full interior at the terminal
// step. The step buffer holds Nt+1 entries (steps 0..Nt), allocated once
// when the Recorder is built and indexed directly by it.
type Recorder struct {
	G      *grid.Grid
	Fields []*grid.Array

	points []shellPoint
	shell  [][]float64 // shell[it][f*len(points)+k] is points[k] of Fields[f]
	nt     int

	terminal []*grid.Array // deep copy of each Fields[i] at it = Nt
}

// NewRecorder builds a recorder for nt forward steps over the given padded
// field arrays (e.g. pressure and the two velocity components for the
// acoustic mode, or the stress and velocity components for elastic).
func NewRecorder(g *grid.Grid, nt int, fields ...*grid.Array) *Recorder {
	r := &Recorder{G: g, Fields: fields, nt: nt}
	r.points = shellPoints(g)
	r.shell = make([][]float64, nt+1)
	perStep := len(r.points) * len(fields)
	for it := range r.shell {
		r.shell[it] = make([]float64, perStep)
	}
	r.terminal = make([]*grid.Array, len(fields))
	for i, f := range fields {
		r.terminal[i] = grid.NewArray(f.Nz, f.Nx, f.Ny)
	}
	return r
}

// shellPoints lists every padded-grid index lying within 3 cells of the
// physical-interior boundary (i.e. just inside the CPML), on any axis that
// has interior cells at all.
func shellPoints(g *grid.Grid) []shellPoint {
	const thick = 3
	loZ, hiZ := g.InteriorLoZ(), g.InteriorHiZ()
	loX, hiX := g.InteriorLoX(), g.InteriorHiX()
	loY, hiY := g.InteriorLoY(), g.InteriorHiY()

	onRing := func(i, lo, hi int) bool {
		return i <= lo+thick-1 || i >= hi-thick+1
	}

	var pts []shellPoint
	if g.Ndim == 2 {
		grid.Iter3(g.PaddedNz(), g.PaddedNx(), 0, func(iz, ix, _ int) {
			if iz < loZ || iz > hiZ || ix < loX || ix > hiX {
				return
			}
			if onRing(iz, loZ, hiZ) || onRing(ix, loX, hiX) {
				pts = append(pts, shellPoint{iz, ix, 0})
			}
		})
		return pts
	}
	grid.Iter3(g.PaddedNz(), g.PaddedNx(), g.PaddedNy(), func(iz, ix, iy int) {
		if iz < loZ || iz > hiZ || ix < loX || ix > hiX || iy < loY || iy > hiY {
			return
		}
		if onRing(iz, loZ, hiZ) || onRing(ix, loX, hiX) || onRing(iy, loY, hiY) {
			pts = append(pts, shellPoint{iz, ix, iy})
		}
	})
	return pts
}

// RecordShell copies the ring samples of every field at step it into the
// step buffer.
func (r *Recorder) RecordShell(it int) {
	buf := r.shell[it]
	k := 0
	for _, f := range r.Fields {
		for _, p := range r.points {
			buf[k] = f.At(p.iz, p.ix, p.iy)
			k++
		}
	}
}

// ReplayShell forces the recorded ring samples at step it back into the
// live fields, ahead of a reverse-time step.
func (r *Recorder) ReplayShell(it int) {
	buf := r.shell[it]
	k := 0
	for _, f := range r.Fields {
		for _, p := range r.points {
			f.Set(p.iz, p.ix, p.iy, buf[k])
			k++
		}
	}
}

// RecordTerminal deep-copies the full interior of every field; called once,
// at it = Nt.
func (r *Recorder) RecordTerminal() {
	for i, f := range r.Fields {
		r.terminal[i].CopyFrom(f)
	}
}

// ReplayTerminal restores the terminal snapshot into the live fields;
// called once, to initialize the reverse pass (backprop = -1).
func (r *Recorder) ReplayTerminal() {
	for i, f := range r.Fields {
		f.CopyFrom(r.terminal[i])
	}
}

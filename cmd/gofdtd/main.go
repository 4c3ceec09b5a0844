// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gofdtd runs a single acoustic shot in a homogeneous medium and
// prints the receiver trace; it offers no layered or other heterogeneous
// medium. Reading a real model/acquisition file format is
// an external collaborator's job (spec.md S1); this driver exists to
// exercise the engine end to end the way fem/t_*_main.go exercises fem.FEM
// against a fixed scenario instead of a user-supplied simulation file.
package main

import (
	"flag"

	"github.com/cpmech/gofdtd/cpml"
	"github.com/cpmech/gofdtd/engine"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gofdtd/wavelet"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\ngofdtd -- staggered-grid FDTD wave engine\n\n")
	}

	nz := flag.Int("nz", 100, "physical grid cells along z")
	nx := flag.Int("nx", 100, "physical grid cells along x")
	d := flag.Float64("d", 10.0, "cell spacing [m]")
	p := flag.Int("p", 30, "CPML padding thickness [cells]")
	vp := flag.Float64("vp", 2000.0, "P-wave velocity [m/s]")
	rho := flag.Float64("rho", 2000.0, "density [kg/m3]")
	dt := flag.Float64("dt", 0.002, "time step [s]")
	nt := flag.Int("nt", 500, "number of time steps")
	f0 := flag.Float64("f0", 10.0, "Ricker source peak frequency [Hz]")
	sz := flag.Float64("sz", 500.0, "source z coordinate [m]")
	sx := flag.Float64("sx", 500.0, "source x coordinate [m]")
	rz := flag.Float64("rz", 500.0, "receiver z coordinate [m]")
	rx := flag.Float64("rx", 700.0, "receiver x coordinate [m]")
	gradient := flag.Bool("gradient", false, "also compute the adjoint-state gradient using zero residuals (smoke test)")
	flag.Parse()

	g, err := grid.New(2, *nz, *nx, 0, *d, *d, 0, *p)
	if err != nil {
		chk.Panic("%v", err)
	}

	cfg := engine.Config{
		Mode:     model.Acoustic,
		Grid:     g,
		CPML:     cpml.DefaultConfig(),
		Dt:       *dt,
		Nt:       *nt,
		Gradient: *gradient,
		ShowMsg:  true,
	}
	eng, err := engine.New(cfg)
	if err != nil {
		chk.Panic("%v", err)
	}

	med := homogeneous{nz: *nz, nx: *nx, k: *vp * *vp * *rho, rho: *rho}
	if err := eng.UpdateMedium(med); err != nil {
		chk.Panic("%v", err)
	}

	acq := oneShot{
		sources:   []model.Source{{X: *sx, Z: *sz, Flag: model.SourceP}},
		receivers: []model.Receiver{{X: *rx, Z: *rz, Field: model.RecvP}},
	}
	if err := eng.UpdateAcquisition(acq); err != nil {
		chk.Panic("%v", err)
	}

	w := wavelet.Sample(wavelet.Ricker{F0: *f0, Delay: 1.0 / *f0}, *dt, *nt)
	if err := eng.UpdateWavelets(singleWavelet{w}); err != nil {
		chk.Panic("%v", err)
	}
	if *gradient {
		zero := model.Wavelet{Dt: *dt, Values: make([]float64, *nt)}
		if err := eng.UpdateAdjointWavelets(singleWavelet{zero}); err != nil {
			chk.Panic("%v", err)
		}
	}

	out, err := eng.Run()
	if err != nil {
		chk.Panic("%v", err)
	}

	if mpi.Rank() == 0 {
		trace := out.Gathers[0][0].Data
		io.Pf("receiver trace (%d samples at dt_out=%v):\n", len(trace), out.DtOut)
		n := len(trace)
		if n > 10 {
			n = 10
		}
		for it := 0; it < n; it++ {
			io.Pf("  it=%3d  p=%12.5e\n", it, trace[it][0])
		}
		if out.Grad != nil {
			io.Pf("gradient computed: %d cells\n", len(out.Grad.GKI))
		}
	}
}

// homogeneous is a trivial model.AcousticMedium of constant K, rho.
type homogeneous struct {
	nz, nx  int
	k, rho float64
}

func (h homogeneous) Dims() (nz, nx, ny int)   { return h.nz, h.nx, 0 }
func (h homogeneous) K(iz, ix, iy int) float64 { return h.k }
func (h homogeneous) Rho(iz, ix, iy int) float64 { return h.rho }

// oneShot is a model.Acquisition with exactly one shot.
type oneShot struct {
	sources   []model.Source
	receivers []model.Receiver
}

func (a oneShot) NShots() int { return 1 }
func (a oneShot) Shot(ishot int) model.Shot {
	return model.Shot{Sources: a.sources, Receivers: a.receivers}
}

// singleWavelet is a model.Wavelets with one source per shot.
type singleWavelet struct{ w model.Wavelet }

func (s singleWavelet) NShots() int                   { return 1 }
func (s singleWavelet) Shot(ishot int) []model.Wavelet { return []model.Wavelet{s.w} }

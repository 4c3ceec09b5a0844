// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"math"
	"testing"

	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gofdtd/wavefield"
	"github.com/cpmech/gosl/chk"
)

type homogeneousElastic struct {
	nz, nx          int
	lambda, mu, rho float64
}

func (h homogeneousElastic) Dims() (int, int, int)       { return h.nz, h.nx, 0 }
func (h homogeneousElastic) Lambda(iz, ix, iy int) float64 { return h.lambda }
func (h homogeneousElastic) Mu(iz, ix, iy int) float64     { return h.mu }
func (h homogeneousElastic) Rho(iz, ix, iy int) float64    { return h.rho }

func TestElasticStepZeroStateStaysZero(t *testing.T) {
	chk.PrintTitle("ElasticStepper.Step leaves an all-zero state at zero")

	g, _ := grid.New(2, 20, 20, 0, 10, 10, 0, 5)
	med, err := grid.PadElastic(g, homogeneousElastic{nz: 20, nx: 20, lambda: 4e9, mu: 2e9, rho: 2000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := wavefield.NewElastic(g)
	step := NewElastic(st, med)
	cp := neutralCPML(2, g.P, g.Dz, g.Dx, 0, med.VpMax, 0.001)

	step.Step(0.001, cp, false)

	for _, a := range []*grid.Array{st.Vx, st.Vz, st.Txx, st.Tzz, st.Txz} {
		for i, v := range a.Data {
			if v != 0 {
				t.Fatalf("expected zero field to remain zero, got %v at %d", v, i)
			}
		}
	}
}

func TestElasticStepModeIsElastic(t *testing.T) {
	chk.PrintTitle("ElasticStepper.Mode reports Elastic")

	g, _ := grid.New(2, 10, 10, 0, 10, 10, 0, 4)
	med, _ := grid.PadElastic(g, homogeneousElastic{nz: 10, nx: 10, lambda: 2e9, mu: 1e9, rho: 2000})
	step := NewElastic(wavefield.NewElastic(g), med)
	if step.Mode() != model.Elastic {
		t.Fatalf("expected model.Elastic, got %v", step.Mode())
	}
}

func TestElasticStepStaysFiniteUnderCFL(t *testing.T) {
	chk.PrintTitle("ElasticStepper.Step remains finite for many steps under CFL")

	g, _ := grid.New(2, 30, 30, 0, 10, 10, 0, 6)
	med, err := grid.PadElastic(g, homogeneousElastic{nz: 30, nx: 30, lambda: 4e9, mu: 2e9, rho: 2000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := wavefield.NewElastic(g)
	step := NewElastic(st, med)

	dt := 0.2 * g.Dx / (med.VpMax * math.Sqrt2)
	cp := neutralCPML(2, g.P, g.Dz, g.Dx, 0, med.VpMax, dt)

	cz, cx := g.InteriorLoZ()+g.Nz/2, g.InteriorLoX()+g.Nx/2
	st.Txx.Set(cz, cx, 0, 1.0)
	st.Tzz.Set(cz, cx, 0, 1.0)

	for it := 0; it < 40; it++ {
		step.Step(dt, cp, false)
	}

	for _, a := range []*grid.Array{st.Vx, st.Vz, st.Txx, st.Tzz, st.Txz} {
		for i, v := range a.Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite value %v at index %d after stepping", v, i)
			}
		}
	}
}

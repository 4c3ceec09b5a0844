// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"math"
	"testing"

	"github.com/cpmech/gofdtd/cpml"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/wavefield"
	"github.com/cpmech/gosl/chk"
)

type homogeneousMedium struct {
	nz, nx int
	k, rho float64
}

func (h homogeneousMedium) Dims() (int, int, int)     { return h.nz, h.nx, 0 }
func (h homogeneousMedium) K(iz, ix, iy int) float64   { return h.k }
func (h homogeneousMedium) Rho(iz, ix, iy int) float64 { return h.rho }

// neutralCPML returns a CPML set whose damping coefficients are all
// identity (a=0, b=1, kappa=1): Rc=1 makes log(Rc)=0, hence sigmaMax=0, so
// the memory-variable recursion is a no-op. Useful for isolating the
// interior leapfrog update from CPML in tests.
func neutralCPML(ndim, p int, dz, dx, dy, vpMax, dt float64) *cpml.Set {
	s, err := cpml.Build(ndim, p, dz, dx, dy, vpMax, dt, cpml.Config{N: 2, Rc: 1, Alpha: 0, KappaX: 1})
	if err != nil {
		panic(err)
	}
	return s
}

func TestAcousticStepZeroStateStaysZero(t *testing.T) {
	chk.PrintTitle("AcousticStepper.Step leaves an all-zero state at zero")

	g, _ := grid.New(2, 20, 20, 0, 10, 10, 0, 5)
	med, err := grid.PadAcoustic(g, homogeneousMedium{nz: 20, nx: 20, k: 4e9, rho: 2000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := wavefield.NewAcoustic(g)
	step := NewAcoustic(st, med)
	cp := neutralCPML(2, g.P, g.Dz, g.Dx, 0, med.VpMax, 0.001)

	step.Step(0.001, cp, false)

	for _, a := range []*grid.Array{st.P, st.Vx, st.Vz} {
		for i, v := range a.Data {
			if v != 0 {
				t.Fatalf("expected zero field to remain zero, got %v at %d", v, i)
			}
		}
	}
}

func TestAcousticStepStaysFiniteUnderCFL(t *testing.T) {
	chk.PrintTitle("AcousticStepper.Step remains finite for many steps under CFL")

	g, _ := grid.New(2, 40, 40, 0, 10, 10, 0, 8)
	med, err := grid.PadAcoustic(g, homogeneousMedium{nz: 40, nx: 40, k: 4e9, rho: 2000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := wavefield.NewAcoustic(g)
	step := NewAcoustic(st, med)

	// Courant number well under the 2D stability limit 1/(vp*sqrt(2)/dx).
	dt := 0.2 * g.Dx / (med.VpMax * math.Sqrt2)
	cp, err := cpml.Build(2, g.P, g.Dz, g.Dx, 0, med.VpMax, dt, cpml.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cz, cx := g.InteriorLoZ()+g.Nz/2, g.InteriorLoX()+g.Nx/2
	st.P.Set(cz, cx, 0, 1.0)

	for it := 0; it < 50; it++ {
		step.Step(dt, cp, false)
	}

	for _, a := range []*grid.Array{st.P, st.Vx, st.Vz} {
		for i, v := range a.Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite value %v at index %d after stepping", v, i)
			}
		}
	}
}

func TestAcousticStepSymmetricPulseStaysSymmetric(t *testing.T) {
	chk.PrintTitle("a centered pulse in a homogeneous medium keeps x/z symmetry")

	g, _ := grid.New(2, 21, 21, 0, 10, 10, 0, 6)
	med, err := grid.PadAcoustic(g, homogeneousMedium{nz: 21, nx: 21, k: 4e9, rho: 2000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := wavefield.NewAcoustic(g)
	step := NewAcoustic(st, med)
	dt := 0.2 * g.Dx / (med.VpMax * math.Sqrt2)
	cp := neutralCPML(2, g.P, g.Dz, g.Dx, 0, med.VpMax, dt)

	cz, cx := g.InteriorLoZ()+g.Nz/2, g.InteriorLoX()+g.Nx/2
	st.P.Set(cz, cx, 0, 1.0)

	for it := 0; it < 10; it++ {
		step.Step(dt, cp, false)
	}

	// pressure field must stay symmetric about the source under the purely
	// interior (CPML-neutral) update, since the medium and the initial
	// condition are both symmetric.
	for d := 1; d < 6; d++ {
		left := st.P.At(cz, cx-d, 0)
		right := st.P.At(cz, cx+d, 0)
		chk.Float64(t, "x-symmetry", 1e-9, left, right)
		up := st.P.At(cz-d, cx, 0)
		down := st.P.At(cz+d, cx, 0)
		chk.Float64(t, "z-symmetry", 1e-9, up, down)
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"github.com/cpmech/gofdtd/cpml"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/model"
)

// BornStepper implements the linearized (Born) acoustic scattering variant:
// a background field propagates in the unperturbed medium; a scattered
// field propagates in the same background medium but is driven by a
// secondary source proportional to the compressibility contrast
// chi_KI = (KI - KI0)/KI0 times the background field's time derivative — the
// standard single-scattering Born source term. Running Background+Scattered
// and recording Scattered reproduces, to first order in the perturbation,
// the difference between a perturbed-medium run and the background run
// (spec.md S8 E3).
type BornStepper struct {
	Background *AcousticStepper
	Scattered  *AcousticStepper
	ChiKI      *grid.Array // (KI-KI0)/KI0 contrast field on the padded grid

	prevP0 *grid.Array
}

// NewBorn builds a Born stepper. background and scattered must share the
// same grid and be initialized to the unperturbed (background) medium;
// chiKI carries the perturbation.
func NewBorn(background, scattered *AcousticStepper, chiKI *grid.Array) *BornStepper {
	g := background.State.G
	return &BornStepper{
		Background: background,
		Scattered:  scattered,
		ChiKI:      chiKI,
		prevP0:     grid.NewArray(g.PaddedNz(), g.PaddedNx(), g.PaddedNy()),
	}
}

func (s *BornStepper) Mode() model.Mode { return model.AcousticBorn }

func (s *BornStepper) Step(dt float64, cp *cpml.Set, dirichlet bool) {
	s.Background.Step(dt, cp, dirichlet)

	p0 := s.Background.State.P
	grid.Iter3(p0.Nz, p0.Nx, p0.Ny, func(iz, ix, iy int) {
		dp0dt := (p0.At(iz, ix, iy) - s.prevP0.At(iz, ix, iy)) / dt
		secondary := s.ChiKI.At(iz, ix, iy) * dp0dt
		s.Scattered.State.P.Add(iz, ix, iy, dt*secondary)
	})
	s.prevP0.CopyFrom(p0)

	s.Scattered.Step(dt, cp, dirichlet)
}

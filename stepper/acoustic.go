// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"github.com/cpmech/gofdtd/cpml"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gofdtd/wavefield"
)

// AcousticStepper implements the acoustic update equations of spec.md S4.4
// (C5a): pressure on the integer grid, particle velocities staggered at a
// half-step in their own direction.
type AcousticStepper struct {
	State *wavefield.AcousticState
	Med   *grid.AcousticPadded
}

// NewAcoustic binds a stepper to one worker's state and the shared padded
// medium.
func NewAcoustic(state *wavefield.AcousticState, med *grid.AcousticPadded) *AcousticStepper {
	return &AcousticStepper{State: state, Med: med}
}

func (s *AcousticStepper) Mode() model.Mode { return model.Acoustic }

// Step performs spec.md S4.4 items 1-6.
func (s *AcousticStepper) Step(dt float64, cp *cpml.Set, dirichlet bool) {
	st, g := s.State, s.State.G
	pz, px, py := g.PaddedNz(), g.PaddedNx(), g.PaddedNy()

	// 1. dpdx on the vx grid, dpdz on the vz grid (and dpdy on the vy grid).
	grid.Iter3(pz, px-1, py, func(iz, ix, iy int) { st.DPdx.Set(iz, ix, iy, dXf(st.P, iz, ix, iy, g.Dx)) })
	zeroPlaneX(st.DPdx, px-1)
	grid.Iter3(pz-1, px, py, func(iz, ix, iy int) { st.DPdz.Set(iz, ix, iy, dZf(st.P, iz, ix, iy, g.Dz)) })
	zeroPlaneZ(st.DPdz, pz-1)
	if g.Ndim == 3 {
		grid.Iter3(pz, px, py-1, func(iz, ix, iy int) { st.DPdy.Set(iz, ix, iy, dYf(st.P, iz, ix, iy, g.Dy)) })
		zeroPlaneY(st.DPdy, py-1)
	}

	// 2. CPML memory update on the boundary slabs, applied independently to
	// the low and high slab of each axis.
	applyX(st.DPdx, st.MemDPdx, cp.X, true, pz, px, py)
	applyZ(st.DPdz, st.MemDPdz, cp.Z, true, pz, px, py)
	if g.Ndim == 3 {
		applyY(st.DPdy, st.MemDPdy, cp.Y, true, pz, px, py)
	}

	// 3. velocity update.
	grid.Iter3(pz, px-1, py, func(iz, ix, iy int) {
		st.Vx.Add(iz, ix, iy, -dt*s.Med.RIvx.At(iz, ix, iy)*st.DPdx.At(iz, ix, iy))
	})
	grid.Iter3(pz-1, px, py, func(iz, ix, iy int) {
		st.Vz.Add(iz, ix, iy, -dt*s.Med.RIvz.At(iz, ix, iy)*st.DPdz.At(iz, ix, iy))
	})
	if g.Ndim == 3 {
		grid.Iter3(pz, px, py-1, func(iz, ix, iy int) {
			st.Vy.Add(iz, ix, iy, -dt*s.Med.RIvy.At(iz, ix, iy)*st.DPdy.At(iz, ix, iy))
		})
	}

	// 4. Dirichlet walls: zero the outermost plane of each velocity
	// component, then ghost-reflect the normal component (free surface).
	if dirichlet {
		dirichletAcoustic(st, pz, px, py, g.Ndim)
	}

	// 5. dvxdx, dvzdz (dvydy) on the pressure grid.
	grid.Iter3(pz, px-1, py, func(iz, ix, iy int) {
		if ix == 0 {
			return
		}
		st.DVxdx.Set(iz, ix, iy, dXb(st.Vx, iz, ix, iy, g.Dx))
	})
	grid.Iter3(pz-1, px, py, func(iz, ix, iy int) {
		if iz == 0 {
			return
		}
		st.DVzdz.Set(iz, ix, iy, dZb(st.Vz, iz, ix, iy, g.Dz))
	})
	if g.Ndim == 3 {
		grid.Iter3(pz, px, py-1, func(iz, ix, iy int) {
			if iy == 0 {
				return
			}
			st.DVydy.Set(iz, ix, iy, dYb(st.Vy, iz, ix, iy, g.Dy))
		})
	}
	applyX(st.DVxdx, st.MemDVxdx, cp.X, false, pz, px, py)
	applyZ(st.DVzdz, st.MemDVzdz, cp.Z, false, pz, px, py)
	if g.Ndim == 3 {
		applyY(st.DVydy, st.MemDVydy, cp.Y, false, pz, px, py)
	}

	// 6. pressure update.
	grid.Iter3(pz, px, py, func(iz, ix, iy int) {
		if iz < 1 || ix < 1 || (g.Ndim == 3 && iy < 1) {
			return
		}
		div := st.DVxdx.At(iz, ix, iy) + st.DVzdz.At(iz, ix, iy)
		if g.Ndim == 3 {
			div += st.DVydy.At(iz, ix, iy)
		}
		st.P.Add(iz, ix, iy, -dt*s.Med.K.At(iz, ix, iy)*div)
	})
}

func dirichletAcoustic(st *wavefield.AcousticState, pz, px, py, ndim int) {
	grid.Iter3(pz, px, py, func(iz, ix, iy int) {
		if ix == 0 || ix == px-1 {
			st.Vx.Set(iz, ix, iy, 0)
			st.Vz.Set(iz, ix, iy, 0)
		}
		if iz == 0 || iz == pz-1 {
			st.Vx.Set(iz, ix, iy, 0)
			st.Vz.Set(iz, ix, iy, 0)
		}
	})
	grid.Iter3(pz, px, py, func(iz, ix, iy int) {
		st.Vz.Set(0, ix, iy, -st.Vz.At(1, ix, iy))
		st.Vz.Set(pz-1, ix, iy, -st.Vz.At(pz-2, ix, iy))
	})
	grid.Iter3(pz, px, py, func(iz, ix, iy int) {
		st.Vx.Set(iz, 0, iy, -st.Vx.At(iz, 1, iy))
		st.Vx.Set(iz, px-1, iy, -st.Vx.At(iz, px-2, iy))
	})
}

func zeroPlaneX(a *grid.Array, ix int) {
	grid.Iter3(a.Nz, 1, a.Ny, func(iz, _, iy int) { a.Set(iz, ix, iy, 0) })
}
func zeroPlaneZ(a *grid.Array, iz int) {
	grid.Iter3(1, a.Nx, a.Ny, func(_, ix, iy int) { a.Set(iz, ix, iy, 0) })
}
func zeroPlaneY(a *grid.Array, iy int) {
	grid.Iter3(a.Nz, a.Nx, 1, func(iz, ix, _ int) { a.Set(iz, ix, iy, 0) })
}

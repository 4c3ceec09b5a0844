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

// ElasticStepper implements the 2D elastic update equations of spec.md S4.4
// (C5b). Staggering: tau_ii on the integer grid, tau_xz at half-steps in
// both x and z, velocities at a half-step in their own direction. The dvydy
// term of a 3D elastic scheme is zero in 2D and is not carried (spec open
// question (b)).
type ElasticStepper struct {
	State *wavefield.ElasticState
	Med   *grid.ElasticPadded
}

// NewElastic binds a stepper to one worker's state and the shared padded
// medium.
func NewElastic(state *wavefield.ElasticState, med *grid.ElasticPadded) *ElasticStepper {
	return &ElasticStepper{State: state, Med: med}
}

func (s *ElasticStepper) Mode() model.Mode { return model.Elastic }

func (s *ElasticStepper) Step(dt float64, cp *cpml.Set, dirichlet bool) {
	st, g := s.State, s.State.G
	pz, px := g.PaddedNz(), g.PaddedNx()

	// dtau/dx, dtau/dz driving the velocity update.
	grid.Iter3(pz, px-1, 0, func(iz, ix, _ int) { st.DTxxdx.Set(iz, ix, 0, dXf(st.Txx, iz, ix, 0, g.Dx)) })
	zeroPlaneX(st.DTxxdx, px-1)
	grid.Iter3(pz, px, 0, func(iz, ix, _ int) {
		if iz == 0 {
			return
		}
		st.DTxzdz.Set(iz, ix, 0, dZb(st.Txz, iz, ix, 0, g.Dz))
	})
	grid.Iter3(pz, px, 0, func(iz, ix, _ int) {
		if ix == 0 {
			return
		}
		st.DTxzdx.Set(iz, ix, 0, dXb(st.Txz, iz, ix, 0, g.Dx))
	})
	grid.Iter3(pz-1, px, 0, func(iz, ix, _ int) { st.DTzzdz.Set(iz, ix, 0, dZf(st.Tzz, iz, ix, 0, g.Dz)) })
	zeroPlaneZ(st.DTzzdz, pz-1)

	applyX(st.DTxxdx, st.MemDTxxdx, cp.X, true, pz, px, 0)
	applyZ(st.DTxzdz, st.MemDTxzdz, cp.Z, false, pz, px, 0)
	applyX(st.DTxzdx, st.MemDTxzdx, cp.X, false, pz, px, 0)
	applyZ(st.DTzzdz, st.MemDTzzdz, cp.Z, true, pz, px, 0)

	// velocity updates: rho dv/dt = div(stress)
	grid.Iter3(pz, px-1, 0, func(iz, ix, _ int) {
		st.Vx.Add(iz, ix, 0, dt*s.Med.RIvx.At(iz, ix, 0)*(st.DTxxdx.At(iz, ix, 0)+st.DTxzdz.At(iz, ix, 0)))
	})
	grid.Iter3(pz-1, px, 0, func(iz, ix, _ int) {
		st.Vz.Add(iz, ix, 0, dt*s.Med.RIvz.At(iz, ix, 0)*(st.DTxzdx.At(iz, ix, 0)+st.DTzzdz.At(iz, ix, 0)))
	})

	if dirichlet {
		dirichletElastic(st, pz, px)
	}

	// dv/dx, dv/dz driving the stress update.
	grid.Iter3(pz, px, 0, func(iz, ix, _ int) {
		if ix == 0 {
			return
		}
		st.DVxdx.Set(iz, ix, 0, dXb(st.Vx, iz, ix, 0, g.Dx))
	})
	grid.Iter3(pz, px, 0, func(iz, ix, _ int) {
		if iz == 0 {
			return
		}
		st.DVzdz.Set(iz, ix, 0, dZb(st.Vz, iz, ix, 0, g.Dz))
	})
	grid.Iter3(pz-1, px, 0, func(iz, ix, _ int) { st.DVxdz.Set(iz, ix, 0, dZf(st.Vx, iz, ix, 0, g.Dz)) })
	zeroPlaneZ(st.DVxdz, pz-1)
	grid.Iter3(pz, px-1, 0, func(iz, ix, _ int) { st.DVzdx.Set(iz, ix, 0, dXf(st.Vz, iz, ix, 0, g.Dx)) })
	zeroPlaneX(st.DVzdx, px-1)

	applyX(st.DVxdx, st.MemDVxdx, cp.X, false, pz, px, 0)
	applyZ(st.DVzdz, st.MemDVzdz, cp.Z, false, pz, px, 0)
	applyZ(st.DVxdz, st.MemDVxdz, cp.Z, true, pz, px, 0)
	applyX(st.DVzdx, st.MemDVzdx, cp.X, true, pz, px, 0)

	// normal-stress updates: tau_ii -= dt*(M*dv_ii/di + lambda*dv_jj/dj)
	grid.Iter3(pz, px, 0, func(iz, ix, _ int) {
		if iz < 1 || ix < 1 {
			return
		}
		m := s.Med.M.At(iz, ix, 0)
		lam := s.Med.Lambda.At(iz, ix, 0)
		dvxdx, dvzdz := st.DVxdx.At(iz, ix, 0), st.DVzdz.At(iz, ix, 0)
		st.Txx.Add(iz, ix, 0, -dt*(m*dvxdx+lam*dvzdz))
		st.Tzz.Add(iz, ix, 0, -dt*(m*dvzdz+lam*dvxdx))
	})

	// shear-stress update: tau_xz -= dt*mu_avg*(dvxdz + dvzdx)
	grid.Iter3(pz-1, px-1, 0, func(iz, ix, _ int) {
		muAvg := s.Med.MuXZ.At(iz, ix, 0)
		st.Txz.Add(iz, ix, 0, -dt*muAvg*(st.DVxdz.At(iz, ix, 0)+st.DVzdx.At(iz, ix, 0)))
	})
}

func dirichletElastic(st *wavefield.ElasticState, pz, px int) {
	grid.Iter3(pz, px, 0, func(iz, ix, _ int) {
		if ix == 0 || ix == px-1 || iz == 0 || iz == pz-1 {
			st.Vx.Set(iz, ix, 0, 0)
			st.Vz.Set(iz, ix, 0, 0)
		}
	})
	grid.Iter3(pz, px, 0, func(iz, ix, _ int) {
		st.Vz.Set(0, ix, 0, -st.Vz.At(1, ix, 0))
		st.Vz.Set(pz-1, ix, 0, -st.Vz.At(pz-2, ix, 0))
	})
	grid.Iter3(pz, px, 0, func(iz, ix, _ int) {
		st.Vx.Set(iz, 0, 0, -st.Vx.At(iz, 1, 0))
		st.Vx.Set(iz, px-1, 0, -st.Vx.At(iz, px-2, 0))
	})
}

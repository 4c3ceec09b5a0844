// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/cpmech/gofdtd/grid"

// physicalCells returns the cell count of the unpadded physical grid.
func physicalCells(g *grid.Grid) int {
	if g.Ndim == 3 {
		return g.Nz * g.Nx * g.Ny
	}
	return g.Nz * g.Nx
}

// forEachPhysical calls f with the physical-grid flat index and the padded
// indices for every physical-interior cell.
func forEachPhysical(g *grid.Grid, f func(flat, iz, ix, iy int)) {
	grid.Iter3(g.Nz, g.Nx, g.Ny, func(pz, px, py int) {
		iz, ix, iy := pz+g.P, px+g.P, py+g.P
		var flat int
		if g.Ndim == 3 {
			flat = (pz*g.Nx+px)*g.Ny + py
		} else {
			flat = pz*g.Nx + px
		}
		f(flat, iz, ix, iy)
	})
}

// accumulateGradientKI adds dt * d2pAdj/dt2 * pFwd onto gradKI (spec.md S4.6:
// "g_KI(x) = sum_it p_forward(x,it) * d2_t p_adjoint(x,it)").
func accumulateGradientKI(gradKI []float64, g *grid.Grid, pFwd *grid.Array, d2pAdj *grid.Array, dt float64) {
	forEachPhysical(g, func(flat, iz, ix, iy int) {
		gradKI[flat] += dt * pFwd.At(iz, ix, iy) * d2pAdj.At(iz, ix, iy)
	})
}

// accumulateGradientRhoI adds the grad(p_forward).grad(p_adjoint) term,
// averaged from the staggered velocity grids onto the pressure (RhoI) grid.
func accumulateGradientRhoI(gradRhoI []float64, g *grid.Grid, dpdxFwd, dpdzFwd, dpdxAdj, dpdzAdj *grid.Array, dt float64) {
	forEachPhysical(g, func(flat, iz, ix, iy int) {
		cx := 0.5 * (dpdxFwd.At(iz, ix, iy)*dpdxAdj.At(iz, ix, iy) + dpdxFwd.At(iz, ix-1, iy)*dpdxAdj.At(iz, ix-1, iy))
		cz := 0.5 * (dpdzFwd.At(iz, ix, iy)*dpdzAdj.At(iz, ix, iy) + dpdzFwd.At(iz-1, ix, iy)*dpdzAdj.At(iz-1, ix, iy))
		gradRhoI[flat] += dt * (cx + cz)
	})
}

// accumulateIllumination adds dt * pFwd^2 onto illum.
func accumulateIllumination(illum []float64, g *grid.Grid, pFwd *grid.Array, dt float64) {
	forEachPhysical(g, func(flat, iz, ix, iy int) {
		v := pFwd.At(iz, ix, iy)
		illum[flat] += dt * v * v
	})
}

// scaleByCellArea implements spec.md S4.6 step 5.
func scaleByCellArea(v []float64, area float64) {
	for i := range v {
		v[i] *= area
	}
}

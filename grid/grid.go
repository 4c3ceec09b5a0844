// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gofdtd/model"
)

// Grid describes a regular Cartesian physical grid and its CPML padding.
// Physical (interior) indices on a padded axis occupy [P, P+Nphys-1].
type Grid struct {
	Ndim       int     // 2 or 3
	Nz, Nx, Ny int     // physical (interior) cell counts; Ny == 0 when Ndim == 2
	Dz, Dx, Dy float64 // cell spacings [m]
	P          int     // CPML padding thickness [cells]
}

// New validates and builds a Grid.
func New(ndim, nz, nx, ny int, dz, dx, dy float64, p int) (*Grid, error) {
	if ndim != 2 && ndim != 3 {
		return nil, model.ConfigErrorf("grid: Ndim must be 2 or 3, got %d", ndim)
	}
	if p <= 0 {
		return nil, model.ConfigErrorf("grid: CPML thickness P must be > 0, got %d", p)
	}
	if nz <= 0 || nx <= 0 || dz <= 0 || dx <= 0 {
		return nil, model.ConfigErrorf("grid: physical sizes and spacings must be positive")
	}
	if ndim == 3 && (ny <= 0 || dy <= 0) {
		return nil, model.ConfigErrorf("grid: 3D grid requires Ny > 0 and Dy > 0")
	}
	if ndim == 2 {
		ny, dy = 0, 0
	}
	return &Grid{Ndim: ndim, Nz: nz, Nx: nx, Ny: ny, Dz: dz, Dx: dx, Dy: dy, P: p}, nil
}

// PaddedNz is the padded axis length along z.
func (g *Grid) PaddedNz() int { return g.Nz + 2*g.P }

// PaddedNx is the padded axis length along x.
func (g *Grid) PaddedNx() int { return g.Nx + 2*g.P }

// PaddedNy is the padded axis length along y (0 for 2D).
func (g *Grid) PaddedNy() int {
	if g.Ndim < 3 {
		return 0
	}
	return g.Ny + 2*g.P
}

// InteriorLoZ/HiZ (etc.) give the inclusive physical-interior index range on
// a padded axis.
func (g *Grid) InteriorLoZ() int { return g.P }
func (g *Grid) InteriorHiZ() int { return g.P + g.Nz - 1 }
func (g *Grid) InteriorLoX() int { return g.P }
func (g *Grid) InteriorHiX() int { return g.P + g.Nx - 1 }
func (g *Grid) InteriorLoY() int { return g.P }
func (g *Grid) InteriorHiY() int { return g.P + g.Ny - 1 }

// CellArea returns the cell area (2D) or volume (3D), used to convert
// source spray weights and to scale gradients.
func (g *Grid) CellArea() float64 {
	if g.Ndim == 3 {
		return g.Dz * g.Dx * g.Dy
	}
	return g.Dz * g.Dx
}

// clampInterior projects a padded-grid axis index onto the nearest physical
// interior index, implementing the constant (edge) extension used by Pad.
func clampInterior(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

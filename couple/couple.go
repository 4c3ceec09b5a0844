// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package couple computes the bilinear spray/interpolation weights and
// integer index stencils that couple a source or receiver at an arbitrary
// (sub-grid) world position to the surrounding grid corners.
package couple

import (
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gosl/la"
)

// Point is the coupling stencil for one source or receiver: the four (or
// eight, 3D) enclosing grid-corner indices and their bilinear weights,
// summing to 1. Sources additionally carry an injection Scale that divides
// by the cell area so the numerical integral of a unit source equals 1.
type Point struct {
	Iz, Ix, Iy []int       // corner indices, length 4 (2D) or 8 (3D)
	W          la.Vector   // bilinear weights, same length, sums to 1
	Scale      float64     // 1/cellArea for sources (spray); 1 for receivers
}

// Locate finds the bilinear coupling stencil for a world position (x, z[,
// y]), measured from the world origin, which coincides with padded-grid
// index 0 on every axis (see cellIndex). It returns a ConfigurationError if
// the bounding cell falls inside the CPML layer or outside the padded grid
// — per spec.md S4.3, a source/receiver must land in the physical interior.
func Locate(g *grid.Grid, x, z, y float64, forSource bool) (Point, error) {
	zi, zt := cellIndex(z, g.Dz)
	xi, xt := cellIndex(x, g.Dx)
	var yi int
	var yt float64
	if g.Ndim == 3 {
		yi, yt = cellIndex(y, g.Dy)
	}

	if err := checkInterior(g, zi, xi, yi); err != nil {
		return Point{}, err
	}

	var p Point
	if g.Ndim == 2 {
		p.Iz = []int{zi, zi, zi + 1, zi + 1}
		p.Ix = []int{xi, xi + 1, xi, xi + 1}
		w00 := (1 - zt) * (1 - xt)
		w01 := (1 - zt) * xt
		w10 := zt * (1 - xt)
		w11 := zt * xt
		p.W = la.Vector{w00, w01, w10, w11}
	} else {
		p.Iz = []int{zi, zi, zi, zi, zi + 1, zi + 1, zi + 1, zi + 1}
		p.Ix = []int{xi, xi, xi + 1, xi + 1, xi, xi, xi + 1, xi + 1}
		p.Iy = []int{yi, yi + 1, yi, yi + 1, yi, yi + 1, yi, yi + 1}
		w := la.Vector(make([]float64, 8))
		tz, tx, ty := zt, xt, yt
		w[0] = (1 - tz) * (1 - tx) * (1 - ty)
		w[1] = (1 - tz) * (1 - tx) * ty
		w[2] = (1 - tz) * tx * (1 - ty)
		w[3] = (1 - tz) * tx * ty
		w[4] = tz * (1 - tx) * (1 - ty)
		w[5] = tz * (1 - tx) * ty
		w[6] = tz * tx * (1 - ty)
		w[7] = tz * tx * ty
		p.W = w
	}

	p.Scale = 1
	if forSource {
		p.Scale = 1 / g.CellArea()
	}
	return p, nil
}

// cellIndex returns the lower bounding-cell index and the fractional offset
// t in [0,1) of world coordinate v along an axis of spacing d, relative to
// padded-grid index 0 (i.e. the world origin coincides with the outermost
// padded cell's corner).
func cellIndex(v, d float64) (i int, t float64) {
	pos := v / d
	i = int(pos)
	if pos < 0 && float64(i) != pos {
		i--
	}
	t = pos - float64(i)
	return
}

// checkInterior rejects a bounding cell that falls inside the CPML layer or
// outside the padded grid: source/receiver positions are only meaningful in
// the physical interior.
func checkInterior(g *grid.Grid, zi, xi, yi int) error {
	if zi < g.InteriorLoZ() || zi >= g.InteriorHiZ() || xi < g.InteriorLoX() || xi >= g.InteriorHiX() {
		return model.ConfigErrorf("couple: source/receiver bounding cell (iz=%d,ix=%d) is in the CPML layer or outside the grid", zi, xi)
	}
	if g.Ndim == 3 && (yi < g.InteriorLoY() || yi >= g.InteriorHiY()) {
		return model.ConfigErrorf("couple: source/receiver bounding cell (iy=%d) is in the CPML layer or outside the grid", yi)
	}
	return nil
}

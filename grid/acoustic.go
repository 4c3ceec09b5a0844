// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"

	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gosl/utl"
)

// AcousticPadded holds the padded acoustic medium and its derived side
// parameters. Side parameters (KI, RhoI, the staggered densities) are
// derived *after* padding so that edge extension never introduces spurious
// contrasts at the CPML/interior boundary (spec open question (a)).
type AcousticPadded struct {
	Grid *Grid

	K, KI   *Array // bulk modulus and its inverse, pressure grid
	Rho, RI *Array // density and its inverse, pressure grid
	RIvx    *Array // rho-inverse averaged onto the vx (x-half-step) grid
	RIvz    *Array // rho-inverse averaged onto the vz (z-half-step) grid
	RIvy    *Array // rho-inverse averaged onto the vy grid (3D only, nil in 2D)

	VpMax float64    // max P-wave velocity sqrt(K/rho) over the padded grid
	Ref   Reference  // spatial means, for nondimensionalization
}

// Reference holds spatial means of the material parameters.
type Reference struct {
	K, Rho, Lambda, Mu float64
}

// PadAcoustic builds the padded acoustic medium from a physical-grid
// supplier. Contract: padded axis lengths are Nphys+2P; interior values copy
// the physical medium; the outer P cells on each face equal the nearest
// interior value (constant/edge extension, never zero).
func PadAcoustic(g *Grid, m model.AcousticMedium) (*AcousticPadded, error) {
	nz, nx, ny := m.Dims()
	if err := checkDims(g, nz, nx, ny); err != nil {
		return nil, err
	}

	pz, px, py := g.PaddedNz(), g.PaddedNx(), g.PaddedNy()
	K := NewArray(pz, px, py)
	Rho := NewArray(pz, px, py)

	for iz := 0; iz < pz; iz++ {
		sz := clampInterior(iz, g.InteriorLoZ(), g.InteriorHiZ()) - g.P
		for ix := 0; ix < px; ix++ {
			sx := clampInterior(ix, g.InteriorLoX(), g.InteriorHiX()) - g.P
			if g.Ndim == 2 {
				k, rho := m.K(sz, sx, 0), m.Rho(sz, sx, 0)
				if err := checkMaterial(k, rho); err != nil {
					return nil, err
				}
				K.Set(iz, ix, 0, k)
				Rho.Set(iz, ix, 0, rho)
				continue
			}
			for iy := 0; iy < py; iy++ {
				sy := clampInterior(iy, g.InteriorLoY(), g.InteriorHiY()) - g.P
				k, rho := m.K(sz, sx, sy), m.Rho(sz, sx, sy)
				if err := checkMaterial(k, rho); err != nil {
					return nil, err
				}
				K.Set(iz, ix, iy, k)
				Rho.Set(iz, ix, iy, rho)
			}
		}
	}

	o := &AcousticPadded{Grid: g, K: K, Rho: Rho}
	o.deriveSideParams()
	o.computeReference()
	return o, nil
}

// deriveSideParams computes KI, RI and the staggered densities from K, Rho
// (which already carry the padded, edge-extended values).
func (o *AcousticPadded) deriveSideParams() {
	g := o.Grid
	n := len(o.K.Data)
	o.KI = &Array{Nz: o.K.Nz, Nx: o.K.Nx, Ny: o.K.Ny, Data: make([]float64, n)}
	o.RI = &Array{Nz: o.Rho.Nz, Nx: o.Rho.Nx, Ny: o.Rho.Ny, Data: make([]float64, n)}
	for i := 0; i < n; i++ {
		o.KI.Data[i] = 1.0 / o.K.Data[i]
		o.RI.Data[i] = 1.0 / o.Rho.Data[i]
	}

	pz, px, py := g.PaddedNz(), g.PaddedNx(), g.PaddedNy()
	o.RIvx = NewArray(pz, px, py)
	o.RIvz = NewArray(pz, px, py)
	if g.Ndim == 3 {
		o.RIvy = NewArray(pz, px, py)
	}

	Iter3(pz, px, py, func(iz, ix, iy int) {
		ixp := minInt(ix+1, px-1)
		o.RIvx.Set(iz, ix, iy, 0.5*(o.RI.At(iz, ix, iy)+o.RI.At(iz, ixp, iy)))
		izp := minInt(iz+1, pz-1)
		o.RIvz.Set(iz, ix, iy, 0.5*(o.RI.At(iz, ix, iy)+o.RI.At(izp, ix, iy)))
		if o.RIvy != nil {
			iyp := minInt(iy+1, py-1)
			o.RIvy.Set(iz, ix, iy, 0.5*(o.RI.At(iz, ix, iy)+o.RI.At(iz, ix, iyp)))
		}
	})

	vmax := 0.0
	for i := 0; i < n; i++ {
		vp := math.Sqrt(o.K.Data[i] / o.Rho.Data[i])
		vmax = utl.Max(vmax, vp)
	}
	o.VpMax = vmax
}

func (o *AcousticPadded) computeReference() {
	n := float64(len(o.K.Data))
	var sumK, sumRho float64
	for i := range o.K.Data {
		sumK += o.K.Data[i]
		sumRho += o.Rho.Data[i]
	}
	o.Ref = Reference{K: sumK / n, Rho: sumRho / n}
}

func checkDims(g *Grid, nz, nx, ny int) error {
	if nz != g.Nz || nx != g.Nx {
		return model.ConfigErrorf("grid: medium dims (%d,%d,%d) do not match grid (%d,%d,%d)", nz, nx, ny, g.Nz, g.Nx, g.Ny)
	}
	if g.Ndim == 3 && ny != g.Ny {
		return model.ConfigErrorf("grid: medium dims (%d,%d,%d) do not match grid (%d,%d,%d)", nz, nx, ny, g.Nz, g.Nx, g.Ny)
	}
	return nil
}

func checkMaterial(k, rho float64) error {
	if k != k || rho != rho {
		return model.InvariantErrorf("grid: medium stored with NaN (K=%v, rho=%v)", k, rho)
	}
	if k <= 0 || rho <= 0 {
		return model.ConfigErrorf("grid: K and rho must be > 0, got K=%v rho=%v", k, rho)
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Iter3 iterates (iz,ix,iy) over the full array shape; iy loops once with
// value 0 for 2D arrays.
func Iter3(nz, nx, ny int, f func(iz, ix, iy int)) {
	if ny == 0 {
		for iz := 0; iz < nz; iz++ {
			for ix := 0; ix < nx; ix++ {
				f(iz, ix, 0)
			}
		}
		return
	}
	for iz := 0; iz < nz; iz++ {
		for ix := 0; ix < nx; ix++ {
			for iy := 0; iy < ny; iy++ {
				f(iz, ix, iy)
			}
		}
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"

	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gosl/utl"
)

// ElasticPadded holds the padded elastic medium and its derived side
// parameters, computed after padding for the same reason as AcousticPadded.
type ElasticPadded struct {
	Grid *Grid

	Lambda, Mu, M, Rho *Array // normal-stress grid
	RhoI               *Array // 1/rho, normal-stress grid
	RIvx, RIvz         *Array // rho-inverse averaged onto the vx/vz staggered grids
	MuXZ               *Array // mu averaged onto the tau_xz grid (arithmetic mean of 4 corners)
	MuXY, MuYZ         *Array // 3D only; nil in 2D

	VpMax, VsMax float64
	Ref          Reference
}

// PadElastic builds the padded elastic medium.
func PadElastic(g *Grid, m model.ElasticMedium) (*ElasticPadded, error) {
	nz, nx, ny := m.Dims()
	if err := checkDims(g, nz, nx, ny); err != nil {
		return nil, err
	}

	pz, px, py := g.PaddedNz(), g.PaddedNx(), g.PaddedNy()
	Lambda := NewArray(pz, px, py)
	Mu := NewArray(pz, px, py)
	Rho := NewArray(pz, px, py)

	for iz := 0; iz < pz; iz++ {
		sz := clampInterior(iz, g.InteriorLoZ(), g.InteriorHiZ()) - g.P
		for ix := 0; ix < px; ix++ {
			sx := clampInterior(ix, g.InteriorLoX(), g.InteriorHiX()) - g.P
			if g.Ndim == 2 {
				lam, mu, rho := m.Lambda(sz, sx, 0), m.Mu(sz, sx, 0), m.Rho(sz, sx, 0)
				if err := checkElasticMaterial(lam, mu, rho); err != nil {
					return nil, err
				}
				Lambda.Set(iz, ix, 0, lam)
				Mu.Set(iz, ix, 0, mu)
				Rho.Set(iz, ix, 0, rho)
				continue
			}
			for iy := 0; iy < py; iy++ {
				sy := clampInterior(iy, g.InteriorLoY(), g.InteriorHiY()) - g.P
				lam, mu, rho := m.Lambda(sz, sx, sy), m.Mu(sz, sx, sy), m.Rho(sz, sx, sy)
				if err := checkElasticMaterial(lam, mu, rho); err != nil {
					return nil, err
				}
				Lambda.Set(iz, ix, iy, lam)
				Mu.Set(iz, ix, iy, mu)
				Rho.Set(iz, ix, iy, rho)
			}
		}
	}

	o := &ElasticPadded{Grid: g, Lambda: Lambda, Mu: Mu, Rho: Rho}
	o.deriveSideParams()
	o.computeReference()
	return o, nil
}

func (o *ElasticPadded) deriveSideParams() {
	g := o.Grid
	n := len(o.Lambda.Data)
	o.M = &Array{Nz: o.Lambda.Nz, Nx: o.Lambda.Nx, Ny: o.Lambda.Ny, Data: make([]float64, n)}
	o.RhoI = &Array{Nz: o.Rho.Nz, Nx: o.Rho.Nx, Ny: o.Rho.Ny, Data: make([]float64, n)}
	for i := 0; i < n; i++ {
		o.M.Data[i] = o.Lambda.Data[i] + 2*o.Mu.Data[i]
		o.RhoI.Data[i] = 1.0 / o.Rho.Data[i]
	}

	pz, px, py := g.PaddedNz(), g.PaddedNx(), g.PaddedNy()
	o.RIvx = NewArray(pz, px, py)
	o.RIvz = NewArray(pz, px, py)
	Iter3(pz, px, py, func(iz, ix, iy int) {
		ixp := minInt(ix+1, px-1)
		o.RIvx.Set(iz, ix, iy, 0.5*(o.RhoI.At(iz, ix, iy)+o.RhoI.At(iz, ixp, iy)))
		izp := minInt(iz+1, pz-1)
		o.RIvz.Set(iz, ix, iy, 0.5*(o.RhoI.At(iz, ix, iy)+o.RhoI.At(izp, ix, iy)))
	})
	o.MuXZ = NewArray(pz, px, py)
	Iter3(pz, px, py, func(iz, ix, iy int) {
		izp, ixp := minInt(iz+1, pz-1), minInt(ix+1, px-1)
		avg := 0.25 * (o.Mu.At(iz, ix, iy) + o.Mu.At(izp, ix, iy) + o.Mu.At(iz, ixp, iy) + o.Mu.At(izp, ixp, iy))
		o.MuXZ.Set(iz, ix, iy, avg)
	})

	if g.Ndim == 3 {
		o.MuXY = NewArray(pz, px, py)
		o.MuYZ = NewArray(pz, px, py)
		Iter3(pz, px, py, func(iz, ix, iy int) {
			ixp, iyp := minInt(ix+1, px-1), minInt(iy+1, py-1)
			o.MuXY.Set(iz, ix, iy, 0.25*(o.Mu.At(iz, ix, iy)+o.Mu.At(iz, ixp, iy)+o.Mu.At(iz, ix, iyp)+o.Mu.At(iz, ixp, iyp)))
			izp := minInt(iz+1, pz-1)
			o.MuYZ.Set(iz, ix, iy, 0.25*(o.Mu.At(iz, ix, iy)+o.Mu.At(izp, ix, iy)+o.Mu.At(iz, ix, iyp)+o.Mu.At(izp, ix, iyp)))
		})
	}

	vpmax, vsmax := 0.0, 0.0
	for i := 0; i < n; i++ {
		vp := math.Sqrt(o.M.Data[i] / o.Rho.Data[i])
		vs := math.Sqrt(o.Mu.Data[i] / o.Rho.Data[i])
		vpmax = utl.Max(vpmax, vp)
		vsmax = utl.Max(vsmax, vs)
	}
	o.VpMax, o.VsMax = vpmax, vsmax
}

func (o *ElasticPadded) computeReference() {
	n := float64(len(o.Lambda.Data))
	var sumLam, sumMu, sumRho float64
	for i := range o.Lambda.Data {
		sumLam += o.Lambda.Data[i]
		sumMu += o.Mu.Data[i]
		sumRho += o.Rho.Data[i]
	}
	o.Ref = Reference{Lambda: sumLam / n, Mu: sumMu / n, Rho: sumRho / n}
}

func checkElasticMaterial(lam, mu, rho float64) error {
	if lam != lam || mu != mu || rho != rho {
		return model.InvariantErrorf("grid: medium stored with NaN (lambda=%v, mu=%v, rho=%v)", lam, mu, rho)
	}
	if mu < 0 || rho <= 0 {
		return model.ConfigErrorf("grid: mu must be >= 0 and rho > 0, got mu=%v rho=%v", mu, rho)
	}
	return nil
}

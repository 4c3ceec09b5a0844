// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

type homogeneousElastic struct {
	nz, nx          int
	lambda, mu, rho float64
}

func (h homogeneousElastic) Dims() (int, int, int)        { return h.nz, h.nx, 0 }
func (h homogeneousElastic) Lambda(iz, ix, iy int) float64 { return h.lambda }
func (h homogeneousElastic) Mu(iz, ix, iy int) float64     { return h.mu }
func (h homogeneousElastic) Rho(iz, ix, iy int) float64    { return h.rho }

func TestPadElasticDerivedParams(t *testing.T) {
	chk.PrintTitle("PadElastic derives M, VpMax, VsMax")

	g, _ := New(2, 10, 10, 0, 10, 10, 0, 3)
	med := homogeneousElastic{nz: 10, nx: 10, lambda: 4e9, mu: 2e9, rho: 2000}
	p, err := PadElastic(g, med)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(t, "M = lambda+2mu", 1e-6, p.M.Data[0], med.lambda+2*med.mu)
	chk.Float64(t, "VpMax", 1e-6, p.VpMax, math.Sqrt((med.lambda+2*med.mu)/med.rho))
	chk.Float64(t, "VsMax", 1e-6, p.VsMax, math.Sqrt(med.mu/med.rho))
	chk.Float64(t, "MuXZ (homogeneous)", 1e-6, p.MuXZ.Data[0], med.mu)
}

func TestPadElasticRejectsNegativeMu(t *testing.T) {
	chk.PrintTitle("PadElastic rejects mu<0")

	g, _ := New(2, 6, 6, 0, 10, 10, 0, 2)
	bad := homogeneousElastic{nz: 6, nx: 6, lambda: 1e9, mu: -1, rho: 2000}
	if _, err := PadElastic(g, bad); err == nil {
		t.Fatalf("expected error for mu<0")
	}
}

func TestPadElastic3DPopulatesCrossShearAverages(t *testing.T) {
	chk.PrintTitle("PadElastic 3D populates MuXY/MuYZ")

	g, _ := New(3, 6, 6, 6, 10, 10, 10, 2)
	med := homogeneousElastic{nz: 6, nx: 6, lambda: 4e9, mu: 2e9, rho: 2000}
	p, err := PadElastic(g, med)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.MuXY == nil || p.MuYZ == nil {
		t.Fatalf("expected MuXY/MuYZ populated in 3D")
	}
	chk.Float64(t, "MuXY (homogeneous)", 1e-6, p.MuXY.Data[0], med.mu)
}

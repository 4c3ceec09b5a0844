// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavefield

import (
	"testing"

	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gosl/chk"
)

func TestNewAcoustic2DShapesAndNilY(t *testing.T) {
	chk.PrintTitle("NewAcoustic 2D shapes, Vy nil")

	g, _ := grid.New(2, 10, 12, 0, 10, 10, 0, 3)
	s := NewAcoustic(g)
	chk.IntAssert(s.P.Nz, g.PaddedNz())
	chk.IntAssert(s.P.Nx, g.PaddedNx())
	if s.Vy != nil {
		t.Fatalf("expected Vy nil in 2D")
	}
	if s.MemDPdy.Lo != nil || s.MemDPdy.Hi != nil {
		t.Fatalf("expected y-axis CPML memory unset in 2D")
	}
}

func TestNewAcoustic3DAllocatesY(t *testing.T) {
	chk.PrintTitle("NewAcoustic 3D allocates Vy")

	g, _ := grid.New(3, 6, 6, 6, 10, 10, 10, 2)
	s := NewAcoustic(g)
	if s.Vy == nil {
		t.Fatalf("expected Vy allocated in 3D")
	}
	chk.IntAssert(s.Vy.Ny, g.PaddedNy())
}

func TestAcousticZeroClearsEverything(t *testing.T) {
	chk.PrintTitle("AcousticState.Zero clears all fields and memory")

	g, _ := grid.New(3, 6, 6, 6, 10, 10, 10, 2)
	s := NewAcoustic(g)
	for _, a := range []*grid.Array{s.P, s.Vx, s.Vz, s.Vy, s.DPdx, s.DPdz, s.DPdy} {
		for i := range a.Data {
			a.Data[i] = 1
		}
	}
	s.MemDPdx.Lo.Data[0] = 5
	s.Zero()
	for _, a := range []*grid.Array{s.P, s.Vx, s.Vz, s.Vy, s.DPdx, s.DPdz, s.DPdy} {
		for i, v := range a.Data {
			if v != 0 {
				t.Fatalf("expected zero at %d, got %v", i, v)
			}
		}
	}
	if s.MemDPdx.Lo.Data[0] != 0 {
		t.Fatalf("expected CPML memory cleared")
	}
}

func TestNewElasticShapes(t *testing.T) {
	chk.PrintTitle("NewElastic shapes")

	g, _ := grid.New(2, 10, 10, 0, 10, 10, 0, 4)
	s := NewElastic(g)
	for _, a := range []*grid.Array{s.Vx, s.Vz, s.Txx, s.Tzz, s.Txz} {
		chk.IntAssert(a.Nz, g.PaddedNz())
		chk.IntAssert(a.Nx, g.PaddedNx())
	}
}

func TestElasticZeroClearsEverything(t *testing.T) {
	chk.PrintTitle("ElasticState.Zero clears all fields and memory")

	g, _ := grid.New(2, 10, 10, 0, 10, 10, 0, 4)
	s := NewElastic(g)
	s.Txx.Data[0] = 3
	s.MemDVxdx.Lo.Data[0] = 7
	s.Zero()
	if s.Txx.Data[0] != 0 || s.MemDVxdx.Lo.Data[0] != 0 {
		t.Fatalf("expected Zero to clear fields and CPML memory")
	}
}

func TestMemorySlabShapes(t *testing.T) {
	chk.PrintTitle("Memory slab shapes are P-thick along the boundary axis")

	g, _ := grid.New(2, 10, 10, 0, 10, 10, 0, 4)
	mz := NewMemoryZ(g)
	chk.IntAssert(mz.Lo.Nz, g.P)
	chk.IntAssert(mz.Lo.Nx, g.PaddedNx())

	mx := NewMemoryX(g)
	chk.IntAssert(mx.Lo.Nx, g.P)
	chk.IntAssert(mx.Lo.Nz, g.PaddedNz())
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavefield

import "github.com/cpmech/gofdtd/grid"

// AcousticState holds one worker's acoustic wavefield: pressure, particle
// velocities, spatial-derivative scratch and CPML memory, all on the padded
// grid. The engine allocates a fresh, zeroed state for every shot.
type AcousticState struct {
	G *grid.Grid

	P, Vx, Vz, Vy *grid.Array // Vy nil in 2D

	DPdx, DPdz, DPdy    *grid.Array
	DVxdx, DVzdz, DVydy *grid.Array

	MemDPdx, MemDVxdx Memory // x-axis
	MemDPdz, MemDVzdz Memory // z-axis
	MemDPdy, MemDVydy Memory // y-axis, zero value in 2D
}

// NewAcoustic allocates a zeroed AcousticState for grid g.
func NewAcoustic(g *grid.Grid) *AcousticState {
	pz, px, py := g.PaddedNz(), g.PaddedNx(), g.PaddedNy()
	s := &AcousticState{
		G:     g,
		P:     grid.NewArray(pz, px, py),
		Vx:    grid.NewArray(pz, px, py),
		Vz:    grid.NewArray(pz, px, py),
		DPdx:  grid.NewArray(pz, px, py),
		DPdz:  grid.NewArray(pz, px, py),
		DVxdx: grid.NewArray(pz, px, py),
		DVzdz: grid.NewArray(pz, px, py),

		MemDPdx:  NewMemoryX(g),
		MemDVxdx: NewMemoryX(g),
		MemDPdz:  NewMemoryZ(g),
		MemDVzdz: NewMemoryZ(g),
	}
	if g.Ndim == 3 {
		s.Vy = grid.NewArray(pz, px, py)
		s.DPdy = grid.NewArray(pz, px, py)
		s.DVydy = grid.NewArray(pz, px, py)
		s.MemDPdy = NewMemoryY(g)
		s.MemDVydy = NewMemoryY(g)
	}
	return s
}

// Zero resets every field, derivative and memory array to zero in place.
func (s *AcousticState) Zero() {
	s.P.Zero()
	s.Vx.Zero()
	s.Vz.Zero()
	s.DPdx.Zero()
	s.DPdz.Zero()
	s.DVxdx.Zero()
	s.DVzdz.Zero()
	s.MemDPdx.Zero()
	s.MemDVxdx.Zero()
	s.MemDPdz.Zero()
	s.MemDVzdz.Zero()
	if s.Vy != nil {
		s.Vy.Zero()
		s.DPdy.Zero()
		s.DVydy.Zero()
		s.MemDPdy.Zero()
		s.MemDVydy.Zero()
	}
}

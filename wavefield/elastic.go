// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavefield

import "github.com/cpmech/gofdtd/grid"

// ElasticState holds one worker's 2D elastic wavefield: particle
// velocities, the stress tensor components, derivative scratch and CPML
// memory. 3D elastic is not implemented (DESIGN.md records why); callers
// asking for Elastic mode on a 3D grid get a ConfigurationError from
// engine.New before any state is allocated.
type ElasticState struct {
	G *grid.Grid

	Vx, Vz         *grid.Array
	Txx, Tzz, Txz  *grid.Array

	DVxdx, DVxdz *grid.Array
	DVzdx, DVzdz *grid.Array
	DTxxdx       *grid.Array
	DTzzdz       *grid.Array
	DTxzdx, DTxzdz *grid.Array

	MemDVxdx, MemDVzdx, MemDTxxdx, MemDTxzdx Memory // x-axis
	MemDVxdz, MemDVzdz, MemDTzzdz, MemDTxzdz Memory // z-axis
}

// NewElastic allocates a zeroed ElasticState for a 2D grid g.
func NewElastic(g *grid.Grid) *ElasticState {
	pz, px := g.PaddedNz(), g.PaddedNx()
	alloc := func() *grid.Array { return grid.NewArray(pz, px, 0) }
	return &ElasticState{
		G:   g,
		Vx:  alloc(), Vz: alloc(),
		Txx: alloc(), Tzz: alloc(), Txz: alloc(),

		DVxdx: alloc(), DVxdz: alloc(),
		DVzdx: alloc(), DVzdz: alloc(),
		DTxxdx: alloc(),
		DTzzdz: alloc(),
		DTxzdx: alloc(), DTxzdz: alloc(),

		MemDVxdx: NewMemoryX(g), MemDVzdx: NewMemoryX(g), MemDTxxdx: NewMemoryX(g), MemDTxzdx: NewMemoryX(g),
		MemDVxdz: NewMemoryZ(g), MemDVzdz: NewMemoryZ(g), MemDTzzdz: NewMemoryZ(g), MemDTxzdz: NewMemoryZ(g),
	}
}

// Zero resets every field, derivative and memory array to zero.
func (s *ElasticState) Zero() {
	for _, a := range []*grid.Array{s.Vx, s.Vz, s.Txx, s.Tzz, s.Txz,
		s.DVxdx, s.DVxdz, s.DVzdx, s.DVzdz, s.DTxxdx, s.DTzzdz, s.DTxzdx, s.DTxzdz} {
		a.Zero()
	}
	for _, m := range []Memory{s.MemDVxdx, s.MemDVzdx, s.MemDTxxdx, s.MemDTxzdx, s.MemDVxdz, s.MemDVzdz, s.MemDTzzdz, s.MemDTxzdz} {
		m.Zero()
	}
}

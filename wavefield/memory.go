// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavefield allocates and zeroes all field, derivative-scratch and
// CPML memory-variable arrays for one worker's propagating wavefield (C4).
package wavefield

import "github.com/cpmech/gofdtd/grid"

// Memory holds the CPML convolutional memory variable for one spatial
// derivative crossing one axis, split into the low-side and high-side
// boundary slabs. Per DESIGN NOTES "CPML memory layout", each slab is sized
// P cells thick along the boundary axis and full breadth along the others —
// never a full-grid array.
type Memory struct {
	Lo, Hi *grid.Array
}

// NewMemoryZ allocates the low/high z-boundary slabs, each P-thick along z
// and (Nx_padded[, Ny_padded]) along the other axes.
func NewMemoryZ(g *grid.Grid) Memory {
	return Memory{Lo: grid.NewArray(g.P, g.PaddedNx(), g.PaddedNy()), Hi: grid.NewArray(g.P, g.PaddedNx(), g.PaddedNy())}
}

// NewMemoryX allocates the low/high x-boundary slabs.
func NewMemoryX(g *grid.Grid) Memory {
	return Memory{Lo: grid.NewArray(g.PaddedNz(), g.P, g.PaddedNy()), Hi: grid.NewArray(g.PaddedNz(), g.P, g.PaddedNy())}
}

// NewMemoryY allocates the low/high y-boundary slabs (3D only).
func NewMemoryY(g *grid.Grid) Memory {
	return Memory{Lo: grid.NewArray(g.PaddedNz(), g.PaddedNx(), g.P), Hi: grid.NewArray(g.PaddedNz(), g.PaddedNx(), g.P)}
}

// Zero resets both slabs.
func (m Memory) Zero() {
	if m.Lo != nil {
		m.Lo.Zero()
	}
	if m.Hi != nil {
		m.Hi.Zero()
	}
}

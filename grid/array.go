// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid builds the padded simulation grid (physical interior plus
// CPML rings) and the derived material-parameter arrays, generalizing the
// dense-allocation idiom of gosl/la.MatAlloc (rank-2 only) to the rank-3
// case needed for optional 3D runs.
package grid

// Array is a dense 2D-or-3D grid field stored flat, row-major in (z,x[,y])
// order. Ny == 0 selects the 2D layout. This is the sole field-storage type
// used across the engine: medium parameters, wavefield planes, derivative
// scratch, and CPML memory slabs are all an Array.
type Array struct {
	Nz, Nx, Ny int
	Data       []float64
}

// NewArray allocates a zeroed Array of the given shape. ny == 0 selects 2D.
func NewArray(nz, nx, ny int) *Array {
	n := nz * nx
	if ny > 0 {
		n *= ny
	}
	return &Array{Nz: nz, Nx: nx, Ny: ny, Data: make([]float64, n)}
}

// Is3D tells whether this array has a third axis.
func (a *Array) Is3D() bool { return a.Ny > 0 }

func (a *Array) idx(iz, ix, iy int) int {
	if a.Ny == 0 {
		return iz*a.Nx + ix
	}
	return (iz*a.Nx+ix)*a.Ny + iy
}

// At returns the value at (iz,ix,iy). iy is ignored for 2D arrays.
func (a *Array) At(iz, ix, iy int) float64 {
	return a.Data[a.idx(iz, ix, iy)]
}

// Set assigns the value at (iz,ix,iy).
func (a *Array) Set(iz, ix, iy int, v float64) {
	a.Data[a.idx(iz, ix, iy)] = v
}

// Add accumulates v at (iz,ix,iy).
func (a *Array) Add(iz, ix, iy int, v float64) {
	a.Data[a.idx(iz, ix, iy)] += v
}

// Zero resets all entries to zero.
func (a *Array) Zero() {
	for i := range a.Data {
		a.Data[i] = 0
	}
}

// CopyFrom overwrites a's data with b's. Shapes must match.
func (a *Array) CopyFrom(b *Array) {
	copy(a.Data, b.Data)
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	b := &Array{Nz: a.Nz, Nx: a.Nx, Ny: a.Ny, Data: make([]float64, len(a.Data))}
	copy(b.Data, a.Data)
	return b
}

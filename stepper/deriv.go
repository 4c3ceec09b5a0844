// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stepper implements one FDTD time step for the acoustic, acoustic
// Born and elastic variants (C5). The staggering convention is centralized
// here in the forward/backward derivative primitives (per DESIGN NOTES
// "Staggered indexing arithmetic"); the rest of the engine references
// fields only by their logical name.
package stepper

import "github.com/cpmech/gofdtd/grid"

// dZf is the forward difference along z, evaluated at the half-step
// location between iz and iz+1 (e.g. p -> dpdz on the vz grid).
func dZf(a *grid.Array, iz, ix, iy int, dz float64) float64 {
	return (a.At(iz+1, ix, iy) - a.At(iz, ix, iy)) / dz
}

// dZb is the backward difference along z, evaluated at the integer
// location iz from the half-step neighbors iz-1 and iz (e.g. vz -> dvzdz
// on the pressure/stress grid).
func dZb(a *grid.Array, iz, ix, iy int, dz float64) float64 {
	return (a.At(iz, ix, iy) - a.At(iz-1, ix, iy)) / dz
}

func dXf(a *grid.Array, iz, ix, iy int, dx float64) float64 {
	return (a.At(iz, ix+1, iy) - a.At(iz, ix, iy)) / dx
}

func dXb(a *grid.Array, iz, ix, iy int, dx float64) float64 {
	return (a.At(iz, ix, iy) - a.At(iz, ix-1, iy)) / dx
}

func dYf(a *grid.Array, iz, ix, iy int, dy float64) float64 {
	return (a.At(iz, ix, iy+1) - a.At(iz, ix, iy)) / dy
}

func dYb(a *grid.Array, iz, ix, iy int, dy float64) float64 {
	return (a.At(iz, ix, iy) - a.At(iz, ix, iy-1)) / dy
}

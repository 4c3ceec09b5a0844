// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// AcousticMedium is the external supplier of gridded bulk modulus and
// density for acoustic-mode simulations. Units are SI (Pa, kg/m3); indices
// are zero-based (iz, ix[, iy]) on the *physical* (unpadded) grid. Implement
// this over whatever in-memory or on-disk model representation the caller
// already has; reading a file format is the caller's job, not the engine's.
type AcousticMedium interface {
	Dims() (nz, nx, ny int) // ny == 0 selects 2D
	K(iz, ix, iy int) float64
	Rho(iz, ix, iy int) float64
}

// ElasticMedium is the external supplier of gridded Lame parameters and
// density for elastic-mode simulations.
type ElasticMedium interface {
	Dims() (nz, nx, ny int)
	Lambda(iz, ix, iy int) float64
	Mu(iz, ix, iy int) float64
	Rho(iz, ix, iy int) float64
}

// Source is one source position within a shot.
type Source struct {
	X, Z, Y float64 // world coordinates [m]; Y ignored in 2D
	Flag    SourceFlag
}

// Receiver is one receiver position within a shot.
type Receiver struct {
	X, Z, Y float64
	Field   ReceiverField
}

// Shot is one experiment: a set of simultaneously active sources and their
// corresponding receivers. Shots are independent and parallelizable.
type Shot struct {
	Sources   []Source
	Receivers []Receiver
}

// Acquisition is the external supplier of per-shot source/receiver geometry.
type Acquisition interface {
	NShots() int
	Shot(ishot int) Shot
}

// Wavelet is a source time series sampled at Dt, to be resampled internally
// to the simulation time step by linear interpolation if it differs.
type Wavelet struct {
	Dt     float64
	Values []float64
}

// Wavelets is the external supplier of per-source time series. NShots must
// match the Acquisition's NShots, and the number of wavelets returned for a
// shot must match that shot's number of sources.
type Wavelets interface {
	NShots() int
	Shot(ishot int) []Wavelet
}

// ShotGather is the recorded traces for a single shot and a single field.
type ShotGather struct {
	Field ReceiverField
	Data  [][]float64 // Data[it][ir]
}

// Output is the full set of results a Run() produces.
type Output struct {
	DtOut   float64
	Gathers [][]ShotGather // Gathers[ishot][field-index]
	Grad    *Gradient      // nil unless gradient computation was requested
}

// Gradient holds adjoint-state sensitivity output on the physical grid,
// stacked (summed) across shots.
type Gradient struct {
	Nz, Nx, Ny int
	GKI        []float64 // dJ/d(1/K), physical-grid flat array (row-major z,x[,y])
	GRhoI      []float64 // dJ/d(1/rho)
	Illum      []float64 // optional illumination, same shape; nil if not requested
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpml precomputes the per-axis Convolutional PML damping
// coefficients (a, b, kappa, 1/kappa) on the integer and half grids, as used
// by the CPML memory-variable recursion in package stepper.
package cpml

import (
	"math"

	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gosl/la"
)

// Axis holds the integer-grid and half-grid damping profiles for one axis,
// each of length P (the CPML thickness), for the low (near-origin) face.
// The high face reuses the same profile mirrored by the stepper.
type Axis struct {
	A, B, Kappa, KappaInv    la.Vector // integer grid
	AHalf, BHalf, KappaHalfI la.Vector // half grid; KappaHalfI is 1/KappaHalf
	KappaHalf                la.Vector
}

// Set holds the CPML profiles for every axis of a grid (z, x[, y]).
type Set struct {
	Z, X, Y Axis // Y is zero-valued (unused) in 2D
}

// Config tunables for the CPML damping law (spec.md S4.2).
type Config struct {
	N      float64 // damping polynomial order, typically 2
	Rc     float64 // theoretical reflection coefficient, typically 0.001
	Alpha  float64 // CFS alpha_max (frequency shift), typically 2*pi*f0/10, 0 disables
	KappaX float64 // kappa_max, typically 1 (no complex stretching) .. a few
}

// DefaultConfig returns the standard CPML tuning used throughout the tests.
func DefaultConfig() Config {
	return Config{N: 2, Rc: 0.001, Alpha: 0, KappaX: 1}
}

// Build computes the CPML profile Set for a padded grid of the given
// padding thickness P, cell spacings, and medium-dependent max velocity.
// Profiles depend only on the padded geometry and vpMax; the caller must
// rebuild whenever either changes (spec.md S4.2).
func Build(ndim, p int, dz, dx, dy, vpMax, dt float64, cfg Config) (*Set, error) {
	if p <= 0 {
		return nil, model.ConfigErrorf("cpml: P must be > 0, got %d", p)
	}
	if vpMax <= 0 || dt <= 0 {
		return nil, model.ConfigErrorf("cpml: vpMax and dt must be > 0")
	}
	s := &Set{}
	s.Z = buildAxis(p, dz, vpMax, dt, cfg)
	s.X = buildAxis(p, dx, vpMax, dt, cfg)
	if ndim == 3 {
		s.Y = buildAxis(p, dy, vpMax, dt, cfg)
	}
	return s, nil
}

// buildAxis computes one axis's damping profile following the standard CPML
// law: sigma(d) = sigma_max * (d/P)^n, b = exp(-(sigma/kappa + alpha)*dt),
// a = sigma*(b-1) / (kappa*(sigma + kappa*alpha)). sigma_max is chosen from
// the theoretical reflection coefficient Rc.
func buildAxis(p int, d, vpMax, dt float64, cfg Config) Axis {
	L := float64(p) * d
	sigmaMax := -(cfg.N + 1) * math.Log(cfg.Rc) * vpMax / (2 * L)
	kappaMax := cfg.KappaX
	if kappaMax <= 0 {
		kappaMax = 1
	}

	a := la.Vector(make([]float64, p))
	b := la.Vector(make([]float64, p))
	kappa := la.Vector(make([]float64, p))
	kappaI := la.Vector(make([]float64, p))
	aH := la.Vector(make([]float64, p))
	bH := la.Vector(make([]float64, p))
	kappaH := la.Vector(make([]float64, p))
	kappaHI := la.Vector(make([]float64, p))

	for i := 0; i < p; i++ {
		// integer grid: distance into the PML measured from its outer edge,
		// i.e. index 0 is at the outermost padded cell (deepest damping).
		depth := float64(p-i) / float64(p)
		dampCoef(depth, sigmaMax, kappaMax, cfg, dt, &a[i], &b[i], &kappa[i], &kappaI[i])

		depthH := (float64(p-i) - 0.5) / float64(p)
		if depthH < 0 {
			depthH = 0
		}
		dampCoef(depthH, sigmaMax, kappaMax, cfg, dt, &aH[i], &bH[i], &kappaH[i], &kappaHI[i])
	}
	return Axis{A: a, B: b, Kappa: kappa, KappaInv: kappaI, AHalf: aH, BHalf: bH, KappaHalf: kappaH, KappaHalfI: kappaHI}
}

func dampCoef(depth, sigmaMax, kappaMax float64, cfg Config, dt float64, a, b, kappa, kappaI *float64) {
	sigma := sigmaMax * math.Pow(depth, cfg.N)
	*kappa = 1 + (kappaMax-1)*math.Pow(depth, cfg.N)
	*kappaI = 1 / *kappa
	alpha := cfg.Alpha * (1 - depth)
	*b = math.Exp(-(sigma/ *kappa + alpha) * dt)
	denom := *kappa * (sigma + *kappa*alpha)
	if denom == 0 {
		*a = 0
		return
	}
	*a = sigma * (*b - 1) / denom
}

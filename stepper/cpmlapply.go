// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"github.com/cpmech/gofdtd/cpml"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/wavefield"
)

// applyX runs the CPML memory-variable recursion on the low and high
// x-boundary slabs of deriv in place: mem = b*mem + a*deriv; deriv =
// deriv/kappa + mem. half selects the half-grid profile (used when deriv is
// evaluated at an x-half-step location).
func applyX(deriv *grid.Array, mem wavefield.Memory, prof cpml.Axis, half bool, pz, px, py int) {
	a, b, kI := prof.A, prof.B, prof.KappaInv
	if half {
		a, b, kI = prof.AHalf, prof.BHalf, prof.KappaHalfI
	}
	p := len(a)
	grid.Iter3(pz, p, py, func(iz, il, iy int) {
		ix := il
		d := deriv.At(iz, ix, iy)
		m := b[il]*mem.Lo.At(iz, il, iy) + a[il]*d
		mem.Lo.Set(iz, il, iy, m)
		deriv.Set(iz, ix, iy, d*kI[il]+m)
	})
	grid.Iter3(pz, p, py, func(iz, il, iy int) {
		ix := px - p + il
		j := p - 1 - il
		d := deriv.At(iz, ix, iy)
		m := b[j]*mem.Hi.At(iz, il, iy) + a[j]*d
		mem.Hi.Set(iz, il, iy, m)
		deriv.Set(iz, ix, iy, d*kI[j]+m)
	})
}

// applyZ is the z-axis counterpart of applyX.
func applyZ(deriv *grid.Array, mem wavefield.Memory, prof cpml.Axis, half bool, pz, px, py int) {
	a, b, kI := prof.A, prof.B, prof.KappaInv
	if half {
		a, b, kI = prof.AHalf, prof.BHalf, prof.KappaHalfI
	}
	p := len(a)
	grid.Iter3(p, px, py, func(il, ix, iy int) {
		iz := il
		d := deriv.At(iz, ix, iy)
		m := b[il]*mem.Lo.At(il, ix, iy) + a[il]*d
		mem.Lo.Set(il, ix, iy, m)
		deriv.Set(iz, ix, iy, d*kI[il]+m)
	})
	grid.Iter3(p, px, py, func(il, ix, iy int) {
		iz := pz - p + il
		j := p - 1 - il
		d := deriv.At(iz, ix, iy)
		m := b[j]*mem.Hi.At(il, ix, iy) + a[j]*d
		mem.Hi.Set(il, ix, iy, m)
		deriv.Set(iz, ix, iy, d*kI[j]+m)
	})
}

// applyY is the y-axis counterpart (3D only).
func applyY(deriv *grid.Array, mem wavefield.Memory, prof cpml.Axis, half bool, pz, px, py int) {
	a, b, kI := prof.A, prof.B, prof.KappaInv
	if half {
		a, b, kI = prof.AHalf, prof.BHalf, prof.KappaHalfI
	}
	p := len(a)
	grid.Iter3(pz, px, p, func(iz, ix, il int) {
		iy := il
		d := deriv.At(iz, ix, iy)
		m := b[il]*mem.Lo.At(iz, ix, il) + a[il]*d
		mem.Lo.Set(iz, ix, il, m)
		deriv.Set(iz, ix, iy, d*kI[il]+m)
	})
	grid.Iter3(pz, px, p, func(iz, ix, il int) {
		iy := py - p + il
		j := p - 1 - il
		d := deriv.At(iz, ix, iy)
		m := b[j]*mem.Hi.At(iz, ix, il) + a[j]*d
		mem.Hi.Set(iz, ix, il, m)
		deriv.Set(iz, ix, iy, d*kI[j]+m)
	})
}

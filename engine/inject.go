// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/cpmech/gofdtd/couple"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gofdtd/wavefield"
)

// injectAcoustic applies spec.md S4.4 item 7 for one time step: each
// source's wavelet sample is spread onto its coupling stencil's corners,
// scaled by the medium parameter appropriate to the injected field (K for a
// pressure source, the staggered 1/rho for a velocity source) so that a
// spatially-delta source integrates to the intended physical quantity.
func injectAcoustic(st *wavefield.AcousticState, med *grid.AcousticPadded, sources []model.Source, coup []couple.Point, wavelets [][]float64, it int, dt float64) {
	for i, src := range sources {
		val := wavelets[i][it]
		p := coup[i]
		switch src.Flag {
		case model.SourceVx:
			spray(st.Vx, p, dt*val, med.RIvx)
		case model.SourceVz:
			spray(st.Vz, p, dt*val, med.RIvz)
		case model.SourceVy:
			if st.Vy != nil {
				spray(st.Vy, p, dt*val, med.RIvy)
			}
		default: // SourceP, SourcePRate
			spray(st.P, p, dt*val, med.K)
		}
	}
}

// spray adds amp*w*scale*medium(corner) to field at every corner of p.
func spray(field *grid.Array, p couple.Point, amp float64, medium *grid.Array) {
	for k := range p.W {
		iz, ix := p.Iz[k], p.Ix[k]
		iy := 0
		if len(p.Iy) > 0 {
			iy = p.Iy[k]
		}
		m := 1.0
		if medium != nil {
			m = medium.At(iz, ix, iy)
		}
		field.Add(iz, ix, iy, amp*p.W[k]*p.Scale*m)
	}
}

// recordAcoustic applies spec.md S4.4 item 8: each receiver samples the
// bilinear interpolation of its selected field at its coupling corners.
func recordAcoustic(st *wavefield.AcousticState, receivers []model.Receiver, coup []couple.Point, traces [][]float64, it int) {
	for ir, r := range receivers {
		field := st.P
		switch r.Field {
		case model.RecvVx:
			field = st.Vx
		case model.RecvVz:
			field = st.Vz
		case model.RecvVy:
			field = st.Vy
		}
		traces[ir][it] = sample(field, coup[ir])
	}
}

func sample(field *grid.Array, p couple.Point) float64 {
	var v float64
	for k := range p.W {
		iz, ix := p.Iz[k], p.Ix[k]
		iy := 0
		if len(p.Iy) > 0 {
			iy = p.Iy[k]
		}
		v += p.W[k] * field.At(iz, ix, iy)
	}
	return v * p.Scale
}

// injectAdjointAcoustic injects the residual time series at receiver
// locations into the field dual to what each receiver recorded (spec.md
// S4.6 step 3: "inject residuals at receiver locations"), driving the
// reverse (adjoint) pass exactly as an external source drives the forward
// pass.
func injectAdjointAcoustic(st *wavefield.AcousticState, med *grid.AcousticPadded, receivers []model.Receiver, coup []couple.Point, residual [][]float64, it int, dt float64) {
	for ir, r := range receivers {
		val := residual[ir][it]
		p := coup[ir]
		switch r.Field {
		case model.RecvVx:
			spray(st.Vx, p, dt*val, med.RIvx)
		case model.RecvVz:
			spray(st.Vz, p, dt*val, med.RIvz)
		case model.RecvVy:
			if st.Vy != nil {
				spray(st.Vy, p, dt*val, med.RIvy)
			}
		default: // RecvP
			spray(st.P, p, dt*val, med.K)
		}
	}
}

// injectElastic implements the same spray for the 2D elastic mode. A
// pressure-flagged source is treated as an isotropic body force: the full
// sample is added to each of the two normal-stress components (no medium scaling: the
// elastic update equations of spec.md S4.4 carry rho only on the velocity
// side, so a stress-domain source injects directly in stress units).
func injectElastic(st *wavefield.ElasticState, med *grid.ElasticPadded, sources []model.Source, coup []couple.Point, wavelets [][]float64, it int, dt float64) {
	for i, src := range sources {
		val := wavelets[i][it]
		p := coup[i]
		switch src.Flag {
		case model.SourceVx:
			spray(st.Vx, p, dt*val, med.RIvx)
		case model.SourceVz:
			spray(st.Vz, p, dt*val, med.RIvz)
		default: // SourceP, SourcePRate
			spray(st.Txx, p, dt*val, nil)
			spray(st.Tzz, p, dt*val, nil)
		}
	}
}

// recordElastic samples the 2D elastic fields; RecvP and RecvTauNormal both
// read the mean normal stress, matching spec.md S4.4's acoustic/elastic
// receiver-field table.
func recordElastic(st *wavefield.ElasticState, receivers []model.Receiver, coup []couple.Point, traces [][]float64, it int) {
	for ir, r := range receivers {
		switch r.Field {
		case model.RecvVx:
			traces[ir][it] = sample(st.Vx, coup[ir])
		case model.RecvVz:
			traces[ir][it] = sample(st.Vz, coup[ir])
		default: // RecvP, RecvVy (undefined for elastic; falls back to normal stress), RecvTauNormal
			traces[ir][it] = 0.5 * (sample(st.Txx, coup[ir]) + sample(st.Tzz, coup[ir]))
		}
	}
}

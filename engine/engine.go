// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/cpmech/gofdtd/couple"
	"github.com/cpmech/gofdtd/cpml"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// Engine is the Orchestrator (C7). One Engine drives all shots of one
// Mode/Grid combination; swapping the medium, acquisition or wavelets
// re-derives only the affected cached data (spec.md S4.6 update operations).
type Engine struct {
	cfg Config

	acousticMed *grid.AcousticPadded
	elasticMed  *grid.ElasticPadded
	cpmlSet     *cpml.Set
	chiKI       *grid.Array // AcousticBorn only: (KI_perturbed-KI_background)/KI_background

	acq        model.Acquisition
	wav        model.Wavelets
	adjointWav model.Wavelets // residual time series injected at receivers; required only when cfg.Gradient

	srcCoup  [][]couple.Point // srcCoup[ishot][isrc]
	recvCoup [][]couple.Point // recvCoup[ishot][ir]

	state State

	proc, nproc int
}

// New validates cfg and returns an Unconfigured Engine.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, state: Unconfigured}
	e.proc, e.nproc = 0, 1
	if mpi.IsOn() {
		e.proc, e.nproc = mpi.Rank(), mpi.Size()
	}
	return e, nil
}

// State reports the current Orchestrator state.
func (e *Engine) State() State { return e.state }

// UpdateMedium swaps the material model, re-deriving the padded medium and
// the CPML profiles (which depend on VpMax). Per spec.md S7, a failed update
// leaves the engine in its previous valid state (copy-then-commit): the old
// padded medium/profiles are retained until the new ones build successfully.
func (e *Engine) UpdateMedium(m interface{}) error {
	if e.state == Running {
		return model.ConfigErrorf("engine: cannot update medium while running")
	}
	g := e.cfg.Grid
	switch e.cfg.Mode {
	case model.Acoustic, model.AcousticBorn:
		am, ok := m.(model.AcousticMedium)
		if !ok {
			return model.ConfigErrorf("engine: mode %s requires a model.AcousticMedium", e.cfg.Mode)
		}
		padded, err := grid.PadAcoustic(g, am)
		if err != nil {
			return err
		}
		cp, err := cpml.Build(g.Ndim, g.P, g.Dz, g.Dx, g.Dy, padded.VpMax, e.cfg.Dt, e.cfg.CPML)
		if err != nil {
			return err
		}
		e.acousticMed, e.elasticMed, e.cpmlSet = padded, nil, cp
	case model.Elastic:
		em, ok := m.(model.ElasticMedium)
		if !ok {
			return model.ConfigErrorf("engine: elastic mode requires a model.ElasticMedium")
		}
		padded, err := grid.PadElastic(g, em)
		if err != nil {
			return err
		}
		vmax := padded.VpMax
		cp, err := cpml.Build(g.Ndim, g.P, g.Dz, g.Dx, g.Dy, vmax, e.cfg.Dt, e.cfg.CPML)
		if err != nil {
			return err
		}
		e.elasticMed, e.acousticMed, e.cpmlSet = padded, nil, cp
	}
	e.toConfiguredIfReady()
	if e.cfg.ShowMsg && e.proc == 0 {
		io.Pf("> engine: medium updated\n")
	}
	return nil
}

// UpdateAcquisition recomputes the source/receiver coupling weights and
// discards per-shot buffers from any previous acquisition.
func (e *Engine) UpdateAcquisition(acq model.Acquisition) error {
	if e.state == Running {
		return model.ConfigErrorf("engine: cannot update acquisition while running")
	}
	n := acq.NShots()
	srcCoup := make([][]couple.Point, n)
	recvCoup := make([][]couple.Point, n)
	for ishot := 0; ishot < n; ishot++ {
		shot := acq.Shot(ishot)
		sc := make([]couple.Point, len(shot.Sources))
		for i, s := range shot.Sources {
			p, err := couple.Locate(e.cfg.Grid, s.X, s.Z, s.Y, true)
			if err != nil {
				return err
			}
			sc[i] = p
		}
		rc := make([]couple.Point, len(shot.Receivers))
		for i, r := range shot.Receivers {
			p, err := couple.Locate(e.cfg.Grid, r.X, r.Z, r.Y, false)
			if err != nil {
				return err
			}
			rc[i] = p
		}
		srcCoup[ishot], recvCoup[ishot] = sc, rc
	}
	e.acq, e.srcCoup, e.recvCoup = acq, srcCoup, recvCoup
	// a new acquisition invalidates any wavelet table keyed to the old shot
	// count/source layout.
	e.wav, e.adjointWav = nil, nil
	e.toConfiguredIfReady()
	return nil
}

// UpdateWavelets copies the per-source time series after checking the shot
// count and per-shot source count match the current acquisition.
func (e *Engine) UpdateWavelets(wav model.Wavelets) error {
	if e.state == Running {
		return model.ConfigErrorf("engine: cannot update wavelets while running")
	}
	if e.acq == nil {
		return model.ConfigErrorf("engine: acquisition must be set before wavelets")
	}
	if wav.NShots() != e.acq.NShots() {
		return model.ConfigErrorf("engine: wavelets NShots=%d does not match acquisition NShots=%d", wav.NShots(), e.acq.NShots())
	}
	for ishot := 0; ishot < e.acq.NShots(); ishot++ {
		nsrc := len(e.acq.Shot(ishot).Sources)
		if len(wav.Shot(ishot)) != nsrc {
			return model.ConfigErrorf("engine: shot %d has %d sources but %d wavelets", ishot, nsrc, len(wav.Shot(ishot)))
		}
	}
	e.wav = wav
	e.toConfiguredIfReady()
	return nil
}

// UpdateAdjointWavelets sets the residual time series injected at receiver
// locations during the reverse (adjoint) pass. Required only when
// cfg.Gradient is true; one entry per receiver, per shot.
func (e *Engine) UpdateAdjointWavelets(wav model.Wavelets) error {
	if e.state == Running {
		return model.ConfigErrorf("engine: cannot update adjoint wavelets while running")
	}
	if e.acq == nil {
		return model.ConfigErrorf("engine: acquisition must be set before adjoint wavelets")
	}
	if wav.NShots() != e.acq.NShots() {
		return model.ConfigErrorf("engine: adjoint wavelets NShots=%d does not match acquisition NShots=%d", wav.NShots(), e.acq.NShots())
	}
	for ishot := 0; ishot < e.acq.NShots(); ishot++ {
		nrecv := len(e.acq.Shot(ishot).Receivers)
		if len(wav.Shot(ishot)) != nrecv {
			return model.ConfigErrorf("engine: shot %d has %d receivers but %d adjoint wavelets", ishot, nrecv, len(wav.Shot(ishot)))
		}
	}
	e.adjointWav = wav
	return nil
}

// UpdateBornContrast sets the compressibility contrast driving the
// secondary (scattered-field) source in model.AcousticBorn mode: chi_KI =
// (KI_perturbed - KI_background)/KI_background, built from a second medium
// supplier representing the perturbed model. Required, in addition to
// UpdateMedium (which sets the shared background medium both the background
// and scattered steppers propagate in), before a Born-mode Engine reaches
// Configured.
func (e *Engine) UpdateBornContrast(perturbed model.AcousticMedium) error {
	if e.state == Running {
		return model.ConfigErrorf("engine: cannot update the Born contrast while running")
	}
	if e.cfg.Mode != model.AcousticBorn {
		return model.ConfigErrorf("engine: Born contrast only applies in model.AcousticBorn mode")
	}
	if e.acousticMed == nil {
		return model.ConfigErrorf("engine: background medium must be set (UpdateMedium) before the Born contrast")
	}
	padded, err := grid.PadAcoustic(e.cfg.Grid, perturbed)
	if err != nil {
		return err
	}
	chi := grid.NewArray(padded.KI.Nz, padded.KI.Nx, padded.KI.Ny)
	for i := range chi.Data {
		chi.Data[i] = (padded.KI.Data[i] - e.acousticMed.KI.Data[i]) / e.acousticMed.KI.Data[i]
	}
	e.chiKI = chi
	e.toConfiguredIfReady()
	return nil
}

func (e *Engine) toConfiguredIfReady() {
	if e.state == Running {
		return
	}
	hasMedium := e.acousticMed != nil || e.elasticMed != nil
	if e.cfg.Mode == model.AcousticBorn && e.chiKI == nil {
		hasMedium = false
	}
	if hasMedium && e.acq != nil && e.wav != nil {
		e.state = Configured
		return
	}
	e.state = Unconfigured
}

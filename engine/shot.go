// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/cpmech/gofdtd/boundary"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/model"
	"github.com/cpmech/gofdtd/stepper"
	"github.com/cpmech/gofdtd/wavefield"
	"github.com/cpmech/gofdtd/wavelet"
)

// shotResult is what one shot contributes to the run: receiver traces at the
// internal Dt sampling and, when gradient computation is enabled, this
// shot's (unscaled-by-cell-area) contribution to the stacked sensitivities.
type shotResult struct {
	traces   [][]float64 // traces[ir][it]
	gradKI   []float64   // nil unless cfg.Gradient
	gradRhoI []float64
	illum    []float64
}

// runShot dispatches on the configured physics mode (spec.md S4.4's tagged
// variant), resolved once per shot rather than per time step (DESIGN NOTES
// "Polymorphism over physics").
func (e *Engine) runShot(ishot int) (*shotResult, error) {
	switch e.cfg.Mode {
	case model.Acoustic:
		return e.runAcousticShot(ishot)
	case model.AcousticBorn:
		return e.runBornShot(ishot)
	case model.Elastic:
		return e.runElasticShot(ishot)
	}
	return nil, model.InvariantErrorf("engine: unhandled mode %v", e.cfg.Mode)
}

func newTraces(nr, nt int) [][]float64 {
	t := make([][]float64, nr)
	for i := range t {
		t[i] = make([]float64, nt)
	}
	return t
}

func (e *Engine) resampleWavelets(ws []model.Wavelet) [][]float64 {
	out := make([][]float64, len(ws))
	for i, w := range ws {
		out[i] = wavelet.Resample(w, e.cfg.Dt, e.cfg.Nt)
	}
	return out
}

// runAcousticShot runs the forward pass of spec.md S4.6 step 2, and, when
// cfg.Gradient is set, the terminal-snapshot tail (step 4), the reverse
// reconstruction + adjoint propagation (step 3), and the gradient/
// illumination accumulation (step 5, minus the final cell-area scaling
// applied once across all shots in Run).
func (e *Engine) runAcousticShot(ishot int) (*shotResult, error) {
	shot := e.acq.Shot(ishot)
	srcCoup, recvCoup := e.srcCoup[ishot], e.recvCoup[ishot]
	wavelets := e.resampleWavelets(e.wav.Shot(ishot))

	st := wavefield.NewAcoustic(e.cfg.Grid)
	step := stepper.NewAcoustic(st, e.acousticMed)

	res := &shotResult{traces: newTraces(len(shot.Receivers), e.cfg.Nt)}

	var rec *boundary.Recorder
	if e.cfg.Gradient {
		rec = boundary.NewRecorder(e.cfg.Grid, e.cfg.Nt, st.P, st.Vx, st.Vz)
	}

	for it := 0; it < e.cfg.Nt; it++ {
		step.Step(e.cfg.Dt, e.cpmlSet, e.cfg.Dirichlet)
		injectAcoustic(st, e.acousticMed, shot.Sources, srcCoup, wavelets, it, e.cfg.Dt)
		recordAcoustic(st, shot.Receivers, recvCoup, res.traces, it)
		if e.cfg.Gradient {
			rec.RecordShell(it)
		}
	}
	if !e.cfg.Gradient {
		return res, nil
	}

	// spec.md S4.6 step 4: two tail steps before the terminal snapshot, to
	// land the staggered pressure/velocity half-steps on the alignment the
	// reverse pass needs.
	step.Step(e.cfg.Dt, e.cpmlSet, e.cfg.Dirichlet)
	step.Step(e.cfg.Dt, e.cpmlSet, e.cfg.Dirichlet)
	rec.RecordTerminal()
	rec.ReplayTerminal()

	// undo the two tail steps: they exist only to take the terminal
	// snapshot at the correct half-step alignment, and must not shift the
	// time index st carries into the correlation loop below, or every
	// gradient accumulation would read st two samples ahead of the adjoint
	// field it is being multiplied against.
	step.Step(-e.cfg.Dt, e.cpmlSet, e.cfg.Dirichlet)
	step.Step(-e.cfg.Dt, e.cpmlSet, e.cfg.Dirichlet)

	residual := e.resampleAdjointWavelets(ishot, shot.Receivers)

	adjSt := wavefield.NewAcoustic(e.cfg.Grid)
	adjStep := stepper.NewAcoustic(adjSt, e.acousticMed)

	n := physicalCells(e.cfg.Grid)
	res.gradKI = make([]float64, n)
	res.gradRhoI = make([]float64, n)
	res.illum = make([]float64, n)

	pz, px, py := st.P.Nz, st.P.Nx, st.P.Ny
	ring := [3]*grid.Array{grid.NewArray(pz, px, py), grid.NewArray(pz, px, py), grid.NewArray(pz, px, py)}

	for it := e.cfg.Nt - 1; it >= 0; it-- {
		injectAdjointAcoustic(adjSt, e.acousticMed, shot.Receivers, recvCoup, residual, it, e.cfg.Dt)
		adjStep.Step(e.cfg.Dt, e.cpmlSet, e.cfg.Dirichlet)

		ring[0], ring[1], ring[2] = ring[1], ring[2], ring[0]
		ring[2].CopyFrom(adjSt.P)

		d2 := secondDerivative(ring, e.cfg.Dt)
		accumulateGradientKI(res.gradKI, e.cfg.Grid, st.P, d2, e.cfg.Dt)
		accumulateGradientRhoI(res.gradRhoI, e.cfg.Grid, st.DPdx, st.DPdz, adjSt.DPdx, adjSt.DPdz, e.cfg.Dt)
		accumulateIllumination(res.illum, e.cfg.Grid, st.P, e.cfg.Dt)

		rec.ReplayShell(it)
		step.Step(-e.cfg.Dt, e.cpmlSet, e.cfg.Dirichlet)
	}
	return res, nil
}

// secondDerivative computes the centered second time derivative from three
// consecutive samples (ring[0]=t-dt, ring[1]=t, ring[2]=t+dt) into a newly
// allocated array.
func secondDerivative(ring [3]*grid.Array, dt float64) *grid.Array {
	out := grid.NewArray(ring[0].Nz, ring[0].Nx, ring[0].Ny)
	idt2 := 1 / (dt * dt)
	for i := range out.Data {
		out.Data[i] = (ring[2].Data[i] - 2*ring[1].Data[i] + ring[0].Data[i]) * idt2
	}
	return out
}

func (e *Engine) resampleAdjointWavelets(ishot int, receivers []model.Receiver) [][]float64 {
	if e.adjointWav == nil {
		return newTraces(len(receivers), e.cfg.Nt)
	}
	return e.resampleWavelets(e.adjointWav.Shot(ishot))
}

// runBornShot propagates the background field (driven by the shot's real
// sources) and the scattered field (driven only by the Born secondary
// source), recording the scattered field at the receivers (spec.md S8 E3).
// Gradient computation is not defined for this mode (engine.Config.validate
// rejects Gradient+AcousticBorn).
func (e *Engine) runBornShot(ishot int) (*shotResult, error) {
	shot := e.acq.Shot(ishot)
	srcCoup, recvCoup := e.srcCoup[ishot], e.recvCoup[ishot]
	wavelets := e.resampleWavelets(e.wav.Shot(ishot))

	bgSt := wavefield.NewAcoustic(e.cfg.Grid)
	scSt := wavefield.NewAcoustic(e.cfg.Grid)
	bg := stepper.NewAcoustic(bgSt, e.acousticMed)
	sc := stepper.NewAcoustic(scSt, e.acousticMed)
	born := stepper.NewBorn(bg, sc, e.chiKI)

	res := &shotResult{traces: newTraces(len(shot.Receivers), e.cfg.Nt)}
	for it := 0; it < e.cfg.Nt; it++ {
		born.Step(e.cfg.Dt, e.cpmlSet, e.cfg.Dirichlet)
		injectAcoustic(bgSt, e.acousticMed, shot.Sources, srcCoup, wavelets, it, e.cfg.Dt)
		recordAcoustic(scSt, shot.Receivers, recvCoup, res.traces, it)
	}
	return res, nil
}

// runElasticShot runs the 2D elastic forward pass. Gradient computation is
// not implemented for this mode (engine.Config.validate rejects
// Gradient+Elastic; spec.md S4.6's gradient formulas are KI/RhoI-specific).
func (e *Engine) runElasticShot(ishot int) (*shotResult, error) {
	shot := e.acq.Shot(ishot)
	srcCoup, recvCoup := e.srcCoup[ishot], e.recvCoup[ishot]
	wavelets := e.resampleWavelets(e.wav.Shot(ishot))

	st := wavefield.NewElastic(e.cfg.Grid)
	step := stepper.NewElastic(st, e.elasticMed)

	res := &shotResult{traces: newTraces(len(shot.Receivers), e.cfg.Nt)}
	for it := 0; it < e.cfg.Nt; it++ {
		step.Step(e.cfg.Dt, e.cpmlSet, e.cfg.Dirichlet)
		injectElastic(st, e.elasticMed, shot.Sources, srcCoup, wavelets, it, e.cfg.Dt)
		recordElastic(st, shot.Receivers, recvCoup, res.traces, it)
	}
	return res, nil
}

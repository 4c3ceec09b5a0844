// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavelet builds and resamples source time series. Analytic pulse
// shapes are expressed as gosl/fun.Func, the same interface gofem uses for
// time-dependent loads and boundary conditions (e.g. ele/solid/beam.go's
// Gfcn/Qt fields), so a caller already using that idiom elsewhere can reuse
// it for a source wavelet without learning a second function type.
package wavelet

import (
	"math"

	"github.com/cpmech/gofdtd/model"
)

// Ricker is a zero-phase Ricker ("Mexican hat") pulse of peak frequency F0,
// centered at time Delay. It implements gosl/fun.Func (F, G, H) so it can be
// plugged in wherever gofem expects a time-dependent function.
type Ricker struct {
	F0    float64
	Delay float64
}

func (r Ricker) F(t float64, x []float64) float64 {
	a := math.Pi * r.F0 * (t - r.Delay)
	a2 := a * a
	return (1 - 2*a2) * math.Exp(-a2)
}

// G is the time derivative of F.
func (r Ricker) G(t float64, x []float64) float64 {
	w := math.Pi * r.F0
	τ := t - r.Delay
	a2 := (w * τ) * (w * τ)
	return 2 * w * w * τ * (2*a2 - 3) * math.Exp(-a2)
}

// H is the second time derivative of F.
func (r Ricker) H(t float64, x []float64) float64 {
	w := math.Pi * r.F0
	τ := t - r.Delay
	w2 := w * w
	a2 := (w * τ) * (w * τ)
	return 2 * w2 * (4*a2*(3-a2) - 3) * math.Exp(-a2)
}

// timeFunc is the subset of gosl/fun.Func actually consumed here.
type timeFunc interface {
	F(t float64, x []float64) float64
}

// Sample builds a discrete Wavelet from an analytic time function, sampled
// at dt for nt steps starting at t=0.
func Sample(shape timeFunc, dt float64, nt int) model.Wavelet {
	vals := make([]float64, nt)
	for it := 0; it < nt; it++ {
		vals[it] = shape.F(float64(it)*dt, nil)
	}
	return model.Wavelet{Dt: dt, Values: vals}
}

// Resample linearly interpolates w onto the simulation time step dtSim,
// producing nt samples starting at t=0 (spec.md S6: "resamples to the
// simulation Δt by linear interpolation if Δt_src != Δt"). If w.Dt already
// equals dtSim, the values are copied (padded with zero beyond the source
// length) without interpolation error.
func Resample(w model.Wavelet, dtSim float64, nt int) []float64 {
	out := make([]float64, nt)
	if len(w.Values) == 0 {
		return out
	}
	for it := 0; it < nt; it++ {
		t := float64(it) * dtSim
		pos := t / w.Dt
		i0 := int(math.Floor(pos))
		if i0 < 0 {
			continue
		}
		if i0 >= len(w.Values)-1 {
			if i0 == len(w.Values)-1 {
				out[it] = w.Values[i0]
			}
			continue
		}
		frac := pos - float64(i0)
		out[it] = (1-frac)*w.Values[i0] + frac*w.Values[i0+1]
	}
	return out
}

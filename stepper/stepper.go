// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"github.com/cpmech/gofdtd/cpml"
	"github.com/cpmech/gofdtd/model"
)

// Stepper advances one worker's wavefield by one time step. Step performs
// spec.md S4.4 items 1-6 only (derivatives, CPML memory update, field
// update, Dirichlet walls); source injection and receiver recording (items
// 7-8) are the orchestrator's responsibility so that the exact ordering
// required by spec.md S5 is visible at the call site, not hidden inside the
// stepper.
//
// A Stepper is bound to one worker's field state and padded medium at
// construction (NewAcoustic / NewElastic / NewBorn) and resolved exactly
// once per shot, per DESIGN NOTES "Polymorphism over physics": never
// dispatched per time step per cell.
type Stepper interface {
	Mode() model.Mode
	Step(dt float64, cp *cpml.Set, dirichlet bool)
}

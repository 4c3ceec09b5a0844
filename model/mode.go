// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// Mode selects the physics variant. Acoustic and Elastic share the same
// orchestration skeleton (engine.Engine) but differ in field sets and update
// equations; the stepper is dispatched once per shot, never per time
// step per cell, per DESIGN NOTES "Polymorphism over physics".
type Mode int

const (
	Acoustic Mode = iota
	AcousticBorn
	Elastic
)

func (m Mode) String() string {
	switch m {
	case Acoustic:
		return "acoustic"
	case AcousticBorn:
		return "acoustic-born"
	case Elastic:
		return "elastic"
	}
	return "unknown"
}

// SourceFlag selects what field a source injects into. Only one flag is
// active per source.
type SourceFlag int

const (
	SourceP     SourceFlag = iota // pressure (acoustic) / all normal stresses (elastic body force)
	SourceVx                      // particle velocity vx
	SourceVz                      // particle velocity vz
	SourceVy                      // particle velocity vy (3D only)
	SourcePRate                   // wavelet already time-differentiated (pressure-rate)
)

// ReceiverField selects what field a receiver samples.
type ReceiverField int

const (
	RecvP         ReceiverField = iota // pressure (acoustic) / mean normal stress (elastic)
	RecvVx
	RecvVz
	RecvVy
	RecvTauNormal // mean normal stress (elastic)
)

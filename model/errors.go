// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines the external interface contracts of the FDTD wave
// engine: the Medium, Acquisition and Wavelet suppliers and the gather and
// gradient consumers. It holds shapes only; reading these from a file format
// is left to an external collaborator.
package model

import (
	"github.com/cpmech/gosl/io"
)

// ConfigurationError reports a problem detected before any time stepping:
// mismatched shot counts, an out-of-domain source/receiver, a non-positive
// material value, or an invalid grid/solver parameter.
type ConfigurationError struct{ msg string }

func (e *ConfigurationError) Error() string { return e.msg }

// ConfigErrorf builds a ConfigurationError with a formatted message.
func ConfigErrorf(format string, a ...interface{}) error {
	return &ConfigurationError{msg: io.Sf(format, a...)}
}

// InvariantViolation reports an internal assertion that should never fire in
// a released build (e.g. NaN appearing in a freshly padded medium). It
// carries enough context to reproduce the failure.
type InvariantViolation struct{ msg string }

func (e *InvariantViolation) Error() string { return e.msg }

// InvariantErrorf builds an InvariantViolation with a formatted message.
func InvariantErrorf(format string, a ...interface{}) error {
	return &InvariantViolation{msg: io.Sf(format, a...)}
}

// IsConfigurationError tells whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// IsInvariantViolation tells whether err is an InvariantViolation.
func IsInvariantViolation(err error) bool {
	_, ok := err.(*InvariantViolation)
	return ok
}

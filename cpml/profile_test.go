// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpml

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestBuildRejectsBadInputs(t *testing.T) {
	chk.PrintTitle("Build invalid inputs")

	cfg := DefaultConfig()
	if _, err := Build(2, 0, 10, 10, 0, 2000, 0.002, cfg); err == nil {
		t.Fatalf("expected error for P<=0")
	}
	if _, err := Build(2, 10, 10, 10, 0, 0, 0.002, cfg); err == nil {
		t.Fatalf("expected error for vpMax<=0")
	}
	if _, err := Build(2, 10, 10, 10, 0, 2000, 0, cfg); err == nil {
		t.Fatalf("expected error for dt<=0")
	}
}

func TestBuildMonotonicDamping(t *testing.T) {
	chk.PrintTitle("Build damping monotonic from outer edge to interior")

	s, err := Build(2, 20, 10, 10, 0, 2000, 0.002, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	axis := s.Z
	// index 0 is the outermost (deepest-into-PML) cell; damping must decrease
	// monotonically toward the interior (index P-1). A = sigma*(b-1)/(...) is
	// negative, so its magnitude is what decreases.
	for i := 1; i < len(axis.A); i++ {
		if math.Abs(axis.A[i]) > math.Abs(axis.A[i-1])+1e-12 {
			t.Fatalf("|A| not monotonically non-increasing at i=%d: %v > %v", i, math.Abs(axis.A[i]), math.Abs(axis.A[i-1]))
		}
		if axis.B[i] < axis.B[i-1]-1e-12 {
			t.Fatalf("B not monotonically non-decreasing at i=%d: %v < %v", i, axis.B[i], axis.B[i-1])
		}
	}
	if axis.B[0] >= axis.B[len(axis.B)-1] {
		t.Fatalf("expected outermost cell to damp more (smaller B) than innermost")
	}
}

func TestBuildKappaDefaultIsOne(t *testing.T) {
	chk.PrintTitle("Build kappa defaults to 1 everywhere when KappaX==1")

	cfg := DefaultConfig()
	s, err := Build(2, 15, 10, 10, 0, 2000, 0.002, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, k := range s.Z.Kappa {
		chk.Float64(t, "kappa==1", 1e-12, k, 1)
		chk.Float64(t, "kappaInv==1", 1e-12, s.Z.KappaInv[i], 1)
	}
}

func TestBuild3DPopulatesYAxis(t *testing.T) {
	chk.PrintTitle("Build 3D populates Y axis")

	s, err := Build(3, 10, 10, 10, 10, 2000, 0.002, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Y.A) != 10 {
		t.Fatalf("expected Y axis populated with length 10, got %d", len(s.Y.A))
	}
}

func TestBuild2DLeavesYEmpty(t *testing.T) {
	chk.PrintTitle("Build 2D leaves Y empty")

	s, err := Build(2, 10, 10, 10, 0, 2000, 0.002, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Y.A) != 0 {
		t.Fatalf("expected Y axis unset in 2D, got length %d", len(s.Y.A))
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import (
	"testing"

	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gosl/chk"
)

func TestRecordReplayShellRoundTrip(t *testing.T) {
	chk.PrintTitle("RecordShell/ReplayShell round trip")

	g, _ := grid.New(2, 10, 10, 0, 10, 10, 0, 4)
	p := grid.NewArray(g.PaddedNz(), g.PaddedNx(), 0)
	const nt = 5
	rec := NewRecorder(g, nt, p)

	// fill with a distinctive value per step, record, overwrite, replay, and
	// confirm the original values come back.
	for it := 0; it <= nt; it++ {
		for i := range p.Data {
			p.Data[i] = float64(it*1000 + i)
		}
		rec.RecordShell(it)
	}

	// corrupt the live field.
	for i := range p.Data {
		p.Data[i] = -1
	}

	for it := nt; it >= 0; it-- {
		rec.ReplayShell(it)
		// every shell point must match what was recorded at step `it`.
		for _, pt := range rec.points {
			flat := pt.iz*p.Nx + pt.ix
			want := float64(it*1000 + flat)
			got := p.At(pt.iz, pt.ix, pt.iy)
			if got != want {
				t.Fatalf("it=%d point=%v: got %v want %v", it, pt, got, want)
			}
		}
	}
}

func TestRecordReplayTerminalRoundTrip(t *testing.T) {
	chk.PrintTitle("RecordTerminal/ReplayTerminal round trip")

	g, _ := grid.New(2, 8, 8, 0, 10, 10, 0, 3)
	p := grid.NewArray(g.PaddedNz(), g.PaddedNx(), 0)
	for i := range p.Data {
		p.Data[i] = float64(i) * 0.5
	}
	rec := NewRecorder(g, 1, p)
	rec.RecordTerminal()

	p.Zero()
	rec.ReplayTerminal()

	for i, v := range p.Data {
		want := float64(i) * 0.5
		if v != want {
			t.Fatalf("Data[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestShellPointsOnlyNearBoundary(t *testing.T) {
	chk.PrintTitle("shellPoints stays within 3 cells of the interior boundary")

	g, _ := grid.New(2, 20, 20, 0, 10, 10, 0, 5)
	pts := shellPoints(g)
	if len(pts) == 0 {
		t.Fatalf("expected a non-empty shell ring")
	}
	loZ, hiZ := g.InteriorLoZ(), g.InteriorHiZ()
	loX, hiX := g.InteriorLoX(), g.InteriorHiX()
	for _, p := range pts {
		if p.iz < loZ || p.iz > hiZ || p.ix < loX || p.ix > hiX {
			t.Fatalf("shell point %v falls outside the physical interior", p)
		}
		onRing := p.iz <= loZ+2 || p.iz >= hiZ-2 || p.ix <= loX+2 || p.ix >= hiX-2
		if !onRing {
			t.Fatalf("shell point %v is not within 3 cells of the interior boundary", p)
		}
	}
}

func TestRecorderCenterCellNotRecorded(t *testing.T) {
	chk.PrintTitle("shellPoints excludes the deep interior")

	g, _ := grid.New(2, 20, 20, 0, 10, 10, 0, 5)
	pts := shellPoints(g)
	cz := g.InteriorLoZ() + g.Nz/2
	cx := g.InteriorLoX() + g.Nx/2
	for _, p := range pts {
		if p.iz == cz && p.ix == cx {
			t.Fatalf("center cell (%d,%d) unexpectedly recorded on the shell ring", cz, cx)
		}
	}
}

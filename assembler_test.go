// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package stitch

import (
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestAssembleEndsWithCmdEnd(t *testing.T) {
	groups := []ColorGroup{
		{Color: RGB{R: 255}, Objects: []SequencedObject{
			{Stitches: Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		}},
	}
	p := NewAssembler().Assemble(groups)
	if p[len(p)-1].Kind != CmdEnd {
		t.Fatalf("last command = %v, want CmdEnd", p[len(p)-1].Kind)
	}
}

func TestAssembleColorChangeCountMatchesDistinctColors(t *testing.T) {
	red := RGB{R: 255}
	green := RGB{G: 255}
	groups := []ColorGroup{
		{Color: red, Objects: []SequencedObject{{Stitches: Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}}}},
		{Color: green, Objects: []SequencedObject{{Stitches: Polyline{{X: 20, Y: 0}, {X: 30, Y: 0}}}}},
	}
	p := NewAssembler().Assemble(groups)
	if stats := p.Stats(); stats.ColorChangeCount != 2 {
		t.Fatalf("ColorChangeCount = %d, want 2", stats.ColorChangeCount)
	}
}

// TestAssembleCommandValidity checks the invariant that every Stitch is
// preceded (since the last Trim or ColorChange) by a Jump.
func TestAssembleCommandValidity(t *testing.T) {
	groups := []ColorGroup{
		{Color: RGB{R: 255}, Objects: []SequencedObject{
			{Stitches: Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}},
			{NeedsTrim: true, Stitches: Polyline{{X: 500, Y: 0}, {X: 510, Y: 0}}},
		}},
	}
	p := NewAssembler().Assemble(groups)

	sawJumpSinceReset := false
	for _, cmd := range p {
		switch cmd.Kind {
		case CmdColorChange, CmdTrim:
			sawJumpSinceReset = false
		case CmdJump:
			sawJumpSinceReset = true
		case CmdStitch:
			if !sawJumpSinceReset {
				t.Fatalf("Stitch command with no preceding Jump since the last Trim/ColorChange: %+v", p)
			}
		}
	}
}

func TestAssembleTrimPrecedesObjectNeedingTrim(t *testing.T) {
	groups := []ColorGroup{
		{Color: RGB{R: 255}, Objects: []SequencedObject{
			{Stitches: Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}},
			{NeedsTrim: true, Stitches: Polyline{{X: 500, Y: 0}, {X: 510, Y: 0}}},
		}},
	}
	p := NewAssembler().Assemble(groups)
	var sawTrim bool
	for _, cmd := range p {
		if cmd.Kind == CmdTrim {
			sawTrim = true
		}
	}
	if !sawTrim {
		t.Error("expected a Trim command for the second object")
	}
}

func TestStatsThreadLength(t *testing.T) {
	groups := []ColorGroup{
		{Color: RGB{R: 255}, Objects: []SequencedObject{
			{Stitches: Polyline{{X: 0, Y: 0}, {X: 1000, Y: 0}}},
		}},
	}
	p := NewAssembler().Assemble(groups)
	stats := p.Stats()
	if stats.StitchCount != 1 {
		t.Fatalf("StitchCount = %d, want 1 (the jump to the first point is not a Stitch)", stats.StitchCount)
	}
	// 1000 units = 100mm = 0.1m of travel between Jump and the one Stitch,
	// but Stats only sums distances between consecutive Stitch commands,
	// so a single Stitch contributes zero length.
	if stats.TopThreadM != 0 {
		t.Errorf("TopThreadM = %v, want 0 for a single stitch", stats.TopThreadM)
	}
}

func TestStatsThreadLengthMultiStitch(t *testing.T) {
	groups := []ColorGroup{
		{Color: RGB{R: 255}, Objects: []SequencedObject{
			{Stitches: Polyline{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 2000, Y: 0}}},
		}},
	}
	p := NewAssembler().Assemble(groups)
	stats := p.Stats()
	// 2 stitches after the jump, 1000 units (100mm) apart: total 100mm.
	wantTop := 100.0 * 1.05 / 1000
	if abs(stats.TopThreadM-wantTop) > 1e-9 {
		t.Errorf("TopThreadM = %v, want %v", stats.TopThreadM, wantTop)
	}
}

// TestStatsBoundsSpansAllObjects checks that Bounds covers every Stitch and
// Jump coordinate across both color groups, not just the first object's.
func TestStatsBoundsSpansAllObjects(t *testing.T) {
	groups := []ColorGroup{
		{Color: RGB{R: 255}, Objects: []SequencedObject{
			{Stitches: Polyline{{X: -50, Y: 10}, {X: 100, Y: 10}}},
		}},
		{Color: RGB{G: 255}, Objects: []SequencedObject{
			{Stitches: Polyline{{X: 200, Y: -30}, {X: 200, Y: 400}}},
		}},
	}
	p := NewAssembler().Assemble(groups)
	bounds := p.Stats().Bounds
	if bounds.LLx != -50 || bounds.LLy != -30 || bounds.URx != 200 || bounds.URy != 400 {
		t.Errorf("Bounds = %+v, want LLx=-50 LLy=-30 URx=200 URy=400", bounds)
	}
}

func TestStatsBoundsEmptyPatternIsZero(t *testing.T) {
	p := NewAssembler().Assemble(nil)
	bounds := p.Stats().Bounds
	if bounds != (rect.Rect{}) {
		t.Errorf("Bounds = %+v, want the zero Rect for an empty pattern", bounds)
	}
}

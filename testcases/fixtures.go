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

// Package testcases holds the shared geometry fixtures behind the six seed
// scenarios of the stitch engine: a catalogue of named TestCase values in
// the same spirit as the teacher's own testcases package (one TestCase per
// named scenario, built from plain coordinate literals), but describing
// embroidery paths instead of PDF fill/stroke geometry.
package testcases

import "needle.dev/go/stitch"

// Operation is which family of generator a TestCase exercises.
type Operation int

const (
	OpTatami Operation = iota
	OpSatin
	OpBean
	OpRun
)

// TestCase is a single named scenario: a path plus the settings and
// operation it is meant to exercise.
type TestCase struct {
	Name     string
	Op       Operation
	Polygon  stitch.Polygon  // valid when Op == OpTatami or OpSatin in polygon mode
	Polyline stitch.Polyline // valid for polyline-mode scenarios
	Settings stitch.StitchSettings
}

// Square returns the square of seed scenario 1: tatami fill, density
// 4.0mm, angle 0, stitch length 3.5mm — expected to produce 25 horizontal
// rows alternating direction. The ring spans 960 design units (96mm), a
// boundary-aligned stand-in for the scenario's 100mm square: the wire
// boundary takes path coordinates already in design units (see wire.go),
// and a 1000-unit span at 40-unit (4mm) spacing gives 26 rows
// (y = 0, 40, ..., 1000), while 960 gives exactly 25.
func Square() TestCase {
	outer := stitch.Polyline{
		{X: 0, Y: 0}, {X: 960, Y: 0}, {X: 960, Y: 960}, {X: 0, Y: 960},
	}
	poly, _ := stitch.NewPolygon(outer)
	s := stitch.DefaultStitchSettings()
	s.Density = 4.0
	s.Angle = 0
	s.StitchLength = 3.5
	return TestCase{Name: "square_fill", Op: OpTatami, Polygon: poly, Settings: s}
}

// SquareWithHole returns the same 960-unit square as Square with a
// 400-unit centered hole, for the hole-subtraction boundary case: tatami
// must emit two segments per scanline crossing the hole band.
func SquareWithHole() TestCase {
	outer := stitch.Polyline{
		{X: 0, Y: 0}, {X: 960, Y: 0}, {X: 960, Y: 960}, {X: 0, Y: 960},
	}
	hole := stitch.Polyline{
		{X: 280, Y: 280}, {X: 280, Y: 680}, {X: 680, Y: 680}, {X: 680, Y: 280},
	}
	poly, _ := stitch.NewPolygon(outer, hole)
	s := stitch.DefaultStitchSettings()
	s.Density = 4.0
	s.Angle = 0
	s.StitchLength = 3.5
	return TestCase{Name: "square_with_hole", Op: OpTatami, Polygon: poly, Settings: s}
}

// SatinStrip returns the horizontal spine of seed scenario 3: satin,
// width 4mm (40 units), density 0.4mm (4 units) — expected to produce 251
// alternating stitches before tie wrapping. The spine spans 1000 design
// units (100mm, matching the scenario) rather than the bare literal 100,
// for the same design-unit-vs-mm reason as Square.
func SatinStrip() TestCase {
	line := stitch.Polyline{{X: 0, Y: 0}, {X: 1000, Y: 0}}
	s := stitch.DefaultStitchSettings()
	s.Style = stitch.StyleSatin
	s.SatinWidth = 4.0
	s.Density = 0.4
	return TestCase{Name: "satin_strip", Op: OpSatin, Polyline: line, Settings: s}
}

// BeanLine returns the spine of seed scenario 4: bean stitch, L=2.5mm (25
// units) — expected to produce 3 passes per segment. The spine spans 100
// design units (10mm, matching the scenario's literal "10"), for the same
// design-unit-vs-mm reason as Square.
func BeanLine() TestCase {
	line := stitch.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	s := stitch.DefaultStitchSettings()
	s.Style = stitch.StyleBean
	s.StitchLength = 2.5
	return TestCase{Name: "bean_line", Op: OpBean, Polyline: line, Settings: s}
}

// DiagonalPair returns two squares 10mm (100 units) apart along the
// diagonal, colored red then green, for seed scenario 2: two-color
// sequencing with exactly one Trim between the groups.
func DiagonalPair() (a, b stitch.Polygon) {
	sq := func(ox, oy float64) stitch.Polygon {
		outer := stitch.Polyline{
			{X: ox, Y: oy}, {X: ox + 20, Y: oy}, {X: ox + 20, Y: oy + 20}, {X: ox, Y: oy + 20},
		}
		poly, _ := stitch.NewPolygon(outer)
		return poly
	}
	return sq(0, 0), sq(120, 120)
}

// AdjacentPair returns two 20x20 squares whose nearest corners are 1.5mm
// (15 units) apart, for the short-jump connector boundary case.
func AdjacentPair() (a, b stitch.Polygon) {
	sq := func(ox, oy float64) stitch.Polygon {
		outer := stitch.Polyline{
			{X: ox, Y: oy}, {X: ox + 20, Y: oy}, {X: ox + 20, Y: oy + 20}, {X: ox, Y: oy + 20},
		}
		poly, _ := stitch.NewPolygon(outer)
		return poly
	}
	return sq(0, 0), sq(35, 0)
}

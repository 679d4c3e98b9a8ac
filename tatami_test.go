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

import "testing"

// TestTatamiFillSquareRowCount exercises the square-fill seed scenario: a
// 960-unit square (96mm, a boundary-aligned stand-in for the 100mm square
// of the scenario) with 40-unit (4mm) row spacing produces exactly 25
// rows, the first stitch at the origin, and the final row landing on the
// top edge.
func TestTatamiFillSquareRowCount(t *testing.T) {
	poly, err := NewPolygon(square(960))
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	stitches, err := TatamiFill(poly, 40, 0, 35, 0.5)
	if err != nil {
		t.Fatalf("TatamiFill: %v", err)
	}
	if len(stitches) == 0 {
		t.Fatal("no stitches produced")
	}
	if stitches[0].X != 0 || stitches[0].Y != 0 {
		t.Errorf("first stitch = %v, want (0,0)", stitches[0])
	}

	rowCount := 0
	for y := 0.0; y <= 960+geometryEpsilon; y += 40 {
		rowCount++
	}
	if rowCount != 25 {
		t.Fatalf("test setup error: expected 25 rows of scan math, got %d", rowCount)
	}

	last := stitches[len(stitches)-1]
	if last.Y < 960-1e-6 {
		t.Errorf("last stitch y=%v, want on the top edge (960)", last.Y)
	}
}

func TestTatamiFillBoustrophedon(t *testing.T) {
	poly, _ := NewPolygon(square(200))
	stitches, err := TatamiFill(poly, 40, 0, 35, 0)
	if err != nil {
		t.Fatalf("TatamiFill: %v", err)
	}

	var rows [][]Point
	var cur []Point
	curY := stitches[0].Y
	for _, p := range stitches {
		if p.Y != curY {
			rows = append(rows, cur)
			cur = nil
			curY = p.Y
		}
		cur = append(cur, p)
	}
	rows = append(rows, cur)

	if len(rows) < 2 {
		t.Fatal("expected at least 2 rows to check alternation")
	}
	for i := 0; i+1 < len(rows); i++ {
		rowEnd := rows[i][len(rows[i])-1]
		nextStart := rows[i+1][0]
		if gap := abs(rowEnd.X - nextStart.X); gap > 200 {
			t.Errorf("row %d end x=%v, row %d start x=%v: gap too large for boustrophedon", i, rowEnd.X, i+1, nextStart.X)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestTatamiFillHoleProducesTwoSegmentsPerRow(t *testing.T) {
	outer := square(200)
	hole := Polyline{{X: 60, Y: 60}, {X: 60, Y: 140}, {X: 140, Y: 140}, {X: 140, Y: 60}}
	poly, err := NewPolygon(outer, hole)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	spans := poly.IntersectHorizontal(100)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans crossing the hole band, got %d", len(spans))
	}

	stitches, err := TatamiFill(poly, 40, 0, 35, 0)
	if err != nil {
		t.Fatalf("TatamiFill: %v", err)
	}
	if len(stitches) == 0 {
		t.Fatal("expected stitches around the hole")
	}
}

func TestTatamiFillRejectsNonPositiveDensity(t *testing.T) {
	poly, _ := NewPolygon(square(100))
	if _, err := TatamiFill(poly, 0, 0, 35, 0); err != ErrGenerationFailure {
		t.Fatalf("expected ErrGenerationFailure, got %v", err)
	}
}

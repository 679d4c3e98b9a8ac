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

// Tatami fill generator (component C4), the algorithmic heart of the
// engine alongside the satin column generator. The row-by-row horizontal
// scan below is the polygon-fill analogue of the teacher's pixel scanline
// fill in raster.go (collectPathEdges + fillSmallPath/fillLargePath):
// both walk a shape row by row and accumulate spans, but here a "span" is
// emitted as stitch points instead of pixel coverage.
package stitch

import "math"

// TatamiFill computes the parallel-row fill stitch sequence for poly per
// §4.4: rotate by -angle so rows are horizontal, sweep rows at spacing
// density, emit forced boundary points plus interior points at pitch
// stitchLen with a per-row phase offset, reverse odd rows (boustrophedon),
// and rotate the result back.
func TatamiFill(poly Polygon, densityMm, angleDeg, stitchLenMm, phase float64) (Polyline, error) {
	if densityMm <= 0 || stitchLenMm <= 0 {
		return nil, ErrGenerationFailure
	}
	rotated := poly.Rotate(-angleDeg)
	bbox := rotated.Bounds()

	var rows Polyline
	rowIndex := 0
	for y := bbox.LLy; y <= bbox.URy+geometryEpsilon; y += densityMm {
		// Ring crossings are half-open in y, so a row on the top edge is
		// scanned (and stitched) just inside it.
		scanY := math.Min(y, bbox.URy-geometryEpsilon)
		spans := rotated.IntersectHorizontal(scanY)
		if len(spans) == 0 {
			rowIndex++
			continue
		}
		row := emitRow(spans, scanY, rowIndex, phase, stitchLenMm)
		if rowIndex%2 == 1 {
			row = reversePoints(row)
		}
		rows = append(rows, row...)
		rowIndex++
	}

	back := rotated2D(rows, angleDeg)
	return back, nil
}

// emitRow emits, for each segment in a row: the left endpoint (forced),
// interior points at x0+s+k*L strictly inside (x0,x1), then the right
// endpoint (forced). s is the row's phase shift, (rowIndex*phase*L) mod L.
func emitRow(spans []segment, y float64, rowIndex int, phase, stitchLen float64) Polyline {
	s := math.Mod(float64(rowIndex)*phase*stitchLen, stitchLen)
	if s < 0 {
		s += stitchLen
	}

	var pts Polyline
	for _, sp := range spans {
		pts = append(pts, Point{X: sp.X0, Y: y})
		for x := sp.X0 + s; x < sp.X1-geometryEpsilon; x += stitchLen {
			if x > sp.X0+geometryEpsilon {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
		pts = append(pts, Point{X: sp.X1, Y: y})
	}
	return pts
}

func reversePoints(p Polyline) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

func rotated2D(p Polyline, angleDeg float64) Polyline {
	m := rotationMatrix(angleDeg * math.Pi / 180)
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = applyMatrix(m, pt)
	}
	return out
}

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

// Satin column generator (component C5). The polyline-mode tangent/normal
// computation below mirrors the teacher's strokeSegment machinery in
// stroke.go (A, B, T, N fields) closely enough that the short-stitch
// congestion relief is expressed as a per-sample width multiplier on top
// of the same normal-offset idea the teacher uses to build stroke outlines.
package stitch

import "math"

// SatinColumnPolygon computes the satin column for poly using the minimum
// rotated rectangle's long axis as the spine, per §4.5 polygon mode.
func SatinColumnPolygon(poly Polygon, densityMm float64) (Polyline, error) {
	if densityMm <= 0 {
		return nil, ErrGenerationFailure
	}
	rectVerts := poly.MinimumRotatedRect()
	e0 := dist(rectVerts[0], rectVerts[1])
	e1 := dist(rectVerts[1], rectVerts[2])
	var spineAngle float64
	if e0 >= e1 {
		spineAngle = math.Atan2(rectVerts[1].Y-rectVerts[0].Y, rectVerts[1].X-rectVerts[0].X)
	} else {
		spineAngle = math.Atan2(rectVerts[2].Y-rectVerts[1].Y, rectVerts[2].X-rectVerts[1].X)
	}

	rotated := poly.Rotate(-spineAngle * 180 / math.Pi)
	bbox := rotated.Bounds()

	var pts Polyline
	i := 0
	for x := bbox.LLx; x <= bbox.URx+geometryEpsilon; x += densityMm {
		top, bottom, ok := verticalIntersection(rotated, x)
		if !ok {
			i++
			continue
		}
		if i%2 == 0 {
			pts = append(pts, Point{X: x, Y: top}, Point{X: x, Y: bottom})
		} else {
			pts = append(pts, Point{X: x, Y: bottom}, Point{X: x, Y: top})
		}
		i++
	}

	return rotatedColumn(pts, spineAngle), nil
}

func rotatedColumn(pts Polyline, spineAngle float64) Polyline {
	m := rotationMatrix(spineAngle)
	out := make(Polyline, len(pts))
	for i, p := range pts {
		out[i] = applyMatrix(m, p)
	}
	return out
}

// verticalIntersection intersects the vertical line x=X with poly (already
// rotated so the spine is horizontal) by rotating the problem 90 degrees
// and reusing IntersectHorizontal, then taking the longest sub-segment.
func verticalIntersection(poly Polygon, x float64) (top, bottom float64, ok bool) {
	// poly.Rotate(-90) maps (px,py) -> (py,-px), so the original vertical
	// line px=x becomes the horizontal line at rotated y=-x, and the
	// resulting x-spans are exactly the original py values.
	rotated90 := poly.Rotate(-90)
	spans := rotated90.IntersectHorizontal(-x)
	if len(spans) == 0 {
		return 0, 0, false
	}
	longest := spans[0]
	for _, s := range spans[1:] {
		if s.X1-s.X0 > longest.X1-longest.X0 {
			longest = s
		}
	}
	return longest.X1, longest.X0, true
}

// satinSample is one cross-stitch sample in polyline mode, carrying enough
// state for the short-stitch congestion-relief decision.
type satinSample struct {
	P      Point
	Normal Point
	Sharp  bool
}

// SatinColumnPolyline computes the satin column for a polyline spine,
// width mm wide, per §4.5 polyline mode. shortStitches enables the
// congestion-relief width reduction on sharp, odd-indexed samples.
func SatinColumnPolyline(line Polyline, widthMm, densityMm float64, shortStitches bool) (Polyline, error) {
	if densityMm <= 0 || len(line) < 2 {
		return Polyline{}, nil
	}
	total := line.Length()
	n := int(total / densityMm)

	samples := make([]satinSample, 0, n+1)
	var prevNormal Point
	for i := 0; i <= n; i++ {
		s := float64(i) * densityMm
		p, _ := line.PointAtLength(s)
		pMinus, _ := line.PointAtLength(math.Max(0, s-0.1))
		pPlus, _ := line.PointAtLength(math.Min(total, s+0.1))
		tangent := unitTangent(pMinus, pPlus)
		normal := leftNormal(tangent)

		sharp := false
		if i > 0 {
			cosAngle := normal.X*prevNormal.X + normal.Y*prevNormal.Y
			if cosAngle < math.Cos(45*math.Pi/180) {
				sharp = true
			}
		}
		samples = append(samples, satinSample{P: p, Normal: normal, Sharp: sharp})
		prevNormal = normal
	}

	half := widthMm / 2
	out := make(Polyline, 0, len(samples))
	for i, smp := range samples {
		w := half
		if shortStitches && smp.Sharp && i%2 == 1 {
			w *= 0.70
		}
		if i%2 == 0 {
			out = append(out, offsetPoint(smp.P, smp.Normal, w))
		} else {
			out = append(out, offsetPoint(smp.P, smp.Normal, -w))
		}
	}
	return out, nil
}

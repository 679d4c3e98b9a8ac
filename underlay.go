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

// Underlay generator (component C3).
package stitch

import (
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// EdgeWalk returns a Polyline of points along the exterior ring of poly
// shrunk inward by offsetMm, sampled at roughly equal arclength steps of
// stitchLen. If the inward offset degenerates, ErrEmptyAfterOffset is
// returned and the caller should skip underlay for this object.
func EdgeWalk(poly Polygon, offsetMm, stitchLen float64) (Polyline, error) {
	shrunk, err := Buffer(poly, -offsetMm, defaultArcSegments, graphics.LineJoinRound)
	if err != nil {
		return nil, ErrEmptyAfterOffset
	}
	ring := largestRing(shrunk)
	if len(dedupe(ring)) < 4 {
		return nil, ErrEmptyAfterOffset
	}
	return ring.Sample(stitchLen), nil
}

// largestRing returns the ring of largest area among shrunk's outer ring
// and its holes. Buffer produces a single outer ring, so an inward offset
// that pinches the shape into several pieces is not split into them here.
func largestRing(poly Polygon) Polyline {
	best := poly.Outer
	bestArea := ringArea(poly.Outer)
	for _, h := range poly.Holes {
		if a := ringArea(h); a > bestArea {
			best = h
			bestArea = a
		}
	}
	return best
}

func ringArea(ring Polyline) float64 {
	var area float64
	n := len(ring) - 1
	for i := 0; i < n; i++ {
		area += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return math.Abs(area) / 2
}

// CenterWalk returns a short axial stroke across poly's centroid, clipped
// to the polygon: a single pass along the long axis of the minimum rotated
// rectangle, intersected with the polygon at the line through the
// centroid. Optional per §4.3; used only when the caller opts in.
func CenterWalk(poly Polygon) Polyline {
	rect := poly.MinimumRotatedRect()
	centroid := ringCentroid(poly.Outer)

	// Long axis direction: the longer of the two rectangle edges.
	e0 := dist(rect[0], rect[1])
	e1 := dist(rect[1], rect[2])
	var axis Point
	if e0 >= e1 {
		axis = unitTangent(rect[0], rect[1])
	} else {
		axis = unitTangent(rect[1], rect[2])
	}

	span := math.Max(e0, e1)
	a := Point{X: centroid.X - axis.X*span, Y: centroid.Y - axis.Y*span}
	b := Point{X: centroid.X + axis.X*span, Y: centroid.Y + axis.Y*span}
	return clipSegmentToPolygon(poly, a, b)
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func ringCentroid(ring Polyline) Point {
	var cx, cy, area float64
	n := len(ring) - 1
	for i := 0; i < n; i++ {
		p0, p1 := ring[i], ring[i+1]
		cross := p0.X*p1.Y - p1.X*p0.Y
		area += cross
		cx += (p0.X + p1.X) * cross
		cy += (p0.Y + p1.Y) * cross
	}
	area /= 2
	if math.Abs(area) < geometryEpsilon {
		// Degenerate ring: fall back to the vertex average.
		var sx, sy float64
		for i := 0; i < n; i++ {
			sx += ring[i].X
			sy += ring[i].Y
		}
		return Point{X: sx / float64(n), Y: sy / float64(n)}
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// clipSegmentToPolygon intersects the line through a,b with poly and
// returns the longest resulting chord. a and b are assumed to lie well
// outside the polygon so the line fully spans it.
func clipSegmentToPolygon(poly Polygon, a, b Point) Polyline {
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	m := rotationMatrix(-angle)
	rotated := poly.Rotate(-angle * 180 / math.Pi)
	y := applyMatrix(m, a).Y
	spans := rotated.IntersectHorizontal(y)
	if len(spans) == 0 {
		return nil
	}
	longest := spans[0]
	for _, s := range spans[1:] {
		if s.X1-s.X0 > longest.X1-longest.X0 {
			longest = s
		}
	}
	inv := rotationMatrix(angle)
	return Polyline{
		applyMatrix(inv, Point{X: longest.X0, Y: y}),
		applyMatrix(inv, Point{X: longest.X1, Y: y}),
	}
}

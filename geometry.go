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

// Geometry primitives (component C1). Points and vectors are built
// directly on seehuhn.de/go/geom/vec; rotation reuses seehuhn.de/go/geom/matrix;
// bounding boxes reuse seehuhn.de/go/geom/rect. Buffer/offset, scanline
// intersection, minimum-rotated-rectangle, and boundary extraction are not
// exposed by the subset of seehuhn.de/go/geom the rasterizer imports, so
// they are implemented here directly atop vec.Vec2, in the same manual,
// low-level style the teacher uses for its own edge and curve-flattening
// code (see raster.go's addEdge/flattenQuadratic) rather than falling back
// to a generic standard-library polygon package — see DESIGN.md.
package stitch

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Point is a location in the design coordinate system (1/10 mm units).
type Point = vec.Vec2

// Polyline is an ordered sequence of at least two points.
type Polyline []Point

// Polygon is a simple closed region with optional holes. The outer ring
// and every hole are closed (first point equals last point).
type Polygon struct {
	Outer Polyline
	Holes []Polyline
}

const geometryEpsilon = 1e-6

// closeRing appends the first point to the end if the ring is not already
// closed, enforcing the closure invariant of §3.
func closeRing(p Polyline) Polyline {
	if len(p) == 0 {
		return p
	}
	first, last := p[0], p[len(p)-1]
	if math.Hypot(first.X-last.X, first.Y-last.Y) < geometryEpsilon {
		return p
	}
	out := make(Polyline, len(p)+1)
	copy(out, p)
	out[len(p)] = first
	return out
}

// NewPolygon builds a Polygon from a raw ring, enforcing closure. A
// self-intersecting outer ring is passed through Buffer with dist 0, which
// re-emits its vertices in counter-clockwise order (each vertex twice);
// the self-crossings themselves are not removed.
//
// Returns ErrInvalidGeometry if the ring has fewer than 3 distinct vertices.
func NewPolygon(outer Polyline, holes ...Polyline) (Polygon, error) {
	ring := closeRing(outer)
	if len(dedupe(ring)) < 4 { // closed ring needs >=3 distinct + repeat of first
		return Polygon{}, ErrInvalidGeometry
	}
	poly := Polygon{Outer: ring}
	for _, h := range holes {
		poly.Holes = append(poly.Holes, closeRing(h))
	}
	if selfIntersects(poly.Outer) {
		repaired, err := Buffer(poly, 0, 8, graphics.LineJoinRound)
		if err != nil {
			return Polygon{}, ErrInvalidGeometry
		}
		poly = repaired
	}
	return poly, nil
}

func dedupe(p Polyline) Polyline {
	out := make(Polyline, 0, len(p))
	for i, pt := range p {
		if i > 0 && math.Hypot(pt.X-out[len(out)-1].X, pt.Y-out[len(out)-1].Y) < geometryEpsilon {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// selfIntersects does a naive O(n^2) segment-pair crossing test, adequate
// for the small vertex counts (tens to low hundreds) this engine handles.
func selfIntersects(ring Polyline) bool {
	n := len(ring) - 1 // ring is closed, last==first
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a0, a1 := ring[i], ring[i+1]
		for j := i + 1; j < n; j++ {
			if j == i || (i == 0 && j == n-1) {
				continue // adjacent segments share an endpoint by construction
			}
			b0, b1 := ring[j], ring[j+1]
			if segmentsProperlyIntersect(a0, a1, b0, b1) {
				return true
			}
		}
	}
	return false
}

func orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func segmentsProperlyIntersect(a0, a1, b0, b1 Point) bool {
	d1 := orientation(b0, b1, a0)
	d2 := orientation(b0, b1, a1)
	d3 := orientation(a0, a1, b0)
	d4 := orientation(a0, a1, b1)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// rotationMatrix builds the affine matrix for a CCW rotation by theta
// radians about the origin, using the same [a b c d e f] convention the
// rasterizer's CTM uses: x' = m[0]*x + m[2]*y + m[4], y' = m[1]*x + m[3]*y + m[5].
func rotationMatrix(theta float64) matrix.Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

func applyMatrix(m matrix.Matrix, p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Rotate returns poly rotated by angleDeg degrees about the origin.
func (poly Polygon) Rotate(angleDeg float64) Polygon {
	m := rotationMatrix(angleDeg * math.Pi / 180)
	out := Polygon{Outer: rotateRing(poly.Outer, m)}
	for _, h := range poly.Holes {
		out.Holes = append(out.Holes, rotateRing(h, m))
	}
	return out
}

func rotateRing(ring Polyline, m matrix.Matrix) Polyline {
	out := make(Polyline, len(ring))
	for i, p := range ring {
		out[i] = applyMatrix(m, p)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the outer ring.
func (poly Polygon) Bounds() rect.Rect {
	if len(poly.Outer) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: poly.Outer[0].X, LLy: poly.Outer[0].Y, URx: poly.Outer[0].X, URy: poly.Outer[0].Y}
	for _, p := range poly.Outer {
		r.LLx = math.Min(r.LLx, p.X)
		r.LLy = math.Min(r.LLy, p.Y)
		r.URx = math.Max(r.URx, p.X)
		r.URy = math.Max(r.URy, p.Y)
	}
	return r
}

// segment is a half-open horizontal span [X0, X1] produced by intersecting
// a polygon (outer ring minus holes) with a horizontal line.
type segment struct {
	X0, X1 float64
}

// IntersectHorizontal intersects poly with the horizontal line y=Y and
// returns the resulting spans sorted by left endpoint, with hole spans
// subtracted from the outer ring's spans (nonzero-winding-style: any point
// inside the outer ring and inside a hole is excluded).
func (poly Polygon) IntersectHorizontal(y float64) []segment {
	outerSpans := ringCrossings(poly.Outer, y)
	if len(outerSpans) == 0 {
		return nil
	}
	for _, hole := range poly.Holes {
		holeSpans := ringCrossings(hole, y)
		outerSpans = subtractSpans(outerSpans, holeSpans)
	}
	return outerSpans
}

// ringCrossings computes the x-intervals where the horizontal line y
// crosses the interior of the ring, by counting crossings left to right
// (standard polygon scanline fill algorithm).
func ringCrossings(ring Polyline, y float64) []segment {
	var xs []float64
	n := len(ring) - 1
	for i := 0; i < n; i++ {
		p0, p1 := ring[i], ring[i+1]
		if p0.Y == p1.Y {
			continue
		}
		ymin, ymax := p0.Y, p1.Y
		if ymin > ymax {
			ymin, ymax = ymax, ymin
		}
		if y < ymin || y >= ymax {
			continue
		}
		t := (y - p0.Y) / (p1.Y - p0.Y)
		xs = append(xs, p0.X+t*(p1.X-p0.X))
	}
	sortFloats(xs)
	var spans []segment
	for i := 0; i+1 < len(xs); i += 2 {
		spans = append(spans, segment{X0: xs[i], X1: xs[i+1]})
	}
	return spans
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// subtractSpans removes each hole span from the outer spans, splitting
// outer spans as needed.
func subtractSpans(outer, holes []segment) []segment {
	for _, h := range holes {
		var next []segment
		for _, o := range outer {
			if h.X1 <= o.X0 || h.X0 >= o.X1 {
				next = append(next, o)
				continue
			}
			if h.X0 > o.X0 {
				next = append(next, segment{X0: o.X0, X1: math.Min(h.X0, o.X1)})
			}
			if h.X1 < o.X1 {
				next = append(next, segment{X0: math.Max(h.X1, o.X0), X1: o.X1})
			}
		}
		outer = next
	}
	return outer
}

// MinimumRotatedRect returns the 4 vertices (in order) of the minimum-area
// rectangle enclosing poly's outer ring, found by rotating calipers over
// the ring's edge directions: the optimal rectangle always has one side
// collinear with a hull edge.
func (poly Polygon) MinimumRotatedRect() [4]Point {
	hull := convexHull(poly.Outer)
	if len(hull) < 3 {
		b := poly.Bounds()
		return [4]Point{{X: b.LLx, Y: b.LLy}, {X: b.URx, Y: b.LLy}, {X: b.URx, Y: b.URy}, {X: b.LLx, Y: b.URy}}
	}

	bestArea := math.Inf(1)
	var best [4]Point
	n := len(hull)
	for i := 0; i < n; i++ {
		a, b := hull[i], hull[(i+1)%n]
		edgeAngle := math.Atan2(b.Y-a.Y, b.X-a.X)
		m := rotationMatrix(-edgeAngle)
		var xmin, xmax, ymin, ymax float64
		xmin, ymin = math.Inf(1), math.Inf(1)
		xmax, ymax = math.Inf(-1), math.Inf(-1)
		for _, p := range hull {
			q := applyMatrix(m, p)
			xmin = math.Min(xmin, q.X)
			xmax = math.Max(xmax, q.X)
			ymin = math.Min(ymin, q.Y)
			ymax = math.Max(ymax, q.Y)
		}
		area := (xmax - xmin) * (ymax - ymin)
		if area < bestArea {
			bestArea = area
			inv := rotationMatrix(edgeAngle)
			best = [4]Point{
				applyMatrix(inv, Point{X: xmin, Y: ymin}),
				applyMatrix(inv, Point{X: xmax, Y: ymin}),
				applyMatrix(inv, Point{X: xmax, Y: ymax}),
				applyMatrix(inv, Point{X: xmin, Y: ymax}),
			}
		}
	}
	return best
}

// convexHull computes the convex hull of a closed ring via the monotone
// chain algorithm, returning vertices in counter-clockwise order without
// the closing repeat of the first point.
func convexHull(ring Polyline) Polyline {
	pts := dedupe(ring)
	if len(pts) > 0 {
		pts = pts[:len(pts)-1] // drop closing repeat
	}
	if len(pts) < 3 {
		return pts
	}
	sorted := append(Polyline{}, pts...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && less(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var lower, upper Polyline
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Boundary extracts the outer ring and every hole as independent polylines.
func (poly Polygon) Boundary() []Polyline {
	out := []Polyline{poly.Outer}
	return append(out, poly.Holes...)
}

// Length returns the arclength of the polyline.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += math.Hypot(p[i].X-p[i-1].X, p[i].Y-p[i-1].Y)
	}
	return total
}

// PointAtLength interpolates the point at fractional arclength s along p,
// clamped to [0, Length()]. It also returns the unit tangent at that point.
func (p Polyline) PointAtLength(s float64) (Point, Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	if len(p) == 1 {
		return p[0], Point{X: 1}
	}
	if s <= 0 {
		return p[0], unitTangent(p[0], p[1])
	}
	var acc float64
	for i := 1; i < len(p); i++ {
		segLen := math.Hypot(p[i].X-p[i-1].X, p[i].Y-p[i-1].Y)
		if segLen < geometryEpsilon {
			continue
		}
		if acc+segLen >= s {
			t := (s - acc) / segLen
			pt := Point{X: p[i-1].X + t*(p[i].X-p[i-1].X), Y: p[i-1].Y + t*(p[i].Y-p[i-1].Y)}
			return pt, unitTangent(p[i-1], p[i])
		}
		acc += segLen
	}
	last := p[len(p)-1]
	return last, unitTangent(p[len(p)-2], last)
}

func unitTangent(a, b Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l < geometryEpsilon {
		return Point{X: 1}
	}
	return Point{X: dx / l, Y: dy / l}
}

// Sample resamples the polyline at roughly equal arclength steps of size
// stitchLen, always including both endpoints. Fewer than 3 resulting
// samples returns the raw vertices instead (per the underlay edge-walk
// fallback of §4.3).
func (p Polyline) Sample(stitchLen float64) Polyline {
	total := p.Length()
	if stitchLen <= 0 || total <= 0 {
		return p
	}
	n := int(total/stitchLen + 0.5)
	if n < 3 {
		return p
	}
	out := make(Polyline, 0, n+1)
	for i := 0; i <= n; i++ {
		s := float64(i) / float64(n) * total
		pt, _ := p.PointAtLength(s)
		out = append(out, pt)
	}
	return out
}

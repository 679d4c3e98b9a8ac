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

// Pull compensator (component C2) and the shared polygon offset routine it
// shares with the underlay edge-walk (C3). The vertex offset below is the
// polygon analogue of the stroke outline the teacher builds in stroke.go:
// the join at each ring vertex is selected with the same
// seehuhn.de/go/pdf/graphics.LineJoinStyle enum the teacher's addJoin
// switches on (LineJoinRound's arc fill, LineJoinBevel's bare gap, and
// LineJoinMiter's bisector-distance formula, falling back to bevel past
// the miter limit exactly as stroke.go's addJoin does).
package stitch

import (
	"math"

	"seehuhn.de/go/pdf/graphics"
)

const (
	defaultArcSegments = 8
	defaultMiterLimit  = 10.0
)

// Compensate applies pull compensation: an outward (mm > 0) or, per the
// resolved open question in DESIGN.md, inward (mm < 0) offset with round
// joins. Returns poly unchanged when mm == 0. If the offset polygon
// degenerates to empty, the original polygon is returned unchanged.
func Compensate(poly Polygon, mm float64) (Polygon, error) {
	if mm == 0 {
		return poly, nil
	}
	out, err := Buffer(poly, mm, defaultArcSegments, graphics.LineJoinRound)
	if err != nil || len(out.Outer) < 4 {
		return poly, nil
	}
	return out, nil
}

// Buffer offsets poly's outer ring (and, for the underlay edge-walk's
// inward shrink, its holes) outward by dist mm, joining adjacent offset
// edges at each vertex per join: round fills convex corners with an
// arcSegments-sided polygonal arc, miter extends to the bisector
// intersection (falling back to bevel past defaultMiterLimit), and bevel
// just lets the two offset edges meet, so the result stays a simple
// polygon without self-crossing spikes on sharp convex turns.
func Buffer(poly Polygon, dist float64, arcSegments int, join graphics.LineJoinStyle) (Polygon, error) {
	offsetOuter := offsetRing(poly.Outer, dist, arcSegments, join)
	if len(dedupe(offsetOuter)) < 4 {
		return Polygon{}, ErrEmptyAfterOffset
	}
	// An inward offset deeper than the shape turns the ring inside out: its
	// orientation flips or its area no longer shrinks.
	if dist < 0 && (!isCCW(offsetOuter) || ringArea(offsetOuter) >= ringArea(poly.Outer)) {
		return Polygon{}, ErrEmptyAfterOffset
	}
	result := Polygon{Outer: offsetOuter}
	for _, h := range poly.Holes {
		// Holes are offset by the opposite sign: shrinking the outer ring
		// grows the holes back toward the material, and vice versa.
		offsetHole := offsetRing(h, -dist, arcSegments, join)
		if len(dedupe(offsetHole)) >= 4 {
			result.Holes = append(result.Holes, offsetHole)
		}
	}
	return result, nil
}

// offsetRing offsets a closed, counter-clockwise ring outward by dist
// (negative dist offsets inward), joining each vertex per join.
func offsetRing(ring Polyline, dist float64, arcSegments int, join graphics.LineJoinStyle) Polyline {
	n := len(ring) - 1 // closed ring: last point repeats first
	if n < 3 {
		return nil
	}
	if !isCCW(ring) {
		ring = reversed(ring)
	}
	n = len(ring) - 1

	var out Polyline
	for i := 0; i < n; i++ {
		prev := ring[(i-1+n)%n]
		cur := ring[i]
		next := ring[(i+1)%n]

		tIn := unitTangent(prev, cur)
		tOut := unitTangent(cur, next)
		// On a counter-clockwise ring the outward normal is the right-hand one.
		nIn := Point{X: tIn.Y, Y: -tIn.X}
		nOut := Point{X: tOut.Y, Y: -tOut.X}

		out = append(out, offsetPoint(cur, nIn, dist))
		cross := tIn.X*tOut.Y - tIn.Y*tOut.X
		if dist > 0 && cross > geometryEpsilon {
			// Convex corner for an outward offset: fill the gap per the join style.
			out = append(out, joinPoints(cur, dist, nIn, nOut, tIn, tOut, arcSegments, join)...)
		}
		out = append(out, offsetPoint(cur, nOut, dist))
	}
	return closeRing(out)
}

// joinPoints fills the gap between the nIn-offset and nOut-offset points at
// a convex corner, mirroring stroke.go's addJoin switch on r.Join.
func joinPoints(cur Point, dist float64, nIn, nOut, tIn, tOut Point, arcSegments int, join graphics.LineJoinStyle) Polyline {
	switch join {
	case graphics.LineJoinMiter:
		cosTheta := tIn.X*tOut.X + tIn.Y*tOut.Y
		sinHalf := math.Sqrt(math.Max(0, (1+cosTheta)/2))
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= defaultMiterLimit+miterEpsilon {
			bisector := Point{X: nIn.X + nOut.X, Y: nIn.Y + nOut.Y}
			blen := math.Hypot(bisector.X, bisector.Y)
			if blen > geometryEpsilon {
				bisector = Point{X: bisector.X / blen, Y: bisector.Y / blen}
				return Polyline{offsetPoint(cur, bisector, dist/sinHalf)}
			}
		}
		// Past the miter limit or a degenerate bisector: fall back to bevel.
		return nil
	case graphics.LineJoinBevel:
		return nil
	default: // graphics.LineJoinRound
		return arcPoints(cur, dist, nIn, nOut, arcSegments)
	}
}

func offsetPoint(p, normal Point, dist float64) Point {
	return Point{X: p.X + normal.X*dist, Y: p.Y + normal.Y*dist}
}

func leftNormal(t Point) Point {
	return Point{X: -t.Y, Y: t.X}
}

// arcPoints fills the gap between normals nFrom and nTo around center with
// arcSegments intermediate points, at radius dist.
func arcPoints(center Point, dist float64, nFrom, nTo Point, arcSegments int) Polyline {
	a0 := math.Atan2(nFrom.Y, nFrom.X)
	a1 := math.Atan2(nTo.Y, nTo.X)
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	var pts Polyline
	for k := 1; k < arcSegments; k++ {
		a := a0 + (a1-a0)*float64(k)/float64(arcSegments)
		pts = append(pts, Point{X: center.X + dist*math.Cos(a), Y: center.Y + dist*math.Sin(a)})
	}
	return pts
}

func isCCW(ring Polyline) bool {
	var area float64
	n := len(ring) - 1
	for i := 0; i < n; i++ {
		area += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return area > 0
}

func reversed(ring Polyline) Polyline {
	out := make(Polyline, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

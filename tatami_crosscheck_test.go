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
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

// rasterizeRingToMask fills outer minus inner (both axis-aligned squares,
// centered, inner strictly smaller) using golang.org/x/image/vector, the
// same rasterizer used to cross-check circle fills in the teacher's own
// benchmark of raster.go against x/image/vector. Here it plays the role of
// an independent ground truth for IntersectHorizontal's hole subtraction:
// every point TatamiFill emits for a square-with-hole should land on a
// covered pixel of this mask.
func rasterizeRingToMask(size int, outer, inner float64) *image.Alpha {
	r := vector.NewRasterizer(size, size)
	c := float32(size) / 2

	o := float32(outer) / 2
	r.MoveTo(c-o, c-o)
	r.LineTo(c+o, c-o)
	r.LineTo(c+o, c+o)
	r.LineTo(c-o, c+o)
	r.ClosePath()

	i := float32(inner) / 2
	r.MoveTo(c-i, c+i)
	r.LineTo(c+i, c+i)
	r.LineTo(c+i, c-i)
	r.LineTo(c-i, c-i)
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	src := image.NewUniform(color.Alpha{255})
	r.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}

func TestTatamiFillMatchesIndependentRasterizer(t *testing.T) {
	const size = 100
	outer, inner := 80.0, 30.0

	mask := rasterizeRingToMask(size, outer, inner)

	c := float64(size) / 2
	o, i := outer/2, inner/2
	outerRing := Polyline{
		{X: c - o, Y: c - o}, {X: c + o, Y: c - o}, {X: c + o, Y: c + o}, {X: c - o, Y: c + o},
	}
	holeRing := Polyline{
		{X: c - i, Y: c - i}, {X: c + i, Y: c - i}, {X: c + i, Y: c + i}, {X: c - i, Y: c + i},
	}
	poly, err := NewPolygon(outerRing, holeRing)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}

	stitches, err := TatamiFill(poly, 4, 0, 3, 0.5)
	if err != nil {
		t.Fatalf("TatamiFill: %v", err)
	}
	if len(stitches) == 0 {
		t.Fatal("TatamiFill produced no stitches")
	}

	var offMask int
	for _, p := range stitches {
		px, py := int(p.X), int(p.Y)
		if px < 0 || px >= size || py < 0 || py >= size {
			offMask++
			continue
		}
		if mask.AlphaAt(px, py).A == 0 {
			offMask++
		}
	}

	// Points that fall exactly on the ring boundary can round to an
	// adjacent, uncovered pixel; allow a small boundary-rounding margin
	// rather than requiring every single point to hit covered alpha.
	if maxOff := len(stitches) / 10; offMask > maxOff {
		t.Errorf("%d/%d stitch points landed outside the independently rasterized fill region (max allowed %d)",
			offMask, len(stitches), maxOff)
	}
}

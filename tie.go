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

// Tie-stitch wrapper (component C7).
package stitch

// TieVariant selects which ends of a stitch list get a lock stitch.
type TieVariant int

const (
	TieBoth TieVariant = iota
	TieIn
	TieOut
	TieNone
)

// tieLockLength is the micro-lock length, 0.5mm expressed in design units
// (§4.7: Lt = 0.5 mm).
var tieLockLength = mmToUnits(0.5)

// ApplyTieStitches prepends/appends micro-lock triples to points per §4.7:
// at the start, (A0 + d*Lt, A0, A0 + d*Lt) where d is the unit direction
// toward the second point, overshooting ahead of the first stitch; the
// mirror triple at the end retraces back into the path instead of
// repeating the overshoot, using (An - d*Lt, An, An - d*Lt) where d is the
// direction from the penultimate to final point. A list with length >= 2
// tied at both ends gains exactly 6 points.
func ApplyTieStitches(points Polyline, variant TieVariant) Polyline {
	if len(points) < 2 {
		return points
	}

	out := points
	if variant == TieBoth || variant == TieIn {
		d := unitTangent(points[0], points[1])
		lock := offsetPoint(points[0], d, tieLockLength)
		prefix := Polyline{lock, points[0], lock}
		out = append(append(Polyline{}, prefix...), out...)
	}
	if variant == TieBoth || variant == TieOut {
		last := points[len(points)-1]
		penultimate := points[len(points)-2]
		d := unitTangent(penultimate, last)
		lock := offsetPoint(last, d, -tieLockLength)
		suffix := Polyline{lock, last, lock}
		out = append(out, suffix...)
	}
	return out
}

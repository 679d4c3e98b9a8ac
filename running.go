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

// Running and bean stitch generators (component C6).
package stitch

// Running arclength-samples line at spacing L, forcing both endpoints.
// A single-point polyline returns an empty list without panicking.
func Running(line Polyline, stitchLenMm float64) Polyline {
	if len(line) < 2 {
		return nil
	}
	return line.Sample(stitchLenMm)
}

// Bean emits, for each consecutive sample pair (A, B) of a running-stitch
// pass, the sequence A, B, A, B — three needle passes along the same
// segment, per §4.6.
func Bean(line Polyline, stitchLenMm float64) Polyline {
	run := Running(line, stitchLenMm)
	if len(run) < 2 {
		return nil
	}
	out := make(Polyline, 0, (len(run)-1)*4)
	for i := 0; i+1 < len(run); i++ {
		a, b := run[i], run[i+1]
		out = append(out, a, b, a, b)
	}
	return out
}

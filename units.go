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

// unitsPerMM resolves the open question of §9: the design coordinate
// system is 1/10 mm per unit (the native embroidery unit), consistently
// throughout this package. Every generator below that takes an "Mm"
// parameter expects it already converted to design units; the conversion
// happens exactly once, at the pipeline entry point (see Pipeline.Run),
// per the wire coordinate convention of §6.
const unitsPerMM = 10.0

func mmToUnits(mm float64) float64 {
	return mm * unitsPerMM
}

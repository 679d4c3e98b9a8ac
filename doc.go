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

// Package stitch implements the stitch generation and sequencing engine
// for a machine embroidery CAM pipeline: it turns colored polygon/polyline
// layers into an ordered, machine-ready stitch command stream.
//
// The pipeline is a pure function over layers:
//
//	Layers -> Compensator -> Underlay -> Fill/Satin/Run generator
//	       -> Tie-stitch wrapper -> Sequencer -> Assembler -> Writer -> bytes
//
// Geometry (polygon/polyline representation, rotation, offsetting) is
// built on seehuhn.de/go/geom; concrete DST/PES/JEF/EXP byte encoding is
// delegated to an external Encoder implementation through the Writer
// interface, and image segmentation and HTTP transport are out of scope.
package stitch

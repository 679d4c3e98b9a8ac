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

// Style selects which stitch generator processes a path.
type Style int

const (
	StyleTatami Style = iota
	StyleSatin
	StyleBean
	StyleRun
)

func (s Style) String() string {
	switch s {
	case StyleTatami:
		return "tatami"
	case StyleSatin:
		return "satin"
	case StyleBean:
		return "bean"
	case StyleRun:
		return "run"
	default:
		return "unknown"
	}
}

// ParseStyle maps a wire-format style name to a Style, defaulting to
// StyleTatami for unrecognized or empty input per the settings defaults.
func ParseStyle(name string) Style {
	switch name {
	case "satin":
		return StyleSatin
	case "bean":
		return StyleBean
	case "run":
		return StyleRun
	case "tatami", "":
		return StyleTatami
	default:
		return StyleTatami
	}
}

// RGB is a 24-bit thread/fabric color.
type RGB struct {
	R, G, B uint8
}

// StitchSettings controls how a single path is converted to stitches. All
// length fields are in millimetres; the engine converts to design units
// (1/10 mm) at the boundary.
type StitchSettings struct {
	Style Style

	// Density is row spacing for tatami, or zig-zag pitch for satin.
	Density float64

	// Angle is the fill direction in degrees for tatami.
	Angle float64

	// StitchLength is the maximum point-to-point distance, in mm.
	StitchLength float64

	// PullCompensation is an outward (positive) or inward (negative, if
	// non-degenerate) buffer distance in mm, applied before stitching.
	PullCompensation float64

	// Underlay enables underlay stitch generation beneath the main fill.
	Underlay bool

	// Offset is the per-row phase shift as a fraction of StitchLength,
	// in [0, 1).
	Offset float64

	// SatinWidth is used only when the input is a polyline in satin mode.
	SatinWidth float64

	// SatinShortStitches enables congestion relief on sharp curves; valid
	// only for StyleSatin.
	SatinShortStitches bool
}

// DefaultStitchSettings returns the settings defaults of the data model:
// tatami style, 0.4mm density, 45 degree angle, 3.5mm stitch length, no
// pull compensation, underlay on, 0.5 (brick) offset, 4mm satin width,
// short stitches enabled.
func DefaultStitchSettings() StitchSettings {
	return StitchSettings{
		Style:              StyleTatami,
		Density:            0.4,
		Angle:              45,
		StitchLength:       3.5,
		PullCompensation:   0,
		Underlay:           true,
		Offset:             0.5,
		SatinWidth:         4.0,
		SatinShortStitches: true,
	}
}

// WithDefaults replaces a zero Density, StitchLength or SatinWidth with the
// corresponding default. Every other field is left as given, because its
// zero value is a valid explicit choice (Angle 0, Offset 0,
// PullCompensation 0); the boolean Underlay and SatinShortStitches
// defaults are applied by the caller.
func (s StitchSettings) WithDefaults() StitchSettings {
	d := DefaultStitchSettings()
	if s.Density == 0 {
		s.Density = d.Density
	}
	if s.StitchLength == 0 {
		s.StitchLength = d.StitchLength
	}
	if s.SatinWidth == 0 {
		s.SatinWidth = d.SatinWidth
	}
	return s
}

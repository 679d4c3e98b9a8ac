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

import "testing"

func TestParseStyleKnownNames(t *testing.T) {
	cases := map[string]Style{
		"tatami": StyleTatami,
		"satin":  StyleSatin,
		"bean":   StyleBean,
		"run":    StyleRun,
		"":       StyleTatami,
	}
	for name, want := range cases {
		if got := ParseStyle(name); got != want {
			t.Errorf("ParseStyle(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseStyleUnknownDefaultsToTatami(t *testing.T) {
	if got := ParseStyle("not-a-style"); got != StyleTatami {
		t.Errorf("ParseStyle(unknown) = %v, want StyleTatami", got)
	}
}

func TestWithDefaultsOnlyFillsZeroFields(t *testing.T) {
	s := StitchSettings{Density: 1.5}
	out := s.WithDefaults()
	if out.Density != 1.5 {
		t.Errorf("explicit Density overwritten: got %v", out.Density)
	}
	if out.StitchLength != DefaultStitchSettings().StitchLength {
		t.Errorf("zero StitchLength not defaulted: got %v", out.StitchLength)
	}
	if out.SatinWidth != DefaultStitchSettings().SatinWidth {
		t.Errorf("zero SatinWidth not defaulted: got %v", out.SatinWidth)
	}
}

func TestWithDefaultsPreservesExplicitPullCompensation(t *testing.T) {
	s := StitchSettings{PullCompensation: -3}
	out := s.WithDefaults()
	if out.PullCompensation != -3 {
		t.Errorf("PullCompensation = %v, want -3 (explicit zero-adjacent value preserved)", out.PullCompensation)
	}
}

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

func TestLoadEngineConfigDefaults(t *testing.T) {
	t.Setenv("STITCH_SHORT_JUMP_MM", "")
	t.Setenv("STITCH_CONNECTOR_LEN_MM", "")
	t.Setenv("STITCH_DEFAULT_FORMAT", "")

	cfg := LoadEngineConfig()
	want := DefaultSequencerConfig()
	if cfg.Sequencer != want {
		t.Errorf("Sequencer = %+v, want defaults %+v", cfg.Sequencer, want)
	}
	if cfg.DefaultFormat != FormatDST {
		t.Errorf("DefaultFormat = %v, want dst", cfg.DefaultFormat)
	}
}

func TestLoadEngineConfigOverrides(t *testing.T) {
	t.Setenv("STITCH_SHORT_JUMP_MM", "3.5")
	t.Setenv("STITCH_CONNECTOR_LEN_MM", "4.5")
	t.Setenv("STITCH_DEFAULT_FORMAT", "pes")

	cfg := LoadEngineConfig()
	if cfg.Sequencer.ShortJumpThresholdMm != 3.5 {
		t.Errorf("ShortJumpThresholdMm = %v, want 3.5", cfg.Sequencer.ShortJumpThresholdMm)
	}
	if cfg.Sequencer.ConnectorStitchLenMm != 4.5 {
		t.Errorf("ConnectorStitchLenMm = %v, want 4.5", cfg.Sequencer.ConnectorStitchLenMm)
	}
	if cfg.DefaultFormat != FormatPES {
		t.Errorf("DefaultFormat = %v, want pes", cfg.DefaultFormat)
	}
}

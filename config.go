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

// Engine-wide configuration: tunables that live outside a single design's
// StitchSettings (the sequencer's short-jump threshold and connector
// pitch, the default output format). Loaded from the environment via
// godotenv.Load(), the same way Fepozopo-timp's pkg/cli/terminal_preview.go
// loads a local .env file before reading os.Getenv for CLI defaults.
package stitch

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EngineConfig holds the process-wide defaults a hosting service tunes
// without touching per-design StitchSettings.
type EngineConfig struct {
	Sequencer     SequencerConfig
	DefaultFormat Format
}

// LoadEngineConfig loads an optional .env file (ignored if absent, mirroring
// godotenv.Load()'s own "missing file is not fatal" behavior) and then reads
// STITCH_SHORT_JUMP_MM, STITCH_CONNECTOR_LEN_MM, and STITCH_DEFAULT_FORMAT
// from the environment, falling back to DefaultSequencerConfig and
// FormatDST when unset or unparsable.
func LoadEngineConfig() EngineConfig {
	_ = godotenv.Load()

	cfg := EngineConfig{
		Sequencer:     DefaultSequencerConfig(),
		DefaultFormat: FormatDST,
	}
	if v, ok := os.LookupEnv("STITCH_SHORT_JUMP_MM"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Sequencer.ShortJumpThresholdMm = f
		}
	}
	if v, ok := os.LookupEnv("STITCH_CONNECTOR_LEN_MM"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Sequencer.ConnectorStitchLenMm = f
		}
	}
	if v, ok := os.LookupEnv("STITCH_DEFAULT_FORMAT"); ok {
		if f, err := ParseFormat(v); err == nil {
			cfg.DefaultFormat = f
		}
	}
	return cfg
}

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

// Top-level pipeline: Layers -> Compensator -> Underlay -> Fill/Satin/Run
// -> Tie wrapper -> Sequencer -> Assembler -> Writer -> bytes (§2). This
// is the pure, synchronous, single-threaded entry point of §5: one Run
// call owns its own Assembler and produces one Pattern with no shared
// mutable state across calls.
package stitch

import (
	"github.com/pkg/errors"
)

// Pipeline runs the full stitch-generation and sequencing engine over a
// set of layers and returns the finished Pattern plus any per-object
// warnings recorded while skipping bad geometry (§7's local-recovery
// policy).
type Pipeline struct {
	Config EngineConfig
}

// NewPipeline returns a Pipeline configured from the environment via
// LoadEngineConfig.
func NewPipeline() *Pipeline {
	return &Pipeline{Config: LoadEngineConfig()}
}

// Run converts layers into a finished Pattern. A bad path in one layer is
// skipped (recorded as a Warning) rather than aborting the whole design;
// only failures are returned as errors.
func (pl *Pipeline) Run(layers []LayerInput) (Pattern, []Warning, error) {
	var objects []Object
	var warnings []Warning
	objectIndex := 0

	for _, layer := range layers {
		for _, raw := range layer.Paths {
			stitches, err := generateObject(raw, layer.Settings, layer.IsStroke)
			if err != nil {
				warnings = append(warnings, Warning{ObjectIndex: objectIndex, Err: err})
				objectIndex++
				continue
			}
			objects = append(objects, Object{Color: layer.Color, Stitches: stitches})
			objectIndex++
		}
	}

	groups, err := Sequence(objects, pl.Config.Sequencer)
	if err != nil {
		return nil, warnings, errors.Wrap(err, "pipeline: sequence")
	}

	asm := NewAssembler()
	pattern := asm.Assemble(groups)
	return pattern, warnings, nil
}

// generateObject runs Compensator -> Underlay (its points are prepended to
// the fill, since underlay stitches are a preparatory pass the sequencer
// treats as part of the same object's stitch list) -> the style-specific
// generator -> the tie-stitch wrapper, for one path under one layer's
// settings.
func generateObject(raw Polyline, settings StitchSettings, isStroke bool) (Polyline, error) {
	density := mmToUnits(settings.Density)
	stitchLen := mmToUnits(settings.StitchLength)
	pullComp := mmToUnits(settings.PullCompensation)
	satinWidth := mmToUnits(settings.SatinWidth)

	if isStroke || settings.Style == StyleBean || settings.Style == StyleRun {
		if len(raw) < 2 {
			return nil, nil
		}
		var pts Polyline
		switch settings.Style {
		case StyleBean:
			pts = Bean(raw, stitchLen)
		case StyleSatin:
			comp, err := satinPolylineComp(raw, pullComp)
			if err != nil {
				return nil, err
			}
			s, err := SatinColumnPolyline(comp, satinWidth, density, settings.SatinShortStitches)
			if err != nil {
				return nil, err
			}
			pts = s
		default:
			pts = Running(raw, stitchLen)
		}
		if len(pts) == 0 {
			return nil, nil
		}
		return ApplyTieStitches(pts, TieBoth), nil
	}

	poly, err := NewPolygon(raw)
	if err != nil {
		return nil, err
	}
	poly, err = Compensate(poly, pullComp)
	if err != nil {
		return nil, err
	}

	var fillPts Polyline
	var underlayPts Polyline
	if settings.Underlay {
		uw, err := EdgeWalk(poly, mmToUnits(0.3), stitchLen)
		if err == nil {
			underlayPts = uw
		}
	}

	switch settings.Style {
	case StyleSatin:
		fillPts, err = SatinColumnPolygon(poly, density)
	default:
		fillPts, err = TatamiFill(poly, density, settings.Angle, stitchLen, settings.Offset)
	}
	if err != nil {
		return nil, err
	}

	all := append(append(Polyline{}, underlayPts...), fillPts...)
	if len(all) == 0 {
		return nil, nil
	}
	return ApplyTieStitches(all, TieBoth), nil
}

// satinPolylineComp returns the polyline spine unchanged for every mm:
// pull compensation is not applied to open polylines.
func satinPolylineComp(line Polyline, mm float64) (Polyline, error) {
	if mm == 0 {
		return line, nil
	}
	return line, nil // negative/positive compensation on an open polyline has no
	// natural "buffer" target the way a closed polygon does; per §4.2's
	// contract (Polygon in, Polygon out) this only applies to the polygon
	// satin/tatami/underlay path above.
}

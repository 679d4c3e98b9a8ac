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

// Wire-format types (§6) and the decode side of the segmentation producer
// (C0) boundary contract. HTTP transport itself is out of scope; only the
// JSON shapes and their decode into engine types live here.
package stitch

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// WireSettings mirrors the JSON "settings" object of §6.
type WireSettings struct {
	Style              string   `json:"style"`
	Density            float64  `json:"density"`
	Angle              float64  `json:"angle"`
	StitchLength       float64  `json:"stitchLength"`
	PullCompensation   float64  `json:"pullCompensation"`
	Underlay           *bool    `json:"underlay"`
	Offset             float64  `json:"offset"`
	SatinWidth         *float64 `json:"satinWidth"`
	SatinShortStitches *bool    `json:"shortStitches"`
}

// ToStitchSettings converts the wire settings to a StitchSettings with
// defaults filled in, per the "unknown keys are ignored" design note —
// unrecognized JSON fields are simply dropped by encoding/json.
func (w WireSettings) ToStitchSettings() StitchSettings {
	s := StitchSettings{
		Style:            ParseStyle(w.Style),
		Density:          w.Density,
		Angle:            w.Angle,
		StitchLength:     w.StitchLength,
		PullCompensation: w.PullCompensation,
		Offset:           w.Offset,
	}
	s.Underlay = true
	if w.Underlay != nil {
		s.Underlay = *w.Underlay
	}
	s.SatinShortStitches = true
	if w.SatinShortStitches != nil {
		s.SatinShortStitches = *w.SatinShortStitches
	}
	if w.SatinWidth != nil {
		s.SatinWidth = *w.SatinWidth
	}
	return s.WithDefaults()
}

// WireLayer mirrors one entry of the JSON "layers" array of §6. Paths are
// rings/polylines in wire coordinates (1/10 mm design units, per the
// coordinate convention of §6 — clients using pixels must pre-scale
// themselves).
type WireLayer struct {
	Color    string        `json:"color"`
	Paths    [][][2]float64 `json:"paths"`
	Settings WireSettings  `json:"settings"`
	IsStroke bool          `json:"isStroke"`
}

// WireRequest mirrors the top-level JSON request body of §6.
type WireRequest struct {
	Layers []WireLayer `json:"layers"`
	Format string      `json:"format"`
}

// ParseRGB decodes a "#rrggbb" hex color. Invalid input yields black
// rather than failing the whole request, since color is cosmetic to the
// geometry pipeline.
func ParseRGB(hex string) RGB {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return RGB{R: r, G: g, B: b}
}

// LayerInput is the decoded, engine-native form of one wire layer.
type LayerInput struct {
	Color    RGB
	Paths    []Polyline
	Settings StitchSettings
	IsStroke bool
}

// DecodeWireRequest parses a §6 JSON request body into engine-native
// layers. Coordinates are design units already (1/10 mm); no scaling is
// applied here.
func DecodeWireRequest(data []byte) ([]LayerInput, string, error) {
	var req WireRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, "", errors.Wrap(err, "wire: decode request")
	}
	layers := make([]LayerInput, 0, len(req.Layers))
	for _, wl := range req.Layers {
		paths := make([]Polyline, 0, len(wl.Paths))
		for _, raw := range wl.Paths {
			p := make(Polyline, len(raw))
			for i, xy := range raw {
				p[i] = Point{X: xy[0], Y: xy[1]}
			}
			paths = append(paths, p)
		}
		layers = append(layers, LayerInput{
			Color:    ParseRGB(wl.Color),
			Paths:    paths,
			Settings: wl.Settings.ToStitchSettings(),
			IsStroke: wl.IsStroke,
		})
	}
	return layers, req.Format, nil
}

// SegmentationLayer mirrors one entry of the C0 producer's "layers" array
// (§6 Segmentation producer contract): color plus simplified contour
// paths, with no settings or stroke flag (those are assigned downstream
// by the client/digitizer, not by segmentation).
type SegmentationLayer struct {
	Color string          `json:"color"`
	Paths [][][2]float64 `json:"paths"`
}

// SegmentationResult mirrors the full C0 contract response.
type SegmentationResult struct {
	K      int               `json:"k"`
	Layers []SegmentationLayer `json:"layers"`
	OriginalSize struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"original_size"`
}

// ToLayerInputs converts a segmentation result into engine-native layers
// with the default StitchSettings, since C0 never assigns per-layer
// stitch settings — this is only the boundary shim of SPEC_FULL.md §4.12,
// not an implementation of segmentation itself.
func (r SegmentationResult) ToLayerInputs() []LayerInput {
	out := make([]LayerInput, 0, len(r.Layers))
	for _, l := range r.Layers {
		paths := make([]Polyline, 0, len(l.Paths))
		for _, raw := range l.Paths {
			p := make(Polyline, len(raw))
			for i, xy := range raw {
				p[i] = Point{X: xy[0], Y: xy[1]}
			}
			paths = append(paths, p)
		}
		out = append(out, LayerInput{
			Color:    ParseRGB(l.Color),
			Paths:    paths,
			Settings: DefaultStitchSettings(),
		})
	}
	return out
}

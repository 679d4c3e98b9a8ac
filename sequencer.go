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

// Object sequencer (component C8): groups objects by color, runs a greedy
// nearest-neighbor tour within each group, and decides trim-vs-connector
// between consecutive objects. The per-group pairwise distance matrix is
// built with github.com/katalvlaran/lvlath/matrix's Dense type instead of
// an ad hoc [][]float64, grounded on katalvlaran-lvlath's own tsp package,
// which stages its nearest-neighbor-style heuristics over the same Dense
// distance matrix before running Christofides.
package stitch

import (
	"math"

	lvmatrix "github.com/katalvlaran/lvlath/matrix"
	"github.com/pkg/errors"
)

// Object is one generated object ready for sequencing: a color and its
// final stitch list (after tie-stitch wrapping).
type Object struct {
	Color    RGB
	Stitches Polyline
}

// SequencedObject is one object placed in tour order, annotated with
// either a leading connector (a short running-stitch bridge that inherits
// this object's color) or a trim requirement.
type SequencedObject struct {
	Color            RGB
	LeadingConnector Polyline
	Stitches         Polyline
	NeedsTrim        bool
}

// ColorGroup is a run of same-color objects, in first-appearance order.
type ColorGroup struct {
	Color   RGB
	Objects []SequencedObject
}

// SequencerConfig holds the engine-wide tunables of §4.8 that are not part
// of a single design's StitchSettings.
type SequencerConfig struct {
	ShortJumpThresholdMm float64
	ConnectorStitchLenMm float64
}

// DefaultSequencerConfig returns the defaults named in §4.8: a 2.0mm
// short-jump threshold and a 3.0mm connector stitch pitch.
func DefaultSequencerConfig() SequencerConfig {
	return SequencerConfig{ShortJumpThresholdMm: 2.0, ConnectorStitchLenMm: 3.0}
}

// Sequence reorders objects per §4.8: group by color (preserving
// first-appearance order within and across groups), then run a greedy
// nearest-neighbor tour per group, injecting a connector or requiring a
// trim between consecutive tour members depending on the gap distance.
func Sequence(objects []Object, cfg SequencerConfig) ([]ColorGroup, error) {
	thresholdUnits := mmToUnits(cfg.ShortJumpThresholdMm)
	connectorLenUnits := mmToUnits(cfg.ConnectorStitchLenMm)

	groups := groupByColor(objects)
	result := make([]ColorGroup, 0, len(groups))
	for _, g := range groups {
		tour, err := nearestNeighborTour(g.objects)
		if err != nil {
			return nil, errors.Wrap(err, "sequencer: nearest-neighbor tour")
		}

		seq := make([]SequencedObject, 0, len(tour))
		for i, obj := range tour {
			so := SequencedObject{Color: g.color, Stitches: obj.Stitches}
			if i > 0 && len(obj.Stitches) > 0 {
				prev := tour[i-1]
				if len(prev.Stitches) > 0 {
					last := prev.Stitches[len(prev.Stitches)-1]
					first := obj.Stitches[0]
					gap := math.Hypot(first.X-last.X, first.Y-last.Y)
					if gap < thresholdUnits {
						so.LeadingConnector = Running(Polyline{last, first}, connectorLenUnits)
					} else {
						so.NeedsTrim = true
					}
				}
			}
			seq = append(seq, so)
		}
		result = append(result, ColorGroup{Color: g.color, Objects: seq})
	}
	return result, nil
}

type colorObjects struct {
	color   RGB
	objects []Object
}

// groupByColor buckets objects by color while preserving the order in
// which each color first appears, and the input order of objects sharing
// a color (§4.8 step 1).
func groupByColor(objects []Object) []colorObjects {
	var order []RGB
	index := map[RGB]int{}
	var groups []colorObjects
	for _, obj := range objects {
		i, ok := index[obj.Color]
		if !ok {
			i = len(groups)
			index[obj.Color] = i
			order = append(order, obj.Color)
			groups = append(groups, colorObjects{color: obj.Color})
		}
		groups[i].objects = append(groups[i].objects, obj)
	}
	return groups
}

// nearestNeighborTour runs the O(n^2) greedy nearest-neighbor heuristic of
// §4.8 step 2: start at the first object, and at each step pick the
// unvisited object whose first point is closest to the current object's
// last point, with the lowest input index breaking ties.
func nearestNeighborTour(objects []Object) ([]Object, error) {
	n := len(objects)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		return objects, nil
	}

	dist, err := lvmatrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || len(objects[i].Stitches) == 0 || len(objects[j].Stitches) == 0 {
				continue
			}
			last := objects[i].Stitches[len(objects[i].Stitches)-1]
			first := objects[j].Stitches[0]
			if err := dist.Set(i, j, math.Hypot(first.X-last.X, first.Y-last.Y)); err != nil {
				return nil, err
			}
		}
	}

	visited := make([]bool, n)
	tour := make([]Object, 0, n)
	cur := 0
	visited[0] = true
	tour = append(tour, objects[0])

	for len(tour) < n {
		best := -1
		bestDist := math.Inf(1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d, err := dist.At(cur, j)
			if err != nil {
				return nil, err
			}
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		visited[best] = true
		tour = append(tour, objects[best])
		cur = best
	}
	return tour, nil
}

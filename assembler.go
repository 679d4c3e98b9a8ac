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

// Command-stream assembler (component C9) and its state machine (§4.11).
// The teacher owns a single mutable Rasterizer per call and feeds it
// geometry through a small set of typed buffers; the Assembler below plays
// the same role for the embroidery domain: one request-scoped, mutable
// accumulator that generators and the sequencer feed, and which is
// discarded once serialized — see the "global mutable state" design note.
package stitch

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// CommandKind tags a StitchCommand's variant.
type CommandKind int

const (
	CmdStitch CommandKind = iota
	CmdJump
	CmdTrim
	CmdColorChange
	CmdEnd
)

// StitchCommand is one instruction in the machine-ready command stream.
type StitchCommand struct {
	Kind  CommandKind
	X, Y  float64 // valid for CmdStitch, CmdJump
	Color RGB     // valid for CmdColorChange
}

// Pattern is an ordered sequence of StitchCommands: the engine's single
// mutable accumulator, owned by one Assembler, destroyed when serialized.
type Pattern []StitchCommand

// Stats is the derived thread-length and command-count summary of §4.9
// and the supplemented per-design statistics of SPEC_FULL.md §3.1.
type Stats struct {
	StitchCount      int
	TrimCount        int
	ColorChangeCount int
	TopThreadM       float64
	BobbinThreadM    float64
	Bounds           rect.Rect
}

// Stats computes thread-length statistics: the sum of Euclidean distances
// between consecutive Stitch commands (Jump/Trim do not contribute),
// reported as top_thread_m = total_mm*1.05/1000 and
// bobbin_thread_m = total_mm*0.70/1000, plus the axis-aligned bounding box
// over every Stitch/Jump coordinate the pattern visits, per §4.9 and the
// supplemented per-design statistics of SPEC_FULL.md §3.1.
func (p Pattern) Stats() Stats {
	var s Stats
	var totalUnits float64
	var prev Point
	havePrev := false
	haveBounds := false
	for _, cmd := range p {
		switch cmd.Kind {
		case CmdStitch:
			s.StitchCount++
			cur := Point{X: cmd.X, Y: cmd.Y}
			if havePrev {
				totalUnits += math.Hypot(cur.X-prev.X, cur.Y-prev.Y)
			}
			prev = cur
			havePrev = true
			s.Bounds, haveBounds = growBounds(s.Bounds, haveBounds, cur)
		case CmdJump:
			havePrev = false
			s.Bounds, haveBounds = growBounds(s.Bounds, haveBounds, Point{X: cmd.X, Y: cmd.Y})
		case CmdTrim:
			s.TrimCount++
			havePrev = false
		case CmdColorChange:
			s.ColorChangeCount++
		}
	}
	totalMM := totalUnits / unitsPerMM
	s.TopThreadM = totalMM * 1.05 / 1000
	s.BobbinThreadM = totalMM * 0.70 / 1000
	return s
}

// growBounds extends r to include p, treating an unset r (haveBounds ==
// false) as an empty box seeded by p rather than the zero Rect.
func growBounds(r rect.Rect, haveBounds bool, p Point) (rect.Rect, bool) {
	if !haveBounds {
		return rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}, true
	}
	if p.X < r.LLx {
		r.LLx = p.X
	}
	if p.Y < r.LLy {
		r.LLy = p.Y
	}
	if p.X > r.URx {
		r.URx = p.X
	}
	if p.Y > r.URy {
		r.URy = p.Y
	}
	return r, true
}

// assemblerState is the state machine of §4.11.
type assemblerState int

const (
	stateIdle assemblerState = iota
	statePendingJump
	stateStitching
)

// Assembler consumes sequenced color groups and emits a Pattern obeying
// the invariants of §3: every color run opens with Jump (or
// ColorChange+Jump), every Trim is followed by a Jump before the next
// Stitch, and consecutive identical Stitch coordinates are preserved (tie
// stitches rely on this).
type Assembler struct {
	pattern Pattern
	state   assemblerState
}

// NewAssembler returns an empty, request-scoped Assembler.
func NewAssembler() *Assembler {
	return &Assembler{state: stateIdle}
}

// Assemble drives the state machine over a full sequenced design and
// returns the finished Pattern, terminated by CmdEnd.
func (a *Assembler) Assemble(groups []ColorGroup) Pattern {
	for _, group := range groups {
		a.beginColor(group.Color)
		for _, obj := range group.Objects {
			a.beginObject(obj)
		}
		a.endColor()
	}
	a.pattern = append(a.pattern, StitchCommand{Kind: CmdEnd})
	return a.pattern
}

// beginColor cuts the previous color's thread (if it left any stitches)
// before emitting the ColorChange.
func (a *Assembler) beginColor(color RGB) {
	if n := len(a.pattern); n > 0 && a.pattern[n-1].Kind == CmdStitch {
		a.pattern = append(a.pattern, StitchCommand{Kind: CmdTrim})
	}
	a.pattern = append(a.pattern, StitchCommand{Kind: CmdColorChange, Color: color})
	a.state = statePendingJump
}

// beginObject emits one sequenced object's points: a leading connector (if
// any) is stitched in-line without a trim, since the whole point of a
// connector is to avoid one; otherwise, if this object was marked
// NeedsTrim, a Trim+Jump precedes its first point.
func (a *Assembler) beginObject(obj SequencedObject) {
	if obj.NeedsTrim && a.state == stateStitching {
		a.pattern = append(a.pattern, StitchCommand{Kind: CmdTrim})
		a.state = statePendingJump
	}

	points := obj.LeadingConnector
	points = append(points, obj.Stitches...)
	if len(points) == 0 {
		return
	}

	for i, p := range points {
		if a.state == statePendingJump && i == 0 {
			a.pattern = append(a.pattern, StitchCommand{Kind: CmdJump, X: p.X, Y: p.Y})
			a.state = stateStitching
			continue
		}
		a.pattern = append(a.pattern, StitchCommand{Kind: CmdStitch, X: p.X, Y: p.Y})
	}
}

func (a *Assembler) endColor() {
	a.state = stateIdle
}

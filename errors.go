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

import "github.com/pkg/errors"

// Sentinel errors for the five error kinds of the stitch engine. Callers
// should use errors.Is against these; internal call sites wrap them with
// errors.Wrapf to attach context without losing the sentinel identity.
var (
	// ErrInvalidGeometry marks a polygon with fewer than 3 vertices, an
	// empty polygon, or one that could not be repaired by a zero-buffer.
	// Policy: skip the offending path, continue with the rest of the layer.
	ErrInvalidGeometry = errors.New("stitch: invalid geometry")

	// ErrEmptyAfterOffset marks a polygon that an inward or outward offset
	// erased entirely. Policy: the compensator falls back to the original
	// polygon; underlay generation skips the object.
	ErrEmptyAfterOffset = errors.New("stitch: polygon empty after offset")

	// ErrUnsupportedFormat marks a writer dispatch to an unrecognized
	// format tag. Policy: surfaced to the caller.
	ErrUnsupportedFormat = errors.New("stitch: unsupported output format")

	// ErrGenerationFailure marks an unexpected numerical failure inside a
	// stitch generator. Policy: skip the object, record a warning, and
	// continue the batch.
	ErrGenerationFailure = errors.New("stitch: stitch generation failed")

	// ErrEncoderFailure marks rejection of the command stream by the
	// format writer. Policy: surfaced to the caller.
	ErrEncoderFailure = errors.New("stitch: encoder rejected pattern")
)

// Warning records a recoverable failure for one object that the pipeline
// skipped rather than aborting the batch, per the local-recovery-over-abort
// policy of the error handling design.
type Warning struct {
	ObjectIndex int
	Err         error
}

func (w Warning) Error() string {
	return errors.Wrapf(w.Err, "object %d", w.ObjectIndex).Error()
}

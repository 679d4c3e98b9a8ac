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

// Writer adapter (component C10). The concrete DST/PES/JEF/EXP byte
// layouts are deliberately out of scope (§1); this file only defines the
// pluggable dispatch surface an external encoder registers against.
package stitch

import (
	"github.com/pkg/errors"
)

// Format names a target embroidery file format.
type Format string

const (
	FormatDST Format = "dst"
	FormatPES Format = "pes"
	FormatJEF Format = "jef"
	FormatEXP Format = "exp"
)

// ParseFormat maps a wire-format string to a Format, reporting
// ErrUnsupportedFormat for anything outside the recognized set.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatDST, FormatPES, FormatJEF, FormatEXP:
		return Format(name), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "format %q", name)
	}
}

// Encoder is the external collaborator that lays out a Pattern as bytes
// for one specific format. Concrete DST/PES/JEF/EXP encoders live outside
// this module; the writer adapter only dispatches to whichever Encoder is
// registered for a Format.
type Encoder interface {
	Encode(p Pattern) ([]byte, error)
}

// Writer dispatches Pattern serialization to a registered Encoder per
// format, per §4.10.
type Writer struct {
	encoders map[Format]Encoder
}

// NewWriter returns a Writer with no encoders registered; callers
// register the concrete format encoders they have available.
func NewWriter() *Writer {
	return &Writer{encoders: make(map[Format]Encoder)}
}

// Register binds an Encoder to a format.
func (w *Writer) Register(format Format, enc Encoder) {
	w.encoders[format] = enc
}

// Write serializes pattern in the requested format. ErrUnsupportedFormat
// is returned for an unrecognized format tag or one with no registered
// encoder; ErrEncoderFailure wraps any error the encoder itself returns.
func (w *Writer) Write(p Pattern, format Format) ([]byte, error) {
	enc, ok := w.encoders[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
	data, err := enc.Encode(p)
	if err != nil {
		return nil, errors.Wrapf(ErrEncoderFailure, "%s: %v", format, err)
	}
	return data, nil
}

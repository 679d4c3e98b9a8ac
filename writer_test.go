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

import (
	"errors"
	"testing"
)

type stubEncoder struct {
	data []byte
	err  error
}

func (s stubEncoder) Encode(p Pattern) ([]byte, error) {
	return s.data, s.err
}

func TestParseFormatRejectsUnsupported(t *testing.T) {
	if _, err := ParseFormat("xyz"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseFormatAcceptsKnown(t *testing.T) {
	for _, name := range []string{"dst", "pes", "jef", "exp"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q): %v", name, err)
		}
	}
}

func TestWriterWriteDispatchesToRegisteredEncoder(t *testing.T) {
	w := NewWriter()
	w.Register(FormatDST, stubEncoder{data: []byte{1, 2, 3}})
	data, err := w.Write(Pattern{{Kind: CmdEnd}}, FormatDST)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(data) != 3 {
		t.Errorf("len(data) = %d, want 3", len(data))
	}
}

// TestWriterWriteUnsupportedFormat exercises the unsupported-format seed
// scenario: an unregistered/unrecognized format surfaces an error and no
// bytes, rather than returning a partially written file.
func TestWriterWriteUnsupportedFormat(t *testing.T) {
	w := NewWriter()
	_, err := w.Write(Pattern{{Kind: CmdEnd}}, Format("xyz"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriterWriteWrapsEncoderFailure(t *testing.T) {
	w := NewWriter()
	w.Register(FormatDST, stubEncoder{err: errors.New("boom")})
	_, err := w.Write(Pattern{{Kind: CmdEnd}}, FormatDST)
	if !errors.Is(err, ErrEncoderFailure) {
		t.Fatalf("expected ErrEncoderFailure, got %v", err)
	}
}

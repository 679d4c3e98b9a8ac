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

// stitchgen reads a wire-format JSON layer document (§6) from a file or
// stdin and runs it through the stitch engine, printing a summary of the
// resulting Pattern. It does not write a machine-ready binary file, since
// no concrete DST/PES/JEF/EXP encoder is registered by default; a hosting
// program that has one can call stitch.Writer.Register itself.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"needle.dev/go/stitch"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: stitchgen [layers.json]")
	fmt.Fprintln(os.Stderr, "  reads a wire-format layer document from the given file, or stdin if omitted")
}

func main() {
	if len(os.Args) > 2 {
		usage()
		os.Exit(2)
	}

	var data []byte
	var err error
	if len(os.Args) == 2 {
		data, err = os.ReadFile(os.Args[1])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "stitchgen: read input: %v\n", err)
		os.Exit(1)
	}

	layers, format, err := stitch.DecodeWireRequest(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stitchgen: %v\n", err)
		os.Exit(1)
	}

	pl := stitch.NewPipeline()
	if format != "" {
		if f, ferr := stitch.ParseFormat(format); ferr == nil {
			pl.Config.DefaultFormat = f
		}
	}

	pattern, warnings, err := pl.Run(layers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stitchgen: %v\n", err)
		os.Exit(1)
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "stitchgen: warning: %v\n", w)
	}

	stats := pattern.Stats()
	report := struct {
		Format           string        `json:"format"`
		StitchCount      int           `json:"stitchCount"`
		TrimCount        int           `json:"trimCount"`
		ColorChangeCount int           `json:"colorChangeCount"`
		TopThreadM       float64       `json:"topThreadM"`
		BobbinThreadM    float64       `json:"bobbinThreadM"`
		Warnings         int           `json:"warnings"`
	}{
		Format:           string(pl.Config.DefaultFormat),
		StitchCount:      stats.StitchCount,
		TrimCount:        stats.TrimCount,
		ColorChangeCount: stats.ColorChangeCount,
		TopThreadM:       stats.TopThreadM,
		BobbinThreadM:    stats.BobbinThreadM,
		Warnings:         len(warnings),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "stitchgen: encode report: %v\n", err)
		os.Exit(1)
	}
}

// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"

	"github.com/fatih/color"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/protoscope/internal/level"
)

// fileDiagnostic is a diagnostic with resolved source positions.
type fileDiagnostic struct {
	File     string            `json:"file"`
	Line     int               `json:"line"`
	Column   int               `json:"column"`
	Category string            `json:"category,omitempty"`
	Message  string            `json:"message"`
	Related  []fileRelatedInfo `json:"related,omitempty"`
}

type fileRelatedInfo struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

func newFileDiagnostic(fset *token.FileSet, d analysis.Diagnostic) fileDiagnostic {
	pos := fset.Position(d.Pos)

	fd := fileDiagnostic{
		File:     pos.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
		Category: d.Category,
		Message:  d.Message,
	}

	for _, r := range d.Related {
		rp := fset.Position(r.Pos)
		fd.Related = append(fd.Related, fileRelatedInfo{Line: rp.Line, Column: rp.Column, Message: r.Message})
	}

	return fd
}

// print writes diagnostics to stdout in the configured format.
func (g *globalOptions) print(diagnostics []fileDiagnostic) error {
	switch g.format {
	case level.FormatJSON:
		if diagnostics == nil {
			diagnostics = []fileDiagnostic{}
		}

		return writeJSON(g.stdout, diagnostics)

	default:
		return writeText(g.stdout, diagnostics, newPalette(g.colored()))
	}
}

// palette colors the parts of a text diagnostic.
type palette struct {
	position, related *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		position: color.New(color.Bold),
		related:  color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.position, p.related} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func writeText(w io.Writer, diagnostics []fileDiagnostic, p palette) error {
	for _, d := range diagnostics {
		pos := p.position.Sprintf("%s:%d:%d:", d.File, d.Line, d.Column)

		if _, err := fmt.Fprintf(w, "%s %s\n", pos, d.Message); err != nil {
			return err
		}

		for _, r := range d.Related {
			if _, err := fmt.Fprintf(w, "\t%s\n", p.related.Sprintf("%s:%d:%d: %s", d.File, r.Line, r.Column, r.Message)); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

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

package run_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/protoscope/internal/config"
	. "fillmore-labs.com/protoscope/internal/run"
	"fillmore-labs.com/protoscope/internal/testsource"
	"fillmore-labs.com/protoscope/jsast"
)

func newOptions(buf *bytes.Buffer) *Options {
	r := DefaultOptions()
	r.Logger = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return r
}

func TestRunInvalidPass(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, "var a = 1;")
	report := func(analysis.Diagnostic) {}

	tests := [...]struct {
		name string
		pass *Pass
	}{
		{"nil", nil},
		{"no_fset", &Pass{File: f, Report: report}},
		{"no_file", &Pass{Fset: fset, Report: report}},
		{"no_report", &Pass{Fset: fset, File: f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := DefaultOptions().Run(t.Context(), tt.pass); !errors.Is(err, ErrInvalidPass) {
				t.Errorf("Run() = %v, want %v", err, ErrInvalidPass)
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, "var A = Object.assign({}, {a: 1});")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var count int

	p := &Pass{Fset: fset, File: f, Report: func(analysis.Diagnostic) { count++ }}
	if err := DefaultOptions().Run(ctx, p); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want %v", err, context.Canceled)
	}

	if count != 0 {
		t.Errorf("Got %d diagnostics, want none", count)
	}
}

func TestRunLogs(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want string
	}{
		{"generated", "// Code generated by hand. DO NOT EDIT.\nvar A = {};", "Skipping generated file"},
		{"unresolved", "var A = Object.assign({}, A);", "Cannot resolve members"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			fset, f := testsource.Parse(t, tt.src)
			p := &Pass{Fset: fset, File: f, Report: func(analysis.Diagnostic) {}}

			if err := newOptions(&buf).Run(t.Context(), p); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			if got := buf.String(); !strings.Contains(got, tt.want) {
				t.Errorf("Expected log %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRunRules(t *testing.T) {
	t.Parallel()

	const src = `var A = Object.assign({}, {a: 1});
var B = _extends({}, {b: 1});
`

	tests := [...]struct {
		name    string
		disable config.Rule
		want    []string
	}{
		{"all", 0, []string{"merge", "extends"}},
		{"no_merge", config.MergeRule, []string{"extends"}},
		{"no_extends", config.ExtendsRule, []string{"merge"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := testsource.Parse(t, src)

			var got []string

			p := &Pass{Fset: fset, File: f, Report: func(d analysis.Diagnostic) { got = append(got, d.Category) }}

			r := DefaultOptions()
			r.Rules.Disable(tt.disable)

			if err := r.Run(t.Context(), p); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Got categories %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunDynamicImport(t *testing.T) {
	t.Parallel()

	const src = `var A = Object.assign({}, import("./a"), {b: 1});`

	tests := [...]struct {
		name     string
		analyzer jsast.Extensions
		parser   jsast.Extensions
		want     []string
	}{
		{
			name:     "enabled",
			analyzer: jsast.NewExtensions(jsast.DynamicImport),
			parser:   jsast.NewExtensions(jsast.DynamicImport),
			want:     []string{"Composed by this call", "Members of this dynamic import are not included"},
		},
		{
			name:     "analyzer_disabled",
			analyzer: jsast.NewExtensions(),
			parser:   jsast.NewExtensions(jsast.DynamicImport),
			want:     []string{"Composed by this call"},
		},
		{
			name:     "parser_unsupported",
			analyzer: jsast.NewExtensions(jsast.DynamicImport),
			parser:   jsast.NewExtensions(),
			want:     []string{"Composed by this call"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := testsource.Parse(t, src)
			f.Syntax = tt.parser

			var diagnostics []analysis.Diagnostic

			p := &Pass{Fset: fset, File: f, Report: func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) }}

			r := DefaultOptions()
			r.Extensions = tt.analyzer

			if err := r.Run(t.Context(), p); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			if len(diagnostics) != 1 {
				t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
			}

			var got []string
			for _, rel := range diagnostics[0].Related {
				got = append(got, rel.Message)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Related information mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

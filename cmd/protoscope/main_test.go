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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const source = `var Base = {init: 1, run: 2};
var A = Object.assign({}, Base, {extra: 3});
Base.stop = function() {};
`

func writeFile(tb testing.TB, name, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatalf("Can't write %s: %v", name, err)
	}

	return path
}

func execute(tb testing.TB, args ...string) (code int, stdout, stderr string) {
	tb.Helper()

	var out, errOut bytes.Buffer
	code = run(tb.Context(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestCheck(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "input.js", source)
	config := writeFile(t, "protoscope.yaml", "merge: false\n")

	tests := []struct {
		name string
		args []string
		code int
		want []string
	}{
		{
			name: "findings",
			args: []string{"check", "--color=off", path},
			code: exitFindings,
			want: []string{
				path + ":2:5: Object 'A' merges 4 members: 'init', 'run', 'stop' and 'extra' (ps:merge)",
				"\t" + path + ":2:9: Composed by this call",
			},
		},
		{
			name: "flag_disables",
			args: []string{"check", "--merge=false", path},
			code: exitOK,
		},
		{
			name: "config_disables",
			args: []string{"check", "--config", config, path},
			code: exitOK,
		},
		{
			name: "flag_overrides_config",
			args: []string{"check", "--config", config, "--merge", "--jobs=1", "--color=off", path},
			code: exitFindings,
			want: []string{
				path + ":2:5: Object 'A' merges 4 members: 'init', 'run', 'stop' and 'extra' (ps:merge)",
				"\t" + path + ":2:9: Composed by this call",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := execute(t, tt.args...)
			if code != tt.code {
				t.Errorf("Exit code %d, want %d (stderr: %s)", code, tt.code, stderr)
			}

			got := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
			if stdout == "" {
				got = nil
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "input.js", source)

	code, stdout, stderr := execute(t, "check", "--format=json", path)
	if code != exitFindings {
		t.Fatalf("Exit code %d, want %d (stderr: %s)", code, exitFindings, stderr)
	}

	var got []fileDiagnostic
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("Can't decode output: %v", err)
	}

	want := []fileDiagnostic{{
		File:     path,
		Line:     2,
		Column:   5,
		Category: "merge",
		Message:  "Object 'A' merges 4 members: 'init', 'run', 'stop' and 'extra' (ps:merge)",
		Related:  []fileRelatedInfo{{Line: 2, Column: 9, Message: "Composed by this call"}},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	broken := writeFile(t, "broken.js", "var = ;\n")
	missing := filepath.Join(t.TempDir(), "missing.js")
	config := writeFile(t, "protoscope.yaml", "merge: often\n")
	path := writeFile(t, "input.js", source)

	tests := []struct {
		name string
		args []string
	}{
		{"syntax_error", []string{"check", broken}},
		{"missing_file", []string{"check", missing}},
		{"invalid_config", []string{"check", "--config", config, path}},
		{"no_files", []string{"check"}},
		{"unknown_format", []string{"check", "--format=xml", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := execute(t, tt.args...)
			if code != exitError {
				t.Errorf("Exit code %d, want %d", code, exitError)
			}

			if stderr == "" {
				t.Error("Expected error output")
			}
		})
	}
}

func TestMembers(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "input.js", source)

	code, stdout, stderr := execute(t, "members", "--color=off", path, "Base")
	if code != exitOK {
		t.Fatalf("Exit code %d, want %d (stderr: %s)", code, exitOK, stderr)
	}

	want := []string{
		"1:13: init = 1",
		"1:22: run = 2",
		"3:1: stop = FunctionExpression",
		"Members of 'Base': 'init', 'run', 'stop'",
	}

	if diff := cmp.Diff(want, strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestMembersJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "input.js", "var X = {a: 1, ...rest, [k]: 2};\n")

	code, stdout, _ := execute(t, "members", "--format=json", path, "X")
	if code != exitError {
		t.Errorf("Exit code %d, want %d", code, exitError)
	}

	var got memberReport
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("Can't decode output: %v", err)
	}

	if len(got.Descriptors) != 3 || got.Descriptors[1].Key != "..." || got.Descriptors[2].Key != "[k]" {
		t.Errorf("Got descriptors %+v, want a, ... and [k]", got.Descriptors)
	}

	if got.Error == "" {
		t.Error("Expected grouping error")
	}
}

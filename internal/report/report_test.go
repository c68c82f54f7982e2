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

package report_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/protoscope/internal/astutil"
	"fillmore-labs.com/protoscope/internal/config"
	. "fillmore-labs.com/protoscope/internal/report"
	"fillmore-labs.com/protoscope/internal/target"
	"fillmore-labs.com/protoscope/internal/testsource"
	"fillmore-labs.com/protoscope/internal/usage"
	"fillmore-labs.com/protoscope/jsast"
	"fillmore-labs.com/protoscope/resolve"
)

func collect(t *testing.T, src string) (*token.FileSet, *jsast.File, []target.Target) {
	t.Helper()

	fset, f := testsource.Parse(t, src)

	return fset, f, target.Collect(t.Context(), f.Program.Scope())
}

func TestMergeMessages(t *testing.T) {
	t.Parallel()

	const src = `
var A = Object.assign({}, {a: 1});
var B = Object.assign({a: 1}, {b: 2, a: 3});
var C = _extends({}, {a: 1, b: 2, c: 3});
var D = Object.assign({});
var E = Object.assign({}, {e: 1}); // nolint:protoscope
`

	fset, f, targets := collect(t, src)
	scope := f.Program.Scope()

	var diagnostics Diagnostics

	for _, tg := range targets {
		call, _ := tg.Call()

		set, err := resolve.New().MergeArguments(scope, call)
		if err != nil {
			t.Fatalf("MergeArguments() failed: %v", err)
		}

		members, err := set.Group()
		if err != nil {
			t.Fatalf("Group() failed: %v", err)
		}

		diagnostics.Merges = append(diagnostics.Merges, Merge{Target: tg, Members: members, Helper: tg.Name.Name == "C"})
	}

	var got []string

	ProcessDiagnostics(t.Context(), func(d analysis.Diagnostic) { got = append(got, d.Message) },
		astutil.NewCurrentFile(fset, f), diagnostics)

	want := []string{
		"Object 'A' merges 1 member: 'a' (ps:merge)",
		"Object 'B' merges 2 members: 'a' and 'b' (ps:merge)",
		"Object 'C' inherits 3 members: 'a', 'b' and 'c' (ps:extends)",
		"Object 'D' merges 0 members (ps:merge)",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Messages mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageMessages(t *testing.T) {
	t.Parallel()

	const src = `class A extends Base {
  static s = this.x;
  m() { Base.prototype.m.apply(this, arguments); }
}`

	fset, f, targets := collect(t, src)

	r := usage.New(config.DefaultRules()).Track(t.Context(), targets[0])

	diagnostics := Diagnostics{
		Uses:     []usage.Result{r},
		Failures: []Failure{
			{Target: targets[0], Err: &resolve.CycleError{Path: []string{"A", "A"}}},
			{Target: targets[0], Err: errors.New("broken")},
		},
	}

	var got []analysis.Diagnostic

	ProcessDiagnostics(t.Context(), func(d analysis.Diagnostic) { got = append(got, d) },
		astutil.NewCurrentFile(fset, f), diagnostics)

	want := []string{
		"Cannot resolve members of 'A': cyclic member augmentation: A -> A (ps:cycle)",
		"Cannot resolve members of 'A': broken (ps:unresolved)",
		"Superclass dispatch of 'm' can use super.m() (ps:super)",
		"Member 's' initializer depends on instance context (ps:this)",
	}

	messages := make([]string, 0, len(got))
	for _, d := range got {
		messages = append(messages, d.Message)
	}

	if diff := cmp.Diff(want, messages); diff != "" {
		t.Fatalf("Messages mismatch (-want +got):\n%s", diff)
	}

	if related := got[2].Related; len(related) != 1 || related[0].Message != "In method 'm' of 'Base' subclass" {
		t.Errorf("Got related information %v", related)
	}

	for i, want := range []string{"cycle", "unresolved", "super", "this"} {
		if got[i].Category != want {
			t.Errorf("Got category %q for %q, expected %s", got[i].Category, got[i].Message, want)
		}
	}
}

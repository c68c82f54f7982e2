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

// Package report constructs and emits the diagnostics of a protoscope run.
package report

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/protoscope/internal/astutil"
	"fillmore-labs.com/protoscope/internal/target"
	"fillmore-labs.com/protoscope/internal/usage"
	"fillmore-labs.com/protoscope/jsast"
	"fillmore-labs.com/protoscope/resolve"
)

// Merge is a target composed by a merge call, with its resolved members.
type Merge struct {
	Target  target.Target
	Members resolve.Members
	Helper  bool // composed by _extends

	// Imports are the arguments loaded by dynamic import, their members are unknown.
	Imports []jsast.Node
}

// Failure is a target whose members could not be resolved.
type Failure struct {
	Target target.Target
	Err    error
}

// Diagnostics holds the findings for one scope.
type Diagnostics struct {
	Merges   []Merge
	Uses     []usage.Result
	Failures []Failure
}

// ProcessDiagnostics emits the diagnostics for the findings of one scope.
//
// This is the final phase of the analyzer pipeline. Findings on a line
// carrying a nolint comment are suppressed.
func ProcessDiagnostics(ctx context.Context, report func(analysis.Diagnostic), currentFile astutil.CurrentFile, diagnostics Diagnostics) {
	defer trace.StartRegion(ctx, "Report").End()

	emit := func(d analysis.Diagnostic) {
		if currentFile.NoLintComment(d.Pos) {
			return
		}

		report(d)
	}

	for _, m := range diagnostics.Merges {
		emit(mergeDiagnostic(m))
	}

	for _, f := range diagnostics.Failures {
		emit(failureDiagnostic(f))
	}

	for _, r := range diagnostics.Uses {
		for _, d := range r.Dispatches {
			emit(dispatchDiagnostic(d))
		}

		for _, u := range r.Instance {
			emit(instanceDiagnostic(u))
		}
	}
}

func mergeDiagnostic(m Merge) analysis.Diagnostic {
	verb, category := "merges", "merge"
	if m.Helper {
		verb, category = "inherits", "extends"
	}

	noun := "members"
	if m.Members.Len() == 1 {
		noun = "member"
	}

	msg := fmt.Sprintf("Object '%s' %s %d %s", m.Target.Name.Name, verb, m.Members.Len(), noun)
	if m.Members.Len() > 0 {
		msg += ": " + concatNames(m.Members.Names())
	}

	related := []analysis.RelatedInformation{{
		Pos:     m.Target.Value.Pos(),
		End:     m.Target.Value.End(),
		Message: "Composed by this call",
	}}

	for _, imp := range m.Imports {
		related = append(related, analysis.RelatedInformation{
			Pos:     imp.Pos(),
			End:     imp.End(),
			Message: "Members of this dynamic import are not included",
		})
	}

	return analysis.Diagnostic{
		Pos:      m.Target.Name.Pos(),
		End:      m.Target.Name.End(),
		Category: category,
		Message:  fmt.Sprintf("%s (ps:%s)", msg, category),
		Related:  related,
	}
}

func failureDiagnostic(f Failure) analysis.Diagnostic {
	category := "unresolved"
	if errors.Is(f.Err, resolve.ErrCycle) {
		category = "cycle"
	}

	return analysis.Diagnostic{
		Pos:      f.Target.Name.Pos(),
		End:      f.Target.Name.End(),
		Category: category,
		Message:  fmt.Sprintf("Cannot resolve members of '%s': %v (ps:%s)", f.Target.Name.Name, f.Err, category),
	}
}

func dispatchDiagnostic(d usage.Dispatch) analysis.Diagnostic {
	name := d.Method.Name

	return analysis.Diagnostic{
		Pos:      d.Call.Pos(),
		End:      d.Call.End(),
		Category: "super",
		Message:  fmt.Sprintf("Superclass dispatch of '%s' can use super.%s() (ps:super)", name, name),
		Related: []analysis.RelatedInformation{{
			Pos:     d.Method.Def.Pos(),
			End:     d.Method.Def.End(),
			Message: fmt.Sprintf("In method '%s' of '%s' subclass", name, d.SuperClass),
		}},
	}
}

func instanceDiagnostic(u usage.InstanceUse) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      u.Member.Pos(),
		End:      u.Member.End(),
		Category: "this",
		Message:  fmt.Sprintf("Member '%s' initializer depends on instance context (ps:this)", u.Name),
	}
}

// concatNames formats a list of member names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}

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

// Package run implements the protoscope analysis pipeline.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/protoscope/internal/astutil"
	"fillmore-labs.com/protoscope/internal/config"
	"fillmore-labs.com/protoscope/internal/report"
	"fillmore-labs.com/protoscope/internal/scope"
	"fillmore-labs.com/protoscope/internal/target"
	"fillmore-labs.com/protoscope/internal/usage"
	"fillmore-labs.com/protoscope/jsast"
	"fillmore-labs.com/protoscope/predicate"
	"fillmore-labs.com/protoscope/resolve"
)

// ErrInvalidPass is returned for incomplete passes.
var ErrInvalidPass = errors.New("invalid pass")

// Pass provides one parsed file to the analyzer.
type Pass struct {
	Fset   *token.FileSet
	File   *jsast.File
	Report func(analysis.Diagnostic)
}

// Run executes the protoscope analyzer's pipeline.
func (r *Options) Run(ctx context.Context, p *Pass) error {
	if p == nil || p.Fset == nil || p.File == nil || p.File.Program == nil || p.Report == nil {
		return fmt.Errorf("protoscope: %w", ErrInvalidPass)
	}

	ctx, task := trace.NewTask(ctx, "ProtoScope")
	defer task.End()

	trace.Log(ctx, "file", p.File.Name)

	r.Logger.LogAttrs(ctx, slog.LevelDebug, "Analyzing file", slog.String("file", p.File.Name),
		slog.String("rules", r.Rules.String()), slog.String("behavior", r.Behavior.String()))

	currentFile := astutil.NewCurrentFile(p.Fset, p.File)
	if !currentFile.Valid() {
		astutil.Reporter(p.Report).InternalError(p.File.Program, "File %s without valid info", p.File.Name)

		return nil
	}

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		r.Logger.LogAttrs(ctx, slog.LevelDebug, "Skipping generated file", slog.String("file", p.File.Name))

		return nil
	}

	// Skip files with nolint comment
	if currentFile.NoLint() {
		return nil
	}

	ext := r.syntax(p.File)
	resolver := resolve.New(resolve.WithLogger(r.Logger))
	us := usage.New(r.Rules)

	// Loop over the program and all function bodies
	for sc := range scope.NewIndex(p.File.Program).All() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("protoscope: %s: %w", p.File.Name, err)
		}

		// Stage 1: Find names bound to composed values
		targets := target.Collect(ctx, sc.Body)
		if len(targets) == 0 {
			continue
		}

		var diagnostics report.Diagnostics

		for _, t := range targets {
			// Stage 2: Resolve merged members and track superclass and instance context uses
			r.resolveMerge(ctx, resolver, sc, t, ext, &diagnostics)

			if u := us.Track(ctx, t); !u.Empty() {
				diagnostics.Uses = append(diagnostics.Uses, u)
			}
		}

		// Stage 3: Generate diagnostics
		report.ProcessDiagnostics(ctx, p.Report, currentFile, diagnostics)
	}

	return nil
}

func (r *Options) resolveMerge(ctx context.Context, resolver *resolve.Resolver, sc scope.Scope, t target.Target, ext jsast.Extensions, diagnostics *report.Diagnostics) {
	call, ok := t.Call()
	if !ok {
		return
	}

	helper := predicate.IsExtendsHelper(call)

	rule := config.MergeRule
	if helper {
		rule = config.ExtendsRule
	}

	if !r.Rules.Enabled(rule) {
		return
	}

	defer trace.StartRegion(ctx, "Resolve").End()

	set, err := resolver.MergeArguments(sc.Body, call)

	var members resolve.Members
	if err == nil {
		members, err = set.Group()
	}

	if err != nil {
		r.Logger.LogAttrs(ctx, slog.LevelDebug, "Cannot resolve members",
			slog.String("name", t.Name.Name), slog.String("scope", scope.Name(sc.Owner)), slog.Any("error", err))

		if r.Behavior.Enabled(config.ReportUnresolved) {
			diagnostics.Failures = append(diagnostics.Failures, report.Failure{Target: t, Err: err})
		}

		return
	}

	diagnostics.Merges = append(diagnostics.Merges, report.Merge{
		Target:  t,
		Members: members,
		Helper:  helper,
		Imports: dynamicImports(call, ext),
	})
}

// dynamicImports returns the merge arguments that are import(...) calls.
func dynamicImports(call *jsast.CallExpression, ext jsast.Extensions) []jsast.Node {
	var imports []jsast.Node

	for _, arg := range call.Arguments {
		if c, ok := arg.(*jsast.CallExpression); ok && predicate.IsImport(c.Callee, ext) {
			imports = append(imports, c)
		}
	}

	return imports
}

// syntax returns the extensions enabled for the analyzer that the file's parser also supports.
func (r *Options) syntax(f *jsast.File) jsast.Extensions {
	var ext jsast.Extensions
	for e := range r.Extensions.All() {
		ext.Set(e, f.Syntax.Enabled(e))
	}

	return ext
}

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
	"cmp"
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/protoscope/analyzer"
	"fillmore-labs.com/protoscope/internal/jsparse"
	"fillmore-labs.com/protoscope/internal/settings"
)

type checkOptions struct {
	*globalOptions

	jobs int
}

func newCheckCmd(g *globalOptions) *cobra.Command {
	o := &checkOptions{globalOptions: g}

	cmd := &cobra.Command{
		Use:   "check [flags] files...",
		Short: "Analyze JavaScript files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  o.run,
	}

	flags := cmd.Flags()
	flags.IntVarP(&o.jobs, "jobs", "j", 0, "number of files analyzed concurrently (0: number of CPUs)")
	// analyzer flags are applied to a configured analyzer in run
	flags.AddGoFlagSet(&analyzer.New().Flags)

	return cmd
}

// fileResult holds the outcome of analyzing a single file.
type fileResult struct {
	name        string
	diagnostics []analysis.Diagnostic
	err         error
}

func (o *checkOptions) run(cmd *cobra.Command, files []string) error {
	logger := o.logger()

	a, err := o.analyzer(cmd.Flags(), logger)
	if err != nil {
		return err
	}

	jobs := o.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fset := token.NewFileSet()
	parser := jsparse.New(jsparse.WithExtensions(a.Extensions()))
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(files)))

	for i, name := range files {
		g.Go(func() error {
			results[i] = checkFile(ctx, a, parser, fset, name)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var (
		found  []fileDiagnostic
		failed int
	)

	for _, r := range results {
		if r.err != nil {
			logger.Error("Can't analyze file", slog.String("file", r.name), slog.Any("error", r.err))
			failed++

			continue
		}

		for _, d := range r.diagnostics {
			found = append(found, newFileDiagnostic(fset, d))
		}
	}

	slices.SortStableFunc(found, func(a, b fileDiagnostic) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
		)
	})

	if err := o.print(found); err != nil {
		return err
	}

	switch {
	case failed > 0:
		return fmt.Errorf("%d of %d files could not be analyzed", failed, len(files))

	case len(found) > 0:
		return errFindings

	default:
		return nil
	}
}

// analyzer builds an analyzer from the configuration file, overridden by explicitly set flags.
func (o *checkOptions) analyzer(flags *pflag.FlagSet, logger *slog.Logger) (*analyzer.Analyzer, error) {
	var opts []analyzer.Option

	if o.config != "" {
		s, err := settings.Load(o.config)
		if err != nil {
			return nil, err
		}

		opts = s.Options()
	}

	opts = append(opts, analyzer.WithLogger(logger))
	logger.Debug("Analyzer configured", slog.Any("options", analyzer.Options(opts)))

	a := analyzer.New(opts...)

	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil || a.Flags.Lookup(f.Name) == nil {
			return
		}

		err = a.Flags.Set(f.Name, f.Value.String())
	})

	return a, err
}

func checkFile(ctx context.Context, a *analyzer.Analyzer, parser *jsparse.Parser, fset *token.FileSet, name string) fileResult {
	result := fileResult{name: name}

	content, err := os.ReadFile(name)
	if err != nil {
		result.err = err

		return result
	}

	f, err := parser.Parse(ctx, fset, name, content)
	if err != nil {
		result.err = err

		return result
	}

	p := &analyzer.Pass{
		Fset:   fset,
		File:   f,
		Report: func(d analysis.Diagnostic) { result.diagnostics = append(result.diagnostics, d) },
	}

	result.err = a.Run(ctx, p)

	return result
}

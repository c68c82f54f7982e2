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

package analyzer

import (
	"context"
	"flag"

	"fillmore-labs.com/protoscope/internal/run"
	"fillmore-labs.com/protoscope/jsast"
)

// Public API constants for the protoscope analyzer.
const (
	name = "protoscope"
	doc  = `protoscope detects legacy prototype composition patterns in JavaScript`
	url  = "https://pkg.go.dev/fillmore-labs.com/protoscope"
)

// Pass provides one parsed file to [Analyzer.Run].
type Pass = run.Pass

// Analyzer is a configured protoscope analysis pass.
type Analyzer struct {
	Name string
	Doc  string
	URL  string

	// Flags defines any flags accepted by the analyzer.
	Flags flag.FlagSet

	options *run.Options
}

// New creates a new instance of the protoscope analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Default] variable is typically sufficient.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &Analyzer{
		Name:    name,
		Doc:     doc,
		URL:     url,
		options: r,
	}

	a.Flags.Init(name, flag.ContinueOnError)
	registerFlags(&a.Flags, r)

	return a
}

// Run analyzes the file of p, reporting diagnostics through p.Report.
//
// Run is safe for concurrent use on distinct passes.
func (a *Analyzer) Run(ctx context.Context, p *Pass) error {
	return a.options.Run(ctx, p)
}

// Extensions returns the optional syntax the analyzed trees may contain.
// Drivers configure their parser accordingly.
func (a *Analyzer) Extensions() jsast.Extensions {
	return a.options.Extensions
}

// Default is a pre-configured *[Analyzer] for detecting legacy prototype composition.
var Default = New()

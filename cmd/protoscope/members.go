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
	"fmt"
	"go/token"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fillmore-labs.com/protoscope/internal/jsparse"
	"fillmore-labs.com/protoscope/internal/level"
	"fillmore-labs.com/protoscope/jsast"
	"fillmore-labs.com/protoscope/resolve"
)

type membersOptions struct {
	*globalOptions

	dynamicImport bool
}

func newMembersCmd(g *globalOptions) *cobra.Command {
	o := &membersOptions{globalOptions: g}

	cmd := &cobra.Command{
		Use:   "members [flags] file name",
		Short: "Print the members an object receives at program scope",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&o.dynamicImport, "dynamic-import", true, "source may contain dynamic import")

	return cmd
}

// descriptor is a resolved member descriptor.
type descriptor struct {
	Key    string `json:"key"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Value  string `json:"value,omitempty"`
}

// memberReport is the outcome of a members query.
type memberReport struct {
	Name        string       `json:"name"`
	Resolved    bool         `json:"resolved"`
	Descriptors []descriptor `json:"descriptors"`
	Members     []string     `json:"members"`
	Error       string       `json:"error,omitempty"`
}

func (o *membersOptions) run(cmd *cobra.Command, filename, name string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var ext jsast.Extensions
	ext.Set(jsast.DynamicImport, o.dynamicImport)

	fset := token.NewFileSet()

	f, err := jsparse.New(jsparse.WithExtensions(ext)).Parse(cmd.Context(), fset, filename, content)
	if err != nil {
		return err
	}

	r := resolve.New(resolve.WithLogger(o.logger()))

	props, err := r.Properties(f.Program.Scope(), &jsast.Identifier{Name: name})
	if err != nil {
		return fmt.Errorf("can't resolve members of '%s': %w", name, err)
	}

	report := memberReport{
		Name:        name,
		Resolved:    props.Resolved(),
		Descriptors: []descriptor{},
		Members:     []string{},
	}

	for p := range props.All() {
		pos := fset.Position(p.Source.Pos())
		report.Descriptors = append(report.Descriptors, descriptor{
			Key:    keyText(p),
			Line:   pos.Line,
			Column: pos.Column,
			Value:  valueText(p.Value),
		})
	}

	members, err := props.Group()
	switch {
	case err != nil:
		report.Error = err.Error()

	case members.Resolved():
		report.Members = members.Names()
	}

	if err := o.printMembers(report); err != nil {
		return err
	}

	if report.Error != "" {
		return fmt.Errorf("can't group members of '%s': %w", name, err)
	}

	return nil
}

func (o *membersOptions) printMembers(report memberReport) error {
	if o.format == level.FormatJSON {
		return writeJSON(o.stdout, report)
	}

	p := newPalette(o.colored())

	for _, d := range report.Descriptors {
		pos := p.position.Sprintf("%d:%d:", d.Line, d.Column)
		if _, err := fmt.Fprintf(o.stdout, "%s %s = %s\n", pos, d.Key, d.Value); err != nil {
			return err
		}
	}

	quoted := make([]string, len(report.Members))
	for i, m := range report.Members {
		quoted[i] = "'" + m + "'"
	}

	_, err := fmt.Fprintf(o.stdout, "Members of '%s': %s\n", report.Name, strings.Join(quoted, ", "))

	return err
}

func keyText(p resolve.Property) string {
	if name, err := p.Name(); err == nil {
		return name
	}

	switch key := p.Key.(type) {
	case nil:
		return "..."

	case *jsast.Identifier:
		return "[" + key.Name + "]"

	case *jsast.Literal:
		if p.Computed {
			return "[" + key.Raw + "]"
		}

		return key.Raw

	default:
		return "[" + key.Kind().String() + "]"
	}
}

func valueText(v jsast.Expr) string {
	switch v := v.(type) {
	case nil:
		return "undefined"

	case *jsast.Identifier:
		return v.Name

	case *jsast.Literal:
		return v.Raw

	default:
		return v.Kind().String()
	}
}

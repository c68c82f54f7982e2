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

// Package testsource provides utilities for parsing JavaScript source code in tests.
//
// It is designed to simplify testing of the protoscope packages by handling common
// boilerplate code for parsing source fragments and locating nodes.
package testsource

import (
	"bytes"
	"go/token"
	"testing"

	"fillmore-labs.com/protoscope/internal/jsparse"
	"fillmore-labs.com/protoscope/jsast"
)

const filename = "test.js"

// Parse parses a JavaScript source fragment into a syntax tree.
func Parse(tb testing.TB, src string, opts ...jsparse.Option) (*token.FileSet, *jsast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := jsparse.New(opts...).Parse(tb.Context(), fset, filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// ParseBody parses a JavaScript statement fragment.
// The provided source `src` is automatically wrapped in a function body `function _() { ... }`.
// This allows testing function scopes without manually constructing the surrounding function.
//
// Returns:
//   - *jsast.File: The parsed tree of the source file.
//   - *jsast.FunctionDeclaration: The function declaration wrapping the source code.
//   - jsast.Scope: The statements of the wrapper function's body.
func ParseBody(tb testing.TB, src string) (*jsast.File, *jsast.FunctionDeclaration, jsast.Scope) {
	tb.Helper()

	_, f := Parse(tb, wrapSource(src).String())

	fn := First[*jsast.FunctionDeclaration](f.Program)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return f, fn, fn.Body.Scope()
}

// First returns the first node of type N in pre-order below root, or the zero value.
func First[N jsast.Node](root jsast.Node) N {
	var found N

	ok := false
	jsast.Inspect(root, func(n jsast.Node) bool {
		if ok {
			return false
		}

		found, ok = n.(N)

		return !ok
	})

	return found
}

// All returns all nodes of type N in pre-order below root.
func All[N jsast.Node](root jsast.Node) []N {
	var nodes []N

	jsast.Inspect(root, func(n jsast.Node) bool {
		if n, ok := n.(N); ok {
			nodes = append(nodes, n)
		}

		return true
	})

	return nodes
}

// Expr parses a single JavaScript expression.
func Expr(tb testing.TB, src string) jsast.Expr {
	tb.Helper()

	_, f := Parse(tb, "("+src+");")

	if len(f.Program.Body) != 1 {
		tb.Fatalf("Expected a single statement for %q", src)
	}

	stmt, ok := f.Program.Body[0].(*jsast.ExpressionStatement)
	if !ok {
		tb.Fatalf("Expected an expression statement for %q, got %T", src, f.Program.Body[0])
	}

	return stmt.Expression
}

func wrapSource(src string) *bytes.Buffer {
	const (
		header     = "function _() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}

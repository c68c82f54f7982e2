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

// Package jsparse builds [jsast] trees from JavaScript source using tree-sitter.
package jsparse

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"fillmore-labs.com/protoscope/jsast"
)

var (
	// ErrFileTooLarge is returned for sources exceeding the configured maximum size.
	ErrFileTooLarge = errors.New("file too large")

	// ErrInvalidContent is returned for sources that are not valid UTF-8.
	ErrInvalidContent = errors.New("content is not valid UTF-8")

	// ErrSyntax is returned when the source does not parse cleanly.
	ErrSyntax = errors.New("syntax error")
)

// SyntaxError reports the first erroneous or missing construct of a source.
type SyntaxError struct {
	Position token.Position
	Missing  bool
}

func (e *SyntaxError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: %v: missing token", e.Position, ErrSyntax)
	}

	return fmt.Sprintf("%s: %v", e.Position, ErrSyntax)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Options configures [Parser] behavior.
type Options struct {
	// MaxFileSize is the maximum source size in bytes.
	// Default: 10MB
	MaxFileSize int

	// Extensions lists the optional syntax the produced trees may contain.
	// Without [jsast.DynamicImport], import(...) callees become opaque nodes.
	// Default: all extensions
	Extensions jsast.Extensions
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		MaxFileSize: 10 * 1024 * 1024, // 10MB
		Extensions:  jsast.NewExtensions(jsast.DynamicImport),
	}
}

// Option is a functional option for configuring [Parser].
type Option func(*Options)

// WithMaxFileSize sets the maximum source size.
func WithMaxFileSize(size int) Option {
	return func(o *Options) {
		o.MaxFileSize = size
	}
}

// WithExtensions sets the optional syntax extensions.
func WithExtensions(ext jsast.Extensions) Option {
	return func(o *Options) {
		o.Extensions = ext
	}
}

// Parser converts JavaScript sources into [jsast.File] trees.
//
// Parser is safe for concurrent use, every Parse call creates its own
// tree-sitter parser instance.
type Parser struct {
	options Options
}

// New creates a [Parser] with the given options.
func New(opts ...Option) *Parser {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Parser{options: options}
}

// Parse parses content and registers it under filename in fset.
func (p *Parser) Parse(ctx context.Context, fset *token.FileSet, filename string, content []byte) (*jsast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s canceled before start: %w", filename, err)
	}

	if len(content) > p.options.MaxFileSize {
		return nil, fmt.Errorf("%s: %w (%d bytes)", filename, ErrFileTooLarge, len(content))
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", filename, ErrInvalidContent)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse of %s failed: %w", filename, err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s canceled after tree-sitter: %w", filename, err)
	}

	tf := fset.AddFile(filename, -1, len(content))
	tf.SetLinesForContent(content)

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(tf, root)
	}

	c := converter{
		content: content,
		file:    tf,
		ext:     p.options.Extensions,
	}

	return &jsast.File{
		Name:     filename,
		Program:  c.program(root),
		Comments: c.comments,
		Syntax:   p.options.Extensions,
	}, nil
}

// syntaxError locates the first error or missing node below root.
func syntaxError(tf *token.File, root *sitter.Node) error {
	var (
		first   *sitter.Node
		missing bool
	)

	var find func(n *sitter.Node) bool
	find = func(n *sitter.Node) bool {
		if n.IsError() || n.IsMissing() {
			first, missing = n, n.IsMissing()

			return true
		}

		for i := range int(n.ChildCount()) {
			if child := n.Child(i); child != nil && (child.HasError() || child.IsMissing()) && find(child) {
				return true
			}
		}

		return false
	}

	if !find(root) {
		first = root
	}

	return &SyntaxError{Position: tf.PositionFor(tf.Pos(int(first.StartByte())), false), Missing: missing}
}

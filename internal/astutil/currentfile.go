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

package astutil

import (
	"go/token"
	"regexp"
	"strings"

	"fillmore-labs.com/protoscope/jsast"
)

// protoscope is the name of the linter.
const protoscope = "protoscope"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *jsast.File
	handle    *token.File
	generated bool
	nolint    bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and a *[jsast.File].
func NewCurrentFile(fset *token.FileSet, file *jsast.File) CurrentFile {
	if file == nil || file.Program == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.Pos())
	if handle == nil {
		return CurrentFile{}
	}

	c := CurrentFile{file: file, handle: handle}

	// Inspect the comments preceding the first statement
	for _, comment := range leadingComments(file) {
		text := comment.Text()

		if IsGeneratedComment(text) {
			c.generated = true
		}

		if CommentHasNoLint(text) {
			c.nolint = true
		}
	}

	return c
}

func leadingComments(file *jsast.File) []jsast.Comment {
	if len(file.Program.Body) == 0 {
		return file.Comments
	}

	first := file.Program.Body[0].Pos()
	for i, comment := range file.Comments {
		if comment.Pos() >= first {
			return file.Comments[:i]
		}
	}

	return file.Comments
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint returns true if the file header disables this linter.
func (c CurrentFile) NoLint() bool {
	return c.nolint
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment checks if a line is followed by a //nolint:protoscope comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	line := c.line(pos)

	// find the comments starting after the reported position
	for _, comment := range c.file.CommentsFrom(pos) {
		if c.line(comment.Pos()) != line {
			return false // not on this line
		}

		if CommentHasNoLint(comment.Text()) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment text contains a `// nolint:protoscope` directive.
func CommentHasNoLint(text string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == protoscope || l == "all" {
			return true
		}
	}

	return false
}

var generatedPattern = regexp.MustCompile(`(?m)@generated\b|^(?://|/\*)?\s*Code generated .* DO NOT EDIT\.`)

// IsGeneratedComment reports whether a comment marks its file as generated.
func IsGeneratedComment(text string) bool {
	return generatedPattern.MatchString(text)
}

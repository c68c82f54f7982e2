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

package jsast

import (
	"go/token"
	"slices"
)

// File is a parsed source file.
type File struct {
	Name     string
	Program  *Program
	Comments []Comment // sorted by position

	// Syntax lists the optional syntax extensions the producing parser supports.
	Syntax Extensions
}

// Pos returns the start position of the file.
func (f *File) Pos() token.Pos {
	if f == nil || f.Program == nil {
		return token.NoPos
	}

	return f.Program.Pos()
}

// CommentsFrom returns the comments starting at or after pos.
func (f *File) CommentsFrom(pos token.Pos) []Comment {
	i, _ := slices.BinarySearchFunc(f.Comments, pos,
		func(c Comment, p token.Pos) int { return int(c.Pos() - p) })

	return f.Comments[i:]
}

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

// Package scope indexes the statement lists of a file that are analyzed as one unit.
package scope

import (
	"iter"

	"fillmore-labs.com/protoscope/jsast"
)

// Scope is a single-level statement list together with the node owning it.
type Scope struct {
	// Owner is the *jsast.Program or the function node whose body this is.
	Owner jsast.Node

	// Body lists the statements of the scope.
	Body jsast.Scope
}

// Index lists the scopes of a file: the program first, then all
// function bodies in source order, including class methods.
type Index []Scope

// NewIndex collects the scopes of a program.
func NewIndex(p *jsast.Program) Index {
	if p == nil {
		return nil
	}

	s := Index{{Owner: p, Body: p.Scope()}}

	jsast.Inspect(p, func(n jsast.Node) bool {
		if body, ok := jsast.FunctionBody(n); ok {
			s = append(s, Scope{Owner: n, Body: body})
		}

		return true
	})

	return s
}

// All yields the scopes in index order.
func (s Index) All() iter.Seq[Scope] {
	return func(yield func(Scope) bool) {
		for _, sc := range s {
			if !yield(sc) {
				return
			}
		}
	}
}

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
	"iter"

	"fillmore-labs.com/protoscope/jsast"
)

// AllDeclared yields all declared names with their initializers.
// Declarators binding patterns or without initializer are skipped.
func AllDeclared(decl *jsast.VariableDeclaration) iter.Seq2[*jsast.Identifier, jsast.Expr] {
	return func(yield func(*jsast.Identifier, jsast.Expr) bool) {
		for _, d := range decl.Declarations {
			id, ok := d.ID.(*jsast.Identifier)
			if !ok || d.Init == nil {
				continue
			}

			if !yield(id, d.Init) {
				return
			}
		}
	}
}

// Assigned returns the target name and value of a plain assignment name = value.
func Assigned(stmt *jsast.ExpressionStatement) (*jsast.Identifier, jsast.Expr, bool) {
	asgn, ok := stmt.Expression.(*jsast.AssignmentExpression)
	if !ok || asgn.Operator != "=" {
		return nil, nil, false
	}

	id, ok := asgn.Left.(*jsast.Identifier)
	if !ok {
		return nil, nil, false
	}

	return id, asgn.Right, true
}

// AllCalls yields the calls inside n in pre-order, without entering nested
// function or class bodies below n.
func AllCalls(n jsast.Node) iter.Seq[*jsast.CallExpression] {
	return func(yield func(*jsast.CallExpression) bool) {
		done := false

		jsast.Inspect(n, func(node jsast.Node) bool {
			if done {
				return false
			}

			switch node := node.(type) {
			case *jsast.FunctionDeclaration, *jsast.FunctionExpression, *jsast.ArrowFunctionExpression,
				*jsast.ClassDeclaration, *jsast.ClassExpression:
				return node == n

			case *jsast.CallExpression:
				if !yield(node) {
					done = true

					return false
				}
			}

			return true
		})
	}
}

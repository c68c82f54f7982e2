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

import "fmt"

// Inspect traverses the tree rooted at n in depth-first order. It starts by
// calling f(n); if f returns true, Inspect invokes f recursively for each of
// the non-nil children of n.
//
// Unlike scope-bound analyses, Inspect descends into function and class bodies.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case *ArrowFunctionExpression:
		inspectList(n.Params, f)
		Inspect(n.Body, f)

	case *AssignmentExpression:
		Inspect(n.Left, f)
		Inspect(n.Right, f)

	case *BlockStatement:
		inspectList(n.Body, f)

	case *CallExpression:
		Inspect(n.Callee, f)
		inspectList(n.Arguments, f)

	case *ClassBody:
		inspectList(n.Body, f)

	case *ClassDeclaration:
		inspectIdent(n.ID, f)
		Inspect(n.SuperClass, f)
		inspectClassBody(n.Body, f)

	case *ClassExpression:
		inspectIdent(n.ID, f)
		Inspect(n.SuperClass, f)
		inspectClassBody(n.Body, f)

	case *ExpressionStatement:
		Inspect(n.Expression, f)

	case *FunctionDeclaration:
		inspectIdent(n.ID, f)
		inspectList(n.Params, f)
		inspectBlock(n.Body, f)

	case *FunctionExpression:
		inspectIdent(n.ID, f)
		inspectList(n.Params, f)
		inspectBlock(n.Body, f)

	case *MemberExpression:
		Inspect(n.Object, f)
		Inspect(n.Property, f)

	case *MethodDefinition:
		Inspect(n.Key, f)

		if n.Value != nil {
			Inspect(n.Value, f)
		}

	case *ObjectExpression:
		inspectList(n.Properties, f)

	case *Opaque:
		inspectList(n.Children, f)

	case *Program:
		inspectList(n.Body, f)

	case *Property:
		Inspect(n.Key, f)

		if !n.Shorthand {
			Inspect(n.Value, f)
		}

	case *PropertyDefinition:
		Inspect(n.Key, f)
		Inspect(n.Value, f)

	case *ReturnStatement:
		Inspect(n.Argument, f)

	case *SpreadElement:
		Inspect(n.Argument, f)

	case *VariableDeclaration:
		for _, d := range n.Declarations {
			if d != nil {
				Inspect(d, f)
			}
		}

	case *VariableDeclarator:
		Inspect(n.ID, f)
		Inspect(n.Init, f)

	case *CommentBlock, *CommentLine, *Identifier, *Import, *Literal, *Super, *ThisExpression:
		// leaves

	default:
		panic(fmt.Sprintf("jsast.Inspect: unexpected node type %T", n))
		// keep-sorted end
	}
}

func inspectList[N Node](list []N, f func(Node) bool) {
	for _, n := range list {
		Inspect(n, f)
	}
}

func inspectIdent(id *Identifier, f func(Node) bool) {
	if id != nil {
		Inspect(id, f)
	}
}

func inspectBlock(b *BlockStatement, f func(Node) bool) {
	if b != nil {
		Inspect(b, f)
	}
}

func inspectClassBody(b *ClassBody, f func(Node) bool) {
	if b != nil {
		Inspect(b, f)
	}
}


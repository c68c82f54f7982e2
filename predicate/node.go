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

package predicate

import "fillmore-labs.com/protoscope/jsast"

// IsImport reports whether n is the dynamic-import marker.
//
// Dynamic import is an optional syntax extension: unless the caller declares
// it in ext, the answer is false without inspecting n.
func IsImport(n jsast.Node, ext jsast.Extensions) bool {
	if !ext.Enabled(jsast.DynamicImport) {
		return false
	}

	_, ok := n.(*jsast.Import)

	return ok
}

// IsIdentifierNamed reports whether n is an identifier with exactly the given name.
func IsIdentifierNamed(n jsast.Node, name string) bool {
	id, ok := n.(*jsast.Identifier)

	return ok && id.Name == name
}

// IsCommentBlock reports whether n is a block comment.
func IsCommentBlock(n jsast.Node) bool {
	_, ok := n.(*jsast.CommentBlock)

	return ok
}

// IsSuperCall reports whether n is a call whose callee is exactly super.
// Member calls like super.method() do not qualify.
func IsSuperCall(n jsast.Node) bool {
	call, ok := n.(*jsast.CallExpression)
	if !ok {
		return false
	}

	_, ok = call.Callee.(*jsast.Super)

	return ok
}

// IsFunction reports whether n is a function declaration, function expression or arrow function.
func IsFunction(n jsast.Node) bool {
	switch n.(type) {
	case *jsast.FunctionDeclaration, *jsast.FunctionExpression, *jsast.ArrowFunctionExpression:
		return true

	default:
		return false
	}
}

// IsClass reports whether n is a class declaration or expression.
func IsClass(n jsast.Node) bool {
	switch n.(type) {
	case *jsast.ClassDeclaration, *jsast.ClassExpression:
		return true

	default:
		return false
	}
}

// IDName returns the name of the id of a declaration-like node.
func IDName(n jsast.Node) (string, bool) {
	var id *jsast.Identifier

	switch n := n.(type) {
	case *jsast.FunctionDeclaration:
		id = n.ID

	case *jsast.FunctionExpression:
		id = n.ID

	case *jsast.ClassDeclaration:
		id = n.ID

	case *jsast.ClassExpression:
		id = n.ID

	case *jsast.VariableDeclarator:
		id, _ = n.ID.(*jsast.Identifier)
	}

	if id == nil {
		return "", false
	}

	return id.Name, true
}

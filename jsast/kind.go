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

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies the concrete type of a [Node].
type Kind uint8

const (
	KindInvalid Kind = iota

	// expressions
	KindIdentifier
	KindThisExpression
	KindSuper
	KindImport
	KindLiteral
	KindMemberExpression
	KindCallExpression
	KindObjectExpression
	KindSpreadElement
	KindAssignmentExpression
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression

	// object and class members
	KindProperty
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition

	// statements
	KindFunctionDeclaration
	KindClassDeclaration
	KindVariableDeclaration
	KindVariableDeclarator
	KindExpressionStatement
	KindBlockStatement
	KindReturnStatement
	KindProgram

	// comments
	KindCommentBlock
	KindCommentLine

	// KindOpaque marks constructs outside of this vocabulary.
	KindOpaque
)

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

// Package normalize converts declaration-form nodes into equivalent expression-form nodes.
//
// Merge call arguments and other expression slots cannot hold declarations,
// so a rewriter moving a function or class declaration into such a slot
// needs the expression form.
package normalize

import (
	"errors"
	"fmt"

	"fillmore-labs.com/protoscope/jsast"
)

// ErrNoExpressionForm is returned for statements that have no expression equivalent.
var ErrNoExpressionForm = errors.New("no expression form")

// ToExpression returns n in expression form.
//
// Expressions are returned unchanged, which makes ToExpression idempotent.
// Function and class declarations are converted into new expression nodes
// sharing id, parameters, body and flags with the declaration; the
// declaration itself is not modified.
func ToExpression(n jsast.Node) (jsast.Expr, error) {
	switch n := n.(type) {
	case jsast.Expr:
		return n, nil

	case *jsast.FunctionDeclaration:
		return FunctionExpression(n), nil

	case *jsast.ClassDeclaration:
		return ClassExpression(n), nil

	case nil:
		return nil, fmt.Errorf("<nil>: %w", ErrNoExpressionForm)

	default:
		return nil, fmt.Errorf("%s: %w", n.Kind(), ErrNoExpressionForm)
	}
}

// FunctionExpression converts a function declaration into a function expression.
func FunctionExpression(decl *jsast.FunctionDeclaration) *jsast.FunctionExpression {
	return &jsast.FunctionExpression{
		Span:      decl.Span,
		ID:        decl.ID,
		Params:    decl.Params,
		Body:      decl.Body,
		Generator: decl.Generator,
		Async:     decl.Async,
	}
}

// ClassExpression converts a class declaration into a class expression.
func ClassExpression(decl *jsast.ClassDeclaration) *jsast.ClassExpression {
	return &jsast.ClassExpression{
		Span:       decl.Span,
		ID:         decl.ID,
		SuperClass: decl.SuperClass,
		Body:       decl.Body,
	}
}

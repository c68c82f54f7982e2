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

// Scope is the ordered statement list of exactly one nesting level.
type Scope []Stmt

// Scope returns the top-level statements of the program.
func (p *Program) Scope() Scope {
	if p == nil {
		return nil
	}

	return p.Body
}

// Scope returns the statements of the block.
func (b *BlockStatement) Scope() Scope {
	if b == nil {
		return nil
	}

	return b.Body
}

// FunctionBody returns the body scope of a function-like node.
// Arrow functions with an expression body have no scope.
func FunctionBody(n Node) (Scope, bool) {
	switch n := n.(type) {
	case *FunctionDeclaration:
		return n.Body.Scope(), n.Body != nil

	case *FunctionExpression:
		return n.Body.Scope(), n.Body != nil

	case *ArrowFunctionExpression:
		b, ok := n.Body.(*BlockStatement)

		return b.Scope(), ok

	default:
		return nil, false
	}
}

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

package scope

import (
	"fillmore-labs.com/protoscope/jsast"
	"fillmore-labs.com/protoscope/predicate"
)

// Name returns a human-readable name for the scope owner.
func Name(node jsast.Node) string {
	switch node.(type) {
	// keep-sorted start newline_separated=yes
	case *jsast.ArrowFunctionExpression:
		return "arrow function"

	case *jsast.FunctionDeclaration, *jsast.FunctionExpression:
		if name, ok := predicate.IDName(node); ok {
			return "function '" + name + "'"
		}

		return "function"

	case *jsast.Program:
		return "program"

	case nil:
		return "<nil>"
		// keep-sorted end

	default:
		return node.Kind().String()
	}
}

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

// Package thisctx answers whether an expression depends on the enclosing instance context.
package thisctx

import "fillmore-labs.com/protoscope/jsast"

// Uses reports whether n depends on the instance context of its enclosing method.
//
// The scan is bounded: it follows call callees and arguments and the object
// side of member accesses. True scenarios include:
//
//	this
//	this.a.b
//	this.thing()
//	method(this)
//	method(this.a)
//
// Function and class literals bind their own instance context and are never
// entered, so method(function () { return this }) does not count.
func Uses(n jsast.Node) bool {
	switch n := n.(type) {
	case *jsast.ThisExpression:
		return true

	case *jsast.CallExpression:
		if Uses(n.Callee) {
			return true
		}

		for _, arg := range n.Arguments {
			if Uses(arg) {
				return true
			}
		}

		return false

	case *jsast.MemberExpression:
		// The property side never refers to the instance, even when computed.
		return Uses(n.Object)

	default:
		return false
	}
}

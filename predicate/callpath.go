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

import (
	"strings"

	"fillmore-labs.com/protoscope/jsast"
)

// IsCallTo reports whether n is a call of the dotted path, such as
// "sap.ui.define" or "Base.prototype.init.apply".
//
// The tree nests member accesses innermost segment outward (apply, then
// init, then prototype, then Base), so the callee chain is compared against
// the path read in reverse. The chain must match the path exactly: a longer
// chain ending in the same segments does not qualify.
func IsCallTo(n jsast.Node, path string) bool {
	call, ok := n.(*jsast.CallExpression)
	if !ok || path == "" {
		return false
	}

	node, segments := call.Callee, strings.Split(path, ".")

	for i := len(segments) - 1; i >= 0; i-- {
		switch e := node.(type) {
		case *jsast.Identifier:
			// The innermost object ends the chain, it must consume the path.
			return i == 0 && e.Name == segments[0]

		case *jsast.MemberExpression:
			if i == 0 || e.Computed || !IsIdentifierNamed(e.Property, segments[i]) {
				return false
			}

			node = e.Object

		default:
			return false
		}
	}

	return false
}

// IsSuperPrototypeCall reports whether n dispatches explicitly to the
// superclass prototype: <superClass>.prototype.<method>.apply(...).
func IsSuperPrototypeCall(n jsast.Node, superClass, method string) bool {
	return IsCallTo(n, superClass+".prototype."+method+".apply")
}

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

const (
	// mergeObject and mergeProperty name the merge primitive, matched as object.property.
	mergeObject, mergeProperty = "Object", "assign"

	// extendsHelper is the conventional name of the inheritance helper emitted for class syntax.
	extendsHelper = "_extends"
)

// IsMergeCall reports whether n combines object-like sources into one,
// either through the merge primitive or the synthetic inheritance helper.
func IsMergeCall(n jsast.Node) bool {
	return IsObjectAssign(n) || IsExtendsHelper(n)
}

// IsObjectAssign reports whether n is a call of Object.assign.
func IsObjectAssign(n jsast.Node) bool {
	call, ok := n.(*jsast.CallExpression)
	if !ok {
		return false
	}

	callee, ok := call.Callee.(*jsast.MemberExpression)
	if !ok || callee.Computed {
		return false
	}

	return IsIdentifierNamed(callee.Object, mergeObject) && IsIdentifierNamed(callee.Property, mergeProperty)
}

// IsExtendsHelper reports whether n is a call of the _extends helper.
func IsExtendsHelper(n jsast.Node) bool {
	call, ok := n.(*jsast.CallExpression)

	return ok && IsIdentifierNamed(call.Callee, extendsHelper)
}

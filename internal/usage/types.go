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

package usage

import "fillmore-labs.com/protoscope/jsast"

// Method is a named function member of a class body or object literal.
type Method struct {
	Name string
	Def  jsast.Node // *jsast.MethodDefinition or *jsast.Property
	Func *jsast.FunctionExpression
}

// Dispatch is an explicit call of the superclass implementation of a method,
// like Base.prototype.m.apply(this, arguments) inside m.
type Dispatch struct {
	Method     Method
	SuperClass string
	Call       *jsast.CallExpression
}

// InstanceUse is a member whose initializer depends on the instance context.
type InstanceUse struct {
	Name   string
	Member jsast.Node
	Value  jsast.Expr
}

// Result holds the uses found for one target.
type Result struct {
	Dispatches []Dispatch
	Instance   []InstanceUse
}

// Empty reports whether no uses were found.
func (r Result) Empty() bool {
	return len(r.Dispatches) == 0 && len(r.Instance) == 0
}

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

package target

import "fillmore-labs.com/protoscope/jsast"

// Shape classifies the value bound to a target name.
type Shape uint8

const (
	// ShapeMerge is a merge call, Object.assign(...) or _extends(...).
	ShapeMerge Shape = iota

	// ShapeClass is a class declaration or expression.
	ShapeClass

	// ShapeObject is an object literal.
	ShapeObject
)

// String returns the name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeMerge:
		return "merge"

	case ShapeClass:
		return "class"

	case ShapeObject:
		return "object"

	default:
		return "unknown"
	}
}

// Target is a name in a scope bound to a composed value.
type Target struct {
	// Name is the bound name.
	Name *jsast.Identifier

	// Binding is the declaration, assignment statement or class declaration establishing the binding.
	Binding jsast.Node

	// Value is the bound merge call, class expression or object literal.
	// Class declarations are held in expression form.
	Value jsast.Node

	// Shape classifies Value.
	Shape Shape
}

// Call returns the merge call of a [ShapeMerge] target.
func (t Target) Call() (*jsast.CallExpression, bool) {
	if t.Shape != ShapeMerge {
		return nil, false
	}

	call, ok := t.Value.(*jsast.CallExpression)

	return call, ok
}

// SuperClass returns the superclass expression of a [ShapeClass] target.
func (t Target) SuperClass() jsast.Expr {
	if c, ok := t.Value.(*jsast.ClassExpression); ok {
		return c.SuperClass
	}

	return nil
}

// ClassBody returns the body of a [ShapeClass] target.
func (t Target) ClassBody() *jsast.ClassBody {
	if c, ok := t.Value.(*jsast.ClassExpression); ok {
		return c.Body
	}

	return nil
}

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

// Package target finds the names in a scope that are bound to composed values.
package target

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/protoscope/internal/astutil"
	"fillmore-labs.com/protoscope/jsast"
	"fillmore-labs.com/protoscope/normalize"
	"fillmore-labs.com/protoscope/predicate"
)

// Collect returns the targets bound by the statements of scope, in statement order:
//
//	var X = Object.assign(...)   // merge
//	X = _extends(...)            // merge
//	class X { ... }              // class
//	var X = class { ... }        // class
//	var X = { ... }              // object
func Collect(ctx context.Context, scope jsast.Scope) []Target {
	defer trace.StartRegion(ctx, "Target").End()

	var targets []Target

	for _, stmt := range scope {
		switch s := stmt.(type) {
		case *jsast.VariableDeclaration:
			for id, init := range astutil.AllDeclared(s) {
				if shape, ok := classify(init); ok {
					targets = append(targets, Target{Name: id, Binding: s, Value: init, Shape: shape})
				}
			}

		case *jsast.ExpressionStatement:
			id, value, ok := astutil.Assigned(s)
			if !ok {
				continue
			}

			if shape, ok := classify(value); ok {
				targets = append(targets, Target{Name: id, Binding: s, Value: value, Shape: shape})
			}

		case *jsast.ClassDeclaration:
			if s.ID != nil {
				targets = append(targets, Target{Name: s.ID, Binding: s, Value: normalize.ClassExpression(s), Shape: ShapeClass})
			}
		}
	}

	return targets
}

func classify(value jsast.Expr) (Shape, bool) {
	switch {
	case predicate.IsMergeCall(value):
		return ShapeMerge, true

	case predicate.IsClass(value):
		return ShapeClass, true
	}

	if _, ok := value.(*jsast.ObjectExpression); ok {
		return ShapeObject, true
	}

	return 0, false
}

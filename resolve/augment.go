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

package resolve

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/protoscope/jsast"
)

// resolution is the state of one top-level resolution request.
type resolution struct {
	logger *slog.Logger
	scope  jsast.Scope

	// inProgress holds the names whose augmentation is currently being
	// resolved, outermost first. A name appearing twice is a cycle.
	inProgress []string
}

func (res *resolution) properties(target jsast.Node) (props []Property, ok bool, err error) {
	switch t := target.(type) {
	case *jsast.FunctionDeclaration, *jsast.FunctionExpression, *jsast.ArrowFunctionExpression:
		return nil, false, nil

	case *jsast.ObjectExpression:
		return ObjectProperties(t), true, nil

	case *jsast.ClassDeclaration:
		props, err = res.class(t.ID, t.Body)

		return props, err == nil, err

	case *jsast.ClassExpression:
		props, err = res.class(t.ID, t.Body)

		return props, err == nil, err

	case *jsast.Identifier:
		props, err = res.augmentation(t.Name)

		return props, err == nil, err

	case *jsast.CallExpression:
		call, merge := isMergeCall(t)
		if !merge {
			return nil, false, nil
		}

		props, err = res.mergeArguments(call)

		return props, err == nil, err

	default:
		return nil, false, nil
	}
}

// class returns the static members followed by the augmentation of the class name.
// Anonymous class expressions only have static members.
func (res *resolution) class(id *jsast.Identifier, body *jsast.ClassBody) ([]Property, error) {
	props := StaticMembers(body)

	if id == nil {
		return props, nil
	}

	augmented, err := res.augmentation(id.Name)
	if err != nil {
		return nil, err
	}

	return append(props, augmented...), nil
}

// augmentation scans the scope once, in order, for statements adding members to name.
func (res *resolution) augmentation(name string) ([]Property, error) {
	if slices.Contains(res.inProgress, name) {
		path := append(slices.Clone(res.inProgress), name)

		return nil, &CycleError{Path: path}
	}

	res.inProgress = append(res.inProgress, name)
	defer func() { res.inProgress = res.inProgress[:len(res.inProgress)-1] }()

	var props []Property

	for _, stmt := range res.scope {
		switch s := stmt.(type) {
		case *jsast.ExpressionStatement:
			if p, ok := assignedProperties(s.Expression, name); ok {
				props = append(props, p...)
			}

		case *jsast.VariableDeclaration:
			p, err := res.declaredProperties(s, name)
			if err != nil {
				return nil, err
			}

			props = append(props, p...)
		}
	}

	return props, nil
}

// assignedProperties handles name = { ... } and name.key = value.
func assignedProperties(expr jsast.Expr, name string) ([]Property, bool) {
	asgn, ok := expr.(*jsast.AssignmentExpression)
	if !ok || asgn.Operator != "=" {
		return nil, false
	}

	switch left := asgn.Left.(type) {
	case *jsast.Identifier:
		if left.Name != name {
			return nil, false
		}

		// name = { ... }
		if obj, ok := asgn.Right.(*jsast.ObjectExpression); ok {
			return ObjectProperties(obj), true
		}

	case *jsast.MemberExpression:
		// name.key = value, but neither name[key] = value nor name.a.b = value
		if left.Computed {
			return nil, false
		}

		if object, ok := left.Object.(*jsast.Identifier); ok && object.Name == name {
			return []Property{{Key: left.Property, Value: asgn.Right, Source: asgn}}, true
		}
	}

	return nil, false
}

// declaredProperties handles var name = { ... } and var name = merge(...).
func (res *resolution) declaredProperties(decl *jsast.VariableDeclaration, name string) ([]Property, error) {
	var props []Property

	for _, d := range decl.Declarations {
		if id, ok := d.ID.(*jsast.Identifier); !ok || id.Name != name || d.Init == nil {
			continue
		}

		if obj, ok := d.Init.(*jsast.ObjectExpression); ok {
			props = append(props, ObjectProperties(obj)...)

			continue
		}

		if call, ok := isMergeCall(d.Init); ok {
			p, err := res.mergeArguments(call)
			if err != nil {
				return nil, err
			}

			props = append(props, p...)
		}
	}

	return props, nil
}

// mergeArguments collects the contribution of each merge call argument, left to right.
func (res *resolution) mergeArguments(call *jsast.CallExpression) ([]Property, error) {
	var props []Property

	for i, arg := range call.Arguments {
		switch a := arg.(type) {
		case *jsast.ObjectExpression:
			props = append(props, ObjectProperties(a)...)

		case *jsast.Identifier:
			// Empty when the name is imported or otherwise opaque.
			p, err := res.augmentation(a.Name)
			if err != nil {
				return nil, err
			}

			props = append(props, p...)

		default:
			res.logger.Debug("Skipping opaque merge argument",
				slog.Int("argument", i), slog.String("kind", kindOf(arg)), slog.Any("resolving", res.inProgress))
		}
	}

	return props, nil
}

func kindOf(n jsast.Node) string {
	if n == nil {
		return "<nil>"
	}

	return n.Kind().String()
}

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

// Package usage detects superclass dispatch and instance context use in composed values.
package usage

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/protoscope/internal/astutil"
	"fillmore-labs.com/protoscope/internal/config"
	"fillmore-labs.com/protoscope/internal/target"
	"fillmore-labs.com/protoscope/jsast"
	"fillmore-labs.com/protoscope/predicate"
	"fillmore-labs.com/protoscope/resolve"
	"fillmore-labs.com/protoscope/thisctx"
)

// Stage holds the enabled rules for usage tracking.
type Stage struct {
	rules config.Rules
}

// New creates a [usage.Stage].
func New(rules config.Rules) Stage {
	return Stage{rules: rules}
}

// Track finds the uses relevant to the enabled rules in the value of t.
func (s Stage) Track(ctx context.Context, t target.Target) Result {
	defer trace.StartRegion(ctx, "Usage").End()

	var (
		superClasses []string
		methods      []Method
		members      []resolve.Property
	)

	switch t.Shape {
	case target.ShapeClass:
		if id, ok := t.SuperClass().(*jsast.Identifier); ok {
			superClasses = append(superClasses, id.Name)
		}

		body := t.ClassBody()
		methods = ClassMethods(body)
		members = resolve.StaticMembers(body)

	case target.ShapeMerge:
		call, _ := t.Call()

		// identifier arguments are the merged bases, object literals the own members
		for _, arg := range call.Arguments {
			switch a := arg.(type) {
			case *jsast.Identifier:
				superClasses = append(superClasses, a.Name)

			case *jsast.ObjectExpression:
				methods = append(methods, ObjectMethods(a)...)
				members = append(members, resolve.ObjectProperties(a)...)
			}
		}

	case target.ShapeObject:
		obj, _ := t.Value.(*jsast.ObjectExpression)
		members = resolve.ObjectProperties(obj)
	}

	var r Result

	if s.rules.Enabled(config.SuperRule) {
		r.Dispatches = SuperDispatches(superClasses, methods)
	}

	if s.rules.Enabled(config.ThisRule) {
		r.Instance = InstanceInitializers(members)
	}

	return r
}

// ClassMethods returns the non-static methods of a class body with plain names.
func ClassMethods(body *jsast.ClassBody) []Method {
	if body == nil {
		return nil
	}

	var methods []Method

	for _, member := range body.Body {
		m, ok := member.(*jsast.MethodDefinition)
		if !ok || m.Static || m.Computed || m.Value == nil {
			continue
		}

		if id, ok := m.Key.(*jsast.Identifier); ok {
			methods = append(methods, Method{Name: id.Name, Def: m, Func: m.Value})
		}
	}

	return methods
}

// ObjectMethods returns the properties of an object literal with plain names holding function expressions.
func ObjectMethods(obj *jsast.ObjectExpression) []Method {
	var methods []Method

	for _, member := range obj.Properties {
		p, ok := member.(*jsast.Property)
		if !ok || p.Computed {
			continue
		}

		id, ok := p.Key.(*jsast.Identifier)
		if !ok {
			continue
		}

		if fn, ok := p.Value.(*jsast.FunctionExpression); ok {
			methods = append(methods, Method{Name: id.Name, Def: p, Func: fn})
		}
	}

	return methods
}

// SuperDispatches returns the explicit superclass calls of each method to its own name.
// Method bodies are scanned without entering nested functions or classes.
func SuperDispatches(superClasses []string, methods []Method) []Dispatch {
	if len(superClasses) == 0 {
		return nil
	}

	var dispatches []Dispatch

	for _, m := range methods {
		if m.Func.Body == nil {
			continue
		}

		for call := range astutil.AllCalls(m.Func.Body) {
			for _, superClass := range superClasses {
				if predicate.IsSuperPrototypeCall(call, superClass, m.Name) {
					dispatches = append(dispatches, Dispatch{Method: m, SuperClass: superClass, Call: call})

					break
				}
			}
		}
	}

	return dispatches
}

// InstanceInitializers returns the members with plain names whose non-function
// initializer depends on the instance context.
func InstanceInitializers(members []resolve.Property) []InstanceUse {
	var uses []InstanceUse

	for _, p := range members {
		if p.Value == nil || predicate.IsFunction(p.Value) || predicate.IsClass(p.Value) {
			continue
		}

		name, err := p.Name()
		if err != nil {
			continue
		}

		if thisctx.Uses(p.Value) {
			uses = append(uses, InstanceUse{Name: name, Member: p.Source, Value: p.Value})
		}
	}

	return uses
}

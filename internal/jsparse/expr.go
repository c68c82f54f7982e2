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

package jsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/protoscope/jsast"
)

// expression converts n into an expression node, never returning nil.
func (c *converter) expression(n *sitter.Node) jsast.Expr {
	switch n.Type() {
	case tsIdentifier, tsPropertyIdentifier, tsShorthandPropertyIdent,
		tsPrivatePropertyIdent, tsStatementIdentifier, tsUndefined:
		return c.identifier(n)

	case tsThis:
		return &jsast.ThisExpression{Span: c.span(n)}

	case tsSuper:
		return &jsast.Super{Span: c.span(n)}

	case tsImport:
		if c.ext.Enabled(jsast.DynamicImport) {
			return &jsast.Import{Span: c.span(n)}
		}

		return c.opaque(n)

	case tsNumber, tsString, tsTemplateString, tsRegex, tsTrue, tsFalse, tsNull:
		return &jsast.Literal{Span: c.span(n), Raw: c.text(n)}

	case tsParenthesizedExpr:
		if children := namedChildren(n); len(children) == 1 {
			return c.expression(children[0])
		}

		return c.opaque(n)

	case tsMemberExpression:
		return c.member(n, n.ChildByFieldName("property"), false)

	case tsSubscriptExpression:
		return c.member(n, n.ChildByFieldName("index"), true)

	case tsCallExpression:
		return c.call(n)

	case tsObject:
		return c.object(n)

	case tsSpreadElement:
		return c.spread(n)

	case tsAssignmentExpression, tsAugmentedAssignment:
		return c.assignment(n)

	case tsFunction, tsFunctionExpression, tsGeneratorFunction:
		return &jsast.FunctionExpression{
			Span:      c.span(n),
			ID:        c.identifier(n.ChildByFieldName("name")),
			Params:    c.parameters(n.ChildByFieldName("parameters")),
			Body:      c.block(n.ChildByFieldName("body")),
			Generator: n.Type() == tsGeneratorFunction || hasToken(n, tokStar),
			Async:     hasToken(n, tokAsync),
		}

	case tsArrowFunction:
		return c.arrow(n)

	case tsClass:
		return &jsast.ClassExpression{
			Span:       c.span(n),
			ID:         c.identifier(n.ChildByFieldName("name")),
			SuperClass: c.heritage(n),
			Body:       c.classBody(n.ChildByFieldName("body")),
		}

	default:
		return c.opaque(n)
	}
}

func (c *converter) member(n, property *sitter.Node, computed bool) jsast.Expr {
	object := n.ChildByFieldName("object")
	if object == nil || property == nil {
		return c.opaque(n)
	}

	return &jsast.MemberExpression{
		Span:     c.span(n),
		Object:   c.expression(object),
		Property: c.expression(property),
		Computed: computed,
		Optional: n.ChildByFieldName("optional_chain") != nil,
	}
}

func (c *converter) call(n *sitter.Node) jsast.Expr {
	callee := n.ChildByFieldName("function")
	if callee == nil {
		return c.opaque(n)
	}

	call := &jsast.CallExpression{
		Span:     c.span(n),
		Callee:   c.expression(callee),
		Optional: n.ChildByFieldName("optional_chain") != nil,
	}

	switch arguments := n.ChildByFieldName("arguments"); {
	case arguments == nil:

	case arguments.Type() == tsArguments:
		for _, argument := range namedChildren(arguments) {
			call.Arguments = append(call.Arguments, c.expression(argument))
		}

	default: // tagged template
		call.Arguments = []jsast.Expr{c.expression(arguments)}
	}

	return call
}

func (c *converter) spread(n *sitter.Node) *jsast.SpreadElement {
	s := &jsast.SpreadElement{Span: c.span(n)}
	if children := namedChildren(n); len(children) > 0 {
		s.Argument = c.expression(children[0])
	}

	return s
}

func (c *converter) assignment(n *sitter.Node) jsast.Expr {
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
	if left == nil || right == nil {
		return c.opaque(n)
	}

	operator := "="
	if op := n.ChildByFieldName("operator"); op != nil {
		operator = c.text(op)
	}

	return &jsast.AssignmentExpression{
		Span:     c.span(n),
		Operator: operator,
		Left:     c.expression(left),
		Right:    c.expression(right),
	}
}

func (c *converter) arrow(n *sitter.Node) *jsast.ArrowFunctionExpression {
	a := &jsast.ArrowFunctionExpression{Span: c.span(n), Async: hasToken(n, tokAsync)}

	if params := n.ChildByFieldName("parameters"); params != nil {
		a.Params = c.parameters(params)
	} else if param := n.ChildByFieldName("parameter"); param != nil {
		a.Params = c.parameters(param)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		if body.Type() == tsStatementBlock {
			a.Body = c.block(body)
		} else {
			a.Body = c.expression(body)
		}
	}

	return a
}

func (c *converter) object(n *sitter.Node) *jsast.ObjectExpression {
	obj := &jsast.ObjectExpression{Span: c.span(n)}

	for _, child := range namedChildren(n) {
		switch child.Type() {
		case tsPair:
			key, computed := c.propertyKey(child.ChildByFieldName("key"))
			p := &jsast.Property{Span: c.span(child), Key: key, Computed: computed}

			if value := child.ChildByFieldName("value"); value != nil {
				p.Value = c.expression(value)
			}

			obj.Properties = append(obj.Properties, p)

		case tsShorthandPropertyIdent:
			obj.Properties = append(obj.Properties, &jsast.Property{
				Span:      c.span(child),
				Key:       c.identifier(child),
				Value:     c.identifier(child),
				Shorthand: true,
			})

		case tsMethodDefinition:
			key, computed := c.propertyKey(child.ChildByFieldName("name"))
			obj.Properties = append(obj.Properties, &jsast.Property{
				Span:     c.span(child),
				Key:      key,
				Value:    c.method(child),
				Computed: computed,
				Method:   true,
			})

		case tsSpreadElement:
			obj.Properties = append(obj.Properties, c.spread(child))
		}
	}

	return obj
}

// propertyKey converts an object or class member key, unwrapping computed names.
func (c *converter) propertyKey(n *sitter.Node) (jsast.Expr, bool) {
	if n == nil {
		return nil, false
	}

	if n.Type() != tsComputedPropertyName {
		return c.expression(n), false
	}

	if children := namedChildren(n); len(children) == 1 {
		return c.expression(children[0]), true
	}

	return c.opaque(n), true
}

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
	"go/token"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/protoscope/jsast"
)

// converter translates a tree-sitter concrete syntax tree into [jsast] nodes.
type converter struct {
	content  []byte
	file     *token.File
	ext      jsast.Extensions
	comments []jsast.Comment
}

func (c *converter) span(n *sitter.Node) jsast.Span {
	return jsast.Span{From: c.file.Pos(int(n.StartByte())), To: c.file.Pos(int(n.EndByte()))}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.content)
}

func (c *converter) program(root *sitter.Node) *jsast.Program {
	c.collectComments(root)

	return &jsast.Program{Span: c.span(root), Body: c.statements(root)}
}

// collectComments records all comments below n in source order.
func (c *converter) collectComments(n *sitter.Node) {
	if n.Type() == tsComment {
		c.comments = append(c.comments, c.comment(n))

		return
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil {
			c.collectComments(child)
		}
	}
}

func (c *converter) comment(n *sitter.Node) jsast.Comment {
	text := c.text(n)

	if value, ok := strings.CutPrefix(text, "/*"); ok {
		return &jsast.CommentBlock{Span: c.span(n), Value: strings.TrimSuffix(value, "*/")}
	}

	return &jsast.CommentLine{Span: c.span(n), Value: strings.TrimPrefix(text, "//")}
}

// namedChildren returns the named children of n, without comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	children := make([]*sitter.Node, 0, count)

	for i := range count {
		if child := n.NamedChild(i); child != nil && child.Type() != tsComment {
			children = append(children, child)
		}
	}

	return children
}

// hasToken reports whether n has an anonymous child token of the given type.
func hasToken(n *sitter.Node, token string) bool {
	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil && !child.IsNamed() && child.Type() == token {
			return true
		}
	}

	return false
}

func isStatement(nodeType string) bool {
	return nodeType == tsStatementBlock ||
		strings.HasSuffix(nodeType, "_statement") ||
		strings.HasSuffix(nodeType, "_declaration")
}

// node converts n into a statement or expression depending on its type.
func (c *converter) node(n *sitter.Node) jsast.Node {
	if isStatement(n.Type()) {
		if s := c.statement(n); s != nil {
			return s
		}

		return nil
	}

	return c.expression(n)
}

func (c *converter) opaque(n *sitter.Node) *jsast.Opaque {
	o := &jsast.Opaque{Span: c.span(n), Type: n.Type()}

	for _, child := range namedChildren(n) {
		if node := c.node(child); node != nil {
			o.Children = append(o.Children, node)
		}
	}

	return o
}

func (c *converter) statements(n *sitter.Node) []jsast.Stmt {
	children := namedChildren(n)
	stmts := make([]jsast.Stmt, 0, len(children))

	for _, child := range children {
		if s := c.statement(child); s != nil {
			stmts = append(stmts, s)
		}
	}

	return stmts
}

// statement converts n, returning nil for empty statements.
func (c *converter) statement(n *sitter.Node) jsast.Stmt {
	switch n.Type() {
	// keep-sorted start newline_separated=yes
	case tsClassDeclaration:
		return &jsast.ClassDeclaration{
			Span:       c.span(n),
			ID:         c.identifier(n.ChildByFieldName("name")),
			SuperClass: c.heritage(n),
			Body:       c.classBody(n.ChildByFieldName("body")),
		}

	case tsEmptyStatement:
		return nil

	case tsExpressionStatement:
		children := namedChildren(n)
		if len(children) != 1 {
			return c.opaque(n)
		}

		return &jsast.ExpressionStatement{Span: c.span(n), Expression: c.expression(children[0])}

	case tsFunctionDeclaration, tsGeneratorFunctionDecl:
		return &jsast.FunctionDeclaration{
			Span:      c.span(n),
			ID:        c.identifier(n.ChildByFieldName("name")),
			Params:    c.parameters(n.ChildByFieldName("parameters")),
			Body:      c.block(n.ChildByFieldName("body")),
			Generator: n.Type() == tsGeneratorFunctionDecl || hasToken(n, tokStar),
			Async:     hasToken(n, tokAsync),
		}

	case tsLexicalDeclaration, tsVariableDeclaration:
		return c.variableDeclaration(n)

	case tsReturnStatement:
		r := &jsast.ReturnStatement{Span: c.span(n)}
		if children := namedChildren(n); len(children) > 0 {
			r.Argument = c.expression(children[0])
		}

		return r

	case tsStatementBlock:
		return c.block(n)

	// keep-sorted end

	default:
		return c.opaque(n)
	}
}

func (c *converter) block(n *sitter.Node) *jsast.BlockStatement {
	if n == nil {
		return nil
	}

	return &jsast.BlockStatement{Span: c.span(n), Body: c.statements(n)}
}

func (c *converter) variableDeclaration(n *sitter.Node) *jsast.VariableDeclaration {
	decl := &jsast.VariableDeclaration{Span: c.span(n), DeclKind: "var"}

	if first := n.Child(0); first != nil && !first.IsNamed() {
		decl.DeclKind = first.Type() // var, let or const
	}

	for _, child := range namedChildren(n) {
		if child.Type() != tsVariableDeclarator {
			continue
		}

		d := &jsast.VariableDeclarator{Span: c.span(child)}

		if name := child.ChildByFieldName("name"); name != nil {
			d.ID = c.expression(name)
		}

		if value := child.ChildByFieldName("value"); value != nil {
			d.Init = c.expression(value)
		}

		decl.Declarations = append(decl.Declarations, d)
	}

	return decl
}

func (c *converter) parameters(n *sitter.Node) []jsast.Expr {
	if n == nil {
		return nil
	}

	if n.Type() != tsFormalParameters {
		// single arrow function parameter without parentheses
		return []jsast.Expr{c.expression(n)}
	}

	children := namedChildren(n)
	params := make([]jsast.Expr, 0, len(children))

	for _, child := range children {
		params = append(params, c.expression(child))
	}

	return params
}

func (c *converter) identifier(n *sitter.Node) *jsast.Identifier {
	if n == nil {
		return nil
	}

	return &jsast.Identifier{Span: c.span(n), Name: c.text(n)}
}

// heritage returns the superclass expression of a class node.
func (c *converter) heritage(n *sitter.Node) jsast.Expr {
	for _, child := range namedChildren(n) {
		if child.Type() != tsClassHeritage {
			continue
		}

		if parent := namedChildren(child); len(parent) > 0 {
			return c.expression(parent[0])
		}
	}

	return nil
}

func (c *converter) classBody(n *sitter.Node) *jsast.ClassBody {
	if n == nil {
		return nil
	}

	body := &jsast.ClassBody{Span: c.span(n)}

	for _, child := range namedChildren(n) {
		switch child.Type() {
		case tsMethodDefinition:
			key, computed := c.propertyKey(child.ChildByFieldName("name"))
			body.Body = append(body.Body, &jsast.MethodDefinition{
				Span:       c.span(child),
				Key:        key,
				Value:      c.method(child),
				MethodKind: methodKind(child, key, computed),
				Static:     hasToken(child, tokStatic),
				Computed:   computed,
			})

		case tsFieldDefinition:
			key, computed := c.propertyKey(child.ChildByFieldName("property"))
			field := &jsast.PropertyDefinition{
				Span:     c.span(child),
				Key:      key,
				Static:   hasToken(child, tokStatic),
				Computed: computed,
			}

			if value := child.ChildByFieldName("value"); value != nil {
				field.Value = c.expression(value)
			}

			body.Body = append(body.Body, field)
		}
	}

	return body
}

func methodKind(n *sitter.Node, key jsast.Expr, computed bool) string {
	switch {
	case hasToken(n, tokGet):
		return "get"

	case hasToken(n, tokSet):
		return "set"
	}

	if id, ok := key.(*jsast.Identifier); ok && !computed && id.Name == "constructor" {
		return "constructor"
	}

	return "method"
}

// method converts the function part of a method definition.
func (c *converter) method(n *sitter.Node) *jsast.FunctionExpression {
	return &jsast.FunctionExpression{
		Span:      c.span(n),
		Params:    c.parameters(n.ChildByFieldName("parameters")),
		Body:      c.block(n.ChildByFieldName("body")),
		Generator: hasToken(n, tokStar),
		Async:     hasToken(n, tokAsync),
	}
}

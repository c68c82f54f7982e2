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

package jsast

import "go/token"

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
	Kind() Kind
}

// Expr is a node valid in expression position.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node valid in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// ObjectMember is an entry of an [ObjectExpression].
type ObjectMember interface {
	Node
	objectMember()
}

// ClassMember is an item of a [ClassBody].
type ClassMember interface {
	Node
	classMember()
	// IsStatic reports whether the member carries the static marker.
	IsStatic() bool
}

// Comment is a source comment.
type Comment interface {
	Node
	commentNode()
	// Text returns the comment text including the comment markers.
	Text() string
}

// Span holds the source range of a node. Nodes built by hand may leave it zero.
type Span struct {
	From, To token.Pos
}

// Pos implements [Node].
func (s Span) Pos() token.Pos { return s.From }

// End implements [Node].
func (s Span) End() token.Pos { return s.To }

// ----------------------------------------------------------------------------
// Expressions

type (
	// Identifier is a plain name.
	Identifier struct {
		Span
		Name string
	}

	// ThisExpression is a reference to the instance context.
	ThisExpression struct {
		Span
	}

	// Super is the pseudo-node for the super keyword, valid only as a callee or member object.
	Super struct {
		Span
	}

	// Import is the dynamic-import marker used as a callee in import(...).
	// Only parsers supporting the extension produce it, see [DynamicImport].
	Import struct {
		Span
	}

	// Literal is a number, string, boolean, null, regular expression or template literal.
	Literal struct {
		Span
		Raw string
	}

	// MemberExpression is Object.Property or Object[Property] when Computed.
	MemberExpression struct {
		Span
		Object   Expr
		Property Expr
		Computed bool
		Optional bool
	}

	// CallExpression is Callee(Arguments...).
	CallExpression struct {
		Span
		Callee    Expr
		Arguments []Expr
		Optional  bool
	}

	// ObjectExpression is an object literal.
	ObjectExpression struct {
		Span
		Properties []ObjectMember
	}

	// SpreadElement is ...Argument inside call arguments or object literals.
	SpreadElement struct {
		Span
		Argument Expr
	}

	// AssignmentExpression is Left Operator Right, e.g. a = b or a += b.
	AssignmentExpression struct {
		Span
		Operator string
		Left     Expr
		Right    Expr
	}

	// FunctionExpression is a function literal in expression position. ID may be nil.
	FunctionExpression struct {
		Span
		ID        *Identifier
		Params    []Expr
		Body      *BlockStatement
		Generator bool
		Async     bool
	}

	// ArrowFunctionExpression is an arrow function. Body is either a
	// *BlockStatement or an expression.
	ArrowFunctionExpression struct {
		Span
		Params []Expr
		Body   Node
		Async  bool
	}

	// ClassExpression is a class in expression position. ID and SuperClass may be nil.
	ClassExpression struct {
		Span
		ID         *Identifier
		SuperClass Expr
		Body       *ClassBody
	}
)

// ----------------------------------------------------------------------------
// Object and class members

type (
	// Property is a key-value entry of an object literal. Method is set for
	// shorthand methods, whose Value is a *FunctionExpression.
	Property struct {
		Span
		Key       Expr
		Value     Expr
		Computed  bool
		Shorthand bool
		Method    bool
	}

	// ClassBody holds the members of a class.
	ClassBody struct {
		Span
		Body []ClassMember
	}

	// MethodDefinition is a method, accessor or constructor of a class.
	MethodDefinition struct {
		Span
		Key        Expr
		Value      *FunctionExpression
		MethodKind string // "constructor", "method", "get" or "set"
		Static     bool
		Computed   bool
	}

	// PropertyDefinition is a class field. Value may be nil.
	PropertyDefinition struct {
		Span
		Key      Expr
		Value    Expr
		Static   bool
		Computed bool
	}
)

// ----------------------------------------------------------------------------
// Statements

type (
	// FunctionDeclaration is a function in statement position.
	FunctionDeclaration struct {
		Span
		ID        *Identifier
		Params    []Expr
		Body      *BlockStatement
		Generator bool
		Async     bool
	}

	// ClassDeclaration is a class in statement position.
	ClassDeclaration struct {
		Span
		ID         *Identifier
		SuperClass Expr
		Body       *ClassBody
	}

	// VariableDeclaration is a var, let or const statement.
	VariableDeclaration struct {
		Span
		DeclKind     string // "var", "let" or "const"
		Declarations []*VariableDeclarator
	}

	// VariableDeclarator binds ID to the optional Init expression.
	VariableDeclarator struct {
		Span
		ID   Expr
		Init Expr
	}

	// ExpressionStatement is an expression evaluated for its effects.
	ExpressionStatement struct {
		Span
		Expression Expr
	}

	// BlockStatement is a braced statement list, also used as function body.
	BlockStatement struct {
		Span
		Body []Stmt
	}

	// ReturnStatement is a return with optional Argument.
	ReturnStatement struct {
		Span
		Argument Expr
	}

	// Program is the root of a parsed source file.
	Program struct {
		Span
		Body []Stmt
	}
)

// ----------------------------------------------------------------------------
// Comments

type (
	// CommentBlock is a /* ... */ comment.
	CommentBlock struct {
		Span
		Value string
	}

	// CommentLine is a // comment.
	CommentLine struct {
		Span
		Value string
	}
)

// Opaque stands for a construct outside of this vocabulary, for example an
// if statement or a binary expression. Type is the producer's name for the
// construct, Children are the convertible nodes found inside it.
type Opaque struct {
	Span
	Type     string
	Children []Node
}

// ----------------------------------------------------------------------------
// Kinds

func (*Identifier) Kind() Kind              { return KindIdentifier }
func (*ThisExpression) Kind() Kind          { return KindThisExpression }
func (*Super) Kind() Kind                   { return KindSuper }
func (*Import) Kind() Kind                  { return KindImport }
func (*Literal) Kind() Kind                 { return KindLiteral }
func (*MemberExpression) Kind() Kind        { return KindMemberExpression }
func (*CallExpression) Kind() Kind          { return KindCallExpression }
func (*ObjectExpression) Kind() Kind        { return KindObjectExpression }
func (*SpreadElement) Kind() Kind           { return KindSpreadElement }
func (*AssignmentExpression) Kind() Kind    { return KindAssignmentExpression }
func (*FunctionExpression) Kind() Kind      { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind { return KindArrowFunctionExpression }
func (*ClassExpression) Kind() Kind         { return KindClassExpression }
func (*Property) Kind() Kind                { return KindProperty }
func (*ClassBody) Kind() Kind               { return KindClassBody }
func (*MethodDefinition) Kind() Kind        { return KindMethodDefinition }
func (*PropertyDefinition) Kind() Kind      { return KindPropertyDefinition }
func (*FunctionDeclaration) Kind() Kind     { return KindFunctionDeclaration }
func (*ClassDeclaration) Kind() Kind        { return KindClassDeclaration }
func (*VariableDeclaration) Kind() Kind     { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind      { return KindVariableDeclarator }
func (*ExpressionStatement) Kind() Kind     { return KindExpressionStatement }
func (*BlockStatement) Kind() Kind          { return KindBlockStatement }
func (*ReturnStatement) Kind() Kind         { return KindReturnStatement }
func (*Program) Kind() Kind                 { return KindProgram }
func (*CommentBlock) Kind() Kind            { return KindCommentBlock }
func (*CommentLine) Kind() Kind             { return KindCommentLine }
func (*Opaque) Kind() Kind                  { return KindOpaque }

// ----------------------------------------------------------------------------
// Marker methods

// exprNode() ensures that only expression nodes can be assigned to an Expr.
func (*Identifier) exprNode()              {}
func (*ThisExpression) exprNode()          {}
func (*Super) exprNode()                   {}
func (*Import) exprNode()                  {}
func (*Literal) exprNode()                 {}
func (*MemberExpression) exprNode()        {}
func (*CallExpression) exprNode()          {}
func (*ObjectExpression) exprNode()        {}
func (*SpreadElement) exprNode()           {}
func (*AssignmentExpression) exprNode()    {}
func (*FunctionExpression) exprNode()      {}
func (*ArrowFunctionExpression) exprNode() {}
func (*ClassExpression) exprNode()         {}
func (*Opaque) exprNode()                  {}

// stmtNode() ensures that only statement nodes can be assigned to a Stmt.
func (*FunctionDeclaration) stmtNode() {}
func (*ClassDeclaration) stmtNode()    {}
func (*VariableDeclaration) stmtNode() {}
func (*ExpressionStatement) stmtNode() {}
func (*BlockStatement) stmtNode()      {}
func (*ReturnStatement) stmtNode()     {}
func (*Opaque) stmtNode()              {}

func (*Property) objectMember()      {}
func (*SpreadElement) objectMember() {}

func (*MethodDefinition) classMember()   {}
func (*PropertyDefinition) classMember() {}

// IsStatic implements [ClassMember].
func (m *MethodDefinition) IsStatic() bool { return m.Static }

// IsStatic implements [ClassMember].
func (p *PropertyDefinition) IsStatic() bool { return p.Static }

func (*CommentBlock) commentNode() {}
func (*CommentLine) commentNode()  {}

// Text implements [Comment].
func (c *CommentBlock) Text() string { return "/*" + c.Value + "*/" }

// Text implements [Comment].
func (c *CommentLine) Text() string { return "//" + c.Value }
